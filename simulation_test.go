package bounce

import (
	"image"
	"testing"
	"time"

	"github.com/dexterbg/BouncingBoxes/rgb565"
)

func TestNewDefaults(t *testing.T) {
	s := &fakeSurface{rect: image.Rect(0, 0, 240, 320)}
	sim, err := New(s, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if sim.Len() != 8 {
		t.Errorf("Len() = %d, want 8", sim.Len())
	}
	if sim.step != 50*time.Millisecond {
		t.Errorf("step = %v, want 50ms", sim.step)
	}

	// Initialization clears the whole surface and nothing else; the first
	// render happens on the first tick.
	if len(s.ops) != 1 {
		t.Fatalf("New performed %d fills, want 1 (the clear)", len(s.ops))
	}
	if s.ops[0].rect != s.rect {
		t.Errorf("clear rect = %v, want full bounds %v", s.ops[0].rect, s.rect)
	}
	if s.ops[0].color != rgb565.Black {
		t.Errorf("clear color = %#04x, want black", uint16(s.ops[0].color))
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		surface Surface
		opts    *Opts
		wantErr bool
	}{
		{"nil options", &fakeSurface{rect: image.Rect(0, 0, 240, 320)}, nil, false},
		{"nil surface", nil, nil, true},
		{"negative body count", &fakeSurface{rect: image.Rect(0, 0, 240, 320)}, &Opts{N: -1}, true},
		{"negative step", &fakeSurface{rect: image.Rect(0, 0, 240, 320)}, &Opts{Step: -time.Second}, true},
		{"surface too small", &fakeSurface{rect: image.Rect(0, 0, 16, 16)}, nil, true},
		{"single body", &fakeSurface{rect: image.Rect(0, 0, 240, 320)}, &Opts{N: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.surface, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTickRateGating(t *testing.T) {
	s := &fakeSurface{rect: image.Rect(0, 0, 240, 320)}
	sim, err := New(s, &Opts{N: 2, Step: 50 * time.Millisecond, Rand: testRand()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	base := time.Unix(1000, 0)
	if !sim.Tick(base) {
		t.Fatal("first Tick() = false, want true")
	}
	after := len(s.ops)

	// Below the step threshold: no state mutation, no drawing.
	snapshot := make([]Body, len(sim.bodies))
	copy(snapshot, sim.bodies)
	if sim.Tick(base.Add(10 * time.Millisecond)) {
		t.Error("sub-threshold Tick() = true, want false")
	}
	if len(s.ops) != after {
		t.Errorf("sub-threshold Tick drew %d fills, want 0", len(s.ops)-after)
	}
	for i := range sim.bodies {
		if sim.bodies[i] != snapshot[i] {
			t.Errorf("body %d mutated by a gated tick", i)
		}
	}

	if !sim.Tick(base.Add(50 * time.Millisecond)) {
		t.Error("Tick() at the threshold = false, want true")
	}
}

func TestTickThreePassOrder(t *testing.T) {
	s := &fakeSurface{rect: image.Rect(0, 0, 240, 320)}
	sim, err := New(s, &Opts{N: 3, Rand: testRand()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	s.ops = nil // drop the initial clear
	sim.Tick(time.Unix(1000, 0))

	// Body colors have a brightness floor, so only erase fills carry the
	// background color. Every erase must precede every render.
	seenRender := false
	renders := 0
	for i, op := range s.ops {
		if op.color == rgb565.Black {
			if seenRender {
				t.Fatalf("fill %d: erase after a render", i)
			}
			continue
		}
		seenRender = true
		renders++
	}
	if renders != 3 {
		t.Errorf("render fills = %d, want one per body", renders)
	}
}

func TestTickStableOrder(t *testing.T) {
	s := &fakeSurface{rect: image.Rect(0, 0, 240, 320)}
	sim, err := New(s, &Opts{N: 4, Rand: testRand()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	renderColors := func() []rgb565.RGB565 {
		var colors []rgb565.RGB565
		for _, op := range s.ops {
			if op.color != rgb565.Black {
				colors = append(colors, op.color)
			}
		}
		return colors
	}

	s.ops = nil
	sim.Tick(time.Unix(1000, 0))
	first := renderColors()

	s.ops = nil
	sim.Tick(time.Unix(1001, 0))
	second := renderColors()

	if len(first) != 4 || len(second) != 4 {
		t.Fatalf("render counts = %d, %d, want 4 each", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("render %d color changed between ticks: %#04x vs %#04x",
				i, uint16(first[i]), uint16(second[i]))
		}
	}
}

// Each Simulation owns its own timer, so several can coexist.
func TestIndependentSimulations(t *testing.T) {
	s1 := &fakeSurface{rect: image.Rect(0, 0, 240, 320)}
	s2 := &fakeSurface{rect: image.Rect(0, 0, 240, 320)}

	sim1, err := New(s1, &Opts{N: 1, Rand: testRand()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	sim2, err := New(s2, &Opts{N: 1, Rand: testRand()})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	base := time.Unix(1000, 0)
	if !sim1.Tick(base) {
		t.Error("sim1 first Tick() = false, want true")
	}
	// sim1's tick must not consume sim2's budget.
	if !sim2.Tick(base) {
		t.Error("sim2 first Tick() = false, want true")
	}
	if sim1.Tick(base.Add(time.Millisecond)) {
		t.Error("sim1 sub-threshold Tick() = true, want false")
	}
}
