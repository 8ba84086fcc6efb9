package bounce

import (
	"image"

	"github.com/dexterbg/BouncingBoxes/rgb565"
)

// Physics tuning. Velocities are in pixels per tick.
const (
	gravity = 0.5 // added to dy each airborne tick

	speedMin = 2 // bounce magnitude range, both axes
	speedMax = 6

	impulseMin = 8 // upward kick when hitting the ground
	impulseMax = 16

	radiusMin = 4
	radiusMax = 12
)

// Body is one independently simulated moving box.
//
// position is the continuous center of the box; cur and prev are its
// truncated integer positions at the two most recent ticks. radius and
// color never change after construction.
type Body struct {
	x, y   float64
	dx, dy float64

	radius int
	color  rgb565.RGB565

	cur  image.Point
	prev image.Point
}

// newBody places a random body fully inside bounds, clear of every edge
// by its radius.
func newBody(bounds image.Rectangle, rng Rand) Body {
	r := radiusMin + rng.IntN(radiusMax-radiusMin+1)

	b := Body{
		x:      float64(bounds.Min.X + r + rng.IntN(bounds.Dx()-2*r+1)),
		y:      float64(bounds.Min.Y + r + rng.IntN(bounds.Dy()-2*r+1)),
		dx:     bounceSpeed(rng) * randSign(rng),
		dy:     bounceSpeed(rng) * randSign(rng),
		radius: r,
		color:  randColor(rng),
	}
	b.cur = b.cell()
	// A freshly placed body has no vacated region to erase.
	b.prev = b.cur
	return b
}

// bounceSpeed draws a horizontal bounce magnitude in [speedMin, speedMax).
func bounceSpeed(rng Rand) float64 {
	return float64(speedMin + rng.IntN(speedMax-speedMin))
}

// impulse draws a ground-bounce magnitude in [impulseMin, impulseMax).
func impulse(rng Rand) float64 {
	return float64(impulseMin + rng.IntN(impulseMax-impulseMin))
}

func randSign(rng Rand) float64 {
	if rng.IntN(2) == 0 {
		return 1
	}
	return -1
}

// randColor draws a random 565 color with every component at least half
// scale, so bodies stay visible against a black background.
func randColor(rng Rand) rgb565.RGB565 {
	return rgb565.New(
		uint8(128+rng.IntN(128)),
		uint8(128+rng.IntN(128)),
		uint8(128+rng.IntN(128)),
	)
}

// cell returns the position truncated to integer pixels.
func (b *Body) cell() image.Point {
	return image.Point{X: int(b.x), Y: int(b.y)}
}

// box returns the square the body occupies when centered on p:
// [p.X-radius, p.X+radius) x [p.Y-radius, p.Y+radius).
func (b *Body) box(p image.Point) image.Rectangle {
	return image.Rect(p.X-b.radius, p.Y-b.radius, p.X+b.radius, p.Y+b.radius)
}

// advance integrates one fixed time step within bounds.
//
// Bounces re-randomize the speed instead of mirroring it: hitting a side
// wall redraws dx with a fresh magnitude pointing away from the wall, and
// hitting the ground redraws dy as a fresh upward impulse. While airborne,
// dy grows by gravity. There is no ceiling check, so a strong impulse may
// carry a body above the top edge; gravity brings it back.
func (b *Body) advance(bounds image.Rectangle, rng Rand) {
	b.prev = b.cur

	if next := b.x + b.dx; next >= float64(bounds.Max.X-b.radius) || next <= float64(bounds.Min.X+b.radius) {
		speed := bounceSpeed(rng)
		if b.dx > 0 {
			speed = -speed
		}
		b.dx = speed
	}

	if b.y+b.dy >= float64(bounds.Max.Y-b.radius) {
		b.dy = -impulse(rng)
	} else {
		b.dy += gravity
	}

	b.x += b.dx
	b.y += b.dy
	b.cur = b.cell()
}

// dirtyRects returns the region vacated by the last advance: the part of
// the previous box no longer covered by the current one, decomposed into
// at most two disjoint rectangles. A strip of width |mx| along the
// trailing horizontal edge, and a strip of height |my| along the trailing
// vertical edge covering the remaining columns. A body that did not
// change cell returns no rectangles.
func (b *Body) dirtyRects() []image.Rectangle {
	old := b.box(b.prev)
	mx := b.cur.X - b.prev.X
	my := b.cur.Y - b.prev.Y

	var rects []image.Rectangle

	var h image.Rectangle
	switch {
	case mx > 0:
		h = image.Rect(old.Min.X, old.Min.Y, old.Min.X+mx, old.Max.Y)
	case mx < 0:
		h = image.Rect(old.Max.X+mx, old.Min.Y, old.Max.X, old.Max.Y)
	}
	if !h.Empty() {
		rects = append(rects, h)
	}

	var v image.Rectangle
	switch {
	case my > 0:
		v = image.Rect(old.Min.X, old.Min.Y, old.Max.X, old.Min.Y+my)
	case my < 0:
		v = image.Rect(old.Min.X, old.Max.Y+my, old.Max.X, old.Max.Y)
	}
	// Drop the columns the horizontal strip already covers, keeping the
	// two rectangles disjoint.
	if mx > 0 && v.Min.X < h.Max.X {
		v.Min.X = h.Max.X
	}
	if mx < 0 && v.Max.X > h.Min.X {
		v.Max.X = h.Min.X
	}
	if !v.Empty() {
		rects = append(rects, v)
	}

	return rects
}

// erase clears the vacated region to the background color.
func (b *Body) erase(s Surface, background rgb565.RGB565) {
	for _, r := range b.dirtyRects() {
		s.FillRect(r, background)
	}
}

// render draws the body at its current cell. It always redraws the full
// box, moved or not.
func (b *Body) render(s Surface) {
	s.FillRect(b.box(b.cur), b.color)
}
