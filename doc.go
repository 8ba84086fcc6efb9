// Package bounce animates bouncing boxes on a raster display using
// incremental redraws.
//
// A Simulation steps a fixed set of rigid bodies (drawn as filled boxes)
// at a fixed time step, and for each step repaints only the pixels that
// actually changed: the thin strips each body vacated by moving, plus the
// body's new box. The display is never cleared between frames, so there
// is no full-screen flicker and per-frame pixel traffic stays tiny - on a
// slow SPI display this is the difference between a smooth animation and
// a strobing one.
//
// # Incremental Redraw
//
// Each body remembers its integer position at the two most recent steps.
// Moving by (mx, my) pixels vacates an L-shaped sliver of its old box:
// a strip |mx| pixels wide along the trailing horizontal edge and a strip
// |my| pixels tall along the trailing vertical edge. Each step runs three
// separate passes over all bodies:
//
//	1. advance: integrate velocity and gravity, bounce off the walls
//	2. erase:   clear every body's vacated strips to the background
//	3. render:  draw every body's box at its new position
//
// Erasing everything before drawing anything keeps overlapping bodies
// correct: a body drawn early is never punched through by a later body's
// erase.
//
// # Basic Usage
//
// Run the simulation against any drawing surface:
//
//	package main
//
//	import (
//		"image"
//		"time"
//
//		bounce "github.com/dexterbg/BouncingBoxes"
//		"github.com/dexterbg/BouncingBoxes/rgb565"
//	)
//
//	func main() {
//		// An in-memory RGB565 frame as the drawing surface
//		img := rgb565.NewImage(image.Rect(0, 0, 240, 320))
//		surface := &bounce.ImageSurface{Img: img}
//
//		sim, _ := bounce.New(surface, &bounce.Opts{N: 8})
//
//		// Host loop: call Tick as fast as convenient, the simulation
//		// gates itself to its fixed step internally.
//		for {
//			sim.Tick(time.Now())
//		}
//	}
//
// # Drawing Surfaces
//
// The Surface interface is two methods: Bounds and FillRect. Two adapters
// ship with the package:
//
// - ImageSurface wraps any draw.Image, e.g. an rgb565.Image framebuffer.
//
// - DrawerSurface wraps a periph.io display.Drawer, pushing each filled
// rectangle to the device as one partial update.
//
// FillRect is never asked to fail: rectangles may extend past the surface
// (a body bounced above the top edge, say) and are clipped.
//
// # Timing
//
// Tick(now) runs a step only when at least the configured Step interval
// has passed since the previous step, and is a no-op otherwise. There is
// no catch-up: if the host loop stalls, the skipped wall-clock time is
// simply lost and the animation resumes at its normal pace.
//
// # Randomness
//
// Bounces intentionally re-randomize speed rather than reflecting it, so
// trajectories stay varied instead of settling into billiard loops. All
// randomness flows through the Rand interface; supply a deterministic
// source in Opts to make a run reproducible.
package bounce
