package bounce

import (
	"image"
	"image/draw"

	"periph.io/x/conn/v3/display"

	"github.com/dexterbg/BouncingBoxes/rgb565"
)

// Surface is the drawing target of a Simulation: a fixed-size raster the
// simulation fills rectangles on. Rectangles may lie partly or fully
// outside the bounds; implementations clip and never fail.
type Surface interface {
	// Bounds returns the fixed surface dimensions.
	Bounds() image.Rectangle

	// FillRect fills r with c, clipped to the surface bounds.
	FillRect(r image.Rectangle, c rgb565.RGB565)
}

// ImageSurface adapts any draw.Image (including *rgb565.Image) as a
// drawing surface.
type ImageSurface struct {
	Img draw.Image
}

// Bounds returns the bounds of the wrapped image.
func (s *ImageSurface) Bounds() image.Rectangle {
	return s.Img.Bounds()
}

// FillRect fills r with c. draw.Draw clips to the image bounds.
func (s *ImageSurface) FillRect(r image.Rectangle, c rgb565.RGB565) {
	draw.Draw(s.Img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawerSurface adapts a periph.io display.Drawer as a drawing surface,
// pushing each filled rectangle to the device as one partial update. Used
// with a hardware display this is the whole point of the dirty-region
// scheme: only the few pixels a body vacated or now covers cross the bus.
//
// Drawer errors are sticky: after the first failure all further fills are
// dropped and Err returns the error. The simulation itself never fails;
// the host decides what a dead display means for it.
type DrawerSurface struct {
	Drawer display.Drawer

	err error
}

// Bounds returns the bounds of the wrapped drawer.
func (s *DrawerSurface) Bounds() image.Rectangle {
	return s.Drawer.Bounds()
}

// FillRect pushes one filled rectangle to the drawer, clipped to its
// bounds. Rectangles entirely outside the bounds are dropped without a
// device roundtrip.
func (s *DrawerSurface) FillRect(r image.Rectangle, c rgb565.RGB565) {
	if s.err != nil {
		return
	}
	r = r.Intersect(s.Drawer.Bounds())
	if r.Empty() {
		return
	}
	s.err = s.Drawer.Draw(r, image.NewUniform(c), image.Point{})
}

// Err returns the first error reported by the drawer, if any.
func (s *DrawerSurface) Err() error {
	return s.err
}
