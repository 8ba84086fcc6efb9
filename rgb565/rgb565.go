// Package rgb565 provides a 16-bit RGB565 pixel format for TFT displays.
//
// RGB565 packs a color into 16 bits: 5 bits red, 6 bits green, 5 bits blue.
// Pixels are stored big-endian (high byte first), the byte order SPI TFT
// controllers consume. This package provides the RGB565 color type and the
// Image implementation backed by a packed pixel buffer.
package rgb565

import (
	"image"
	"image/color"
)

// RGB565 represents a packed 16-bit color: RRRRRGGGGGGBBBBB.
type RGB565 uint16

// Classic TFT palette, ILI9341-style 565 values.
const (
	Black   RGB565 = 0x0000
	Navy    RGB565 = 0x000F
	Blue    RGB565 = 0x001F
	Green   RGB565 = 0x07E0
	Cyan    RGB565 = 0x07FF
	Maroon  RGB565 = 0x7800
	Magenta RGB565 = 0xF81F
	Red     RGB565 = 0xF800
	Orange  RGB565 = 0xFD20
	Yellow  RGB565 = 0xFFE0
	White   RGB565 = 0xFFFF
)

// New packs 8-bit color components into an RGB565 value.
func New(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// RGBA converts the RGB565 color to standard RGBA.
// Each component is expanded to 8 bits by replicating its high bits into
// the low bits (so full-scale 565 maps to full-scale RGBA), then scaled
// to 16-bit.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c >> 11)
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F

	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2

	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565.
func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns 16-bit components; keep the top 5/6/5 bits.
	return RGB565(r>>11<<11 | g>>10<<5 | b>>11)
}

// Model converts colors to RGB565.
var Model = color.ModelFunc(toRGB565)

// Image is an in-memory RGB565 frame where each pixel occupies 2 bytes
// in big-endian order.
type Image struct {
	Pix    []byte          // Pixel data (2 bytes per pixel, big-endian)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewImage creates a new RGB565 image with the specified bounds.
func NewImage(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}

	stride := w * 2
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 color of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Black
	}
	i := p.PixOffset(x, y)
	return RGB565(uint16(p.Pix[i])<<8 | uint16(p.Pix[i+1]))
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.SetRGB565(x, y, Model.Convert(c).(RGB565))
}

// SetRGB565 sets the RGB565 color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	p.Pix[i] = byte(c >> 8)
	p.Pix[i+1] = byte(c)
}

// PixOffset returns the byte offset of the first byte of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
