// Package rgb565 provides a 16-bit RGB565 pixel format for TFT display controllers.
//
// RGB565 is the native framebuffer format of most small SPI TFT panels
// (ILI9341, ST7735, ST7789 and friends): 5 bits red, 6 bits green, 5 bits blue
// packed into one 16-bit word.
//
// Memory layout example for a 2-pixel row:
//
//	Pixels: 0      1
//	Colors: Red    Green
//	Words:  0xF800 0x07E0
//	Bytes:  0xF8 0x00 0x07 0xE0
//	        (big-endian: high byte of each pixel first)
//
// This package provides:
//
// - RGB565: A color type representing one packed 5-6-5 value
// - Model: A color model for converting standard Go colors to RGB565
// - Image: An image.Image implementation backed by a packed big-endian buffer
//
// Example usage:
//
//	// Create a 240x320 frame
//	img := rgb565.NewImage(image.Rect(0, 0, 240, 320))
//
//	// Set a pixel
//	img.SetRGB565(10, 20, rgb565.Yellow)
//
//	// Get a pixel
//	c := img.RGB565At(10, 20)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(rgb565.Red), image.Point{}, draw.Src)
package rgb565
