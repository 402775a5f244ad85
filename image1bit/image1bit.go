// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image1bit implements black and white (1 bit per pixel) 2D graphics.
//
// It is compatible with package image/draw.
//
// VerticalLSB is the frame buffer format of the SSD1306 controller: each byte
// holds 8 vertically stacked pixels of one column, least significant bit on
// top. HorizontalMSB is the packing used by converted bitmap assets: rows
// packed most significant bit first, with no padding between rows.
package image1bit

import (
	"image"
	"image/color"
)

// Bit implements a 1 bit color.
type Bit bool

// RGBA returns either all white or all black.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 65535, 65535, 65535, 65535
	}
	return 0, 0, 0, 65535
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// Possible bitness.
const (
	On  Bit = true
	Off Bit = false
)

// BitModel is the color model for the 1 bit color.
var BitModel = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	return convertBit(c)
}

// convertBit returns a Bit from any color.
//
// Values with luminosity at or above the midpoint are On.
func convertBit(c color.Color) Bit {
	switch t := c.(type) {
	case Bit:
		return t
	default:
		r, g, b, _ := c.RGBA()
		y := (299*r + 587*g + 114*b) / 1000
		return Bit(y >= 0x8000)
	}
}

// VerticalLSB is a 1 bit (black and white) image with pixels packed
// vertically, least significant bit first.
//
// The image is packed as a series of horizontal bands 8 pixels high. Each
// byte holds one column of a band, bit 0 being the topmost pixel of the band.
// This is the exact GDDRAM layout of the SSD1306.
type VerticalLSB struct {
	// Pix holds the image's pixels, as vertically LSB-first packed bitmap. It
	// can be passed directly as Dev.Write() argument.
	Pix []byte
	// Stride is the Pix stride (in bytes) between vertically adjacent 8 pixels
	// high bands.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewVerticalLSB returns an initialized VerticalLSB instance.
func NewVerticalLSB(r image.Rectangle) *VerticalLSB {
	w := r.Dx()
	// Round down.
	minY := r.Min.Y &^ 7
	// Round up.
	maxY := (r.Max.Y + 7) &^ 7
	bands := (maxY - minY) / 8
	return &VerticalLSB{Pix: make([]byte, w*bands), Stride: w, Rect: r}
}

// ColorModel implements image.Image.
func (i *VerticalLSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (i *VerticalLSB) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *VerticalLSB) At(x, y int) color.Color {
	return i.BitAt(x, y)
}

// BitAt is the optimized version of At().
func (i *VerticalLSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return Off
	}
	offset, mask := i.pixOffset(x, y)
	return Bit(i.Pix[offset]&mask != 0)
}

// Set implements draw.Image.
func (i *VerticalLSB) Set(x, y int, c color.Color) {
	i.SetBit(x, y, convertBit(c))
}

// SetBit is the optimized version of Set().
func (i *VerticalLSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return
	}
	offset, mask := i.pixOffset(x, y)
	if b {
		i.Pix[offset] |= mask
	} else {
		i.Pix[offset] &^= mask
	}
}

// DrawHLine draws a horizontal line of color b at row y, from x1 included to
// x2 excluded.
func (i *VerticalLSB) DrawHLine(x1, x2, y int, b Bit) {
	for ; x1 < x2; x1++ {
		i.SetBit(x1, y, b)
	}
}

// DrawVLine draws a vertical line of color b at column x, from y1 included to
// y2 excluded.
func (i *VerticalLSB) DrawVLine(y1, y2, x int, b Bit) {
	for ; y1 < y2; y1++ {
		i.SetBit(x, y1, b)
	}
}

// pixOffset returns the byte offset in Pix and the bit mask for the pixel at
// (x, y).
func (i *VerticalLSB) pixOffset(x, y int) (int, byte) {
	// Adjust to the top of the first band, which is rounded down.
	minY := i.Rect.Min.Y &^ 7
	y -= minY
	x -= i.Rect.Min.X
	return (y/8)*i.Stride + x, 1 << uint(y&7)
}

// HorizontalMSB is a 1 bit (black and white) image with pixels packed
// row-major, most significant bit first.
//
// Unlike formats with a per-row stride, the bit stream is contiguous across
// the whole image: when the width is not a multiple of 8, a byte straddles
// the end of one row and the start of the next. This is the interchange
// format emitted by the img2oled tool and consumed by Dev.DrawImage().
type HorizontalMSB struct {
	// Pix holds the image bits, 8 per byte, most significant bit first, with
	// no padding between rows.
	Pix []byte
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewHorizontalMSB returns an initialized HorizontalMSB instance.
func NewHorizontalMSB(r image.Rectangle) *HorizontalMSB {
	w, h := r.Dx(), r.Dy()
	return &HorizontalMSB{Pix: make([]byte, (w*h+7)/8), Rect: r}
}

// ColorModel implements image.Image.
func (i *HorizontalMSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (i *HorizontalMSB) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *HorizontalMSB) At(x, y int) color.Color {
	return i.BitAt(x, y)
}

// BitAt is the optimized version of At().
func (i *HorizontalMSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return Off
	}
	offset, mask := i.pixOffset(x, y)
	return Bit(i.Pix[offset]&mask != 0)
}

// Set implements draw.Image.
func (i *HorizontalMSB) Set(x, y int, c color.Color) {
	i.SetBit(x, y, convertBit(c))
}

// SetBit is the optimized version of Set().
func (i *HorizontalMSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(i.Rect)) {
		return
	}
	offset, mask := i.pixOffset(x, y)
	if b {
		i.Pix[offset] |= mask
	} else {
		i.Pix[offset] &^= mask
	}
}

// pixOffset returns the byte offset in Pix and the bit mask for the pixel at
// (x, y).
func (i *HorizontalMSB) pixOffset(x, y int) (int, byte) {
	idx := (y-i.Rect.Min.Y)*i.Rect.Dx() + (x - i.Rect.Min.X)
	return idx / 8, 0x80 >> uint(idx&7)
}

var _ image.Image = &VerticalLSB{}
var _ image.Image = &HorizontalMSB{}
