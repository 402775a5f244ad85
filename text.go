// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"periph.io/x/devices/v3/ssd1306/font"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// DrawChar draws a single character at (x, y) using the glyphs in f.
//
// The full glyph cell is written, including the off pixels, so text
// overwrites whatever was below it. Characters outside the range covered by
// the font draw nothing.
func (d *Dev) DrawChar(x, y int, c byte, f *font.Font) {
	if d.img == nil || f == nil {
		return
	}
	if int(c) < int(f.First) || int(c) >= int(f.First)+f.Count {
		return
	}
	base := (int(c) - int(f.First)) * f.Width
	for i := 0; i < f.Width; i++ {
		line := f.Data[base+i]
		for j := 0; j < f.Height; j++ {
			d.img.SetBit(x+i, y+j, image1bit.Bit(line&1 != 0))
			line >>= 1
		}
	}
}

// DrawString draws s at (x, y) using the glyphs in f.
//
// The string is treated as a byte sequence. The pen advances by the font
// width for every byte, also for those the font has no glyph for, so column
// positions stay aligned.
func (d *Dev) DrawString(x, y int, s string, f *font.Font) {
	if d.img == nil || f == nil {
		return
	}
	for i := 0; i < len(s); i++ {
		d.DrawChar(x, y, s[i], f)
		x += f.Width
	}
}

// DrawImage blits a bitmap with its top left corner at (x, y).
//
// Both on and off pixels are written. Negative coordinates are fine, the
// part that falls outside the display is dropped, which allows revealing an
// oversized image progressively.
func (d *Dev) DrawImage(x, y int, img *image1bit.HorizontalMSB) {
	if d.img == nil || img == nil {
		return
	}
	r := img.Bounds()
	for j := 0; j < r.Dy(); j++ {
		for i := 0; i < r.Dx(); i++ {
			d.img.SetBit(x+i, y+j, img.BitAt(r.Min.X+i, r.Min.Y+j))
		}
	}
}
