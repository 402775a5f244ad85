// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package font provides fixed-cell bitmap fonts for monochrome OLED
// displays.
//
// Glyphs are packed column-major: byte (code-First)*Width + column holds one
// column of Height vertical pixels, bit 0 on top. The same packing is
// produced by the font2oled tool, so generated fonts and the bundled ones are
// interchangeable.
package font

// Font describes a fixed-cell bitmap font.
//
// The glyph for character code c starts at Data[(int(c)-int(First))*Width]
// and spans Width bytes, one byte per column. Codes outside
// [First, First+Count) have no glyph.
type Font struct {
	// Data is the packed glyph table. len(Data) is Count*Width.
	Data []byte
	// Width and Height are the glyph cell size in pixels. Height is at most 8.
	Width, Height int
	// First is the first character code covered by the font.
	First byte
	// Count is the number of consecutive codes covered starting at First.
	Count int
}
