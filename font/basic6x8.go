// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package font

// Basic6x8 is Basic5x8 widened to a 6 pixel cell with a blank trailing
// column, so adjacent characters do not touch.
var Basic6x8 = widen(Basic5x8)

// widen returns a copy of f with one blank column appended to every glyph.
func widen(f *Font) *Font {
	w := &Font{
		Data:   make([]byte, f.Count*(f.Width+1)),
		Width:  f.Width + 1,
		Height: f.Height,
		First:  f.First,
		Count:  f.Count,
	}
	for g := 0; g < f.Count; g++ {
		copy(w.Data[g*w.Width:], f.Data[g*f.Width:(g+1)*f.Width])
	}
	return w
}
