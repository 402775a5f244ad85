// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// SetPixel sets a single pixel in the frame buffer.
//
// Out of range coordinates are ignored. The change is not visible until
// Display is called.
func (d *Dev) SetPixel(x, y int, b image1bit.Bit) {
	if d.img == nil {
		return
	}
	d.img.SetBit(x, y, b)
}

// Clear zeroes the frame buffer.
func (d *Dev) Clear() {
	if d.img == nil {
		return
	}
	for i := range d.img.Pix {
		d.img.Pix[i] = 0
	}
}

// DrawLine draws a line between two points with Bresenham's algorithm.
//
// The pixel set is the same whichever way the endpoints are ordered.
func (d *Dev) DrawLine(x1, y1, x2, y2 int, b image1bit.Bit) {
	if d.img == nil {
		return
	}
	// The error term ties round toward the walk direction, so walk in a
	// fixed direction to keep the pixel set independent of endpoint order.
	if x2 < x1 || (x2 == x1 && y2 < y1) {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}
	dx := x2 - x1
	dy := y2 - y1
	sy := 1
	if dy < 0 {
		dy = -dy
		sy = -1
	}
	d.img.SetBit(x1, y1, b)
	if dy < dx {
		e := 2*dy - dx
		for x1 != x2 {
			x1++
			if e >= 0 {
				y1 += sy
				e -= 2 * dx
			}
			e += 2 * dy
			d.img.SetBit(x1, y1, b)
		}
	} else {
		e := dy - 2*dx
		for y1 != y2 {
			y1 += sy
			if e <= 0 {
				x1++
				e += 2 * dy
			}
			e -= 2 * dx
			d.img.SetBit(x1, y1, b)
		}
	}
}

// DrawRect draws the one pixel wide outline of a rectangle. (x, y) is the
// top left corner.
func (d *Dev) DrawRect(x, y, w, h int, b image1bit.Bit) {
	if d.img == nil {
		return
	}
	for i := x; i < x+w; i++ {
		d.img.SetBit(i, y, b)
		d.img.SetBit(i, y+h-1, b)
	}
	for i := y; i < y+h; i++ {
		d.img.SetBit(x, i, b)
		d.img.SetBit(x+w-1, i, b)
	}
}

// FillRect fills a rectangle. (x, y) is the top left corner.
//
// A negative origin is moved to the edge of the display, the extent is
// clipped to the display size.
func (d *Dev) FillRect(x, y, w, h int, b image1bit.Bit) {
	if d.img == nil {
		return
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	xEnd := x + w
	if xEnd > d.rect.Max.X {
		xEnd = d.rect.Max.X
	}
	yEnd := y + h
	if yEnd > d.rect.Max.Y {
		yEnd = d.rect.Max.Y
	}
	for i := x; i < xEnd; i++ {
		for j := y; j < yEnd; j++ {
			d.img.SetBit(i, j, b)
		}
	}
}

// DrawEllipse draws the outline of an axis aligned ellipse centered on
// (cx, cy) with the midpoint algorithm.
//
// Nothing is drawn when either radius is zero or when the bounding box lies
// entirely outside the display.
func (d *Dev) DrawEllipse(cx, cy, rx, ry int, b image1bit.Bit) {
	if d.img == nil {
		return
	}
	if rx == 0 || ry == 0 {
		return
	}
	if cx+rx < 0 || cx-rx >= d.rect.Max.X || cy+ry < 0 || cy-ry >= d.rect.Max.Y {
		return
	}
	x := 0
	y := ry
	rx2 := float32(rx * rx)
	ry2 := float32(ry * ry)
	twoRx2 := 2 * rx2
	twoRy2 := 2 * ry2
	dx := float32(0)
	dy := twoRx2 * float32(y)
	d1 := ry2 - rx2*float32(ry) + 0.25*rx2
	for dx <= dy {
		d.img.SetBit(cx+x, cy+y, b)
		d.img.SetBit(cx-x, cy+y, b)
		d.img.SetBit(cx+x, cy-y, b)
		d.img.SetBit(cx-x, cy-y, b)
		if d1 < 0 {
			x++
			dx += twoRy2
			d1 += dx + ry2
		} else {
			x++
			y--
			dx += twoRy2
			dy -= twoRx2
			d1 += dx - dy + ry2
		}
	}
	d2 := ry2*(float32(x)+0.5)*(float32(x)+0.5) + rx2*(float32(y)-1)*(float32(y)-1) - rx2*ry2
	for y >= 0 {
		d.img.SetBit(cx+x, cy+y, b)
		d.img.SetBit(cx-x, cy+y, b)
		d.img.SetBit(cx+x, cy-y, b)
		d.img.SetBit(cx-x, cy-y, b)
		if d2 > 0 {
			y--
			dy -= twoRx2
			d2 += rx2 - dy
		} else {
			y--
			x++
			dx += twoRy2
			dy -= twoRx2
			d2 += dx - dy + rx2
		}
	}
}

// DrawCircle draws the outline of a circle centered on (cx, cy).
func (d *Dev) DrawCircle(cx, cy, r int, b image1bit.Bit) {
	d.DrawEllipse(cx, cy, r, r, b)
}
