// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"math/bits"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func pixSnapshot(d *Dev) []byte {
	out := make([]byte, len(d.img.Pix))
	copy(out, d.img.Pix)
	return out
}

func countPixels(d *Dev) int {
	n := 0
	for _, b := range d.img.Pix {
		n += bits.OnesCount8(b)
	}
	return n
}

func TestSetPixel(t *testing.T) {
	d, pb := getDev(t, nil)
	d.SetPixel(0, 0, image1bit.On)
	d.SetPixel(127, 63, image1bit.On)
	if d.img.Pix[0] != 0x01 {
		t.Fatal(d.img.Pix[0])
	}
	if d.img.Pix[7*128+127] != 0x80 {
		t.Fatal(d.img.Pix[7*128+127])
	}
	if got := countPixels(d); got != 2 {
		t.Fatal(got)
	}
	d.SetPixel(0, 0, image1bit.Off)
	if d.img.Pix[0] != 0x00 {
		t.Fatal(d.img.Pix[0])
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestSetPixel_outOfBounds(t *testing.T) {
	d, pb := getDev(t, nil)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {128, 0}, {0, 64}, {128, 64}, {-1, -1}, {1000, 1000}} {
		d.SetPixel(p[0], p[1], image1bit.On)
	}
	if got := countPixels(d); got != 0 {
		t.Fatal(got)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestClear(t *testing.T) {
	d, pb := getDev(t, nil)
	d.FillRect(10, 10, 50, 30, image1bit.On)
	d.Clear()
	if diff := cmp.Diff(d.img.Pix, make([]byte, 128*8)); diff != "" {
		t.Fatal(diff)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawLine_horizontal(t *testing.T) {
	d, pb := getDev(t, nil)
	d.DrawLine(2, 5, 10, 5, image1bit.On)
	for x := 2; x <= 10; x++ {
		if !bool(d.img.BitAt(x, 5)) {
			t.Fatalf("missing pixel at (%d, 5)", x)
		}
	}
	if got := countPixels(d); got != 9 {
		t.Fatal(got)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawLine_vertical(t *testing.T) {
	d, pb := getDev(t, nil)
	d.DrawLine(7, 3, 7, 20, image1bit.On)
	for y := 3; y <= 20; y++ {
		if !bool(d.img.BitAt(7, y)) {
			t.Fatalf("missing pixel at (7, %d)", y)
		}
	}
	if got := countPixels(d); got != 18 {
		t.Fatal(got)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawLine_diagonal(t *testing.T) {
	d, pb := getDev(t, nil)
	d.DrawLine(0, 0, 7, 7, image1bit.On)
	for i := 0; i <= 7; i++ {
		if !bool(d.img.BitAt(i, i)) {
			t.Fatalf("missing pixel at (%d, %d)", i, i)
		}
	}
	if got := countPixels(d); got != 8 {
		t.Fatal(got)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawLine_symmetric(t *testing.T) {
	d, pb := getDev(t, nil)
	lines := [][4]int{
		{0, 0, 127, 63},
		{5, 60, 120, 2},
		{3, 3, 3, 40},
		{10, 8, 90, 8},
		{0, 63, 127, 0},
		{17, 5, 23, 59},
		// Slope 1/2 ties the error term on every other column.
		{0, 0, 4, 2},
		{4, 2, 0, 0},
		{20, 30, 24, 28},
	}
	for _, l := range lines {
		d.Clear()
		d.DrawLine(l[0], l[1], l[2], l[3], image1bit.On)
		fwd := pixSnapshot(d)
		d.Clear()
		d.DrawLine(l[2], l[3], l[0], l[1], image1bit.On)
		if diff := cmp.Diff(pixSnapshot(d), fwd); diff != "" {
			t.Fatalf("line %v depends on endpoint order:\n%s", l, diff)
		}
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawLine_singlePoint(t *testing.T) {
	d, pb := getDev(t, nil)
	d.DrawLine(12, 34, 12, 34, image1bit.On)
	if !bool(d.img.BitAt(12, 34)) {
		t.Fatal("missing pixel")
	}
	if got := countPixels(d); got != 1 {
		t.Fatal(got)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawRect(t *testing.T) {
	d, pb := getDev(t, nil)
	d.DrawRect(0, 0, 8, 8, image1bit.On)
	// An 8x8 outline is exactly the 28 perimeter pixels.
	if got := countPixels(d); got != 28 {
		t.Fatal(got)
	}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			onPerimeter := x == 0 || x == 7 || y == 0 || y == 7
			if bool(d.img.BitAt(x, y)) != onPerimeter {
				t.Fatalf("wrong pixel at (%d, %d)", x, y)
			}
		}
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawRect_clipped(t *testing.T) {
	d, pb := getDev(t, nil)
	// Fully offscreen draws nothing.
	d.DrawRect(-20, -20, 10, 10, image1bit.On)
	if got := countPixels(d); got != 0 {
		t.Fatal(got)
	}
	// Partially offscreen keeps the visible edges. Only the top row and the
	// left column are on the display, 8 pixels each sharing one corner.
	d.DrawRect(120, 56, 16, 16, image1bit.On)
	if got := countPixels(d); got != 15 {
		t.Fatal(got)
	}
	if !bool(d.img.BitAt(120, 56)) || !bool(d.img.BitAt(127, 56)) || !bool(d.img.BitAt(120, 63)) {
		t.Fatal("missing visible edge")
	}
	if bool(d.img.BitAt(127, 63)) {
		t.Fatal("interior pixel set")
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestFillRect(t *testing.T) {
	d, pb := getDev(t, nil)
	d.FillRect(2, 3, 4, 5, image1bit.On)
	if got := countPixels(d); got != 4*5 {
		t.Fatal(got)
	}
	for x := 2; x < 6; x++ {
		for y := 3; y < 8; y++ {
			if !bool(d.img.BitAt(x, y)) {
				t.Fatalf("missing pixel at (%d, %d)", x, y)
			}
		}
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestFillRect_negativeOrigin(t *testing.T) {
	d, pb := getDev(t, nil)
	// A negative origin moves to the display edge, the extent is kept.
	d.FillRect(-2, -2, 4, 4, image1bit.On)
	if got := countPixels(d); got != 16 {
		t.Fatal(got)
	}
	if !bool(d.img.BitAt(0, 0)) || !bool(d.img.BitAt(3, 3)) {
		t.Fatal("wrong fill placement")
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestFillRect_clipped(t *testing.T) {
	d, pb := getDev(t, nil)
	d.FillRect(120, 60, 20, 20, image1bit.On)
	if got := countPixels(d); got != 8*4 {
		t.Fatal(got)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestFillRect_borderBand(t *testing.T) {
	d, pb := getDev(t, nil)
	d.FillRect(10, 10, 20, 20, image1bit.On)
	d.FillRect(12, 12, 16, 16, image1bit.Off)
	// Only a two pixel wide border band is left.
	if got := countPixels(d); got != 20*20-16*16 {
		t.Fatal(got)
	}
	for x := 10; x < 30; x++ {
		for y := 10; y < 30; y++ {
			inner := x >= 12 && x < 28 && y >= 12 && y < 28
			if bool(d.img.BitAt(x, y)) == inner {
				t.Fatalf("wrong pixel at (%d, %d)", x, y)
			}
		}
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawEllipse_symmetry(t *testing.T) {
	d, pb := getDev(t, nil)
	cx, cy := 64, 32
	d.DrawEllipse(cx, cy, 20, 10, image1bit.On)
	if countPixels(d) == 0 {
		t.Fatal("nothing drawn")
	}
	for x := 0; x < 128; x++ {
		for y := 0; y < 64; y++ {
			if !bool(d.img.BitAt(x, y)) {
				continue
			}
			mx := 2*cx - x
			my := 2*cy - y
			if !bool(d.img.BitAt(mx, y)) || !bool(d.img.BitAt(x, my)) || !bool(d.img.BitAt(mx, my)) {
				t.Fatalf("asymmetric outline at (%d, %d)", x, y)
			}
		}
	}
	// The outline passes through the four extreme points.
	for _, p := range [][2]int{{cx + 20, cy}, {cx - 20, cy}, {cx, cy + 10}, {cx, cy - 10}} {
		if !bool(d.img.BitAt(p[0], p[1])) {
			t.Fatalf("missing extreme point (%d, %d)", p[0], p[1])
		}
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawEllipse_degenerate(t *testing.T) {
	d, pb := getDev(t, nil)
	d.DrawEllipse(64, 32, 0, 10, image1bit.On)
	d.DrawEllipse(64, 32, 10, 0, image1bit.On)
	// Fully outside the display.
	d.DrawEllipse(-50, -50, 3, 3, image1bit.On)
	d.DrawEllipse(200, 200, 3, 3, image1bit.On)
	if got := countPixels(d); got != 0 {
		t.Fatal(got)
	}
	// Partially visible clips silently.
	d.DrawEllipse(0, 0, 5, 5, image1bit.On)
	if countPixels(d) == 0 {
		t.Fatal("clipped ellipse drew nothing")
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDrawCircle(t *testing.T) {
	d, pb := getDev(t, nil)
	d.DrawCircle(64, 32, 8, image1bit.On)
	want := pixSnapshot(d)
	d.Clear()
	d.DrawEllipse(64, 32, 8, 8, image1bit.On)
	if diff := cmp.Diff(pixSnapshot(d), want); diff != "" {
		t.Fatal(diff)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}
