// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBit(t *testing.T) {
	if s := On.String(); s != "On" {
		t.Fatalf("unexpected String(): %q", s)
	}
	if s := Off.String(); s != "Off" {
		t.Fatalf("unexpected String(): %q", s)
	}
	if r, g, b, a := On.RGBA(); r != 65535 || g != 65535 || b != 65535 || a != 65535 {
		t.Fatal("On is white")
	}
	if r, g, b, a := Off.RGBA(); r != 0 || g != 0 || b != 0 || a != 65535 {
		t.Fatal("Off is black")
	}
}

func TestBitModel(t *testing.T) {
	data := []struct {
		name string
		c    color.Color
		want Bit
	}{
		{"On", On, On},
		{"Off", Off, Off},
		{"white", color.White, On},
		{"black", color.Black, Off},
		{"light gray", color.Gray{0x90}, On},
		{"dark gray", color.Gray{0x70}, Off},
		{"red", color.RGBA{0xFF, 0, 0, 0xFF}, Off},
		{"green", color.RGBA{0, 0xFF, 0, 0xFF}, On},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			if got := BitModel.Convert(line.c); got != line.want {
				t.Fatalf("Convert(%v) = %v, want %v", line.c, got, line.want)
			}
		})
	}
}

func TestVerticalLSB(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 4, 16))
	if v := len(img.Pix); v != 8 {
		t.Fatalf("unexpected Pix length %d", v)
	}
	if img.ColorModel() != BitModel {
		t.Fatal("unexpected color model")
	}
	if v := img.Bounds(); v != image.Rect(0, 0, 4, 16) {
		t.Fatalf("unexpected bounds %v", v)
	}

	// Bit 1 of the second band's second column.
	img.SetBit(1, 9, On)
	want := make([]byte, 8)
	want[5] = 0x02
	if diff := cmp.Diff(img.Pix, want); diff != "" {
		t.Fatalf("unexpected Pix:\n%s", diff)
	}
	if !img.BitAt(1, 9) {
		t.Fatal("expected On")
	}
	if img.BitAt(1, 8) || img.BitAt(0, 9) {
		t.Fatal("expected Off")
	}
	img.SetBit(1, 9, Off)
	if diff := cmp.Diff(img.Pix, make([]byte, 8)); diff != "" {
		t.Fatalf("unexpected Pix:\n%s", diff)
	}

	// Out of bounds operations are silent.
	img.SetBit(-1, 0, On)
	img.SetBit(4, 0, On)
	img.SetBit(0, 16, On)
	if diff := cmp.Diff(img.Pix, make([]byte, 8)); diff != "" {
		t.Fatalf("out of bounds SetBit modified Pix:\n%s", diff)
	}
	if img.BitAt(-1, 0) || img.BitAt(0, 16) {
		t.Fatal("out of bounds BitAt is Off")
	}
}

func TestVerticalLSBSet(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	img.Set(3, 2, color.White)
	if c := img.At(3, 2); c != On {
		t.Fatalf("At(3, 2) = %v", c)
	}
	img.Set(3, 2, color.Black)
	if c := img.At(3, 2); c != Off {
		t.Fatalf("At(3, 2) = %v", c)
	}
}

func TestVerticalLSBNonAligned(t *testing.T) {
	// Bounds not starting at a band boundary still covers every row.
	img := NewVerticalLSB(image.Rect(0, 3, 4, 11))
	if v := len(img.Pix); v != 8 {
		t.Fatalf("unexpected Pix length %d; two bands expected", v)
	}
	for y := 3; y < 11; y++ {
		img.SetBit(2, y, On)
		if !img.BitAt(2, y) {
			t.Fatalf("pixel (2, %d) not set", y)
		}
		img.SetBit(2, y, Off)
	}
	if diff := cmp.Diff(img.Pix, make([]byte, 8)); diff != "" {
		t.Fatalf("unexpected Pix:\n%s", diff)
	}
}

func TestVerticalLSBDraw(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	draw.Src.Draw(img, img.Bounds(), &image.Uniform{On}, image.Point{})
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if diff := cmp.Diff(img.Pix, want); diff != "" {
		t.Fatalf("unexpected Pix:\n%s", diff)
	}
}

func TestVerticalLSBLines(t *testing.T) {
	img := NewVerticalLSB(image.Rect(0, 0, 8, 8))
	img.DrawHLine(1, 7, 4, On)
	for x := 0; x < 8; x++ {
		want := Bit(x >= 1 && x < 7)
		if got := img.BitAt(x, 4); got != want {
			t.Fatalf("HLine pixel (%d, 4) = %v, want %v", x, got, want)
		}
	}
	img = NewVerticalLSB(image.Rect(0, 0, 8, 8))
	img.DrawVLine(2, 6, 3, On)
	for y := 0; y < 8; y++ {
		want := Bit(y >= 2 && y < 6)
		if got := img.BitAt(3, y); got != want {
			t.Fatalf("VLine pixel (3, %d) = %v, want %v", y, got, want)
		}
	}
}

func TestHorizontalMSB(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 3, 3))
	if v := len(img.Pix); v != 2 {
		t.Fatalf("unexpected Pix length %d; 9 bits pack into 2 bytes", v)
	}
	if img.ColorModel() != BitModel {
		t.Fatal("unexpected color model")
	}

	// The packing is contiguous across rows: bit index = x + y*width.
	data := []struct {
		x, y   int
		offset int
		mask   byte
	}{
		{0, 0, 0, 0x80},
		{1, 0, 0, 0x40},
		{2, 0, 0, 0x20},
		{0, 1, 0, 0x10},
		{2, 1, 0, 0x04},
		{1, 2, 0, 0x01},
		{2, 2, 1, 0x80},
	}
	for _, line := range data {
		img.SetBit(line.x, line.y, On)
		if img.Pix[line.offset]&line.mask == 0 {
			t.Fatalf("pixel (%d, %d): expected bit 0x%02X of byte %d", line.x, line.y, line.mask, line.offset)
		}
		if !img.BitAt(line.x, line.y) {
			t.Fatalf("pixel (%d, %d) reads Off", line.x, line.y)
		}
		img.SetBit(line.x, line.y, Off)
	}
	if diff := cmp.Diff(img.Pix, make([]byte, 2)); diff != "" {
		t.Fatalf("unexpected Pix:\n%s", diff)
	}

	// Out of bounds operations are silent.
	img.SetBit(3, 0, On)
	img.SetBit(0, -1, On)
	if diff := cmp.Diff(img.Pix, make([]byte, 2)); diff != "" {
		t.Fatalf("out of bounds SetBit modified Pix:\n%s", diff)
	}
	if img.BitAt(3, 0) || img.BitAt(0, 3) {
		t.Fatal("out of bounds BitAt is Off")
	}
}

func TestHorizontalMSBSet(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 2))
	img.Set(7, 1, color.White)
	if c := img.At(7, 1); c != On {
		t.Fatalf("At(7, 1) = %v", c)
	}
	if img.Pix[1] != 0x01 {
		t.Fatalf("unexpected Pix[1] 0x%02X", img.Pix[1])
	}
}
