// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func TestScroll_left(t *testing.T) {
	d, pb := getDev(t, []i2ctest.IO{
		{Addr: 0x3c, W: []byte{0x00, 0x2E, 0x27, 0x00, 0x00, 0x07, 0x07, 0x00, 0xFF, 0x2F}},
	})
	if err := d.Scroll(Left, FrameRate2, 0, -1); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestScroll_rightBand(t *testing.T) {
	// Pages 1 to 3 inclusive, one step every 25 frames.
	d, pb := getDev(t, []i2ctest.IO{
		{Addr: 0x3c, W: []byte{0x00, 0x2E, 0x26, 0x00, 0x01, 0x06, 0x03, 0x00, 0xFF, 0x2F}},
	})
	if err := d.Scroll(Right, FrameRate25, 8, 32); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestScroll_invalid(t *testing.T) {
	d, pb := getDev(t, nil)
	tests := []struct {
		name      string
		o         Orientation
		startLine int
		endLine   int
	}{
		{"unaligned start", Left, 3, 64},
		{"negative start", Left, -8, -1},
		{"start past bottom", Left, 64, -1},
		{"unaligned end", Left, 0, 4},
		{"zero end", Left, 0, 0},
		{"end past bottom", Left, 0, 72},
		{"empty band", Left, 16, 8},
		{"vertical opcode", Orientation(0x29), 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := d.Scroll(tt.o, FrameRate2, tt.startLine, tt.endLine); err == nil {
				t.Fatal("expected error")
			}
		})
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestStopScroll(t *testing.T) {
	d, pb := getDev(t, []i2ctest.IO{
		{Addr: 0x3c, W: []byte{0x00, 0x2E}},
	})
	if err := d.StopScroll(); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestScrollVertical_down(t *testing.T) {
	d, pb := getDev(t, nil)
	d.SetPixel(5, 0, image1bit.On)
	d.ScrollVertical(true)
	if d.img.Pix[5] != 0x02 {
		t.Fatal(d.img.Pix[5])
	}
	if got := countPixels(d); got != 1 {
		t.Fatal(got)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestScrollVertical_downWraps(t *testing.T) {
	d, pb := getDev(t, nil)
	d.SetPixel(5, 63, image1bit.On)
	d.ScrollVertical(true)
	if !bool(d.img.BitAt(5, 0)) {
		t.Fatal("bottom pixel did not wrap to the top")
	}
	if got := countPixels(d); got != 1 {
		t.Fatal(got)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestScrollVertical_up(t *testing.T) {
	d, pb := getDev(t, nil)
	d.SetPixel(5, 9, image1bit.On)
	d.ScrollVertical(false)
	if !bool(d.img.BitAt(5, 8)) {
		t.Fatal("pixel did not move up")
	}
	if got := countPixels(d); got != 1 {
		t.Fatal(got)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestScrollVertical_upWraps(t *testing.T) {
	d, pb := getDev(t, nil)
	d.SetPixel(5, 0, image1bit.On)
	d.ScrollVertical(false)
	if !bool(d.img.BitAt(5, 63)) {
		t.Fatal("top pixel did not wrap to the bottom")
	}
	if got := countPixels(d); got != 1 {
		t.Fatal(got)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestScrollVertical_periodic(t *testing.T) {
	d, pb := getDev(t, nil)
	for i := range d.img.Pix {
		d.img.Pix[i] = byte(i*7 + 13)
	}
	want := pixSnapshot(d)
	for i := 0; i < 64; i++ {
		d.ScrollVertical(true)
	}
	if diff := cmp.Diff(d.img.Pix, want); diff != "" {
		t.Fatalf("64 scrolls down did not restore the buffer:\n%s", diff)
	}
	for i := 0; i < 64; i++ {
		d.ScrollVertical(false)
	}
	if diff := cmp.Diff(d.img.Pix, want); diff != "" {
		t.Fatalf("64 scrolls up did not restore the buffer:\n%s", diff)
	}
	d.ScrollVertical(true)
	d.ScrollVertical(false)
	if diff := cmp.Diff(d.img.Pix, want); diff != "" {
		t.Fatalf("down then up is not the identity:\n%s", diff)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}
