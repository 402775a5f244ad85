// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements an SSD1306 panel emulator that renders to the
// terminal (stdout) using ANSI color codes.
//
// It implements i2c.Bus and decodes the controller's wire framing, so the
// ssd1306 driver runs against it unmodified. It is also a display.Drawer on
// its own. Useful while you are waiting for your OLED display to come by
// mail.
package screen2d

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	// W and H are the emulated panel size in pixels. H must be a multiple of
	// 8, like on the real panel.
	W int
	H int
	// Palette overrides the terminal palette used for lit pixels.
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is an SSD1306 panel emulator that outputs to the console.
//
// It accepts the same bus traffic the real panel does: command frames are
// accepted and ignored, every full data frame redraws the emulated panel in
// place.
type Dev struct {
	w       io.Writer
	width   int
	height  int
	palette ansi256.Palette

	// pixels is in the controller's page packed format, one byte per 8
	// vertically stacked pixels.
	pixels []byte
	buf    bytes.Buffer
	drawn  bool
}

// New returns a Dev that displays at the console.
//
// Permits to do local testing of display animations.
func New(opts *Opts) (*Dev, error) {
	if opts.W <= 0 {
		return nil, fmt.Errorf("screen2d: invalid width %d", opts.W)
	}
	if opts.H <= 0 || opts.H&7 != 0 {
		return nil, fmt.Errorf("screen2d: invalid height %d; must be a multiple of 8", opts.H)
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Dev{
		w:       colorable.NewColorableStdout(),
		width:   opts.W,
		height:  opts.H,
		palette: *p,
		pixels:  make([]byte, opts.W*opts.H/8),
	}, nil
}

func (d *Dev) String() string {
	return "Screen2D"
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds is the emulated panel size.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

// Draw implements display.Drawer.
//
// It rasterizes src into the emulated frame and redraws it.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	img := &image1bit.VerticalLSB{Pix: d.pixels, Stride: d.width, Rect: d.Bounds()}
	draw.Src.Draw(img, r.Intersect(d.Bounds()), src, sp)
	return d.refresh()
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the shell is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\033[0m\n"))
	return err
}

// Tx implements i2c.Bus.
//
// The frame layout matches the SSD1306 wire protocol: the first written byte
// selects command framing (accepted and discarded) or data framing (a full
// frame redraw).
func (d *Dev) Tx(addr uint16, w, r []byte) error {
	if len(r) != 0 {
		return errors.New("screen2d: read is not supported")
	}
	if len(w) == 0 {
		return nil
	}
	switch w[0] {
	case 0x00:
		return nil
	case 0x40:
		if len(w)-1 != len(d.pixels) {
			return fmt.Errorf("screen2d: invalid frame length; expected %d bytes, got %d bytes", len(d.pixels), len(w)-1)
		}
		copy(d.pixels, w[1:])
		return d.refresh()
	default:
		return fmt.Errorf("screen2d: unknown framing marker %#02x", w[0])
	}
}

// SetSpeed implements i2c.Bus. The terminal has no clock to program.
func (d *Dev) SetSpeed(f physic.Frequency) error {
	return nil
}

// Write accepts a page packed frame, like ssd1306.Dev.Write, and redraws the
// emulated panel.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.pixels) {
		return 0, fmt.Errorf("screen2d: invalid frame length; expected %d bytes, got %d bytes", len(d.pixels), len(pixels))
	}
	copy(d.pixels, pixels)
	if err := d.refresh(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per
	// call. The cursor is moved back over the previous frame so successive
	// frames draw in place.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	if d.drawn {
		fmt.Fprintf(&d.buf, "\033[%dA", d.height)
	}
	d.drawn = true
	on := d.palette.Block(color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF})
	for y := 0; y < d.height; y++ {
		mask := byte(1) << (uint(y) & 7)
		row := d.pixels[d.width*(y/8):]
		for x := 0; x < d.width; x++ {
			if row[x]&mask != 0 {
				_, _ = d.buf.WriteString(on)
			} else {
				_, _ = d.buf.WriteString(" ")
			}
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ i2c.Bus = &Dev{}
var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
