// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

// Datasheet: https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// The SSD1306 maps each I²C transaction to either a command stream or a data
// stream through a one byte control prefix. See page 20.

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

const (
	_ACTIVATE_SCROLL     = 0x2F
	_CHARGEPUMP          = 0x8D
	_COLUMNADDR          = 0x21
	_COMSCANDEC          = 0xC8
	_COMSCANINC          = 0xC0
	_DEACTIVATE_SCROLL   = 0x2E
	_DISPLAYALLON_RESUME = 0xA4
	_DISPLAYOFF          = 0xAE
	_DISPLAYON           = 0xAF
	_INVERTDISPLAY       = 0xA7
	_MEMORYMODE          = 0x20
	_NORMALDISPLAY       = 0xA6
	_PAGEADDR            = 0x22
	_SEGREMAP            = 0xA0
	_SETCOMPINS          = 0xDA
	_SETCONTRAST         = 0x81
	_SETDISPLAYCLOCKDIV  = 0xD5
	_SETDISPLAYOFFSET    = 0xD3
	_SETMULTIPLEX        = 0xA8
	_SETPRECHARGE        = 0xD9
	_SETSEGMENTREMAP     = 0xA1
	_SETSTARTLINE        = 0x40
	_SETVCOMDETECT       = 0xDB
)

const (
	i2cCmd  = 0x00 // I²C transaction has stream of command bytes
	i2cData = 0x40 // I²C transaction has stream of data bytes
)

var errClosed = errors.New("ssd1306: device is closed")

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	W:    128,
	H:    64,
	Addr: 0x3c,
}

// Opts defines the options for the device.
type Opts struct {
	// W and H are the display size in pixels. H must be a multiple of 8.
	W int
	H int
	// Addr is the I²C slave address. Defaults to 0x3c; some displays are
	// strapped to 0x3d.
	Addr uint16
	// ExternalVCC must be set when the panel is driven from an external high
	// voltage supply instead of the controller's internal charge pump. It
	// selects the charge pump and precharge timings.
	ExternalVCC bool
}

// NewI2C returns a Dev object that communicates over I²C to an SSD1306
// display controller.
func NewI2C(i i2c.Bus, opts *Opts) (*Dev, error) {
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	// Maximum clock speed is 1/2.5µs = 400KHz.
	return newDev(&i2c.Dev{Bus: i, Addr: addr}, opts)
}

// Dev is an open handle to the display controller.
type Dev struct {
	// Communication.
	c conn.Conn

	// Display size controlled by the SSD1306.
	rect image.Rectangle

	// See page 25 for the GDDRAM pages structure.
	// There are H/8 pages, each covering an horizontal band of 8 pixels high
	// (1 byte) for W bytes. buffer[0] permanently holds the data framing
	// marker so the whole frame ships as a single write; pixels start at
	// buffer[1].
	buffer []byte
	// img aliases the pixel portion of buffer. Every drawing primitive goes
	// through it.
	img *image1bit.VerticalLSB

	externalVCC bool
}

// newDev is the common initialization code.
//
// No bus traffic happens before the options validate and the buffer is
// allocated.
func newDev(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts.W <= 0 {
		return nil, fmt.Errorf("ssd1306: invalid width %d", opts.W)
	}
	if opts.H <= 0 || opts.H&7 != 0 {
		return nil, fmt.Errorf("ssd1306: invalid height %d; must be a multiple of 8", opts.H)
	}
	nbPages := opts.H / 8
	buffer := make([]byte, 1+opts.W*nbPages)
	buffer[0] = i2cData
	rect := image.Rect(0, 0, opts.W, opts.H)
	d := &Dev{
		c:           c,
		rect:        rect,
		buffer:      buffer,
		img:         &image1bit.VerticalLSB{Pix: buffer[1:], Stride: opts.W, Rect: rect},
		externalVCC: opts.ExternalVCC,
	}
	if err := d.sendCommand(getInitCmd(opts)); err != nil {
		return nil, err
	}
	// A scroll left over from a previous run would keep shifting the RAM.
	if err := d.StopScroll(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%s, %s}", d.c, d.rect.Max)
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw implements display.Drawer.
//
// It draws synchronously, once this function returns, the display is
// updated. It means that on the slow I²C bus, it may be preferable to defer
// Draw() calls to a background goroutine.
//
// There is no differential update: the whole frame is transferred every
// time.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.buffer == nil {
		return errClosed
	}
	draw.Src.Draw(d.img, r.Intersect(d.rect), src, sp)
	return d.Display()
}

// Write writes a buffer of pixels to the display and flushes it.
//
// The format is unusual as each byte represents 8 vertical pixels at a time.
// The format is horizontal bands of 8 pixels high.
//
// This function accepts the content of image1bit.VerticalLSB.Pix.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.buffer == nil {
		return 0, errClosed
	}
	if len(pixels) != len(d.buffer)-1 {
		return 0, fmt.Errorf("ssd1306: invalid pixel stream length; expected %d bytes, got %d bytes", len(d.buffer)-1, len(pixels))
	}
	copy(d.buffer[1:], pixels)
	if err := d.Display(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Display flushes the frame buffer to the display.
//
// It programs the column and page addressing window to cover the whole
// screen, then pushes the frame in exactly one bulk write of the framing
// marker followed by the pixel bytes. This is the only bus traffic
// proportional to the buffer size; all drawing operations are local.
func (d *Dev) Display() error {
	if d.buffer == nil {
		return errClosed
	}
	if err := d.sendCommand([]byte{
		_COLUMNADDR, 0x00, byte(d.rect.Dx() - 1),
		_PAGEADDR, 0x00, byte(d.rect.Dy()/8 - 1),
	}); err != nil {
		return err
	}
	return d.c.Tx(d.buffer, nil)
}

// Enable turns the panel output on or off.
//
// Off is a low power standby mode; the controller RAM and the frame buffer
// are both preserved.
func (d *Dev) Enable(on bool) error {
	if d.buffer == nil {
		return errClosed
	}
	b := []byte{_DISPLAYOFF}
	if on {
		b[0] = _DISPLAYON
	}
	return d.sendCommand(b)
}

// Halt implements conn.Resource. It turns the display off.
func (d *Dev) Halt() error {
	return d.Enable(false)
}

// SetContrast changes the screen contrast.
func (d *Dev) SetContrast(level byte) error {
	if d.buffer == nil {
		return errClosed
	}
	return d.sendCommand([]byte{_SETCONTRAST, level})
}

// Invert the display (black on white vs white on black).
func (d *Dev) Invert(blackOnWhite bool) error {
	if d.buffer == nil {
		return errClosed
	}
	b := []byte{_NORMALDISPLAY}
	if blackOnWhite {
		b[0] = _INVERTDISPLAY
	}
	return d.sendCommand(b)
}

// Close releases the frame buffer. The device is unusable afterwards; create
// a new Dev to drive the display again.
//
// Bus operations on a closed device return an error; drawing operations are
// silent no-ops.
func (d *Dev) Close() error {
	d.buffer = nil
	d.img = nil
	return nil
}

func getInitCmd(opts *Opts) []byte {
	// COM pin configuration depends on the panel aspect ratio: wide and short
	// panels use sequential pins without remap, anything squarer uses the
	// alternative configuration with remap. See page 40.
	comPins := byte(0x12)
	if opts.W > 2*opts.H {
		comPins = 0x02
	}
	chargePump := byte(0x14)
	precharge := byte(0xF1)
	if opts.ExternalVCC {
		chargePump = 0x10
		precharge = 0x22
	}
	// Initialize the device by fully resetting all values.
	// Page 64 has the full recommended flow.
	// Page 28 lists all the commands.
	return []byte{
		_DISPLAYOFF,
		_SETMULTIPLEX, byte(opts.H - 1),
		_SETDISPLAYOFFSET, 0x00,
		_SETSTARTLINE | 0x00,
		_SETSEGMENTREMAP,
		_COMSCANDEC,
		_SETCOMPINS, comPins,
		_SETCONTRAST, 0xFF,
		_DISPLAYALLON_RESUME,
		_NORMALDISPLAY,
		_SETDISPLAYCLOCKDIV, 0x80,
		_CHARGEPUMP, chargePump,
		_SETPRECHARGE, precharge,
		_SETVCOMDETECT, 0x30,
		_MEMORYMODE, 0x00, // Horizontal.
		_DISPLAYON,
	}
}

func (d *Dev) sendCommand(c []byte) error {
	return d.c.Tx(append([]byte{i2cCmd}, c...), nil)
}

var _ conn.Resource = &Dev{}
var _ display.Drawer = &Dev{}
