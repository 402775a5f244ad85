// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ssd1306

import "fmt"

// FrameRate determines scrolling speed, expressed as the number of frames
// between each scroll step. The underlying values are the hardware interval
// encoding; use the named constants.
type FrameRate byte

// Valid values for FrameRate.
const (
	FrameRate2   FrameRate = 7
	FrameRate3   FrameRate = 4
	FrameRate4   FrameRate = 5
	FrameRate5   FrameRate = 0
	FrameRate25  FrameRate = 6
	FrameRate64  FrameRate = 1
	FrameRate128 FrameRate = 2
	FrameRate256 FrameRate = 3
)

// Orientation is the direction of the hardware scroll.
type Orientation byte

// Valid values for Orientation.
const (
	Left  Orientation = 0x27
	Right Orientation = 0x26
)

// Scroll starts hardware scrolling of a horizontal band of the display.
//
// startLine and endLine specify the band in pixels and must be multiples of
// 8. Pass -1 as endLine to scroll to the bottom of the display.
//
// The scrolling runs inside the controller without any further bus traffic
// and keeps running until StopScroll is called.
func (d *Dev) Scroll(o Orientation, rate FrameRate, startLine, endLine int) error {
	if d.buffer == nil {
		return errClosed
	}
	if o != Left && o != Right {
		return fmt.Errorf("ssd1306: invalid orientation %#02x", byte(o))
	}
	if startLine%8 != 0 || startLine < 0 || startLine >= d.rect.Dy() {
		return fmt.Errorf("ssd1306: invalid startLine %d", startLine)
	}
	if endLine == -1 {
		endLine = d.rect.Dy()
	}
	if endLine%8 != 0 || endLine <= 0 || endLine > d.rect.Dy() {
		return fmt.Errorf("ssd1306: invalid endLine %d", endLine)
	}
	if startLine >= endLine {
		return fmt.Errorf("ssd1306: startLine (%d) must be lower than endLine (%d)", startLine, endLine)
	}
	startPage := startLine / 8
	endPage := endLine / 8
	// The scroll window must not be reprogrammed while a scroll is active, so
	// stop any previous one in the same transaction. Page 28 has the command
	// layout: opcode, dummy, start page, frame rate, end page, two dummies.
	return d.sendCommand([]byte{
		_DEACTIVATE_SCROLL,
		byte(o), 0x00, byte(startPage), byte(rate), byte(endPage - 1), 0x00, 0xFF,
		_ACTIVATE_SCROLL,
	})
}

// StopScroll stops any scrolling previously set.
//
// The controller RAM may have shifted while the scroll was active; push the
// frame buffer again to restore the picture.
func (d *Dev) StopScroll() error {
	if d.buffer == nil {
		return errClosed
	}
	return d.sendCommand([]byte{_DEACTIVATE_SCROLL})
}

// ScrollVertical rolls the frame buffer one pixel up or down with
// wraparound.
//
// This is done in software on the frame buffer only; call Display to make
// it visible. Repeating it Bounds().Dy() times returns the buffer to its
// original content.
func (d *Dev) ScrollVertical(down bool) {
	if d.img == nil {
		return
	}
	w := d.rect.Dx()
	pages := d.rect.Dy() / 8
	pix := d.img.Pix
	if down {
		for col := 0; col < w; col++ {
			carry := byte(0)
			for page := 0; page < pages; page++ {
				i := page*w + col
				b := pix[i]
				next := byte(0)
				if b&0x80 != 0 {
					next = 0x01
				}
				pix[i] = b<<1 | carry
				carry = next
			}
			pix[col] = pix[col]&^0x01 | carry
		}
	} else {
		for col := 0; col < w; col++ {
			carry := byte(0)
			for page := pages - 1; page >= 0; page-- {
				i := page*w + col
				b := pix[i]
				next := byte(0)
				if b&0x01 != 0 {
					next = 0x80
				}
				pix[i] = b>>1 | carry
				carry = next
			}
			last := (pages-1)*w + col
			pix[last] = pix[last]&^0x80 | carry
		}
	}
}
