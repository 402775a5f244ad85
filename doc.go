// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ssd1306 controls a monochrome OLED display via a SSD1306
// controller connected over I²C.
//
// The driver keeps a full frame buffer in memory. The drawing primitives
// (pixels, lines, rectangles, ellipses, text and bitmaps) only modify the
// buffer; Display() pushes the complete frame to the device in a single bulk
// write. There is no differential update, so on a 100kHz bus a 128x64 frame
// takes roughly 100ms to transfer. Batch the drawing, then flush once.
//
// The controller can scroll a horizontal band by itself without further bus
// traffic, see Scroll().
//
// Some boards expose a RES / Reset pin. If present, it must be normally be
// High. When set to Low (Ground), it enables the reset circuitry. It can be
// used externally to this driver, if used, the driver must be reinstantiated.
//
// # Datasheets
//
// Product page:
//
// http://www.solomon-systech.com/en/product/display-ic/oled-driver-controller/ssd1306/
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
//
// "DM-OLED096-624": https://drive.google.com/file/d/0B5lkVYnewKTGaEVENlYwbDkxSGM/view
package ssd1306
