// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// ssd1306-demo runs a demonstration reel on an SSD1306 OLED display.
//
// With -emulate the reel renders to the terminal instead, no hardware
// needed.
package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"math/rand"
	"os"
	"time"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/font"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/devices/v3/ssd1306/screen2d"
	"periph.io/x/host/v3"
)

func main() {
	busName := flag.String("bus", "", "I²C bus to use (default: first available)")
	addr := flag.Uint("addr", 0x3c, "I²C address of the display")
	width := flag.Int("width", 128, "display width")
	height := flag.Int("height", 64, "display height")
	externalVCC := flag.Bool("external-vcc", false, "panel is driven by an external high voltage supply")
	emulate := flag.Bool("emulate", false, "render to the terminal instead of a real display")
	once := flag.Bool("once", false, "run the reel once instead of looping")
	flag.Parse()

	opts := ssd1306.Opts{
		W:           *width,
		H:           *height,
		Addr:        uint16(*addr),
		ExternalVCC: *externalVCC,
	}
	var bus i2c.Bus
	if *emulate {
		scr, err := screen2d.New(&screen2d.Opts{W: opts.W, H: opts.H})
		if err != nil {
			fatal(err)
		}
		defer scr.Halt()
		bus = scr
	} else {
		if _, err := host.Init(); err != nil {
			fatal(err)
		}
		b, err := i2creg.Open(*busName)
		if err != nil {
			fatal(err)
		}
		defer b.Close()
		bus = b
	}
	dev, err := ssd1306.NewI2C(bus, &opts)
	if err != nil {
		fatal(err)
	}

	for {
		if err := reel(dev); err != nil {
			fatal(err)
		}
		if *once {
			break
		}
	}
	if err := dev.Halt(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "ssd1306-demo: "+err.Error())
	os.Exit(1)
}

func reel(d *ssd1306.Dev) error {
	demos := []func(d *ssd1306.Dev) error{
		demoWrite,
		demoContrast,
		demoInvert,
		demoPixels,
		demoScalingStar,
		demoScrollingStars,
		demoOversizeImage,
		demoLines,
		demoRectangles,
		demoEllipses,
		demoFills,
		demoPower,
	}
	for _, demo := range demos {
		if err := demo(d); err != nil {
			return err
		}
		time.Sleep(750 * time.Millisecond)
	}
	return nil
}

// drawStar draws an upright 5 point star centered on (cx, cy).
//
// The vertices describe the outer edge of the star inside a 29x30 grid,
// starting from the top tip going clockwise, shifted to be centered on the
// origin before scaling.
func drawStar(d *ssd1306.Dev, cx, cy int, scale float64) {
	const offsetX, offsetY = 15, 16
	v := [10][2]int{
		{15, 0}, {18, 11}, {30, 11}, {21, 18}, {25, 29},
		{15, 22}, {5, 29}, {9, 18}, {0, 11}, {11, 11},
	}
	for i := 0; i < 10; i++ {
		n := (i + 1) % 10
		d.DrawLine(
			cx+int(scale*float64(v[i][0]-offsetX)),
			cy+int(scale*float64(v[i][1]-offsetY)),
			cx+int(scale*float64(v[n][0]-offsetX)),
			cy+int(scale*float64(v[n][1]-offsetY)),
			image1bit.On)
	}
}

func demoWrite(d *ssd1306.Dev) error {
	d.Clear()
	d.DrawString(5, 5, "SSD1306 Demo", font.Basic6x8)
	d.DrawString(5, 22, "periph.io driver", font.Basic6x8)
	d.DrawString(5, 32, "Fonts: 6x8 5x8", font.Basic5x8)
	d.DrawString(5, 52, "github.com/periph", font.Basic5x8)
	if err := d.Display(); err != nil {
		return err
	}
	time.Sleep(1250 * time.Millisecond)
	return nil
}

func demoContrast(d *ssd1306.Dev) error {
	w := d.Bounds().Dx()
	h := d.Bounds().Dy()
	d.Clear()
	d.FillRect(0, 0, w, h, image1bit.On)
	if err := d.Display(); err != nil {
		return err
	}
	step := 32
	level := 0
	for cycles := (255 / step) * 4; cycles > 0; cycles-- {
		if err := d.SetContrast(byte(level)); err != nil {
			return err
		}
		d.FillRect(8, 10, 112, 16, image1bit.Off)
		d.DrawString(12, 14, fmt.Sprintf("Contrast: %d", level), font.Basic6x8)
		if err := d.Display(); err != nil {
			return err
		}
		time.Sleep(100 * time.Millisecond)
		// Bounce between 0 and 255.
		level += step
		if level > 255 {
			level = 255
		} else if level < 0 {
			level = 0
		}
		if (level == 255 && step > 0) || (level == 0 && step < 0) {
			step = -step
		}
	}
	return d.SetContrast(255)
}

func demoInvert(d *ssd1306.Dev) error {
	d.Clear()
	d.DrawString(10, 25, "Inverting...", font.Basic6x8)
	if err := d.Display(); err != nil {
		return err
	}
	time.Sleep(500 * time.Millisecond)
	if err := d.Invert(true); err != nil {
		return err
	}
	time.Sleep(500 * time.Millisecond)
	if err := d.Invert(false); err != nil {
		return err
	}
	time.Sleep(500 * time.Millisecond)
	return nil
}

func demoPixels(d *ssd1306.Dev) error {
	w := d.Bounds().Dx()
	h := d.Bounds().Dy()
	half := w / 2
	d.Clear()
	d.FillRect(0, 0, half, h, image1bit.On)
	// Rain lit pixels on the dark half and dark pixels on the lit half.
	for i := 0; i < 100; i++ {
		d.SetPixel(rand.Intn(half)+half, rand.Intn(h), image1bit.On)
		d.SetPixel(rand.Intn(half), rand.Intn(h), image1bit.Off)
		if err := d.Display(); err != nil {
			return err
		}
	}
	return nil
}

func demoLines(d *ssd1306.Dev) error {
	w := d.Bounds().Dx()
	h := d.Bounds().Dy()
	d.Clear()
	// A box around the edges, drawn from the top left corner clockwise.
	d.DrawLine(0, 0, w-1, 0, image1bit.On)
	d.DrawLine(w-1, 0, w-1, h-1, image1bit.On)
	d.DrawLine(w-1, h-1, 0, h-1, image1bit.On)
	d.DrawLine(0, h-1, 0, 0, image1bit.On)
	// Diagonals from corner to corner.
	d.DrawLine(0, 0, w-1, h-1, image1bit.On)
	d.DrawLine(0, h-1, w-1, 0, image1bit.On)
	return d.Display()
}

func demoScalingStar(d *ssd1306.Dev) error {
	starX := d.Bounds().Dx()/2 - 20
	starY := d.Bounds().Dy()/2 - 15
	scale := 0.6
	step := 0.1
	for cycles := 5; cycles > 0; {
		d.Clear()
		drawStar(d, starX+int(scale*10), starY+int(scale*15), scale)
		if err := d.Display(); err != nil {
			return err
		}
		if (scale > 3.0 && step > 0) || (scale < 0.8 && step < 0) {
			step = -step
			cycles--
		}
		scale += step
	}
	return nil
}

func demoScrollingStars(d *ssd1306.Dev) error {
	w := d.Bounds().Dx()
	h := d.Bounds().Dy()
	d.Clear()
	// A staggered grid of small stars.
	for y := 10; y < h; y += 16 {
		x := 10
		if (y/16)%2 != 0 {
			x = 19
		}
		for ; x < w; x += 25 {
			drawStar(d, x, y, 0.45)
		}
	}
	if err := d.Display(); err != nil {
		return err
	}
	// Roll the frame buffer over one full screen height, then let the
	// controller scroll on its own in each direction.
	for i := 0; i < h; i++ {
		d.ScrollVertical(true)
		if err := d.Display(); err != nil {
			return err
		}
	}
	if err := d.Scroll(ssd1306.Right, ssd1306.FrameRate5, 0, -1); err != nil {
		return err
	}
	time.Sleep(1500 * time.Millisecond)
	if err := d.StopScroll(); err != nil {
		return err
	}
	for i := 0; i < h; i++ {
		d.ScrollVertical(false)
		if err := d.Display(); err != nil {
			return err
		}
	}
	if err := d.Scroll(ssd1306.Left, ssd1306.FrameRate5, 0, -1); err != nil {
		return err
	}
	time.Sleep(1500 * time.Millisecond)
	return d.StopScroll()
}

func demoRectangles(d *ssd1306.Dev) error {
	w := d.Bounds().Dx()
	xCent := w / 2
	yCent := d.Bounds().Dy() / 2
	x := 0
	for cycles := 10; cycles > 0; cycles-- {
		for i := 0; i < 15; i++ {
			d.Clear()
			for r := i; r < w*2; r += 15 {
				d.DrawRect(xCent-r/2+x-100, yCent-r/2, r, r, image1bit.On)
			}
			if err := d.Display(); err != nil {
				return err
			}
			x++
		}
	}
	return nil
}

func demoEllipses(d *ssd1306.Dev) error {
	w := d.Bounds().Dx()
	xCent := w / 2
	yCent := d.Bounds().Dy() / 2
	for cycles := 5; cycles > 0; cycles-- {
		for i := 0; i < 20; i++ {
			d.Clear()
			wt := i
			ht := i / 4
			// Two opposing, slightly offset ellipse patterns interfere.
			for r := 0; r < w*2; r += 20 {
				d.DrawEllipse(-20, yCent-10, wt, ht, image1bit.On)
				d.DrawEllipse(w+20, yCent+10, wt, ht, image1bit.On)
				wt += 20
				ht += 5
			}
			for r := i; r <= w; r += 20 {
				d.DrawCircle(xCent, yCent, r, image1bit.On)
			}
			if err := d.Display(); err != nil {
				return err
			}
		}
	}
	return nil
}

func demoFills(d *ssd1306.Dev) error {
	h := d.Bounds().Dy()
	xCent := d.Bounds().Dx() / 4
	yCent := h / 2
	for cycles := 5; cycles > 0; cycles-- {
		for i := 0; i < 20; i++ {
			d.Clear()
			// Hollowed out rectangles from largest to smallest.
			for r := h + i; r > 0; r -= 20 {
				d.FillRect(xCent-r/2, yCent-r/2, int(float64(r)*1.75), r, image1bit.On)
				if r-10 > 0 {
					d.FillRect(xCent-r/2+5, yCent-r/2+5, int(float64(r-10)*1.75), r-10, image1bit.Off)
				}
			}
			if err := d.Display(); err != nil {
				return err
			}
		}
	}
	return nil
}

func demoPower(d *ssd1306.Dev) error {
	d.Clear()
	d.DrawString(5, 25, "Powering off...", font.Basic6x8)
	if err := d.Display(); err != nil {
		return err
	}
	time.Sleep(time.Second)
	if err := d.Enable(false); err != nil {
		return err
	}
	time.Sleep(time.Second)
	if err := d.Enable(true); err != nil {
		return err
	}
	d.DrawString(5, 45, "Back on", font.Basic6x8)
	if err := d.Display(); err != nil {
		return err
	}
	time.Sleep(time.Second)
	return nil
}

func demoOversizeImage(d *ssd1306.Dev) error {
	w := d.Bounds().Dx()
	h := d.Bounds().Dy()
	img := tallImage(w, h*5/2)
	// Reveal a bitmap taller than the panel by sliding it up one row at a
	// time, the blit clips whatever is off screen.
	for i := 0; i < img.Bounds().Dy()-h; i++ {
		d.Clear()
		d.DrawImage(0, -i, img)
		if err := d.Display(); err != nil {
			return err
		}
	}
	return nil
}

// tallImage builds a test bitmap taller than the panel: a border, a weave of
// diagonal bands and a column of rings.
func tallImage(w, h int) *image1bit.HorizontalMSB {
	img := image1bit.NewHorizontalMSB(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.SetBit(x, 0, image1bit.On)
		img.SetBit(x, h-1, image1bit.On)
	}
	for y := 0; y < h; y++ {
		img.SetBit(0, y, image1bit.On)
		img.SetBit(w-1, y, image1bit.On)
		for x := 1; x < w-1; x++ {
			if (x+y)%16 == 0 || (x-y)%16 == 0 {
				img.SetBit(x, y, image1bit.On)
			}
		}
	}
	for cy := h / 8; cy < h; cy += h / 4 {
		for a := 0.0; a < 2*math.Pi; a += math.Pi / 90 {
			x := w/2 + int(12*math.Cos(a))
			y := cy + int(12*math.Sin(a))
			img.SetBit(x, y, image1bit.On)
		}
	}
	return img
}