// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// img2oled converts an image file into a Go source file holding a bit packed
// bitmap ready to blit with ssd1306.Dev.DrawImage.
//
// Pixels convert to black and white by luminance, like the display driver
// does. The bitmap may be larger than the panel; DrawImage clips.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fogleman/gg"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func main() {
	out := flag.String("o", "", "output file (default: stdout)")
	pkg := flag.String("pkg", "assets", "package name for the generated file")
	name := flag.String("name", "", "variable name (default: derived from the file name)")
	invert := flag.Bool("invert", false, "swap black and white")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	path := flag.Arg(0)
	if *name == "" {
		*name = varName(path)
	}
	if err := run(path, *out, *pkg, *name, *invert); err != nil {
		fmt.Fprintln(os.Stderr, "img2oled: "+err.Error())
		os.Exit(1)
	}
}

func run(path, out, pkg, name string, invert bool) error {
	src, err := gg.LoadImage(path)
	if err != nil {
		return err
	}
	r := src.Bounds()
	img := image1bit.NewHorizontalMSB(r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			b := image1bit.BitModel.Convert(src.At(x, y)).(image1bit.Bit)
			if invert {
				b = !b
			}
			img.SetBit(x, y, b)
		}
	}
	code := generate(pkg, name, filepath.Base(path), img)
	if out == "" {
		_, err = os.Stdout.Write(code)
		return err
	}
	return os.WriteFile(out, code, 0644)
}

func generate(pkg, name, source string, img *image1bit.HorizontalMSB) []byte {
	r := img.Bounds()
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by img2oled from %s. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(buf, "package %s\n\n", pkg)
	fmt.Fprintf(buf, "import (\n\t\"image\"\n\n\t\"periph.io/x/devices/v3/ssd1306/image1bit\"\n)\n\n")
	fmt.Fprintf(buf, "// %s is a %dx%d bitmap.\n", name, r.Dx(), r.Dy())
	fmt.Fprintf(buf, "var %s = &image1bit.HorizontalMSB{\n", name)
	fmt.Fprintf(buf, "\tRect: image.Rect(0, 0, %d, %d),\n", r.Dx(), r.Dy())
	fmt.Fprintf(buf, "\tPix: []byte{\n")
	for i, b := range img.Pix {
		if i%12 == 0 {
			fmt.Fprintf(buf, "\t\t")
		}
		fmt.Fprintf(buf, "0x%02X,", b)
		if i%12 == 11 || i == len(img.Pix)-1 {
			fmt.Fprintf(buf, "\n")
		} else {
			fmt.Fprintf(buf, " ")
		}
	}
	fmt.Fprintf(buf, "\t},\n}\n")
	return buf.Bytes()
}

// varName derives an exported Go identifier from a file name, so
// "pico-board.png" becomes "PicoBoard".
func varName(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var b strings.Builder
	up := true
	for _, r := range base {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			up = true
			continue
		}
		if up {
			r = unicode.ToUpper(r)
			up = false
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "Image"
	}
	return b.String()
}
