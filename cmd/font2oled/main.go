// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// font2oled renders a TrueType font into a Go source file holding a fixed
// cell bitmap font in the column major format the ssd1306 driver draws.
//
// The cell height is capped at 8 pixels, one byte per column, matching the
// page layout of the display. Without -ttf it renders Go Regular.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

func main() {
	ttfPath := flag.String("ttf", "", "TrueType font file (default: Go Regular)")
	size := flag.Float64("size", 8, "point size to render at")
	width := flag.Int("width", 6, "cell width in pixels")
	height := flag.Int("height", 8, "cell height in pixels")
	baseline := flag.Int("baseline", 7, "text baseline, in pixels from the cell top")
	first := flag.Int("first", 0x20, "first character code")
	count := flag.Int("count", 96, "number of characters")
	name := flag.String("name", "", "variable name (default: derived from size)")
	pkg := flag.String("pkg", "font", "package name for the generated file")
	out := flag.String("o", "", "output file (default: stdout)")
	flag.Parse()
	if err := run(*ttfPath, *size, *width, *height, *baseline, *first, *count, *name, *pkg, *out); err != nil {
		fmt.Fprintln(os.Stderr, "font2oled: "+err.Error())
		os.Exit(1)
	}
}

func run(ttfPath string, size float64, width, height, baseline, first, count int, name, pkg, out string) error {
	if width <= 0 || height <= 0 || height > 8 {
		return fmt.Errorf("invalid cell %dx%d; the height must be 1 to 8 pixels", width, height)
	}
	if first < 0 || count <= 0 || first+count > 0x100 {
		return fmt.Errorf("invalid character range [%#02x, %#02x)", first, first+count)
	}
	ttf := goregular.TTF
	source := "Go Regular"
	if ttfPath != "" {
		var err error
		if ttf, err = os.ReadFile(ttfPath); err != nil {
			return err
		}
		source = ttfPath
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	defer face.Close()

	if name == "" {
		name = fmt.Sprintf("Face%dx%d", width, height)
	}
	data := make([]byte, 0, width*count)
	for c := first; c < first+count; c++ {
		data = append(data, renderCell(face, byte(c), width, height, baseline)...)
	}
	code := generate(pkg, name, source, width, height, first, count, data)
	if out == "" {
		_, err = os.Stdout.Write(code)
		return err
	}
	return os.WriteFile(out, code, 0644)
}

// renderCell rasterizes one character into a width x height cell and packs
// it column major, least significant bit on top. The threshold goes through
// image1bit.BitModel so the tool and the driver agree on what counts as lit.
func renderCell(face xfont.Face, c byte, width, height, baseline int) []byte {
	cell := gg.NewContext(width, height)
	cell.SetRGB(0, 0, 0)
	cell.Clear()
	cell.SetRGB(1, 1, 1)
	cell.SetFontFace(face)
	cell.DrawString(string(rune(c)), 0, float64(baseline))
	img := cell.Image()
	cols := make([]byte, width)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if image1bit.BitModel.Convert(img.At(x, y)).(image1bit.Bit) == image1bit.On {
				cols[x] |= 1 << uint(y)
			}
		}
	}
	return cols
}

func generate(pkg, name, source string, width, height, first, count int, data []byte) []byte {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "// Code generated by font2oled from %s. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(buf, "package %s\n\n", pkg)
	if pkg != "font" {
		fmt.Fprintf(buf, "import \"periph.io/x/devices/v3/ssd1306/font\"\n\n")
	}
	fontType := "Font"
	if pkg != "font" {
		fontType = "font.Font"
	}
	fmt.Fprintf(buf, "// %s is a %dx%d bitmap font.\n", name, width, height)
	fmt.Fprintf(buf, "var %s = &%s{\n", name, fontType)
	fmt.Fprintf(buf, "\tWidth:  %d,\n", width)
	fmt.Fprintf(buf, "\tHeight: %d,\n", height)
	fmt.Fprintf(buf, "\tFirst:  %#02x,\n", first)
	fmt.Fprintf(buf, "\tCount:  %d,\n", count)
	fmt.Fprintf(buf, "\tData: []byte{\n")
	for i := 0; i < count; i++ {
		fmt.Fprintf(buf, "\t\t")
		for x := 0; x < width; x++ {
			fmt.Fprintf(buf, "0x%02X, ", data[i*width+x])
		}
		c := first + i
		if c >= 0x20 && c < 0x7F && c != '\\' && c != '`' {
			fmt.Fprintf(buf, "// %#02x %q\n", c, rune(c))
		} else {
			fmt.Fprintf(buf, "// %#02x\n", c)
		}
	}
	fmt.Fprintf(buf, "\t},\n}\n")
	return buf.Bytes()
}
