// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// oledclock renders an analog clock on an SSD1306 OLED display and dims the
// panel at night on a cron schedule.
//
// The configuration file is YAML:
//
//	bus: ""
//	addr: 0x3c
//	width: 128
//	height: 64
//	external_vcc: false
//	banner: periph.io
//	twelve_hour: false
//	day: "0 8 * * *"
//	night: "0 22 * * *"
//	day_contrast: 255
//	night_contrast: 16
//
// Keys left out keep their defaults. With -emulate the clock renders to the
// terminal instead, no hardware needed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/font"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"periph.io/x/devices/v3/ssd1306/screen2d"
	"periph.io/x/host/v3"
)

type config struct {
	// Bus is the I²C bus name. Empty selects the first available bus.
	Bus    string `yaml:"bus"`
	Addr   uint16 `yaml:"addr"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// ExternalVCC marks panels driven by an external high voltage supply.
	ExternalVCC bool `yaml:"external_vcc"`
	// Banner is drawn in the top right corner of the clock face.
	Banner string `yaml:"banner"`
	// TwelveHour switches the digital readout to a 12 hour clock.
	TwelveHour bool `yaml:"twelve_hour"`
	// Day and Night are cron expressions. Each one switches the panel to the
	// matching contrast level when it fires.
	Day           string `yaml:"day"`
	Night         string `yaml:"night"`
	DayContrast   int    `yaml:"day_contrast"`
	NightContrast int    `yaml:"night_contrast"`
}

// loadConfig reads the YAML file at path over the built in defaults. Keys
// missing from the file keep their default value.
func loadConfig(path string) (*config, error) {
	c := &config{
		Addr:          ssd1306.DefaultOpts.Addr,
		Width:         ssd1306.DefaultOpts.W,
		Height:        ssd1306.DefaultOpts.H,
		Banner:        "periph.io",
		Day:           "0 8 * * *",
		Night:         "0 22 * * *",
		DayContrast:   255,
		NightContrast: 16,
	}
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, err
	}
	if c.DayContrast < 0 || c.DayContrast > 255 || c.NightContrast < 0 || c.NightContrast > 255 {
		return nil, errors.New("contrast levels must be 0 to 255")
	}
	if (c.Day == "") != (c.Night == "") {
		return nil, errors.New("day and night schedules must be set together")
	}
	return c, nil
}

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	busName := flag.String("bus", "", "I²C bus to use (overrides the configuration file)")
	emulate := flag.Bool("emulate", false, "render to the terminal instead of a real display")
	once := flag.Bool("once", false, "draw a single frame and exit")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatal(err)
	}
	if *busName != "" {
		cfg.Bus = *busName
	}

	var bus i2c.Bus
	if *emulate {
		scr, err := screen2d.New(&screen2d.Opts{W: cfg.Width, H: cfg.Height})
		if err != nil {
			fatal(err)
		}
		defer scr.Halt()
		bus = scr
	} else {
		if _, err := host.Init(); err != nil {
			fatal(err)
		}
		b, err := i2creg.Open(cfg.Bus)
		if err != nil {
			fatal(err)
		}
		defer b.Close()
		bus = b
	}
	dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{
		W:           cfg.Width,
		H:           cfg.Height,
		Addr:        cfg.Addr,
		ExternalVCC: cfg.ExternalVCC,
	})
	if err != nil {
		fatal(err)
	}

	if cfg.Day != "" {
		daySched, err := cron.ParseStandard(cfg.Day)
		if err != nil {
			fatal(fmt.Errorf("day schedule: %w", err))
		}
		nightSched, err := cron.ParseStandard(cfg.Night)
		if err != nil {
			fatal(fmt.Errorf("night schedule: %w", err))
		}
		// The switch that fires next ends the current period, so start with
		// the other period's contrast.
		now := time.Now()
		level := byte(cfg.DayContrast)
		if daySched.Next(now).Before(nightSched.Next(now)) {
			level = byte(cfg.NightContrast)
		}
		if err := dev.SetContrast(level); err != nil {
			fatal(err)
		}
		c := cron.New()
		c.Schedule(daySched, cron.FuncJob(func() { setContrast(dev, byte(cfg.DayContrast)) }))
		c.Schedule(nightSched, cron.FuncJob(func() { setContrast(dev, byte(cfg.NightContrast)) }))
		c.Start()
		defer c.Stop()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	tick := time.NewTicker(time.Second)
	defer tick.Stop()
loop:
	for {
		if err := drawFace(dev, cfg, time.Now()); err != nil {
			fatal(err)
		}
		if *once {
			break
		}
		select {
		case <-ctx.Done():
			break loop
		case <-tick.C:
		}
	}
	if err := dev.Halt(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "oledclock: "+err.Error())
	os.Exit(1)
}

func setContrast(d *ssd1306.Dev, level byte) {
	if err := d.SetContrast(level); err != nil {
		fmt.Fprintln(os.Stderr, "oledclock: "+err.Error())
	}
}

// drawFace renders one clock frame: an analog face on the left square of the
// panel and the banner, date and time on the remaining width.
func drawFace(d *ssd1306.Dev, cfg *config, now time.Time) error {
	h := d.Bounds().Dy()
	cx := h / 2
	cy := h / 2
	r := h/2 - 1
	d.Clear()
	d.DrawCircle(cx, cy, r, image1bit.On)
	for i := 0; i < 12; i++ {
		a := 2 * math.Pi * float64(i) / 12
		sin, cos := math.Sin(a), math.Cos(a)
		d.DrawLine(
			cx+int(float64(r-4)*cos+0.5), cy+int(float64(r-4)*sin+0.5),
			cx+int(float64(r-1)*cos+0.5), cy+int(float64(r-1)*sin+0.5),
			image1bit.On)
	}
	hour, min, sec := now.Clock()
	hand(d, cx, cy, (float64(hour%12)+float64(min)/60)/12, r*5/10)
	hand(d, cx, cy, (float64(min)+float64(sec)/60)/60, r*7/10)
	hand(d, cx, cy, float64(sec)/60, r-3)

	x := h + 4
	if cfg.Banner != "" {
		d.DrawString(x, h/8, cfg.Banner, font.Basic5x8)
	}
	hhmmss := "15:04:05"
	if cfg.TwelveHour {
		hhmmss = "3:04:05PM"
	}
	d.DrawString(x, h/2-4, now.Format("Mon Jan 02"), font.Basic6x8)
	d.DrawString(x, h-12, now.Format(hhmmss), font.Basic6x8)
	return d.Display()
}

// hand draws a clock hand of length l. frac is the fraction of a full turn,
// 0 pointing up.
func hand(d *ssd1306.Dev, cx, cy int, frac float64, l int) {
	a := 2*math.Pi*frac - math.Pi/2
	d.DrawLine(cx, cy,
		cx+int(float64(l)*math.Cos(a)+0.5),
		cy+int(float64(l)*math.Sin(a)+0.5),
		image1bit.On)
}
