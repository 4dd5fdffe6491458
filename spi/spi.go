// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

// Package spi provides the 3-wire codec control interface using GPIO lines.
package spi

import (
	"errors"
	"fmt"

	"github.com/warthog618/spicds"
	"github.com/warthog618/spicds/gpio"
)

// SPI represents the control interface of a codec connected to the
// Raspberry Pi by 3 GPIO lines - chip select, clock and data.
// This is a write only, bit bashed interface.
// It is not related to the SPI device drivers provided by Linux.
//
// SPI implements spicds.Lines, with all timing left to the Codec.
type SPI struct {
	Cs   *gpio.Pin
	Cclk *gpio.Pin
	Cdti *gpio.Pin
}

// New creates a SPI on the given BCM pins.
// The gpio package must already be open.
func New(cs, cclk, cdti int) (*SPI, error) {
	spi := &SPI{
		Cs:   gpio.NewPin(cs),
		Cclk: gpio.NewPin(cclk),
		Cdti: gpio.NewPin(cdti),
	}
	for i, p := range []*gpio.Pin{spi.Cs, spi.Cclk, spi.Cdti} {
		if p == nil {
			return nil, fmt.Errorf("%w: %d", ErrInvalidPin, []int{cs, cclk, cdti}[i])
		}
	}
	// idle with clock high and codec deselected until the first frame.
	spi.Cs.High()
	spi.Cs.Output()
	spi.Cclk.High()
	spi.Cclk.Output()
	spi.Cdti.Low()
	spi.Cdti.Output()
	return spi, nil
}

// Close disables the output pins used to drive the codec.
func (spi *SPI) Close() {
	spi.Cs.Input()
	spi.Cclk.Input()
	spi.Cdti.Input()
}

// Set drives the control lines to the given levels.
// Data is set before the clock so the level is stable on a rising edge.
func (spi *SPI) Set(cs, cclk, cdti spicds.Level) {
	spi.Cs.Write(gpio.Level(cs))
	spi.Cdti.Write(gpio.Level(cdti))
	spi.Cclk.Write(gpio.Level(cclk))
}

// ErrInvalidPin indicates a pin number is not available on the header.
var ErrInvalidPin = errors.New("invalid pin")
