// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

// Tests drive GPIO 4, 17 and 27, which must not be externally driven.

package spi_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/spicds"
	"github.com/warthog618/spicds/gpio"
	"github.com/warthog618/spicds/spi"
)

func openGPIO(t *testing.T) {
	t.Helper()
	if _, err := os.Stat("/dev/gpiomem"); err != nil {
		t.Skip("no /dev/gpiomem")
	}
	require.Nil(t, gpio.Open())
}

func TestNew(t *testing.T) {
	openGPIO(t)
	defer gpio.Close()
	s, err := spi.New(gpio.GPIO4, gpio.GPIO17, 99)
	assert.ErrorIs(t, err, spi.ErrInvalidPin)
	assert.Nil(t, s)

	s, err = spi.New(gpio.GPIO4, gpio.GPIO17, gpio.GPIO27)
	require.Nil(t, err)
	defer s.Close()
	assert.Equal(t, gpio.Output, s.Cs.Mode())
	assert.Equal(t, gpio.High, s.Cs.Read())
	assert.Equal(t, gpio.High, s.Cclk.Read())
}

func TestSet(t *testing.T) {
	openGPIO(t)
	defer gpio.Close()
	s, err := spi.New(gpio.GPIO4, gpio.GPIO17, gpio.GPIO27)
	require.Nil(t, err)
	defer s.Close()
	var lines spicds.Lines = s
	lines.Set(spicds.Low, spicds.Low, spicds.High)
	assert.Equal(t, gpio.Low, s.Cs.Read())
	assert.Equal(t, gpio.Low, s.Cclk.Read())
	assert.Equal(t, gpio.High, s.Cdti.Read())
	lines.Set(spicds.High, spicds.High, spicds.Low)
	assert.Equal(t, gpio.High, s.Cs.Read())
	assert.Equal(t, gpio.High, s.Cclk.Read())
	assert.Equal(t, gpio.Low, s.Cdti.Read())
}
