// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

// Tests use GPIO4 (J8 pin 7), which must not be externally driven.

package gpio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/spicds/gpio"
)

func TestNewPinRange(t *testing.T) {
	requireGPIO(t)
	require.Nil(t, gpio.Open())
	defer gpio.Close()
	assert.Nil(t, gpio.NewPin(-1))
	assert.Nil(t, gpio.NewPin(gpio.MaxGPIOPin))
	pin := gpio.NewPin(gpio.GPIO4)
	require.NotNil(t, pin)
	assert.Equal(t, gpio.GPIO4, pin.Pin())
}

func TestMode(t *testing.T) {
	requireGPIO(t)
	require.Nil(t, gpio.Open())
	defer gpio.Close()
	pin := gpio.NewPin(gpio.GPIO4)
	defer pin.Input()
	pin.Output()
	assert.Equal(t, gpio.Output, pin.Mode())
	pin.Input()
	assert.Equal(t, gpio.Input, pin.Mode())
}

func TestWrite(t *testing.T) {
	requireGPIO(t)
	require.Nil(t, gpio.Open())
	defer gpio.Close()
	pin := gpio.NewPin(gpio.GPIO4)
	defer pin.Input()
	pin.Low()
	pin.Output()
	assert.Equal(t, gpio.Low, pin.Read())
	pin.High()
	assert.Equal(t, gpio.High, pin.Shadow())
	assert.Equal(t, gpio.High, pin.Read())
	pin.Write(gpio.Low)
	assert.Equal(t, gpio.Low, pin.Shadow())
	assert.Equal(t, gpio.Low, pin.Read())
}
