// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warthog618/spicds"
)

func TestParseRegVal(t *testing.T) {
	patterns := []struct {
		arg string
		rv  regval
		ok  bool
	}{
		{"0x02=0x60", regval{0x02, 0x60}, true},
		{"3=25", regval{0x03, 25}, true},
		{"0x1f=0xff", regval{0x1f, 0xff}, true},
		{"0x20=0", regval{}, false},
		{"1=256", regval{}, false},
		{"1", regval{}, false},
		{"1=2=3", regval{}, false},
		{"reg=1", regval{}, false},
	}
	for _, p := range patterns {
		rv, err := parseRegVal(p.arg)
		if p.ok {
			assert.Nil(t, err, p.arg)
			assert.Equal(t, p.rv, rv, p.arg)
		} else {
			assert.NotNil(t, err, p.arg)
		}
	}
}

func TestParseDirection(t *testing.T) {
	d, err := parseDirection("Record")
	assert.Nil(t, err)
	assert.Equal(t, spicds.Record, d)
	d, err = parseDirection("play")
	assert.Nil(t, err)
	assert.Equal(t, spicds.Playback, d)
	_, err = parseDirection("both")
	assert.NotNil(t, err)
}

func TestParseGain(t *testing.T) {
	v, err := parseGain("100")
	assert.Nil(t, err)
	assert.Equal(t, uint(100), v)
	_, err = parseGain("-1")
	assert.NotNil(t, err)
}
