// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

package spicds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warthog618/spicds"
)

func TestApply(t *testing.T) {
	patterns := []struct {
		name     string
		dir      spicds.Direction
		left     uint
		right    uint
		expected []regval
	}{
		{"record full", spicds.Record, 100, 100,
			[]regval{{spicds.CS42L43LIPGA, 255}, {spicds.CS42L43RIPGA, 127}}},
		{"playback full left", spicds.Playback, 100, 0,
			[]regval{{spicds.CS42L43LOATT, 255}, {spicds.CS42L43ROATT, 0}}},
		{"raw", spicds.Playback, 99, 42,
			[]regval{{spicds.CS42L43LOATT, 99}, {spicds.CS42L43ROATT, 42}}},
		{"over full", spicds.Record, 150, 150,
			[]regval{{spicds.CS42L43LIPGA, 255}, {spicds.CS42L43RIPGA, 190}}},
		{"zero", spicds.Record, 0, 0,
			[]regval{{spicds.CS42L43LIPGA, 0}, {spicds.CS42L43RIPGA, 0}}},
	}
	for _, p := range patterns {
		tf := func(t *testing.T) {
			c, r := newCodec(t, spicds.WithFamily(spicds.CS42L43))
			assert.True(t, c.Apply(p.dir, p.left, p.right))
			assert.Equal(t, p.expected, regvals(frames(t, r)))
			l, rt := c.Gain()
			assert.Equal(t, p.left, l)
			assert.Equal(t, p.right, rt)
		}
		t.Run(p.name, tf)
	}
}

func TestApplyInert(t *testing.T) {
	patterns := []spicds.Type{
		spicds.AK4524,
		spicds.AK4528,
		spicds.AK4358,
		spicds.AK4381,
		spicds.AK4396,
		spicds.Type(42),
	}
	for _, p := range patterns {
		tf := func(t *testing.T) {
			c, r := newCodec(t)
			c.SetFamily(p)
			assert.False(t, c.Apply(spicds.Record, 100, 100))
			assert.False(t, c.Apply(spicds.Playback, 50, 50))
			assert.Zero(t, r.Len())
			// still recorded as the commanded gain
			l, rt := c.Gain()
			assert.Equal(t, uint(50), l)
			assert.Equal(t, uint(50), rt)
		}
		t.Run(p.String(), tf)
	}
	// unknown direction
	c, r := newCodec(t, spicds.WithFamily(spicds.CS42L43))
	assert.False(t, c.Apply(spicds.Direction(7), 100, 100))
	assert.Zero(t, r.Len())
}

func TestEncodeGain(t *testing.T) {
	patterns := []struct {
		family spicds.Type
		ch     spicds.Channel
		v      uint
		code   uint8
	}{
		{spicds.CS42L43, spicds.Left, 100, 255},
		{spicds.CS42L43, spicds.Left, 99, 99},
		{spicds.CS42L43, spicds.Right, 100, 127},
		{spicds.CS42L43, spicds.Right, 99, 99},
		{spicds.AK4358, spicds.Left, 100, 127},
		{spicds.AK4358, spicds.Right, 100, 127},
		{spicds.AK4524, spicds.Left, 100, 127},
		{spicds.AK4524, spicds.Right, 100, 127},
		{spicds.AK4396, spicds.Left, 50, 50},
		{spicds.AK4381, spicds.Right, 200, 254},
	}
	for _, p := range patterns {
		c, _ := newCodec(t)
		c.SetFamily(p.family)
		for _, d := range []spicds.Direction{spicds.Record, spicds.Playback} {
			assert.Equal(t, p.code, c.EncodeGain(d, p.ch, p.v), "%s %d %d", p.family, p.ch, p.v)
		}
	}
}
