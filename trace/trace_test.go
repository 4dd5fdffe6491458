// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

package trace_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/spicds"
	"github.com/warthog618/spicds/trace"
)

var (
	lo = spicds.Low
	hi = spicds.High
)

func bit(b spicds.Level) []trace.Transition {
	return []trace.Transition{{hi, lo, b}, {hi, hi, b}}
}

func TestDecode(t *testing.T) {
	tt := []trace.Transition{{hi, hi, lo}}
	for _, b := range []spicds.Level{
		hi, lo,             // chip
		hi,                 // write
		lo, lo, lo, hi, hi, // reg
		hi, lo, lo, lo, lo, lo, lo, hi} { // val
		tt = append(tt, bit(b)...)
	}
	ff, err := trace.Decode(tt)
	require.Nil(t, err)
	require.Len(t, ff, 1)
	assert.Equal(t, trace.Frame{CS: hi, Chip: 2, Write: true, Reg: 0x03, Val: 0x81}, ff[0])
	assert.Equal(t, "chip=2 reg=0x03 val=0x81", ff[0].String())
}

func TestDecodeErrors(t *testing.T) {
	_, err := trace.Decode(bit(hi))
	assert.ErrorIs(t, err, trace.ErrNoStart)

	tt := []trace.Transition{{lo, hi, lo}}
	tt = append(tt, bit(hi)...)
	_, err = trace.Decode(tt)
	assert.ErrorIs(t, err, trace.ErrIncompleteFrame)

	// restart mid frame
	tt = append(tt, trace.Transition{lo, hi, lo})
	_, err = trace.Decode(tt)
	assert.ErrorIs(t, err, trace.ErrIncompleteFrame)

	ff, err := trace.Decode(nil)
	assert.Nil(t, err)
	assert.Empty(t, ff)
}

func TestRecorder(t *testing.T) {
	r := trace.NewRecorder()
	c, err := spicds.New(r, 0,
		spicds.WithFamily(spicds.CS42L43),
		spicds.WithSleeper(func(time.Duration) {}))
	require.Nil(t, err)
	c.Write(0x07, 0x7f)
	c.Write(0x06, 0x80)
	assert.Equal(t, 2*(1+2*spicds.FrameBits), r.Len())
	ff, err := r.Frames()
	require.Nil(t, err)
	require.Len(t, ff, 2)
	assert.Equal(t, uint8(0x07), ff[0].Reg)
	assert.Equal(t, uint8(0x7f), ff[0].Val)
	assert.Equal(t, uint8(0x06), ff[1].Reg)
	assert.Equal(t, uint8(0x80), ff[1].Val)
	assert.Equal(t, uint8(0x01), ff[1].Chip)
	assert.Equal(t, lo, ff[1].CS)

	tt := r.Transitions()
	tt[0].Cclk = lo
	assert.Equal(t, hi, r.Transitions()[0].Cclk)

	r.Reset()
	assert.Zero(t, r.Len())
}
