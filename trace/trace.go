// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

// Package trace records the control line transitions generated by a
// spicds.Codec and decodes them back into register frames.
//
// It is intended for testing and dry runs where no codec is attached.
package trace

import (
	"errors"
	"fmt"
	"sync"

	"github.com/warthog618/spicds"
)

// Transition is the state of the control lines after one call to Set.
type Transition struct {
	CS   spicds.Level
	Cclk spicds.Level
	Cdti spicds.Level
}

// Frame is a decoded register write.
type Frame struct {
	// CS is the chip select level held for the frame.
	CS spicds.Level
	// Chip is the 2-bit chip address.
	Chip  uint8
	Write bool
	Reg   uint8
	Val   uint8
}

func (f Frame) String() string {
	return fmt.Sprintf("chip=%d reg=0x%02x val=0x%02x", f.Chip, f.Reg, f.Val)
}

// Recorder is a spicds.Lines that records every transition.
// It is safe to share between goroutines.
type Recorder struct {
	mu sync.Mutex
	tt []Transition
}

// NewRecorder creates a Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Set records the line levels.
func (r *Recorder) Set(cs, cclk, cdti spicds.Level) {
	r.mu.Lock()
	r.tt = append(r.tt, Transition{cs, cclk, cdti})
	r.mu.Unlock()
}

// Transitions returns a copy of the transitions recorded so far.
func (r *Recorder) Transitions() []Transition {
	r.mu.Lock()
	defer r.mu.Unlock()
	tt := make([]Transition, len(r.tt))
	copy(tt, r.tt)
	return tt
}

// Len returns the number of transitions recorded so far.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tt)
}

// Reset discards all recorded transitions.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.tt = nil
	r.mu.Unlock()
}

// Frames decodes the recorded transitions.
func (r *Recorder) Frames() ([]Frame, error) {
	return Decode(r.Transitions())
}

// Decode converts a sequence of transitions into frames.
//
// A rising clock edge that follows a low clock latches a bit.  A high clock
// that does not follow a low clock starts a new frame.
func Decode(tt []Transition) ([]Frame, error) {
	var ff []Frame
	var bits []spicds.Level
	var cs spicds.Level
	inFrame := false
	prevClk := spicds.High
	for i, t := range tt {
		switch {
		case t.Cclk == spicds.Low:
			if !inFrame {
				return ff, fmt.Errorf("%w: clock at transition %d", ErrNoStart, i)
			}
		case prevClk == spicds.Low:
			bits = append(bits, t.Cdti)
			if len(bits) == spicds.FrameBits {
				ff = append(ff, decodeFrame(cs, bits))
				bits = bits[:0]
				inFrame = false
			}
		default:
			if inFrame {
				return ff, fmt.Errorf("%w: restart at transition %d after %d bits",
					ErrIncompleteFrame, i, len(bits))
			}
			inFrame = true
			cs = t.CS
		}
		prevClk = t.Cclk
	}
	if inFrame {
		return ff, fmt.Errorf("%w: %d bits", ErrIncompleteFrame, len(bits))
	}
	return ff, nil
}

func decodeFrame(cs spicds.Level, bits []spicds.Level) Frame {
	field := func(bb []spicds.Level) uint8 {
		var v uint8
		for _, b := range bb {
			v <<= 1
			if b {
				v |= 0x01
			}
		}
		return v
	}
	return Frame{
		CS:    cs,
		Chip:  field(bits[0:2]),
		Write: bool(bits[2]),
		Reg:   field(bits[3:8]),
		Val:   field(bits[8:16]),
	}
}

var (
	// ErrNoStart indicates a clock was seen outside a frame.
	ErrNoStart = errors.New("no start condition")

	// ErrIncompleteFrame indicates a frame ended before all its bits were
	// clocked.
	ErrIncompleteFrame = errors.New("incomplete frame")
)
