// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

// Package spicds provides a driver for audio codecs controlled over a
// write only 3-wire serial interface (CS, CCLK and CDTI).
//
// The interface is bit bashed through a Lines implementation, such as
// the one provided by the spi package for Raspberry Pi GPIO pins.
//
// Example of use:
//
// 	c, err := spicds.New(lines, 0, spicds.WithFamily(spicds.CS42L43))
// 	if err != nil {
// 		...
// 	}
// 	defer c.Close()
// 	c.Init()
// 	c.Apply(spicds.Playback, 80, 80)
//
// There is no read back from the codec, so every operation is assumed to
// succeed.  The bool returned by Init, Reinit, Apply and Write reports only
// whether any frames were sent.
package spicds

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Level represents the high (true) or low (false) level of a control line.
type Level bool

// Levels of the control lines.
const (
	Low  Level = false
	High Level = true
)

// Lines drives the control lines of a codec.
type Lines interface {
	// Set drives the chip select, clock and data lines to the given levels.
	Set(cs, cclk, cdti Level)
}

// LinesFunc adapts a function to the Lines interface.
type LinesFunc func(cs, cclk, cdti Level)

// Set calls f(cs, cclk, cdti).
func (f LinesFunc) Set(cs, cclk, cdti Level) {
	f(cs, cclk, cdti)
}

// Sleeper waits for the given duration between line transitions.
type Sleeper func(time.Duration)

// Codec represents one codec attached to a control interface.
type Codec struct {
	// Immutable fields
	num   int
	owner string
	tclk  time.Duration
	sleep Sleeper

	mu sync.Mutex
	// Guarded by mu
	lines  Lines
	ftype  Type
	family family
	cif    bool
	format uint8
	dvc    uint8
	left   uint
	right  uint
}

// Option modifies the construction of a Codec.
type Option func(*Codec) error

// WithFamily sets the codec family.
// Unlike SetFamily, an unrecognised family is rejected.
func WithFamily(t Type) Option {
	return func(c *Codec) error {
		f, ok := families[t]
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownFamily, int(t))
		}
		c.ftype = t
		c.family = f
		return nil
	}
}

// WithAddressPolarity sets the chip select level used during a frame.
func WithAddressPolarity(cif bool) Option {
	return func(c *Codec) error {
		c.cif = cif
		return nil
	}
}

// WithFormat sets the initial format word.
func WithFormat(format uint8) Option {
	return func(c *Codec) error {
		c.format = format
		return nil
	}
}

// WithDVC sets the initial de-emphasis and volume control word.
func WithDVC(dvc uint8) Option {
	return func(c *Codec) error {
		c.dvc = dvc
		return nil
	}
}

// WithTclk sets the delay between line transitions.
func WithTclk(tclk time.Duration) Option {
	return func(c *Codec) error {
		c.tclk = tclk
		return nil
	}
}

// WithSleeper replaces time.Sleep as the means of waiting out Tclk.
func WithSleeper(s Sleeper) Option {
	return func(c *Codec) error {
		if s == nil {
			s = time.Sleep
		}
		c.sleep = s
		return nil
	}
}

// WithOwner sets the name of the device the codec is attached to.
func WithOwner(owner string) Option {
	return func(c *Codec) error {
		c.owner = owner
		return nil
	}
}

// DefaultTclk is the delay between line transitions if not overridden by
// WithTclk.
const DefaultTclk = time.Microsecond

// New creates a Codec that drives the given lines.
//
// The num identifies the codec when more than one shares a device.
// The family defaults to AK4524, which generates no traffic from Init,
// Reinit or Apply, so it should be set before Init is called.
func New(lines Lines, num int, options ...Option) (*Codec, error) {
	if lines == nil {
		return nil, ErrNoLines
	}
	c := &Codec{
		num:    num,
		tclk:   DefaultTclk,
		sleep:  time.Sleep,
		lines:  lines,
		ftype:  AK4524,
		family: families[AK4524],
		format: CS42L43FormatI2S | CS42L43Format256FSN | CS42L43Format1X,
		dvc:    CS42L43DVCDemOff | CS42L43DVCZTM1024 | CS42L43DVCZCE,
	}
	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Close releases the lines.
// All subsequent operations are ignored.
func (c *Codec) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lines == nil {
		return ErrClosed
	}
	c.lines = nil
	return nil
}

// Num returns the index of the codec on its device.
func (c *Codec) Num() int {
	return c.num
}

// Name returns the name of the codec, prefixed with the owner if known.
func (c *Codec) Name() string {
	if c.owner == "" {
		return fmt.Sprintf("spicds%d", c.num)
	}
	return fmt.Sprintf("%s:spicds%d", c.owner, c.num)
}

// SetFamily sets the codec family.
// An unrecognised family is accepted, and behaves as a codec that
// requires no initialisation and has no gain controls.
func (c *Codec) SetFamily(t Type) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ftype = t
	c.family = familyOf(t)
}

// SetAddressPolarity sets the chip select level used during a frame.
func (c *Codec) SetAddressPolarity(cif bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cif = cif
}

// SetFormat sets the format word written by Init and Reinit.
func (c *Codec) SetFormat(format uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.format = format
}

// SetDVC sets the de-emphasis and volume control word written by Init and
// Reinit.
func (c *Codec) SetDVC(dvc uint8) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dvc = dvc
}

// Family returns the codec family.
func (c *Codec) Family() Type {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ftype
}

// AddressPolarity returns the chip select level used during a frame.
func (c *Codec) AddressPolarity() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cif
}

// Format returns the format word.
func (c *Codec) Format() uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.format
}

// DVC returns the de-emphasis and volume control word.
func (c *Codec) DVC() uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dvc
}

// Gain returns the most recent values passed to Apply.
func (c *Codec) Gain() (left, right uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.right
}

// Init powers up and initialises the codec.
// Returns false if the family requires no initialisation.
func (c *Codec) Init() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lines == nil {
		return false
	}
	return c.family.init(c)
}

// Reinit reapplies the format and DVC words without cycling power.
// Returns false if the family has no reinitialisation sequence.
func (c *Codec) Reinit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lines == nil {
		return false
	}
	return c.family.reinit(c)
}

// Write writes a value to a codec register.
// Only the lower five bits of reg are sent.
func (c *Codec) Write(reg, val uint8) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lines == nil {
		return false
	}
	c.writeRegister(reg, val)
	return true
}

var (
	// ErrNoLines indicates a Codec was requested without any lines to drive.
	ErrNoLines = errors.New("no lines")

	// ErrUnknownFamily indicates the requested codec family is not supported.
	ErrUnknownFamily = errors.New("unknown family")

	// ErrClosed indicates the codec is closed.
	ErrClosed = errors.New("closed")
)
