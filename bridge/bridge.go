// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

// Package bridge drives codec control lines remotely, by forwarding each
// line state over a serial link to a microcontroller that sets the
// physical lines.
//
// Each call to Set is encoded as a single byte:
//
// 	0 1 0 0 0 CS CCLK CDTI
//
// The remote end is expected to apply the levels in the order received.
// Timing between transitions is the responsibility of the remote, so the
// Codec driving a Bridge may use a zero Tclk.
package bridge

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tarm/serial"
	"github.com/warthog618/spicds"
)

// Marker identifies a line state byte.
const Marker = 0x40

const (
	csBit   = 0x04
	cclkBit = 0x02
	cdtiBit = 0x01
)

// Bridge forwards line states to a remote line driver.
type Bridge struct {
	mu  sync.Mutex
	w   io.Writer
	err error
}

// New creates a Bridge writing to w.
func New(w io.Writer) *Bridge {
	return &Bridge{w: w}
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g., "/dev/ttyACM0")
	Device string
	Baud   int
	// Timeout applies to reads from the port. Zero blocks.
	Timeout time.Duration
}

// Open creates a Bridge on the serial port described by cfg.
func Open(cfg Config) (*Bridge, error) {
	if cfg.Device == "" {
		return nil, ErrNoDevice
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", cfg.Device, err)
	}
	return New(port), nil
}

// Encode returns the byte forwarded for the given line levels.
func Encode(cs, cclk, cdti spicds.Level) byte {
	b := byte(Marker)
	if cs {
		b |= csBit
	}
	if cclk {
		b |= cclkBit
	}
	if cdti {
		b |= cdtiBit
	}
	return b
}

// Decode returns the line levels encoded in b.
func Decode(b byte) (cs, cclk, cdti spicds.Level, err error) {
	if b&^(csBit|cclkBit|cdtiBit) != Marker {
		err = fmt.Errorf("%w: 0x%02x", ErrInvalidState, b)
		return
	}
	cs = b&csBit != 0
	cclk = b&cclkBit != 0
	cdti = b&cdtiBit != 0
	return
}

// Set forwards the line levels.
// After the first write error all subsequent states are dropped and the
// error is available from Err.
func (b *Bridge) Set(cs, cclk, cdti spicds.Level) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return
	}
	_, b.err = b.w.Write([]byte{Encode(cs, cclk, cdti)})
}

// Err returns the first error encountered while forwarding.
func (b *Bridge) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Close closes the underlying writer if it is closable.
func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c, ok := b.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

var (
	// ErrNoDevice indicates no serial device was specified.
	ErrNoDevice = errors.New("no device")

	// ErrInvalidState indicates a byte is not a line state.
	ErrInvalidState = errors.New("invalid line state")
)
