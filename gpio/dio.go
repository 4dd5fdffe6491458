// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

// Package gpio provides the GPIO access required to bit bash codec control
// lines on the Raspberry Pi.
//
// Supports simple operations such as:
// - Pin mode/direction (input/output)
// - Pin write (high/low)
// - Pin read (high/low)
//
// Example of use:
//
// 	gpio.Open()
// 	defer gpio.Close()
//
// 	pin := gpio.NewPin(gpio.GPIO4)
// 	pin.Low()
// 	pin.Output()
//
// The library uses the raw BCM2835 pin numbers, not the ports as they are
// mapped on the J8 header.
package gpio

// Pin represents a single GPIO pin.
type Pin struct {
	// Immutable fields
	pin      int
	fsel     int
	levelReg int
	clearReg int
	setReg   int
	mask     uint32
	// Mutable fields
	shadow Level
}

// Level represents the high (true) or low (false) level of a Pin.
type Level bool

// Mode defines the IO mode of a Pin.
type Mode int

const (
	modeMask uint32 = 7 // pin mode is 3 bits wide
)

// Pin Mode, a pin can be set in Input or Output mode
const (
	Input Mode = iota
	Output
	Alt5
	Alt4
	Alt0
	Alt1
	Alt2
	Alt3
)

// Level of pin, High / Low
const (
	Low  Level = false
	High Level = true
)

// MaxGPIOPin is the number of GPIO pins on the J8 header.
const MaxGPIOPin = 28

// GPIO pins commonly free on the J8 header.
const (
	GPIO4  = 4
	GPIO5  = 5
	GPIO6  = 6
	GPIO13 = 13
	GPIO17 = 17
	GPIO19 = 19
	GPIO22 = 22
	GPIO23 = 23
	GPIO24 = 24
	GPIO25 = 25
	GPIO26 = 26
	GPIO27 = 27
)

// NewPin creates a new pin object.
// The pin number provided is the BCM GPIO number.
// Returns nil if the pin number is out of range.
func NewPin(pin int) *Pin {
	if len(mem) == 0 {
		panic("GPIO not initialised.")
	}
	if pin < 0 || pin >= MaxGPIOPin {
		return nil
	}
	// All J8 pins are in the first bank.
	mask := uint32(1 << uint(pin&0x1f))
	p := &Pin{
		pin:      pin,
		fsel:     pin / 10,
		levelReg: 13,
		clearReg: 10,
		setReg:   7,
		mask:     mask,
	}
	if mem[p.levelReg]&mask != 0 {
		p.shadow = High
	}
	return p
}

// Input sets pin as Input.
func (pin *Pin) Input() {
	pin.SetMode(Input)
}

// Output sets pin as Output.
func (pin *Pin) Output() {
	pin.SetMode(Output)
}

// High sets pin High.
func (pin *Pin) High() {
	pin.Write(High)
}

// Low sets pin Low.
func (pin *Pin) Low() {
	pin.Write(Low)
}

// Mode returns the mode of the pin in the Function Select register.
func (pin *Pin) Mode() Mode {
	modeShift := uint(pin.pin%10) * 3
	return Mode(mem[pin.fsel] >> modeShift & modeMask)
}

// Shadow returns the value of the last write to an output pin or the last
// read on an input pin.
func (pin *Pin) Shadow() Level {
	return pin.shadow
}

// Pin returns the pin number that this Pin represents.
func (pin *Pin) Pin() int {
	return pin.pin
}

// SetMode sets the pin Mode.
func (pin *Pin) SetMode(mode Mode) {
	// shift for pin mode field within fsel register.
	modeShift := uint(pin.pin%10) * 3

	memlock.Lock()
	defer memlock.Unlock()

	mem[pin.fsel] = mem[pin.fsel]&^(modeMask<<modeShift) | uint32(mode)<<modeShift
}

// Read pin state (high/low)
func (pin *Pin) Read() (level Level) {
	if (mem[pin.levelReg] & pin.mask) != 0 {
		level = High
	}
	pin.shadow = level
	return
}

// Write sets the pin state (high/low).
func (pin *Pin) Write(level Level) {
	if level == Low {
		mem[pin.clearReg] = pin.mask
	} else {
		mem[pin.setReg] = pin.mask
	}
	pin.shadow = level
}
