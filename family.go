// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

package spicds

import (
	"fmt"
	"strings"
)

// Type identifies a codec family.
type Type int

// Supported codec families.
const (
	// CS42L43 is fully supported.
	CS42L43 Type = iota
	// AK4524 is the default family and requires no initialisation.
	AK4524
	AK4528
	// AK4358 is initialised with a single write and has no gain controls.
	AK4358
	AK4381
	AK4396
)

var typeNames = map[Type]string{
	CS42L43: "cs42l43",
	AK4524:  "ak4524",
	AK4528:  "ak4528",
	AK4358:  "ak4358",
	AK4381:  "ak4381",
	AK4396:  "ak4396",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// ParseType returns the Type with the given name.
// Names are case insensitive.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(name)
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: '%s'", ErrUnknownFamily, name)
}

// Direction selects the gain controls updated by Apply.
type Direction int

const (
	// Record selects the input gain.
	Record Direction = iota
	// Playback selects the output attenuation.
	Playback
)

func (d Direction) String() string {
	switch d {
	case Record:
		return "record"
	case Playback:
		return "playback"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Channel selects the left or right side of a stereo pair.
type Channel int

// Channels
const (
	Left Channel = iota
	Right
)

// family contains the behaviour specific to a codec family.
// init and reinit are called with the codec lock held.
type family interface {
	// prefix returns the chip address sent at the start of each frame.
	prefix() [2]Level
	init(c *Codec) bool
	reinit(c *Codec) bool
	encodeGain(d Direction, ch Channel, v uint) uint8
	// registers returns the left and right gain registers for d.
	registers(d Direction) (left, right uint8, ok bool)
}

var families = map[Type]family{
	CS42L43: cs42l43{},
	AK4524:  generic{},
	AK4528:  generic{},
	AK4358:  ak4358{},
	AK4381:  generic{},
	AK4396:  generic{},
}

func familyOf(t Type) family {
	if f, ok := families[t]; ok {
		return f
	}
	return generic{}
}

// scaleGain maps a full scale request to a 7-bit code.
// Requests below full scale are register values and pass through unchanged.
func scaleGain(v uint) uint8 {
	if v >= 100 {
		return uint8(v * 127 / 100)
	}
	return uint8(v)
}

type cs42l43 struct{}

func (cs42l43) prefix() [2]Level {
	return [2]Level{Low, High}
}

func (cs42l43) init(c *Codec) bool {
	c.writeRegister(CS42L43Power, 0)
	c.writeRegister(CS42L43Format, c.format)
	c.writeRegister(CS42L43DVC, c.dvc)
	c.writeRegister(CS42L43Power, CS42L43PowerPWDA|CS42L43PowerPWAD|CS42L43PowerPWVR)
	c.writeRegister(CS42L43Reset, CS42L43ResetRSDA|CS42L43ResetRSAD)
	for _, rv := range cs42l43Setup {
		c.writeRegister(rv.reg, rv.val)
	}
	return true
}

func (cs42l43) reinit(c *Codec) bool {
	c.writeRegister(CS42L43Reset, 0)
	c.writeRegister(CS42L43Format, c.format)
	c.writeRegister(CS42L43DVC, c.dvc)
	c.writeRegister(CS42L43Reset, CS42L43ResetRSDA|CS42L43ResetRSAD)
	return true
}

func (cs42l43) encodeGain(d Direction, ch Channel, v uint) uint8 {
	if ch == Left && v >= 100 {
		return 255
	}
	return scaleGain(v)
}

func (cs42l43) registers(d Direction) (uint8, uint8, bool) {
	switch d {
	case Record:
		return CS42L43LIPGA, CS42L43RIPGA, true
	case Playback:
		return CS42L43LOATT, CS42L43ROATT, true
	}
	return 0, 0, false
}

type ak4358 struct {
	generic
}

func (ak4358) init(c *Codec) bool {
	c.writeRegister(ak4358Control1, ak4358Init)
	return true
}

// generic covers families that are recognised on the bus but have no
// initialisation or gain controls.
type generic struct{}

func (generic) prefix() [2]Level {
	return [2]Level{High, Low}
}

func (generic) init(c *Codec) bool {
	return false
}

func (generic) reinit(c *Codec) bool {
	return false
}

func (generic) encodeGain(d Direction, ch Channel, v uint) uint8 {
	return scaleGain(v)
}

func (generic) registers(d Direction) (uint8, uint8, bool) {
	return 0, 0, false
}
