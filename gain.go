// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

package spicds

// Apply sets the gain of the left and right channels for the given
// direction.
//
// A value of 100 or more requests full scale, which for the left channel of
// a CS42L43 is 255 and otherwise is the value scaled to 127 per 100.
// A value below 100 is written unscaled, as a raw register value.
//
// Returns false if the family has no gain controls for the direction.
func (c *Codec) Apply(d Direction, left, right uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left = left
	c.right = right
	if c.lines == nil {
		return false
	}
	lreg, rreg, ok := c.family.registers(d)
	if !ok {
		return false
	}
	c.writeRegister(lreg, c.family.encodeGain(d, Left, left))
	c.writeRegister(rreg, c.family.encodeGain(d, Right, right))
	return true
}

// EncodeGain returns the register value Apply would write for the given
// channel and value.
func (c *Codec) EncodeGain(d Direction, ch Channel, v uint) uint8 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.family.encodeGain(d, ch, v)
}
