// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

package spicds

// FrameBits is the number of bits clocked out for each register write.
const FrameBits = 16

// sendBit clocks out a single bit on CDTI.
// The codec latches CDTI on the rising edge of CCLK.
// Assumes caller already holds the mu lock.
func (c *Codec) sendBit(cs, bit Level) {
	c.lines.Set(cs, Low, bit)
	c.sleep(c.tclk)
	c.lines.Set(cs, High, bit)
	c.sleep(c.tclk)
}

// writeRegister clocks out a complete frame writing val to reg.
//
// The frame is the 2-bit chip address, the write bit, the 5-bit register
// address and the 8-bit value, all MSB first.
// There is no stop pattern - the frame is terminated by the start of the
// next.
// Assumes caller already holds the mu lock.
func (c *Codec) writeRegister(reg, val uint8) {
	cs := Level(c.cif)
	// start
	c.lines.Set(cs, High, Low)
	c.sleep(c.tclk)
	prefix := c.family.prefix()
	c.sendBit(cs, prefix[0])
	c.sendBit(cs, prefix[1])
	c.sendBit(cs, High) // write
	for mask := uint8(0x10); mask != 0; mask >>= 1 {
		c.sendBit(cs, reg&mask != 0)
	}
	for mask := uint8(0x80); mask != 0; mask >>= 1 {
		c.sendBit(cs, val&mask != 0)
	}
	c.sleep(c.tclk)
}
