// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

package spicds

// CS42L43 control registers.
const (
	CS42L43Power  = 0x00
	CS42L43Reset  = 0x01
	CS42L43Format = 0x02
	CS42L43DVC    = 0x03
	CS42L43LIPGA  = 0x04
	CS42L43RIPGA  = 0x05
	CS42L43LOATT  = 0x06
	CS42L43ROATT  = 0x07
)

// CS42L43Power fields.
const (
	CS42L43PowerPWDA = 0x01
	CS42L43PowerPWAD = 0x02
	CS42L43PowerPWVR = 0x04
)

// CS42L43Reset fields.
const (
	CS42L43ResetRSDA = 0x01
	CS42L43ResetRSAD = 0x02
)

// CS42L43Format fields.
const (
	// Multiplier
	CS42L43Format1X  = 0x00
	CS42L43Format2X  = 0x01
	CS42L43Format4X1 = 0x02
	CS42L43Format4X2 = 0x03
	// Master clock
	CS42L43Format256FSN  = 0x00
	CS42L43Format512FSN  = 0x04
	CS42L43Format1024FSN = 0x08
	CS42L43Format384FSN  = 0x10
	CS42L43Format768FSN  = 0x14
	// Interface mode
	CS42L43FormatOM24IL16 = 0x00
	CS42L43FormatOM24IL20 = 0x20
	CS42L43FormatOM24IM24 = 0x40
	CS42L43FormatI2S      = 0x60
	CS42L43FormatOM24IL24 = 0x80
)

// CS42L43DVC fields.
const (
	// De-emphasis
	CS42L43DVCDem441 = 0x00
	CS42L43DVCDemOff = 0x01
	CS42L43DVCDem48  = 0x02
	CS42L43DVCDem32  = 0x03
	// Zero crossing timeout
	CS42L43DVCZTM256  = 0x00
	CS42L43DVCZTM512  = 0x04
	CS42L43DVCZTM1024 = 0x08
	CS42L43DVCZTM2048 = 0x0c
	CS42L43DVCZCE     = 0x10
	// High pass filters
	CS42L43DVCHPFL = 0x04
	CS42L43DVCHPFR = 0x08
	// Soft mute
	CS42L43DVCSMute = 0x80
)

type regval struct {
	reg uint8
	val uint8
}

// cs42l43Setup is written after the power and reset sequence.
// The mux selections must precede the remaining writes to reduce the pop
// on power up.
var cs42l43Setup = []regval{
	{0x1b, 0x44}, // ADC mux (AC'97 source)
	{0x1c, 0x0b}, // Out mux1 (VOUT1 = DAC+AUX, VOUT2 = DAC)
	{0x1d, 0x09}, // Out mux2 (VOUT2 = DAC, VOUT3 = DAC)
	{0x18, 0x00}, // All power up
	{0x16, 0x22}, // I2S, normal polarity, 24bit
	{0x17, 0x22}, // 256fs, slave mode
	{0x19, 0x00}, // -12dB ADC/L
	{0x1a, 0x00}, // -12dB ADC/R
}

// AK4358 control register values.
const (
	ak4358Control1 = 0x00
	// I2S, 24bit, power up
	ak4358Init = 0x07
)
