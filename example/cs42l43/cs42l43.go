// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"

	"github.com/warthog618/config"
	"github.com/warthog618/config/blob"
	"github.com/warthog618/config/blob/decoder/json"
	"github.com/warthog618/config/dict"
	"github.com/warthog618/config/env"
	"github.com/warthog618/config/pflag"
	"github.com/warthog618/spicds"
	"github.com/warthog618/spicds/gpio"
	"github.com/warthog618/spicds/spi"
)

// This example initialises a CS42L43 connected to the RPI by three control
// lines - CS, CCLK and CDTI - and sets the playback attenuation of both
// channels.  The default pin assignments are defined in loadConfig, but can
// be altered via configuration (env, flag or config file).
// All three pins are outputs so do not run this example on a board where
// those pins serve other purposes.
func main() {
	cfg := loadConfig()
	err := gpio.Open()
	if err != nil {
		panic(err)
	}
	defer gpio.Close()
	lines, err := spi.New(
		int(cfg.MustGet("cs").Int()),
		int(cfg.MustGet("cclk").Int()),
		int(cfg.MustGet("cdti").Int()))
	if err != nil {
		panic(err)
	}
	defer lines.Close()
	c, err := spicds.New(lines, 0,
		spicds.WithFamily(spicds.CS42L43),
		spicds.WithTclk(cfg.MustGet("tclk").Duration()))
	if err != nil {
		panic(err)
	}
	defer c.Close()
	c.Init()
	vol := uint(cfg.MustGet("volume").Uint())
	c.Apply(spicds.Playback, vol, vol)
	fmt.Printf("%s initialised, playback=%d\n", c.Name(), vol)
}

func loadConfig() *config.Config {
	defaultConfig := map[string]interface{}{
		"tclk":   "1us",
		"cs":     gpio.GPIO17,
		"cclk":   gpio.GPIO27,
		"cdti":   gpio.GPIO22,
		"volume": 100,
	}
	def := dict.New(dict.WithMap(defaultConfig))
	cfg := config.New(
		pflag.New(pflag.WithFlags(
			[]pflag.Flag{{Short: 'c', Name: "config-file"}})),
		env.New(env.WithEnvPrefix("CS42L43_")),
		config.WithDefault(def))
	cfg.Append(
		blob.NewConfigFile(cfg, "config.file", "cs42l43.json", json.NewDecoder()))
	cfg = cfg.GetConfig("", config.WithMust)
	return cfg
}
