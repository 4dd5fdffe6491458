// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/warthog618/config"
	"github.com/warthog618/config/blob"
	"github.com/warthog618/config/blob/decoder/json"
	"github.com/warthog618/config/dict"
	"github.com/warthog618/config/env"
	"github.com/warthog618/spicds"
	"github.com/warthog618/spicds/bridge"
	"github.com/warthog618/spicds/gpio"
	"github.com/warthog618/spicds/spi"
	"github.com/warthog618/spicds/trace"
)

var version = "undefined"

var rootCmd = &cobra.Command{
	Use:   "spicdsctl",
	Short: "spicdsctl is a utility to control codecs over a 3-wire serial interface",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	Version:       version,
	SilenceErrors: true,
}

var rootOpts = struct {
	ConfigFile string
	Backend    string
	Family     string
	DryRun     bool
	Verbose    bool
}{}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&rootOpts.ConfigFile, "config-file", "c", "", "configuration file")
	pf.StringVarP(&rootOpts.Backend, "backend", "b", "", "line driver [gpio|serial|trace]")
	pf.StringVarP(&rootOpts.Family, "family", "f", "", "codec family, e.g. cs42l43")
	pf.BoolVarP(&rootOpts.DryRun, "dry-run", "n", false, "trace the frames instead of driving the lines")
	pf.BoolVarP(&rootOpts.Verbose, "verbose", "v", false, "print the frames sent")
	rootCmd.SetHelpTemplate(rootCmd.HelpTemplate() + extendedRootHelp)
}

var extendedRootHelp = `
Configuration:
  Settings are read from flags, then SPICDS_ prefixed environment variables,
  then the config file (spicds.json by default).

  backend        line driver [gpio|serial|trace]
  cs, cclk, cdti BCM pin numbers for the gpio backend
  tclk           delay between line transitions
  family         codec family [cs42l43|ak4524|ak4528|ak4358|ak4381|ak4396]
  cif            chip select level during a frame
  format, dvc    format and de-emphasis/volume control words
  num            codec index on the device
  serial.device  serial device for the serial backend
  serial.baud    serial baud rate
`

func main() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		logErr(cmd, err)
		os.Exit(1)
	}
}

func logErr(cmd *cobra.Command, err error) {
	fmt.Fprintf(os.Stderr, "spicdsctl %s: %s\n", cmd.Name(), err)
}

func loadConfig() *config.Config {
	defaultConfig := map[string]interface{}{
		"backend":       "gpio",
		"cs":            gpio.GPIO17,
		"cclk":          gpio.GPIO27,
		"cdti":          gpio.GPIO22,
		"tclk":          "1us",
		"family":        "cs42l43",
		"cif":           false,
		"format":        spicds.CS42L43FormatI2S | spicds.CS42L43Format256FSN | spicds.CS42L43Format1X,
		"dvc":           spicds.CS42L43DVCDemOff | spicds.CS42L43DVCZTM1024 | spicds.CS42L43DVCZCE,
		"num":           0,
		"serial.device": "/dev/ttyACM0",
		"serial.baud":   115200,
	}
	overrides := map[string]interface{}{}
	if rootOpts.ConfigFile != "" {
		overrides["config.file"] = rootOpts.ConfigFile
	}
	if rootOpts.Backend != "" {
		overrides["backend"] = rootOpts.Backend
	}
	if rootOpts.DryRun {
		overrides["backend"] = "trace"
	}
	if rootOpts.Family != "" {
		overrides["family"] = rootOpts.Family
	}
	def := dict.New(dict.WithMap(defaultConfig))
	cfg := config.New(
		dict.New(dict.WithMap(overrides)),
		env.New(env.WithEnvPrefix("SPICDS_")),
		config.WithDefault(def))
	cfg.Append(
		blob.NewConfigFile(cfg, "config.file", "spicds.json", json.NewDecoder()))
	cfg = cfg.GetConfig("", config.WithMust)
	return cfg
}

// session is a codec opened on the configured backend.
type session struct {
	codec *spicds.Codec
	rec   *trace.Recorder
	// print the frames sent
	verbose bool
	closers []func()
}

func (s *session) Close() {
	s.codec.Close()
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// report prints the frames sent, if requested.
func (s *session) report() error {
	if !s.verbose {
		return nil
	}
	ff, err := s.rec.Frames()
	if err != nil {
		return err
	}
	for _, f := range ff {
		fmt.Println(f)
	}
	return nil
}

func openSession() (*session, error) {
	cfg := loadConfig()
	ftype, err := spicds.ParseType(cfg.MustGet("family").String())
	if err != nil {
		return nil, err
	}
	s := &session{
		rec:     trace.NewRecorder(),
		verbose: rootOpts.Verbose || rootOpts.DryRun,
	}
	var lines spicds.Lines
	tclk := cfg.MustGet("tclk").Duration()
	switch backend := cfg.MustGet("backend").String(); backend {
	case "gpio":
		if err = gpio.Open(); err != nil {
			return nil, err
		}
		l, err := spi.New(
			int(cfg.MustGet("cs").Int()),
			int(cfg.MustGet("cclk").Int()),
			int(cfg.MustGet("cdti").Int()))
		if err != nil {
			gpio.Close()
			return nil, err
		}
		s.closers = append(s.closers, func() { gpio.Close() }, l.Close)
		lines = l
	case "serial":
		b, err := bridge.Open(bridge.Config{
			Device: cfg.MustGet("serial.device").String(),
			Baud:   int(cfg.MustGet("serial.baud").Int()),
		})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() { b.Close() })
		lines = b
		// timing is applied by the remote
		tclk = 0
	case "trace":
		tclk = 0
		s.verbose = true
	default:
		return nil, fmt.Errorf("unknown backend '%s'", backend)
	}
	tee := spicds.LinesFunc(func(cs, cclk, cdti spicds.Level) {
		s.rec.Set(cs, cclk, cdti)
		if lines != nil {
			lines.Set(cs, cclk, cdti)
		}
	})
	s.codec, err = spicds.New(tee,
		int(cfg.MustGet("num").Int()),
		spicds.WithFamily(ftype),
		spicds.WithAddressPolarity(cfg.MustGet("cif").Bool()),
		spicds.WithFormat(uint8(cfg.MustGet("format").Uint())),
		spicds.WithDVC(uint8(cfg.MustGet("dvc").Uint())),
		spicds.WithTclk(tclk))
	if err != nil {
		for i := len(s.closers) - 1; i >= 0; i-- {
			s.closers[i]()
		}
		return nil, err
	}
	return s, nil
}
