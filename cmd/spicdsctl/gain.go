// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/warthog618/spicds"
)

func init() {
	gainCmd.SetHelpTemplate(gainCmd.HelpTemplate() + extendedGainHelp)
	rootCmd.AddCommand(gainCmd)
}

var gainCmd = &cobra.Command{
	Use:     "gain <record|playback> <left> [right]",
	Short:   "Set the gain of the left and right channels",
	Args:    cobra.RangeArgs(2, 3),
	RunE:    gain,
	Example: "  spicdsctl gain playback 100 100",
}

var extendedGainHelp = `
Values:
  100 or more selects full scale.
  Values below 100 are written unscaled as raw register values.
  If right is not provided it is the same as left.
`

func gain(cmd *cobra.Command, args []string) error {
	d, err := parseDirection(args[0])
	if err != nil {
		return err
	}
	left, err := parseGain(args[1])
	if err != nil {
		return err
	}
	right := left
	if len(args) > 2 {
		right, err = parseGain(args[2])
		if err != nil {
			return err
		}
	}
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	if !s.codec.Apply(d, left, right) {
		fmt.Printf("%s has no %s gain controls\n", s.codec.Family(), d)
	}
	return s.report()
}

var directionNames = map[string]spicds.Direction{
	"record":   spicds.Record,
	"rec":      spicds.Record,
	"playback": spicds.Playback,
	"play":     spicds.Playback,
}

func parseDirection(arg string) (spicds.Direction, error) {
	if d, ok := directionNames[strings.ToLower(arg)]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("can't parse direction '%s'", arg)
}

func parseGain(arg string) (uint, error) {
	v, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("can't parse gain '%s'", arg)
	}
	return uint(v), nil
}
