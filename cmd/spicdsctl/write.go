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
	"github.com/warthog618/spicds/trace"
)

func init() {
	frameCmd.Flags().BoolVarP(&frameOpts.Lines, "lines", "l", false, "print the line transitions")
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(frameCmd)
}

var (
	writeCmd = &cobra.Command{
		Use:     "write <reg>=<value>...",
		Short:   "Write values to codec registers",
		Args:    cobra.MinimumNArgs(1),
		RunE:    write,
		Example: "  spicdsctl write 0x02=0x60 3=0x19",
	}
	frameCmd = &cobra.Command{
		Use:     "frame <reg>=<value>...",
		Short:   "Print the frames that would be sent for register writes",
		Args:    cobra.MinimumNArgs(1),
		RunE:    frame,
		Example: "  spicdsctl frame -l 0x06=0xff",
	}
	frameOpts = struct {
		Lines bool
	}{}
)

type regval struct {
	reg uint8
	val uint8
}

func write(cmd *cobra.Command, args []string) error {
	rr, err := parseRegVals(args)
	if err != nil {
		return err
	}
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	for _, rv := range rr {
		s.codec.Write(rv.reg, rv.val)
	}
	return s.report()
}

func frame(cmd *cobra.Command, args []string) error {
	rr, err := parseRegVals(args)
	if err != nil {
		return err
	}
	cfg := loadConfig()
	ftype, err := spicds.ParseType(cfg.MustGet("family").String())
	if err != nil {
		return err
	}
	for _, rv := range rr {
		r := trace.NewRecorder()
		c, err := spicds.New(r, 0,
			spicds.WithFamily(ftype),
			spicds.WithAddressPolarity(cfg.MustGet("cif").Bool()),
			spicds.WithTclk(0))
		if err != nil {
			return err
		}
		c.Write(rv.reg, rv.val)
		ff, err := r.Frames()
		if err != nil {
			return err
		}
		for _, f := range ff {
			fmt.Println(f)
		}
		if frameOpts.Lines {
			printTransitions(r.Transitions())
		}
	}
	return nil
}

func printTransitions(tt []trace.Transition) {
	fmt.Println("  cs cclk cdti")
	for _, t := range tt {
		fmt.Printf("  %2d %4d %4d\n", level2Int(t.CS), level2Int(t.Cclk), level2Int(t.Cdti))
	}
}

func level2Int(l spicds.Level) int {
	if l == spicds.Low {
		return 0
	}
	return 1
}

func parseRegVals(args []string) ([]regval, error) {
	rr := []regval(nil)
	for _, arg := range args {
		rv, err := parseRegVal(arg)
		if err != nil {
			return nil, err
		}
		rr = append(rr, rv)
	}
	return rr, nil
}

func parseRegVal(arg string) (regval, error) {
	aa := strings.Split(arg, "=")
	if len(aa) != 2 {
		return regval{}, fmt.Errorf("invalid reg<->value mapping: %s", arg)
	}
	reg, err := strconv.ParseUint(aa[0], 0, 5)
	if err != nil {
		return regval{}, fmt.Errorf("can't parse register '%s'", aa[0])
	}
	val, err := strconv.ParseUint(aa[1], 0, 8)
	if err != nil {
		return regval{}, fmt.Errorf("can't parse value '%s'", aa[1])
	}
	return regval{uint8(reg), uint8(val)}, nil
}
