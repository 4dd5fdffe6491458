// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(reinitCmd)
}

var (
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Power up and initialise the codec",
		Args:  cobra.NoArgs,
		RunE:  initCodec,
	}
	reinitCmd = &cobra.Command{
		Use:   "reinit",
		Short: "Reapply the format and DVC words without cycling power",
		Args:  cobra.NoArgs,
		RunE:  reinitCodec,
	}
)

func initCodec(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	if !s.codec.Init() {
		fmt.Printf("%s requires no initialisation\n", s.codec.Family())
	}
	return s.report()
}

func reinitCodec(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	if !s.codec.Reinit() {
		fmt.Printf("%s has no reinitialisation sequence\n", s.codec.Family())
	}
	return s.report()
}
