// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the gosteel command line interface
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gosteel",
	Short: "Steel member and connector capacity checks",
	Long: `gosteel - steel member and connector capacity checks

A CLI tool for verifying structural steel members and connectors
following the AISC 360-16 provisions.

This tool helps structural engineers perform:
  - Bolt and anchor rod strength calculations
  - Bolted plate geometry and thickness checks
  - Anchor group concrete breakout checks
  - Member compressive, flexural and combined capacity checks

Use 'gosteel --help' to see available commands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
