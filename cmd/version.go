// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosteel",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gosteel v%s\n", Version)
		fmt.Println("Steel member and connector capacity checks per AISC 360-16")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
