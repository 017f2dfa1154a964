// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/tonomy/economy/internal/api"
)

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print the daemon version",
	Args:  cobra.NoArgs,
	Run: func(*cobra.Command, []string) {
		fmt.Printf("%s (%s)\n", api.Version, api.Commit)
	},
}

func init() {
	cmdMain.AddCommand(cmdVersion)
}
