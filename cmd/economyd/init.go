// Copyright 2026 The Tonomy Economy Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/tonomy/economy/config"
)

var cmdInit = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration to the working directory",
	Args:  cobra.NoArgs,
	Run:   initNode,
}

var flagInit struct {
	Storage  string
	TestMode bool
}

func init() {
	cmdMain.AddCommand(cmdInit)
	cmdInit.Flags().StringVar(&flagInit.Storage, "storage", config.StorageBadger, "Storage backend, memory or badger")
	cmdInit.Flags().BoolVar(&flagInit.TestMode, "test-mode", false, "Use seconds-scale staking periods")
}

func initNode(_ *cobra.Command, _ []string) {
	cfg := config.Default(flagMain.WorkDir)
	cfg.Storage.Type = flagInit.Storage
	cfg.TestMode = flagInit.TestMode
	if flagInit.TestMode {
		cfg.Cron.Schedule = "@every 10s"
	}

	checkf(config.Store(cfg), "write config")
	fmt.Printf("Wrote configuration to %s\n", flagMain.WorkDir)
}
