// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package cmd builds the entropyctl command tree.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the entropyctl command tree with its persistent flags
// bound into viper, so subcommands read configuration uniformly whether it
// came from a flag, an environment variable, or a loaded .env file.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "entropyctl",
		Short: "Exercise and inspect the entropy collection subsystem",
	}

	root.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	viper.SetEnvPrefix("entropyctl")
	viper.AutomaticEnv()

	root.PersistentPreRun = func(*cobra.Command, []string) {
		level := slog.LevelInfo
		if viper.GetBool("verbose") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	root.AddCommand(newSimulateCmd())
	root.AddCommand(newDrawCmd())
	root.AddCommand(newUintCmd())

	return root
}
