// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cmd

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldkeep/entropy/rng"
)

func newDrawCmd() *cobra.Command {
	var n int
	encoding := newEncodingFlag([]string{"hex", "base64"}, "hex")

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Print N random bytes, drawn from the mixed generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureSeeded(); err != nil {
				return err
			}
			buf, err := rng.Instance().RandomArray(n)
			if err != nil {
				return fmt.Errorf("draw random bytes: %w", err)
			}

			switch encoding.String() {
			case "base64":
				fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(buf))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&n, "bytes", 32, "Number of random bytes to draw")
	cmd.Flags().Var(encoding, "encoding", "Output encoding: hex or base64")
	return cmd
}
