// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/coldkeep/entropy/rng"
)

func newUintCmd() *cobra.Command {
	var limit uint32
	var samples int

	cmd := &cobra.Command{
		Use:   "uint",
		Short: "Histogram S draws of RandomUint(L), for manual uniformity checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureSeeded(); err != nil {
				return err
			}

			buckets := make(map[uint32]int, limit)
			for i := 0; i < samples; i++ {
				v, err := rng.Instance().RandomUint(limit)
				if err != nil {
					return fmt.Errorf("draw random uint: %w", err)
				}
				buckets[v]++
			}

			keys := make([]uint32, 0, len(buckets))
			for k := range buckets {
				keys = append(keys, k)
			}
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %d (%.2f%%)\n", k, buckets[k], 100*float64(buckets[k])/float64(samples))
			}
			return nil
		},
	}

	cmd.Flags().Uint32Var(&limit, "limit", 10, "Exclusive upper bound for draws")
	cmd.Flags().IntVar(&samples, "samples", 10000, "Number of draws to histogram")
	return cmd
}
