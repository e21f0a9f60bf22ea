// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"time"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"github.com/spf13/cobra"

	"github.com/coldkeep/entropy/entropycfg"
	"github.com/coldkeep/entropy/filter"
	"github.com/coldkeep/entropy/rng"
)

// reseedCounter wraps rng.Random so simulate can report how many reseeds
// actually landed during the run.
type reseedCounter struct {
	rnd   *rng.Random
	count int
}

func (r *reseedCounter) InitializeUserRNG(seed []byte) error {
	return r.rnd.InitializeUserRNG(seed)
}

func (r *reseedCounter) ReseedUserRNG(seed []byte) error {
	if err := r.rnd.ReseedUserRNG(seed); err != nil {
		return err
	}
	r.count++
	return nil
}

func newSimulateCmd() *cobra.Command {
	var events int
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Feed synthetic key and mouse events through the entropy filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			counter := &reseedCounter{rnd: rng.Instance()}
			f, err := filter.NewFilter(counter, entropycfg.Default(), nil)
			if err != nil {
				return fmt.Errorf("construct filter: %w", err)
			}

			perEvent := time.Duration(0)
			if events > 0 {
				perEvent = duration / time.Duration(events)
			}

			keyNames := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
			for i := 0; i < events; i++ {
				if i%2 == 0 {
					f.OnEvent(key.Event{
						Name:  key.Name(keyNames[i%len(keyNames)]),
						State: key.Press,
					})
				} else {
					f.OnEvent(pointer.Event{
						Kind:     pointer.Move,
						Position: f32.Point{X: float32(i*37) % 1920, Y: float32(i*53) % 1080},
					})
				}

				if (i+1)%25 == 0 || i == events-1 {
					shannon, min := f.EntropyBits()
					fmt.Fprintf(cmd.OutOrStdout(),
						"event %d/%d: pool=%dB shannon=%.1fbit min=%.1fbit reseeds=%d\n",
						i+1, events, f.PoolLen(), shannon, min, counter.count)
				}

				if perEvent > 0 {
					time.Sleep(perEvent)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "done: %d reseeds over %d events\n", counter.count, events)
			return nil
		},
	}

	cmd.Flags().IntVar(&events, "events", 200, "Number of synthetic events to feed")
	cmd.Flags().DurationVar(&duration, "duration", 5*time.Second, "Wall-clock span to spread events across")
	return cmd
}
