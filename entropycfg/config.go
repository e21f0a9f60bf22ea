// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package entropycfg holds the tunable constants of the entropy subsystem:
// pool capacity, the reseed entropy threshold, and the minimum reseed
// interval, as an explicit, option-constructed value instead of package
// scoped constants, so tests can exercise gating behavior at small scale
// without waiting on wall-clock intervals or real event volume.
package entropycfg

import (
	"time"

	"github.com/coldkeep/entropy/pool"
)

// Config holds the gating parameters for a filter+pool pair.
type Config struct {
	// PoolCap is the byte threshold above which the pool is compressed.
	PoolCap int

	// SecurityLevel is the bit threshold, on both the Shannon and
	// min-entropy estimators, required before a reseed is allowed.
	SecurityLevel float64

	// MinReseedInterval is the minimum wall-clock time that must elapse
	// between two successful reseeds.
	MinReseedInterval time.Duration
}

// Default returns the subsystem's production defaults: a 4096-byte pool cap,
// a 256-bit security level, and a 5-second minimum reseed interval.
func Default() Config {
	return Config{
		PoolCap:           pool.Cap,
		SecurityLevel:     256,
		MinReseedInterval: 5 * time.Second,
	}
}

// Option mutates a Config under construction.
type Option func(*Config)

// New builds a Config starting from Default and applying opts in order.
func New(opts ...Option) Config {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPoolCap overrides the pool byte cap.
func WithPoolCap(cap int) Option {
	return func(c *Config) { c.PoolCap = cap }
}

// WithSecurityLevel overrides the reseed entropy threshold, in bits.
func WithSecurityLevel(bits float64) Option {
	return func(c *Config) { c.SecurityLevel = bits }
}

// WithMinReseedInterval overrides the minimum time between reseeds.
func WithMinReseedInterval(d time.Duration) Option {
	return func(c *Config) { c.MinReseedInterval = d }
}
