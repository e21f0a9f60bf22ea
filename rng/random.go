// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rng implements component C of the entropy subsystem: a
// process-wide Random generator that mixes a system CSPRNG with a
// user-seeded HMAC-DRBG through a SHAKE-256 extendable-output function, so
// that a compromise of either source alone does not weaken the output.
package rng

import (
	"errors"
	"io"
	"sync"

	ctrdrbg "github.com/sixafter/aes-ctr-drbg"
	"golang.org/x/crypto/sha3"
)

// Sentinel errors surfaced to callers, per the subsystem's error taxonomy.
var (
	// ErrNotSeeded is returned by ReseedUserRNG when InitializeUserRNG has
	// not yet run. Treated as a programming error by callers.
	ErrNotSeeded = errors.New("rng: user rng not seeded")
	// ErrRejectsInput is returned by ReseedUserRNG if the underlying DRBG
	// construction cannot accept additional entropy.
	ErrRejectsInput = errors.New("rng: user rng rejects additional entropy")
	// ErrSystemRNGFailure is returned by Randomize when the system CSPRNG
	// draw fails.
	ErrSystemRNGFailure = errors.New("rng: system rng failure")
)

// UserRNGState is the advisory lifecycle state of the user-seeded DRBG.
// NeedsReseed and Seeded are both usable for output; the distinction is
// informational only. Reseeds are gated by the filter's time and entropy
// policy, not forced by this state.
type UserRNGState int

const (
	// Uninitialized is the state before InitializeUserRNG has run. Draws
	// in this state are a programming error.
	Uninitialized UserRNGState = iota
	// Seeded is reached once InitializeUserRNG has run.
	Seeded
	// NeedsReseed is advisory only; this implementation does not
	// distinguish it from Seeded in practice. Reseed timing and gating
	// are the filter's responsibility, not this type's.
	NeedsReseed
)

// userDRBG is the subset of hmacDRBG's behavior Random depends on. It is an
// interface, not a concrete type, purely so tests can substitute a stub
// user RNG to verify the two-source mix independently of each source's
// internals.
type userDRBG interface {
	instantiate(entropyInput, nonce, personalization []byte)
	reseed(entropyInput, additionalInput []byte) error
	generate(out []byte, additionalInput []byte) error
}

// Random holds the two RNG sources and exposes mixed, uniformly
// distributed randomness. Obtain the process-wide instance with Instance;
// construct additional instances only for tests.
type Random struct {
	mu        sync.Mutex
	systemRNG io.Reader
	userRNG   userDRBG
	state     UserRNGState
}

var (
	instance     *Random
	instanceOnce sync.Once
	instanceErr  error
)

// Instance returns the process-wide Random singleton, constructing it on
// first access. Construction failure (system CSPRNG unavailable) is fatal:
// it panics, since no caller can meaningfully proceed without randomness.
func Instance() *Random {
	instanceOnce.Do(func() {
		instance, instanceErr = newRandom()
	})
	if instanceErr != nil {
		panic(instanceErr)
	}
	return instance
}

func newRandom() (*Random, error) {
	systemRNG, err := ctrdrbg.NewReader()
	if err != nil {
		return nil, err
	}
	return &Random{
		systemRNG: systemRNG,
		userRNG:   newHMACDRBG(),
		state:     Uninitialized,
	}, nil
}

// State reports the user RNG's current lifecycle state.
func (r *Random) State() UserRNGState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// InitializeUserRNG seeds the user RNG from seedBytes mixed with 32 freshly
// drawn system RNG bytes, user bytes first. It is idempotent: once Seeded,
// further calls are a no-op.
func (r *Random) InitializeUserRNG(seedBytes []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Uninitialized {
		return nil
	}

	systemBytes := make([]byte, 32)
	if _, err := io.ReadFull(r.systemRNG, systemBytes); err != nil {
		return errSystemRNG(err)
	}

	combined := make([]byte, 0, len(seedBytes)+len(systemBytes))
	combined = append(combined, seedBytes...)
	combined = append(combined, systemBytes...)

	nonce := make([]byte, 16)
	if _, err := io.ReadFull(r.systemRNG, nonce); err != nil {
		return errSystemRNG(err)
	}

	r.userRNG.instantiate(combined, nonce, []byte("entropy/user-rng/hmac-drbg/sha3-256"))
	r.state = Seeded
	return nil
}

// ReseedUserRNG adds seedBytes as additional entropy to the already-seeded
// user RNG. It fails with ErrNotSeeded if InitializeUserRNG has not run,
// and with ErrRejectsInput if the DRBG refuses additional entropy (not
// reachable for this construction, kept so the call site's error handling
// stays meaningful if the DRBG implementation changes).
func (r *Random) ReseedUserRNG(seedBytes []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == Uninitialized {
		return ErrNotSeeded
	}

	if err := r.userRNG.reseed(seedBytes, nil); err != nil {
		if errors.Is(err, errNotSeeded) {
			return ErrNotSeeded
		}
		return ErrRejectsInput
	}
	r.state = Seeded
	return nil
}

// Randomize fills buf with len(buf) uniformly random bytes, drawn from both
// sources and mixed with SHAKE-256:
//  1. draw len(buf) bytes from the system RNG
//  2. draw len(buf) bytes from the user RNG
//  3. seed = user || system
//  4. output = SHAKE-256(seed, 8*len(buf) bits)
func (r *Random) Randomize(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sysBytes := make([]byte, len(buf))
	if _, err := io.ReadFull(r.systemRNG, sysBytes); err != nil {
		return errSystemRNG(err)
	}

	usrBytes := make([]byte, len(buf))
	if err := r.userRNG.generate(usrBytes, nil); err != nil {
		return errSystemRNG(err)
	}

	seed := make([]byte, 0, 2*len(buf))
	seed = append(seed, usrBytes...)
	seed = append(seed, sysBytes...)

	xof := sha3.NewShake256()
	xof.Write(seed)
	if _, err := io.ReadFull(xof, buf); err != nil {
		return errSystemRNG(err)
	}
	return nil
}

// RandomArray returns an n-byte buffer filled via Randomize.
func (r *Random) RandomArray(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := r.Randomize(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// RandomUint returns a uniform uint32 in [0, limit) using rejection
// sampling to avoid modulo bias. limit == 0 returns 0.
func (r *Random) RandomUint(limit uint32) (uint32, error) {
	if limit == 0 {
		return 0, nil
	}

	const maxUint32 = ^uint32(0)
	ceil := maxUint32 - (maxUint32 % limit) - 1

	var buf [4]byte
	for {
		if err := r.Randomize(buf[:]); err != nil {
			return 0, err
		}
		v := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
		if v <= ceil {
			return v % limit, nil
		}
	}
}

// RandomUintRange returns a uniform uint32 in [min, max).
func (r *Random) RandomUintRange(min, max uint32) (uint32, error) {
	v, err := r.RandomUint(max - min)
	if err != nil {
		return 0, err
	}
	return min + v, nil
}

func errSystemRNG(cause error) error {
	return errors.Join(ErrSystemRNGFailure, cause)
}

// newWithSystemRNG builds a Random over a caller-supplied system entropy
// source instead of the production aes-ctr-drbg reader. It exists for
// white-box tests that need to inject a deterministic or stub system RNG
// without touching the process-wide singleton.
func newWithSystemRNG(systemRNG io.Reader) *Random {
	return &Random{
		systemRNG: systemRNG,
		userRNG:   newHMACDRBG(),
		state:     Uninitialized,
	}
}
