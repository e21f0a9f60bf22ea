// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pool implements the entropy pool described in component A of
// the entropy subsystem: an append-only byte buffer that can be compressed
// to a SHA-3(256) digest, and that estimates the entropy content it holds
// using a pair of cheap, non-formal estimators. The pool does not enforce
// its cap itself; the caller (the event filter) compresses it when it grows
// past the cap.
//
// This is not an SP 800-90B entropy source validation. It is the heuristic
// KeePassXC itself uses: Shannon entropy and min-entropy over the pool's
// byte-value histogram, each scaled by pool size to a total-bit estimate.
package pool

import (
	"math"

	"golang.org/x/crypto/sha3"
)

// Cap is the default pool byte cap (entropycfg.Default's PoolCap). Append
// does not check it and may leave the pool longer than Cap; the filter
// calls Compress once an event has pushed the pool past its configured cap.
const Cap = 4096

// DigestSize is the size in bytes of a SHA-3(256) digest, and therefore the
// pool's size immediately after Compress.
const DigestSize = 32

// Pool is an append-only byte buffer. The zero value is a valid,
// empty pool. Pool is not safe for concurrent use; callers (the event
// filter) are expected to serialize access themselves, per the subsystem's
// single-threaded event-dispatch contract.
type Pool struct {
	buf []byte
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{}
}

// Len returns the current number of bytes held by the pool.
func (p *Pool) Len() int {
	return len(p.buf)
}

// Append appends raw octets to the pool with no interpretation.
func (p *Pool) Append(data ...byte) {
	p.buf = append(p.buf, data...)
}

// AppendBytes appends a byte slice to the pool with no interpretation.
func (p *Pool) AppendBytes(data []byte) {
	p.buf = append(p.buf, data...)
}

// Clear empties the pool, as happens immediately after a successful reseed.
func (p *Pool) Clear() {
	for i := range p.buf {
		p.buf[i] = 0
	}
	p.buf = p.buf[:0]
}

// Compress replaces the entire pool contents with SHA-3-256(contents),
// collapsing it to exactly DigestSize bytes. The filter calls it whenever
// an event leaves the pool over its cap; the reseed path uses Digest and
// Clear instead.
func (p *Pool) Compress() {
	digest := sha3.Sum256(p.buf)
	p.buf = append(p.buf[:0], digest[:]...)
}

// Snapshot returns a copy of the pool's current contents.
func (p *Pool) Snapshot() []byte {
	out := make([]byte, len(p.buf))
	copy(out, p.buf)
	return out
}

// Digest returns SHA-3-256(contents) without mutating the pool, used by the
// filter to obtain the bytes it hands to the RNG on a successful reseed
// gate (the pool is cleared separately, only once the reseed call itself
// has succeeded).
func (p *Pool) Digest() [DigestSize]byte {
	return sha3.Sum256(p.buf)
}

// EntropyBits returns the pool's heuristic Shannon and min-entropy content,
// in bits. Both estimators scale their per-byte estimate by pool length so
// that a small, high-quality pool and a large, low-quality pool can each
// independently cross a fixed bit threshold. A zero-length pool returns
// (0, 0).
func (p *Pool) EntropyBits() (shannonBits, minBits float64) {
	n := len(p.buf)
	if n == 0 {
		return 0, 0
	}

	var histogram [256]int
	for _, b := range p.buf {
		histogram[b]++
	}

	total := float64(n)
	var shannonPerByte float64
	maxFreq := 0
	for _, count := range histogram {
		if count == 0 {
			continue
		}
		if count > maxFreq {
			maxFreq = count
		}
		freq := float64(count) / total
		shannonPerByte -= freq * math.Log2(freq)
	}

	minPerByte := -math.Log2(float64(maxFreq) / total)

	return shannonPerByte * total, minPerByte * total
}
