// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rng

import (
	"crypto/hmac"
	"errors"

	"golang.org/x/crypto/sha3"
)

// reseedInterval bounds how many Generate calls an hmacDRBG will serve
// before demanding a reseed, per SP 800-90A §10.1.2.2. At our draw sizes
// (tens of bytes at a time from randomize) this is not expected to bind in
// practice; it exists so the implementation matches the standard construction
// rather than silently dropping the safeguard.
const reseedInterval = 1 << 32

// outLen is the output size of the underlying hash (SHA-3-256), and
// therefore of the DRBG's internal K and V state.
const outLen = 32

var (
	// errNotSeeded is returned by Generate before Instantiate has run.
	errNotSeeded = errors.New("rng: hmac-drbg: not seeded")
	// errReseedRequired is returned by Generate once reseedInterval calls
	// have elapsed since the last (re)seed.
	errReseedRequired = errors.New("rng: hmac-drbg: reseed required")
)

// hmacDRBG implements the HMAC-DRBG construction of SP 800-90A, instantiated
// over SHA-3-256. It is not safe for concurrent use; callers serialize
// access (rng.Random wraps it with a mutex).
type hmacDRBG struct {
	k        []byte
	v        []byte
	reseedCt reseedCounter
	seeded   bool
}

func newHMACDRBG() *hmacDRBG {
	return &hmacDRBG{
		k:        make([]byte, outLen),
		v:        make([]byte, outLen),
		reseedCt: newReseedCounter(),
	}
}

// update implements the HMAC-DRBG Update function (SP 800-90A §10.1.2.2).
func (d *hmacDRBG) update(providedData []byte) {
	mac := hmac.New(sha3.New256, d.k)
	mac.Write(d.v)
	mac.Write([]byte{0x00})
	mac.Write(providedData)
	d.k = mac.Sum(nil)

	mac = hmac.New(sha3.New256, d.k)
	mac.Write(d.v)
	d.v = mac.Sum(nil)

	if len(providedData) == 0 {
		return
	}

	mac = hmac.New(sha3.New256, d.k)
	mac.Write(d.v)
	mac.Write([]byte{0x01})
	mac.Write(providedData)
	d.k = mac.Sum(nil)

	mac = hmac.New(sha3.New256, d.k)
	mac.Write(d.v)
	d.v = mac.Sum(nil)
}

// instantiate seeds the DRBG from scratch (SP 800-90A §10.1.2.3). Calling it
// again on an already-seeded DRBG re-derives state from the new material,
// same as a from-scratch instantiate; callers enforce the "only once"
// contract at the rng.Random layer, not here.
func (d *hmacDRBG) instantiate(entropyInput, nonce, personalization []byte) {
	for i := range d.k {
		d.k[i] = 0
	}
	for i := range d.v {
		d.v[i] = 1
	}

	seedMaterial := append(append(append([]byte{}, entropyInput...), nonce...), personalization...)
	d.update(seedMaterial)
	d.reseedCt.reset()
	d.seeded = true
}

// reseed mixes additional entropy into already-seeded state (SP 800-90A
// §10.1.2.4).
func (d *hmacDRBG) reseed(entropyInput, additionalInput []byte) error {
	if !d.seeded {
		return errNotSeeded
	}
	seedMaterial := append(append([]byte{}, entropyInput...), additionalInput...)
	d.update(seedMaterial)
	d.reseedCt.reset()
	return nil
}

// generate fills out with pseudorandom bytes (SP 800-90A §10.1.2.5).
func (d *hmacDRBG) generate(out []byte, additionalInput []byte) error {
	if !d.seeded {
		return errNotSeeded
	}
	if d.reseedCt.value() > reseedInterval {
		return errReseedRequired
	}

	if len(additionalInput) > 0 {
		d.update(additionalInput)
	}

	pos := 0
	for pos < len(out) {
		mac := hmac.New(sha3.New256, d.k)
		mac.Write(d.v)
		d.v = mac.Sum(nil)
		pos += copy(out[pos:], d.v)
	}

	d.update(additionalInput)
	d.reseedCt.incr()
	return nil
}
