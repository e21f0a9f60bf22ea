// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHMACDRBGGenerateBeforeInstantiateFails(t *testing.T) {
	d := newHMACDRBG()
	out := make([]byte, 16)
	err := d.generate(out, nil)
	assert.ErrorIs(t, err, errNotSeeded)
}

func TestHMACDRBGDeterministicFromFixedSeed(t *testing.T) {
	d1 := newHMACDRBG()
	d2 := newHMACDRBG()

	d1.instantiate([]byte("entropy-input"), []byte("nonce-value-12345"), []byte("app"))
	d2.instantiate([]byte("entropy-input"), []byte("nonce-value-12345"), []byte("app"))

	out1 := make([]byte, 48)
	out2 := make([]byte, 48)
	require.NoError(t, d1.generate(out1, nil))
	require.NoError(t, d2.generate(out2, nil))

	assert.Equal(t, out1, out2)
}

func TestHMACDRBGSuccessiveGeneratesDiffer(t *testing.T) {
	d := newHMACDRBG()
	d.instantiate([]byte("entropy-input"), []byte("nonce-value-12345"), nil)

	first := make([]byte, 32)
	second := make([]byte, 32)
	require.NoError(t, d.generate(first, nil))
	require.NoError(t, d.generate(second, nil))

	assert.NotEqual(t, first, second)
}

func TestHMACDRBGReseedChangesStream(t *testing.T) {
	d := newHMACDRBG()
	d.instantiate([]byte("entropy-input"), []byte("nonce-value-12345"), nil)

	before := make([]byte, 32)
	require.NoError(t, d.generate(before, nil))

	require.NoError(t, d.reseed([]byte("fresh-entropy"), nil))

	after := make([]byte, 32)
	require.NoError(t, d.generate(after, nil))

	assert.NotEqual(t, before, after)
}

func TestHMACDRBGReseedBeforeInstantiateFails(t *testing.T) {
	d := newHMACDRBG()
	err := d.reseed([]byte("entropy"), nil)
	assert.ErrorIs(t, err, errNotSeeded)
}

func TestHMACDRBGArbitraryLengthOutput(t *testing.T) {
	d := newHMACDRBG()
	d.instantiate([]byte("entropy-input"), []byte("nonce-value-12345"), nil)

	for _, n := range []int{1, 31, 32, 33, 65, 200} {
		out := make([]byte, n)
		require.NoError(t, d.generate(out, nil))
		assert.Len(t, out, n)
	}
}

func TestReseedCounterIncrAndReset(t *testing.T) {
	c := newReseedCounter()
	c.reset()
	assert.Equal(t, uint64(1), c.value())

	c.incr()
	c.incr()
	assert.Equal(t, uint64(3), c.value())

	c.reset()
	assert.Equal(t, uint64(1), c.value())
}
