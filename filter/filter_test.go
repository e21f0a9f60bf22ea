// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package filter

import (
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldkeep/entropy/entropycfg"
)

// fakeRandom is a randomSeeder test double that records every
// initialize/reseed call so tests can assert on reseed gating without a
// real HMAC-DRBG.
type fakeRandom struct {
	initCalls   [][]byte
	reseedCalls [][]byte
	reseedErr   error
}

func (f *fakeRandom) InitializeUserRNG(seedBytes []byte) error {
	cp := append([]byte{}, seedBytes...)
	f.initCalls = append(f.initCalls, cp)
	return nil
}

func (f *fakeRandom) ReseedUserRNG(seedBytes []byte) error {
	if f.reseedErr != nil {
		return f.reseedErr
	}
	cp := append([]byte{}, seedBytes...)
	f.reseedCalls = append(f.reseedCalls, cp)
	return nil
}

func newTestFilter(t *testing.T, opts ...entropycfg.Option) (*Filter, *fakeRandom) {
	t.Helper()
	rnd := &fakeRandom{}
	cfg := entropycfg.New(opts...)
	f, err := NewFilter(rnd, cfg, nil)
	require.NoError(t, err)
	return f, rnd
}

func TestNewFilterSeedsOnConstruction(t *testing.T) {
	_, rnd := newTestFilter(t)
	require.Len(t, rnd.initCalls, 1)
	assert.Len(t, rnd.initCalls[0], 32, "SHA-3-256 digest is 32 bytes")
}

func TestOnEventAlwaysPassesThrough(t *testing.T) {
	f, _ := newTestFilter(t)
	result := f.OnEvent(key.Event{Name: "a", State: key.Press})
	assert.True(t, bool(result))
}

func TestOnEventIgnoresUnknownEventTypes(t *testing.T) {
	f, _ := newTestFilter(t)
	before := f.pool.Len()
	result := f.OnEvent(struct{ unrelated int }{42})
	assert.True(t, bool(result))
	assert.Equal(t, before, f.pool.Len())
}

func TestKeyEventGrowsPool(t *testing.T) {
	f, _ := newTestFilter(t)
	before := f.pool.Len()
	f.OnEvent(key.Event{Name: "x", State: key.Press})
	assert.Greater(t, f.pool.Len(), before)
}

func TestMouseMoveGrowsPool(t *testing.T) {
	f, _ := newTestFilter(t)
	before := f.pool.Len()
	f.OnEvent(pointer.Event{Kind: pointer.Move, Position: f32.Point{X: 10, Y: 20}})
	assert.Greater(t, f.pool.Len(), before)
}

// TestS2NoReseedUnderThreshold delivers ten mouse-move events at a fixed
// position, so only their timing varies; the pool's min-entropy estimate
// stays near 120 bits, under the default 256-bit security level, and no
// reseed is triggered.
func TestS2NoReseedUnderThreshold(t *testing.T) {
	f, rnd := newTestFilter(t, entropycfg.WithMinReseedInterval(0))

	for i := 0; i < 10; i++ {
		f.OnEvent(pointer.Event{Kind: pointer.Move, Position: f32.Point{X: 0, Y: 0}})
	}

	assert.Empty(t, rnd.reseedCalls)
}

// TestS3ReseedAfterThreshold lowers the security level and reseed interval
// so a modest number of varied events clears the gate, then stops feeding
// events the moment a reseed lands so the pool-clear can be checked
// deterministically.
func TestS3ReseedAfterThreshold(t *testing.T) {
	f, rnd := newTestFilter(t,
		entropycfg.WithSecurityLevel(16),
		entropycfg.WithMinReseedInterval(0),
	)

	for i := 0; i < 64; i++ {
		f.OnEvent(key.Event{Name: key.Name(rune('a' + i%26)), State: key.Press})
		if len(rnd.reseedCalls) > 0 {
			break
		}
		f.OnEvent(pointer.Event{
			Kind:     pointer.Move,
			Position: f32.Point{X: float32(i * 3 % 97), Y: float32(i * 7 % 89)},
		})
		if len(rnd.reseedCalls) > 0 {
			break
		}
	}

	require.NotEmpty(t, rnd.reseedCalls)
	assert.Equal(t, 0, f.pool.Len(), "pool must be empty immediately after a successful reseed")
}

// TestReseedGatedByMinInterval confirms two reseeds cannot happen inside
// the minimum interval even once the entropy threshold is cleared again.
func TestReseedGatedByMinInterval(t *testing.T) {
	f, rnd := newTestFilter(t,
		entropycfg.WithSecurityLevel(8),
		entropycfg.WithMinReseedInterval(time.Hour),
	)

	for i := 0; i < 32; i++ {
		f.OnEvent(key.Event{Name: key.Name(rune('a' + i%26)), State: key.Press})
	}
	firstCount := len(rnd.reseedCalls)
	require.Equal(t, 1, firstCount)

	for i := 0; i < 32; i++ {
		f.OnEvent(key.Event{Name: key.Name(rune('a' + i%26)), State: key.Release})
	}
	assert.Equal(t, firstCount, len(rnd.reseedCalls), "reseed must not repeat inside MinReseedInterval")
}

// TestS4PoolCompression sets a cap smaller than a single event's byte
// contribution, so every event forces a compress and the pool always ends
// at exactly one digest's worth of bytes.
func TestS4PoolCompression(t *testing.T) {
	f, _ := newTestFilter(t, entropycfg.WithPoolCap(8), entropycfg.WithSecurityLevel(1e9))

	for i := 0; i < 40; i++ {
		f.OnEvent(key.Event{Name: key.Name(rune('a' + i%26)), State: key.Press})
		assert.Equal(t, 32, f.pool.Len())
	}
}

func TestPoolNeverExceedsCapAtCallBoundary(t *testing.T) {
	const cap = 128
	f, _ := newTestFilter(t, entropycfg.WithPoolCap(cap), entropycfg.WithSecurityLevel(1e9))

	for i := 0; i < 200; i++ {
		f.OnEvent(pointer.Event{Kind: pointer.Move, Position: f32.Point{X: float32(i), Y: float32(i * 2)}})
		assert.LessOrEqual(t, f.pool.Len(), cap)
	}
}

func TestFailedReseedRetainsPool(t *testing.T) {
	f, rnd := newTestFilter(t, entropycfg.WithSecurityLevel(8), entropycfg.WithMinReseedInterval(0))
	rnd.reseedErr = assertError{}

	for i := 0; i < 32; i++ {
		f.OnEvent(key.Event{Name: key.Name(rune('a' + i%26)), State: key.Press})
	}

	assert.Empty(t, rnd.reseedCalls)
	assert.NotZero(t, f.pool.Len(), "a failed reseed must not clear the pool")
}

type assertError struct{}

func (assertError) Error() string { return "stub reseed failure" }

func TestKeyDeltaOnlyAppendedAfterFirstKey(t *testing.T) {
	f, _ := newTestFilter(t)
	f.OnEvent(key.Event{Name: "a", State: key.Press})
	firstLen := f.pool.Len()
	f.OnEvent(key.Event{Name: "b", State: key.Press})
	secondGrowth := f.pool.Len() - firstLen

	// Second event appends timestamp(8) + kind(1) + code(1) + delta(8) = 18
	// bytes; the first event has no delta to append (10 bytes).
	assert.Equal(t, 18, secondGrowth)
}
