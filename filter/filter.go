// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package filter implements component B of the entropy subsystem: an event
// sink that extracts raw bytes from keyboard and mouse events delivered by
// a GUI dispatcher, accumulates them into a pool.Pool, and reseeds a
// rng.Random's user RNG once the pool's estimated entropy content and the
// time since the last reseed both clear their thresholds.
package filter

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/coldkeep/entropy/entropycfg"
	"github.com/coldkeep/entropy/pool"
	"github.com/coldkeep/entropy/secure"
)

// eventKind is the fixed-width discriminant appended to the pool for every
// handled event.
type eventKind uint8

const (
	kindKeyPress eventKind = iota
	kindKeyRelease
	kindMousePress
	kindMouseRelease
	kindMouseMove
)

// PassThrough is always true: the filter never consumes an event, only
// observes it.
type PassThrough bool

// randomSeeder is the subset of rng.Random's surface the filter depends on.
// It is an interface so tests can observe, and fail, reseed calls without
// touching the real HMAC-DRBG.
type randomSeeder interface {
	InitializeUserRNG(seedBytes []byte) error
	ReseedUserRNG(seedBytes []byte) error
}

// mousePos is a 2D point in local widget coordinates.
type mousePos struct {
	x, y float32
}

// Filter accumulates entropy from GUI input events and reseeds rnd's user
// RNG once the accumulated pool clears the configured security level. It
// assumes a single-threaded event-dispatch contract: OnEvent runs to
// completion on one goroutine before the next call, so no internal locking
// is needed.
type Filter struct {
	cfg    entropycfg.Config
	rnd    randomSeeder
	logger *slog.Logger

	pool *pool.Pool

	lastReseedTime time.Time
	haveMouse      bool
	lastMouse      mousePos
	lastMouseTime  time.Time
	haveKey        bool
	lastKeyTime    time.Time
}

// NewFilter constructs the filter: it builds the startup entropy blob
// (process/host identifiers, a stack address, an executable mtime, and
// constructor scheduling jitter), hashes it with SHA-3(256), and seeds
// rnd's user RNG with the digest before returning. Construction fails only
// if seeding fails, which is fatal: rnd's user RNG would otherwise remain
// uninitialized for the process lifetime.
func NewFilter(rnd randomSeeder, cfg entropycfg.Config, logger *slog.Logger) (*Filter, error) {
	start := time.Now()
	if logger == nil {
		logger = slog.Default()
	}

	f := &Filter{
		cfg:    cfg,
		rnd:    rnd,
		logger: logger,
		pool:   pool.New(),
	}

	blob := secure.From(buildStartupBlob(start))
	defer blob.Free()

	digest := sha3Sum256(blob.Slice())
	if err := rnd.InitializeUserRNG(digest[:]); err != nil {
		return nil, fmt.Errorf("filter: seed user rng from startup entropy: %w", err)
	}

	return f, nil
}

// PoolLen reports the current byte length of the accumulated entropy pool.
func (f *Filter) PoolLen() int {
	return f.pool.Len()
}

// EntropyBits reports the pool's current Shannon and min-entropy estimates,
// in bits.
func (f *Filter) EntropyBits() (shannonBits, minBits float64) {
	return f.pool.EntropyBits()
}

// OnEvent handles one raw input event. It always returns PassThrough(true):
// the filter only observes events, it never consumes them. Event kinds
// other than key press/release and mouse button press/release/move are
// ignored without altering the pool.
func (f *Filter) OnEvent(event any) PassThrough {
	now := time.Now()

	switch e := event.(type) {
	case key.Event:
		f.handleKeyEvent(e, now)
	case pointer.Event:
		f.handlePointerEvent(e, now)
	default:
		return true
	}

	f.managePool(now)
	return true
}

func (f *Filter) handleKeyEvent(e key.Event, now time.Time) {
	var kind eventKind
	switch e.State {
	case key.Press:
		kind = kindKeyPress
	case key.Release:
		kind = kindKeyRelease
	default:
		return
	}

	buf := appendInt64LE(nil, now.UnixMilli())
	buf = append(buf, byte(kind))

	var code byte
	if len(e.Name) > 0 {
		code = e.Name[0]
	}
	buf = append(buf, code)

	if f.haveKey {
		delta := now.Sub(f.lastKeyTime).Nanoseconds()
		buf = appendInt64LE(buf, delta)
	}

	f.pool.AppendBytes(buf)
	f.lastKeyTime = now
	f.haveKey = true
}

func (f *Filter) handlePointerEvent(e pointer.Event, now time.Time) {
	var kind eventKind
	switch e.Kind {
	case pointer.Press:
		kind = kindMousePress
	case pointer.Release:
		kind = kindMouseRelease
	case pointer.Move, pointer.Drag:
		kind = kindMouseMove
	default:
		return
	}

	buf := appendInt64LE(nil, now.UnixMilli())
	buf = append(buf, byte(kind))

	x, y := e.Position.X, e.Position.Y
	buf = appendFloat32LE(buf, x)
	buf = appendFloat32LE(buf, y)

	if f.haveMouse {
		dt := now.Sub(f.lastMouseTime).Seconds()
		if dt > 0 {
			dx := float64(x - f.lastMouse.x)
			dy := float64(y - f.lastMouse.y)
			speed := math.Sqrt(dx*dx+dy*dy) / dt
			accel := speed / dt
			buf = appendFloat32LE(buf, float32(speed))
			buf = appendFloat32LE(buf, float32(accel))
		}
		// dt == 0 is a degenerate sample: the derived speed/acceleration
		// features are skipped rather than recording inf/NaN.
	}

	f.pool.AppendBytes(buf)
	f.lastMouse = mousePos{x: x, y: y}
	f.lastMouseTime = now
	f.haveMouse = true
}

// managePool runs the post-event pool management sequence: compress if
// over cap, estimate entropy, and reseed if the pool clears both entropy
// thresholds and enough time has elapsed since the last reseed.
func (f *Filter) managePool(now time.Time) {
	if f.pool.Len() > f.cfg.PoolCap {
		f.pool.Compress()
	}

	shannonBits, minBits := f.pool.EntropyBits()
	if shannonBits <= f.cfg.SecurityLevel || minBits <= f.cfg.SecurityLevel {
		return
	}
	if !f.lastReseedTime.IsZero() && now.Sub(f.lastReseedTime) < f.cfg.MinReseedInterval {
		return
	}

	digest := f.pool.Digest()
	if err := f.rnd.ReseedUserRNG(digest[:]); err != nil {
		// On failure the pool is not cleared and lastReseedTime does not
		// advance, so the next event retries.
		f.logger.LogAttrs(context.Background(), slog.LevelWarn,
			"entropy: reseed attempt failed, pool retained",
			slog.String("error", err.Error()),
		)
		return
	}

	f.pool.Clear()
	f.lastReseedTime = now
}
