// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package secure provides a byte buffer for transiting secret material,
// such as entropy pool digests and DRBG keys and seeds, that is wiped on
// release and, where the platform allows, excluded from swap.
package secure

import (
	"crypto/subtle"
	"runtime"
	"sync"
)

// Bytes is a fixed-size secret buffer. The zero value is not usable; create
// one with New or From. Bytes is never copied implicitly: callers obtain the
// underlying slice through Slice, use it, and must not retain it past the
// call that produced it.
type Bytes struct {
	mu     sync.Mutex
	data   []byte
	locked bool
	freed  bool
}

// New allocates a zero-filled secret buffer of the given size and attempts
// to lock it against swapping. Failure to lock is non-fatal: callers on
// platforms or under privilege levels that forbid mlock still get a
// wipe-on-release buffer, just not swap protection.
func New(size int) *Bytes {
	b := &Bytes{data: make([]byte, size)}
	b.lock()
	runtime.SetFinalizer(b, (*Bytes).Free)
	return b
}

// From copies data into a new secret buffer and wipes the source slice.
func From(data []byte) *Bytes {
	b := New(len(data))
	copy(b.data, data)
	Wipe(data)
	return b
}

// Len returns the buffer length.
func (b *Bytes) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// Slice returns the underlying buffer for immediate use. The returned slice
// aliases internal storage and becomes invalid after Free; callers must not
// retain it beyond the call.
func (b *Bytes) Slice() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// CopyOut returns an independent copy of the buffer's contents. The caller
// owns the result and is responsible for wiping it when done.
func (b *Bytes) CopyOut() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// Free wipes and releases the buffer. It is safe to call more than once and
// is invoked automatically by a finalizer if the caller forgets to.
func (b *Bytes) Free() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.freed {
		return
	}
	wipe(b.data)
	if b.locked {
		b.unlock()
	}
	b.data = nil
	b.freed = true
	runtime.SetFinalizer(b, nil)
}

// Wipe overwrites data with zeros in place. Used for plaintext secrets that
// live outside a Bytes buffer for the shortest possible span (e.g. a caller
// supplied []byte about to be handed to From).
func Wipe(data []byte) {
	wipe(data)
}

func wipe(data []byte) {
	if len(data) == 0 {
		return
	}
	for i := range data {
		data[i] = 0
	}
	runtime.KeepAlive(data)
}

// Equal performs a constant-time comparison of two byte slices.
func Equal(a, b []byte) bool {
	return len(a) == len(b) && subtle.ConstantTimeCompare(a, b) == 1
}
