// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build unix

package secure

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

func (b *Bytes) lock() {
	if len(b.data) == 0 {
		return
	}
	ptr := unsafe.Pointer(&b.data[0])
	size := uintptr(len(b.data))
	if err := unix.Mlock(unsafe.Slice((*byte)(ptr), size)); err == nil {
		b.locked = true
	}
}

func (b *Bytes) unlock() {
	if len(b.data) == 0 {
		return
	}
	ptr := unsafe.Pointer(&b.data[0])
	size := uintptr(len(b.data))
	_ = unix.Munlock(unsafe.Slice((*byte)(ptr), size))
	b.locked = false
}
