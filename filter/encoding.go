// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package filter

import (
	"encoding/binary"
	"math"
)

// Integer concatenation into the pool is fixed to little-endian for
// cross-build interoperability.

func appendInt64LE(dst []byte, v int64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return append(dst, buf[:]...)
}

func appendUintptrLE(dst []byte, v uintptr) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	return append(dst, buf[:]...)
}

func appendFloat32LE(dst []byte, v float32) []byte {
	return appendUint32LE(dst, math.Float32bits(v))
}

func appendUint32LE(dst []byte, v uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return append(dst, buf[:]...)
}
