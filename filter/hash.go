// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package filter

import "golang.org/x/crypto/sha3"

// sha3Sum256 hashes data with SHA-3(256). golang.org/x/crypto/sha3's
// constructors are infallible: there is no runtime condition under which
// they fail to produce a hash.Hash, unlike a factory-style HashFunction
// lookup that can fail to find an algorithm at runtime.
func sha3Sum256(data []byte) [32]byte {
	return sha3.Sum256(data)
}
