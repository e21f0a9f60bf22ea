// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !unix

package secure

// lock is a no-op on platforms without mlock (e.g. Windows, where the
// equivalent is VirtualLock under SE_LOCK_MEMORY_NAME and requires
// elevated privilege most processes don't hold). Wipe-on-release still
// applies; only swap exclusion is unavailable here.
func (b *Bytes) lock() {}

func (b *Bytes) unlock() {}
