// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build linux

package filter

import (
	"os"
	"strings"
)

// machineID reads the kernel-maintained machine identifier, trying
// /etc/machine-id before the dbus-maintained copy. Absence of both must not
// abort startup; callers concatenate an empty result as a zero-length
// string.
func machineID() string {
	for _, path := range []string{"/etc/machine-id", "/var/lib/dbus/machine-id"} {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return strings.TrimSpace(string(data))
	}
	return ""
}
