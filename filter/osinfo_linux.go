// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build linux

package filter

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// kernelVersion returns the running kernel's release string (e.g.
// "6.8.0-generic") via uname(2). Absence must not abort startup.
func kernelVersion() string {
	var uts syscall.Utsname
	if err := syscall.Uname(&uts); err != nil {
		return ""
	}
	return utsnameToString(uts.Release)
}

func utsnameToString(field [65]int8) string {
	buf := make([]byte, 0, len(field))
	for _, c := range field {
		if c == 0 {
			break
		}
		buf = append(buf, byte(c))
	}
	return string(buf)
}

// productInfo reads /etc/os-release for the distribution identifier,
// version, and human-readable pretty name. Any field not present in the
// file is returned as an empty string; a missing file yields all three
// empty rather than aborting startup.
func productInfo() (productType, productVersion, prettyName string) {
	f, err := os.Open("/etc/os-release")
	if err != nil {
		return "", "", ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "ID":
			productType = value
		case "VERSION_ID":
			productVersion = value
		case "PRETTY_NAME":
			prettyName = value
		}
	}
	return productType, productVersion, prettyName
}
