// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package filter

import (
	"os"
	"runtime"
	"strings"
	"time"
	"unsafe"
)

// buildStartupBlob assembles the one-time startup entropy blob in a fixed
// order: PID, wall-clock ms, a stack address, executable mtime, constructor
// elapsed-ns, and a UTF-8 metadata tail. constructorStart is the time
// NewFilter began running; it is passed in so the elapsed-ns component
// reflects real scheduling jitter across the whole constructor, not just
// this function.
func buildStartupBlob(constructorStart time.Time) []byte {
	var blob []byte

	blob = appendInt64LE(blob, int64(os.Getpid()))
	blob = appendInt64LE(blob, time.Now().UnixMilli())

	var stackVar byte
	blob = appendUintptrLE(blob, stackAddress(&stackVar))

	blob = appendInt64LE(blob, executableModTimeUnixNano())

	elapsed := time.Since(constructorStart).Nanoseconds()
	blob = appendInt64LE(blob, elapsed)

	blob = append(blob, []byte(hostMetadata())...)

	return blob
}

// stackAddress returns the address of a stack-local variable, exposing
// whatever ASLR bits the platform provides. Declared noinline so the
// compiler cannot fold it away and hand back a constant.
//
//go:noinline
func stackAddress(v *byte) uintptr {
	return uintptr(unsafe.Pointer(v))
}

// executableModTimeUnixNano returns the last-modified time of the running
// executable, or 0 if it cannot be determined. Absence of this field must
// not abort startup.
func executableModTimeUnixNano() int64 {
	path, err := os.Executable()
	if err != nil {
		return 0
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().UnixNano()
}

// hostMetadata concatenates application identity, build and runtime
// architecture, host and kernel identity, and the OS distribution's product
// fields into one metadata tail. Any field that cannot be determined on
// this platform contributes an empty string rather than aborting startup.
func hostMetadata() string {
	hostname, _ := os.Hostname()
	execPath, _ := os.Executable()
	productType, productVersion, prettyName := productInfo()

	return strings.Join([]string{
		appVersion,
		execPath,
		organizationDomain,
		organizationName,
		runtime.GOARCH,
		buildCPUArchitecture,
		hostname,
		buildABI,
		runtime.GOOS,
		kernelVersion(),
		productType,
		productVersion,
		prettyName,
		machineID(),
	}, "|")
}

// appVersion, organizationDomain, organizationName, buildCPUArchitecture,
// and buildABI are contributed to the startup blob as variables rather than
// constants, so a consumer binary can set them via -ldflags at build time.
// buildCPUArchitecture defaults to runtime.GOARCH (Go has no cross-arch fat
// binaries, so the running and building architectures coincide unless a
// packager overrides this); buildABI defaults to the toolchain version,
// the closest Go analogue to a C-style ABI tag.
var (
	appVersion           = "dev"
	organizationDomain   = ""
	organizationName     = ""
	buildCPUArchitecture = runtime.GOARCH
	buildABI             = runtime.Version()
)
