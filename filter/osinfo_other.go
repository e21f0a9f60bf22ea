// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build !linux

package filter

// kernelVersion and productInfo have no portable implementation outside
// linux's uname(2)/os-release; callers must tolerate empty results.
func kernelVersion() string {
	return ""
}

func productInfo() (productType, productVersion, prettyName string) {
	return "", "", ""
}
