// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodingFlagAcceptsAllowedValues(t *testing.T) {
	f := newEncodingFlag([]string{"hex", "base64"}, "hex")
	assert.Equal(t, "hex", f.String())

	assert.NoError(t, f.Set("base64"))
	assert.Equal(t, "base64", f.String())
}

func TestEncodingFlagRejectsUnknownValue(t *testing.T) {
	f := newEncodingFlag([]string{"hex", "base64"}, "hex")
	err := f.Set("rot13")
	assert.Error(t, err)
	assert.Equal(t, "hex", f.String(), "a rejected Set must not change the current value")
}
