// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// encodingFlag is a pflag.Value restricting a flag to a fixed set of
// output encodings.
type encodingFlag struct {
	allowed []string
	value   string
}

func newEncodingFlag(allowed []string, def string) *encodingFlag {
	return &encodingFlag{allowed: allowed, value: def}
}

func (e *encodingFlag) String() string { return e.value }

func (e *encodingFlag) Set(v string) error {
	for _, a := range e.allowed {
		if v == a {
			e.value = v
			return nil
		}
	}
	return fmt.Errorf("%q is not one of: %s", v, strings.Join(e.allowed, ", "))
}

func (e *encodingFlag) Type() string { return "string" }

var _ pflag.Value = (*encodingFlag)(nil)
