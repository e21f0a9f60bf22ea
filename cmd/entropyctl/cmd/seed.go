// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/coldkeep/entropy/entropycfg"
	"github.com/coldkeep/entropy/filter"
	"github.com/coldkeep/entropy/rng"
)

// ensureSeeded runs the filter's startup entropy seeding against the
// process-wide generator if it has not already been seeded. draw and uint
// are one-shot commands with no GUI event stream to harvest, so they borrow
// the same startup blob a real filter would gather on construction.
func ensureSeeded() error {
	r := rng.Instance()
	if r.State() != rng.Uninitialized {
		return nil
	}
	if _, err := filter.NewFilter(r, entropycfg.Default(), nil); err != nil {
		return fmt.Errorf("seed generator: %w", err)
	}
	return nil
}
