// Copyright 2013 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Command entropyctl exercises and inspects the entropy subsystem outside
// of a running GUI: feeding it synthetic input events, drawing random
// bytes, and histogramming bounded-integer draws.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/coldkeep/entropy/cmd/entropyctl/cmd"
)

func main() {
	_ = godotenv.Load()

	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
