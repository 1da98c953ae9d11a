// Ramptone - Perceptual colour ramps and semantic design tokens
//
// Ramptone builds a tonal ramp from a single base colour and assigns
// semantic UI roles to the stops that meet WCAG contrast targets.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/ramptone/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
