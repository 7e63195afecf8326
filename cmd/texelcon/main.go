// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelcon/main.go
// Summary: texelcon command: demo, Lua scripts and snapshot inspection.
// Usage: texelcon demo | texelcon run game.lua | texelcon snapshots list

package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
