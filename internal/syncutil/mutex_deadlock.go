// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/syncutil/mutex_deadlock.go
// Summary: Deadlock-detecting mutex wrappers enabled with -tags deadlock.

//go:build deadlock

// Package syncutil provides the mutex types guarding the console registry and
// the input state. Build with -tags deadlock to swap in a deadlock detector.
package syncutil

import (
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

// DeadlockEnabled reports whether the deadlock detector is compiled in.
const DeadlockEnabled = true

func init() {
	deadlock.Opts.DeadlockTimeout = 10 * time.Second
}

// A Mutex is a mutual exclusion lock. Reentrant acquisition is reported by the
// detector as a recursive locking violation.
type Mutex struct {
	deadlock.Mutex
}

// An RWMutex is a reader/writer mutual exclusion lock.
type RWMutex struct {
	deadlock.RWMutex
}
