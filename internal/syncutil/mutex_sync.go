// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/syncutil/mutex_sync.go
// Summary: Plain mutex wrappers used when deadlock detection is disabled.

//go:build !deadlock

// Package syncutil provides the mutex types guarding the console registry and
// the input state. Build with -tags deadlock to swap in a deadlock detector.
package syncutil

import "sync"

// DeadlockEnabled reports whether the deadlock detector is compiled in.
const DeadlockEnabled = false

// A Mutex is a mutual exclusion lock. It is not reentrant.
type Mutex struct {
	sync.Mutex
}

// An RWMutex is a reader/writer mutual exclusion lock.
type RWMutex struct {
	sync.RWMutex
}
