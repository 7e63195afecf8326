// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package syncutil

import (
	"sync"
	"testing"
)

func TestMutexSerializesWriters(t *testing.T) {
	var mu Mutex
	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			counter++
			mu.Unlock()
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Fatalf("expected 50 increments, got %d", counter)
	}
}
