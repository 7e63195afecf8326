// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package palette

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamedFallsBackToTcellNames(t *testing.T) {
	c, ok := Named("red")
	assert.True(t, ok)
	assert.Equal(t, RGB{255, 0, 0}, c)

	c, ok = Named("#102030")
	assert.True(t, ok)
	assert.Equal(t, RGB{0x10, 0x20, 0x30}, c)

	_, ok = Named("definitely-not-a-color")
	assert.False(t, ok)

	_, ok = Named("")
	assert.False(t, ok)
}

func TestRegisterOverridesAndIsCaseInsensitive(t *testing.T) {
	Register("Ember", RGB{200, 80, 10})
	c, ok := Named("EMBER")
	assert.True(t, ok)
	assert.Equal(t, RGB{200, 80, 10}, c)
}

func TestTcellRoundTrip(t *testing.T) {
	c := RGB{12, 34, 56}
	assert.Equal(t, c, FromTcell(c.Tcell()))
}

func TestLerpAndScale(t *testing.T) {
	assert.Equal(t, Black, Lerp(Black, White, -1))
	assert.Equal(t, White, Lerp(Black, White, 2))
	assert.Equal(t, RGB{128, 128, 128}, Lerp(Black, White, 0.5))

	assert.Equal(t, RGB{50, 100, 0}, Scale(RGB{100, 200, 0}, 0.5))
	assert.Equal(t, RGB{255, 255, 0}, Scale(RGB{200, 200, 0}, 2))
}

func TestRegistryUnderConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("shade%d", i)
			for j := 0; j < 100; j++ {
				Register(name, RGB{uint8(i), uint8(j), 0})
				if _, ok := Named(name); !ok {
					t.Errorf("%s missing after Register", name)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	c, ok := Named("shade3")
	assert.True(t, ok)
	assert.Equal(t, RGB{3, 99, 0}, c)
}
