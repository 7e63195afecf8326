// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "texelcon.log")
	closer, err := Setup(Options{Level: "info", File: path})
	require.NoError(t, err)

	log.Info().Msg("hello from test")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
