// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config store.

package config

import "github.com/rs/zerolog/log"

func (s *Store) loadSystemLocked() error {
	cfg, exists, readErr := s.readConfig()
	if readErr != nil {
		log.Warn().Err(readErr).Str("path", s.path).Msg("config: failed to read")
		cfg = make(Config)
	}

	switch {
	case !exists || (readErr == nil && len(cfg) == 0):
		cfg = defaultSystemConfig()
		if err := s.writeConfig(cfg); err != nil {
			log.Warn().Err(err).Str("path", s.path).Msg("config: failed to write defaults")
			if readErr == nil {
				readErr = err
			}
		} else {
			log.Info().Str("path", s.path).Msg("config: wrote defaults")
		}
	default:
		applySystemDefaults(cfg)
	}

	s.system = cfg
	if readErr == nil && exists {
		log.Debug().Str("path", s.path).Msg("config: loaded")
	}
	return readErr
}
