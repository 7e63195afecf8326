// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelcon/hotkeys.go
// Summary: Global keys layered over any game state: F12 saves a snapshot.

package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/framegrace/texelcon/input"
	"github.com/framegrace/texelcon/snapshot"
	"github.com/framegrace/texelcon/texel"
)

type hotkeys struct {
	next  texel.GameState
	store *snapshot.Store
	saved int
}

func (h *hotkeys) Tick(ctx *texel.Context) {
	if ctx.Key == input.KeyF12 && h.store != nil {
		rec, err := h.store.Save(context.Background(), ctx.Title, ctx.ToXPFile(0, 0))
		if err != nil {
			log.Error().Err(err).Msg("snapshot: save failed")
		} else {
			h.saved++
			log.Info().Str("id", rec.ID).Msg("snapshot: saved")
		}
	}
	h.next.Tick(ctx)
}
