// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelcon/snapshots.go
// Summary: Inspect and export stored snapshots.

package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelcon/rex"
	"github.com/framegrace/texelcon/snapshot"
)

func newSnapshotsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List, show and export saved snapshots",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List snapshots, newest first",
			Args:  cobra.NoArgs,
			RunE: func(c *cobra.Command, _ []string) error {
				return a.withSnapshots(func(s *snapshot.Store) error {
					recs, err := s.List(c.Context())
					if err != nil {
						return err
					}
					return writeList(c.OutOrStdout(), recs)
				})
			},
		},
		&cobra.Command{
			Use:   "show [id]",
			Short: "Print the glyphs of a snapshot (latest by default)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(c *cobra.Command, args []string) error {
				return a.withSnapshots(func(s *snapshot.Store) error {
					_, f, err := loadSnapshot(c.Context(), s, args)
					if err != nil {
						return err
					}
					return writeLayers(c.OutOrStdout(), f)
				})
			},
		},
		&cobra.Command{
			Use:   "export <id> <file.xp>",
			Short: "Write a snapshot as a REX Paint file",
			Args:  cobra.ExactArgs(2),
			RunE: func(c *cobra.Command, args []string) error {
				return a.withSnapshots(func(s *snapshot.Store) error {
					_, f, err := loadSnapshot(c.Context(), s, args[:1])
					if err != nil {
						return err
					}
					return rex.Save(a.fs, args[1], f)
				})
			},
		},
	)
	return cmd
}

func (a *app) withSnapshots(fn func(*snapshot.Store) error) error {
	s, err := a.openSnapshots()
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

func loadSnapshot(ctx context.Context, s *snapshot.Store, args []string) (snapshot.Record, *rex.File, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(args) == 0 || args[0] == "latest" {
		return s.Latest(ctx)
	}
	return s.Load(ctx, args[0])
}

func writeList(w io.Writer, recs []snapshot.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCREATED\tLAYERS\tSIZE")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%dx%d\n",
			r.ID, r.Title, r.CreatedAt.Local().Format(time.DateTime), r.Layers, r.Width, r.Height)
	}
	return tw.Flush()
}

// writeLayers prints each layer as text. Transparent cells print as spaces.
func writeLayers(w io.Writer, f *rex.File) error {
	for i, l := range f.Layers {
		if _, err := fmt.Fprintf(w, "-- layer %d (%dx%d)\n", i, l.Width, l.Height); err != nil {
			return err
		}
		var sb strings.Builder
		for y := 0; y < l.Height; y++ {
			sb.Reset()
			for x := 0; x < l.Width; x++ {
				c, _ := l.Get(x, y)
				if c.IsTransparent() || c.Glyph == 0 {
					sb.WriteByte(' ')
					continue
				}
				sb.WriteRune(rex.FromCP437(c.Glyph))
			}
			if _, err := fmt.Fprintln(w, strings.TrimRight(sb.String(), " ")); err != nil {
				return err
			}
		}
	}
	return nil
}
