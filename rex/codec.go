// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: rex/codec.go
// Summary: Binary encoding of .xp files (gzip + little-endian records).

package rex

import (
	"bufio"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/framegrace/texelcon/palette"
)

const (
	cellSize = 10 // uint32 glyph + 3 fg + 3 bg
	// maxLayerCells bounds a single layer so a corrupt header cannot force a
	// huge allocation.
	maxLayerCells = 1 << 24
	maxLayers     = 1 << 10
)

var (
	ErrInvalidHeader = errors.New("rex: invalid header")
	ErrTruncated     = errors.New("rex: truncated file")
	ErrLayerSize     = errors.New("rex: invalid layer size")
)

// Write gzip-compresses f onto w.
func Write(w io.Writer, f *File) error {
	zw := gzip.NewWriter(w)
	bw := bufio.NewWriter(zw)

	version := f.Version
	if version == 0 {
		version = Version
	}
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(version))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(len(f.Layers)))
	if _, err := bw.Write(hdr[:]); err != nil {
		return err
	}

	var rec [cellSize]byte
	for _, l := range f.Layers {
		binary.LittleEndian.PutUint32(hdr[0:], uint32(l.Width))
		binary.LittleEndian.PutUint32(hdr[4:], uint32(l.Height))
		if _, err := bw.Write(hdr[:]); err != nil {
			return err
		}
		for _, c := range l.Cells {
			binary.LittleEndian.PutUint32(rec[0:], c.Glyph)
			rec[4], rec[5], rec[6] = c.Fg.R, c.Fg.G, c.Fg.B
			rec[7], rec[8], rec[9] = c.Bg.R, c.Bg.G, c.Bg.B
			if _, err := bw.Write(rec[:]); err != nil {
				return err
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return zw.Close()
}

// Read decodes a gzip-compressed .xp stream.
func Read(r io.Reader) (*File, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	defer zr.Close()
	br := bufio.NewReader(zr)

	var hdr [8]byte
	if _, err := io.ReadFull(br, hdr[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	f := &File{Version: int32(binary.LittleEndian.Uint32(hdr[0:]))}
	count := int32(binary.LittleEndian.Uint32(hdr[4:]))
	if count < 0 || count > maxLayers {
		return nil, fmt.Errorf("%w: %d layers", ErrInvalidHeader, count)
	}

	var rec [cellSize]byte
	for i := int32(0); i < count; i++ {
		if _, err := io.ReadFull(br, hdr[:]); err != nil {
			return nil, fmt.Errorf("%w: layer %d header: %v", ErrTruncated, i, err)
		}
		w := int32(binary.LittleEndian.Uint32(hdr[0:]))
		h := int32(binary.LittleEndian.Uint32(hdr[4:]))
		if w < 0 || h < 0 || int64(w)*int64(h) > maxLayerCells {
			return nil, fmt.Errorf("%w: %dx%d", ErrLayerSize, w, h)
		}
		l := &Layer{Width: int(w), Height: int(h), Cells: make([]Cell, int(w)*int(h))}
		for j := range l.Cells {
			if _, err := io.ReadFull(br, rec[:]); err != nil {
				return nil, fmt.Errorf("%w: layer %d cell %d: %v", ErrTruncated, i, j, err)
			}
			l.Cells[j] = Cell{
				Glyph: binary.LittleEndian.Uint32(rec[0:]),
				Fg:    palette.RGB{R: rec[4], G: rec[5], B: rec[6]},
				Bg:    palette.RGB{R: rec[7], G: rec[8], B: rec[9]},
			}
		}
		f.Layers = append(f.Layers, l)
	}
	return f, nil
}

// Load reads an .xp file from fsys.
func Load(fsys afero.Fs, path string) (*File, error) {
	fh, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	f, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return f, nil
}

// Save writes f to path on fsys, replacing any existing file.
func Save(fsys afero.Fs, path string, f *File) error {
	fh, err := fsys.Create(path)
	if err != nil {
		return err
	}
	if err := Write(fh, f); err != nil {
		fh.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return fh.Close()
}
