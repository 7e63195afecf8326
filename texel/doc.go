// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/doc.go
// Summary: Package overview.

// Package texel multiplexes many consoles onto one window. BackendState is
// the registry of fonts, shaders and consoles; Context is the facade an
// application draws through, always targeting the active console, while the
// backend composites every registered console. Backend callbacks enter
// through the Context's On* translator methods, which keep the per-frame
// snapshot, the input log and every console's mouse tile position current.
package texel
