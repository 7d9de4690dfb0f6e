// SPDX-License-Identifier: MIT
// Package: vectcha/builder
//
// errors.go - sentinel errors owned by the builder package.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Length and difficulty violations reuse the sentinels of the packages
//     that own those contracts (glyphset.ErrInvalidLength,
//     distort.ErrInvalidDifficulty); the builder wraps, never redefines.
//   - Sentinels never carry formatted parameters; context is attached at
//     the call site via %w wrapping.

package builder

import "errors"

// ErrEmptyPalette indicates Build ran with zero colors after defaulting,
// i.e. Colors was called with an explicit empty slice.
// Usage: if errors.Is(err, ErrEmptyPalette) { ... }.
var ErrEmptyPalette = errors.New("builder: empty color palette")

// ErrInvalidColor indicates a palette entry failed hex color parsing.
// Policy: format validation only; perceptual distinctness of the palette
// is the caller's choice.
var ErrInvalidColor = errors.New("builder: invalid color value")
