// SPDX-License-Identifier: MIT
// Package: vectcha/glyphset
//
// errors.go - sentinel errors for the glyphset package.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is(err, ErrX).
//   - Implementations attach method context via fmt.Errorf("...: %w", ErrX);
//     sentinels themselves never carry formatted parameters.
//   - No panics at runtime: every misuse is reported as a typed error.

package glyphset

import "errors"

// ErrUnsupportedGlyph indicates a Lookup for a rune outside the registry.
// The selector only draws from Alphabet(), so seeing this error from the
// pipeline means a corrupted answer string, never bad user input.
// Usage: if errors.Is(err, ErrUnsupportedGlyph) { ... }.
var ErrUnsupportedGlyph = errors.New("glyphset: unsupported glyph")

// ErrInvalidLength indicates a requested answer length outside
// [MinLength, MaxLength]. The upper bound exists to bound canvas size.
var ErrInvalidLength = errors.New("glyphset: answer length out of range")

// ErrEmptyAlphabet indicates an empty eligible set was passed to Answer.
// Unreachable through the builder, which always supplies Alphabet().
var ErrEmptyAlphabet = errors.New("glyphset: empty alphabet")

// ErrNeedRandSource indicates Answer was called with a nil *rand.Rand.
// Randomness is an explicit dependency; there is no hidden global fallback.
var ErrNeedRandSource = errors.New("glyphset: rng is required")
