// SPDX-License-Identifier: MIT
// Package: vectcha/builder
//
// config.go - validated configuration and deterministic defaults.
//
// Design:
//   - buildConfig is the immutable input the pipeline runs on; it exists
//     only after validation succeeds, so downstream code never re-checks.
//   - Validation order is part of the public contract: length before
//     difficulty before palette, first failure wins.
//   - Defaults apply per-field when the corresponding setter was never
//     called; an explicit out-of-range value is an error, not a fallback.

package builder

import (
	"fmt"

	"github.com/katalvlaran/vectcha/distort"
	"github.com/katalvlaran/vectcha/glyphset"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const methodBuild = "Build" // context tag for error wrapping

// DefaultLength is the answer length used when Length was never called.
const DefaultLength = 4

// DefaultPalette is the built-in palette used when Colors was never
// called. Mid-saturation hues that stay readable on light and dark
// backgrounds (the document itself is transparent).
var DefaultPalette = []string{"#0078D6", "#aa3333", "#f08012", "#33aa00", "#aa33aa"}

// buildConfig is the fully validated, immutable pipeline input.
type buildConfig struct {
	length     int
	difficulty int
	palette    []colorful.Color
}

// resolve applies defaults to unset fields and validates the rest in the
// documented order. It returns the first violation it finds.
func (b *Builder) resolve() (buildConfig, error) {
	cfg := buildConfig{length: DefaultLength, difficulty: distort.DefaultDifficulty}

	// 1) Length: default when unset, bounds-checked when set.
	if b.lengthSet {
		if b.length < glyphset.MinLength || b.length > glyphset.MaxLength {
			return buildConfig{}, fmt.Errorf("%s: length must be in [%d,%d], got %d: %w",
				methodBuild, glyphset.MinLength, glyphset.MaxLength, b.length, glyphset.ErrInvalidLength)
		}
		cfg.length = b.length
	}

	// 2) Difficulty: delegate the range check to the engine that owns it.
	if b.difficultySet {
		if _, err := distort.ProfileFor(b.difficulty); err != nil {
			return buildConfig{}, fmt.Errorf("%s: %w", methodBuild, err)
		}
		cfg.difficulty = b.difficulty
	}

	// 3) Palette: non-empty, every entry a syntactically valid hex color.
	colors := b.colors
	if !b.colorsSet {
		colors = DefaultPalette
	}
	if len(colors) == 0 {
		return buildConfig{}, fmt.Errorf("%s: %w", methodBuild, ErrEmptyPalette)
	}
	cfg.palette = make([]colorful.Color, len(colors))
	for i, raw := range colors {
		col, err := colorful.Hex(raw)
		if err != nil {
			return buildConfig{}, fmt.Errorf("%s: color %d %q: %w", methodBuild, i, raw, ErrInvalidColor)
		}
		cfg.palette[i] = col
	}
	return cfg, nil
}
