// SPDX-License-Identifier: MIT
// Package: vectcha/builder
//
// api.go - the fluent Builder and the generation pipeline.
//
// Design contract (strict):
//   - Setters only record fields; nothing validates or allocates until
//     Build. Build validates (length -> difficulty -> palette), then runs
//     the pipeline against the resolved immutable config.
//   - RNG policy mirrors the rest of the repo: injected and explicit for
//     reproducibility (Seed/Rand); only when neither was provided does
//     Build fall back to a wall-clock seed, the production path.
//   - Determinism: the pipeline consumes the RNG in a fixed order (answer
//     runes, then per-slot glyph transforms left to right, then noise), so
//     one seed maps to exactly one (answer, document) pair.
//
// Complexity: O(length + noise counts) per Build; both are capped, so a
// call is bounded-time by construction.

package builder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/vectcha/distort"
	"github.com/katalvlaran/vectcha/glyphset"
	"github.com/katalvlaran/vectcha/render"
)

// Builder accumulates captcha configuration. The zero value is usable and
// generates with all defaults; New is provided for fluent chains.
type Builder struct {
	length        int
	lengthSet     bool
	difficulty    int
	difficultySet bool
	colors        []string
	colorsSet     bool
	rng           *rand.Rand
}

// New returns an empty Builder.
func New() *Builder { return &Builder{} }

// Length sets the answer length (bounds-checked at Build time).
func (b *Builder) Length(n int) *Builder {
	b.length, b.lengthSet = n, true
	return b
}

// Difficulty sets the distortion difficulty (bounds-checked at Build time).
func (b *Builder) Difficulty(d int) *Builder {
	b.difficulty, b.difficultySet = d, true
	return b
}

// Colors sets the palette. Each entry must be a hex color ("#rgb" or
// "#rrggbb"); supply at least two so adjacent characters can contrast.
// The slice is copied, callers may reuse theirs.
func (b *Builder) Colors(colors []string) *Builder {
	b.colors = append([]string(nil), colors...)
	b.colorsSet = true
	return b
}

// Seed fixes the RNG seed, making Build fully reproducible.
func (b *Builder) Seed(seed int64) *Builder {
	b.rng = rand.New(rand.NewSource(seed))
	return b
}

// Rand injects an explicit RNG; nil is ignored (Seed/clock fallback wins).
func (b *Builder) Rand(rng *rand.Rand) *Builder {
	if rng != nil {
		b.rng = rng
	}
	return b
}

// Build validates the configuration and generates one (answer, document)
// pair. On validation failure it returns the first error in the documented
// order; it never returns a partially-built document.
func (b *Builder) Build() (answer, document string, err error) {
	cfg, err := b.resolve()
	if err != nil {
		return "", "", err
	}

	rng := b.rng
	if rng == nil {
		// Production path: no reproducibility requested.
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 1) Answer selection from the eligible alphabet.
	answer, err = glyphset.Answer(cfg.length, glyphset.Alphabet(), rng)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", methodBuild, err)
	}

	// 2) Distortion ranges for the validated difficulty (cannot fail here).
	prof, err := distort.ProfileFor(cfg.difficulty)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", methodBuild, err)
	}

	// 3) Per-character transform pass, left to right.
	cv := render.CanvasFor(cfg.length)
	glyphs := make([]render.PositionedGlyph, 0, cfg.length)
	prevColor := -1
	for slot, gr := range []rune(answer) {
		path, lerr := glyphset.Lookup(gr)
		if lerr != nil {
			// Unreachable with a correctly built alphabet; still surfaced,
			// because skipping would break the answer/document invariant.
			return "", "", fmt.Errorf("%s: %w", methodBuild, lerr)
		}
		pg, rerr := render.RenderGlyph(path, slot, cv, prof, cfg.palette, prevColor, rng)
		if rerr != nil {
			return "", "", fmt.Errorf("%s: %w", methodBuild, rerr)
		}
		glyphs = append(glyphs, pg)
		prevColor = pg.ColorIndex
	}

	// 4) Decoy elements.
	noise, err := render.Noise(prof, cv, cfg.palette, rng)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", methodBuild, err)
	}

	// 5) Document assembly.
	document, err = render.Assemble(cv, glyphs, noise, prof.Interleave)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", methodBuild, err)
	}
	return answer, document, nil
}
