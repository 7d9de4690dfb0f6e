// SPDX-License-Identifier: MIT
// Package: vectcha/glyphset
//
// spec.go - canonical per-glyph stroke data (data-only).
//
// Purpose:
//   - Single source of truth for glyph geometry. Every glyph is one or more
//     polyline strokes over a 5x7 grid, normalized into the unit box
//     [0,1]x[0,1] with y growing down (SVG convention).
//   - Grid stops are named constants (no magic numbers): five horizontal
//     stops l..r and seven vertical stops t..b.
//   - Registration here does NOT make a glyph eligible for answers: shapes
//     that collide visually at captcha size (O vs 0, I vs 1, B vs 8, S vs 5,
//     Z vs 2, G vs 6, Q vs O) carry excluded=true and are kept only so
//     Lookup stays total over the historical registry.
//
// Contract (for glyphset.go):
//   - spec.strokes is the canonical drawing order; do not reorder entries.
//   - Data are immutable after init; nothing in the repo writes to specs.
//   - Among non-excluded glyphs no two entries may share identical strokes
//     (verified by TestAlphabetShapesDistinct).
//
// Determinism:
//   - Pure literals; iteration order concerns are handled in glyphset.go by
//     sorting, never here.

package glyphset

import "github.com/katalvlaran/vectcha/geom"

// Horizontal grid stops (leftmost .. rightmost) in unit-box coordinates.
const (
	l  = 0.0  // leftmost
	lc = 0.25 // left-center
	c  = 0.5  // center
	rc = 0.75 // right-center
	r  = 1.0  // rightmost
)

// Vertical grid stops (topmost .. bottommost) in unit-box coordinates.
const (
	t  = 0.0     // topmost
	pt = 1.0 / 6 // pre-top
	um = 2.0 / 6 // upper-middle
	m  = 0.5     // middle
	pm = 4.0 / 6 // pre-middle
	ub = 5.0 / 6 // upper-bottom
	b  = 1.0     // bottommost
)

// glyphSpec groups the strokes of one glyph plus its eligibility flag.
type glyphSpec struct {
	strokes  []geom.Path // polylines in drawing order, unit-box coordinates
	excluded bool        // visually ambiguous; never drawn into answers
}

// stroke is a thin alias for geom.Polyline kept so the data below stays
// compact and uniform.
func stroke(coords ...float64) geom.Path { return geom.Polyline(coords...) }

// glyph wraps strokes into an eligible spec.
func glyph(strokes ...geom.Path) glyphSpec { return glyphSpec{strokes: strokes} }

// ambiguous wraps strokes into an excluded spec.
func ambiguous(strokes ...geom.Path) glyphSpec {
	return glyphSpec{strokes: strokes, excluded: true}
}

// glyphSpecs is the full registry. Shapes follow the 5x7 skeletons used for
// grid-letter fixtures; each entry shows its bitmap for review.
var glyphSpecs = map[rune]glyphSpec{
	// ===== UPPERCASE =====

	// .111.
	// 1...1
	// 1...1
	// 11111
	// 1...1
	// 1...1
	// 1...1
	'A': glyph(
		stroke(l, b, l, pt, lc, t, rc, t, r, pt, r, b),
		stroke(l, m, r, m),
	),

	// B collides with 8 at captcha size.
	// 1111.
	// 1...1
	// 1...1
	// 1111.
	// 1...1
	// 1...1
	// 1111.
	'B': ambiguous(
		stroke(l, b, l, t, rc, t, r, pt, r, um, rc, m, l, m),
		stroke(rc, m, r, pm, r, ub, rc, b, l, b),
	),

	// .111.
	// 1...1
	// 1....
	// 1....
	// 1....
	// 1...1
	// .111.
	'C': glyph(
		stroke(r, pt, rc, t, lc, t, l, pt, l, ub, lc, b, rc, b, r, ub),
	),

	// 1111.
	// 1...1
	// 1...1
	// 1...1
	// 1...1
	// 1...1
	// 1111.
	'D': glyph(
		stroke(l, b, l, t, rc, t, r, pt, r, ub, rc, b, l, b),
	),

	// 11111
	// 1....
	// 1....
	// 111..
	// 1....
	// 1....
	// 11111
	'E': glyph(
		stroke(r, t, l, t, l, b, r, b),
		stroke(l, m, c, m),
	),

	// 11111
	// 1....
	// 1....
	// 111..
	// 1....
	// 1....
	// 1....
	'F': glyph(
		stroke(r, t, l, t, l, b),
		stroke(l, m, c, m),
	),

	// G collides with 6 at captcha size.
	// .111.
	// 1...1
	// 1....
	// 1....
	// 1..11
	// 1...1
	// .111.
	'G': ambiguous(
		stroke(r, pt, rc, t, lc, t, l, pt, l, ub, lc, b, rc, b, r, ub, r, pm, rc, pm),
	),

	// 1...1
	// 1...1
	// 1...1
	// 11111
	// 1...1
	// 1...1
	// 1...1
	'H': glyph(
		stroke(l, t, l, b),
		stroke(r, t, r, b),
		stroke(l, m, r, m),
	),

	// I collides with 1 at captcha size.
	// .111.
	// ..1..
	// ..1..
	// ..1..
	// ..1..
	// ..1..
	// .111.
	'I': ambiguous(
		stroke(lc, t, rc, t),
		stroke(c, t, c, b),
		stroke(lc, b, rc, b),
	),

	// ....1
	// ....1
	// ....1
	// ....1
	// ....1
	// 1...1
	// .111.
	'J': glyph(
		stroke(r, t, r, ub, rc, b, lc, b, l, ub),
	),

	// 1...1
	// 1..1.
	// 1.1..
	// 11...
	// 1.1..
	// 1..1.
	// 1...1
	'K': glyph(
		stroke(l, t, l, b),
		stroke(r, t, l, m, r, b),
	),

	// 1....
	// 1....
	// 1....
	// 1....
	// 1....
	// 1....
	// 11111
	'L': glyph(
		stroke(l, t, l, b, r, b),
	),

	// 1...1
	// 11.11
	// 11.11
	// 1.1.1
	// 1...1
	// 1...1
	// 1...1
	'M': glyph(
		stroke(l, b, l, t, c, m, r, t, r, b),
	),

	// 1...1
	// 11..1
	// 1.1.1
	// 1.1.1
	// 1.1.1
	// 1..11
	// 1...1
	'N': glyph(
		stroke(l, b, l, t, r, b, r, t),
	),

	// O collides with 0 at captcha size.
	// .111.
	// 1...1
	// 1...1
	// 1...1
	// 1...1
	// 1...1
	// .111.
	'O': ambiguous(
		stroke(lc, t, l, pt, l, ub, lc, b, rc, b, r, ub, r, pt, rc, t, lc, t),
	),

	// 1111.
	// 1...1
	// 1...1
	// 1111.
	// 1....
	// 1....
	// 1....
	'P': glyph(
		stroke(l, b, l, t, rc, t, r, pt, r, um, rc, m, l, m),
	),

	// Q collides with O and 0 at captcha size.
	// .111.
	// 1...1
	// 1...1
	// 1...1
	// 1...1
	// 1..1.
	// .11.1
	'Q': ambiguous(
		stroke(lc, t, l, pt, l, ub, lc, b, rc, b, r, ub, r, pt, rc, t, lc, t),
		stroke(rc, ub, r, b),
	),

	// 1111.
	// 1...1
	// 1...1
	// 1111.
	// 1...1
	// 1...1
	// 1...1
	'R': glyph(
		stroke(l, b, l, t, rc, t, r, pt, r, um, rc, m, l, m),
		stroke(rc, m, r, b),
	),

	// S collides with 5 at captcha size.
	// .111.
	// 1...1
	// 1....
	// .111.
	// ....1
	// 1...1
	// .111.
	'S': ambiguous(
		stroke(r, pt, rc, t, lc, t, l, pt, l, um, lc, m, rc, m, r, pm, r, ub, rc, b, lc, b, l, ub),
	),

	// 11111
	// ..1..
	// ..1..
	// ..1..
	// ..1..
	// ..1..
	// ..1..
	'T': glyph(
		stroke(l, t, r, t),
		stroke(c, t, c, b),
	),

	// 1...1
	// 1...1
	// 1...1
	// 1...1
	// 1...1
	// 1...1
	// .111.
	'U': glyph(
		stroke(l, t, l, ub, lc, b, rc, b, r, ub, r, t),
	),

	// 1...1
	// 1...1
	// 1...1
	// 1...1
	// .1.1.
	// .1.1.
	// ..1..
	'V': glyph(
		stroke(l, t, c, b, r, t),
	),

	// 1...1
	// 1...1
	// 1...1
	// 1...1
	// 1.1.1
	// 1.1.1
	// .1.1.
	'W': glyph(
		stroke(l, t, lc, b, c, m, rc, b, r, t),
	),

	// 1...1
	// 1...1
	// .1.1.
	// ..1..
	// .1.1.
	// 1...1
	// 1...1
	'X': glyph(
		stroke(l, t, r, b),
		stroke(r, t, l, b),
	),

	// 1...1
	// 1...1
	// .1.1.
	// ..1..
	// ..1..
	// ..1..
	// ..1..
	'Y': glyph(
		stroke(l, t, c, m, r, t),
		stroke(c, m, c, b),
	),

	// Z collides with 2 at captcha size.
	// 11111
	// ....1
	// ...1.
	// ..1..
	// .1...
	// 1....
	// 11111
	'Z': ambiguous(
		stroke(l, t, r, t, l, b, r, b),
	),

	// ===== DIGITS =====

	// 0 collides with O and Q at captcha size.
	// .111.
	// 1...1
	// 1...1
	// 1.1.1
	// 1...1
	// 1...1
	// .111.
	'0': ambiguous(
		stroke(lc, t, l, pt, l, ub, lc, b, rc, b, r, ub, r, pt, rc, t, lc, t),
		stroke(lc, pm, rc, um),
	),

	// 1 collides with I at captcha size.
	// ..1..
	// .11..
	// ..1..
	// ..1..
	// ..1..
	// ..1..
	// .111.
	'1': ambiguous(
		stroke(lc, pt, c, t, c, b),
		stroke(lc, b, rc, b),
	),

	// 2 collides with Z at captcha size.
	// .111.
	// 1...1
	// ....1
	// ...1.
	// ..1..
	// .1...
	// 11111
	'2': ambiguous(
		stroke(l, pt, lc, t, rc, t, r, pt, r, um, l, b, r, b),
	),

	// .111.
	// 1...1
	// ....1
	// .111.
	// ....1
	// 1...1
	// .111.
	'3': glyph(
		stroke(l, pt, lc, t, rc, t, r, pt, r, um, rc, m, lc, m),
		stroke(rc, m, r, pm, r, ub, rc, b, lc, b, l, ub),
	),

	// ...11
	// ..1.1
	// .1..1
	// 11111
	// ....1
	// ....1
	// ....1
	'4': glyph(
		stroke(r, t, l, m, r, m),
		stroke(r, t, r, b),
	),

	// 5 collides with S at captcha size.
	// 11111
	// 1....
	// 1....
	// 1111.
	// ....1
	// ....1
	// 1111.
	'5': ambiguous(
		stroke(r, t, l, t, l, m, rc, m, r, pm, r, ub, rc, b, l, b),
	),

	// 6 collides with G at captcha size.
	// .111.
	// 1...1
	// 1....
	// 1111.
	// 1...1
	// 1...1
	// .111.
	'6': ambiguous(
		stroke(r, pt, rc, t, lc, t, l, pt, l, ub, lc, b, rc, b, r, ub, r, pm, rc, m, lc, m, l, pm),
	),

	// 11111
	// ....1
	// ...1.
	// ..1..
	// .1...
	// 1....
	// 1....
	'7': glyph(
		stroke(l, t, r, t, r, pt, l, ub, l, b),
	),

	// 8 collides with B at captcha size.
	// .111.
	// 1...1
	// 1...1
	// .111.
	// 1...1
	// 1...1
	// .111.
	'8': ambiguous(
		stroke(lc, m, l, um, l, pt, lc, t, rc, t, r, pt, r, um, rc, m, lc, m),
		stroke(lc, m, l, pm, l, ub, lc, b, rc, b, r, ub, r, pm, rc, m),
	),

	// .111.
	// 1...1
	// 1...1
	// .1111
	// ....1
	// ....1
	// ..1..
	'9': glyph(
		stroke(r, um, r, pt, rc, t, lc, t, l, pt, l, um, lc, m, rc, m, r, um, r, ub, rc, b),
	),
}
