// SPDX-License-Identifier: MIT
// Package: vectcha/render
//
// document.go - final SVG assembly.
//
// Contract:
//   - Exactly one <g> group per positioned glyph, emitted in slot order
//     (answer order). Groups carry no character-identifying attributes;
//     only their order ties them to the answer.
//   - Draw order: all noise first, then the glyph groups, so decoys never
//     occlude answer strokes. With interleave=true, noise elements are
//     spread between the groups instead (difficulty-requested occlusion).
//   - The view region is width x height from the Canvas, so document
//     dimensions are a function of answer length only.
//   - The answer never appears as literal text: output is pure vector
//     paths, no <text> elements, no glyph references.
//
// Complexity: O(total command count) time and output size.

package render

import (
	"fmt"
	"strconv"
	"strings"
)

const methodAssemble = "Assemble" // context tag for error wrapping

// svgOpen is the document preamble; the four %s slots are width, height and
// the viewBox extents. Background stays transparent, as the palette is
// chosen by the caller against their own page background.
const svgOpen = `<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg" version="1.1">`

// attr renders a float attribute with fixed two-decimal precision.
func attr(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// dim renders a canvas dimension (integral by construction) compactly.
func dim(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Assemble composes glyph groups and noise elements into one bounded SVG
// document string. Fails with ErrDocumentAssembly only on internal
// invariant breaches: a glyph count that does not match the canvas slots,
// out-of-order slots, or a glyph outside canvas bounds after clamping.
func Assemble(cv Canvas, glyphs []PositionedGlyph, noise []NoiseElement, interleave bool) (string, error) {
	if len(glyphs) != cv.Slots {
		return "", fmt.Errorf("%s: %d glyphs for %d slots: %w",
			methodAssemble, len(glyphs), cv.Slots, ErrDocumentAssembly)
	}
	bounds := cv.Bounds()
	for i, g := range glyphs {
		if g.Slot != i {
			return "", fmt.Errorf("%s: glyph %d carries slot %d: %w",
				methodAssemble, i, g.Slot, ErrDocumentAssembly)
		}
		if !bounds.ContainsRect(g.Path.Bounds()) {
			return "", fmt.Errorf("%s: glyph %d escapes canvas bounds: %w",
				methodAssemble, i, ErrDocumentAssembly)
		}
	}

	// Partition noise across glyph groups: everything up front by default,
	// round-robin between groups when interleaving is requested. The
	// partition is a pure function of the inputs (no RNG here).
	before := make([][]NoiseElement, len(glyphs)+1)
	for i, n := range noise {
		bucket := 0
		if interleave && len(glyphs) > 0 {
			bucket = i % len(glyphs)
		}
		before[bucket] = append(before[bucket], n)
	}

	var sb strings.Builder
	w, h := dim(cv.Width), dim(cv.Height)
	sb.WriteString(fmt.Sprintf(svgOpen, w, h, w, h))
	for i, g := range glyphs {
		for _, n := range before[i] {
			writeNoise(&sb, n)
		}
		writeGlyph(&sb, g)
	}
	for _, n := range before[len(glyphs)] {
		writeNoise(&sb, n)
	}
	sb.WriteString("</svg>")
	return sb.String(), nil
}

// writeGlyph emits one anonymous glyph group.
func writeGlyph(sb *strings.Builder, g PositionedGlyph) {
	sb.WriteString(`<g><path d="`)
	sb.WriteString(g.Path.D())
	sb.WriteString(`" fill="none" stroke="`)
	sb.WriteString(g.Color.Hex())
	sb.WriteString(`" stroke-width="`)
	sb.WriteString(attr(GlyphStrokeWidth))
	sb.WriteString(`" stroke-linecap="round" stroke-linejoin="round"/></g>`)
}

// writeNoise emits one decoy element.
func writeNoise(sb *strings.Builder, n NoiseElement) {
	switch n.Kind {
	case NoiseStroke:
		sb.WriteString(`<path d="`)
		sb.WriteString(n.Path.D())
		sb.WriteString(`" fill="none" stroke="`)
		sb.WriteString(n.Color.Hex())
		sb.WriteString(`" stroke-width="`)
		sb.WriteString(attr(n.StrokeWidth))
		sb.WriteString(`" stroke-linecap="round"/>`)
	case NoiseDot:
		sb.WriteString(`<circle cx="`)
		sb.WriteString(attr(n.CX))
		sb.WriteString(`" cy="`)
		sb.WriteString(attr(n.CY))
		sb.WriteString(`" r="`)
		sb.WriteString(attr(n.R))
		sb.WriteString(`" fill="`)
		sb.WriteString(n.Color.Hex())
		sb.WriteString(`"/>`)
	}
}
