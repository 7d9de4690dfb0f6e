// SPDX-License-Identifier: MIT
// Package: vectcha/glyphset
//
// glyphset.go - registry access: Lookup and the eligible Alphabet.
//
// Contract:
//   - The registry is frozen at package init. Concurrent Lookup/Alphabet
//     calls are safe without locks because nothing writes afterwards.
//   - Lookup returns a defensive copy so callers can feed the path through
//     value-returning transforms without ever touching shared state.
//   - Alphabet order is sorted by rune, fixed for the process lifetime, and
//     identical across processes (no map-iteration order leaks).
//
// Complexity:
//   - init: O(G log G) over G registered glyphs (sorting the alphabet).
//   - Lookup: O(1) map access + O(n) path copy (n = command count, tiny).

package glyphset

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/vectcha/geom"
)

const methodLookup = "Lookup" // context tag for error wrapping

// glyphPaths maps every registered rune to its assembled unit-box path.
// Built once in init from the data-only specs; read-only afterwards.
var glyphPaths map[rune]geom.Path

// eligible is the sorted eligible rune set backing Alphabet().
var eligible []rune

func init() {
	glyphPaths = make(map[rune]geom.Path, len(glyphSpecs))
	eligible = make([]rune, 0, len(glyphSpecs))
	for gr, spec := range glyphSpecs {
		// Concatenate the strokes into one path; each stroke opens with its
		// own OpMove, so stroke boundaries survive concatenation.
		var p geom.Path
		for _, s := range spec.strokes {
			p = p.Append(s)
		}
		glyphPaths[gr] = p
		if !spec.excluded {
			eligible = append(eligible, gr)
		}
	}
	// Sorted order makes Alphabet deterministic regardless of map order.
	sort.Slice(eligible, func(i, j int) bool { return eligible[i] < eligible[j] })
}

// Lookup resolves one rune to a copy of its normalized unit-box path.
// Returns ErrUnsupportedGlyph (wrapped with the offending rune) for runes
// outside the registry; it never silently skips, because a dropped glyph
// would break the answer/document length invariant downstream.
func Lookup(gr rune) (geom.Path, error) {
	p, ok := glyphPaths[gr]
	if !ok {
		return geom.Path{}, fmt.Errorf("%s: glyph %q: %w", methodLookup, gr, ErrUnsupportedGlyph)
	}
	return p.Clone(), nil
}

// Alphabet returns a copy of the ordered eligible rune set. The set is
// fixed at init: registered glyphs minus the visually ambiguous ones.
func Alphabet() []rune {
	out := make([]rune, len(eligible))
	copy(out, eligible)
	return out
}

// Supported reports whether the rune is registered (eligible or not).
func Supported(gr rune) bool {
	_, ok := glyphPaths[gr]
	return ok
}
