// Package vectcha generates human-solvable, machine-resistant SVG captchas:
// a random answer string rendered as deliberately distorted vector glyphs
// buried in decoy strokes and dots.
//
// 🚀 What is vectcha?
//
//	A small, deterministic-by-request library that brings together:
//		• Glyph registry: stroke-font shapes on a 5×7 grid, ambiguous pairs
//		  (O/0, I/1, B/8, S/5, Z/2, G/6) excluded from answers
//		• Distortion engine: difficulty 1..10 mapped to monotone rotation,
//		  jitter, scale, wave and noise ranges with a legibility ceiling
//		• Noise injector: decoy lines, arcs and dots that match the glyph
//		  stroke band in aggregate
//		• Assembler: one anonymous <g> per answer character, transparent
//		  background, canvas sized from the answer length alone
//
// ✨ Why choose vectcha?
//
//   - Pure vector output: no fonts, no <text>, nothing a naive extractor
//     can read the answer from
//   - Reproducible: inject a seed and get the identical (answer, SVG) pair
//   - Typed errors: branch with errors.Is on every validation failure
//   - Pure Go: no cgo, no rasterization, bounded-size documents
//
// Everything is organized under five subpackages:
//
//	geom/      - path commands, affine ops, bounds, SVG path-data emission
//	glyphset/  - the character registry, eligible alphabet, answer selection
//	distort/   - the difficulty -> distortion-range profile
//	render/    - canvas layout, glyph transforms, noise, document assembly
//	builder/   - the fluent validate-and-build entry point
//
// Quick start:
//
//	answer, svg, err := builder.New().
//		Length(4).
//		Difficulty(6).
//		Colors([]string{"#0078D6", "#aa3333", "#f08012", "#33aa00", "#aa33aa"}).
//		Build()
//
//	go get github.com/katalvlaran/vectcha
package vectcha
