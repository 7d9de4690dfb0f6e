// Package builder is the configuration surface of vectcha: a fluent
// builder that validates length, difficulty and color palette, then runs
// the generation pipeline (select answer -> derive distortion profile ->
// transform glyphs -> inject noise -> assemble document) and returns the
// (answer, SVG document) pair.
//
// Usage:
//
//	answer, svg, err := builder.New().
//		Length(4).
//		Difficulty(6).
//		Colors([]string{"#0078D6", "#aa3333", "#f08012", "#33aa00", "#aa33aa"}).
//		Build()
//
// The package offers the following key components:
//
//   - Builder:  pure sequential field-setting plus a final validate-and-
//     build step; setters never fail, Build reports the first validation
//     error in the documented order (length, then difficulty, then palette).
//   - Seed / Rand: explicit RNG injection for reproducible output; without
//     either, Build seeds from the wall clock.
//
// Guarantees:
//
//   - Deterministic defaults: omitted options fall back to DefaultLength,
//     distort.DefaultDifficulty and DefaultPalette.
//   - Fail fast: every configuration error is detected before any
//     generation work; no partially-built document is ever returned.
//   - A Builder holds no shared state; concurrent Build calls on separate
//     Builders (with separate RNGs) are safe.
package builder
