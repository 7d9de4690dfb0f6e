// Package render turns an answer string into a self-contained SVG document:
// it lays out a canvas sized from the answer length, places each glyph into
// its horizontal slot with sampled rotation/scale/jitter/wave distortion,
// scatters decoy strokes and dots across the canvas, and assembles
// everything into bounded vector markup.
//
// The package offers the following key components:
//
//   - Canvas / CanvasFor:  deterministic layout derived from length only.
//   - RenderGlyph:         one glyph -> one PositionedGlyph (clamped to the
//     canvas, palette color with adjacent-slot distinctness).
//   - Noise:               decoy NoiseElements sized from a distort.Profile.
//   - Assemble:            the final SVG string; noise is drawn under the
//     glyphs unless the profile requests interleaving.
//
// Guarantees:
//
//   - The document never names answer characters: glyph groups are ordered,
//     anonymous path elements, so naive text extraction learns nothing.
//   - Identical inputs and RNG state reproduce the identical document.
//   - Every positioned glyph's bounding box lies inside the canvas; the
//     assembler re-checks this and fails with ErrDocumentAssembly on breach.
package render
