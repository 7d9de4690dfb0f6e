// Package glyphset holds the static character-to-path registry behind
// vectcha answers: which characters can appear in a captcha, what vector
// shape each one draws, and how a random answer string is selected.
//
// The package offers the following key components:
//
//   - Lookup:    resolve one rune to its normalized unit-box path.
//   - Alphabet:  the ordered eligible character set (ambiguous glyphs
//     such as O/0 and I/1 are registered but never eligible).
//   - Answer:    draw a uniformly random answer string from an alphabet
//     using an injected RNG (reproducible under a fixed seed).
//
// Guarantees:
//
//   - The registry is data-only (spec.go), built once at package init and
//     never written afterwards; concurrent reads need no locking.
//   - No two eligible characters share an identical normalized path, so an
//     answer is never visually ambiguous at the shape level.
//   - Determinism: Answer depends only on (length, alphabet, rng state).
package glyphset
