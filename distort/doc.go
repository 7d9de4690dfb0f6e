// Package distort maps an ordinal difficulty knob to the randomization
// ranges the rendering pipeline samples from: rotation, jitter, scale, wave
// amplitude, noise volume and color variance.
//
// The package offers the following key components:
//
//   - Profile:    the immutable bundle of ranges for one difficulty.
//   - ProfileFor: the pure difficulty -> Profile mapping.
//
// Guarantees:
//
//   - Purity: ProfileFor(d) always yields the same Profile for the same d;
//     it returns ranges, never sampled values - sampling happens downstream.
//   - Monotonicity: rotation range, wave amplitude and noise counts never
//     decrease as difficulty rises (TestProfileMonotonic pins this).
//   - Legibility ceiling: every range is clamped at its MaxDifficulty value,
//     so no difficulty can push distortion past human readability.
package distort
