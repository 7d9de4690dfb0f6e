// SPDX-License-Identifier: MIT
// Package: vectcha/distort
//
// profile.go - the difficulty -> distortion-range mapping.
//
// Design contract (strict):
//   - ProfileFor is a pure function: no RNG, no globals, no caching. The
//     same difficulty always yields the same ranges. A Profile is a value,
//     recomputed per generation call, never shared state.
//   - Every linear formula below is monotone non-decreasing in difficulty
//     and clamped at its MaxDifficulty value (the legibility ceiling), so
//     distortion can never get easier as difficulty rises, nor exceed what
//     a human can still read.
//   - Ranges are HALF-ranges where symmetric: a rotation of R means the
//     sampler draws from [-R, +R].
//
// Units: all lengths are canvas units (the canvas is ~60 units tall, see
// vectcha/render); angles are radians.
//
// Complexity: O(1) time and space.

package distort

import (
	"fmt"
	"math"
)

const methodProfileFor = "ProfileFor" // context tag for error wrapping

// Supported difficulty range and its default.
const (
	MinDifficulty     = 1
	MaxDifficulty     = 10
	DefaultDifficulty = 5
)

// Per-difficulty increments and floors. The top of each range (difficulty
// 10) doubles as the legibility ceiling.
const (
	rotationFloor = 0.04 * math.Pi  // half-range at difficulty 0 (radians)
	rotationStep  = 0.016 * math.Pi // half-range growth per difficulty step
	jitterStep    = 0.4             // positional jitter growth, units/step
	scaleStep     = 0.02            // scale half-spread growth per step
	waveStep      = 0.35            // wave amplitude growth, units/step
	waveLength    = 24.0            // wave period, units (fixed)
	strokesPerDif = 2               // decoy strokes per difficulty step
	dotsPerDif    = 3               // decoy dots per difficulty step
	colorStep     = 0.03            // HSL jitter growth per step

	// waveMinDifficulty is the first difficulty with a baseline wave;
	// below it glyphs keep a straight baseline.
	waveMinDifficulty = 3
	// splitMinDifficulty is the first difficulty at which glyph strokes are
	// randomly split into disconnected runs.
	splitMinDifficulty = 4
	// interleaveMinDifficulty is the first difficulty at which noise is
	// interleaved between glyph groups instead of strictly underneath.
	interleaveMinDifficulty = 8
)

// Profile bundles the randomization ranges for one difficulty. All fields
// are ranges or counts to sample from, never sampled values.
type Profile struct {
	Difficulty int

	Rotation float64 // rotation half-range, radians
	JitterX  float64 // horizontal jitter half-range, units
	JitterY  float64 // vertical jitter half-range, units
	ScaleMin float64 // lower scale bound (<= 1)
	ScaleMax float64 // upper scale bound (>= 1)

	WaveAmp    float64 // sinusoidal baseline amplitude, units (0 = off)
	WaveLength float64 // wave period, units

	NoiseStrokes int     // decoy line/arc count
	NoiseDots    int     // decoy dot count
	ColorJitter  float64 // HSL perturbation half-range for noise colors

	SplitStrokes bool // split glyph strokes into random runs
	Interleave   bool // interleave noise between glyph groups
}

// ProfileFor derives the distortion ranges for one difficulty. Fails with
// ErrInvalidDifficulty outside [MinDifficulty, MaxDifficulty].
func ProfileFor(difficulty int) (Profile, error) {
	if difficulty < MinDifficulty || difficulty > MaxDifficulty {
		return Profile{}, fmt.Errorf("%s: difficulty must be in [%d,%d], got %d: %w",
			methodProfileFor, MinDifficulty, MaxDifficulty, difficulty, ErrInvalidDifficulty)
	}

	d := float64(difficulty)
	p := Profile{
		Difficulty: difficulty,
		Rotation:   ceil(rotationFloor+rotationStep*d, rotationFloor+rotationStep*MaxDifficulty),
		JitterX:    ceil(jitterStep*d, jitterStep*MaxDifficulty),
		JitterY:    ceil(jitterStep*d, jitterStep*MaxDifficulty),
		ScaleMin:   1 - ceil(scaleStep*d, scaleStep*MaxDifficulty),
		ScaleMax:   1 + ceil(scaleStep*d, scaleStep*MaxDifficulty),
		WaveLength: waveLength,

		NoiseStrokes: strokesPerDif * difficulty,
		NoiseDots:    dotsPerDif * difficulty,
		ColorJitter:  ceil(colorStep*d, colorStep*MaxDifficulty),

		SplitStrokes: difficulty >= splitMinDifficulty,
		Interleave:   difficulty >= interleaveMinDifficulty,
	}
	if difficulty >= waveMinDifficulty {
		p.WaveAmp = ceil(waveStep*d, waveStep*MaxDifficulty)
	}
	return p, nil
}

// ceil clamps v at the legibility ceiling max. Defensive: difficulty is
// already validated, so the clamp only matters if a formula is retuned.
func ceil(v, max float64) float64 {
	return math.Min(v, max)
}
