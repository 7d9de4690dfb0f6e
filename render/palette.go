// SPDX-License-Identifier: MIT
// Package: vectcha/render
//
// palette.go - palette indexing and HSL color jitter.
//
// Contract:
//   - pickColor guarantees adjacent-slot distinctness: with two or more
//     palette entries the returned index never equals prev, so neighboring
//     answer characters always contrast.
//   - jitterColor perturbs hue/saturation/lightness inside the profile's
//     ColorJitter half-range, keeping noise colors in the palette's family
//     without being byte-identical to any glyph color.

package render

import (
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// hueJitterScale converts the unitless ColorJitter half-range into degrees
// of hue rotation. 120 keeps even the maximum jitter inside one hue family.
const hueJitterScale = 120.0

// pickColor draws a palette index uniformly, excluding prev when the
// palette has at least two entries. prev < 0 means "no previous slot".
func pickColor(n, prev int, rng *rand.Rand) int {
	if n == 1 {
		return 0
	}
	if prev < 0 || prev >= n {
		return rng.Intn(n)
	}
	// Draw from the n-1 remaining entries, then skip over prev.
	idx := rng.Intn(n - 1)
	if idx >= prev {
		idx++
	}
	return idx
}

// jitterColor perturbs col in HSL space by at most amount (half-range).
// amount 0 returns the color unchanged.
func jitterColor(col colorful.Color, amount float64, rng *rand.Rand) colorful.Color {
	if amount == 0 {
		return col
	}
	h, s, l := col.Hsl()
	h = math.Mod(h+span(rng)*amount*hueJitterScale+360, 360)
	s = clamp01(s + span(rng)*amount)
	l = clamp01(l + span(rng)*amount)
	return colorful.Hsl(h, s, l).Clamped()
}

// span draws a uniform value in [-1, +1).
func span(rng *rand.Rand) float64 { return rng.Float64()*2 - 1 }

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
