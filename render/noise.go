// SPDX-License-Identifier: MIT
// Package: vectcha/render
//
// noise.go - decoy element generation.
//
// Contract:
//   - Element counts come straight from the profile (NoiseStrokes strokes
//     followed by NoiseDots dots, in that sampling order).
//   - Every element's position, shape, width and color is sampled
//     independently. Stroke widths are drawn from a band around the glyph
//     pen width and colors are jittered palette colors, so no single
//     deterministic marker separates noise from answer strokes; only
//     aggregate statistics differ.
//   - All ink stays inside the canvas draw region.
//
// Complexity: O(NoiseStrokes + NoiseDots) per call.

package render

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/vectcha/distort"
	"github.com/katalvlaran/vectcha/geom"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const methodNoise = "Noise" // context tag for error wrapping

// Noise sampling bands.
const (
	// arcProbability is the chance a decoy stroke curves instead of
	// running straight.
	arcProbability = 0.5
	// arcBendScale bounds the perpendicular control-point offset relative
	// to the chord length.
	arcBendScale = 0.4
	// noiseWidthMin/Max scale GlyphStrokeWidth into the decoy width band.
	noiseWidthMin = 0.7
	noiseWidthMax = 1.3
	// dotRadiusMin/Max bound decoy dot radii, canvas units.
	dotRadiusMin = 0.8
	dotRadiusMax = 2.2
)

// NoiseKind discriminates decoy element shapes.
type NoiseKind uint8

const (
	// NoiseStroke is a straight or curved decoy line.
	NoiseStroke NoiseKind = iota
	// NoiseDot is a small filled circle.
	NoiseDot
)

// NoiseElement is one decoy shape with its own transform and color,
// structurally independent of any glyph. Same lifecycle as
// PositionedGlyph: built per call, discarded after assembly.
type NoiseElement struct {
	Kind        NoiseKind
	Path        geom.Path // NoiseStroke only
	StrokeWidth float64   // NoiseStroke only
	CX, CY, R   float64   // NoiseDot only
	Color       colorful.Color
}

// Noise scatters profile-many decoy strokes and dots across the canvas.
// Element order (all strokes, then all dots) is part of the deterministic
// sampling contract; the assembler decides draw order separately.
func Noise(prof distort.Profile, cv Canvas, palette []colorful.Color, rng *rand.Rand) ([]NoiseElement, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNoise, ErrNoPalette)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodNoise, ErrNeedRandSource)
	}

	region := cv.drawBounds()
	out := make([]NoiseElement, 0, prof.NoiseStrokes+prof.NoiseDots)

	for i := 0; i < prof.NoiseStrokes; i++ {
		out = append(out, noiseStroke(prof, cv, region, palette, rng))
	}
	for i := 0; i < prof.NoiseDots; i++ {
		out = append(out, noiseDot(prof, region, palette, rng))
	}
	return out, nil
}

// noiseStroke samples one decoy line or arc. The reach of a stroke is
// bounded by the canvas height, matching the span of a distorted glyph.
func noiseStroke(prof distort.Profile, cv Canvas, region geom.Rect, palette []colorful.Color, rng *rand.Rand) NoiseElement {
	x0 := region.MinX + rng.Float64()*region.Width()
	y0 := region.MinY + rng.Float64()*region.Height()
	x1 := clampTo(x0+span(rng)*cv.Height, region.MinX, region.MaxX)
	y1 := clampTo(y0+span(rng)*cv.Height, region.MinY, region.MaxY)

	var p geom.Path
	if rng.Float64() < arcProbability {
		// Bend the chord with a perpendicular control-point offset.
		bend := span(rng) * arcBendScale
		cx := clampTo((x0+x1)/2-(y1-y0)*bend, region.MinX, region.MaxX)
		cy := clampTo((y0+y1)/2+(x1-x0)*bend, region.MinY, region.MaxY)
		p = geom.NewPath(geom.MoveTo(x0, y0), geom.QuadTo(cx, cy, x1, y1))
	} else {
		p = geom.NewPath(geom.MoveTo(x0, y0), geom.LineTo(x1, y1))
	}

	width := GlyphStrokeWidth * (noiseWidthMin + rng.Float64()*(noiseWidthMax-noiseWidthMin))
	col := jitterColor(palette[rng.Intn(len(palette))], prof.ColorJitter, rng)
	return NoiseElement{Kind: NoiseStroke, Path: p, StrokeWidth: width, Color: col}
}

// noiseDot samples one decoy dot fully inside the draw region.
func noiseDot(prof distort.Profile, region geom.Rect, palette []colorful.Color, rng *rand.Rand) NoiseElement {
	rad := dotRadiusMin + rng.Float64()*(dotRadiusMax-dotRadiusMin)
	inner := region.Inset(rad)
	cx := inner.MinX + rng.Float64()*inner.Width()
	cy := inner.MinY + rng.Float64()*inner.Height()
	col := jitterColor(palette[rng.Intn(len(palette))], prof.ColorJitter, rng)
	return NoiseElement{Kind: NoiseDot, CX: cx, CY: cy, R: rad, Color: col}
}

func clampTo(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
