// SPDX-License-Identifier: MIT
// Package: vectcha/render
//
// glyph.go - the per-character transform pass.
//
// Contract:
//   - RenderGlyph never mutates the source path; it returns a fresh
//     PositionedGlyph owned by the caller.
//   - Sampling order is fixed (rotation, scaleX, scaleY, jitterX, jitterY,
//     wave amplitude, wave phase, color, split breaks) so a seeded RNG
//     reproduces the identical glyph. Reordering the draws is a breaking
//     change for determinism tests.
//   - The transformed bounding box is clamped into the canvas draw region
//     (sampled-then-shifted, not sampled-then-allowed-to-overflow).
//
// Complexity: O(n) in the glyph command count per call.

package render

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/vectcha/distort"
	"github.com/katalvlaran/vectcha/geom"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const methodRenderGlyph = "RenderGlyph" // context tag for error wrapping

// waveSegmentLen is the maximum straight-segment length (canvas units)
// before the wave pass; shorter segments bend smoothly instead of hinging.
const waveSegmentLen = 4.0

// splitRunMin/splitRunMax bound the random run length (in segments) between
// stroke breaks when a profile asks for split strokes.
const (
	splitRunMin = 2
	splitRunMax = 4
)

// PositionedGlyph is one answer character after its random transform: a
// canvas-space path plus the assigned palette color. Discarded after the
// document is assembled.
type PositionedGlyph struct {
	Slot       int
	Path       geom.Path
	ColorIndex int
	Color      colorful.Color
}

// RenderGlyph places one unit-box glyph into its slot, applying sampled
// rotation, scale, jitter and (when the profile carries one) a sinusoidal
// baseline wave, then clamps the result into the canvas and assigns a
// palette color distinct from prevColor (pass prevColor < 0 for slot 0).
func RenderGlyph(glyph geom.Path, slot int, cv Canvas, prof distort.Profile,
	palette []colorful.Color, prevColor int, rng *rand.Rand) (PositionedGlyph, error) {

	if len(palette) == 0 {
		return PositionedGlyph{}, fmt.Errorf("%s: %w", methodRenderGlyph, ErrNoPalette)
	}
	if rng == nil {
		return PositionedGlyph{}, fmt.Errorf("%s: %w", methodRenderGlyph, ErrNeedRandSource)
	}
	if slot < 0 || slot >= cv.Slots {
		return PositionedGlyph{}, fmt.Errorf("%s: slot %d outside canvas with %d slots: %w",
			methodRenderGlyph, slot, cv.Slots, ErrDocumentAssembly)
	}

	// Sample every random parameter up front, in the documented order.
	angle := span(rng) * prof.Rotation
	sx := prof.ScaleMin + rng.Float64()*(prof.ScaleMax-prof.ScaleMin)
	sy := prof.ScaleMin + rng.Float64()*(prof.ScaleMax-prof.ScaleMin)
	dx := span(rng) * prof.JitterX
	dy := span(rng) * prof.JitterY

	// Center the unit box on the origin, size it, spin it, then move it
	// into the slot. Rotation happens at the origin so the glyph spins
	// around its own center, not the canvas corner.
	p := glyph.Offset(-0.5, -0.5).
		Scale(GlyphBoxWidth*sx, GlyphBoxHeight*sy).
		Rotate(angle).
		Offset(cv.SlotCenterX(slot)+dx, cv.CenterY()+dy)

	// Baseline wave: bend the stroke along canvas x. Segmentize first so
	// the sine shows up inside segments, not only at their endpoints.
	if prof.WaveAmp > 0 {
		amp := rng.Float64() * prof.WaveAmp
		phase := rng.Float64() * 2 * math.Pi
		p = p.Segmentize(waveSegmentLen).Wave(amp, prof.WaveLength, phase)
	}

	// Clamp the sampled result back into the draw region. Invariant: the
	// final bounding box stays inside the canvas for any RNG outcome.
	p = clampInto(p, cv.drawBounds())

	idx := pickColor(len(palette), prevColor, rng)
	out := PositionedGlyph{Slot: slot, Path: p, ColorIndex: idx, Color: palette[idx]}

	if prof.SplitStrokes {
		out.Path = randomSplit(out.Path, rng)
	}
	return out, nil
}

// clampInto shifts p so its bounding box lies inside limit. When the box is
// larger than the limit (cannot happen with the shipped layout constants)
// the min edge wins; the assembler's defensive check reports the breach.
func clampInto(p geom.Path, limit geom.Rect) geom.Path {
	b := p.Bounds()
	var dx, dy float64
	if b.MaxX > limit.MaxX {
		dx = limit.MaxX - b.MaxX
	}
	if b.MinX+dx < limit.MinX {
		dx = limit.MinX - b.MinX
	}
	if b.MaxY > limit.MaxY {
		dy = limit.MaxY - b.MaxY
	}
	if b.MinY+dy < limit.MinY {
		dy = limit.MinY - b.MinY
	}
	if dx == 0 && dy == 0 {
		return p
	}
	return p.Offset(dx, dy)
}

// randomSplit breaks the glyph's strokes into runs of splitRunMin..splitRunMax
// segments, restarting each run as its own subpath. The inked geometry is
// unchanged; only pen lifts are added, so a solver cannot rely on one
// continuous path per character.
func randomSplit(p geom.Path, rng *rand.Rand) geom.Path {
	out := make([]geom.Command, 0, len(p.Commands)+len(p.Commands)/splitRunMin)
	runLeft := splitRunMin + rng.Intn(splitRunMax-splitRunMin+1)
	var lastX, lastY float64
	for _, cmd := range p.Commands {
		if cmd.Op == geom.OpMove {
			out = append(out, cmd)
			runLeft = splitRunMin + rng.Intn(splitRunMax-splitRunMin+1)
		} else {
			if runLeft == 0 {
				// Break the stroke here: restart at the current pen point.
				out = append(out, geom.MoveTo(lastX, lastY))
				runLeft = splitRunMin + rng.Intn(splitRunMax-splitRunMin+1)
			}
			out = append(out, cmd)
			runLeft--
		}
		lastX, lastY = cmd.X, cmd.Y
	}
	return geom.Path{Commands: out}
}
