// SPDX-License-Identifier: MIT
// Package: vectcha/render
//
// canvas.go - deterministic canvas layout.
//
// Contract:
//   - Canvas dimensions are a function of the answer length ONLY. Difficulty
//     never changes the view region, so a solver cannot read difficulty (or
//     anything else) out of the document size.
//   - Each character reserves one fixed-width horizontal slot; margins pad
//     both sides. Glyphs are distorted inside their slot, never relocated to
//     another slot.
//
// Complexity: O(1) everywhere.

package render

import "github.com/katalvlaran/vectcha/geom"

// Layout constants, in canvas units.
const (
	// SlotWidth is the horizontal band reserved per answer character.
	SlotWidth = 40.0
	// CanvasHeight is the fixed document height.
	CanvasHeight = 60.0
	// CanvasMargin pads the left and right document edges.
	CanvasMargin = 12.0

	// GlyphBoxWidth / GlyphBoxHeight size the undistorted glyph body; the
	// difference against SlotWidth/CanvasHeight is headroom for rotation,
	// scale and jitter, so a clamped glyph always fits its canvas.
	GlyphBoxWidth  = 24.0
	GlyphBoxHeight = 34.0

	// GlyphStrokeWidth is the pen width for answer glyphs, derived from the
	// glyph body height the way biological-looking stroke fonts do it.
	GlyphStrokeWidth = GlyphBoxHeight / 12

	// edgePad keeps strokes (half the pen width plus slack) off the canvas
	// edge when clamping.
	edgePad = GlyphStrokeWidth
)

// Canvas is the bounded coordinate region containing all rendered content.
type Canvas struct {
	Width  float64
	Height float64
	Slots  int
}

// CanvasFor derives the canvas for an answer of the given length.
func CanvasFor(length int) Canvas {
	return Canvas{
		Width:  float64(length)*SlotWidth + 2*CanvasMargin,
		Height: CanvasHeight,
		Slots:  length,
	}
}

// SlotCenterX reports the horizontal center of the given slot index.
func (cv Canvas) SlotCenterX(slot int) float64 {
	return CanvasMargin + (float64(slot)+0.5)*SlotWidth
}

// CenterY reports the vertical glyph baseline center.
func (cv Canvas) CenterY() float64 { return cv.Height / 2 }

// Bounds returns the canvas as a geom.Rect anchored at the origin.
func (cv Canvas) Bounds() geom.Rect {
	return geom.Rect{MinX: 0, MinY: 0, MaxX: cv.Width, MaxY: cv.Height}
}

// drawBounds is the canvas inset by the stroke pad: the region transformed
// glyph skeletons must stay inside so their inked strokes stay on-canvas.
func (cv Canvas) drawBounds() geom.Rect {
	return cv.Bounds().Inset(edgePad)
}
