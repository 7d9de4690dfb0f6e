// SPDX-License-Identifier: MIT
// Package: vectcha/geom
//
// transform.go - affine and wave operations over Path.
//
// Contract:
//   - All operations are value-returning: the receiver is never mutated.
//   - Rotate spins around the origin (0,0); callers that want rotation about
//     a glyph center compose Offset(-c) . Rotate(a) . Offset(+c), the same
//     composition convention as augmented-matrix affine transforms.
//   - Wave displaces y by a sine of x; it is applied after Segmentize so the
//     perturbation bends segments instead of merely sliding endpoints.
//
// Complexity: every operation is O(n) in the command count.

package geom

import "math"

// Offset translates every coordinate by (dx, dy).
func (p Path) Offset(dx, dy float64) Path {
	return p.mapCoords(func(x, y float64) (float64, float64) {
		return x + dx, y + dy
	})
}

// Scale multiplies every coordinate by (sx, sy) relative to the origin.
func (p Path) Scale(sx, sy float64) Path {
	return p.mapCoords(func(x, y float64) (float64, float64) {
		return x * sx, y * sy
	})
}

// Rotate spins every coordinate by angle radians around the origin (0,0).
// Positive angles rotate x towards y, which is clockwise in the y-down
// coordinate system used throughout vectcha.
func (p Path) Rotate(angle float64) Path {
	sin, cos := math.Sincos(angle)
	return p.mapCoords(func(x, y float64) (float64, float64) {
		return x*cos - y*sin, x*sin + y*cos
	})
}

// RotateAbout spins the path by angle radians around (cx, cy).
func (p Path) RotateAbout(angle, cx, cy float64) Path {
	return p.Offset(-cx, -cy).Rotate(angle).Offset(cx, cy)
}

// Wave displaces every y coordinate by amp*sin(2π*x/period + phase).
// A non-positive period or zero amplitude returns the path unchanged.
func (p Path) Wave(amp, period, phase float64) Path {
	if amp == 0 || period <= 0 {
		return p.Clone()
	}
	k := 2 * math.Pi / period
	return p.mapCoords(func(x, y float64) (float64, float64) {
		return x, y + amp*math.Sin(k*x+phase)
	})
}

// Segmentize splits every straight segment longer than maxLen into equal
// parts no longer than maxLen, so a later Wave bends the stroke smoothly.
// Move and Quad commands pass through untouched. maxLen <= 0 is a no-op.
func (p Path) Segmentize(maxLen float64) Path {
	if maxLen <= 0 {
		return p.Clone()
	}
	out := make([]Command, 0, len(p.Commands))
	var curX, curY float64
	for _, c := range p.Commands {
		if c.Op != OpLine {
			out = append(out, c)
			curX, curY = c.X, c.Y
			continue
		}
		dx, dy := c.X-curX, c.Y-curY
		dist := math.Hypot(dx, dy)
		steps := int(math.Ceil(dist / maxLen))
		if steps < 1 {
			steps = 1
		}
		for s := 1; s <= steps; s++ {
			t := float64(s) / float64(steps)
			out = append(out, LineTo(curX+dx*t, curY+dy*t))
		}
		curX, curY = c.X, c.Y
	}
	return Path{Commands: out}
}
