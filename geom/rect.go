// SPDX-License-Identifier: MIT
// Package: vectcha/geom
//
// rect.go - axis-aligned bounding boxes.
//
// Notes:
//   - Bounds() treats quadratic control points as ordinary coordinates,
//     which yields a conservative (never too small) box. The captcha
//     pipeline only ever needs "is everything inside the canvas", so a
//     slightly generous box is the safe direction.

package geom

// Rect is an axis-aligned rectangle. A valid Rect has MinX <= MaxX and
// MinY <= MaxY; the zero value is the degenerate point at the origin.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width reports MaxX - MinX.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height reports MaxY - MinY.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// CenterX reports the horizontal midpoint.
func (r Rect) CenterX() float64 { return (r.MinX + r.MaxX) / 2 }

// CenterY reports the vertical midpoint.
func (r Rect) CenterY() float64 { return (r.MinY + r.MaxY) / 2 }

// ContainsRect reports whether inner lies fully within r (edges inclusive).
func (r Rect) ContainsRect(inner Rect) bool {
	return inner.MinX >= r.MinX && inner.MaxX <= r.MaxX &&
		inner.MinY >= r.MinY && inner.MaxY <= r.MaxY
}

// Inset shrinks r by d on every side. A d larger than half the extent
// collapses the rectangle to its center point.
func (r Rect) Inset(d float64) Rect {
	out := Rect{MinX: r.MinX + d, MinY: r.MinY + d, MaxX: r.MaxX - d, MaxY: r.MaxY - d}
	if out.MinX > out.MaxX {
		out.MinX, out.MaxX = r.CenterX(), r.CenterX()
	}
	if out.MinY > out.MaxY {
		out.MinY, out.MaxY = r.CenterY(), r.CenterY()
	}
	return out
}

// Bounds computes the conservative bounding box of the path. An empty path
// yields the zero Rect.
func (p Path) Bounds() Rect {
	if len(p.Commands) == 0 {
		return Rect{}
	}
	first := p.Commands[0]
	r := Rect{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
	grow := func(x, y float64) {
		if x < r.MinX {
			r.MinX = x
		}
		if x > r.MaxX {
			r.MaxX = x
		}
		if y < r.MinY {
			r.MinY = y
		}
		if y > r.MaxY {
			r.MaxY = y
		}
	}
	for _, c := range p.Commands {
		grow(c.X, c.Y)
		if c.Op == OpQuad {
			grow(c.CX, c.CY)
		}
	}
	return r
}
