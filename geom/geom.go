// SPDX-License-Identifier: MIT
// Package: vectcha/geom
//
// geom.go - drawing commands and the immutable Path type.
//
// Design contract (strict):
//   - Commands store absolute coordinates only; no relative forms.
//   - Path is a value type over a command slice; every operation copies,
//     never aliases, so a Path handed out once can be reused freely.
//   - The coordinate system is SVG-like: x grows right, y grows down.
//
// Complexity:
//   - All per-path operations are O(n) in the command count, O(n) space
//     for the copied result.

package geom

// Op enumerates the supported drawing commands.
type Op uint8

const (
	// OpMove lifts the pen and starts a new subpath at (X, Y).
	OpMove Op = iota
	// OpLine draws a straight segment to (X, Y).
	OpLine
	// OpQuad draws a quadratic Bézier to (X, Y) with control point (CX, CY).
	OpQuad
)

// Command is one drawing instruction. CX/CY are meaningful for OpQuad only
// and are kept zero otherwise.
type Command struct {
	Op     Op
	CX, CY float64 // control point (OpQuad)
	X, Y   float64 // end point
}

// Path is an ordered command sequence. The zero value is an empty path.
type Path struct {
	Commands []Command
}

// MoveTo returns a pen-lift command targeting (x, y).
func MoveTo(x, y float64) Command { return Command{Op: OpMove, X: x, Y: y} }

// LineTo returns a straight-segment command targeting (x, y).
func LineTo(x, y float64) Command { return Command{Op: OpLine, X: x, Y: y} }

// QuadTo returns a quadratic-curve command with control (cx, cy) targeting (x, y).
func QuadTo(cx, cy, x, y float64) Command {
	return Command{Op: OpQuad, CX: cx, CY: cy, X: x, Y: y}
}

// NewPath copies cmds into a fresh Path. The input slice is never aliased.
func NewPath(cmds ...Command) Path {
	out := make([]Command, len(cmds))
	copy(out, cmds)
	return Path{Commands: out}
}

// Polyline builds a path that moves to the first point and draws straight
// segments through the rest. Points come in (x0,y0,x1,y1,...) pairs; an odd
// count or fewer than two points yields an empty path.
func Polyline(coords ...float64) Path {
	if len(coords) < 4 || len(coords)%2 != 0 {
		return Path{}
	}
	cmds := make([]Command, 0, len(coords)/2)
	cmds = append(cmds, MoveTo(coords[0], coords[1]))
	for i := 2; i < len(coords); i += 2 {
		cmds = append(cmds, LineTo(coords[i], coords[i+1]))
	}
	return Path{Commands: cmds}
}

// Len reports the command count.
func (p Path) Len() int { return len(p.Commands) }

// Empty reports whether the path draws nothing.
func (p Path) Empty() bool { return len(p.Commands) == 0 }

// Clone returns a deep copy of p.
func (p Path) Clone() Path {
	return NewPath(p.Commands...)
}

// Append returns a new path holding p's commands followed by q's.
func (p Path) Append(q Path) Path {
	out := make([]Command, 0, len(p.Commands)+len(q.Commands))
	out = append(out, p.Commands...)
	out = append(out, q.Commands...)
	return Path{Commands: out}
}

// mapCoords applies fn to every coordinate pair of every command (control
// points included) and returns the transformed copy. This is the single
// primitive behind all affine operations in transform.go.
func (p Path) mapCoords(fn func(x, y float64) (float64, float64)) Path {
	out := make([]Command, len(p.Commands))
	for i, c := range p.Commands {
		nc := c
		nc.X, nc.Y = fn(c.X, c.Y)
		if c.Op == OpQuad {
			nc.CX, nc.CY = fn(c.CX, c.CY)
		}
		out[i] = nc
	}
	return Path{Commands: out}
}
