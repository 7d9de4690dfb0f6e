// SPDX-License-Identifier: MIT
// Package: vectcha/geom
//
// emit.go - SVG path-data serialization.
//
// Contract:
//   - D() emits absolute commands only ("M", "L", "Q"), space separated,
//     coordinates rounded to emitPrecision decimal places. Fixed precision
//     keeps the document size bounded and makes golden tests byte-stable.

package geom

import (
	"strconv"
	"strings"
)

// emitPrecision is the number of decimal places kept in serialized
// coordinates. Two places keep sub-pixel accuracy at captcha scale while
// bounding the per-command byte cost.
const emitPrecision = 2

// coord renders one coordinate with fixed precision and no exponent form.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', emitPrecision, 64)
}

// D renders the path as an SVG path-data string, e.g. "M 0 0 L 10 5".
// An empty path renders as "".
func (p Path) D() string {
	if len(p.Commands) == 0 {
		return ""
	}
	var sb strings.Builder
	// 24 bytes per command is a comfortable upper estimate.
	sb.Grow(len(p.Commands) * 24)
	for i, c := range p.Commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch c.Op {
		case OpMove:
			sb.WriteString("M ")
			sb.WriteString(coord(c.X))
			sb.WriteByte(' ')
			sb.WriteString(coord(c.Y))
		case OpLine:
			sb.WriteString("L ")
			sb.WriteString(coord(c.X))
			sb.WriteByte(' ')
			sb.WriteString(coord(c.Y))
		case OpQuad:
			sb.WriteString("Q ")
			sb.WriteString(coord(c.CX))
			sb.WriteByte(' ')
			sb.WriteString(coord(c.CY))
			sb.WriteByte(' ')
			sb.WriteString(coord(c.X))
			sb.WriteByte(' ')
			sb.WriteString(coord(c.Y))
		}
	}
	return sb.String()
}
