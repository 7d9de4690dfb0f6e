// Package geom provides the minimal 2-D path primitives used by vectcha:
// drawing commands (move / line / quadratic curve), immutable paths with
// value-returning affine operations (offset, scale, rotate), sinusoidal
// perturbation, bounding boxes, and SVG path-data emission.
//
// The package offers the following key components:
//
//   - Command:  one drawing instruction with absolute coordinates.
//   - Path:     an ordered command sequence; all operations return new Paths.
//   - Rect:     an axis-aligned bounding box with containment helpers.
//
// Guarantees:
//
//   - Immutability: no operation mutates its receiver; sharing a Path across
//     goroutines is safe because nothing writes after construction.
//   - Determinism: every operation is a pure function of its inputs; no RNG,
//     no globals, no I/O.
//   - Bounded output: D() renders coordinates with a fixed precision so the
//     serialized size is proportional to the command count.
package geom
