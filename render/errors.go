// SPDX-License-Identifier: MIT
// Package: vectcha/render
//
// errors.go - sentinel errors for the render package.
//
// Error policy: package-level sentinels only; branch with errors.Is;
// call sites attach method context via %w wrapping.

package render

import "errors"

// ErrDocumentAssembly is the defensive fatal signal for an internal
// invariant breach: a positioned glyph outside canvas bounds after
// clamping. Unreachable under correct upstream validation; it exists so a
// broken pipeline fails loudly instead of emitting a malformed captcha.
var ErrDocumentAssembly = errors.New("render: document invariant breached")

// ErrNoPalette indicates a render entry point received an empty palette.
// The builder validates palettes first, so this is a defensive guard for
// direct package users.
var ErrNoPalette = errors.New("render: empty palette")

// ErrNeedRandSource indicates a render entry point received a nil RNG.
// Randomness is always injected; there is no hidden global fallback here.
var ErrNeedRandSource = errors.New("render: rng is required")
