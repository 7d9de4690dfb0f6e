// SPDX-License-Identifier: MIT
// Package: vectcha/distort
//
// errors.go - sentinel errors for the distort package.
//
// Error policy: package-level sentinels only; branch with errors.Is;
// context is attached at the call site via %w wrapping.

package distort

import "errors"

// ErrInvalidDifficulty indicates a difficulty outside the supported closed
// range [MinDifficulty, MaxDifficulty].
// Usage: if errors.Is(err, ErrInvalidDifficulty) { ... }.
var ErrInvalidDifficulty = errors.New("distort: difficulty out of range")
