// SPDX-License-Identifier: MIT
// Package: vectcha/glyphset
//
// answer.go - uniform random answer selection.
//
// Contract:
//   - Characters are drawn independently and uniformly WITH replacement, so
//     repeated characters in one answer are expected and allowed.
//   - The RNG is an explicit dependency (never a hidden global): a fixed
//     seed reproduces the same answer, which the test suite relies on.
//   - Length is bounded to [MinLength, MaxLength] because the canvas width
//     grows linearly with length.
//
// Complexity: O(length) time, O(length) space.

package glyphset

import (
	"fmt"
	"math/rand"
	"strings"
)

const methodAnswer = "Answer" // context tag for error wrapping

// Answer length bounds. MaxLength keeps the canvas (and the serialized
// document) bounded; both are part of the public contract.
const (
	MinLength = 1
	MaxLength = 12
)

// Answer draws a random answer string of exactly length runes from the
// given alphabet. Fails with ErrInvalidLength outside [MinLength,MaxLength],
// ErrEmptyAlphabet for an empty set, ErrNeedRandSource for a nil rng.
func Answer(length int, alphabet []rune, rng *rand.Rand) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("%s: length must be in [%d,%d], got %d: %w",
			methodAnswer, MinLength, MaxLength, length, ErrInvalidLength)
	}
	if len(alphabet) == 0 {
		return "", fmt.Errorf("%s: %w", methodAnswer, ErrEmptyAlphabet)
	}
	if rng == nil {
		return "", fmt.Errorf("%s: %w", methodAnswer, ErrNeedRandSource)
	}

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		// Uniform i.i.d. draw with replacement.
		sb.WriteRune(alphabet[rng.Intn(len(alphabet))])
	}
	return sb.String(), nil
}
