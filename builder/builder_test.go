// Package builder_test contains functional end-to-end tests for the fluent
// captcha builder: defaults, validation order, determinism under a fixed
// seed, and the answer/document correspondence invariants.
package builder_test

import (
	"encoding/xml"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/vectcha/builder"
	"github.com/katalvlaran/vectcha/distort"
	"github.com/katalvlaran/vectcha/glyphset"
	"github.com/stretchr/testify/require"
)

// examplePalette is the documented five-color palette.
var examplePalette = []string{"#0078D6", "#aa3333", "#f08012", "#33aa00", "#aa33aa"}

// svgMarkup proves well-formedness and captures the view region.
type svgMarkup struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
}

func TestBuildEndToEnd(t *testing.T) {
	t.Parallel()

	answer, doc, err := builder.New().
		Length(4).
		Difficulty(6).
		Colors(examplePalette).
		Seed(20240817).
		Build()
	require.NoError(t, err)

	// Answer: exactly 4 runes, all from the eligible alphabet.
	runes := []rune(answer)
	require.Len(t, runes, 4)
	member := make(map[rune]bool)
	for _, gr := range glyphset.Alphabet() {
		member[gr] = true
	}
	for _, gr := range runes {
		require.Truef(t, member[gr], "answer rune %q outside eligible alphabet", gr)
	}

	// Document: well-formed, view region 4*slot + margins, one group per
	// character, decoy counts from the difficulty-6 profile.
	var parsed svgMarkup
	require.NoError(t, xml.Unmarshal([]byte(doc), &parsed))
	require.Equal(t, "184", parsed.Width)
	require.Equal(t, "60", parsed.Height)
	require.Equal(t, "0 0 184 60", parsed.ViewBox)

	prof, err := distort.ProfileFor(6)
	require.NoError(t, err)
	require.Equal(t, 4, strings.Count(doc, "<g>"))
	require.Equal(t, prof.NoiseStrokes+4, strings.Count(doc, "<path"))
	require.Equal(t, prof.NoiseDots, strings.Count(doc, "<circle"))

	// The answer never appears as extractable text.
	require.NotContains(t, doc, "<text")
	require.NotContains(t, doc, answer)
}

func TestBuildDeterministicUnderSeed(t *testing.T) {
	t.Parallel()

	build := func() (string, string) {
		answer, doc, err := builder.New().
			Length(6).
			Difficulty(9).
			Colors(examplePalette).
			Seed(7).
			Build()
		require.NoError(t, err)
		return answer, doc
	}
	a1, d1 := build()
	a2, d2 := build()
	require.Equal(t, a1, a2)
	require.Equal(t, d1, d2)
}

func TestBuildWithInjectedRand(t *testing.T) {
	t.Parallel()

	a1, d1, err := builder.New().Rand(rand.New(rand.NewSource(55))).Build()
	require.NoError(t, err)
	a2, d2, err := builder.New().Rand(rand.New(rand.NewSource(55))).Build()
	require.NoError(t, err)
	require.Equal(t, a1, a2)
	require.Equal(t, d1, d2)
}

func TestBuildDefaults(t *testing.T) {
	t.Parallel()

	// The zero-configuration build uses DefaultLength and the built-in
	// palette; only the seed is pinned for reproducibility.
	answer, doc, err := builder.New().Seed(1).Build()
	require.NoError(t, err)
	require.Len(t, []rune(answer), builder.DefaultLength)

	var parsed svgMarkup
	require.NoError(t, xml.Unmarshal([]byte(doc), &parsed))
	require.Equal(t, builder.DefaultLength, strings.Count(doc, "<g>"))
}

func TestBuildValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builder *builder.Builder
		wantErr error
	}{
		{"length zero", builder.New().Length(0), glyphset.ErrInvalidLength},
		{"length negative", builder.New().Length(-2), glyphset.ErrInvalidLength},
		{"length above max", builder.New().Length(glyphset.MaxLength + 1), glyphset.ErrInvalidLength},
		{"difficulty zero", builder.New().Difficulty(0), distort.ErrInvalidDifficulty},
		{"difficulty above max", builder.New().Difficulty(distort.MaxDifficulty + 1), distort.ErrInvalidDifficulty},
		{"empty palette", builder.New().Colors([]string{}), builder.ErrEmptyPalette},
		{"bad color", builder.New().Colors([]string{"#0078D6", "teal"}), builder.ErrInvalidColor},
		{"truncated hex", builder.New().Colors([]string{"#12"}), builder.ErrInvalidColor},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := tc.builder.Build()
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestBuildValidationOrder pins the documented first-error order:
// length before difficulty before palette.
func TestBuildValidationOrder(t *testing.T) {
	t.Parallel()

	// Everything invalid: length wins.
	_, _, err := builder.New().Length(0).Difficulty(99).Colors(nil).Build()
	require.ErrorIs(t, err, glyphset.ErrInvalidLength)

	// Length valid, difficulty and palette invalid: difficulty wins.
	_, _, err = builder.New().Length(4).Difficulty(99).Colors([]string{}).Build()
	require.ErrorIs(t, err, distort.ErrInvalidDifficulty)

	// Only the palette invalid.
	_, _, err = builder.New().Length(4).Difficulty(5).Colors([]string{}).Build()
	require.ErrorIs(t, err, builder.ErrEmptyPalette)
}

func TestBuildNoPartialResultOnFailure(t *testing.T) {
	t.Parallel()

	answer, doc, err := builder.New().Length(0).Build()
	require.Error(t, err)
	require.Empty(t, answer)
	require.Empty(t, doc)
}

func TestBuildShortHexPaletteAccepted(t *testing.T) {
	t.Parallel()

	// Three-digit hex colors are valid per the format-only policy.
	_, _, err := builder.New().Colors([]string{"#06c", "#a33"}).Seed(2).Build()
	require.NoError(t, err)
}

func TestBuildAllLengthsAndDifficulties(t *testing.T) {
	t.Parallel()

	for length := glyphset.MinLength; length <= glyphset.MaxLength; length++ {
		for _, difficulty := range []int{distort.MinDifficulty, 5, distort.MaxDifficulty} {
			answer, doc, err := builder.New().
				Length(length).
				Difficulty(difficulty).
				Seed(int64(length*100 + difficulty)).
				Build()
			require.NoErrorf(t, err, "length %d difficulty %d", length, difficulty)
			require.Len(t, []rune(answer), length)
			require.Equal(t, length, strings.Count(doc, "<g>"))
		}
	}
}
