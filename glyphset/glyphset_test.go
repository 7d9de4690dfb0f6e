// Package glyphset_test contains functional tests for the glyph registry
// and the random answer selector: alphabet contents and order, lookup
// behavior, the shape-distinctness invariant, and selection determinism.
package glyphset_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/vectcha/glyphset"
	"github.com/stretchr/testify/require"
)

func TestAlphabetOrderedAndStable(t *testing.T) {
	t.Parallel()

	a := glyphset.Alphabet()
	require.NotEmpty(t, a)
	require.True(t, sort.SliceIsSorted(a, func(i, j int) bool { return a[i] < a[j] }))

	// Same content on every call (fixed at init).
	require.Equal(t, a, glyphset.Alphabet())

	// Returned slice is a copy; scribbling on it must not leak back.
	a[0] = 'ζ'
	require.NotEqual(t, a[0], glyphset.Alphabet()[0])
}

func TestAlphabetExcludesAmbiguousGlyphs(t *testing.T) {
	t.Parallel()

	member := make(map[rune]bool)
	for _, gr := range glyphset.Alphabet() {
		member[gr] = true
	}
	// Registered but ambiguous shapes never become answer characters.
	for _, gr := range []rune{'O', '0', 'I', '1', 'B', '8', 'S', '5', 'Z', '2', 'G', '6', 'Q'} {
		require.Truef(t, glyphset.Supported(gr), "glyph %q should stay in the registry", gr)
		require.Falsef(t, member[gr], "glyph %q must not be eligible", gr)
	}
	// Spot-check obviously eligible glyphs.
	for _, gr := range []rune{'A', 'K', 'W', '3', '7'} {
		require.Truef(t, member[gr], "glyph %q should be eligible", gr)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	p, err := glyphset.Lookup('A')
	require.NoError(t, err)
	require.False(t, p.Empty())

	// Every path coordinate lives in the unit box.
	b := p.Bounds()
	require.GreaterOrEqual(t, b.MinX, 0.0)
	require.GreaterOrEqual(t, b.MinY, 0.0)
	require.LessOrEqual(t, b.MaxX, 1.0)
	require.LessOrEqual(t, b.MaxY, 1.0)

	// Unknown runes fail loudly instead of being skipped.
	_, err = glyphset.Lookup('~')
	require.ErrorIs(t, err, glyphset.ErrUnsupportedGlyph)
}

func TestLookupReturnsDefensiveCopy(t *testing.T) {
	t.Parallel()

	p1, err := glyphset.Lookup('X')
	require.NoError(t, err)
	p1.Commands[0].X = 42

	p2, err := glyphset.Lookup('X')
	require.NoError(t, err)
	require.NotEqual(t, 42.0, p2.Commands[0].X)
}

// TestAlphabetShapesDistinct pins the ambiguity rule: no two eligible
// characters may share an identical normalized path.
func TestAlphabetShapesDistinct(t *testing.T) {
	t.Parallel()

	seen := make(map[string]rune)
	for _, gr := range glyphset.Alphabet() {
		p, err := glyphset.Lookup(gr)
		require.NoError(t, err)
		key := p.D()
		if prev, dup := seen[key]; dup {
			t.Fatalf("glyphs %q and %q share an identical path", prev, gr)
		}
		seen[key] = gr
	}
}

func TestAnswerLengthAndMembership(t *testing.T) {
	t.Parallel()

	alphabet := glyphset.Alphabet()
	member := make(map[rune]bool, len(alphabet))
	for _, gr := range alphabet {
		member[gr] = true
	}

	rng := rand.New(rand.NewSource(7))
	for length := glyphset.MinLength; length <= glyphset.MaxLength; length++ {
		answer, err := glyphset.Answer(length, alphabet, rng)
		require.NoError(t, err)
		runes := []rune(answer)
		require.Len(t, runes, length)
		for _, gr := range runes {
			require.Truef(t, member[gr], "answer rune %q outside alphabet", gr)
		}
	}
}

func TestAnswerDeterministicUnderSeed(t *testing.T) {
	t.Parallel()

	a1, err := glyphset.Answer(8, glyphset.Alphabet(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	a2, err := glyphset.Answer(8, glyphset.Alphabet(), rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	require.Equal(t, a1, a2)

	// A different seed stream is allowed to (and in practice will) differ.
	a3, err := glyphset.Answer(8, glyphset.Alphabet(), rand.New(rand.NewSource(43)))
	require.NoError(t, err)
	require.NotEqual(t, a1, a3)
}

func TestAnswerRepeatsAllowed(t *testing.T) {
	t.Parallel()

	// Draws are with replacement: five draws from a two-rune alphabet must
	// repeat a character (pigeonhole), and that is not an error.
	answer, err := glyphset.Answer(5, []rune{'A', 'K'}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, answer, 5)
	counts := map[rune]int{}
	for _, gr := range answer {
		counts[gr]++
	}
	require.LessOrEqual(t, len(counts), 2)
	require.True(t, counts['A'] >= 2 || counts['K'] >= 2)
}

func TestAnswerValidation(t *testing.T) {
	t.Parallel()

	alphabet := glyphset.Alphabet()
	rng := rand.New(rand.NewSource(1))

	for _, length := range []int{-1, 0, glyphset.MaxLength + 1} {
		_, err := glyphset.Answer(length, alphabet, rng)
		require.ErrorIs(t, err, glyphset.ErrInvalidLength, "length %d", length)
	}

	_, err := glyphset.Answer(4, nil, rng)
	require.ErrorIs(t, err, glyphset.ErrEmptyAlphabet)

	_, err = glyphset.Answer(4, alphabet, nil)
	require.ErrorIs(t, err, glyphset.ErrNeedRandSource)
}
