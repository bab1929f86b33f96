package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) *Generator {
	g, err := New()
	require.NoError(t, err)
	return g
}

func TestGeneratePasswordProperties(t *testing.T) {
	tests := []struct {
		name string
		opts PasswordOptions
	}{
		{name: "defaults", opts: DefaultPasswordOptions()},
		{name: "all_sets", opts: PasswordOptions{Length: 24, Lower: true, Upper: true, Digits: true, Symbols: true}},
		{name: "exclude_similar", opts: PasswordOptions{Length: 32, Lower: true, Upper: true, Digits: true, ExcludeSimilar: true}},
		{name: "symbols_no_ambiguous", opts: PasswordOptions{Length: 30, Symbols: true, NoAmbiguous: true}},
		{name: "lower_no_repeat", opts: PasswordOptions{Length: 40, Lower: true, NoRepeat: true}},
		{name: "minimum_length", opts: PasswordOptions{Length: 4, Lower: true, Upper: true, Digits: true, Symbols: true, NoRepeat: true}},
		{name: "everything", opts: PasswordOptions{Length: 128, Lower: true, Upper: true, Digits: true, Symbols: true,
			ExcludeSimilar: true, NoAmbiguous: true, NoRepeat: true}},
	}
	g := newTestGenerator(t)

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			categories, err := BuildCategories(c.opts)
			require.NoError(t, err)
			pool, err := Pool(categories)
			require.NoError(t, err)

			for i := 0; i < 50; i++ {
				password, err := g.GeneratePassword(c.opts)
				require.NoError(t, err)
				assert.Len(t, password, c.opts.Length)

				for j := 0; j < len(password); j++ {
					assert.True(t, strings.IndexByte(pool, password[j]) >= 0, "%q is not in the pool", password[j])
					if c.opts.ExcludeSimilar {
						assert.False(t, strings.IndexByte(SimilarCharacters, password[j]) >= 0)
					}
					if c.opts.Symbols && c.opts.NoAmbiguous {
						assert.False(t, strings.IndexByte(AmbiguousSymbols, password[j]) >= 0)
					}
					if c.opts.NoRepeat && j > 0 {
						assert.NotEqual(t, password[j-1], password[j], "adjacent repeat in %q", password)
					}
				}
				for _, x := range categories {
					assert.True(t, strings.ContainsAny(password, x.Chars), "%q has no %s characters", password, x.Class)
				}
			}
		})
	}
}

func TestGeneratePasswordReplayed(t *testing.T) {
	opts := PasswordOptions{Length: 3, Lower: true, Upper: true, Digits: true}

	// fill: a a a, upper: position 1 gets A, digits: position 0 gets 0
	password, err := NewWithSource(replay(0, 0, 0, 0, 1, 0, 0, 0)).GeneratePassword(opts)
	require.NoError(t, err)
	assert.Equal(t, "0Aa", password)
}

func TestGeneratePasswordReplayedNoRepeat(t *testing.T) {
	opts := PasswordOptions{Length: 4, Lower: true, NoRepeat: true}

	password, err := NewWithSource(replay(0, 0, 0, 1, 1, 2, 0)).GeneratePassword(opts)
	require.NoError(t, err)
	assert.Equal(t, "abca", password)
}

func TestGeneratePasswordReproducible(t *testing.T) {
	sequence := []int{7, 91, 3, 44, 12, 60, 18, 2, 77, 35, 9, 51, 23, 88, 64, 5, 30, 71, 14, 40}
	opts := PasswordOptions{Length: 20, Lower: true, Upper: true, Digits: true, Symbols: true, NoRepeat: true}

	first, err := NewWithSource(replay(1, sequence...)).GeneratePassword(opts)
	require.NoError(t, err)
	second, err := NewWithSource(replay(1, sequence...)).GeneratePassword(opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGeneratePasswordNoCategory(t *testing.T) {
	_, err := newTestGenerator(t).GeneratePassword(PasswordOptions{Length: 16})
	assert.Equal(t, ErrNoCategoryEnabled, err)
}

func TestGeneratePasswordLengthTooShort(t *testing.T) {
	_, err := newTestGenerator(t).GeneratePassword(PasswordOptions{Length: 2, Lower: true, Upper: true, Digits: true, Symbols: true})

	var short *LengthTooShortError
	require.True(t, errors.As(err, &short))
	assert.Equal(t, 2, short.Length)
	assert.Equal(t, 4, short.Categories)
	assert.Contains(t, err.Error(), "at least the number of enabled character sets")
}

func TestGeneratePasswordNormalizesLength(t *testing.T) {
	g := newTestGenerator(t)
	tests := []struct {
		length   int
		expected int
	}{
		{length: 0, expected: DefaultPasswordLength},
		{length: -3, expected: MinPasswordLength},
		{length: 500, expected: MaxPasswordLength},
		{length: 64, expected: 64},
	}
	for _, c := range tests {
		password, err := g.GeneratePassword(PasswordOptions{Length: c.length, Lower: true})
		require.NoError(t, err)
		assert.Len(t, password, c.expected)
	}
}

func TestGeneratePasswordCoverageUnsatisfiable(t *testing.T) {
	opts := PasswordOptions{Length: 3, Lower: true, Upper: true, Digits: true}

	// fill a A a, then every attempt lands on the only upper case character
	_, err := NewWithSource(replay(1, 0, 26, 0)).GeneratePassword(opts)
	assert.Equal(t, ErrCoverageUnsatisfiable, err)
}

func TestGeneratePasswordCoverageKeepsOtherSets(t *testing.T) {
	opts := PasswordOptions{Length: 3, Lower: true, Upper: true, Digits: true}

	// fill a A a, digits first try position 1 (the only upper case, skipped) then position 2
	password, err := NewWithSource(replay(0, 0, 26, 0, 1, 0, 2, 3)).GeneratePassword(opts)
	require.NoError(t, err)
	assert.Equal(t, "aA3", password)
}

func TestGeneratePasswordCoverageWithNoRepeat(t *testing.T) {
	opts := PasswordOptions{Length: 3, Lower: true, Digits: true, NoRepeat: true}

	// fill a b a, then position 1 takes the digit 3
	password, err := NewWithSource(replay(0, 0, 1, 0, 1, 3)).GeneratePassword(opts)
	require.NoError(t, err)
	assert.Equal(t, "a3a", password)
}

func TestGeneratePasswordContractViolation(t *testing.T) {
	g := NewWithSource(SourceFunc(func(max int) (int, error) { return max, nil }))

	_, err := g.GeneratePassword(DefaultPasswordOptions())
	var violation *ContractViolationError
	assert.True(t, errors.As(err, &violation))
}

func TestPackageGeneratePassword(t *testing.T) {
	password, err := GeneratePassword(DefaultPasswordOptions())
	require.NoError(t, err)
	assert.Len(t, password, DefaultPasswordLength)
}

func TestRepeatsNeighbour(t *testing.T) {
	password := []byte("abc")
	assert.True(t, repeatsNeighbour(password, 1, 'a'))
	assert.True(t, repeatsNeighbour(password, 1, 'c'))
	assert.False(t, repeatsNeighbour(password, 1, 'b'))
	assert.False(t, repeatsNeighbour(password, 0, 'c'))
	assert.True(t, repeatsNeighbour(password, 2, 'b'))
}
