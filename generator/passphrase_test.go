package generator

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isWord(token string) bool {
	for _, w := range wordList {
		if strings.EqualFold(w, token) {
			return true
		}
	}
	return false
}

func TestGeneratePassphraseDelimiter(t *testing.T) {
	passphrase, err := newTestGenerator(t).GeneratePassphrase(PassphraseOptions{WordCount: 6, Delimiter: "."})
	require.NoError(t, err)

	parts := strings.Split(passphrase, ".")
	assert.Len(t, parts, 6)
	for _, x := range parts {
		assert.NotEmpty(t, x)
		assert.True(t, isWord(x), "%s is not in the word list", x)
	}
}

func TestGeneratePassphraseCapitalize(t *testing.T) {
	g := newTestGenerator(t)
	for i := 0; i < 20; i++ {
		passphrase, err := g.GeneratePassphrase(PassphraseOptions{WordCount: 4, CapitalizeWords: true, Delimiter: " "})
		require.NoError(t, err)

		parts := strings.Split(passphrase, " ")
		require.Len(t, parts, 4)
		for _, x := range parts {
			assert.True(t, unicode.IsUpper(rune(x[0])), "%s does not start with a capital", x)
		}
	}
}

func TestGeneratePassphraseNumberWord(t *testing.T) {
	g := newTestGenerator(t)
	for i := 0; i < 50; i++ {
		passphrase, err := g.GeneratePassphrase(PassphraseOptions{WordCount: 5, IncludeNumberWord: true,
			ExcludeSimilar: true, Delimiter: " "})
		require.NoError(t, err)

		parts := strings.Split(passphrase, " ")
		require.Len(t, parts, 5)
		var digits []string
		for _, x := range parts {
			if len(x) == 1 && strings.Contains(DigitChars, x) {
				digits = append(digits, x)
			}
		}
		require.Len(t, digits, 1, "expected a single digit token in %q", passphrase)
		assert.False(t, strings.Contains(SimilarCharacters, digits[0]))
	}
}

func TestGeneratePassphraseNumberAndSymbolWords(t *testing.T) {
	g := newTestGenerator(t)
	for i := 0; i < 50; i++ {
		passphrase, err := g.GeneratePassphrase(PassphraseOptions{WordCount: 6, IncludeNumberWord: true,
			IncludeSymbolWord: true, NoAmbiguous: true, Delimiter: " "})
		require.NoError(t, err)

		parts := strings.Split(passphrase, " ")
		require.Len(t, parts, 6)
		digit, symbol := -1, -1
		for j, x := range parts {
			switch {
			case len(x) == 1 && strings.Contains(DigitChars, x):
				assert.Equal(t, -1, digit, "more than one digit token in %q", passphrase)
				digit = j
			case len(x) == 1 && strings.Contains(SymbolChars, x):
				assert.Equal(t, -1, symbol, "more than one symbol token in %q", passphrase)
				assert.False(t, strings.Contains(AmbiguousSymbols, x))
				symbol = j
			default:
				assert.True(t, isWord(x))
			}
		}
		assert.NotEqual(t, -1, digit)
		assert.NotEqual(t, -1, symbol)
		assert.NotEqual(t, digit, symbol)
	}
}

func TestGeneratePassphraseReplayed(t *testing.T) {
	opts := PassphraseOptions{WordCount: 3, IncludeNumberWord: true, IncludeSymbolWord: true}

	// words 0 1 2, digit 3 in slot 1, symbol slot 1 is taken so slot 2 gets !
	passphrase, err := NewWithSource(replay(0, 0, 1, 2, 1, 3, 1, 2, 0)).GeneratePassphrase(opts)
	require.NoError(t, err)
	assert.Equal(t, "acorn-3-!", passphrase)
}

func TestGeneratePassphraseReplayedCapitalized(t *testing.T) {
	opts := PassphraseOptions{WordCount: 3, CapitalizeWords: true, Delimiter: "_"}

	passphrase, err := NewWithSource(replay(0, 79, 0, 40)).GeneratePassphrase(opts)
	require.NoError(t, err)
	assert.Equal(t, "Zenith_Acorn_Juniper", passphrase)
}

func TestGeneratePassphraseNormalizes(t *testing.T) {
	g := newTestGenerator(t)
	tests := []struct {
		opts      PassphraseOptions
		delimiter string
		words     int
	}{
		{opts: PassphraseOptions{}, delimiter: DefaultDelimiter, words: DefaultWords},
		{opts: PassphraseOptions{WordCount: 1, Delimiter: "::::"}, delimiter: "::", words: MinWords},
		{opts: PassphraseOptions{WordCount: 50, Delimiter: "+"}, delimiter: "+", words: MaxWords},
		{opts: PassphraseOptions{WordCount: -2, Delimiter: "·•·"}, delimiter: "·•", words: MinWords},
	}
	for _, c := range tests {
		passphrase, err := g.GeneratePassphrase(c.opts)
		require.NoError(t, err)
		assert.Len(t, strings.Split(passphrase, c.delimiter), c.words)
	}
}

func TestGeneratePassphraseAlternativeWords(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie"}

	passphrase, err := newTestGenerator(t).GeneratePassphrase(PassphraseOptions{WordCount: 5, Words: words})
	require.NoError(t, err)
	for _, x := range strings.Split(passphrase, DefaultDelimiter) {
		assert.Contains(t, words, x)
	}
}

func TestPackageGeneratePassphrase(t *testing.T) {
	passphrase, err := GeneratePassphrase(DefaultPassphraseOptions())
	require.NoError(t, err)
	assert.Len(t, strings.Split(passphrase, DefaultDelimiter), DefaultWords)
}

func TestWordList(t *testing.T) {
	list := WordList()
	assert.True(t, len(list) >= 60)
	for _, x := range list {
		assert.Equal(t, strings.ToLower(x), x)
	}

	list[0] = "changed"
	assert.Equal(t, "acorn", WordList()[0])
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Acorn", capitalize("acorn"))
	assert.Equal(t, "Élan", capitalize("élan"))
	assert.Equal(t, "", capitalize(""))
}
