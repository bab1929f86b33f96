package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/golang/glog"
)

// GeneratePassphrase returns the (normalized) requested number of words joined by the delimiter,
// optionally with one word swapped for a digit and another for a symbol
func (g *Generator) GeneratePassphrase(opts PassphraseOptions) (string, error) {
	count := normalizeCount(opts.WordCount, MinWords, MaxWords, DefaultWords)
	delimiter := normalizeDelimiter(opts.Delimiter)
	list := opts.Words
	if len(list) == 0 {
		list = wordList
	}

	// step: draw the words, the same word may come up more than once
	words := make([]string, count)
	for i := range words {
		index, err := g.intn(len(list))
		if err != nil {
			return "", err
		}
		words[i] = list[index]
		if opts.CapitalizeWords {
			words[i] = capitalize(words[i])
		}
	}

	occupied := make(map[int]bool, 2)
	if opts.IncludeNumberWord {
		digits := filterCharacters(ClassDigits, DigitChars, opts.ExcludeSimilar, opts.NoAmbiguous)
		if digits == "" {
			return "", ErrNoDigitsAvailable
		}
		slot, err := g.intn(len(words))
		if err != nil {
			return "", err
		}
		token, err := g.pick(digits)
		if err != nil {
			return "", err
		}
		words[slot] = token
		occupied[slot] = true
	}

	if opts.IncludeSymbolWord {
		symbols := filterCharacters(ClassSymbols, SymbolChars, opts.ExcludeSimilar, opts.NoAmbiguous)
		if symbols == "" {
			return "", ErrNoSymbolsAvailable
		}
		// step: find a free slot, when every slot is taken we overwrite
		var slot int
		for {
			var err error
			if slot, err = g.intn(len(words)); err != nil {
				return "", err
			}
			if !occupied[slot] || len(occupied) >= len(words) {
				break
			}
		}
		token, err := g.pick(symbols)
		if err != nil {
			return "", err
		}
		words[slot] = token
		occupied[slot] = true
	}
	glog.V(10).Infof("generated a passphrase, words: %d, vocabulary: %d", count, len(list))

	return strings.Join(words, delimiter), nil
}

// pick returns a single random character of chars as a string
func (g *Generator) pick(chars string) (string, error) {
	index, err := g.intn(len(chars))
	if err != nil {
		return "", err
	}

	return chars[index : index+1], nil
}

// capitalize upper cases the first code point of the word
func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}

	return string(unicode.ToUpper(r)) + word[size:]
}
