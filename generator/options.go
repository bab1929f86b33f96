package generator

import (
	"unicode/utf8"
)

const (
	// MinPasswordLength is the shortest password which will be produced
	MinPasswordLength = 1
	// MaxPasswordLength is the longest password which will be produced
	MaxPasswordLength = 128
	// DefaultPasswordLength is used when no length is given
	DefaultPasswordLength = 16

	// MinWords is the fewest words in a passphrase
	MinWords = 3
	// MaxWords is the most words in a passphrase
	MaxWords = 12
	// DefaultWords is used when no word count is given
	DefaultWords = 4
	// DefaultDelimiter joins the passphrase words when none is given
	DefaultDelimiter = "-"

	// maxDelimiterRunes is how much of a delimiter is kept
	maxDelimiterRunes = 2
)

// PasswordOptions controls password generation
type PasswordOptions struct {
	// the number of characters, zero picks the default
	Length int `json:"length" yaml:"length"`
	// include lower case letters
	Lower bool `json:"lower" yaml:"lower"`
	// include upper case letters
	Upper bool `json:"upper" yaml:"upper"`
	// include digits
	Digits bool `json:"digits" yaml:"digits"`
	// include symbols
	Symbols bool `json:"symbols" yaml:"symbols"`
	// drop the look-alike characters from every set
	ExcludeSimilar bool `json:"excludeSimilar" yaml:"excludeSimilar"`
	// drop the ambiguous symbols
	NoAmbiguous bool `json:"noAmbiguous" yaml:"noAmbiguous"`
	// never place the same character twice in a row
	NoRepeat bool `json:"noRepeat" yaml:"noRepeat"`
}

// DefaultPasswordOptions returns 16 characters of letters and digits
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length: DefaultPasswordLength,
		Lower:  true,
		Upper:  true,
		Digits: true,
	}
}

// PassphraseOptions controls passphrase generation
type PassphraseOptions struct {
	// the number of words, zero picks the default
	WordCount int `json:"wordCount" yaml:"wordCount"`
	// the separator between words, only the first two characters are used
	Delimiter string `json:"delimiter" yaml:"delimiter"`
	// upper case the first letter of each word
	CapitalizeWords bool `json:"capitalizeWords" yaml:"capitalizeWords"`
	// replace one word with a single digit
	IncludeNumberWord bool `json:"includeNumberWord" yaml:"includeNumberWord"`
	// replace one word with a single symbol
	IncludeSymbolWord bool `json:"includeSymbolWord" yaml:"includeSymbolWord"`
	// drop look-alikes from the injected digit and symbol
	ExcludeSimilar bool `json:"excludeSimilar" yaml:"excludeSimilar"`
	// drop ambiguous symbols from the injected symbol
	NoAmbiguous bool `json:"noAmbiguous" yaml:"noAmbiguous"`
	// an alternative word list, nil uses the built in one
	Words []string `json:"-" yaml:"-"`
}

// DefaultPassphraseOptions returns four words joined by a hyphen
func DefaultPassphraseOptions() PassphraseOptions {
	return PassphraseOptions{
		WordCount: DefaultWords,
		Delimiter: DefaultDelimiter,
	}
}

// normalizeCount clamps value into [min, max], a zero value means unset and gives fallback
func normalizeCount(value, min, max, fallback int) int {
	if value == 0 {
		return fallback
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}

	return value
}

// normalizeDelimiter keeps the first two characters, or the default when empty or not utf-8
func normalizeDelimiter(delimiter string) string {
	if delimiter == "" || !utf8.ValidString(delimiter) {
		return DefaultDelimiter
	}
	if utf8.RuneCountInString(delimiter) <= maxDelimiterRunes {
		return delimiter
	}
	runes := []rune(delimiter)

	return string(runes[:maxDelimiterRunes])
}
