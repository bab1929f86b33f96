package generator

import (
	"strings"
)

// Class names a character category
type Class string

const (
	// ClassLower is the ASCII lower case letters
	ClassLower Class = "lower"
	// ClassUpper is the ASCII upper case letters
	ClassUpper Class = "upper"
	// ClassDigits is the ASCII digits
	ClassDigits Class = "digits"
	// ClassSymbols is the printable ASCII punctuation
	ClassSymbols Class = "symbols"
)

const (
	// LowerChars is the base alphabet of ClassLower
	LowerChars = "abcdefghijklmnopqrstuvwxyz"
	// UpperChars is the base alphabet of ClassUpper
	UpperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// DigitChars is the base alphabet of ClassDigits
	DigitChars = "0123456789"
	// SymbolChars is the base alphabet of ClassSymbols
	SymbolChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// SimilarCharacters are easily confused with one another in common fonts
	SimilarCharacters = "0Oo1lI5S2Z8B"
	// AmbiguousSymbols are symbols which are awkward to read out or transcribe
	AmbiguousSymbols = "{}[]()/\\'\"`~,;:.<>"
)

// classOrder is the fixed order categories are emitted in
var classOrder = []Class{ClassLower, ClassUpper, ClassDigits, ClassSymbols}

// CharSet returns the base alphabet for the class, or an empty string when unknown
func CharSet(class Class) string {
	switch class {
	case ClassLower:
		return LowerChars
	case ClassUpper:
		return UpperChars
	case ClassDigits:
		return DigitChars
	case ClassSymbols:
		return SymbolChars
	}

	return ""
}

// Category is an enabled class together with its filtered alphabet for a single call
type Category struct {
	// the class of characters
	Class Class
	// the characters left after filtering
	Chars string
}

// BuildCategories returns one category per enabled class in the order lower, upper, digits, symbols
func BuildCategories(opts PasswordOptions) ([]Category, error) {
	enabled := map[Class]bool{
		ClassLower:   opts.Lower,
		ClassUpper:   opts.Upper,
		ClassDigits:  opts.Digits,
		ClassSymbols: opts.Symbols,
	}

	var list []Category
	for _, class := range classOrder {
		if !enabled[class] {
			continue
		}
		category, err := newCategory(class, CharSet(class), opts.ExcludeSimilar, opts.NoAmbiguous)
		if err != nil {
			return nil, err
		}
		list = append(list, category)
	}

	return list, nil
}

// Pool joins the alphabets of the categories
func Pool(categories []Category) (string, error) {
	var b strings.Builder
	for _, x := range categories {
		b.WriteString(x.Chars)
	}
	if b.Len() == 0 {
		return "", ErrNoPool
	}

	return b.String(), nil
}

// newCategory filters the base alphabet and refuses to hand back an empty one
func newCategory(class Class, base string, excludeSimilar, noAmbiguous bool) (Category, error) {
	chars := filterCharacters(class, base, excludeSimilar, noAmbiguous)
	if chars == "" {
		return Category{}, &EmptyCategoryError{Class: class}
	}

	return Category{Class: class, Chars: chars}, nil
}

// filterCharacters drops the look-alikes from every class and the ambiguous symbols from symbols
func filterCharacters(class Class, base string, excludeSimilar, noAmbiguous bool) string {
	return strings.Map(func(r rune) rune {
		if excludeSimilar && strings.ContainsRune(SimilarCharacters, r) {
			return -1
		}
		if noAmbiguous && class == ClassSymbols && strings.ContainsRune(AmbiguousSymbols, r) {
			return -1
		}
		return r
	}, base)
}
