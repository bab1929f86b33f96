package generator

import (
	"math"
)

// EstimatePasswordEntropy approximates the bits of entropy of a password as length * log2(pool)
func EstimatePasswordEntropy(opts PasswordOptions) (float64, error) {
	categories, err := BuildCategories(opts)
	if err != nil {
		return 0, err
	}
	if len(categories) == 0 {
		return 0, ErrNoCategoryEnabled
	}
	pool, err := Pool(categories)
	if err != nil {
		return 0, err
	}
	length := normalizeCount(opts.Length, MinPasswordLength, MaxPasswordLength, DefaultPasswordLength)

	return float64(length) * math.Log2(float64(len(pool))), nil
}

// EstimatePassphraseEntropy approximates the bits of entropy of a passphrase as words * log2(vocabulary);
// the injected digit and symbol are ignored
func EstimatePassphraseEntropy(opts PassphraseOptions) float64 {
	count := normalizeCount(opts.WordCount, MinWords, MaxWords, DefaultWords)
	size := len(opts.Words)
	if size == 0 {
		size = len(wordList)
	}

	return float64(count) * math.Log2(float64(size))
}
