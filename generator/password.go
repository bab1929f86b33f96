package generator

import (
	"github.com/golang/glog"
)

// maxCoverageAttempts bounds the search for a slot to place a missing character set in
const maxCoverageAttempts = 200

// GeneratePassword returns a password of exactly the (normalized) requested length, drawn only from
// the enabled character sets and holding at least one character of each
func (g *Generator) GeneratePassword(opts PasswordOptions) (string, error) {
	length := normalizeCount(opts.Length, MinPasswordLength, MaxPasswordLength, DefaultPasswordLength)

	// step: work out the sets and the pool we are drawing from
	categories, err := BuildCategories(opts)
	if err != nil {
		return "", err
	}
	if len(categories) == 0 {
		return "", ErrNoCategoryEnabled
	}
	if length < len(categories) {
		return "", &LengthTooShortError{Length: length, Categories: len(categories)}
	}
	pool, err := Pool(categories)
	if err != nil {
		return "", err
	}

	// step: fill the password, a single character pool cannot avoid repeating itself
	password, err := g.fill(pool, length, opts.NoRepeat && len(pool) > 1)
	if err != nil {
		return "", err
	}

	// step: make sure every set made it in
	if err := g.ensureCoverage(password, categories, opts.NoRepeat); err != nil {
		return "", err
	}
	glog.V(10).Infof("generated a password, length: %d, sets: %d, pool: %d", length, len(categories), len(pool))

	return string(password), nil
}

// fill draws length characters from the pool left to right
func (g *Generator) fill(pool string, length int, noRepeat bool) ([]byte, error) {
	password := make([]byte, 0, length)
	for len(password) < length {
		index, err := g.intn(len(pool))
		if err != nil {
			return nil, err
		}
		candidate := pool[index]
		if noRepeat && len(password) > 0 && password[len(password)-1] == candidate {
			continue
		}
		password = append(password, candidate)
	}

	return password, nil
}

// ensureCoverage places a character from every set missing from the password. It tracks which set
// owns each position and how many positions each set holds, so the last character of a set is never
// overwritten while fixing another.
func (g *Generator) ensureCoverage(password []byte, categories []Category, noRepeat bool) error {
	owner := make([]int, len(password))
	counts := make([]int, len(categories))
	for i, c := range password {
		owner[i] = categoryOf(categories, c)
		if owner[i] >= 0 {
			counts[owner[i]]++
		}
	}

	for ci, category := range categories {
		if counts[ci] > 0 {
			continue
		}
		placed := false
		for attempt := 0; attempt < maxCoverageAttempts && !placed; attempt++ {
			position, err := g.intn(len(password))
			if err != nil {
				return err
			}
			index, err := g.intn(len(category.Chars))
			if err != nil {
				return err
			}
			candidate := category.Chars[index]

			current := owner[position]
			if current >= 0 && counts[current] <= 1 {
				continue
			}
			if noRepeat && repeatsNeighbour(password, position, candidate) {
				continue
			}
			password[position] = candidate
			if current >= 0 {
				counts[current]--
			}
			counts[ci]++
			owner[position] = ci
			placed = true
		}
		if !placed {
			glog.V(10).Infof("unable to place a character from the set: %s in %d attempts", category.Class, maxCoverageAttempts)
			return ErrCoverageUnsatisfiable
		}
	}

	return nil
}

// categoryOf returns the index of the category holding the character, or -1
func categoryOf(categories []Category, c byte) int {
	for i, x := range categories {
		for j := 0; j < len(x.Chars); j++ {
			if x.Chars[j] == c {
				return i
			}
		}
	}

	return -1
}

// repeatsNeighbour checks if the candidate matches the character either side of the position
func repeatsNeighbour(password []byte, position int, candidate byte) bool {
	if position > 0 && password[position-1] == candidate {
		return true
	}
	if position < len(password)-1 && password[position+1] == candidate {
		return true
	}

	return false
}
