// Package generator produces random passwords and passphrases from a secure random source.
//
// Every random draw made while producing a value goes through the single Source held by the
// Generator, so a replayed Source reproduces the output exactly.
package generator

// Generator produces passwords and passphrases, it holds no state besides its random source
type Generator struct {
	source Source
}

// New returns a Generator backed by crypto/rand
func New() (*Generator, error) {
	source, err := NewCryptoSource()
	if err != nil {
		return nil, err
	}

	return &Generator{source: source}, nil
}

// NewWithSource returns a Generator drawing from the given source, every value it hands
// back is checked to be in range
func NewWithSource(source Source) *Generator {
	return &Generator{source: checkedSource{source: source}}
}

// intn is the only place the generator draws randomness
func (g *Generator) intn(max int) (int, error) {
	return g.source.Intn(max)
}

// GeneratePassword generates a password using crypto/rand
func GeneratePassword(opts PasswordOptions) (string, error) {
	g, err := New()
	if err != nil {
		return "", err
	}

	return g.GeneratePassword(opts)
}

// GeneratePassphrase generates a passphrase using crypto/rand
func GeneratePassphrase(opts PassphraseOptions) (string, error) {
	g, err := New()
	if err != nil {
		return "", err
	}

	return g.GeneratePassphrase(opts)
}
