package generator

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// Source yields uniformly distributed integers in [0, max)
type Source interface {
	Intn(max int) (int, error)
}

// SourceFunc adapts a plain function to the Source interface
type SourceFunc func(max int) (int, error)

// Intn calls f(max)
func (f SourceFunc) Intn(max int) (int, error) {
	return f(max)
}

// errUnavailable is decided once, when the package is loaded
var errUnavailable = probe(rand.Reader)

// probe checks the reader can actually hand out random bytes
func probe(r io.Reader) error {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	return nil
}

// cryptoSource draws 32 bit values from a secure reader and rejects the biased tail
type cryptoSource struct {
	reader io.Reader
}

// NewCryptoSource returns the default Source, backed by crypto/rand
func NewCryptoSource() (Source, error) {
	if errUnavailable != nil {
		return nil, errUnavailable
	}

	return &cryptoSource{reader: rand.Reader}, nil
}

// Intn returns a value in [0, max) without modulo bias
func (c *cryptoSource) Intn(max int) (int, error) {
	if max <= 0 || uint64(max) > 1<<32 {
		return 0, fmt.Errorf("%w, got: %d", ErrConfiguration, max)
	}
	// anything at or above upperBound would favour the low residues
	upperBound := (1 << 32) / uint64(max) * uint64(max)

	var buf [4]byte
	for {
		if _, err := io.ReadFull(c.reader, buf[:]); err != nil {
			return 0, fmt.Errorf("%w: %s", ErrUnavailable, err)
		}
		value := uint64(binary.BigEndian.Uint32(buf[:]))
		if value < upperBound {
			return int(value % uint64(max)), nil
		}
	}
}

// checkedSource holds an injected Source to its contract
type checkedSource struct {
	source Source
}

func (c checkedSource) Intn(max int) (int, error) {
	if max <= 0 {
		return 0, fmt.Errorf("%w, got: %d", ErrConfiguration, max)
	}
	value, err := c.source.Intn(max)
	if err != nil {
		return 0, err
	}
	if value < 0 || value >= max {
		return 0, &ContractViolationError{Max: max, Value: value}
	}

	return value, nil
}
