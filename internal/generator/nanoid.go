package generator

import (
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	DefaultNanoIDSize     = 21
	DefaultNanoIDAlphabet = "_-0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NanoIDGenerator generates NanoID identifiers from a fixed alphabet.
// size is the length used by Generate and Validate; GenerateSize and
// ValidateSize take it per call.
type NanoIDGenerator struct {
	size     int
	alphabet string
}

// NewNanoIDGenerator creates a new NanoIDGenerator.
// size must not be negative. alphabet must have between 2 and 255 characters.
func NewNanoIDGenerator(size int, alphabet string) (*NanoIDGenerator, error) {
	if size < 0 {
		return nil, fmt.Errorf("nanoid size must not be negative, got %d", size)
	}
	if len(alphabet) < 2 || len(alphabet) > 255 {
		return nil, fmt.Errorf("nanoid alphabet must have between 2 and 255 characters, got %d", len(alphabet))
	}
	return &NanoIDGenerator{
		size:     size,
		alphabet: alphabet,
	}, nil
}

func (g *NanoIDGenerator) Generate() (string, error) {
	return g.GenerateSize(g.size)
}

// GenerateSize returns a NanoID of exactly size characters.
func (g *NanoIDGenerator) GenerateSize(size int) (string, error) {
	if size < 0 {
		return "", fmt.Errorf("nanoid size must not be negative, got %d", size)
	}
	if size == 0 {
		return "", nil
	}
	id, err := gonanoid.Generate(g.alphabet, size)
	if err != nil {
		return "", fmt.Errorf("failed to generate NanoID: %w", err)
	}
	return id, nil
}

func (g *NanoIDGenerator) Validate(id string) (bool, string) {
	return g.ValidateSize(id, g.size)
}

// ValidateSize checks that id has exactly size characters from the alphabet.
func (g *NanoIDGenerator) ValidateSize(id string, size int) (bool, string) {
	if len(id) != size {
		return false, fmt.Sprintf("expected length %d, got %d", size, len(id))
	}
	for _, c := range id {
		if !strings.ContainsRune(g.alphabet, c) {
			return false, fmt.Sprintf("character '%c' not in alphabet", c)
		}
	}
	return true, ""
}

func (g *NanoIDGenerator) Parse(id string) (*ParseResult, error) {
	valid, reason := g.Validate(id)
	if !valid {
		return nil, fmt.Errorf("invalid NanoID: %s", reason)
	}

	return &ParseResult{
		IDLength: len(id),
		Alphabet: g.alphabet,
	}, nil
}
