package generator

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/lucsky/cuid"
)

// MinCUIDLength is the shortest string accepted as a CUID v1.
const MinCUIDLength = 25

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// CUIDGenerator generates CUID v1 IDs from a cryptographic random source.
type CUIDGenerator struct {
	mu     sync.Mutex
	random io.Reader
}

// NewCUIDGenerator creates a new CUIDGenerator reading entropy from random.
// A nil reader selects crypto/rand.
func NewCUIDGenerator(random io.Reader) *CUIDGenerator {
	if random == nil {
		random = rand.Reader
	}
	return &CUIDGenerator{random: random}
}

func (g *CUIDGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := cuid.NewCrypto(g.random)
	if err != nil {
		return "", fmt.Errorf("failed to generate CUID: %w", err)
	}
	return id, nil
}

func (g *CUIDGenerator) Validate(id string) (bool, string) {
	if len(id) < MinCUIDLength {
		return false, fmt.Sprintf("expected at least %d characters, got %d", MinCUIDLength, len(id))
	}
	if id[0] != 'c' {
		return false, "CUID must start with 'c'"
	}
	for _, c := range id {
		if !strings.ContainsRune(base36Alphabet, c) {
			return false, fmt.Sprintf("character '%c' is not lowercase base36", c)
		}
	}
	return true, ""
}

func (g *CUIDGenerator) Parse(id string) (*ParseResult, error) {
	valid, reason := g.Validate(id)
	if !valid {
		return nil, fmt.Errorf("invalid CUID: %s", reason)
	}

	return &ParseResult{
		Version:  "v1",
		IDLength: len(id),
	}, nil
}
