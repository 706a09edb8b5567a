package generator

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/segmentio/ksuid"
)

// KSUIDLength is the length of a base62 encoded KSUID.
const KSUIDLength = 27

const base62Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// KSUIDGenerator generates KSUID (K-Sortable Unique IDentifier) IDs.
type KSUIDGenerator struct{}

// NewKSUIDGenerator creates a new KSUIDGenerator.
func NewKSUIDGenerator() *KSUIDGenerator {
	return &KSUIDGenerator{}
}

func (g *KSUIDGenerator) Generate() (string, error) {
	id, err := ksuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate KSUID: %w", err)
	}
	return id.String(), nil
}

func (g *KSUIDGenerator) Validate(id string) (bool, string) {
	if len(id) != KSUIDLength {
		return false, fmt.Sprintf("expected length %d, got %d", KSUIDLength, len(id))
	}
	// ksuid.Parse decodes any byte, so the alphabet is checked first.
	if i := strings.IndexFunc(id, notBase62); i >= 0 {
		return false, fmt.Sprintf("character '%c' is not base62", id[i])
	}
	_, err := ksuid.Parse(id)
	if err != nil {
		return false, fmt.Sprintf("invalid KSUID format: %v", err)
	}
	return true, ""
}

func (g *KSUIDGenerator) Parse(id string) (*ParseResult, error) {
	if valid, reason := g.Validate(id); !valid {
		return nil, fmt.Errorf("invalid KSUID: %s", reason)
	}
	parsed, err := ksuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid KSUID format: %w", err)
	}

	return &ParseResult{
		Time:          parsed.Time().UTC(),
		RandomPayload: hex.EncodeToString(parsed.Payload()),
	}, nil
}

func notBase62(r rune) bool {
	return !strings.ContainsRune(base62Alphabet, r)
}
