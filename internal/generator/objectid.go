package generator

import (
	"encoding/hex"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDLength is the length of a hex encoded ObjectID.
const ObjectIDLength = 24

// ObjectIDGenerator generates MongoDB ObjectIDs: a 4-byte big-endian Unix
// timestamp, a 5-byte process-unique value and a 3-byte counter.
type ObjectIDGenerator struct{}

// NewObjectIDGenerator creates a new ObjectIDGenerator.
func NewObjectIDGenerator() *ObjectIDGenerator {
	return &ObjectIDGenerator{}
}

func (g *ObjectIDGenerator) Generate() (string, error) {
	return primitive.NewObjectID().Hex(), nil
}

func (g *ObjectIDGenerator) Validate(id string) (bool, string) {
	if len(id) != ObjectIDLength {
		return false, fmt.Sprintf("expected length %d, got %d", ObjectIDLength, len(id))
	}
	if _, err := hex.DecodeString(id); err != nil {
		return false, fmt.Sprintf("invalid ObjectID format: %v", err)
	}
	return true, ""
}

func (g *ObjectIDGenerator) Parse(id string) (*ParseResult, error) {
	if valid, reason := g.Validate(id); !valid {
		return nil, fmt.Errorf("invalid ObjectID: %s", reason)
	}
	oid, err := primitive.ObjectIDFromHex(strings.ToLower(id))
	if err != nil {
		return nil, fmt.Errorf("invalid ObjectID format: %w", err)
	}

	return &ParseResult{
		Time:          oid.Timestamp().UTC(),
		RandomPayload: hex.EncodeToString(oid[4:]),
	}, nil
}
