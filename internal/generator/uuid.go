package generator

import (
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
)

// DefaultNodeID is the placeholder node used for time-based UUIDs.
// It does not identify the host and makes no uniqueness guarantee across machines.
const DefaultNodeID = "01:02:03:04:05:06"

var maxUUID = uuid.UUID{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// UUIDGenerator generates RFC 4122 UUIDs (v1, v3, v4, v5).
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator whose v1 UUIDs carry nodeID.
// nodeID must be a 48-bit MAC address such as "01:02:03:04:05:06".
func NewUUIDGenerator(nodeID string) (*UUIDGenerator, error) {
	mac, err := net.ParseMAC(nodeID)
	if err != nil {
		return nil, fmt.Errorf("invalid uuid node id %q: %w", nodeID, err)
	}
	if len(mac) != 6 {
		return nil, fmt.Errorf("uuid node id must be 6 bytes, got %d", len(mac))
	}
	// google/uuid keeps the node id as package state; every generator
	// in the process shares the last one set.
	if !uuid.SetNodeID(mac) {
		return nil, fmt.Errorf("failed to set uuid node id %q", nodeID)
	}
	return &UUIDGenerator{}, nil
}

// NewV1 returns a time-based UUID.
func (g *UUIDGenerator) NewV1() (uuid.UUID, error) {
	id, err := uuid.NewUUID()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate UUID v1: %w", err)
	}
	return id, nil
}

// NewV3 returns the MD5 name-based UUID of name within namespace.
func (g *UUIDGenerator) NewV3(namespace uuid.UUID, name string) uuid.UUID {
	return uuid.NewMD5(namespace, []byte(name))
}

// NewV4 returns a random UUID.
func (g *UUIDGenerator) NewV4() (uuid.UUID, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate UUID v4: %w", err)
	}
	return id, nil
}

// NewV5 returns the SHA-1 name-based UUID of name within namespace.
func (g *UUIDGenerator) NewV5(namespace uuid.UUID, name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(name))
}

// Generate returns a hyphenated random UUID.
func (g *UUIDGenerator) Generate() (string, error) {
	id, err := g.NewV4()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (g *UUIDGenerator) Validate(id string) (bool, string) {
	if _, err := uuid.Parse(id); err != nil {
		return false, fmt.Sprintf("invalid UUID format: %v", err)
	}
	return true, ""
}

func (g *UUIDGenerator) Parse(id string) (*ParseResult, error) {
	return ParseUUID(id)
}

// ParseUUID parses any UUID rendering and reports its version, variant and,
// for version 1, its embedded timestamp.
func ParseUUID(id string) (*ParseResult, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid UUID format: %w", err)
	}

	result := &ParseResult{
		Version: VersionName(parsed),
		Variant: VariantName(parsed.Variant()),
	}
	if parsed.Version() == 1 {
		sec, nsec := parsed.Time().UnixTime()
		result.Time = time.Unix(sec, nsec).UTC()
	}
	return result, nil
}

// VersionName returns the RFC 4122/9562 name of the UUID's version, or ""
// when the version number is not assigned.
func VersionName(id uuid.UUID) string {
	switch id.Version() {
	case 0:
		if id == uuid.Nil {
			return "Nil"
		}
	case 1:
		return "Mac"
	case 2:
		return "Dce"
	case 3:
		return "Md5"
	case 4:
		return "Random"
	case 5:
		return "Sha1"
	case 6:
		return "SortMac"
	case 7:
		return "SortRand"
	case 8:
		return "Custom"
	case 15:
		if id == maxUUID {
			return "Max"
		}
	}
	return ""
}

// VariantName returns the name of a UUID variant.
func VariantName(v uuid.Variant) string {
	switch v {
	case uuid.RFC4122:
		return "RFC4122"
	case uuid.Reserved:
		return "NCS"
	case uuid.Microsoft:
		return "Microsoft"
	case uuid.Future:
		return "Future"
	default:
		return "Invalid"
	}
}
