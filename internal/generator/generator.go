package generator

import "time"

// Generator defines the interface for ID generation, validation, and parsing.
type Generator interface {
	Generate() (string, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// ParseResult holds the parsed fields from an ID.
type ParseResult struct {
	Time          time.Time // zero when the ID carries no timestamp
	Version       string    // UUID: RFC name ("Random"); CUID: "v1"/"v2"
	Variant       string    // UUID only ("RFC4122")
	MachineID     int64     // Snowflake only
	Sequence      int64     // Snowflake only
	RandomPayload string    // ULID/KSUID: hex-encoded random bytes
	IDLength      int       // NanoID/CUID: ID string length
	Alphabet      string    // NanoID: character set used
}

// HasTime reports whether a timestamp was decoded from the ID.
func (r *ParseResult) HasTime() bool {
	return !r.Time.IsZero()
}
