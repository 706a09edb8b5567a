// Package inspector guesses which identifier scheme produced a string.
//
// Several schemes share lengths and alphabets (a 24-char hex string is both a
// valid ObjectID and a plausible CUID v2), so recognizers run in a fixed
// priority order and the first match wins. There is no scoring.
package inspector

import (
	"time"

	"github.com/maniartech/idgen/internal/generator"
)

// Type tags reported in Result.IDType.
const (
	TypeUUID     = "UUID"
	TypeULID     = "ULID"
	TypeObjectID = "ObjectId"
	TypeCUID     = "CUID"
	TypeNanoID   = "NanoID"
	TypeUnknown  = "Unknown"
)

// Result is the outcome of one inspection. Empty optional fields are
// omitted from JSON.
type Result struct {
	Valid     bool   `json:"valid"`
	IDType    string `json:"id_type"`
	Version   string `json:"version,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Variant   string `json:"variant,omitempty"`
}

// recognizer pairs a type tag with the parser that accepts it.
type recognizer struct {
	idType string
	parse  func(candidate string) (*generator.ParseResult, bool)
}

// Inspector classifies identifiers. The zero value is not usable; call New.
type Inspector struct {
	recognizers []recognizer
}

// New returns an Inspector with the standard recognizer order:
// UUID, ULID, ObjectId, CUID v1, CUID v2, NanoID.
func New() *Inspector {
	nanoid, err := generator.NewNanoIDGenerator(generator.DefaultNanoIDSize, generator.DefaultNanoIDAlphabet)
	if err != nil {
		// constant arguments
		panic(err)
	}

	return &Inspector{
		recognizers: []recognizer{
			{TypeUUID, fromParser(generator.ParseUUID)},
			{TypeULID, fromParser(generator.NewULIDGenerator().Parse)},
			{TypeObjectID, fromParser(generator.NewObjectIDGenerator().Parse)},
			{TypeCUID, cuidV1Shape},
			{TypeCUID, cuidV2Shape},
			{TypeNanoID, fromValidator(nanoid)},
		},
	}
}

// Inspect runs the recognizers in order and reports the first match.
// It never fails: an unrecognized string yields Valid=false, IDType=Unknown.
func (in *Inspector) Inspect(candidate string) Result {
	for _, r := range in.recognizers {
		res, ok := r.parse(candidate)
		if !ok {
			continue
		}
		out := Result{
			Valid:   true,
			IDType:  r.idType,
			Version: res.Version,
			Variant: res.Variant,
		}
		if res.HasTime() {
			out.Timestamp = res.Time.UTC().Format(time.RFC3339Nano)
		}
		return out
	}
	return Result{Valid: false, IDType: TypeUnknown}
}

var std = New()

// Inspect classifies candidate with the standard recognizer order.
func Inspect(candidate string) Result {
	return std.Inspect(candidate)
}

type validator interface {
	Validate(id string) (bool, string)
}

func fromParser(parse func(string) (*generator.ParseResult, error)) func(string) (*generator.ParseResult, bool) {
	return func(candidate string) (*generator.ParseResult, bool) {
		res, err := parse(candidate)
		if err != nil {
			return nil, false
		}
		return res, true
	}
}

func fromValidator(v validator) func(string) (*generator.ParseResult, bool) {
	return func(candidate string) (*generator.ParseResult, bool) {
		if ok, _ := v.Validate(candidate); !ok {
			return nil, false
		}
		return &generator.ParseResult{IDLength: len(candidate)}, true
	}
}
