package id

import "fmt"

// Family is the identifier scheme a Format produces.
type Family int

const (
	FamilyUUID Family = iota
	FamilyObjectID
	FamilyNanoID
	FamilyCUID
	FamilyULID
	FamilyKSUID
	FamilySnowflake
)

func (f Family) String() string {
	switch f {
	case FamilyUUID:
		return "uuid"
	case FamilyObjectID:
		return "objectid"
	case FamilyNanoID:
		return "nanoid"
	case FamilyCUID:
		return "cuid"
	case FamilyULID:
		return "ulid"
	case FamilyKSUID:
		return "ksuid"
	case FamilySnowflake:
		return "snowflake"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Rendering is the textual shape of a UUID.
type Rendering int

const (
	Hyphenated Rendering = iota // 8-4-4-4-12, 36 chars
	Simple                      // 32 hex chars
	URN                         // urn:uuid: + hyphenated, 45 chars
)

func (r Rendering) String() string {
	switch r {
	case Hyphenated:
		return "hyphenated"
	case Simple:
		return "simple"
	case URN:
		return "urn"
	default:
		return fmt.Sprintf("rendering(%d)", int(r))
	}
}

// UUIDVersion selects how a UUID's 128 bits are built.
type UUIDVersion int

const (
	UUIDv1 UUIDVersion = 1 // time + node
	UUIDv3 UUIDVersion = 3 // MD5(namespace, name)
	UUIDv4 UUIDVersion = 4 // random
	UUIDv5 UUIDVersion = 5 // SHA-1(namespace, name)
)

// NameBased reports whether the version hashes a namespace and name.
func (v UUIDVersion) NameBased() bool {
	return v == UUIDv3 || v == UUIDv5
}

// CUIDVersion selects the CUID algorithm.
type CUIDVersion int

const (
	CUIDv1 CUIDVersion = 1
	CUIDv2 CUIDVersion = 2
)

// Format describes what to generate. The zero value is a hyphenated UUID v4;
// build other values with the constructors below.
type Format struct {
	family      Family
	rendering   Rendering
	uuidVersion UUIDVersion
	cuidVersion CUIDVersion
}

// UUID returns a UUID format of the given version and rendering.
func UUID(rendering Rendering, version UUIDVersion) Format {
	return Format{family: FamilyUUID, rendering: rendering, uuidVersion: version}
}

// ObjectID returns the MongoDB ObjectID format.
func ObjectID() Format { return Format{family: FamilyObjectID} }

// NanoID returns the NanoID format. The length is supplied in Params.
func NanoID() Format { return Format{family: FamilyNanoID} }

// CUID returns a CUID format of the given version.
func CUID(version CUIDVersion) Format {
	return Format{family: FamilyCUID, cuidVersion: version}
}

// ULID returns the ULID format.
func ULID() Format { return Format{family: FamilyULID} }

// KSUID returns the KSUID format.
func KSUID() Format { return Format{family: FamilyKSUID} }

// Snowflake returns the Snowflake format.
func Snowflake() Format { return Format{family: FamilySnowflake} }

func (f Format) Family() Family { return f.family }

func (f Format) Rendering() Rendering { return f.rendering }

// UUIDVersion returns the UUID version, defaulting to v4 for the zero Format.
func (f Format) UUIDVersion() UUIDVersion {
	if f.uuidVersion == 0 {
		return UUIDv4
	}
	return f.uuidVersion
}

func (f Format) CUIDVersion() CUIDVersion { return f.cuidVersion }

func (f Format) String() string {
	switch f.family {
	case FamilyUUID:
		return fmt.Sprintf("uuid%d/%s", f.UUIDVersion(), f.rendering)
	case FamilyCUID:
		return fmt.Sprintf("cuid%d", f.cuidVersion)
	default:
		return f.family.String()
	}
}

// Params carries the inputs that only some formats need.
// Length applies to NanoID; Namespace and Name to UUID v3 and v5.
type Params struct {
	Length    *int
	Namespace *string
	Name      *string
}

// WithLength returns a copy of p with Length set.
func (p Params) WithLength(n int) Params {
	p.Length = &n
	return p
}

// WithNamespace returns a copy of p with Namespace set.
func (p Params) WithNamespace(ns string) Params {
	p.Namespace = &ns
	return p
}

// WithName returns a copy of p with Name set.
func (p Params) WithName(name string) Params {
	p.Name = &name
	return p
}
