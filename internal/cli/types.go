package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/maniartech/idgen/internal/id"
)

// idType is a generatable type as named on the command line, before the
// UUID rendering is applied.
type idType struct {
	family      id.Family
	uuidVersion id.UUIDVersion
	cuidVersion id.CUIDVersion
}

var idTypes = map[string]idType{
	"uuid1":     {family: id.FamilyUUID, uuidVersion: id.UUIDv1},
	"u1":        {family: id.FamilyUUID, uuidVersion: id.UUIDv1},
	"uuid3":     {family: id.FamilyUUID, uuidVersion: id.UUIDv3},
	"u3":        {family: id.FamilyUUID, uuidVersion: id.UUIDv3},
	"uuid4":     {family: id.FamilyUUID, uuidVersion: id.UUIDv4},
	"u4":        {family: id.FamilyUUID, uuidVersion: id.UUIDv4},
	"uuid5":     {family: id.FamilyUUID, uuidVersion: id.UUIDv5},
	"u5":        {family: id.FamilyUUID, uuidVersion: id.UUIDv5},
	"nanoid":    {family: id.FamilyNanoID},
	"nano":      {family: id.FamilyNanoID},
	"cuid1":     {family: id.FamilyCUID, cuidVersion: id.CUIDv1},
	"c1":        {family: id.FamilyCUID, cuidVersion: id.CUIDv1},
	"cuid2":     {family: id.FamilyCUID, cuidVersion: id.CUIDv2},
	"c2":        {family: id.FamilyCUID, cuidVersion: id.CUIDv2},
	"ulid":      {family: id.FamilyULID},
	"objectid":  {family: id.FamilyObjectID},
	"oid":       {family: id.FamilyObjectID},
	"ksuid":     {family: id.FamilyKSUID},
	"ks":        {family: id.FamilyKSUID},
	"snowflake": {family: id.FamilySnowflake},
	"sf":        {family: id.FamilySnowflake},
}

var renderings = map[string]id.Rendering{
	"hyphenated": id.Hyphenated,
	"h":          id.Hyphenated,
	"simple":     id.Simple,
	"s":          id.Simple,
	"urn":        id.URN,
	"u":          id.URN,
}

// parseFormat builds the Format for a --type and --format pair.
func parseFormat(typeName, renderingName string) (id.Format, error) {
	t, ok := idTypes[strings.ToLower(typeName)]
	if !ok {
		return id.Format{}, fmt.Errorf("invalid type %q, expected one of: %s", typeName, names(idTypes))
	}
	r, ok := renderings[strings.ToLower(renderingName)]
	if !ok {
		return id.Format{}, fmt.Errorf("invalid format %q, expected one of: %s", renderingName, names(renderings))
	}

	switch t.family {
	case id.FamilyUUID:
		return id.UUID(r, t.uuidVersion), nil
	case id.FamilyNanoID:
		return id.NanoID(), nil
	case id.FamilyCUID:
		return id.CUID(t.cuidVersion), nil
	case id.FamilyULID:
		return id.ULID(), nil
	case id.FamilyObjectID:
		return id.ObjectID(), nil
	case id.FamilyKSUID:
		return id.KSUID(), nil
	default:
		return id.Snowflake(), nil
	}
}

func names[V any](m map[string]V) string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
