package inspector

import (
	"strings"

	"github.com/maniartech/idgen/internal/generator"
)

const cuidV2Length = 24

// cuidV1Shape accepts anything starting with 'c' that is at least as long
// as a CUID v1. The body is not checked.
func cuidV1Shape(candidate string) (*generator.ParseResult, bool) {
	if !strings.HasPrefix(candidate, "c") || len(candidate) < generator.MinCUIDLength {
		return nil, false
	}
	return &generator.ParseResult{Version: "v1", IDLength: len(candidate)}, true
}

// cuidV2Shape accepts exactly 24 lowercase ASCII letters or digits. Hex-only
// strings of this length are claimed earlier by the ObjectId recognizer.
func cuidV2Shape(candidate string) (*generator.ParseResult, bool) {
	if len(candidate) != cuidV2Length {
		return nil, false
	}
	for i := 0; i < len(candidate); i++ {
		c := candidate[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return nil, false
		}
	}
	return &generator.ParseResult{Version: "v2", IDLength: len(candidate)}, true
}
