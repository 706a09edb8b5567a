package cli

import (
	"fmt"
	"strings"
)

// Well-known namespaces from RFC 4122 appendix C.
var namespaceAliases = map[string]string{
	"DNS":  "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	"URL":  "6ba7b811-9dad-11d1-80b4-00c04fd430c8",
	"OID":  "6ba7b812-9dad-11d1-80b4-00c04fd430c8",
	"X500": "6ba7b814-9dad-11d1-80b4-00c04fd430c8",
}

// resolveNamespace expands a namespace alias. Other values pass through when
// they have the length of a simple or hyphenated UUID; the dispatcher does
// the real parse.
func resolveNamespace(ns string) (string, error) {
	if uuid, ok := namespaceAliases[strings.ToUpper(ns)]; ok {
		return uuid, nil
	}
	if len(ns) == 32 || len(ns) == 36 {
		return ns, nil
	}
	return "", fmt.Errorf("Invalid namespace '%s'. Use DNS, URL, OID, X500, or a valid UUID.", ns)
}
