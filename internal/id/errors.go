package id

import "fmt"

// ErrorKind classifies a generation failure.
type ErrorKind int

const (
	KindMissingNamespace ErrorKind = iota + 1
	KindMissingName
	KindInvalidNamespace
	KindMissingLength
	KindInvalidLength
	KindInvalidCount
	KindCuid
	KindEntropy
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingNamespace:
		return "MissingNamespace"
	case KindMissingName:
		return "MissingName"
	case KindInvalidNamespace:
		return "InvalidNamespace"
	case KindMissingLength:
		return "MissingLength"
	case KindInvalidLength:
		return "InvalidLength"
	case KindInvalidCount:
		return "InvalidCount"
	case KindCuid:
		return "CuidError"
	case KindEntropy:
		return "EntropyError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// IsUsage reports whether the kind is caused by caller input rather than
// by the entropy or clock source.
func (k ErrorKind) IsUsage() bool {
	switch k {
	case KindCuid, KindEntropy:
		return false
	default:
		return true
	}
}

// Error is returned by every Dispatcher operation that fails.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so the sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrMissingNamespace = &Error{Kind: KindMissingNamespace, Msg: "missing namespace"}
	ErrMissingName      = &Error{Kind: KindMissingName, Msg: "missing name"}
	ErrInvalidNamespace = &Error{Kind: KindInvalidNamespace, Msg: "invalid namespace"}
	ErrMissingLength    = &Error{Kind: KindMissingLength, Msg: "missing length"}
	ErrInvalidLength    = &Error{Kind: KindInvalidLength, Msg: "invalid length"}
	ErrInvalidCount     = &Error{Kind: KindInvalidCount, Msg: "invalid count"}
	ErrCuid             = &Error{Kind: KindCuid, Msg: "cuid generation failed"}
	ErrEntropy          = &Error{Kind: KindEntropy, Msg: "entropy source failed"}
)

const namespaceHelp = "Must be a valid UUID like 6ba7b810-9dad-11d1-80b4-00c04fd430c8.\n" +
	"Common namespaces:\n" +
	"  - DNS: 6ba7b810-9dad-11d1-80b4-00c04fd430c8\n" +
	"  - URL: 6ba7b811-9dad-11d1-80b4-00c04fd430c8"

func missingNamespace(v UUIDVersion) *Error {
	return &Error{
		Kind: KindMissingNamespace,
		Msg:  fmt.Sprintf("UUID v%d requires --namespace parameter. Example: --namespace 6ba7b810-9dad-11d1-80b4-00c04fd430c8", v),
	}
}

func missingName(v UUIDVersion) *Error {
	return &Error{
		Kind: KindMissingName,
		Msg:  fmt.Sprintf("UUID v%d requires --name parameter. Example: --name example.com", v),
	}
}

func invalidNamespace(ns string) *Error {
	return &Error{
		Kind: KindInvalidNamespace,
		Msg:  fmt.Sprintf("Invalid namespace UUID format %q. %s", ns, namespaceHelp),
	}
}

func systemError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}
