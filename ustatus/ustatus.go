// Package ustatus defines the error-kind vocabulary shared by every
// package in this module, mirroring the teacher's EncodingError shape
// (a typed error with an optional wrapped cause and source context) but
// centralized the way a single UErrorCode enum is shared across an ICU-like
// library's subsystems.
package ustatus

import "fmt"

// Kind classifies a failure the way spec.md's error-kind taxonomy does.
type Kind int

const (
	// InvalidArgument: a caller-supplied pointer is nil, a length is
	// negative, or a code point is out of range where that is disallowed.
	InvalidArgument Kind = iota + 1
	// BufferOverflow: an output buffer is too small. RequiredLength on the
	// *Error carries the length the caller should retry with.
	BufferOverflow
	// InvalidFormat: a loaded data image has the wrong magic, wrong format
	// version, or inconsistent internal lengths.
	InvalidFormat
	// IndexOutOfBounds: a trie build exceeded its configured size limit, or
	// a serialized image addresses outside itself.
	IndexOutOfBounds
	// MemoryAllocation: an allocation failed during trie build.
	MemoryAllocation
	// MissingResource: a requested resource is not present in the data.
	MissingResource
	// UsingDefault: non-fatal; the operation used the ASCII fallback table
	// because no data was loaded.
	UsingDefault
	// AmbiguousAlias, Truncated, Illegal are reserved for external
	// collaborators (converters, locale services) that share this enum;
	// the core itself never raises them.
	AmbiguousAlias
	Truncated
	Illegal
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case BufferOverflow:
		return "BufferOverflow"
	case InvalidFormat:
		return "InvalidFormat"
	case IndexOutOfBounds:
		return "IndexOutOfBounds"
	case MemoryAllocation:
		return "MemoryAllocation"
	case MissingResource:
		return "MissingResource"
	case UsingDefault:
		return "UsingDefault"
	case AmbiguousAlias:
		return "AmbiguousAlias"
	case Truncated:
		return "Truncated"
	case Illegal:
		return "Illegal"
	default:
		return "Unknown"
	}
}

// Error is the error type every package in this module returns. It carries
// enough context to explain a failure without a caller needing to inspect
// the Kind by string comparison.
type Error struct {
	Kind           Kind
	Message        string
	Wrapped        error
	RequiredLength int // valid when Kind == BufferOverflow
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// New creates an *Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an *Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an *Error that carries an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Wrapped: cause}
}

// BufferTooSmall builds the specific BufferOverflow error shape spec.md
// §4.5.7/§7 describes: the caller is expected to retry with RequiredLength.
func BufferTooSmall(required int) *Error {
	return &Error{
		Kind:           BufferOverflow,
		Message:        "output buffer too small",
		RequiredLength: required,
	}
}

// Is reports whether err is a *Error of the given kind, the way callers
// branch on spec.md's error kinds without needing type assertions at every
// call site.
func Is(err error, kind Kind) bool {
	var e *Error
	if as, ok := err.(*Error); ok {
		e = as
	} else {
		return false
	}
	return e.Kind == kind
}
