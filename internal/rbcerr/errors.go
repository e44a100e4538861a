// Package rbcerr defines the structured error kinds shared by the search
// core and the CLI boundary that translates them into exit codes.
package rbcerr

import "fmt"

// Kind classifies an Error for the purpose of exit-code mapping.
type Kind int

const (
	// ArgumentError means the CLI input was malformed or inconsistent;
	// diagnosed before any worker starts.
	ArgumentError Kind = iota
	// CryptoError means a validator's underlying primitive failed.
	CryptoError
	// ResourceError means an allocation or OS resource request failed.
	ResourceError
	// InternalError means partition/iterator math produced an
	// out-of-range result; indicates a bug, not bad input.
	InternalError
)

func (k Kind) String() string {
	switch k {
	case ArgumentError:
		return "argument"
	case CryptoError:
		return "crypto"
	case ResourceError:
		return "resource"
	case InternalError:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the structured error type returned across package boundaries
// whenever the CLI needs to distinguish exit-code 2 causes.
type Error struct {
	Kind    Kind
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("rbc_validator: [%s] %s: %s", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("rbc_validator: [%s] %s", e.Kind, e.Message)
}

func new(kind Kind, message string, details ...string) *Error {
	e := &Error{Kind: kind, Message: message}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

// Argument builds an ArgumentError with a fixed message.
func Argument(message string, details ...string) *Error {
	return new(ArgumentError, message, details...)
}

// Argumentf builds an ArgumentError with a formatted message.
func Argumentf(format string, args ...interface{}) *Error {
	return new(ArgumentError, fmt.Sprintf(format, args...))
}

// Crypto builds a CryptoError wrapping the underlying primitive failure.
func Crypto(message string, details ...string) *Error {
	return new(CryptoError, message, details...)
}

// Cryptof builds a CryptoError with a formatted message.
func Cryptof(format string, args ...interface{}) *Error {
	return new(CryptoError, fmt.Sprintf(format, args...))
}

// Resource builds a ResourceError.
func Resource(message string, details ...string) *Error {
	return new(ResourceError, message, details...)
}

// Internal builds an InternalError; reaching this indicates a bug.
func Internal(message string, details ...string) *Error {
	return new(InternalError, message, details...)
}

// Internalf builds an InternalError with a formatted message.
func Internalf(format string, args ...interface{}) *Error {
	return new(InternalError, fmt.Sprintf(format, args...))
}

// As reports whether err is an *Error and returns it.
func As(err error) (*Error, bool) {
	e, ok := err.(*Error)
	return e, ok
}

// ExitCode maps an error to the CLI's 0/1/2 exit-status convention.
// Found/NotFound have no associated error; only failures do, and they
// always map to 2 per spec.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 2
}
