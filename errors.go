package tracekit

import (
	"errors"
	"fmt"
)

// Common resolution and record errors
var (
	ErrNotOpen        = errors.New("file handle is not open")
	ErrTooShort       = errors.New("file too short for version field")
	ErrReadFailed     = errors.New("version field read failed")
	ErrUnknownVersion = errors.New("version not registered for any format")
	ErrBadByteOrder   = errors.New("invalid byte order")
	ErrBadHeader      = errors.New("malformed header block")
	ErrUnknownField   = errors.New("unknown header field")
	ErrUnknownFormat  = errors.New("format type not registered")
	ErrBadDefinition  = errors.New("invalid format definition")
	ErrReadOnly       = errors.New("record set is frozen")
	ErrNoData         = errors.New("record has no data loaded")
	ErrNotSupported   = errors.New("operation not supported")
)

// ResolveError records a resolution failure and the operation and file path
// that caused it
type ResolveError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *ResolveError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *ResolveError) Unwrap() error {
	return e.Err
}

// IsTooShort reports whether an error indicates a file shorter than the
// version probe window
func IsTooShort(err error) bool {
	return errors.Is(err, ErrTooShort)
}

// IsUnknownVersion reports whether an error indicates a version field that
// matched no registered format under either byte order
func IsUnknownVersion(err error) bool {
	return errors.Is(err, ErrUnknownVersion)
}

// IsNotOpen reports whether an error indicates a missing or unopened file
// handle
func IsNotOpen(err error) bool {
	return errors.Is(err, ErrNotOpen)
}
