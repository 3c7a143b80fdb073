package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownCatalog is returned when content matches no supported catalog
// format.
var ErrUnknownCatalog = errors.New("catalog: unrecognized catalog format")

// ParseError reports a malformed catalog entry with its line number.
type ParseError struct {
	Line   int
	Reason string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog: line %d: %s", e.Line, e.Reason)
}

func parseErrorf(line int, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// IsParseError reports whether err is a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
