package tracekit

import (
	"errors"
	"fmt"
)

// ReportID identifies one kind of structural violation. The values are
// stable API: callers branch on the identifier and show the message.
type ReportID string

const (
	ReportNotStruct    ReportID = "tracekit.check.notStruct"
	ReportEmpty        ReportID = "tracekit.check.emptySet"
	ReportMissingField ReportID = "tracekit.check.missingField"
	ReportDirBad       ReportID = "tracekit.check.dirBad"
	ReportNameBad      ReportID = "tracekit.check.nameBad"
	ReportEndianBad    ReportID = "tracekit.check.endianBad"
	ReportHasDataBad   ReportID = "tracekit.check.hasdataBad"
	ReportVersionBad   ReportID = "tracekit.check.versionBad"
	ReportHeaderBad    ReportID = "tracekit.check.headerBad"
	ReportNeedData     ReportID = "tracekit.check.needData"
)

// Report describes exactly one structural violation found in a record set.
// It implements the error interface so callers can raise it directly; a nil
// *Report means the set is valid.
type Report struct {
	// ID categorizes the violation for programmatic handling.
	ID ReportID

	// Message is the human-readable description.
	Message string
}

// Error implements the error interface
func (r *Report) Error() string {
	return fmt.Sprintf("%s: %s", r.ID, r.Message)
}

// NewReport creates a new Report
func NewReport(id ReportID, message string) *Report {
	return &Report{
		ID:      id,
		Message: message,
	}
}

func reportf(id ReportID, format string, args ...interface{}) *Report {
	return NewReport(id, fmt.Sprintf(format, args...))
}

// IsReport checks if an error is a validation Report
func IsReport(err error) bool {
	var rep *Report
	return errors.As(err, &rep)
}

// HasReportID checks if an error is a Report with the given identifier
func HasReportID(err error, id ReportID) bool {
	var rep *Report
	if errors.As(err, &rep) {
		return rep.ID == id
	}
	return false
}

// ReportOf returns the Report behind an error, or nil if the error does not
// carry one
func ReportOf(err error) *Report {
	var rep *Report
	if errors.As(err, &rep) {
		return rep
	}
	return nil
}
