package tracekit

import (
	"sort"
)

// Attribute names a record is expected to carry. The mandatory set is what
// Check always requires; dep marks the optional data-dependency attribute
// callers can require on top.
var (
	mandatoryAttrs = []string{
		"byteOrder",
		"formatType",
		"hasData",
		"header",
		"location",
		"name",
		"version",
	}

	knownAttrs = map[string]bool{
		"byteOrder":  true,
		"dep":        true,
		"formatType": true,
		"hasData":    true,
		"header":     true,
		"location":   true,
		"name":       true,
		"version":    true,
	}
)

// DepAttr is the optional attribute name that, when passed to Check as an
// extra requirement, additionally demands a loaded data section on every
// record.
const DepAttr = "dep"

// Check validates a record set and returns the first violation found, or
// nil when the set is valid. Extra attribute names may be required on top
// of the mandatory set; requiring DepAttr additionally demands that every
// record has its data section loaded.
//
// Checks run in a fixed order and stop at the first violation:
//
//  1. the set is a non-empty collection of records
//  2. every required attribute is a known record attribute
//  3. every location is a non-empty string
//  4. every name is a non-empty string
//  5. every byte order is big-endian or little-endian
//  6. every hasData flag agrees with the data section
//  7. every format type and version pair is registered
//  8. every header has the canonical shape
//  9. with DepAttr required, every record has data loaded
//
// When the process-wide validation switch is off, Check returns nil
// without looking at the set.
func Check(set RecordSet, extraRequired ...string) *Report {
	if !ValidationEnabled() {
		return nil
	}

	if set == nil {
		return reportf(ReportNotStruct, "record set is not a collection of records")
	}
	if len(set) == 0 {
		return reportf(ReportEmpty, "record set is empty")
	}
	for i, r := range set {
		if r == nil {
			return reportf(ReportNotStruct, "record %d is nil", i)
		}
	}

	if rep := checkRequired(extraRequired); rep != nil {
		return rep
	}

	for i, r := range set {
		if r.Location == "" {
			return reportf(ReportDirBad, "record %d (%s): location is not a non-empty string", i, r.Name)
		}
	}
	for i, r := range set {
		if r.Name == "" {
			return reportf(ReportNameBad, "record %d: name is not a non-empty string", i)
		}
	}
	for i, r := range set {
		if !r.ByteOrder.Valid() {
			return reportf(ReportEndianBad, "record %d (%s): byte order %q is not %q or %q",
				i, r.Name, string(r.ByteOrder), BigEndian, LittleEndian)
		}
	}
	for i, r := range set {
		if r.HasData != (r.Data != nil) {
			return reportf(ReportHasDataBad, "record %d (%s): hasData flag does not match the data section", i, r.Name)
		}
	}
	for i, r := range set {
		if r.FormatType == "" || r.Version <= 0 || !ValidVersion(r.FormatType, r.Version) {
			return reportf(ReportVersionBad, "record %d (%s): version %d is not valid for format %q",
				i, r.Name, r.Version, r.FormatType)
		}
	}
	for i, r := range set {
		rows, cols := r.Header.Shape()
		if rows != HeaderRows || cols != HeaderCols {
			return reportf(ReportHeaderBad, "record %d (%s): header shape is %dx%d, want %dx%d",
				i, r.Name, rows, cols, HeaderRows, HeaderCols)
		}
	}

	if requires(extraRequired, DepAttr) {
		for i, r := range set {
			if !r.HasData {
				return reportf(ReportNeedData, "record %d (%s): data section is required but not loaded", i, r.Name)
			}
		}
	}

	return nil
}

// checkRequired verifies that every requested attribute, mandatory or
// extra, is a known record attribute. The union is scanned in sorted order
// so the first missing name reported is deterministic.
func checkRequired(extra []string) *Report {
	required := make([]string, 0, len(mandatoryAttrs)+len(extra))
	required = append(required, mandatoryAttrs...)
	required = append(required, extra...)
	sort.Strings(required)

	prev := ""
	for _, name := range required {
		if name == prev {
			continue
		}
		prev = name
		if !knownAttrs[name] {
			return reportf(ReportMissingField, "required field %q is not a record attribute", name)
		}
	}
	return nil
}

func requires(extra []string, name string) bool {
	for _, e := range extra {
		if e == name {
			return true
		}
	}
	return false
}
