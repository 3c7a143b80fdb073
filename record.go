package tracekit

import "fmt"

// Record is one seismic trace: identity, format metadata, its own header
// block and optionally the raw data section.
//
// Records are plain values with no hidden sharing. Clone gives a deep copy
// and every header belongs to exactly one record, so mutating one record
// never disturbs another. Set operations on a RecordSet follow the same
// rule and return a modified copy.
//
// Example:
//
//	rec := tracekit.NewRecord("/data/run1", "station1.sac", tracekit.FormatSAC, 6, tracekit.LittleEndian)
//	if err := rec.Header.Set("delta", 0.025); err != nil {
//		log.Fatal(err)
//	}
type Record struct {
	// Location is the directory or source location the record came from.
	Location string

	// Name is the file name of the record within its location.
	Name string

	// FormatType names the format family, e.g. "sac" or "trace".
	FormatType string

	// Version is the resolved header version. Zero means unresolved.
	Version int

	// ByteOrder is the byte order of the on-disk representation.
	ByteOrder ByteOrder

	// HasData reports whether Data holds the record's data section.
	HasData bool

	// Header is the record's header block. Each record owns its header.
	Header *Header

	// Data is the raw data section, present only when HasData is set.
	Data []byte
}

// NewRecord returns a record with the given identity, a fresh undefined
// header and no data section. The header version slot is seeded from
// version.
func NewRecord(location, name, formatType string, version int, order ByteOrder) *Record {
	h := NewHeader()
	if version > 0 {
		h.slots[versionSlot] = float64(version)
	}
	return &Record{
		Location:   location,
		Name:       name,
		FormatType: formatType,
		Version:    version,
		ByteOrder:  order,
		Header:     h,
	}
}

// Clone returns a deep copy of the record, including header and data.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	dup := *r
	dup.Header = r.Header.Clone()
	if r.Data != nil {
		dup.Data = make([]byte, len(r.Data))
		copy(dup.Data, r.Data)
	}
	return &dup
}

// Path returns the record's location and name joined for display.
func (r *Record) Path() string {
	if r.Location == "" {
		return r.Name
	}
	return r.Location + "/" + r.Name
}

// RecordSet is an ordered collection of records.
type RecordSet []*Record

// Clone returns a deep copy of the set.
func (s RecordSet) Clone() RecordSet {
	if s == nil {
		return nil
	}
	dup := make(RecordSet, len(s))
	for i, r := range s {
		dup[i] = r.Clone()
	}
	return dup
}

// Names returns the record names in set order.
func (s RecordSet) Names() []string {
	names := make([]string, len(s))
	for i, r := range s {
		if r != nil {
			names[i] = r.Name
		}
	}
	return names
}

// GetField reads a numeric header field from every record in the set.
func (s RecordSet) GetField(name string) ([]float64, error) {
	out := make([]float64, len(s))
	for i, r := range s {
		if r == nil {
			return nil, fmt.Errorf("%w: record %d is nil", ErrNoData, i)
		}
		v, err := r.Header.Get(name)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// SetField assigns a numeric header field on every record and returns the
// modified copy. The receiver is left untouched.
func (s RecordSet) SetField(name string, v float64) (RecordSet, error) {
	dup := s.Clone()
	for i, r := range dup {
		if r == nil {
			return nil, fmt.Errorf("%w: record %d is nil", ErrNoData, i)
		}
		if err := r.Header.Set(name, v); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return dup, nil
}

// GetString reads a character header field from every record in the set.
func (s RecordSet) GetString(name string) ([]string, error) {
	out := make([]string, len(s))
	for i, r := range s {
		if r == nil {
			return nil, fmt.Errorf("%w: record %d is nil", ErrNoData, i)
		}
		v, err := r.Header.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// SetString assigns a character header field on every record and returns
// the modified copy. The receiver is left untouched.
func (s RecordSet) SetString(name, v string) (RecordSet, error) {
	dup := s.Clone()
	for i, r := range dup {
		if r == nil {
			return nil, fmt.Errorf("%w: record %d is nil", ErrNoData, i)
		}
		if err := r.Header.SetString(name, v); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return dup, nil
}
