package tracekit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ReadRecord reads the header region of one trace file. The file's
// version and byte order are resolved first; the record comes back with
// its header parsed and no data section loaded.
func ReadRecord(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ResolveError{Op: "open", Path: path, Err: fmt.Errorf("%w: %v", ErrNotOpen, err)}
	}
	defer f.Close()
	return readRecord(f, path)
}

func readRecord(r io.ReadSeeker, path string) (*Record, error) {
	version, order, err := Resolve(r)
	if err != nil {
		return nil, &ResolveError{Op: "resolve", Path: path, Err: err}
	}
	def, _ := FormatForVersion(version)

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, &ResolveError{Op: "read", Path: path, Err: seekError(err)}
	}
	h, err := ReadHeader(r, order)
	if err != nil {
		return nil, &ResolveError{Op: "read", Path: path, Err: err}
	}

	return &Record{
		Location:   filepath.Dir(path),
		Name:       filepath.Base(path),
		FormatType: def.Type,
		Version:    version,
		ByteOrder:  order,
		Header:     h,
	}, nil
}

// ReadRecords reads the headers of many trace files. Files that fail to
// resolve or parse are skipped with a warning so one bad file does not
// abort a scan. The assembled set is validated before it is returned; a
// non-nil *Report error means the set is structurally unsound.
func ReadRecords(paths ...string) (RecordSet, error) {
	progress := NewProgress("reading records", len(paths))
	var set RecordSet
	for _, path := range paths {
		rec, err := ReadRecord(path)
		if err != nil {
			logger().Warn("skipping unreadable record",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		set = append(set, rec)
		progress.Step(rec.Name)
	}
	progress.Done()

	if rep := Check(set); rep != nil {
		return set, rep
	}
	return set, nil
}

// LoadData reads the record's data section from disk as raw bytes and
// marks the record loaded. The bytes are everything past the header
// region; samples are not decoded.
func (r *Record) LoadData() error {
	if r == nil {
		return ErrNoData
	}
	path := filepath.Join(r.Location, r.Name)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotOpen, err)
	}
	defer f.Close()
	return r.loadDataFrom(f)
}

func (r *Record) loadDataFrom(src io.ReadSeeker) error {
	if _, err := src.Seek(HeaderSize, io.SeekStart); err != nil {
		return seekError(err)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	r.Data = data
	if r.Data == nil {
		r.Data = []byte{}
	}
	r.HasData = true
	return nil
}

// WriteRecord writes the record to path: header region first, then the
// data section when one is loaded. The record is validated as a
// single-record set before anything is written, honoring the process-wide
// validation switch.
func WriteRecord(rec *Record, path string) error {
	if rep := Check(RecordSet{rec}); rep != nil {
		return rep
	}

	// Keep the header's version slot in step with the record before it
	// hits disk.
	header := rec.Header.Clone()
	if err := header.Set("nvhdr", float64(rec.Version)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := header.Write(f, rec.ByteOrder); err != nil {
		f.Close()
		return fmt.Errorf("write header %s: %w", path, err)
	}
	if rec.HasData {
		if _, err := f.Write(rec.Data); err != nil {
			f.Close()
			return fmt.Errorf("write data %s: %w", path, err)
		}
	}
	return f.Close()
}
