package tracekit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Resolution is the outcome of resolving a trace file's header version and
// byte order. A zero Version means the file could not be resolved; the
// Diagnostic then carries the reason as a *ResolveError. Resolution
// failures are diagnostics, not fatal errors, so callers can scan large
// trees and skip what does not resolve.
//
// Example:
//
//	res := tracekit.ResolveFile("station1.sac")
//	if !res.Resolved() {
//		log.Printf("skipping: %v", res.Diagnostic)
//		return
//	}
//	fmt.Println(res.Version, res.ByteOrder)
type Resolution struct {
	// Path is the file the resolution applies to.
	Path string

	// Version is the resolved header version, or zero when unresolved.
	Version int

	// ByteOrder is the byte order the version field decoded under.
	ByteOrder ByteOrder

	// Diagnostic explains an unresolved outcome. Nil on success.
	Diagnostic error
}

// Resolved reports whether the file's version and byte order were
// determined.
func (r Resolution) Resolved() bool {
	return r.Version != 0
}

// Resolve determines the header version and byte order of an open trace
// handle. It reads the version field at its fixed offset as little-endian
// first; when that value is not a registered version it rewinds and reads
// the field again as big-endian. The handle is left positioned after the
// version field and is not closed.
//
// Failures map to the package sentinels: ErrNotOpen for a nil or closed
// handle, ErrTooShort when the file ends before the version field,
// ErrReadFailed for other read errors and ErrUnknownVersion when neither
// byte order yields a registered version.
func Resolve(r io.ReadSeeker) (int, ByteOrder, error) {
	if r == nil {
		return 0, "", ErrNotOpen
	}

	if _, err := r.Seek(VersionOffset, io.SeekStart); err != nil {
		return 0, "", seekError(err)
	}

	var buf [VersionWidth]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, "", readError(err)
	}
	le := int(int32(binary.LittleEndian.Uint32(buf[:])))
	if KnownVersion(le) {
		return le, LittleEndian, nil
	}

	// Not a known little-endian version: rewind over the field and read
	// it again in big-endian byte order.
	if _, err := r.Seek(-VersionWidth, io.SeekCurrent); err != nil {
		return 0, "", seekError(err)
	}
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, "", readError(err)
	}
	be := int(int32(binary.BigEndian.Uint32(buf[:])))
	if KnownVersion(be) {
		return be, BigEndian, nil
	}

	return 0, "", fmt.Errorf("%w: read %d little-endian, %d big-endian", ErrUnknownVersion, le, be)
}

func seekError(err error) error {
	if errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("%w: %v", ErrNotOpen, err)
	}
	return fmt.Errorf("%w: %v", ErrReadFailed, err)
}

func readError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: file ends before the version field", ErrTooShort)
	}
	if errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("%w: %v", ErrNotOpen, err)
	}
	return fmt.Errorf("%w: %v", ErrReadFailed, err)
}

// ResolveFile opens path, resolves its version and byte order and closes
// it again. Failures of any kind come back as an unresolved Resolution
// with the diagnostic attached; they are also logged at warning level.
func ResolveFile(path string) Resolution {
	f, err := os.Open(path)
	if err != nil {
		return resolveFailure("open", path, fmt.Errorf("%w: %v", ErrNotOpen, err))
	}
	defer f.Close()
	return resolveHandle(f, path)
}

// ResolveOpen resolves an already-open file and closes it on every path.
// A nil handle yields an unresolved Resolution without a close.
func ResolveOpen(f *os.File) Resolution {
	if f == nil {
		return resolveFailure("resolve", "", ErrNotOpen)
	}
	defer f.Close()
	return resolveHandle(f, f.Name())
}

func resolveHandle(r io.ReadSeeker, path string) Resolution {
	version, order, err := Resolve(r)
	if err != nil {
		return resolveFailure("resolve", path, err)
	}
	return Resolution{Path: path, Version: version, ByteOrder: order}
}

func resolveFailure(op, path string, err error) Resolution {
	diag := &ResolveError{Op: op, Path: path, Err: err}
	logger().Warn("trace format resolution failed",
		zap.String("op", op),
		zap.String("path", path),
		zap.Error(err),
	)
	return Resolution{Path: path, Diagnostic: diag}
}
