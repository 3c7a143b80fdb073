// Package local provides a trace source backed by a directory tree.
//
// Importing the package registers the "local" source type:
//
//	import _ "github.com/seisgo/tracekit/source/local"
package local

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/seisgo/tracekit"
)

// Source serves trace files from a base directory. Trace names are
// slash-separated paths relative to the base; names escaping it are
// rejected.
type Source struct {
	base string
}

// New returns a local source rooted at base, creating the directory when
// missing.
func New(base string) (*Source, error) {
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("resolve base path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create base path: %w", err)
	}
	return &Source{base: abs}, nil
}

// resolve maps a trace name to its filesystem path, keeping it under the
// base directory.
func (s *Source) resolve(name string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("name %q escapes the source root", name)
	}
	return filepath.Join(s.base, clean), nil
}

// Open implements tracekit.Source.
func (s *Source) Open(name string) (io.ReadSeekCloser, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// List implements tracekit.Source. The pattern is a glob matched against
// slash-separated names relative to the base directory.
func (s *Source) List(pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}

	var names []string
	err = filepath.WalkDir(s.base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.base, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if g.Match(name) {
			names = append(names, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// Stat implements tracekit.Source.
func (s *Source) Stat(name string) (*tracekit.TraceInfo, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	return &tracekit.TraceInfo{
		Name:    name,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Location implements tracekit.Source.
func (s *Source) Location() string {
	return s.base
}

// LocalPath implements tracekit.CanLocate.
func (s *Source) LocalPath(name string) (string, bool) {
	path, err := s.resolve(name)
	if err != nil {
		return "", false
	}
	return path, true
}

var (
	_ tracekit.Source    = (*Source)(nil)
	_ tracekit.CanLocate = (*Source)(nil)
	_ tracekit.CanWatch  = (*Source)(nil)
)
