// Package memory provides an in-memory trace source, mainly for tests
// and for seeding pipelines with synthetic records.
//
// Importing the package registers the "memory" source type:
//
//	import _ "github.com/seisgo/tracekit/source/memory"
package memory

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"sync"
	"time"

	"github.com/gobwas/glob"

	"github.com/seisgo/tracekit"
)

// Source holds trace contents in a map. The zero value is not usable;
// call New.
type Source struct {
	mu     sync.RWMutex
	traces map[string]entry
}

type entry struct {
	data    []byte
	modTime time.Time
}

// New returns an empty in-memory source.
func New() *Source {
	return &Source{traces: make(map[string]entry)}
}

// Put stores a trace under name, replacing any previous content.
func (s *Source) Put(name string, data []byte) {
	dup := make([]byte, len(data))
	copy(dup, data)
	s.mu.Lock()
	s.traces[name] = entry{data: dup, modTime: time.Now()}
	s.mu.Unlock()
}

// Remove drops a trace.
func (s *Source) Remove(name string) {
	s.mu.Lock()
	delete(s.traces, name)
	s.mu.Unlock()
}

// Open implements tracekit.Source.
func (s *Source) Open(name string) (io.ReadSeekCloser, error) {
	s.mu.RLock()
	e, ok := s.traces[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("open %s: %w", name, fs.ErrNotExist)
	}
	return nopCloser{bytes.NewReader(e.data)}, nil
}

// List implements tracekit.Source.
func (s *Source) List(pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	s.mu.RLock()
	names := make([]string, 0, len(s.traces))
	for name := range s.traces {
		if g.Match(name) {
			names = append(names, name)
		}
	}
	s.mu.RUnlock()
	sort.Strings(names)
	return names, nil
}

// Stat implements tracekit.Source.
func (s *Source) Stat(name string) (*tracekit.TraceInfo, error) {
	s.mu.RLock()
	e, ok := s.traces[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("stat %s: %w", name, fs.ErrNotExist)
	}
	return &tracekit.TraceInfo{
		Name:    name,
		Size:    int64(len(e.data)),
		ModTime: e.modTime,
	}, nil
}

// Location implements tracekit.Source.
func (s *Source) Location() string {
	return "memory"
}

type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }

var _ tracekit.Source = (*Source)(nil)
