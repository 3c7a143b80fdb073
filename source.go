package tracekit

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Source provides read access to a tree of trace files. Implementations
// register themselves through RegisterSource and are constructed by name
// via OpenSource.
//
// A source only promises the core read operations. Optional capabilities
// are discovered by type assertion:
//
//	if w, ok := src.(tracekit.CanWatch); ok {
//		token, err := w.Watch(ctx, "*.sac")
//		...
//	}
type Source interface {
	// Open opens a named trace for reading.
	Open(name string) (io.ReadSeekCloser, error)

	// List returns the trace names matching a glob pattern, sorted.
	List(pattern string) ([]string, error)

	// Stat describes a named trace.
	Stat(name string) (*TraceInfo, error)

	// Location describes where the source's traces live, e.g. the base
	// directory of a local source.
	Location() string
}

// TraceInfo describes one trace held by a source.
type TraceInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// CanWatch is implemented by sources that can report changes to their
// tree.
type CanWatch interface {
	// Watch returns a token that fires when a trace matching pattern
	// changes. Watching stops when ctx is done.
	Watch(ctx context.Context, pattern string) (ChangeToken, error)
}

// CanLocate is implemented by sources whose traces are plain files on the
// local filesystem. The resolution cache uses it to key cached outcomes
// by file identity.
type CanLocate interface {
	// LocalPath maps a trace name to its filesystem path. ok is false
	// when the trace has no local path.
	LocalPath(name string) (path string, ok bool)
}

// ChangeToken signals that watched content has changed.
type ChangeToken interface {
	// HasChanged reports whether a change fired.
	HasChanged() bool

	// RegisterChangeCallback registers a callback invoked with state on
	// the first change. Registering after the change invokes the
	// callback immediately.
	RegisterChangeCallback(callback func(state interface{}), state interface{})
}

// WatchToken is the standard ChangeToken implementation. The first
// SignalChange flips it permanently and drains the callbacks; later
// signals are no-ops.
type WatchToken struct {
	mu        sync.Mutex
	changed   atomic.Bool
	callbacks []func(interface{})
	states    []interface{}
}

// NewWatchToken returns an unfired token.
func NewWatchToken() *WatchToken {
	return &WatchToken{}
}

// HasChanged implements ChangeToken.
func (t *WatchToken) HasChanged() bool {
	return t.changed.Load()
}

// RegisterChangeCallback implements ChangeToken.
func (t *WatchToken) RegisterChangeCallback(callback func(state interface{}), state interface{}) {
	if callback == nil {
		return
	}
	if t.changed.Load() {
		callback(state)
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.changed.Load() {
		callback(state)
		return
	}
	t.callbacks = append(t.callbacks, callback)
	t.states = append(t.states, state)
}

// SignalChange fires the token. Only the first call runs the callbacks.
func (t *WatchToken) SignalChange() {
	if t.changed.Swap(true) {
		return
	}
	t.mu.Lock()
	callbacks := t.callbacks
	states := t.states
	t.callbacks = nil
	t.states = nil
	t.mu.Unlock()

	for i, cb := range callbacks {
		cb(states[i])
	}
}

var _ ChangeToken = (*WatchToken)(nil)

// SourceFactory builds a source from configuration.
type SourceFactory func(cfg *Config) (Source, error)

var (
	sourcesMu       sync.RWMutex
	sourceFactories = make(map[string]SourceFactory)
)

// RegisterSource makes a source implementation available under a name.
// Implementations call this from an init function.
func RegisterSource(name string, factory SourceFactory) {
	sourcesMu.Lock()
	defer sourcesMu.Unlock()
	sourceFactories[name] = factory
}

// OpenSource constructs a registered source by name.
func OpenSource(name string, cfg *Config) (Source, error) {
	sourcesMu.RLock()
	factory, ok := sourceFactories[name]
	sourcesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown source type: %s", name)
	}
	return factory(cfg)
}

// SourceNames returns the registered source type names, sorted.
func SourceNames() []string {
	sourcesMu.RLock()
	defer sourcesMu.RUnlock()
	names := make([]string, 0, len(sourceFactories))
	for name := range sourceFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadRecordFrom reads the header of a named trace from a source.
func ReadRecordFrom(src Source, name string) (*Record, error) {
	f, err := src.Open(name)
	if err != nil {
		return nil, &ResolveError{Op: "open", Path: name, Err: fmt.Errorf("%w: %v", ErrNotOpen, err)}
	}
	defer f.Close()

	rec, err := readRecord(f, name)
	if err != nil {
		return nil, err
	}
	rec.Location = src.Location()
	rec.Name = name
	return rec, nil
}

// ReadAllFrom reads the header of every trace in a source matching
// pattern. Unreadable traces are skipped with a warning; the assembled
// set is validated before it is returned.
func ReadAllFrom(src Source, pattern string) (RecordSet, error) {
	names, err := src.List(pattern)
	if err != nil {
		return nil, err
	}

	progress := NewProgress("reading records", len(names))
	var set RecordSet
	for _, name := range names {
		rec, err := ReadRecordFrom(src, name)
		if err != nil {
			logger().Warn("skipping unreadable record",
				zap.String("source", src.Location()),
				zap.String("name", name),
				zap.Error(err),
			)
			continue
		}
		set = append(set, rec)
		progress.Step(name)
	}
	progress.Done()

	if rep := Check(set); rep != nil {
		return set, rep
	}
	return set, nil
}

// LoadDataFrom reads the record's data section from a source instead of
// the local filesystem.
func (r *Record) LoadDataFrom(src Source) error {
	if r == nil {
		return ErrNoData
	}
	f, err := src.Open(r.Name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNotOpen, err)
	}
	defer f.Close()
	return r.loadDataFrom(f)
}
