package tracekit

import (
	"context"
	"fmt"

	"github.com/seisgo/tracekit/catalog"
)

// Toolkit bundles a source with the resolution, validation and event
// operations so callers work against one handle instead of wiring the
// pieces themselves.
//
// Example:
//
//	kit := tracekit.NewToolkit(
//		tracekit.WithSource(src),
//		tracekit.WithResolutionCache(tracekit.NewResolutionCache()),
//	)
//	set, err := kit.ReadAll("*.sac")
type Toolkit struct {
	source  Source
	cache   *ResolutionCache
	noCheck bool
	extra   []string
}

// NewToolkit assembles a toolkit from options.
func NewToolkit(opts ...ToolkitOption) *Toolkit {
	options := &ToolkitOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Logger != nil {
		SetLogger(options.Logger)
	}
	return &Toolkit{
		source:  options.Source,
		cache:   options.Cache,
		noCheck: options.NoCheck,
		extra:   options.ExtraRequired,
	}
}

// Source returns the toolkit's source, possibly nil.
func (t *Toolkit) Source() Source {
	return t.source
}

// Resolve determines the version and byte order of a named trace. A
// cache, when attached and the source maps names to local files, answers
// unchanged traces without re-reading them.
func (t *Toolkit) Resolve(name string) Resolution {
	if t.source == nil {
		return resolveFailure("resolve", name, fmt.Errorf("%w: no source configured", ErrNotOpen))
	}
	if t.cache != nil {
		if loc, ok := t.source.(CanLocate); ok {
			if path, ok := loc.LocalPath(name); ok {
				return t.cache.Resolve(path)
			}
		}
	}

	f, err := t.source.Open(name)
	if err != nil {
		return resolveFailure("open", name, fmt.Errorf("%w: %v", ErrNotOpen, err))
	}
	defer f.Close()
	return resolveHandle(f, name)
}

// ReadRecord reads the header of a named trace.
func (t *Toolkit) ReadRecord(name string) (*Record, error) {
	if t.source == nil {
		return nil, fmt.Errorf("%w: no source configured", ErrNotOpen)
	}
	return ReadRecordFrom(t.source, name)
}

// ReadAll reads the headers of every trace matching pattern and
// validates the assembled set.
func (t *Toolkit) ReadAll(pattern string) (RecordSet, error) {
	if t.source == nil {
		return nil, fmt.Errorf("%w: no source configured", ErrNotOpen)
	}
	set, err := ReadAllFrom(t.source, pattern)
	if err != nil {
		if _, isReport := err.(*Report); isReport && t.noCheck {
			return set, nil
		}
		return set, err
	}
	if rep := t.Check(set); rep != nil {
		return set, rep
	}
	return set, nil
}

// LoadData fills the record's data section from the toolkit's source.
func (t *Toolkit) LoadData(rec *Record) error {
	if t.source == nil {
		return fmt.Errorf("%w: no source configured", ErrNotOpen)
	}
	return rec.LoadDataFrom(t.source)
}

// Check validates a record set with the toolkit's extra requirements.
func (t *Toolkit) Check(set RecordSet) *Report {
	if t.noCheck {
		return nil
	}
	return Check(set, t.extra...)
}

// ApplyEvent stamps a catalog event into every record of the set and
// returns the updated copy.
func (t *Toolkit) ApplyEvent(set RecordSet, ev catalog.Event) (RecordSet, error) {
	return ApplyEvent(set, ev)
}

// Watch reports changes to traces matching pattern. The source must
// support watching.
func (t *Toolkit) Watch(ctx context.Context, pattern string) (ChangeToken, error) {
	if t.source == nil {
		return nil, fmt.Errorf("%w: no source configured", ErrNotOpen)
	}
	w, ok := t.source.(CanWatch)
	if !ok {
		return nil, fmt.Errorf("%w: source %q cannot watch", ErrNotSupported, t.source.Location())
	}
	return w.Watch(ctx, pattern)
}
