package local

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/seisgo/tracekit"
)

// Watch implements tracekit.CanWatch. The returned token fires once, on
// the first filesystem event whose name matches pattern; watching stops
// when ctx is done.
func (s *Source) Watch(ctx context.Context, pattern string) (tracekit.ChangeToken, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the base directory and everything below it. fsnotify does
	// not recurse on its own.
	err = filepath.WalkDir(s.base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", s.base, err)
	}

	token := tracekit.NewWatchToken()
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				rel, err := filepath.Rel(s.base, ev.Name)
				if err != nil {
					continue
				}
				if g.Match(filepath.ToSlash(rel)) {
					token.SignalChange()
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return token, nil
}
