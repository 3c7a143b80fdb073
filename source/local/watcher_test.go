package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChanged(t *testing.T, token interface{ HasChanged() bool }) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if token.HasChanged() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("token never fired")
}

func TestWatchFiresOnMatchingCreate(t *testing.T) {
	src, dir := newTestSource(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, err := src.Watch(ctx, "*.sac")
	require.NoError(t, err)
	assert.False(t, token.HasChanged())

	fired := make(chan interface{}, 1)
	token.RegisterChangeCallback(func(state interface{}) { fired <- state }, "state-1")

	writeFile(t, dir, "new.sac", "x")
	waitChanged(t, token)

	select {
	case state := <-fired:
		assert.Equal(t, "state-1", state)
	case <-time.After(5 * time.Second):
		t.Fatal("callback never ran")
	}

	// Late registration sees the change immediately.
	late := make(chan struct{}, 1)
	token.RegisterChangeCallback(func(interface{}) { close(late) }, nil)
	select {
	case <-late:
	default:
		t.Fatal("late callback not invoked")
	}
}

func TestWatchIgnoresNonMatching(t *testing.T) {
	src, dir := newTestSource(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, err := src.Watch(ctx, "*.sac")
	require.NoError(t, err)

	writeFile(t, dir, "notes.txt", "x")
	time.Sleep(200 * time.Millisecond)
	assert.False(t, token.HasChanged())

	writeFile(t, dir, "quake.sac", "x")
	waitChanged(t, token)
}

func TestWatchBadPattern(t *testing.T) {
	src, _ := newTestSource(t)

	_, err := src.Watch(context.Background(), "[")
	assert.Error(t, err)
}

func TestWatchStopsOnCancel(t *testing.T) {
	src, _ := newTestSource(t)
	ctx, cancel := context.WithCancel(context.Background())

	token, err := src.Watch(ctx, "*.sac")
	require.NoError(t, err)

	cancel()
	time.Sleep(100 * time.Millisecond)
	assert.False(t, token.HasChanged())
}

func TestWatchSubdirectory(t *testing.T) {
	src, dir := newTestSource(t)
	writeFile(t, dir, "sub/existing.sac", "x")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, err := src.Watch(ctx, "sub/*")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "fresh.sac"), []byte("y"), 0o644))
	waitChanged(t, token)
}
