package memory

import (
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutAndOpen(t *testing.T) {
	src := New()
	src.Put("a.sac", []byte("payload"))

	f, err := src.Open("a.sac")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	// Seeking works on the returned handle.
	_, err = f.Seek(3, io.SeekStart)
	require.NoError(t, err)
	rest, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "load", string(rest))
}

func TestPutCopiesData(t *testing.T) {
	src := New()
	buf := []byte("payload")
	src.Put("a.sac", buf)
	buf[0] = 'X'

	f, err := src.Open("a.sac")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestPutReplaces(t *testing.T) {
	src := New()
	src.Put("a.sac", []byte("old"))
	src.Put("a.sac", []byte("new"))

	f, err := src.Open("a.sac")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestOpenMissing(t *testing.T) {
	src := New()

	_, err := src.Open("absent.sac")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestList(t *testing.T) {
	src := New()
	src.Put("b.sac", nil)
	src.Put("a.sac", nil)
	src.Put("notes.txt", nil)

	names, err := src.List("*.sac")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.sac", "b.sac"}, names)

	names, err = src.List("*")
	require.NoError(t, err)
	assert.Len(t, names, 3)

	_, err = src.List("[")
	assert.Error(t, err)
}

func TestStat(t *testing.T) {
	src := New()
	src.Put("a.sac", []byte("12345"))

	info, err := src.Stat("a.sac")
	require.NoError(t, err)
	assert.Equal(t, "a.sac", info.Name)
	assert.EqualValues(t, 5, info.Size)
	assert.False(t, info.ModTime.IsZero())

	_, err = src.Stat("absent.sac")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRemove(t *testing.T) {
	src := New()
	src.Put("a.sac", []byte("x"))
	src.Remove("a.sac")

	_, err := src.Open("a.sac")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	// Removing a missing trace is a no-op.
	src.Remove("absent.sac")
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "memory", New().Location())
}
