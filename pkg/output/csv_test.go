package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/babynames/pkg/names"
)

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "top_1000_girl_names.csv", FileName(1000, names.Female))
	assert.Equal(t, "top_50_boy_names.csv", FileName(50, names.Male))
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []string{"Cara", "Alex"}))
	assert.Equal(t, "name\nCara\nAlex\n", buf.String())
}

func TestWriteCSV_EmptyListWritesHeaderOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "name\n", buf.String())
}

func TestWriteFile_ReplacesAtomically(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "top_2_girl_names.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o600))

	require.NoError(t, WriteFile(path, []string{"Cara", "Alex"}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name\nCara\nAlex\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteFile_IsByteIdenticalAcrossRuns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	rows := []string{"Olivia", "Emma", "Charlotte"}

	require.NoError(t, WriteFile(a, rows))
	require.NoError(t, WriteFile(b, rows))

	first, err := os.ReadFile(a)
	require.NoError(t, err)
	second, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteFile_MissingDirectoryLeavesNothing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope", "out.csv")
	err := WriteFile(path, []string{"x"})

	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
