package operation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverStylesheets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "button.css"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "modal.css"), []byte("b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("c"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "UPPER.CSS"), []byte("d"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.css"), 0755))

	names, err := discoverStylesheets(dir, ".css")
	require.NoError(t, err)

	// exact case-sensitive suffix match, directories skipped, no recursion
	assert.Equal(t, []string{"button.css", "modal.css"}, names)
}

func TestDiscoverStylesheets_MissingDir(t *testing.T) {
	names, err := discoverStylesheets(filepath.Join(t.TempDir(), "does-not-exist"), ".css")
	require.NoError(t, err, "missing directory is a soft-fail")
	assert.Empty(t, names)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dark-mode.css")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	exists, err := fileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = fileExists(filepath.Join(dir, "missing.css"))
	require.NoError(t, err)
	assert.False(t, exists)

	// a directory is not a processable file
	exists, err = fileExists(dir)
	require.NoError(t, err)
	assert.False(t, exists)
}
