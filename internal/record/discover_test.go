package record

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, n := range names {
		p := filepath.Join(dir, n)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("name: "+n+"\n"), 0o644))
	}
}

func TestDiscover_SortsAndFilters(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "zed.yml", "ada.yaml", "bob.yml", "README.md", "nested/carol.yml")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.yml"), 0o755))

	files, err := Discover(dir, nil)
	require.NoError(t, err)

	var names []string
	for i, f := range files {
		names = append(names, f.Name)
		assert.Equal(t, i, f.Index)
	}

	assert.Equal(t, []string{"ada.yaml", "bob.yml", "zed.yml"}, names)
}

func TestDiscover_RecursivePattern(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "ada.yml", "nested/carol.yml")

	files, err := Discover(dir, []string{"**/*.yml", "*.yml"})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "ada.yml", files[0].Name)
	assert.Equal(t, filepath.Join(dir, "nested", "carol.yml"), files[1].Path)
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputDirMissing)
}

func TestDiscover_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "ada.yml")

	_, err := Discover(filepath.Join(dir, "ada.yml"), nil)
	assert.ErrorIs(t, err, ErrInputDirMissing)
}

func TestDiscover_EmptyDir(t *testing.T) {
	_, err := Discover(t.TempDir(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoInputFiles)
}

func TestDiscover_InvalidPattern(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "ada.yml")

	_, err := Discover(dir, []string{"[unterminated"})
	assert.ErrorContains(t, err, "invalid input pattern")
}
