package record

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAll_PreservesOrder(t *testing.T) {
	dir := t.TempDir()

	var files []File
	for i := range 40 {
		name := fmt.Sprintf("m%02d.yml", i)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(fmt.Sprintf("name: Member %d\n", i)), 0o644))
		files = append(files, NewFile(filepath.Join(dir, name), i))
	}

	loaded, err := LoadAll(context.Background(), files, 4)
	require.NoError(t, err)
	require.Len(t, loaded, len(files))

	for i, l := range loaded {
		assert.Equal(t, files[i], l.File)
		require.NoError(t, l.Err)
		assert.Equal(t, fmt.Sprintf("Member %d", i), l.Record["name"])
	}
}

func TestLoadAll_CarriesParseErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yml")
	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(good, []byte("name: Good\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("name: [oops\n"), 0o644))

	loaded, err := LoadAll(context.Background(), []File{NewFile(bad, 0), NewFile(good, 1)}, 0)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	var pe *ParseError
	require.ErrorAs(t, loaded[0].Err, &pe)
	assert.Equal(t, "bad.yml", pe.File)
	assert.Nil(t, loaded[0].Record)

	require.NoError(t, loaded[1].Err)
	assert.Equal(t, "Good", loaded[1].Record["name"])
}

func TestLoadAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadAll(ctx, []File{NewFile("a.yml", 0)}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
