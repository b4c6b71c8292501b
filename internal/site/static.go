package site

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// StaticDir is the output sub-directory static assets are copied into.
const StaticDir = "static"

// DefaultStaticExcludes skip editor and OS clutter.
var DefaultStaticExcludes = []string{"**/.DS_Store", "**/*~", "**/.*.swp"}

// CollectStatic reads every file below src except those matching an
// exclude glob. Returned paths are prefixed with StaticDir. A missing src
// yields no files.
func CollectStatic(src string, excludes []string) ([]OutputFile, error) {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("inspecting static directory %s: %w", src, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("static path %s is not a directory", src)
	}

	for _, p := range excludes {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid static exclude pattern %q", p)
		}
	}

	fsys := os.DirFS(src)

	matches, err := doublestar.Glob(fsys, "**", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("listing static directory %s: %w", src, err)
	}

	sort.Strings(matches)

	var files []OutputFile

	for _, rel := range matches {
		if excluded(rel, excludes) {
			continue
		}

		data, err := fs.ReadFile(fsys, rel)
		if err != nil {
			return nil, fmt.Errorf("reading static file %s: %w", rel, err)
		}

		files = append(files, OutputFile{Path: path.Join(StaticDir, rel), Content: data})
	}

	return files, nil
}

func excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if doublestar.MatchUnvalidated(p, rel) {
			return true
		}
	}

	return false
}
