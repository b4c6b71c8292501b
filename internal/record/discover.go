package record

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns select the record files inside the input directory.
var DefaultPatterns = []string{"*.yml", "*.yaml"}

var (
	// ErrInputDirMissing means the input directory does not exist or is not a directory.
	ErrInputDirMissing = errors.New("input directory not found")
	// ErrNoInputFiles means the input directory holds no matching record files.
	ErrNoInputFiles = errors.New("no input files found")
	// ErrInvalidPattern means an include pattern is not a valid glob.
	ErrInvalidPattern = errors.New("invalid input pattern")
)

// Discover lists record files in dir matching any of the glob patterns.
// Results are de-duplicated, sorted by relative path and numbered in that
// order.
func Discover(dir string, patterns []string) ([]File, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputDirMissing, dir)
		}

		return nil, fmt.Errorf("inspecting input directory %s: %w", dir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInputDirMissing, dir)
	}

	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	fsys := os.DirFS(dir)
	seen := make(map[string]struct{})

	var rel []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w %q", ErrInvalidPattern, pattern)
		}

		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q in %s: %w", pattern, dir, err)
		}

		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}

			seen[m] = struct{}{}
			rel = append(rel, m)
		}
	}

	if len(rel) == 0 {
		return nil, fmt.Errorf("%w in %s (patterns %v)", ErrNoInputFiles, dir, patterns)
	}

	sort.Strings(rel)

	files := make([]File, len(rel))
	for i, r := range rel {
		files[i] = NewFile(filepath.Join(dir, filepath.FromSlash(r)), i)
	}

	return files, nil
}
