package site

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// OutputFile is one rendered file waiting to be written.
type OutputFile struct {
	// Path is relative to the output directory, slash-separated
	// (e.g., "members/ada-lovelace/index.html").
	Path string
	// Content is the file body.
	Content []byte
}

// WriteFiles writes all rendered files below the output directory.
// It creates the directory and any parent directories as needed.
func WriteFiles(files []OutputFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, filepath.FromSlash(file.Path))

		err := os.MkdirAll(filepath.Dir(outputPath), dirPerm)
		if err != nil {
			return fmt.Errorf("creating directory for %s: %w", file.Path, err)
		}

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}
	}

	return nil
}
