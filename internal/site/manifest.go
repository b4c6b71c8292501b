package site

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// ManifestFile is the name of the build manifest in the output directory.
const ManifestFile = "manifest.json"

// Manifest describes one build's output.
type Manifest struct {
	BuildID     string          `json:"build_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Policy      string          `json:"policy,omitempty"`
	BasePath    string          `json:"base_path"`
	Counts      Counts          `json:"counts"`
	Files       []ManifestEntry `json:"files"`
}

// Counts summarizes the records behind a build.
type Counts struct {
	Files    int `json:"files"`
	Members  int `json:"members"`
	Rejected int `json:"rejected"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// ManifestEntry is one written file.
type ManifestEntry struct {
	Path string `json:"path"`
	Size int    `json:"size"`
	// Hash is the hex XXH3-64 digest of the content.
	Hash string `json:"xxh3"`
}

// NewManifest records files under a fresh build id.
func NewManifest(files []OutputFile, now time.Time) *Manifest {
	m := &Manifest{
		BuildID:     uuid.NewString(),
		GeneratedAt: now.UTC(),
		Files:       make([]ManifestEntry, 0, len(files)),
	}

	for _, f := range files {
		m.Files = append(m.Files, ManifestEntry{
			Path: f.Path,
			Size: len(f.Content),
			Hash: Hash(f.Content),
		})
	}

	return m
}

// Hash returns the hex XXH3-64 digest of data.
func Hash(data []byte) string {
	return fmt.Sprintf("%016x", xxh3.Hash(data))
}

// encodeJSON renders v as two-space indented JSON without HTML escaping.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
