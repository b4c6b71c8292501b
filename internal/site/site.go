package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"faculty-directory/internal/collection"
	"faculty-directory/internal/member"
)

// Output file names.
const (
	JSONFile  = "members.json"
	IndexFile = "index.html"
	PagesDir  = "members"
)

// Config holds site output settings.
type Config struct {
	// OutDir receives the generated site.
	OutDir string
	// BasePath prefixes every generated URL, e.g. "/directory".
	BasePath string
	// Title is the listing page title.
	Title string
	// TemplatesDir may hold index.html and member.html overrides.
	TemplatesDir string
	// StaticDir is copied to OutDir/static when it exists.
	StaticDir string
	// StaticExcludes are doublestar globs, relative to StaticDir, to skip.
	StaticExcludes []string
	// Pages enables per-member profile pages.
	Pages bool
}

// DefaultConfig returns the default site configuration.
func DefaultConfig() Config {
	return Config{
		OutDir:         "site",
		Title:          "Faculty Directory",
		TemplatesDir:   "templates",
		StaticDir:      "static",
		StaticExcludes: append([]string(nil), DefaultStaticExcludes...),
		Pages:          true,
	}
}

// BuildInfo carries run facts recorded in the manifest.
type BuildInfo struct {
	Policy   string
	Files    int
	Rejected int
}

// Renderer turns members into output files.
type Renderer struct {
	config    Config
	paths     Paths
	templates *Templates
	notes     *NotesRenderer
}

// NewRenderer loads templates for the configuration.
func NewRenderer(config Config) (*Renderer, error) {
	paths := NewPaths(config.BasePath)

	templates, err := LoadTemplates(config.TemplatesDir, paths)
	if err != nil {
		return nil, err
	}

	if config.Title == "" {
		config.Title = DefaultConfig().Title
	}

	return &Renderer{
		config:    config,
		paths:     paths,
		templates: templates,
		notes:     NewNotesRenderer(),
	}, nil
}

// Render produces members.json, index.html and, when enabled, one profile
// page per member. Members are rendered in the given order.
func (r *Renderer) Render(members []member.Member) ([]OutputFile, error) {
	entries := make([]entry, 0, len(members))
	views := make([]View, 0, len(members))

	for _, m := range members {
		entries = append(entries, newEntry(m))
		views = append(views, NewView(m, r.paths, r.notes))
	}

	data, err := encodeJSON(entries)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", JSONFile, err)
	}

	files := []OutputFile{{Path: JSONFile, Content: data}}

	var buf bytes.Buffer

	page := IndexPage{Title: r.config.Title, BasePath: r.paths.Base(), Members: views}
	if err := r.templates.RenderIndex(&buf, page); err != nil {
		return nil, err
	}

	files = append(files, OutputFile{Path: IndexFile, Content: bytes.Clone(buf.Bytes())})

	if !r.config.Pages {
		return files, nil
	}

	for _, v := range views {
		buf.Reset()

		page := MemberPage{Title: r.config.Title, BasePath: r.paths.Base(), Member: v}
		if err := r.templates.RenderMember(&buf, page); err != nil {
			return nil, err
		}

		files = append(files, OutputFile{
			Path:    path.Join(PagesDir, v.Slug, IndexFile),
			Content: bytes.Clone(buf.Bytes()),
		})
	}

	return files, nil
}

// Build renders the collection, copies static assets and writes everything
// plus the manifest to cfg.OutDir. The manifest is written last.
func Build(ctx context.Context, cfg Config, col *collection.Collection, info BuildInfo, logger *zap.Logger) (*Manifest, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	r, err := NewRenderer(cfg)
	if err != nil {
		return nil, err
	}

	if len(r.templates.Custom) > 0 {
		logger.Info("Using custom templates", zap.String("dir", cfg.TemplatesDir), zap.Strings("templates", r.templates.Custom))
	}

	if col.IsEmpty() {
		logger.Warn("No members accepted, writing an empty directory", zap.Int("files", info.Files))
	}

	files, err := r.Render(col.Members())
	if err != nil {
		return nil, err
	}

	static, err := CollectStatic(cfg.StaticDir, cfg.StaticExcludes)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := replaceStatic(cfg); err != nil {
		return nil, err
	}

	files = append(files, static...)

	if err := WriteFiles(files, cfg.OutDir); err != nil {
		return nil, err
	}

	diags := col.Diagnostics()

	manifest := NewManifest(files, time.Now())
	manifest.Policy = info.Policy
	manifest.BasePath = r.paths.Base()
	manifest.Counts = Counts{
		Files:    info.Files,
		Members:  col.Len(),
		Rejected: info.Rejected,
		Errors:   len(diags.Errors),
		Warnings: len(diags.Warnings),
	}

	data, err := encodeJSON(manifest)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", ManifestFile, err)
	}

	if err := WriteFiles([]OutputFile{{Path: ManifestFile, Content: data}}, cfg.OutDir); err != nil {
		return nil, err
	}

	logger.Info("Site written",
		zap.String("dir", cfg.OutDir),
		zap.Int("files", len(files)+1),
		zap.Int("static", len(static)),
		zap.String("build_id", manifest.BuildID))

	return manifest, nil
}

// replaceStatic removes the previous static copy when a static source
// directory exists.
func replaceStatic(cfg Config) error {
	if cfg.StaticDir == "" {
		return nil
	}

	if _, err := os.Stat(cfg.StaticDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("inspecting static directory %s: %w", cfg.StaticDir, err)
	}

	if err := os.RemoveAll(filepath.Join(cfg.OutDir, StaticDir)); err != nil {
		return fmt.Errorf("removing previous static copy: %w", err)
	}

	return nil
}
