// Package config resolves build settings from defaults, an optional YAML
// file and the environment. Command-line flags are applied last by the
// caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/united-manufacturing-hub/umh-utils/env"
	"gopkg.in/yaml.v3"

	"faculty-directory/internal/pipeline"
	"faculty-directory/internal/policy"
	"faculty-directory/internal/site"
)

// EnvBasePath names the environment variable holding the URL path prefix.
const EnvBasePath = "BASE_PATH"

// Config is the fully resolved build configuration.
type Config struct {
	Pipeline pipeline.Config
	Site     site.Config
	// PolicyRef is a built-in policy name or a policy file path.
	PolicyRef string
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Pipeline:  pipeline.DefaultConfig(),
		Site:      site.DefaultConfig(),
		PolicyRef: policy.NameLoose,
	}
}

// File is the YAML configuration file layout. Unset keys keep the
// current value.
type File struct {
	Input           string   `yaml:"input"`
	Patterns        []string `yaml:"patterns"`
	Workers         int      `yaml:"workers"`
	Policy          string   `yaml:"policy"`
	PlaceholderName string   `yaml:"placeholder_name"`
	Recommended     []string `yaml:"recommended"`
	Repository      string   `yaml:"repository"`
	Branch          string   `yaml:"branch"`
	SourceDir       string   `yaml:"source_dir"`

	Out           string   `yaml:"out"`
	BasePath      string   `yaml:"base_path"`
	Title         string   `yaml:"title"`
	Templates     string   `yaml:"templates"`
	Static        string   `yaml:"static"`
	StaticExclude []string `yaml:"static_exclude"`
	Pages         *bool    `yaml:"pages"`
}

// LoadFile reads a YAML config file and applies it to c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.Apply(f)

	return nil
}

// Apply overlays the non-empty values of f.
func (c *Config) Apply(f File) {
	setString(&c.Pipeline.InputDir, f.Input)
	setStrings(&c.Pipeline.Patterns, f.Patterns)

	if f.Workers > 0 {
		c.Pipeline.Workers = f.Workers
	}

	setString(&c.PolicyRef, f.Policy)
	setString(&c.Pipeline.Member.PlaceholderName, f.PlaceholderName)
	setStrings(&c.Pipeline.Member.RecommendedFields, f.Recommended)
	setString(&c.Pipeline.Member.Repository, f.Repository)
	setString(&c.Pipeline.Member.Branch, f.Branch)
	setString(&c.Pipeline.Member.SourceDir, f.SourceDir)

	setString(&c.Site.OutDir, f.Out)
	setString(&c.Site.BasePath, f.BasePath)
	setString(&c.Site.Title, f.Title)
	setString(&c.Site.TemplatesDir, f.Templates)
	setString(&c.Site.StaticDir, f.Static)
	setStrings(&c.Site.StaticExcludes, f.StaticExclude)

	if f.Pages != nil {
		c.Site.Pages = *f.Pages
	}
}

// ApplyEnv reads BASE_PATH. An unset variable keeps the current value; a
// set but empty one clears it.
func (c *Config) ApplyEnv() error {
	basePath, err := env.GetAsString(EnvBasePath, false, c.Site.BasePath)
	if err != nil {
		return err
	}

	c.Site.BasePath = basePath

	return nil
}

// ResolvePolicy loads PolicyRef into the pipeline configuration.
func (c *Config) ResolvePolicy() error {
	p, err := policy.Resolve(c.PolicyRef)
	if err != nil {
		return err
	}

	c.Pipeline.Policy = p

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setStrings(dst *[]string, v []string) {
	if len(v) > 0 {
		*dst = append([]string(nil), v...)
	}
}
