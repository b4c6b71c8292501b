package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"faculty-directory/internal/diagnostic"
	"faculty-directory/internal/policy"
	"faculty-directory/internal/record"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeRecords(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func config(dir string) Config {
	cfg := DefaultConfig()
	cfg.InputDir = dir
	cfg.Workers = 2

	return cfg
}

func TestRun_LooseBuild(t *testing.T) {
	dir := writeRecords(t, map[string]string{
		"bob.yml":       "name: Bob Zephyr\nemail: bob@uni.edu\ndept: Physics\n",
		"ann.yml":       "Full Name: Ann Zephyr\nE-Mail: ann@uni.edu\nDepartment: Math\nResearch: [Algebra]\n",
		"broken.yml":    "name: [unterminated\n",
		"nameless.yaml": "email: ghost@uni.edu\n",
	})

	res, err := Run(context.Background(), config(dir), zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Files)
	assert.Equal(t, 2, res.Accepted())
	assert.Equal(t, []string{"broken.yml", "nameless.yaml"}, res.Rejected)

	ms := res.Collection.Members()
	require.Len(t, ms, 2)
	assert.Equal(t, "Ann Zephyr", ms[0].Name)
	assert.Equal(t, []string{"Algebra"}, ms[0].ResearchFocus)
	assert.Equal(t, "Bob Zephyr", ms[1].Name)

	diags := res.Diagnostics()
	require.Len(t, diags.Errors, 2)
	assert.Equal(t, diagnostic.KindParse, diags.Errors[0].Kind)
	assert.Equal(t, "broken.yml", diags.Errors[0].Source)
	assert.Equal(t, "missing_required", diags.Errors[1].Code)
	assert.Equal(t, "nameless.yaml", diags.Errors[1].Source)

	// The loose policy never fails the build.
	assert.False(t, res.Failed())
	assert.Equal(t, ExitOK, res.ExitCode())
}

func TestRun_StrictRejectsAndFails(t *testing.T) {
	dir := writeRecords(t, map[string]string{
		"course.yml": "title: Intro\nnotebook: https://example.com/nb.ipynb\n",
	})

	cfg := config(dir)
	cfg.Policy = policy.Strict()

	res, err := Run(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 0, res.Accepted())
	assert.Equal(t, []string{"course.yml"}, res.Rejected)
	assert.True(t, res.Failed())
	assert.Equal(t, ExitRejected, res.ExitCode())

	var codes []string
	for _, d := range res.Diagnostics().Errors {
		codes = append(codes, d.Code)
	}

	assert.Equal(t, []string{"missing_required", "forbidden_field"}, codes)
}

func TestRun_DuplicateIDFailsStrictBuild(t *testing.T) {
	course := `
id: intro
title: Intro
description: D
authors: A
tags: [x]
repository: https://github.com/example/r
materials:
  - {title: a, description: b, type: c, duration: d, github_url: "https://x"}
`
	dir := writeRecords(t, map[string]string{
		"a.yml": "name: A\n" + course,
		"b.yml": "name: B\n" + course,
	})

	cfg := config(dir)
	cfg.Policy = policy.Strict()

	res, err := Run(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 1, res.Accepted())
	assert.Empty(t, res.Rejected)
	assert.True(t, res.Diagnostics().HasKind(diagnostic.KindIntegrity))
	assert.Equal(t, ExitRejected, res.ExitCode())
}

func TestRun_IdenticalNames(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
	}{
		{name: "distinct stems", first: "lee-a.yml", second: "lee-b.yml"},
		{name: "stem equals name slug", first: "b.yml", second: "ann-lee.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeRecords(t, map[string]string{
				tt.first:  "name: Ann Lee\ntitle: First\n",
				tt.second: "name: Ann Lee\ntitle: Second\n",
			})

			res, err := Run(context.Background(), config(dir), zap.NewNop())
			require.NoError(t, err)

			ms := res.Collection.Members()
			require.Len(t, ms, 2)
			assert.Equal(t, "First", ms[0].Title)
			assert.Equal(t, "Second", ms[1].Title)
			assert.NotEqual(t, ms[0].ID, ms[1].ID)
			assert.False(t, res.Diagnostics().HasKind(diagnostic.KindIntegrity))
		})
	}
}

func TestRun_Fatal(t *testing.T) {
	tests := []struct {
		name     string
		dir      func(t *testing.T) string
		patterns []string
		code     string
		is       error
	}{
		{
			name: "empty directory",
			dir:  func(t *testing.T) string { return t.TempDir() },
			code: "no_input_files",
			is:   record.ErrNoInputFiles,
		},
		{
			name: "missing directory",
			dir:  func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") },
			code: "input_dir_missing",
			is:   record.ErrInputDirMissing,
		},
		{
			name:     "invalid pattern",
			dir:      func(t *testing.T) string { return t.TempDir() },
			patterns: []string{"[*.yml"},
			code:     "invalid_pattern",
			is:       record.ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config(tt.dir(t))
			if tt.patterns != nil {
				cfg.Patterns = tt.patterns
			}

			res, err := Run(context.Background(), cfg, zap.NewNop())
			require.Error(t, err)
			assert.Nil(t, res)

			var fe *FatalError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.code, fe.Diagnostic.Code)
			assert.Equal(t, diagnostic.KindFatal, fe.Diagnostic.Kind)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestRun_Canceled(t *testing.T) {
	dir := writeRecords(t, map[string]string{"a.yml": "name: A\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, config(dir), zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_DebugDump(t *testing.T) {
	dir := writeRecords(t, map[string]string{"a.yml": "name: Ada\noffice: B12\n"})

	core, logs := observer.New(zap.DebugLevel)

	_, err := Run(context.Background(), config(dir), zap.New(core))
	require.NoError(t, err)

	dumps := logs.FilterMessage("Raw record").All()
	require.Len(t, dumps, 1)
	assert.Contains(t, dumps[0].ContextMap()["dump"], "B12")
}
