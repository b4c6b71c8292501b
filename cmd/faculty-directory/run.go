package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"faculty-directory/internal/config"
	"faculty-directory/internal/pipeline"
	"faculty-directory/internal/report"
	"faculty-directory/internal/site"
)

// resolveConfig layers defaults, the config file, the environment and the
// flags that were explicitly set, then loads the policy.
func (a *app) resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if a.configPath != "" {
		if err := cfg.LoadFile(a.configPath); err != nil {
			return cfg, err
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()

	if flags.Changed("input") {
		cfg.Pipeline.InputDir = a.input
	}

	if flags.Changed("policy") {
		cfg.PolicyRef = a.policy
	}

	if flags.Changed("workers") {
		cfg.Pipeline.Workers = a.workers
	}

	if flags.Changed("repository") {
		cfg.Pipeline.Member.Repository = a.repository
	}

	if flags.Lookup("out") != nil {
		a.applySiteFlags(cmd, &cfg.Site)
	}

	if err := cfg.ResolvePolicy(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (a *app) applySiteFlags(cmd *cobra.Command, s *site.Config) {
	flags := cmd.Flags()

	if flags.Changed("out") {
		s.OutDir = a.out
	}

	if flags.Changed("base-path") {
		s.BasePath = a.basePath
	}

	if flags.Changed("title") {
		s.Title = a.title
	}

	if flags.Changed("templates") {
		s.TemplatesDir = a.templates
	}

	if flags.Changed("static") {
		s.StaticDir = a.static
	}

	if flags.Changed("no-pages") {
		s.Pages = !a.noPages
	}
}

func (a *app) styles() report.Styles {
	if a.noColor {
		return report.PlainStyles()
	}

	return report.NewStyles()
}

// runPipeline runs the shared discover-to-assemble stage. Fatal
// preconditions are reported here and become exit code 1.
func (a *app) runPipeline(cmd *cobra.Command, cfg config.Config) (*pipeline.Result, error) {
	res, err := pipeline.Run(cmd.Context(), cfg.Pipeline, a.logger)
	if err == nil {
		return res, nil
	}

	var fe *pipeline.FatalError
	if errors.As(err, &fe) {
		if perr := report.PrintFatal(a.stderr, fe.Diagnostic, a.styles()); perr != nil {
			return nil, perr
		}

		return nil, &exitError{code: pipeline.ExitFatal}
	}

	return nil, err
}

func (a *app) runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := a.resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := a.runPipeline(cmd, cfg)
	if err != nil {
		return err
	}

	manifest, err := site.Build(cmd.Context(), cfg.Site, res.Collection, site.BuildInfo{
		Policy:   res.Policy.Name,
		Files:    res.Files,
		Rejected: len(res.Rejected),
	}, a.logger)
	if err != nil {
		return fmt.Errorf("writing site: %w", err)
	}

	a.logger.Debug("Build finished", zap.String("build_id", manifest.BuildID))

	return a.finish(res, cfg.Site.OutDir)
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := a.resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := a.runPipeline(cmd, cfg)
	if err != nil {
		return err
	}

	return a.finish(res, "")
}

// finish prints the report and maps the result onto the exit code.
func (a *app) finish(res *pipeline.Result, outDir string) error {
	summary := report.Summary{
		Accepted: res.Accepted(),
		Files:    res.Files,
		Rejected: len(res.Rejected),
		Policy:   res.Policy.Name,
		OutDir:   outDir,
	}

	if err := report.Print(a.stdout, summary, res.Diagnostics(), a.styles()); err != nil {
		return err
	}

	if code := res.ExitCode(); code != pipeline.ExitOK {
		return &exitError{code: code}
	}

	return nil
}
