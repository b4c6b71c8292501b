// Package main provides the CLI entrypoint for faculty-directory.
//
// faculty-directory is a static-site generator for a member directory:
//   - Reads one YAML record per person from an input directory
//   - Reconciles field-name synonyms and derives stable ids
//   - Validates records against a loose or strict policy
//   - Writes members.json, a searchable index and per-member pages
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"faculty-directory/internal/config"
	"faculty-directory/internal/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// exitError carries a non-zero exit code whose cause was already reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// execute runs the CLI and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return pipeline.ExitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)

	return pipeline.ExitFatal
}

// app holds flag values and shared state for one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger

	configPath string
	verbose    bool
	noColor    bool

	input      string
	policy     string
	workers    int
	repository string

	out       string
	basePath  string
	title     string
	templates string
	static    string
	noPages   bool
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "faculty-directory",
		Short: "Build a static faculty directory from YAML records",
		Long: `faculty-directory reads one YAML file per member, normalizes field
names, validates each record against a policy and renders a static site.

Per-record problems are collected and reported after the run; only a
missing or empty input directory stops the build.

Exit codes:
  0  success
  1  fatal precondition or I/O failure
  2  a record was rejected under a policy with fail_on_error`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}

			cfg := zap.NewProductionConfig()
			cfg.Encoding = "console"
			cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored report output")

	root.AddCommand(a.buildCmd(), a.checkCmd())

	return root
}

func (a *app) addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.input, "input", "i", "", "directory of member records (default \"data/members\")")
	cmd.Flags().StringVarP(&a.policy, "policy", "p", "", "validation policy: loose, strict or a policy file (default \"loose\")")
	cmd.Flags().IntVar(&a.workers, "workers", 0, "concurrent file loads (default GOMAXPROCS)")
	cmd.Flags().StringVar(&a.repository, "repository", "", "repository URL used for profile edit links")
}

func (a *app) buildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Validate records and write the site",
		Args:  cobra.NoArgs,
		RunE:  a.runBuild,
	}

	a.addPipelineFlags(cmd)
	cmd.Flags().StringVarP(&a.out, "out", "o", "", "output directory (default \"site\")")
	cmd.Flags().StringVar(&a.basePath, "base-path", "", "URL path prefix, overrides $"+config.EnvBasePath)
	cmd.Flags().StringVar(&a.title, "title", "", "listing page title")
	cmd.Flags().StringVar(&a.templates, "templates", "", "directory with index.html/member.html overrides (default \"templates\")")
	cmd.Flags().StringVar(&a.static, "static", "", "static asset directory (default \"static\")")
	cmd.Flags().BoolVar(&a.noPages, "no-pages", false, "skip per-member profile pages")

	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate records without writing output",
		Args:  cobra.NoArgs,
		RunE:  a.runCheck,
	}

	a.addPipelineFlags(cmd)

	return cmd
}
