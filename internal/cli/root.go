// Package cli implements the worksheet command line.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nobu-k/100-math-sub004/internal/config"
	"github.com/nobu-k/100-math-sub004/internal/logging"
	"github.com/nobu-k/100-math-sub004/worksheet"
)

// app is the state shared by every subcommand once the root has loaded
// the configuration.
type app struct {
	configFile string
	logLevel   string
	logFormat  string

	cfg      config.Config
	log      *slog.Logger
	registry *worksheet.Registry
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	a := &app{registry: worksheet.Default()}

	root := &cobra.Command{
		Use:   "worksheet",
		Short: "Generate reproducible, seeded math worksheets",
		Long: `worksheet prints arithmetic and number-theory worksheets whose content
depends only on a seed: the same seed and options always give the same
problems and answer key.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(
		newTopicsCommand(a),
		newGenerateCommand(a),
		newServeCommand(a),
		newQualityCommand(a),
	)

	return root
}

// Execute runs the command line and prints a failing command's error.
func Execute(ctx context.Context, version string) error {
	root := NewRootCommand(version)
	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
	}
	return err
}

// load applies config file, environment and flags, in that order.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lc := cfg.Logging()
	lc.Output = cmd.ErrOrStderr()
	a.cfg = cfg
	a.log = logging.New(lc)

	return nil
}
