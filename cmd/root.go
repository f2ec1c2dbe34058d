package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/kamusis/advising-cli/internal/catalog"
	"github.com/kamusis/advising-cli/internal/config"
	"github.com/kamusis/advising-cli/internal/loader"
	"github.com/kamusis/advising-cli/internal/logging"
	"github.com/spf13/cobra"
)

var (
	flagConfig   string
	flagCatalog  string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:          "advising",
	Short:        "Advising — course catalog browser",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Advising loads a course catalog (one course per line: number, title,
prerequisites) and answers course list and course detail queries.

Run without a sub-command to start the interactive menu.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default ~/.advising/advising.yaml)")
	pf.StringVarP(&flagCatalog, "catalog", "f", "", "Catalog file to load (overrides config and "+config.EnvCatalog+")")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runtimeOptions is the resolved configuration shared by every command.
type runtimeOptions struct {
	catalogPath string
	delimiter   rune
	subjects    []string
	lockTimeout time.Duration
	log         *logging.Logger
}

// resolveOptions merges flags over the config file and environment.
func resolveOptions(cmd *cobra.Command) (*runtimeOptions, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w\nRun 'advising init' to write a default one.", err)
	}

	if flagCatalog != "" {
		cfg.CatalogPath = flagCatalog
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	delim, err := cfg.DelimiterRune()
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.LockTimeoutDuration()
	if err != nil {
		return nil, err
	}

	log := logging.New(cmd.ErrOrStderr(), level)
	for _, w := range cfg.Warnings {
		log.WarnContext(cmd.Context(), "dotenv entry ignored", "reason", w)
	}

	return &runtimeOptions{
		catalogPath: cfg.CatalogPath,
		delimiter:   delim,
		subjects:    cfg.Subjects,
		lockTimeout: timeout,
		log:         log,
	}, nil
}

func (o *runtimeOptions) loaderOptions() loader.Options {
	return loader.Options{
		Delimiter:   o.delimiter,
		LockTimeout: o.lockTimeout,
		Logger:      o.log,
	}
}

// loadCatalog reads the configured catalog into a fresh index for a one-shot
// command. Skipped lines are reported; a catalog without courses is an error.
func loadCatalog(cmd *cobra.Command, opts *runtimeOptions, p *printer) (*catalog.Index, error) {
	idx := catalog.NewIndex()
	res, err := loader.LoadFile(cmd.Context(), opts.catalogPath, idx, opts.loaderOptions())
	if err != nil {
		return nil, err
	}
	for _, o := range res.Outcomes {
		switch o.Status {
		case loader.StatusMalformed:
			p.warn("", fmt.Sprintf("line %d: skipping malformed line: %s", o.Line, o.Text))
		case loader.StatusDuplicate:
			p.warn(o.Course.ID, fmt.Sprintf("line %d: duplicate course number ignored", o.Line))
		}
	}
	if !res.Loaded() {
		return nil, fmt.Errorf("no courses loaded from %s", opts.catalogPath)
	}
	return idx, nil
}
