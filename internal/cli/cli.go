package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/pfrederiksen/ploneconf-schedule/internal/config"
	"github.com/pfrederiksen/ploneconf-schedule/internal/export"
	"github.com/pfrederiksen/ploneconf-schedule/internal/logger"
	"github.com/pfrederiksen/ploneconf-schedule/internal/schedule"
	"github.com/pfrederiksen/ploneconf-schedule/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

type options struct {
	configPath string
	baseURL    string
	days       []int
	output     string
	root       string
	pagesDir   string
	timeout    time.Duration
	format     string
	verbose    bool
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ploneconf-schedule",
		Short: "Export the Plone Conference schedule as a Plone import CSV",
		Long: `Scrapes the Plone Conference 2018 talks pages and writes a CSV with one row per
container folder, location, session and speaker, ready for bulk import into Plone.
The output file is overwritten on every run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runExport(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file (default "+config.DefaultPath()+" if present)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", defaults.BaseURL, "Schedule page URL without the -<day> suffix")
	cmd.Flags().IntSliceVar(&opts.days, "days", defaults.Days, "Conference days to export, in order")
	cmd.Flags().StringVarP(&opts.output, "output", "o", defaults.Output, "CSV file to write")
	cmd.Flags().StringVar(&opts.root, "root", defaults.Root, "Plone site path prefixed to every item path")
	cmd.Flags().StringVar(&opts.pagesDir, "pages-dir", "", "Read saved pages from this directory instead of fetching them")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", defaults.Timeout, "HTTP timeout per page")
	cmd.Flags().StringVar(&opts.format, "format", defaults.Format, "Summary format: text or json")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging and a detailed summary")

	return cmd
}

// resolveConfig layers flags the user set over the config file over defaults
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()

	path := opts.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultPath()); err == nil {
			path = config.DefaultPath()
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = opts.baseURL
	}
	if flags.Changed("days") {
		cfg.Days = opts.days
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("root") {
		cfg.Root = opts.root
	}
	if flags.Changed("pages-dir") {
		cfg.PagesDir = opts.pagesDir
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.verbose
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runExport is the main command logic
func runExport(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	if cfg.Verbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	result, err := exportSchedule(ctx, cfg)
	if err != nil {
		return err
	}

	return WriteOutput(stdout, result, OutputFormat(cfg.Format), cfg.Verbose)
}

// exportSchedule fetches every configured day and writes the import file
func exportSchedule(ctx context.Context, cfg *config.Config) (result *OutputResult, err error) {
	var source scraper.Source
	if cfg.PagesDir != "" {
		source = scraper.NewDirSource(cfg.PagesDir, cfg.BaseURL)
		logger.Info("Reading saved schedule pages", logger.Fields{"dir": cfg.PagesDir})
	} else {
		source = scraper.NewHTTPSource(cfg.BaseURL, cfg.Timeout)
		logger.Info("Fetching schedule pages", logger.Fields{"base_url": cfg.BaseURL})
	}
	sc := scraper.New(source)

	f, err := export.Create(cfg.Output)
	if err != nil {
		return nil, err
	}
	w := export.NewWriter(f)

	// Rows of days already processed stay on disk when a later day fails
	defer func() {
		flushErr := w.Flush()
		closeErr := f.Close()
		if err == nil {
			err = errors.Join(flushErr, closeErr)
		}
	}()

	result = &OutputResult{
		StartedAt: time.Now().UTC(),
		Output:    cfg.Output,
		Days:      cfg.Days,
	}

	em := export.NewEmitter(w, schedule.NewTree(cfg.Root))
	if err := em.Containers(); err != nil {
		return nil, fmt.Errorf("writing containers: %w", err)
	}

	for _, day := range cfg.Days {
		parsed, err := sc.FetchDay(ctx, day)
		if err != nil {
			return nil, err
		}

		if err := em.Day(parsed); err != nil {
			return nil, fmt.Errorf("day %d: %w", day, err)
		}
		if err := w.Flush(); err != nil {
			return nil, fmt.Errorf("day %d: %w", day, err)
		}

		logger.Info("Exported schedule day", logger.Fields{
			"day":   day,
			"slots": len(parsed.Slots),
		})
	}

	result.FinishedAt = time.Now().UTC()
	result.Counts = em.Counts()
	result.Locations = em.Locations()
	snapshot := logger.GetMetricsSnapshot()
	result.Metrics = &snapshot
	return result, nil
}

// Execute runs the CLI
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		logger.Error("Export failed", nil, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(ExitError)
	}
}
