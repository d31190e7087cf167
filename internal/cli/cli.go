package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/leaguetab/internal/derive"
	"github.com/pfrederiksen/leaguetab/internal/fetch"
	"github.com/pfrederiksen/leaguetab/internal/league"
	"github.com/pfrederiksen/leaguetab/internal/logger"
	"github.com/pfrederiksen/leaguetab/internal/storage"
)

const (
	SquadFile     = "squad_stats.csv"
	StandingsFile = "standings.csv"
)

var (
	flagOutDir     string
	flagBaseURL    string
	flagDelay      time.Duration
	flagSkipFailed bool
	flagPreview    bool
	flagVerbose    bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	// .env overrides are optional; missing file is fine
	_ = godotenv.Load()

	cmd := &cobra.Command{
		Use:   "leaguetab",
		Short: "Scrape league stats tables into tidy CSV files",
		Long: `Scrapes squad statistics and standings tables for the big five
European leagues, normalizes them into one tidy table each, derives
per-team metrics, and writes the results as CSV.`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagOutDir, "out-dir", envOr("LEAGUETAB_OUT_DIR", "data"), "Output directory for CSV artifacts")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", envOr("LEAGUETAB_BASE_URL", league.DefaultBaseURL), "Stats site base URL")
	cmd.Flags().DurationVar(&flagDelay, "delay", envDurationOr("LEAGUETAB_DELAY", fetch.DefaultInterval), "Minimum delay between requests to one host")
	cmd.Flags().BoolVar(&flagSkipFailed, "skip-failed", false, "Skip leagues that fail instead of aborting the run")
	cmd.Flags().BoolVar(&flagPreview, "preview", false, "Render a preview of each output table to stdout")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	level := logger.LevelInfo
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stderr)
	logger.SetDefault(log)

	store, err := storage.New(flagOutDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	builder := league.NewBuilder(fetch.New(fetch.WithInterval(flagDelay)))
	builder.BaseURL = flagBaseURL
	builder.Log = log
	if flagSkipFailed {
		builder.OnError = league.SkipFailed
	}

	squad, err := builder.Build(cmd.Context(), league.SquadSources())
	if err != nil {
		return fmt.Errorf("building squad stats: %w", err)
	}
	derive.SquadMetrics(squad, log)

	standings, err := builder.Build(cmd.Context(), league.StandingsSources())
	if err != nil {
		return fmt.Errorf("building standings: %w", err)
	}
	derive.StandingsMetrics(standings, log)

	if err := store.WriteCSV(SquadFile, squad); err != nil {
		return fmt.Errorf("writing squad stats: %w", err)
	}
	if err := store.WriteCSV(StandingsFile, standings); err != nil {
		return fmt.Errorf("writing standings: %w", err)
	}

	log.Info("run complete", logger.Fields{
		"squad_rows":     len(squad.Rows),
		"standings_rows": len(standings.Rows),
		"out_dir":        flagOutDir,
	})

	if flagPreview {
		RenderPreview(os.Stdout, "Squad stats", squad)
		RenderPreview(os.Stdout, "Standings", standings)
	}

	fmt.Printf("Wrote %s and %s\n", store.Path(SquadFile), store.Path(StandingsFile))
	return nil
}

// envOr returns an environment variable's value or a default.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envDurationOr parses an environment variable as a duration, falling
// back to the default on absence or parse failure.
func envDurationOr(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
