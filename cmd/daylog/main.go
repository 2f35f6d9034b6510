package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emilianohg/daylog/internal/config"
	"github.com/emilianohg/daylog/internal/db"
	"github.com/emilianohg/daylog/internal/log"
	"github.com/emilianohg/daylog/internal/models"
	"github.com/emilianohg/daylog/internal/seed"
	"github.com/emilianohg/daylog/internal/timecalc"
	"github.com/emilianohg/daylog/internal/tracker"
	"github.com/emilianohg/daylog/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "daylog",
	Short: "Log how you spend your day and see where the time goes",
	Long: `Daylog is a terminal time-use logger. Entries live in memory for the
length of the session; nothing is written to disk.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var durationCmd = &cobra.Command{
	Use:   "duration START END",
	Short: "Compute the duration between two HH:MM times",
	Long: `Compute the duration between two times on the same day.

Examples:
  daylog duration 09:00 17:30   # 8h 30m (510 minutes)`,
	Args: cobra.ExactArgs(2),
	RunE: runDuration,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Print category totals and insights for a TOML file of entries",
	Long: `Load entries from a TOML file into a fresh in-memory store and print
the time distribution and insights.

Each entry is a [[entry]] table with date, start, end, category and the
optional description, has_phone and has_tv_on keys.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.Flags().String("seed", "", "Preload the session with entries from a TOML file")
	analyzeCmd.Flags().StringP("format", "f", "text", "Output format: text, json")

	rootCmd.AddCommand(durationCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closer := openLogger(cfg)
	defer closer.Close()
	logger.Info("starting", log.FieldOperation, log.OpStartup, log.FieldView, cfg.DefaultView)

	database, err := db.Open()
	if err != nil {
		logger.Error("open store failed", log.FieldErrorType, log.ErrorTypeDatabase, log.FieldError, err)
		return fmt.Errorf("opening store: %w", err)
	}
	defer database.Close()

	if status, err := db.GetMigrationStatus(database); err == nil {
		logger.WithComponent(log.ComponentStorage).Info("store ready",
			"schema_version", status.CurrentVersion,
			"latest_version", status.LatestVersion,
			"dirty", status.Dirty)
	}

	t := tracker.New(database, logger)

	if path, _ := cmd.Flags().GetString("seed"); path != "" {
		if err := seedFrom(t, logger, path); err != nil {
			return err
		}
	}

	if err := tui.Run(t, cfg, logger); err != nil {
		logger.Error("tui exited with error", log.FieldError, err)
		return err
	}
	logger.Info("stopped", log.FieldOperation, log.OpShutdown)
	return nil
}

func runDuration(cmd *cobra.Command, args []string) error {
	d, err := timecalc.ComputeDuration(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (%d minutes)\n", d, d.TotalMinutes)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format: %s (expected text or json)", format)
	}

	logger := log.Discard()
	database, err := db.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer database.Close()

	t := tracker.New(database, logger)
	if err := seedFrom(t, logger, args[0]); err != nil {
		return err
	}

	result, err := t.Analyze()
	if err != nil {
		return err
	}
	return printAnalysis(cmd.OutOrStdout(), result, format)
}

func seedFrom(t *tracker.Tracker, logger *log.Logger, path string) error {
	drafts, err := seed.LoadFile(path)
	if err != nil {
		return err
	}
	n, err := seed.Apply(t, drafts)
	stored, countErr := t.Count()
	if countErr != nil {
		return countErr
	}
	logger.WithComponent(log.ComponentSeed).Info("seeded store",
		log.FieldOperation, log.OpSeed,
		log.FieldPath, path,
		log.FieldCount, n,
		"stored", stored)
	return err
}

func printAnalysis(w io.Writer, result models.Analysis, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	width := len("Category")
	for _, c := range result.Categories {
		width = max(width, len(c.Category))
	}

	fmt.Fprintln(w, "Time Distribution")
	fmt.Fprintln(w, strings.Repeat("-", width+24))
	for _, c := range result.Categories {
		fmt.Fprintf(w, "%-*s  %8s  %5s%% of day\n", width, c.Category, timecalc.FormatMinutes(c.TotalMinutes), c.PercentageOfDay)
	}
	if len(result.Insights) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Insights")
		fmt.Fprintln(w, strings.Repeat("-", width+24))
		for _, insight := range result.Insights {
			fmt.Fprintf(w, "- %s\n", insight)
		}
	}
	return nil
}

// openLogger appends to the daylog log file; the TUI owns the terminal. It
// falls back to a discarding logger when the file cannot be opened.
func openLogger(cfg *config.Config) (*log.Logger, io.Closer) {
	level, _ := log.ParseLevel(cfg.LogLevel)

	path, err := config.LogPath()
	if err == nil {
		err = config.EnsureDirectories()
	}
	if err != nil {
		return log.Discard(), io.NopCloser(nil)
	}

	logger, f, err := log.OpenFile(path, level)
	if err != nil {
		return log.Discard(), io.NopCloser(nil)
	}
	return logger, f
}
