package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pokys/zoh-hokej-ics/internal/calendar"
	"github.com/pokys/zoh-hokej-ics/internal/fixture"
	"github.com/pokys/zoh-hokej-ics/internal/logger"
	"github.com/pokys/zoh-hokej-ics/internal/match"
	"github.com/pokys/zoh-hokej-ics/internal/scraper"
	"github.com/pokys/zoh-hokej-ics/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagOutDir  string
	flagTimeout time.Duration
	flagFormat  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zoh-hokej-ics",
		Short: "Generate ICS calendars for the 2026 Olympic ice hockey tournaments",
		Long: `Scrapes the tournament schedule/results pages and regenerates three
calendar files: women's tournament, men's tournament, and a combined Czech
calendar. A fetch or parse failure aborts the run before any file is
touched, so previous output survives failed runs unchanged.`,
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagOutDir, "out-dir", "dist", "Output directory for calendar files")
	cmd.Flags().DurationVar(&flagTimeout, "timeout", scraper.DefaultTimeout, "HTTP timeout per source page")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Run summary format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and metrics output")

	return cmd
}

// runGenerate executes the fetch -> parse -> merge -> emit pipeline
func runGenerate(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	writer, err := storage.NewWriter(flagOutDir)
	if err != nil {
		return fmt.Errorf("initializing output: %w", err)
	}

	sc := scraper.NewWithTimeout(flagTimeout)

	var combined []match.Match
	documents := make(map[string]string)
	result := &RunResult{
		GeneratedAt: time.Now().UTC(),
		OutDir:      flagOutDir,
	}

	for _, t := range fixture.Tournaments() {
		logger.Info("scraping tournament", logger.Fields{
			"category": string(t.Category),
			"url":      t.SourceURL,
		})

		fetchStart := time.Now()
		games, err := sc.FetchGames(t.SourceURL)
		logger.RecordTiming("scrape.fetch", time.Since(fetchStart))
		if err != nil {
			logger.Error("scrape failed", logger.Fields{"category": string(t.Category)}, err)
			return fmt.Errorf("scraping %s tournament: %w", t.Category, err)
		}
		logger.AddCounter("scrape.games", int64(len(games)))
		logger.Debug("extracted games", logger.Fields{
			"category": string(t.Category),
			"count":    len(games),
		})

		merged := match.Merge(fixture.Skeleton(t.Category), games)
		combined = append(combined, merged...)

		documents[t.OutFile] = calendar.Generate(merged, t.Audience, t.CalendarName)
		result.Calendars = append(result.Calendars, summarize(t.OutFile, merged, t.Audience))
	}

	documents[fixture.CombinedOutFile] = calendar.Generate(combined, match.AudienceCzech, fixture.CombinedCalendarName)
	result.Calendars = append(result.Calendars, summarize(fixture.CombinedOutFile, combined, match.AudienceCzech))

	// Every category fetched, parsed and merged; only now touch the files.
	files := make([]string, 0, len(documents))
	for name := range documents {
		files = append(files, name)
	}
	sort.Strings(files)
	for _, name := range files {
		if err := writer.WriteCalendar(name, documents[name]); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		logger.Info("wrote calendar", logger.Fields{"path": writer.Path(name)})
	}

	if flagVerbose {
		logger.Debug("run metrics", logger.Fields{"metrics": logger.MetricsSnapshot()})
	}

	return WriteOutput(os.Stdout, result, format)
}

func summarize(file string, matches []match.Match, audience match.Audience) CalendarSummary {
	s := CalendarSummary{File: file}
	for i := range matches {
		if !matches[i].HasAudience(audience) {
			continue
		}
		s.Events++
		if matches[i].Status == match.StatusFinal {
			s.Finished++
		}
	}
	return s
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
