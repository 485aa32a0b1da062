package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// OutputFormat specifies the run summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// CalendarSummary describes one emitted calendar file
type CalendarSummary struct {
	File     string `json:"file"`
	Events   int    `json:"events"`
	Finished int    `json:"finished"`
}

// RunResult is the summary written to stdout after a successful run
type RunResult struct {
	GeneratedAt time.Time         `json:"generated_at"`
	OutDir      string            `json:"out_dir"`
	Calendars   []CalendarSummary `json:"calendars"`
}

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, result *RunResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeText(w io.Writer, result *RunResult) error {
	fmt.Fprintf(w, "Generated %d calendars in %s:\n", len(result.Calendars), result.OutDir)
	for _, cal := range result.Calendars {
		fmt.Fprintf(w, "  %s: %d events (%d finished)\n", cal.File, cal.Events, cal.Finished)
	}
	return nil
}
