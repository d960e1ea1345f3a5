package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/pfrederiksen/ploneconf-schedule/internal/export"
	"github.com/pfrederiksen/ploneconf-schedule/internal/logger"
)

// OutputFormat specifies the summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult summarizes one export run
type OutputResult struct {
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Output     string           `json:"output"`
	Days       []int            `json:"days"`
	Counts     export.Counts    `json:"counts"`
	Rows       int              `json:"rows"`
	Locations  []string         `json:"locations"`
	Metrics    *logger.Snapshot `json:"metrics,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	result.Rows = result.Counts.Total()

	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	days := make([]string, 0, len(result.Days))
	for _, d := range result.Days {
		days = append(days, fmt.Sprint(d))
	}

	fmt.Fprintf(w, "Wrote %d rows to %s\n", result.Rows, result.Output)
	fmt.Fprintf(w, "  Containers: %d\n", result.Counts.Containers)
	fmt.Fprintf(w, "  Locations:  %d\n", result.Counts.Locations)
	fmt.Fprintf(w, "  Sessions:   %d\n", result.Counts.Sessions)
	fmt.Fprintf(w, "  Speakers:   %d\n", result.Counts.Speakers)
	fmt.Fprintf(w, "Days: %s\n", strings.Join(days, ", "))

	if !verbose {
		return nil
	}

	if len(result.Locations) > 0 {
		fmt.Fprintf(w, "\nLocations:\n")
		for _, name := range result.Locations {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}

	if result.Metrics != nil && len(result.Metrics.Timings) > 0 {
		names := make([]string, 0, len(result.Metrics.Timings))
		for name := range result.Metrics.Timings {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintf(w, "\nTimings:\n")
		for _, name := range names {
			stats := result.Metrics.Timings[name]
			fmt.Fprintf(w, "  %s: %d calls, avg %s, max %s\n", name, stats.Count, stats.Average, stats.Max)
		}
	}

	if !result.FinishedAt.IsZero() {
		fmt.Fprintf(w, "\nElapsed: %s\n", result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond))
	}

	return nil
}
