package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Lom209/logsplit/internal/discover"
	"github.com/Lom209/logsplit/internal/model"
	"github.com/Lom209/logsplit/internal/output"
	"github.com/Lom209/logsplit/internal/parser"
	"github.com/Lom209/logsplit/internal/splitter"
)

func runSplit(cmd *cobra.Command, args []string) error {
	// --- Validate the filter combination before touching any file ---
	hasSeverity := severity != ""
	hasStart := startStr != ""
	hasEnd := endStr != ""

	if hasStart != hasEnd {
		return fmt.Errorf("--start and --end must be given together")
	}
	if !hasSeverity && !hasStart {
		return fmt.Errorf("must specify either --severity or both --start and --end")
	}

	var min model.Level
	if hasSeverity {
		var ok bool
		min, ok = model.ParseLevel(severity)
		if !ok {
			return fmt.Errorf("unknown severity %q (expected TRACE, DEBUG, INFO, WARN, WARNING, ERROR, FATAL or CRITICAL)", severity)
		}
	}

	var start, end time.Time
	if hasStart {
		var err error
		if start, err = parser.ParseBoundary(startStr); err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		if end, err = parser.ParseBoundary(endStr); err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
		if !start.Before(end) {
			return fmt.Errorf("start time must be before end time")
		}
	}

	// --- Choose reporter ---
	format := reportFmt
	if format == "" {
		format = viper.GetString("format")
	}
	var rep output.Reporter
	switch strings.ToLower(format) {
	case "json":
		rep = output.NewJSONReporter()
	default:
		rep = output.NewTextReporter()
	}

	// --- Discover input files ---
	files, err := discover.Find(inputPath, viper.GetStringSlice("extensions"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no log files found under %s", inputPath)
	}
	rep.Infof("found %d log file(s)", len(files))

	// --- Run the requested pass(es) ---
	s := splitter.New(rep)

	var results []model.Result
	switch {
	case hasSeverity && hasStart:
		rep.Infof("applying combined severity and timestamp filtering...")
		results = s.SplitCombined(files, start, end, min, severity, outputDir)
	case hasSeverity:
		rep.Infof("filtering by severity: %s and above...", strings.ToUpper(severity))
		results = s.SplitBySeverity(files, min, severity, outputDir)
	default:
		rep.Infof("filtering by timestamp range: %s to %s...",
			start.Format("2006-01-02 15:04:05"), end.Format("2006-01-02 15:04:05"))
		results = s.SplitByTimeRange(files, start, end, outputDir)
	}

	var sum model.Summary
	for _, r := range results {
		sum.Add(r)
	}
	rep.Summary(sum)

	return nil
}
