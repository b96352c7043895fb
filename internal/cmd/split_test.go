package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetFlags clears the package flag variables between tests.
func resetFlags() {
	inputPath = ""
	outputDir = ""
	severity = ""
	startStr = ""
	endStr = ""
	reportFmt = ""
}

// untouchedDir returns a path inside a temp dir that must not be created by
// a failing run.
func untouchedDir(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "out")
}

func assertUntouched(t *testing.T, dir string) {
	t.Helper()
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("expected output directory to remain untouched, stat err = %v", err)
	}
}

func TestRunSplitRequiresACriterion(t *testing.T) {
	resetFlags()
	inputPath = t.TempDir()
	outputDir = untouchedDir(t)

	err := runSplit(rootCmd, nil)
	if err == nil {
		t.Fatal("expected usage error when no filter criterion is given")
	}
	if !strings.Contains(err.Error(), "--severity") {
		t.Errorf("unexpected error message %q", err.Error())
	}
	assertUntouched(t, outputDir)
}

func TestRunSplitStartWithoutEnd(t *testing.T) {
	resetFlags()
	inputPath = t.TempDir()
	outputDir = untouchedDir(t)
	startStr = "2025-06-28 09:00:00"

	err := runSplit(rootCmd, nil)
	if err == nil {
		t.Fatal("expected usage error for --start without --end")
	}
	if !strings.Contains(err.Error(), "together") {
		t.Errorf("unexpected error message %q", err.Error())
	}
	assertUntouched(t, outputDir)
}

func TestRunSplitEndWithoutStart(t *testing.T) {
	resetFlags()
	inputPath = t.TempDir()
	outputDir = untouchedDir(t)
	endStr = "2025-06-28 10:00:00"

	if err := runSplit(rootCmd, nil); err == nil {
		t.Fatal("expected usage error for --end without --start")
	}
	assertUntouched(t, outputDir)
}

func TestRunSplitUnknownSeverity(t *testing.T) {
	resetFlags()
	inputPath = t.TempDir()
	outputDir = untouchedDir(t)
	severity = "NOTICE"

	err := runSplit(rootCmd, nil)
	if err == nil {
		t.Fatal("expected error for unknown severity token")
	}
	if !strings.Contains(err.Error(), "NOTICE") {
		t.Errorf("unexpected error message %q", err.Error())
	}
	assertUntouched(t, outputDir)
}

func TestRunSplitStartNotBeforeEnd(t *testing.T) {
	resetFlags()
	// The input file must never be opened; point at a real file and rely on
	// the untouched output directory to prove nothing ran.
	in := t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "app.log"), []byte("2025-06-28 09:30:05 ERROR x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	inputPath = in
	outputDir = untouchedDir(t)
	startStr = "2025-06-28 10:00:00"
	endStr = "2025-06-28 09:00:00"

	err := runSplit(rootCmd, nil)
	if err == nil {
		t.Fatal("expected error for start >= end")
	}
	if !strings.Contains(err.Error(), "before end") {
		t.Errorf("unexpected error message %q", err.Error())
	}
	assertUntouched(t, outputDir)
}

func TestRunSplitEqualBoundaries(t *testing.T) {
	resetFlags()
	inputPath = t.TempDir()
	outputDir = untouchedDir(t)
	startStr = "2025-06-28 09:00:00"
	endStr = "2025-06-28 09:00:00"

	if err := runSplit(rootCmd, nil); err == nil {
		t.Fatal("expected error for start == end")
	}
	assertUntouched(t, outputDir)
}

func TestRunSplitInvalidBoundary(t *testing.T) {
	resetFlags()
	inputPath = t.TempDir()
	outputDir = untouchedDir(t)
	startStr = "yesterday"
	endStr = "2025-06-28 10:00:00"

	if err := runSplit(rootCmd, nil); err == nil {
		t.Fatal("expected error for unparseable boundary")
	}
	assertUntouched(t, outputDir)
}

func TestRunSplitMissingInputPath(t *testing.T) {
	resetFlags()
	inputPath = filepath.Join(t.TempDir(), "nope")
	outputDir = untouchedDir(t)
	severity = "INFO"

	if err := runSplit(rootCmd, nil); err == nil {
		t.Fatal("expected error for missing input path")
	}
	assertUntouched(t, outputDir)
}

func TestRunSplitNoFilesFound(t *testing.T) {
	resetFlags()
	inputPath = t.TempDir() // empty directory: zero candidates
	outputDir = untouchedDir(t)
	severity = "INFO"

	err := runSplit(rootCmd, nil)
	if err == nil {
		t.Fatal("expected error when no log files are found")
	}
	if !strings.Contains(err.Error(), "no log files") {
		t.Errorf("unexpected error message %q", err.Error())
	}
	assertUntouched(t, outputDir)
}

func TestRunSplitSeverityEndToEnd(t *testing.T) {
	resetFlags()
	in := t.TempDir()
	content := "2025-06-28 09:30:05 ERROR something failed\n" +
		"2025-06-28 09:30:06 INFO all fine\n"
	if err := os.WriteFile(filepath.Join(in, "app.log"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "out")
	inputPath = in
	outputDir = out
	severity = "ERROR"

	if err := runSplit(rootCmd, nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(out, "app_severity_error_and_above.log"))
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if got != "2025-06-28 09:30:05 ERROR something failed\n" {
		t.Errorf("unexpected output contents:\n%s", got)
	}
}
