package splitter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Lom209/logsplit/internal/discover"
	"github.com/Lom209/logsplit/internal/model"
	"github.com/Lom209/logsplit/internal/output"
	"github.com/Lom209/logsplit/internal/parser"
)

// maxLineSize bounds the scanner buffer so a single oversized line does not
// abort the scan of an otherwise healthy file.
const maxLineSize = 1024 * 1024

// scratchDirName is the subdirectory of the output directory used as the
// intermediate location during combined filtering.
const scratchDirName = "temp"

// Splitter runs sequential filtering passes over sets of log files. It holds
// no state across passes; all progress goes through the injected Reporter.
type Splitter struct {
	reporter output.Reporter
}

// New creates a Splitter reporting through rep.
func New(rep output.Reporter) *Splitter {
	return &Splitter{reporter: rep}
}

// SplitBySeverity writes every line of each input file whose severity rank is
// at least min to a derived output file. Lines with no recognizable severity
// are kept only when min is DEBUG or TRACE. minName is the caller-supplied
// severity token, embedded lowercased in the output file name.
func (s *Splitter) SplitBySeverity(files []string, min model.Level, minName string, outputDir string) []model.Result {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		s.reporter.Errorf("cannot create output directory %s: %v", outputDir, err)
		return nil
	}

	var results []model.Result
	for _, file := range files {
		s.reporter.Scanning(file)

		name := fmt.Sprintf("%s_severity_%s_and_above.log", baseName(file), strings.ToLower(minName))
		res, err := s.splitFile(file, filepath.Join(outputDir, name), func(line string) bool {
			level, _, ok := parser.ExtractSeverity(line)
			if ok {
				return level >= min
			}
			// Unclassifiable lines are assumed relevant only at the
			// most verbose minimums.
			return min <= model.LevelDebug
		})
		if err != nil {
			s.reporter.Errorf("error processing %s: %v", file, err)
			continue
		}

		s.reporter.Filtered(res)
		results = append(results, res)
	}

	return results
}

// SplitByTimeRange writes every line of each input file whose extracted
// timestamp t satisfies start <= t <= end. Lines without an extractable
// timestamp are always dropped.
func (s *Splitter) SplitByTimeRange(files []string, start, end time.Time, outputDir string) []model.Result {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		s.reporter.Errorf("cannot create output directory %s: %v", outputDir, err)
		return nil
	}

	stamp := start.Format("20060102_150405") + "_to_" + end.Format("20060102_150405")

	var results []model.Result
	for _, file := range files {
		s.reporter.Scanning(file)

		name := fmt.Sprintf("%s_timerange_%s.log", baseName(file), stamp)
		res, err := s.splitFile(file, filepath.Join(outputDir, name), func(line string) bool {
			t, ok := parser.ExtractTimestamp(line)
			return ok && !t.Before(start) && !t.After(end)
		})
		if err != nil {
			s.reporter.Errorf("error processing %s: %v", file, err)
			continue
		}

		s.reporter.Filtered(res)
		results = append(results, res)
	}

	return results
}

// SplitCombined applies both filters in fixed order: a time-range pass from
// the input files into a scratch directory, then a severity pass over the
// scratch output into outputDir. The scratch directory is removed whether or
// not the second pass succeeded for every file.
func (s *Splitter) SplitCombined(files []string, start, end time.Time, min model.Level, minName string, outputDir string) []model.Result {
	scratch := filepath.Join(outputDir, scratchDirName)
	defer os.RemoveAll(scratch)

	s.SplitByTimeRange(files, start, end, scratch)

	scratchFiles, err := discover.Find(scratch, nil)
	if err != nil {
		s.reporter.Errorf("cannot read intermediate files: %v", err)
		return nil
	}

	return s.SplitBySeverity(scratchFiles, min, minName, outputDir)
}

// splitFile copies the lines of inPath that satisfy keep into outPath,
// counting scanned and written lines.
func (s *Splitter) splitFile(inPath, outPath string, keep func(line string) bool) (model.Result, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return model.Result{}, fmt.Errorf("cannot open %s: %w", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return model.Result{}, fmt.Errorf("cannot create %s: %w", outPath, err)
	}
	defer out.Close()

	res := model.Result{Input: inPath, Output: outPath}
	w := bufio.NewWriter(out)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		res.Total++

		if keep(line) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return res, fmt.Errorf("write failed for %s: %w", outPath, err)
			}
			res.Matched++
		}
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("read failed for %s: %w", inPath, err)
	}
	if err := w.Flush(); err != nil {
		return res, fmt.Errorf("write failed for %s: %w", outPath, err)
	}

	return res, nil
}

// baseName strips the directory and extension from a file path.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
