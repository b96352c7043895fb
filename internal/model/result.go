package model

// Result records one filtering pass over one input file.
type Result struct {
	Input   string `json:"input"`   // source file path
	Output  string `json:"output"`  // derived output file path
	Matched int    `json:"matched"` // lines written
	Total   int    `json:"total"`   // lines scanned
}

// Summary accumulates run-level totals across all files of a run.
type Summary struct {
	Files   int `json:"files"`
	Matched int `json:"matched"`
	Total   int `json:"total"`
}

// Add folds one file result into the summary.
func (s *Summary) Add(r Result) {
	s.Files++
	s.Matched += r.Matched
	s.Total += r.Total
}
