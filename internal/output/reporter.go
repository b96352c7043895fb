package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/Lom209/logsplit/internal/model"
)

// Reporter receives progress and outcome events for one run. Each run owns
// its Reporter; there is no process-wide logging state.
type Reporter interface {
	Scanning(path string)
	Filtered(res model.Result)
	Summary(sum model.Summary)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// ---------------------------------------------------------------------------
// Text Reporter (colorized terminal output)
// ---------------------------------------------------------------------------

var (
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
	stylePath  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // cyan
	styleCount = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red bold
	styleDone  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)  // green bold
)

// TextReporter prints progress to stderr with lipgloss styling, keeping
// stdout clean for shell pipelines.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter returns a Reporter that writes colorized text to stderr.
func NewTextReporter() *TextReporter {
	return &TextReporter{w: os.Stderr}
}

func (r *TextReporter) Scanning(path string) {
	fmt.Fprintf(r.w, "%s %s\n", styleDim.Render("processing"), stylePath.Render(path))
}

func (r *TextReporter) Filtered(res model.Result) {
	counts := styleCount.Render(fmt.Sprintf("%d/%d", res.Matched, res.Total))
	fmt.Fprintf(r.w, "  filtered %s lines to %s\n", counts, stylePath.Render(res.Output))
}

func (r *TextReporter) Summary(sum model.Summary) {
	fmt.Fprintf(r.w, "%s %d file(s), %d/%d lines matched\n",
		styleDone.Render("done:"), sum.Files, sum.Matched, sum.Total)
}

func (r *TextReporter) Infof(format string, args ...any) {
	fmt.Fprintln(r.w, styleDim.Render(fmt.Sprintf(format, args...)))
}

func (r *TextReporter) Errorf(format string, args ...any) {
	fmt.Fprintln(r.w, styleError.Render(fmt.Sprintf(format, args...)))
}

// ---------------------------------------------------------------------------
// JSON Reporter (structured events for piping)
// ---------------------------------------------------------------------------

type jsonEvent struct {
	Event   string         `json:"event"`
	Path    string         `json:"path,omitempty"`
	Message string         `json:"message,omitempty"`
	Result  *model.Result  `json:"result,omitempty"`
	Summary *model.Summary `json:"summary,omitempty"`
}

// JSONReporter emits each progress event as a single JSON object per line.
type JSONReporter struct {
	enc *json.Encoder
}

// NewJSONReporter returns a Reporter that writes JSON lines to stdout.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{enc: json.NewEncoder(os.Stdout)}
}

func (r *JSONReporter) Scanning(path string) {
	r.emit(jsonEvent{Event: "processing", Path: path})
}

func (r *JSONReporter) Filtered(res model.Result) {
	r.emit(jsonEvent{Event: "filtered", Result: &res})
}

func (r *JSONReporter) Summary(sum model.Summary) {
	r.emit(jsonEvent{Event: "summary", Summary: &sum})
}

func (r *JSONReporter) Infof(format string, args ...any) {
	r.emit(jsonEvent{Event: "info", Message: fmt.Sprintf(format, args...)})
}

func (r *JSONReporter) Errorf(format string, args ...any) {
	r.emit(jsonEvent{Event: "error", Message: fmt.Sprintf(format, args...)})
}

func (r *JSONReporter) emit(ev jsonEvent) {
	_ = r.enc.Encode(ev)
}
