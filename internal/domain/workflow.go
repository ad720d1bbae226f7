package domain

import (
	"strings"
	"time"

	"github.com/mouse-blink/vbs2js/internal/adapter"
	"github.com/mouse-blink/vbs2js/internal/catalog"
	"github.com/mouse-blink/vbs2js/internal/controller"
	m "github.com/mouse-blink/vbs2js/internal/model"
)

const (
	headerBanner     = "vbs2js - automatic VBScript to JavaScript conversion"
	headerDisclaimer = "This is a best-effort conversion. Review the result before use."
	headerTimeFormat = "2006-01-02 15:04:05"
)

// ConvertArgs holds the parameters of one conversion run.
type ConvertArgs struct {
	Input        m.Path
	Output       m.Path // empty means derive from Input
	ShowProgress bool
	Threads      int
}

// Workflow defines the top-level operations of the tool.
type Workflow interface {
	Convert(args ConvertArgs) error
	Rules() error
}

type workflow struct {
	fs  adapter.ScriptFSAdapter
	cat *catalog.Catalog
	ui  controller.UI
	now func() time.Time
}

// NewWorkflow creates a Workflow instance with the provided collaborators.
func NewWorkflow(fs adapter.ScriptFSAdapter, cat *catalog.Catalog, ui controller.UI) Workflow {
	return &workflow{
		fs:  fs,
		cat: cat,
		ui:  ui,
		now: time.Now,
	}
}

// Convert reads the input script, converts it line by line, writes the result
// with the fixed header prepended and surfaces records when requested. Only
// I/O failures are returned; per-line conversion issues are absorbed by the
// engine.
func (w *workflow) Convert(args ConvertArgs) error {
	script, err := w.fs.ReadScript(args.Input)
	if err != nil {
		return err
	}

	conv := NewConverter(w.cat, WithThreads(args.Threads))

	var recorder *Recorder

	var reporter Reporter

	if args.ShowProgress {
		recorder = NewRecorder()
		reporter = recorder
	}

	body := conv.Convert(script.Text, reporter)

	output := args.Output
	if output == "" {
		output = w.fs.DefaultOutputPath(args.Input)
	}

	doc := header(args.Input, w.now()) + "\n\n" + body
	if err := w.fs.WriteScript(output, doc); err != nil {
		return err
	}

	records := 0

	if recorder != nil {
		if err := w.ui.DisplayRecords(recorder.Records()); err != nil {
			return err
		}

		records = len(recorder.Records())
	}

	return w.ui.DisplaySummary(controller.Summary{
		Input:   args.Input,
		Output:  output,
		Lines:   lineCount(script.Text),
		Records: records,
	})
}

// Rules displays the catalog in evaluation order.
func (w *workflow) Rules() error {
	return w.ui.DisplayCatalog(w.cat.Categories())
}

// header renders the fixed block prepended to every converted document.
func header(input m.Path, ts time.Time) string {
	rule := "// " + strings.Repeat("-", 64)

	return strings.Join([]string{
		rule,
		"// " + headerBanner,
		"// Source: " + string(input),
		"// Generated: " + ts.Format(headerTimeFormat),
		"// " + headerDisclaimer,
		rule,
	}, "\n")
}

func lineCount(text string) int {
	return strings.Count(strings.ReplaceAll(text, "\r\n", "\n"), "\n") + 1
}
