// Package controller provides output adapters for displaying conversion
// results.
package controller

import (
	m "github.com/mouse-blink/vbs2js/internal/model"
)

// Summary describes one completed conversion run.
type Summary struct {
	Input   m.Path
	Output  m.Path
	Lines   int
	Records int
}

// UI defines the interface for displaying conversion output.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayRecords shows the collected conversion records on the
	// diagnostic channel. It is only called when progress was requested.
	DisplayRecords(records []m.ConversionRecord) error

	// DisplaySummary shows the closing summary and the manual-review note.
	DisplaySummary(s Summary) error

	// DisplayCatalog lists the rule catalog in evaluation order.
	DisplayCatalog(categories []m.Category) error
}
