// Package domain contains the core line conversion engine and workflow.
package domain

import (
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/vbs2js/internal/catalog"
	m "github.com/mouse-blink/vbs2js/internal/model"
)

// Converter turns source-dialect text into target-dialect text, one line at a
// time. The output always has exactly as many lines as the input.
type Converter interface {
	// Convert rewrites the whole script. A nil reporter disables record
	// collection entirely.
	Convert(text string, reporter Reporter) string
}

type converter struct {
	categories []m.Category
	threads    int
}

// ConverterOption configures a Converter.
type ConverterOption func(*converter)

// WithThreads enables concurrent line conversion with up to n workers. Lines
// are written to output slots indexed by their original position, so the
// result is identical to a sequential run.
func WithThreads(n int) ConverterOption {
	return func(c *converter) {
		c.threads = n
	}
}

// NewConverter creates a Converter over the given catalog.
func NewConverter(cat *catalog.Catalog, opts ...ConverterOption) Converter {
	c := &converter{categories: cat.Categories(), threads: 1}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *converter) Convert(text string, reporter Reporter) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	converted := make([]string, len(lines))
	records := make([][]m.ConversionRecord, len(lines))
	collect := reporter != nil

	if c.threads > 1 {
		var g errgroup.Group

		g.SetLimit(c.threads)

		for i, line := range lines {
			g.Go(func() error {
				converted[i], records[i] = c.convertLine(line, collect)
				return nil
			})
		}

		// Workers cannot fail; Wait only synchronizes them.
		_ = g.Wait()
	} else {
		for i, line := range lines {
			converted[i], records[i] = c.convertLine(line, collect)
		}
	}

	if reporter != nil {
		for _, recs := range records {
			for _, rec := range recs {
				reporter.Record(rec)
			}
		}
	}

	return strings.Join(converted, "\n")
}

// convertLine runs the per-line pipeline: skip check, comment split, category
// passes in fixed order, post-processing, comment reattachment.
func (c *converter) convertLine(raw string, collect bool) (string, []m.ConversionRecord) {
	trimmed := strings.TrimSpace(raw)

	// Blank lines and full-line comments pass through untouched.
	if trimmed == "" || strings.HasPrefix(trimmed, m.SourceCommentMarker) {
		return raw, nil
	}

	line := trimmed
	comment := ""
	hasComment := false

	// The split is purely positional; a marker inside a string literal still
	// splits the line. Patterns below only ever see the code part.
	if idx := strings.Index(line, m.SourceCommentMarker); idx >= 0 {
		hasComment = true
		comment = strings.TrimLeft(line[idx+len(m.SourceCommentMarker):], " \t")
		line = strings.TrimRight(line[:idx], " \t")
	}

	var records []m.ConversionRecord

	// Categories are cumulative: each sees the previous category's output and
	// there is no backtracking. Only exclusive categories produce records.
	for _, cat := range c.categories {
		before := line

		converted, matched := cat.Apply(line)
		line = converted

		if matched && collect && !cat.ApplyAll {
			records = append(records, m.ConversionRecord{
				Category:  cat.Name,
				Original:  before,
				Converted: converted,
			})
		}
	}

	line = postProcess(line)

	if hasComment {
		line = line + " " + m.TargetCommentMarker + " " + comment
	}

	return line, records
}
