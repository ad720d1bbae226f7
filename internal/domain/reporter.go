package domain

import (
	m "github.com/mouse-blink/vbs2js/internal/model"
)

// Reporter observes category matches during conversion. Implementations must
// not influence the converted text; the converter stays a pure function of
// (input text, options).
type Reporter interface {
	Record(rec m.ConversionRecord)
}

// Recorder is the collecting Reporter used when progress reporting is
// requested. Records are kept in encounter order.
type Recorder struct {
	records []m.ConversionRecord
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends one conversion record.
func (r *Recorder) Record(rec m.ConversionRecord) {
	r.records = append(r.records, rec)
}

// Records returns the collected records in encounter order.
func (r *Recorder) Records() []m.ConversionRecord {
	return r.records
}
