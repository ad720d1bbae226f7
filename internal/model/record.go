package model

// ConversionRecord captures a single category match for reporting. Records are
// collected only when progress reporting is requested and never influence the
// converted text.
type ConversionRecord struct {
	Category  CategoryName
	Original  string
	Converted string
}

// ConversionResult is the outcome of converting one script.
type ConversionResult struct {
	Body    string
	Lines   int
	Records []ConversionRecord
}
