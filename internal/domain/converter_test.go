package domain

import (
	"strings"
	"testing"

	"github.com/mouse-blink/vbs2js/internal/catalog"
	m "github.com/mouse-blink/vbs2js/internal/model"
)

func newTestConverter(opts ...ConverterOption) Converter {
	return NewConverter(catalog.New(), opts...)
}

func TestConvert_LineCountPreservation(t *testing.T) {
	script := strings.Join([]string{
		"' header comment",
		"",
		"Dim counter",
		"If counter > 5 Then",
		`WScript.Echo "big"`,
		"End If",
		"",
	}, "\n")

	out := newTestConverter().Convert(script, nil)

	inLines := strings.Count(script, "\n") + 1
	outLines := strings.Count(out, "\n") + 1

	if outLines != inLines {
		t.Errorf("line count changed: input %d, output %d", inLines, outLines)
	}
}

func TestConvert_SkipsBlankAndCommentLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "empty line", line: ""},
		{name: "whitespace only", line: "   \t"},
		{name: "full comment", line: "' just a note"},
		{name: "indented comment", line: "    ' indented note"},
	}

	conv := newTestConverter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conv.Convert(tt.line, nil)
			if got != tt.line {
				t.Errorf("Convert(%q) = %q, want unchanged", tt.line, got)
			}
		})
	}
}

func TestConvert_RoundTrips(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "variable declaration",
			line: "Dim counter",
			want: "var counter",
		},
		{
			name: "host output call",
			line: `WScript.Echo "Hello"`,
			want: `console.log("Hello")`,
		},
		{
			name: "conditional header",
			line: "If x > 5 Then",
			want: "if (x > 5) {",
		},
		{
			name: "left substring with zero base",
			line: "result = Left(name, 3)",
			want: "$result = name.substr(0, 3)",
		},
		{
			name: "mid-line comment split",
			line: "x = 1 'init",
			want: "$x = 1 // init",
		},
		{
			name: "object creation",
			line: `Set fso = CreateObject("Scripting.FileSystemObject")`,
			want: `var fso = new ActiveXObject("Scripting.FileSystemObject")`,
		},
		{
			name: "loop header with step",
			line: "For i = 1 To 10 Step 2",
			want: "for (var i = 1; i <= 10; i += 2) {",
		},
		{
			name: "concatenation with symbolic constant",
			line: `msg = "a" & name & vbCrLf`,
			want: `$msg = "a" + name + "\r\n"`,
		},
		{
			name: "mid substring index adjustment",
			line: "part = Mid(s, 3, 4)",
			want: "$part = s.substr(2, 4)",
		},
		{
			name: "unmatched line only post-processed",
			line: "total = total + 1",
			want: "$total = total + 1",
		},
	}

	conv := newTestConverter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conv.Convert(tt.line, nil)
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

// A line matching rules in two categories takes both substitutions, always in
// declared category order: the later category sees the earlier one's output.
func TestConvert_CategoryOrderIsCumulative(t *testing.T) {
	conv := newTestConverter()

	rec := NewRecorder()

	got := conv.Convert("If IsNumeric(x) Then", rec)

	want := "if (!isNaN(x)) {"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	records := rec.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	if records[0].Category != m.CategoryControl || records[1].Category != m.CategoryMethod {
		t.Errorf("records out of category order: %s then %s", records[0].Category, records[1].Category)
	}

	// The Method category must have seen the Control category's output.
	if records[1].Original != records[0].Converted {
		t.Errorf("method pass saw %q, want %q", records[1].Original, records[0].Converted)
	}
}

func TestConvert_ReporterDoesNotAffectOutput(t *testing.T) {
	conv := newTestConverter()

	rec := NewRecorder()
	_ = conv.Convert("Dim a\nDim b", rec)

	if len(rec.Records()) != 2 {
		t.Errorf("expected 2 records with reporter, got %d", len(rec.Records()))
	}

	// Without a reporter the same input produces the same text and no records
	// exist anywhere to observe; this just pins the text equality.
	withReporter := conv.Convert("Dim a\nDim b", NewRecorder())
	withoutReporter := conv.Convert("Dim a\nDim b", nil)

	if withReporter != withoutReporter {
		t.Errorf("reporter changed the output: %q vs %q", withReporter, withoutReporter)
	}
}

func TestConvert_CommentMarkerInsideStringStillSplits(t *testing.T) {
	conv := newTestConverter()

	// No quote tracking: the first marker wins even inside a literal.
	got := conv.Convert(`msg = "don't panic"`, nil)

	want := `$msg = "don // t panic"`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConvert_ParallelMatchesSequential(t *testing.T) {
	lines := []string{
		"' sample script",
		"Dim total, i",
		"total = 0",
		"For i = 1 To 100",
		"If i Mod 2 = 0 Then",
		"total = total + i",
		"End If",
		"Next",
		`WScript.Echo "total: " & total`,
		"",
	}
	script := strings.Join(lines, "\n")

	seqRec := NewRecorder()
	seq := newTestConverter().Convert(script, seqRec)

	parRec := NewRecorder()
	par := newTestConverter(WithThreads(4)).Convert(script, parRec)

	if seq != par {
		t.Errorf("parallel output differs from sequential:\n%q\n%q", seq, par)
	}

	if len(seqRec.Records()) != len(parRec.Records()) {
		t.Fatalf("record counts differ: %d vs %d", len(seqRec.Records()), len(parRec.Records()))
	}

	for i := range seqRec.Records() {
		if seqRec.Records()[i] != parRec.Records()[i] {
			t.Errorf("record %d differs: %+v vs %+v", i, seqRec.Records()[i], parRec.Records()[i])
		}
	}
}
