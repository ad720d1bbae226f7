package catalog

import (
	"testing"

	m "github.com/mouse-blink/vbs2js/internal/model"
)

func TestControlRules(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "block if",
			line: "If x > 5 Then",
			want: "if (x > 5) {",
		},
		{
			name: "inline if keeps statement",
			line: "If x = 1 Then y = 2",
			want: "if (x = 1) { y = 2 }",
		},
		{
			name: "elseif",
			line: "ElseIf x < 2 Then",
			want: "} else if (x < 2) {",
		},
		{
			name: "else",
			line: "Else",
			want: "} else {",
		},
		{
			name: "end if",
			line: "End If",
			want: "}",
		},
		{
			name: "for loop",
			line: "For i = 1 To 10",
			want: "for (var i = 1; i <= 10; i++) {",
		},
		{
			name: "for each",
			line: "For Each key In dict",
			want: "for (var key in dict) {",
		},
		{
			name: "next with counter",
			line: "Next i",
			want: "}",
		},
		{
			name: "do while",
			line: "Do While x < 3",
			want: "while (x < 3) {",
		},
		{
			name: "do until",
			line: "Do Until done",
			want: "while (!(done)) {",
		},
		{
			name: "wend",
			line: "Wend",
			want: "}",
		},
		{
			name: "select case",
			line: "Select Case mode",
			want: "switch (mode) {",
		},
		{
			name: "case",
			line: "Case 1",
			want: "case 1:",
		},
		{
			name: "case else",
			line: "Case Else",
			want: "default:",
		},
		{
			name: "end select",
			line: "End Select",
			want: "}",
		},
	}

	category := m.Category{Name: m.CategoryControl, Rules: controlRules()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := category.Apply(tt.line)
			if !matched {
				t.Fatalf("Apply(%q) did not match any rule", tt.line)
			}
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

// A For header with a Step clause structurally matches both For rules. Only
// the earlier-declared Step rule may win.
func TestControlRules_FirstMatchWins(t *testing.T) {
	category := m.Category{Name: m.CategoryControl, Rules: controlRules()}

	got, matched := category.Apply("For i = 1 To 10 Step 2")
	if !matched {
		t.Fatal("expected a rule to match")
	}

	want := "for (var i = 1; i <= 10; i += 2) {"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
