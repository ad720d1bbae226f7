package catalog

import (
	"testing"

	m "github.com/mouse-blink/vbs2js/internal/model"
)

func TestVariableRules(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		matched bool
	}{
		{
			name:    "simple dim",
			line:    "Dim counter",
			want:    "var counter",
			matched: true,
		},
		{
			name:    "dim list",
			line:    "Dim a, b, c",
			want:    "var a, b, c",
			matched: true,
		},
		{
			name:    "lowercase keyword",
			line:    "dim total",
			want:    "var total",
			matched: true,
		},
		{
			name:    "const declaration",
			line:    "Const MAX = 10",
			want:    "const MAX = 10",
			matched: true,
		},
		{
			name:    "redim preserve",
			line:    "ReDim Preserve arr(20)",
			want:    "var arr = []",
			matched: true,
		},
		{
			name:    "private declaration",
			line:    "Private counter",
			want:    "var counter",
			matched: true,
		},
		{
			name:    "public function is not a variable",
			line:    "Public Function Add(a, b)",
			want:    "Public Function Add(a, b)",
			matched: false,
		},
		{
			name:    "plain assignment",
			line:    "counter = 1",
			want:    "counter = 1",
			matched: false,
		},
	}

	category := m.Category{Name: m.CategoryVariable, Rules: variableRules()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched := category.Apply(tt.line)
			if got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.line, got, tt.want)
			}
			if matched != tt.matched {
				t.Errorf("Apply(%q) matched = %v, want %v", tt.line, matched, tt.matched)
			}
		})
	}
}
