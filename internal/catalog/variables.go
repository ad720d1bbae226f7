package catalog

import (
	"regexp"

	m "github.com/mouse-blink/vbs2js/internal/model"
)

// variableRules rewrites variable and constant declarations. Dim lists carry
// over verbatim because JavaScript accepts the same comma-separated form.
func variableRules() []m.Rule {
	return []m.Rule{
		{Match: regexp.MustCompile(`^(?i:Dim)\s+(.+)$`), Template: "var $1"},
		{Match: regexp.MustCompile(`^(?i:ReDim)(?:\s+(?i:Preserve))?\s+(\w+).*$`), Template: "var $1 = []"},
		{Match: regexp.MustCompile(`^(?i:Const)\s+(\w+)\s*=\s*(.+)$`), Template: "const $1 = $2"},
		{Match: regexp.MustCompile(`^(?i:Public|Private)\s+(\w+(?:\s*,\s*\w+)*)\s*$`), Template: "var $1"},
	}
}
