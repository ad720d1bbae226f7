package catalog

import (
	"regexp"

	m "github.com/mouse-blink/vbs2js/internal/model"
)

// operatorRules covers operator and literal spellings. Unlike the other
// categories these substitutions are independent, non-exclusive rewrites: a
// line may contain both a comparison and a logical conjunction, so every
// matching rule is applied.
func operatorRules() []m.Rule {
	return []m.Rule{
		{Match: regexp.MustCompile(`\s*<>\s*`), Template: " != "},
		{Match: regexp.MustCompile(`\s+(?i:And)\s+`), Template: " && "},
		{Match: regexp.MustCompile(`\s+(?i:Or)\s+`), Template: " || "},
		{Match: regexp.MustCompile(`\b(?i:Not)\s+`), Template: "!"},
		{Match: regexp.MustCompile(`\s+(?i:Mod)\s+`), Template: " % "},
		{Match: regexp.MustCompile(`\b(?i:True)\b`), Template: "true"},
		{Match: regexp.MustCompile(`\b(?i:False)\b`), Template: "false"},
		{Match: regexp.MustCompile(`\b(?i:Nothing)\b`), Template: "null"},
		{Match: regexp.MustCompile(`\b(?i:Null)\b`), Template: "null"},
		{Match: regexp.MustCompile(`\b(?i:Empty)\b`), Template: "undefined"},
	}
}
