package catalog

import (
	"regexp"

	m "github.com/mouse-blink/vbs2js/internal/model"
)

// methodRules rewrites host-object calls and built-in call statements to their
// closest browser/console counterparts.
func methodRules() []m.Rule {
	return []m.Rule{
		{Match: regexp.MustCompile(`(?i:WScript)\.(?i:Echo)\s+(.+)$`), Template: "console.log($1)"},
		{Match: regexp.MustCompile(`(?i:WScript)\.(?i:Echo)\s*$`), Template: `console.log("")`},
		{Match: regexp.MustCompile(`(?i:Response)\.(?i:Write)\s*\((.+)\)\s*$`), Template: "document.write($1)"},
		{Match: regexp.MustCompile(`(?i:Response)\.(?i:Write)\s+(.+)$`), Template: "document.write($1)"},
		{Match: regexp.MustCompile(`\b(?i:MsgBox)\s*\((.+)\)\s*$`), Template: "alert($1)"},
		{Match: regexp.MustCompile(`\b(?i:MsgBox)\s+(.+)$`), Template: "alert($1)"},
		{Match: regexp.MustCompile(`\b(?i:InputBox)\s*\(`), Template: "prompt("},
		{Match: regexp.MustCompile(`\b(?i:IsNumeric)\s*\(`), Template: "!isNaN("},
		{Match: regexp.MustCompile(`\b(?i:CStr)\s*\(([^()]*)\)`), Template: "String($1)"},
		{Match: regexp.MustCompile(`\b(?i:CInt)\s*\(([^()]*)\)`), Template: "parseInt($1, 10)"},
		{Match: regexp.MustCompile(`\b(?i:CDbl)\s*\(([^()]*)\)`), Template: "parseFloat($1)"},
	}
}
