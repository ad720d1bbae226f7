package catalog

import (
	"regexp"

	m "github.com/mouse-blink/vbs2js/internal/model"
)

// functionRules rewrites procedure definitions. Sub and Function collapse to
// the same JavaScript form; the return-value-through-name convention of the
// source dialect is not emulated.
func functionRules() []m.Rule {
	return []m.Rule{
		{Match: regexp.MustCompile(`^(?:(?i:Public|Private)\s+)?(?i:Function)\s+(\w+)\s*\((.*)\)\s*$`), Template: "function $1($2) {"},
		{Match: regexp.MustCompile(`^(?:(?i:Public|Private)\s+)?(?i:Function)\s+(\w+)\s*$`), Template: "function $1() {"},
		{Match: regexp.MustCompile(`^(?:(?i:Public|Private)\s+)?(?i:Sub)\s+(\w+)\s*\((.*)\)\s*$`), Template: "function $1($2) {"},
		{Match: regexp.MustCompile(`^(?:(?i:Public|Private)\s+)?(?i:Sub)\s+(\w+)\s*$`), Template: "function $1() {"},
		{Match: regexp.MustCompile(`^(?i:End)\s+(?i:Function)\s*$`), Template: "}"},
		{Match: regexp.MustCompile(`^(?i:End)\s+(?i:Sub)\s*$`), Template: "}"},
		{Match: regexp.MustCompile(`^(?i:Exit)\s+(?i:Function)\s*$`), Template: "return"},
		{Match: regexp.MustCompile(`^(?i:Exit)\s+(?i:Sub)\s*$`), Template: "return"},
		{Match: regexp.MustCompile(`^(?i:Call)\s+(\w+)\s*\((.*)\)\s*$`), Template: "$1($2)"},
		{Match: regexp.MustCompile(`^(?i:Call)\s+(\w+)\s*$`), Template: "$1()"},
	}
}
