package catalog

import (
	"regexp"

	m "github.com/mouse-blink/vbs2js/internal/model"
)

// controlRules rewrites block openers and closers line by line. Each construct
// maps to an independent single-line replacement, so a For header and its Next
// are converted without any shared state between them.
//
// Rule order matters: the Step form of For must come before the plain form,
// which would otherwise swallow the Step clause into its condition capture.
func controlRules() []m.Rule {
	return []m.Rule{
		{Match: regexp.MustCompile(`^(?i:If)\s+(.+?)\s+(?i:Then)\s*$`), Template: "if ($1) {"},
		{Match: regexp.MustCompile(`^(?i:If)\s+(.+?)\s+(?i:Then)\s+(.+)$`), Template: "if ($1) { $2 }"},
		{Match: regexp.MustCompile(`^(?i:ElseIf)\s+(.+?)\s+(?i:Then)\s*$`), Template: "} else if ($1) {"},
		{Match: regexp.MustCompile(`^(?i:Else)\s*$`), Template: "} else {"},
		{Match: regexp.MustCompile(`^(?i:End)\s+(?i:If)\s*$`), Template: "}"},
		{Match: regexp.MustCompile(`^(?i:For)\s+(?i:Each)\s+(\w+)\s+(?i:In)\s+(.+)$`), Template: "for (var $1 in $2) {"},
		{Match: regexp.MustCompile(`^(?i:For)\s+(\w+)\s*=\s*(\S+)\s+(?i:To)\s+(\S+)\s+(?i:Step)\s+(\S+)\s*$`), Template: "for (var $1 = $2; $1 <= $3; $1 += $4) {"},
		{Match: regexp.MustCompile(`^(?i:For)\s+(\w+)\s*=\s*(\S+)\s+(?i:To)\s+(\S+).*$`), Template: "for (var $1 = $2; $1 <= $3; $1++) {"},
		{Match: regexp.MustCompile(`^(?i:Next)\b.*$`), Template: "}"},
		{Match: regexp.MustCompile(`^(?i:Do)\s+(?i:While)\s+(.+)$`), Template: "while ($1) {"},
		{Match: regexp.MustCompile(`^(?i:Do)\s+(?i:Until)\s+(.+)$`), Template: "while (!($1)) {"},
		{Match: regexp.MustCompile(`^(?i:While)\s+(.+)$`), Template: "while ($1) {"},
		{Match: regexp.MustCompile(`^(?i:Loop)\s*$`), Template: "}"},
		{Match: regexp.MustCompile(`^(?i:Wend)\s*$`), Template: "}"},
		{Match: regexp.MustCompile(`^(?i:Select)\s+(?i:Case)\s+(.+)$`), Template: "switch ($1) {"},
		{Match: regexp.MustCompile(`^(?i:Case)\s+(?i:Else)\s*$`), Template: "default:"},
		{Match: regexp.MustCompile(`^(?i:Case)\s+(.+)$`), Template: "case $1:"},
		{Match: regexp.MustCompile(`^(?i:End)\s+(?i:Select)\s*$`), Template: "}"},
	}
}
