package catalog

import (
	"regexp"

	m "github.com/mouse-blink/vbs2js/internal/model"
)

// objectRules rewrites object binding statements. Plain `Set x = y` lines are
// left to the post-processor, which strips the keyword without touching the
// right-hand side.
func objectRules() []m.Rule {
	return []m.Rule{
		{
			Match:    regexp.MustCompile(`^(?i:Set)\s+(\w+)\s*=\s*(?:(?i:WScript|Server)\.)?(?i:CreateObject)\s*\(\s*(.+?)\s*\)\s*$`),
			Template: "var $1 = new ActiveXObject($2)",
		},
		{
			Match:    regexp.MustCompile(`^(?i:Set)\s+(\w+)\s*=\s*(?i:New)\s+(\w+)\s*$`),
			Template: "var $1 = new $2()",
		},
		{
			Match:    regexp.MustCompile(`^(?i:Set)\s+(\w+)\s*=\s*(?i:Nothing)\s*$`),
			Template: "$1 = null",
		},
	}
}
