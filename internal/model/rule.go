// Package model defines the data structures for script conversion.
package model

import "regexp"

// CategoryName identifies a group of rules sharing a concern.
type CategoryName string

const (
	// CategoryVariable covers variable and constant declarations.
	CategoryVariable CategoryName = "Variable"
	// CategoryObject covers object creation and binding.
	CategoryObject CategoryName = "Object-Creation"
	// CategoryFunction covers function and procedure definitions.
	CategoryFunction CategoryName = "Function/Procedure"
	// CategoryControl covers conditionals, loops and select blocks.
	CategoryControl CategoryName = "Control-Structure"
	// CategoryMethod covers host-object and built-in call statements.
	CategoryMethod CategoryName = "Method/Built-in-call"
	// CategoryOperator covers operator and literal substitutions.
	CategoryOperator CategoryName = "Operator"
)

// Rule is a single match-expression/replacement-template pair. The template
// references capture groups positionally ($1, $2, ...).
type Rule struct {
	Match    *regexp.Regexp
	Template string
}

// Category is a named, ordered sequence of rules. Order inside the slice is a
// correctness property: the converter applies the first matching rule and
// stops, unless ApplyAll is set, in which case every matching rule is applied
// in declaration order.
type Category struct {
	Name     CategoryName
	Rules    []Rule
	ApplyAll bool
}

// Apply runs the category against a single line. For exclusive categories the
// first rule whose expression matches rewrites every occurrence on the line
// and scanning stops. For ApplyAll categories every rule gets its turn against
// the output of the previous one. The boolean reports whether any rule fired.
func (c Category) Apply(line string) (string, bool) {
	matched := false

	for _, rule := range c.Rules {
		if !rule.Match.MatchString(line) {
			continue
		}

		line = rule.Match.ReplaceAllString(line, rule.Template)
		matched = true

		if !c.ApplyAll {
			break
		}
	}

	return line, matched
}
