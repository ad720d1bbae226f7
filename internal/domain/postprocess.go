package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The post-processor is a second, unconditional pass over every non-skipped
// line. Its rewrites are independent and non-exclusive: each runs against the
// output of the previous one, in the fixed order of postProcess below.

var (
	setKeywordRe = regexp.MustCompile(`^(?i:Set)\s+`)

	// Concatenation is only rewritten where the ampersand is flanked by
	// operand characters, so an already-converted && never matches twice.
	concatRe = regexp.MustCompile(`([\w"')\]])\s*&\s*([\w"'($])`)

	midRe   = regexp.MustCompile(`\b(?i:Mid)\(\s*([^(),]+?)\s*,\s*([^(),]+?)\s*(?:,\s*([^(),]+?)\s*)?\)`)
	inStrRe = regexp.MustCompile(`\b(?i:InStr)\(\s*([^(),]+?)\s*,\s*([^(),]+?)\s*(?:,\s*([^(),]+?)\s*)?\)`)

	sigilRe = regexp.MustCompile(`(^|[^$\w.])([A-Za-z_]\w*)(\s*)(=+)`)
)

type patternRewrite struct {
	re       *regexp.Regexp
	template string
}

// Simple-argument string built-ins. Nested or comma-bearing arguments fail
// the character classes and leave the call unconverted, which is the intended
// silent-miss behavior.
var builtinRewrites = []patternRewrite{
	{regexp.MustCompile(`\b(?i:Len)\(\s*([^(),]+?)\s*\)`), "$1.length"},
	{regexp.MustCompile(`\b(?i:UCase)\(\s*([^(),]+?)\s*\)`), "$1.toUpperCase()"},
	{regexp.MustCompile(`\b(?i:LCase)\(\s*([^(),]+?)\s*\)`), "$1.toLowerCase()"},
	{regexp.MustCompile(`\b(?i:Trim)\(\s*([^(),]+?)\s*\)`), "$1.trim()"},
	{regexp.MustCompile(`\b(?i:Left)\(\s*([^(),]+?)\s*,\s*([^()]+?)\s*\)`), "$1.substr(0, $2)"},
	{regexp.MustCompile(`\b(?i:Right)\(\s*([^(),]+?)\s*,\s*([^()]+?)\s*\)`), "$1.slice(-$2)"},
	{regexp.MustCompile(`\b(?i:Replace)\(\s*([^(),]+?)\s*,\s*([^(),]+?)\s*,\s*([^()]+?)\s*\)`), "$1.replace($2, $3)"},
}

var symbolicConstants = []patternRewrite{
	{regexp.MustCompile(`\b(?i:vbCrLf)\b`), `"\r\n"`},
	{regexp.MustCompile(`\b(?i:vbCr)\b`), `"\r"`},
	{regexp.MustCompile(`\b(?i:vbLf)\b`), `"\n"`},
	{regexp.MustCompile(`\b(?i:vbTab)\b`), `"\t"`},
	{regexp.MustCompile(`\b(?i:vbNullString)\b`), `""`},
}

// Identifiers that must never receive a sigil, and keywords whose following
// identifier is a declaration rather than a bare reference.
var sigilSkipWords = map[string]struct{}{
	"var":      {},
	"const":    {},
	"function": {},
	"new":      {},
	"return":   {},
	"case":     {},
	"default":  {},
}

func postProcess(line string) string {
	line = stripSetKeyword(line)
	line = normalizeConcat(line)
	line = rewriteStringBuiltins(line)
	line = rewriteSymbolicConstants(line)
	line = insertSigils(line)

	return line
}

func stripSetKeyword(line string) string {
	return setKeywordRe.ReplaceAllString(line, "")
}

// normalizeConcat loops to a fixpoint because chained concatenations share
// operand characters between adjacent matches.
func normalizeConcat(line string) string {
	for {
		next := concatRe.ReplaceAllString(line, "$1 + $2")
		if next == line {
			return line
		}

		line = next
	}
}

func rewriteStringBuiltins(line string) string {
	for _, rw := range builtinRewrites {
		line = rw.re.ReplaceAllString(line, rw.template)
	}

	line = rewriteMid(line)
	line = rewriteInStr(line)

	return line
}

// rewriteMid converts the 1-based Mid(s, start[, length]) to the 0-based
// substr form.
func rewriteMid(line string) string {
	return midRe.ReplaceAllStringFunc(line, func(call string) string {
		sub := midRe.FindStringSubmatch(call)
		expr, start, length := sub[1], sub[2], sub[3]

		if length == "" {
			return fmt.Sprintf("%s.substr(%s)", expr, zeroBased(start))
		}

		return fmt.Sprintf("%s.substr(%s, %s)", expr, zeroBased(start), length)
	})
}

// rewriteInStr handles both argument shapes: InStr(s, sub) and the
// three-argument InStr(start, s, sub), where start is 1-based.
func rewriteInStr(line string) string {
	return inStrRe.ReplaceAllStringFunc(line, func(call string) string {
		sub := inStrRe.FindStringSubmatch(call)
		if sub[3] == "" {
			return fmt.Sprintf("%s.indexOf(%s)", sub[1], sub[2])
		}

		return fmt.Sprintf("%s.indexOf(%s, %s)", sub[2], sub[3], zeroBased(sub[1]))
	})
}

func zeroBased(start string) string {
	if n, err := strconv.Atoi(start); err == nil {
		return strconv.Itoa(n - 1)
	}

	return fmt.Sprintf("(%s - 1)", start)
}

func rewriteSymbolicConstants(line string) string {
	for _, rw := range symbolicConstants {
		line = rw.re.ReplaceAllString(line, rw.template)
	}

	return line
}

// insertSigils prefixes bare identifiers on the left of a single `=` with the
// review sigil. Identifiers already marked, member accesses, comparison
// operands and identifiers directly after a declaration keyword are skipped,
// so running the pass twice never double-marks.
func insertSigils(line string) string {
	matches := sigilRe.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return line
	}

	var b strings.Builder

	last := 0

	for _, ix := range matches {
		identStart, identEnd := ix[4], ix[5]
		eqStart, eqEnd := ix[8], ix[9]

		// A run of more than one `=` is a comparison, not an assignment.
		if eqEnd-eqStart != 1 {
			continue
		}

		ident := strings.ToLower(line[identStart:identEnd])
		if _, skip := sigilSkipWords[ident]; skip {
			continue
		}

		if word := trailingWord(line[:identStart]); word != "" {
			if _, skip := sigilSkipWords[word]; skip {
				continue
			}
		}

		b.WriteString(line[last:identStart])
		b.WriteString("$")
		last = identStart
	}

	b.WriteString(line[last:])

	return b.String()
}

func trailingWord(s string) string {
	s = strings.TrimRight(s, " \t")

	end := len(s)
	start := end

	for start > 0 {
		c := s[start-1]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			start--
			continue
		}

		break
	}

	return strings.ToLower(s[start:end])
}
