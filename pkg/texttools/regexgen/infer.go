// Package regexgen builds regular expressions from example strings and
// example strings from regular expressions.
package regexgen

import (
	"fmt"
	"regexp"
	"strings"
)

type class int

const (
	classLiteral class = iota
	classDigit
	classLower
	classUpper
	classAlpha
	classWord
	classSpace
)

var classPatterns = map[class]string{
	classDigit: `\d`,
	classLower: `[a-z]`,
	classUpper: `[A-Z]`,
	classAlpha: `[A-Za-z]`,
	classWord:  `\w`,
	classSpace: `\s`,
}

// level controls how aggressively runes are merged into classes.
type level int

const (
	levelFine   level = iota // digits, lower, upper, space
	levelLetter              // lower and upper merged
	levelWord                // digits, letters and '_' merged
)

// maxCounted is the largest bound Go's regexp accepts in {n,m}.
const maxCounted = 1000

type token struct {
	class class
	lit   rune
	n     int
}

func classify(r rune, lv level) class {
	var c class
	switch {
	case r >= '0' && r <= '9':
		c = classDigit
	case r >= 'a' && r <= 'z':
		c = classLower
	case r >= 'A' && r <= 'Z':
		c = classUpper
	case r == ' ' || r == '\t':
		return classSpace
	case r == '_' && lv == levelWord:
		return classWord
	default:
		return classLiteral
	}

	switch lv {
	case levelLetter:
		if c == classLower || c == classUpper {
			return classAlpha
		}
	case levelWord:
		return classWord
	}
	return c
}

func tokenize(s string, lv level) []token {
	var toks []token
	for _, r := range s {
		c := classify(r, lv)
		if n := len(toks); n > 0 {
			last := &toks[n-1]
			if last.class == c && (c != classLiteral || last.lit == r) {
				last.n++
				continue
			}
		}
		toks = append(toks, token{class: c, lit: r, n: 1})
	}
	return toks
}

// Infer returns an anchored regular expression that matches every sample.
// It generalises runs of digits and letters into character classes when all
// samples share the same shape and otherwise falls back to an alternation of
// the literal samples. An empty sample list yields "^$".
func Infer(samples []string) string {
	if len(samples) == 0 {
		return "^$"
	}

	for _, lv := range []level{levelFine, levelLetter, levelWord} {
		if p, ok := inferAt(samples, lv); ok {
			return p
		}
	}

	return alternation(samples)
}

func inferAt(samples []string, lv level) (string, bool) {
	shape := tokenize(samples[0], lv)
	mins := make([]int, len(shape))
	maxs := make([]int, len(shape))
	for i, t := range shape {
		mins[i], maxs[i] = t.n, t.n
	}

	for _, s := range samples[1:] {
		toks := tokenize(s, lv)
		if len(toks) != len(shape) {
			return "", false
		}
		for i, t := range toks {
			if t.class != shape[i].class || (t.class == classLiteral && t.lit != shape[i].lit) {
				return "", false
			}
			mins[i] = min(mins[i], t.n)
			maxs[i] = max(maxs[i], t.n)
		}
	}

	var sb strings.Builder
	sb.WriteString("^")
	for i, t := range shape {
		if t.class == classLiteral {
			sb.WriteString(regexp.QuoteMeta(string(t.lit)))
		} else {
			sb.WriteString(classPatterns[t.class])
		}
		sb.WriteString(quantifier(mins[i], maxs[i]))
	}
	sb.WriteString("$")

	return sb.String(), true
}

func quantifier(lo, hi int) string {
	switch {
	case hi > maxCounted:
		return "+"
	case lo == 1 && hi == 1:
		return ""
	case lo == hi:
		return fmt.Sprintf("{%d}", lo)
	default:
		return fmt.Sprintf("{%d,%d}", lo, hi)
	}
}

func alternation(samples []string) string {
	seen := make(map[string]struct{}, len(samples))
	quoted := make([]string, 0, len(samples))
	for _, s := range samples {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		quoted = append(quoted, regexp.QuoteMeta(s))
	}
	return "^(?:" + strings.Join(quoted, "|") + ")$"
}
