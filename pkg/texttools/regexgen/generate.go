package regexgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"regexp/syntax"
	"strings"
	"unicode"
)

// maxRepeat bounds how many extra repetitions '*', '+' and open-ended
// {n,} may produce.
const maxRepeat = 8

// maxAttempts bounds how many candidates are tried per sample before the
// pattern is reported as unmatchable. Assertions such as `a$b` are skipped
// while walking, so a candidate can miss the pattern.
const maxAttempts = 100

var errNoMatch = errors.New("pattern matches nothing")

// PatternError reports a pattern that cannot be used for generation.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("regexgen: pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Generate returns n pseudo-random strings matched by pattern. The same
// pattern, n and seed always produce the same strings.
func Generate(pattern string, n int, seed uint64) ([]string, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	full, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	g := generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // novelty output, not security sensitive

	out := make([]string, 0, max(n, 0))
	for range n {
		s, err := g.sample(re, full)
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Err: err}
		}
		out = append(out, s)
	}

	return out, nil
}

// sample walks re until a candidate fully matches full.
func (g generator) sample(re *syntax.Regexp, full *regexp.Regexp) (string, error) {
	for range maxAttempts {
		var sb strings.Builder
		if err := g.walk(&sb, re); err != nil {
			return "", err
		}
		if full.MatchString(sb.String()) {
			return sb.String(), nil
		}
	}
	return "", errNoMatch
}

type generator struct {
	rng *rand.Rand
}

func (g generator) walk(sb *strings.Builder, re *syntax.Regexp) error {
	switch re.Op {
	case syntax.OpNoMatch:
		return errNoMatch

	case syntax.OpLiteral:
		for _, r := range re.Rune {
			if re.Flags&syntax.FoldCase != 0 {
				if g.rng.IntN(2) == 0 {
					r = unicode.ToUpper(r)
				} else {
					r = unicode.ToLower(r)
				}
			}
			sb.WriteRune(r)
		}

	case syntax.OpCharClass:
		r, ok := g.pickFromClass(re.Rune)
		if !ok {
			return errNoMatch
		}
		sb.WriteRune(r)

	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		sb.WriteRune(rune(0x20 + g.rng.IntN(0x7f-0x20)))

	case syntax.OpCapture:
		return g.walk(sb, re.Sub[0])

	case syntax.OpStar:
		return g.repeat(sb, re.Sub[0], 0, maxRepeat)

	case syntax.OpPlus:
		return g.repeat(sb, re.Sub[0], 1, 1+maxRepeat)

	case syntax.OpQuest:
		return g.repeat(sb, re.Sub[0], 0, 1)

	case syntax.OpRepeat:
		hi := re.Max
		if hi < 0 {
			hi = re.Min + maxRepeat
		}
		return g.repeat(sb, re.Sub[0], re.Min, hi)

	case syntax.OpConcat:
		for _, sub := range re.Sub {
			if err := g.walk(sb, sub); err != nil {
				return err
			}
		}

	case syntax.OpAlternate:
		return g.walk(sb, re.Sub[g.rng.IntN(len(re.Sub))])

	default:
		// Zero-width assertions and empty matches emit nothing.
	}

	return nil
}

func (g generator) repeat(sb *strings.Builder, sub *syntax.Regexp, lo, hi int) error {
	n := lo
	if hi > lo {
		n += g.rng.IntN(hi - lo + 1)
	}
	for range n {
		if err := g.walk(sb, sub); err != nil {
			return err
		}
	}
	return nil
}

// pickFromClass chooses a rune from the [lo, hi] pairs in ranges, preferring
// printable ASCII when the class contains any.
func (g generator) pickFromClass(ranges []rune) (rune, bool) {
	var printable []rune
	for i := 0; i+1 < len(ranges); i += 2 {
		lo, hi := max(ranges[i], 0x20), min(ranges[i+1], 0x7e)
		if lo <= hi {
			printable = append(printable, lo, hi)
		}
	}
	if len(printable) > 0 {
		ranges = printable
	}

	var total int64
	for i := 0; i+1 < len(ranges); i += 2 {
		total += int64(ranges[i+1]-ranges[i]) + 1
	}
	if total == 0 {
		return 0, false
	}

	k := g.rng.Int64N(total)
	for i := 0; i+1 < len(ranges); i += 2 {
		size := int64(ranges[i+1]-ranges[i]) + 1
		if k < size {
			return ranges[i] + rune(k), true
		}
		k -= size
	}
	return 0, false
}
