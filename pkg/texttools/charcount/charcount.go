// Package charcount counts characters, words, lines and bytes in text.
package charcount

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Counts is the result of Count.
type Counts struct {
	Characters int // Unicode code points
	Words      int // runs separated by horizontal whitespace
	Lines      int // '\n'-separated segments; a trailing '\n' does not open a line
	Bytes      int // UTF-8 encoded length
	Graphemes  int // user-perceived characters
	Columns    int // display width of the widest line in terminal cells
}

// Count returns the counts for text. The zero Counts is returned for "".
func Count(text string) Counts {
	if text == "" {
		return Counts{}
	}

	return Counts{
		Characters: utf8.RuneCountInString(text),
		Words:      countWords(text),
		Lines:      countLines(text),
		Bytes:      len(text),
		Graphemes:  uniseg.GraphemeClusterCount(text),
		Columns:    widestLine(text),
	}
}

// isHorizontalSpace reports whether r separates words. Line breaks do not.
func isHorizontalSpace(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x85, 0x2028, 0x2029:
		return false
	}
	return unicode.IsSpace(r)
}

func countWords(text string) int {
	n := 0
	for _, field := range strings.FieldsFunc(text, isHorizontalSpace) {
		if strings.IndexFunc(field, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0 {
			n++
		}
	}
	return n
}

func countLines(text string) int {
	n := strings.Count(text, "\n") + 1
	if strings.HasSuffix(text, "\n") {
		n--
	}
	return n
}

func widestLine(text string) int {
	widest := 0
	for line := range strings.SplitSeq(text, "\n") {
		widest = max(widest, runewidth.StringWidth(strings.TrimSuffix(line, "\r")))
	}
	return widest
}
