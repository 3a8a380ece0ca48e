// Package suddendeath renders text inside the "突然の死" speech balloon:
//
//	＿人人人人人人＿
//	＞　突然の死　＜
//	￣Y^Y^Y^Y^Y^Y^￣
//
// Widths are measured in terminal cells so that full-width and half-width
// text both line up.
package suddendeath

import (
	"math/rand/v2"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultText is rendered when the input is empty.
const DefaultText = "突然の死"

// Phrases are the candidates Random picks from.
var Phrases = []string{
	DefaultText,
	"圧倒的成長",
	"優勝",
	"安心と信頼",
	"SUGOI",
	"完全に理解した",
	"何もわからない",
	"ヨシ！",
}

// Generate wraps text in the balloon. Each line of text becomes one row;
// rows are padded with spaces to the widest line.
func Generate(text string) string {
	text = strings.TrimRight(text, "\n")
	if strings.TrimSpace(text) == "" {
		text = DefaultText
	}

	lines := strings.Split(text, "\n")
	width := 0
	for i, l := range lines {
		l = strings.TrimRight(l, "\r")
		lines[i] = l
		width = max(width, runewidth.StringWidth(l))
	}

	// "＞　" and "　＜" are 4 cells each; "＿" + n×"人" + "＿" must match.
	n := (width+1)/2 + 2

	var sb strings.Builder
	sb.WriteString("＿" + strings.Repeat("人", n) + "＿\n")
	for _, l := range lines {
		pad := width - runewidth.StringWidth(l)
		if (width % 2) == 1 {
			pad++
		}
		sb.WriteString("＞　" + l + strings.Repeat(" ", pad) + "　＜\n")
	}
	sb.WriteString("￣" + strings.Repeat("Y^", n) + "￣")

	return sb.String()
}

// Random renders a phrase chosen by seed. The same seed always produces the
// same output.
func Random(seed uint64) string {
	rng := rand.New(rand.NewPCG(seed, ^seed)) //nolint:gosec // novelty output
	return Generate(Phrases[rng.IntN(len(Phrases))])
}
