package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "short", in: "abc", n: 5, want: "abc"},
		{name: "exact", in: "abcde", n: 5, want: "abcde"},
		{name: "cut", in: "abcdef", n: 4, want: "abc…"},
		{name: "runes", in: "突然の死です", n: 3, want: "突然…"},
		{name: "one", in: "abc", n: 1, want: "…"},
		{name: "no limit", in: "abc", n: 0, want: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.n))
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	InitMarkdownRenderer(40)
	out := RenderMarkdown("# Hello")
	assert.Contains(t, out, "Hello")
}
