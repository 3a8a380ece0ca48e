package charcount

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountEmpty(t *testing.T) {
	assert.Equal(t, Counts{}, Count(""))
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Counts
	}{
		{
			name: "two words on two lines",
			text: "a b\nc",
			want: Counts{Characters: 5, Words: 2, Lines: 2, Bytes: 5, Graphemes: 5, Columns: 3},
		},
		{
			name: "trailing newline",
			text: "hello\n",
			want: Counts{Characters: 6, Words: 1, Lines: 1, Bytes: 6, Graphemes: 6, Columns: 5},
		},
		{
			name: "only newline",
			text: "\n",
			want: Counts{Characters: 1, Words: 0, Lines: 1, Bytes: 1, Graphemes: 1, Columns: 0},
		},
		{
			name: "wide characters",
			text: "突然の死",
			want: Counts{Characters: 4, Words: 1, Lines: 1, Bytes: 12, Graphemes: 4, Columns: 8},
		},
		{
			name: "repeated spaces",
			text: "one  two   three",
			want: Counts{Characters: 16, Words: 3, Lines: 1, Bytes: 16, Graphemes: 16, Columns: 16},
		},
		{
			name: "combining mark",
			text: "e\u0301",
			want: Counts{Characters: 2, Words: 1, Lines: 1, Bytes: 3, Graphemes: 1, Columns: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.text))
		})
	}
}
