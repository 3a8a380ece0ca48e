package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Route
	}{
		{"#/base64", Base64},
		{"#/digest", Digest},
		{"#/base-conv", BaseConverter},
		{"#/wc", CharCounter},
		{"#/regex", Regex},
		{"#/sudden-death", SuddenDeath},
		{"/static/#/digest", Digest},
		{"#/digest/", Digest},
		{"#digest", Digest},
		{"  #/WC ", CharCounter},
		{"", Index},
		{"#/", Index},
		{"#/nope", Index},
		{"/static/", Index},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		in     string
		want   Route
		wantOK bool
	}{
		{"digest", Digest, true},
		{"sudden-death", SuddenDeath, true},
		{"#/wc", CharCounter, true},
		{"", Index, true},
		{"#/", Index, true},
		{"digets", Index, false},
		{"#/nope", Index, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Lookup(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestPathRoundTrip(t *testing.T) {
	for _, r := range All() {
		got, ok := Lookup(r.Path())
		assert.True(t, ok, r.String())
		assert.Equal(t, r, got)
	}
	assert.Equal(t, "", Index.Path())
	assert.Equal(t, "wc", CharCounter.Path())
}

func TestFragmentRoundTrip(t *testing.T) {
	for _, r := range All() {
		assert.Equal(t, r, Parse(r.Fragment()), r.String())
	}
	assert.Equal(t, "#/", Index.Fragment())
	assert.Equal(t, "#/base-conv", BaseConverter.Fragment())
}

func TestZeroValueStartsAtIndex(t *testing.T) {
	var r Router
	assert.Equal(t, Index, r.Current())
}

func TestNavigate(t *testing.T) {
	r := New(Index)

	tr, ok := r.NavigateFragment("#/digest")
	assert.True(t, ok)
	assert.Equal(t, Transition{From: Index, To: Digest}, tr)
	assert.Equal(t, Digest, r.Current())

	_, ok = r.Navigate(Digest)
	assert.False(t, ok, "same route is a no-op")
	assert.Equal(t, Digest, r.Current())
}

func TestBackForward(t *testing.T) {
	r := New(Index)
	r.Navigate(Base64)
	r.Navigate(Digest)

	tr, ok := r.Back()
	assert.True(t, ok)
	assert.Equal(t, Transition{From: Digest, To: Base64}, tr)

	tr, ok = r.Back()
	assert.True(t, ok)
	assert.Equal(t, Transition{From: Base64, To: Index}, tr)

	_, ok = r.Back()
	assert.False(t, ok)
	assert.True(t, r.CanForward())

	tr, ok = r.Forward()
	assert.True(t, ok)
	assert.Equal(t, Transition{From: Index, To: Base64}, tr)

	// A fresh navigation drops the forward history.
	r.Navigate(Regex)
	assert.False(t, r.CanForward())
	_, ok = r.Forward()
	assert.False(t, ok)
	assert.True(t, r.CanBack())
}

func TestString(t *testing.T) {
	assert.Equal(t, "base-converter", BaseConverter.String())
	assert.Equal(t, "unknown", Route(99).String())
}
