package baseconv

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		number   string
		from, to int
		want     string
	}{
		{"FF", 16, 10, "255"},
		{"ff", 16, 10, "255"},
		{"10", 2, 10, "2"},
		{"255", 10, 16, "ff"},
		{"255", 10, 2, "11111111"},
		{"-42", 10, 16, "-2a"},
		{"+42", 10, 10, "42"},
		{"0000", 10, 2, "0"},
		{"-0", 10, 10, "0"},
		{"  z ", 36, 10, "35"},
		{"18446744073709551616", 10, 16, "10000000000000000"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%d_to_%d", tt.number, tt.from, tt.to), func(t *testing.T) {
			got, err := Convert(tt.number, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertInvalidDigit(t *testing.T) {
	_, err := Convert("12a4", 10, 2)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Pos)
	assert.Equal(t, 'a', pe.Digit)
	assert.Equal(t, 10, pe.Base)
}

func TestConvertInvalidDigitAfterSign(t *testing.T) {
	_, err := Convert("-102", 2, 10)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Pos)
	assert.Equal(t, '2', pe.Digit)
}

func TestConvertEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "-", "+"} {
		_, err := Convert(in, 10, 2)
		var pe *ParseError
		require.ErrorAs(t, err, &pe, "input %q", in)
		assert.Equal(t, -1, pe.Pos)
	}
}

func TestConvertBaseRange(t *testing.T) {
	var be *BaseError

	_, err := Convert("1", 1, 10)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 1, be.Base)

	_, err = Convert("1", 10, 37)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 37, be.Base)
}

func TestRoundTripIsCanonical(t *testing.T) {
	numerals := []struct {
		n    string
		base int
	}{
		{"0", 2},
		{"00101", 2},
		{"-777", 8},
		{"+123456789012345678901234567890", 10},
		{"DeadBeef", 16},
		{"sugoi", 36},
	}

	for _, src := range numerals {
		for to := MinBase; to <= MaxBase; to++ {
			there, err := Convert(src.n, src.base, to)
			require.NoError(t, err)
			back, err := Convert(there, to, src.base)
			require.NoError(t, err)
			canon, err := Canonical(src.n, src.base)
			require.NoError(t, err)
			assert.Equal(t, canon, back, "%s (base %d) via base %d", src.n, src.base, to)
		}
	}
}

func TestCanonical(t *testing.T) {
	got, err := Canonical("+00FF", 16)
	require.NoError(t, err)
	assert.Equal(t, "ff", got)
}

func TestCommon(t *testing.T) {
	rows, err := Common("255", 10)
	require.NoError(t, err)
	assert.Equal(t, []Conversion{
		{Base: 2, Value: "11111111"},
		{Base: 8, Value: "377"},
		{Base: 10, Value: "255"},
		{Base: 16, Value: "ff"},
	}, rows)

	_, err = Common("xyz", 10)
	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
}
