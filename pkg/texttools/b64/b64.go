// Package b64 encodes and decodes base64 text in the standard and URL-safe
// alphabets, with or without padding.
package b64

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Alphabet selects the 64-character set used for encoding.
type Alphabet int

const (
	Standard Alphabet = iota
	URLSafe
)

func (a Alphabet) String() string {
	if a == URLSafe {
		return "url-safe"
	}
	return "standard"
}

// Variant is a combination of alphabet and padding policy.
type Variant struct {
	Alphabet Alphabet
	Padded   bool
}

// StdVariant is the RFC 4648 §4 encoding with '=' padding.
var StdVariant = Variant{Alphabet: Standard, Padded: true}

// Variants returns all four variants, padded before unpadded.
func Variants() []Variant {
	return []Variant{
		{Alphabet: Standard, Padded: true},
		{Alphabet: URLSafe, Padded: true},
		{Alphabet: Standard, Padded: false},
		{Alphabet: URLSafe, Padded: false},
	}
}

func (v Variant) String() string {
	if v.Padded {
		return v.Alphabet.String() + ", padded"
	}
	return v.Alphabet.String() + ", unpadded"
}

func (v Variant) encoding() *base64.Encoding {
	enc := base64.StdEncoding
	if v.Alphabet == URLSafe {
		enc = base64.URLEncoding
	}
	if !v.Padded {
		enc = enc.WithPadding(base64.NoPadding)
	}
	return enc.Strict()
}

// DecodeError reports malformed base64 input: a character outside the
// alphabet or bad padding.
type DecodeError struct {
	Offset  int64
	Variant Variant
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("b64: illegal %s base64 data at input byte %d", e.Variant, e.Offset)
}

// Encode returns the base64 form of text. It never fails.
func Encode(text string, v Variant) string {
	return v.encoding().EncodeToString([]byte(text))
}

// Decode returns the bytes encoded in text as a string. Surrounding
// whitespace and line breaks (wrapped base64) are ignored. The result is not
// guaranteed to be valid UTF-8.
func Decode(text string, v Variant) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, strings.TrimSpace(text))

	out, err := v.encoding().DecodeString(cleaned)
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return "", &DecodeError{Offset: int64(corrupt), Variant: v}
		}
		return "", &DecodeError{Variant: v}
	}

	return string(out), nil
}

// DecodeAny tries every variant in Variants order and returns the first
// successful decoding together with the variant that produced it. When no
// variant accepts the input the error from the standard padded variant is
// returned.
func DecodeAny(text string) (string, Variant, error) {
	var firstErr error
	for _, v := range Variants() {
		out, err := Decode(text, v)
		if err == nil {
			return out, v, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", StdVariant, firstErr
}
