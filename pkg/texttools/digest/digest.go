// Package digest computes message digests of text and renders them as
// lowercase hexadecimal.
package digest

import (
	"crypto/md5"  //nolint:gosec // offered as a checksum, not for security
	"crypto/sha1" //nolint:gosec // offered as a checksum, not for security
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a supported digest function.
type Algorithm string

const (
	MD5        Algorithm = "md5"
	SHA1       Algorithm = "sha1"
	SHA224     Algorithm = "sha224"
	SHA256     Algorithm = "sha256"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA512_256 Algorithm = "sha512/256"
	SHA3_256   Algorithm = "sha3-256"
	SHA3_512   Algorithm = "sha3-512"
	BLAKE2b256 Algorithm = "blake2b-256"
	BLAKE2b512 Algorithm = "blake2b-512"
)

// ErrUnknownAlgorithm is returned for an Algorithm outside the supported set.
var ErrUnknownAlgorithm = errors.New("digest: unknown algorithm")

type spec struct {
	display string
	size    int
	newHash func() hash.Hash
}

var specs = map[Algorithm]spec{
	MD5:        {"MD5", md5.Size, md5.New},
	SHA1:       {"SHA-1", sha1.Size, sha1.New},
	SHA224:     {"SHA-224", sha256.Size224, sha256.New224},
	SHA256:     {"SHA-256", sha256.Size, sha256.New},
	SHA384:     {"SHA-384", sha512.Size384, sha512.New384},
	SHA512:     {"SHA-512", sha512.Size, sha512.New},
	SHA512_256: {"SHA-512/256", sha512.Size256, sha512.New512_256},
	SHA3_256:   {"SHA3-256", 32, sha3.New256},
	SHA3_512:   {"SHA3-512", 64, sha3.New512},
	BLAKE2b256: {"BLAKE2b-256", blake2b.Size256, unkeyed(blake2b.New256)},
	BLAKE2b512: {"BLAKE2b-512", blake2b.Size, unkeyed(blake2b.New512)},
}

// unkeyed adapts a keyed BLAKE2b constructor. With a nil key it cannot fail.
func unkeyed(fn func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := fn(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}

// Algorithms returns every supported algorithm, in menu order.
func Algorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA224, SHA256, SHA384, SHA512, SHA512_256, SHA3_256, SHA3_512, BLAKE2b256, BLAKE2b512}
}

// DefaultAlgorithms is the set shown when nothing else is configured. It
// matches the classic MD5, SHA-1, SHA-2 line-up.
func DefaultAlgorithms() []Algorithm {
	return []Algorithm{MD5, SHA1, SHA256, SHA512}
}

// Valid reports whether a is supported.
func (a Algorithm) Valid() bool {
	_, ok := specs[a]
	return ok
}

// Size returns the digest length in bytes, or 0 for an unknown algorithm.
func (a Algorithm) Size() int {
	return specs[a].size
}

// DisplayName returns the conventional spelling, e.g. "SHA-256".
func (a Algorithm) DisplayName() string {
	if s, ok := specs[a]; ok {
		return s.display
	}
	return string(a)
}

// Parse resolves a user-supplied name such as "SHA-256", "sha256" or
// "SHA3_512" to an Algorithm.
func Parse(name string) (Algorithm, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.ReplaceAll(norm, "_", "-")

	for _, a := range Algorithms() {
		if norm == string(a) || norm == strings.ToLower(specs[a].display) {
			return a, nil
		}
	}

	// "sha-256" style: drop the dash between family and size.
	if strings.HasPrefix(norm, "sha-") {
		if a := Algorithm("sha" + norm[len("sha-"):]); a.Valid() {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Digest hashes the UTF-8 bytes of text with a and returns the lowercase
// hex encoding, always a.Size()*2 characters long.
func Digest(text string, a Algorithm) (string, error) {
	s, ok := specs[a]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}

	h := s.newHash()
	_, _ = h.Write([]byte(text))

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Result is one row of All.
type Result struct {
	Algorithm Algorithm
	Hex       string
}

// All computes text's digest for each algorithm in order. Unknown algorithms
// are skipped.
func All(text string, algs ...Algorithm) []Result {
	results := make([]Result, 0, len(algs))
	for _, a := range algs {
		sum, err := Digest(text, a)
		if err != nil {
			continue
		}
		results = append(results, Result{Algorithm: a, Hex: sum})
	}
	return results
}
