// Package reference generates human-readable reference codes such as order
// numbers, invoice references and voucher codes.
//
// A reference is an optional literal prefix followed by a random suffix of an
// exact length drawn from a fixed alphabet:
//
//   - Numeric: 0-9
//   - Alphabetic: A-Z
//   - Alphanumeric and Secure: 0-9A-Z
//   - GUID: a random version 4 UUID in canonical lowercase form
//
// # Usage
//
//	import "github.com/dmitrymomot/refcode/pkg/reference"
//
//	ref, err := reference.GenerateNumeric(5, "REF-")
//	// ref: "REF-40971"
//
//	code, err := reference.GenerateSecure(10, "")
//	// code: "Q0Z7K31MXA"
//
//	id := reference.GenerateGUID()
//
// Every length-taking function returns ErrInvalidLength when length <= 0.
// The prefix is copied verbatim and does not count towards the length.
// Nothing in this package guarantees uniqueness across calls.
//
// # Random sources
//
// The package-level helpers share a Generator backed by the math/rand/v2
// top-level functions and crypto/rand.Reader, both safe for concurrent use.
// Construct a Generator with New to pass your own sources explicitly:
//
//	g := reference.New(reference.WithSeed(42))
//	ref, _ := g.Alphanumeric(8, "ORD-")
//
// Secure maps each random byte onto the 36-character alphabet with a modulo,
// which slightly favours the characters "0" to "3". See Generator.Secure.
//
// # Validation
//
// Validate checks prefix, length and alphabet membership only:
//
//	err := reference.Validate(reference.Numeric, "REF-40971", 5, "REF-")
package reference
