package reference

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	mrand "math/rand/v2"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Character sets used for reference suffixes.
const (
	DigitChars        = "0123456789"
	LetterChars       = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	AlphanumericChars = DigitChars + LetterChars
)

// Source is a pseudo-random source of uniform integers in [0, n).
// Implementations passed to WithSource must be safe for concurrent use.
type Source interface {
	IntN(n int) int
}

// globalSource delegates to the math/rand/v2 top-level functions,
// which are safe for concurrent use and seeded by the runtime.
type globalSource struct{}

func (globalSource) IntN(n int) int { return mrand.IntN(n) }

// lockedSource serializes access to a *rand.Rand, which is not goroutine-safe.
type lockedSource struct {
	mu  sync.Mutex
	rnd *mrand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the pseudo-random source used by Numeric, Alphabetic and
// Alphanumeric. Nil sources are ignored.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithSeed makes the pseudo-random generators deterministic.
// The resulting source is guarded by a mutex.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.src = &lockedSource{rnd: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
	}
}

// WithSecureReader replaces crypto/rand.Reader as the entropy source for Secure.
// Nil readers are ignored.
func WithSecureReader(r io.Reader) Option {
	return func(g *Generator) {
		if r != nil {
			g.secure = r
		}
	}
}

// Generator produces reference codes. The zero value is not usable; create
// one with New. A Generator is safe for concurrent use as long as its
// sources are.
type Generator struct {
	src    Source
	secure io.Reader
}

// New returns a Generator backed by math/rand/v2 and crypto/rand by default.
func New(opts ...Option) *Generator {
	g := &Generator{
		src:    globalSource{},
		secure: rand.Reader,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Numeric returns prefix followed by length random digits.
func (g *Generator) Numeric(length int, prefix string) (string, error) {
	return g.draw(DigitChars, length, prefix)
}

// Alphabetic returns prefix followed by length random uppercase letters.
func (g *Generator) Alphabetic(length int, prefix string) (string, error) {
	return g.draw(LetterChars, length, prefix)
}

// Alphanumeric returns prefix followed by length random digits or uppercase letters.
func (g *Generator) Alphanumeric(length int, prefix string) (string, error) {
	return g.draw(AlphanumericChars, length, prefix)
}

// Secure returns prefix followed by length alphanumeric characters derived
// from the secure random source.
//
// Each random byte b is mapped to AlphanumericChars[b%36]. Since 36 does not
// divide 256, the first 4 characters ("0".."3") are drawn with probability
// 8/256 instead of 7/256. Callers needing a uniform distribution should not
// rely on this variant.
//
// A failing secure source panics with ErrEntropyUnavailable.
func (g *Generator) Secure(length int, prefix string) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(g.secure, buf); err != nil {
		panic(errors.Join(ErrEntropyUnavailable, err))
	}

	var b strings.Builder
	b.Grow(len(prefix) + length)
	b.WriteString(prefix)
	for _, v := range buf {
		b.WriteByte(AlphanumericChars[int(v)%len(AlphanumericChars)])
	}
	return b.String(), nil
}

// GUID returns a random version 4 UUID in canonical lowercase form.
func (g *Generator) GUID() string {
	return uuid.NewString()
}

// Generate dispatches to the generator for kind. For GUID the length is
// ignored and prefix is prepended to the UUID.
func (g *Generator) Generate(kind Kind, length int, prefix string) (string, error) {
	switch kind {
	case Numeric:
		return g.Numeric(length, prefix)
	case Alphabetic:
		return g.Alphabetic(length, prefix)
	case Alphanumeric:
		return g.Alphanumeric(length, prefix)
	case Secure:
		return g.Secure(length, prefix)
	case GUID:
		return prefix + g.GUID(), nil
	default:
		return "", errors.Join(ErrUnknownKind, errors.New(kind.String()))
	}
}

// Probe reads a single byte from the secure source. It is meant for
// readiness checks and reports the failure instead of panicking.
func (g *Generator) Probe(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var b [1]byte
	if _, err := io.ReadFull(g.secure, b[:]); err != nil {
		return errors.Join(ErrEntropyUnavailable, err)
	}
	return nil
}

func (g *Generator) draw(alphabet string, length int, prefix string) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	var b strings.Builder
	b.Grow(len(prefix) + length)
	b.WriteString(prefix)
	for range length {
		b.WriteByte(alphabet[g.src.IntN(len(alphabet))])
	}
	return b.String(), nil
}
