package reference

import (
	"fmt"
	"strings"
)

// Kind identifies a reference generator variant.
type Kind int

// Available reference kinds.
const (
	Numeric Kind = iota + 1
	Alphabetic
	Alphanumeric
	Secure
	GUID
)

// Kinds lists every supported kind in declaration order.
var Kinds = []Kind{Numeric, Alphabetic, Alphanumeric, Secure, GUID}

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Alphabetic:
		return "alphabetic"
	case Alphanumeric:
		return "alphanumeric"
	case Secure:
		return "secure"
	case GUID:
		return "guid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Alphabet returns the characters a kind draws its suffix from.
// GUID and unknown kinds have no alphabet.
func (k Kind) Alphabet() string {
	switch k {
	case Numeric:
		return DigitChars
	case Alphabetic:
		return LetterChars
	case Alphanumeric, Secure:
		return AlphanumericChars
	default:
		return ""
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= Numeric && k <= GUID
}

// ParseKind converts a case-insensitive name into a Kind.
// Besides the canonical names it accepts "alpha", "alnum" and "uuid".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numeric":
		return Numeric, nil
	case "alphabetic", "alpha":
		return Alphabetic, nil
	case "alphanumeric", "alnum":
		return Alphanumeric, nil
	case "secure":
		return Secure, nil
	case "guid", "uuid":
		return GUID, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
