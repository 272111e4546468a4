package reference

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const guidTextLen = 36

// Validate checks that ref is prefix followed by a suffix of exactly length
// characters from the alphabet of kind. For GUID the suffix must be a
// canonical 36-character UUID and length is ignored.
//
// Nothing beyond membership and length is checked: a valid reference is not
// necessarily one this package issued.
func Validate(kind Kind, ref string, length int, prefix string) error {
	if !kind.Valid() {
		return errors.Join(ErrUnknownKind, errors.New(kind.String()))
	}
	if kind != GUID && length <= 0 {
		return ErrInvalidLength
	}

	suffix, ok := strings.CutPrefix(ref, prefix)
	if !ok {
		return fmt.Errorf("%w: missing prefix %q", ErrInvalidReference, prefix)
	}

	if kind == GUID {
		if len(suffix) != guidTextLen {
			return fmt.Errorf("%w: guid must be %d characters, got %d", ErrInvalidReference, guidTextLen, len(suffix))
		}
		if _, err := uuid.Parse(suffix); err != nil {
			return errors.Join(ErrInvalidReference, err)
		}
		return nil
	}

	if len(suffix) != length {
		return fmt.Errorf("%w: expected %d characters, got %d", ErrInvalidReference, length, len(suffix))
	}

	alphabet := kind.Alphabet()
	for i := 0; i < len(suffix); i++ {
		if strings.IndexByte(alphabet, suffix[i]) < 0 {
			return fmt.Errorf("%w: character %q at position %d is not in the %s alphabet", ErrInvalidReference, suffix[i], i, kind)
		}
	}
	return nil
}
