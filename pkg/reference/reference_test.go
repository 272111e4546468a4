package reference_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/refcode/pkg/reference"
)

func TestGenerateNumeric(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[0-9]+$`)
	for _, length := range []int{1, 5, 10, 15} {
		ref, err := reference.GenerateNumeric(length, "")
		require.NoError(t, err)
		assert.Len(t, ref, length)
		assert.Regexp(t, pattern, ref)
	}
}

func TestGenerateAlphabetic(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[A-Z]+$`)
	for _, length := range []int{1, 5, 10, 15} {
		ref, err := reference.GenerateAlphabetic(length, "")
		require.NoError(t, err)
		assert.Len(t, ref, length)
		assert.Regexp(t, pattern, ref)
	}
}

func TestGenerateAlphanumeric(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^[A-Z0-9]+$`)
	for _, length := range []int{1, 5, 10, 15} {
		ref, err := reference.GenerateAlphanumeric(length, "")
		require.NoError(t, err)
		assert.Len(t, ref, length)
		assert.Regexp(t, pattern, ref)
	}
}

func TestGenerateSecure(t *testing.T) {
	t.Parallel()

	ref, err := reference.GenerateSecure(10, "")
	require.NoError(t, err)
	assert.Len(t, ref, 10)
	assert.Regexp(t, `^[A-Z0-9]{10}$`, ref)
}

func TestGenerateGUID(t *testing.T) {
	t.Parallel()

	id := reference.GenerateGUID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, id)
	assert.NotEqual(t, id, reference.GenerateGUID())
}

func TestGenerate_InvalidLength(t *testing.T) {
	t.Parallel()

	generators := map[string]func(int, string) (string, error){
		"numeric":      reference.GenerateNumeric,
		"alphabetic":   reference.GenerateAlphabetic,
		"alphanumeric": reference.GenerateAlphanumeric,
		"secure":       reference.GenerateSecure,
	}

	for name, gen := range generators {
		for _, length := range []int{0, -1} {
			ref, err := gen(length, "REF-")
			assert.ErrorIs(t, err, reference.ErrInvalidLength, "%s(%d)", name, length)
			assert.Empty(t, ref)
		}
	}
}

func TestGenerate_WithPrefix(t *testing.T) {
	t.Parallel()

	generators := map[string]func(int, string) (string, error){
		"numeric":      reference.GenerateNumeric,
		"alphabetic":   reference.GenerateAlphabetic,
		"alphanumeric": reference.GenerateAlphanumeric,
		"secure":       reference.GenerateSecure,
	}

	for _, prefix := range []string{"TEST-", "REF-"} {
		for name, gen := range generators {
			ref, err := gen(5, prefix)
			require.NoError(t, err, name)
			assert.True(t, strings.HasPrefix(ref, prefix), "%s: %q", name, ref)
			assert.Len(t, ref, len(prefix)+5, name)
		}
	}
}

func TestGenerateNumeric_ReferenceScenario(t *testing.T) {
	t.Parallel()

	ref, err := reference.GenerateNumeric(5, "REF-")
	require.NoError(t, err)
	assert.Regexp(t, `^REF-\d{5}$`, ref)
}

func TestGenerate_PrefixIsVerbatim(t *testing.T) {
	t.Parallel()

	prefix := "zß-ünïcode/ "
	ref, err := reference.GenerateAlphabetic(3, prefix)
	require.NoError(t, err)
	assert.Equal(t, prefix, ref[:len(prefix)])
	assert.Regexp(t, `^[A-Z]{3}$`, ref[len(prefix):])
}

func TestGenerate_Dispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    reference.Kind
		pattern string
	}{
		{reference.Numeric, `^INV-[0-9]{6}$`},
		{reference.Alphabetic, `^INV-[A-Z]{6}$`},
		{reference.Alphanumeric, `^INV-[A-Z0-9]{6}$`},
		{reference.Secure, `^INV-[A-Z0-9]{6}$`},
		{reference.GUID, `^INV-[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()
			ref, err := reference.Generate(tt.kind, 6, "INV-")
			require.NoError(t, err)
			assert.Regexp(t, tt.pattern, ref)
		})
	}

	t.Run("guid ignores length", func(t *testing.T) {
		t.Parallel()
		ref, err := reference.Generate(reference.GUID, 0, "")
		require.NoError(t, err)
		assert.Len(t, ref, 36)
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()
		_, err := reference.Generate(reference.Kind(42), 6, "")
		assert.ErrorIs(t, err, reference.ErrUnknownKind)
	})
}
