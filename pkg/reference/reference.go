package reference

var defaultGenerator = New()

// Default returns the package-level Generator used by the Generate* helpers.
func Default() *Generator {
	return defaultGenerator
}

// GenerateNumeric returns prefix followed by length random digits.
// Pass an empty prefix for none.
func GenerateNumeric(length int, prefix string) (string, error) {
	return defaultGenerator.Numeric(length, prefix)
}

// GenerateAlphabetic returns prefix followed by length random uppercase letters.
func GenerateAlphabetic(length int, prefix string) (string, error) {
	return defaultGenerator.Alphabetic(length, prefix)
}

// GenerateAlphanumeric returns prefix followed by length random characters from 0-9A-Z.
func GenerateAlphanumeric(length int, prefix string) (string, error) {
	return defaultGenerator.Alphanumeric(length, prefix)
}

// GenerateSecure is like GenerateAlphanumeric but reads crypto/rand.
// See Generator.Secure for the distribution caveat.
func GenerateSecure(length int, prefix string) (string, error) {
	return defaultGenerator.Secure(length, prefix)
}

// GenerateGUID returns a random UUID in the 8-4-4-4-12 lowercase hex form.
func GenerateGUID() string {
	return defaultGenerator.GUID()
}

// Generate dispatches to the default generator for kind.
func Generate(kind Kind, length int, prefix string) (string, error) {
	return defaultGenerator.Generate(kind, length, prefix)
}
