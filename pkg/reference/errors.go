package reference

import "errors"

var (
	// ErrInvalidLength is returned when a non-positive length is requested.
	ErrInvalidLength = errors.New("length must be greater than 0")

	// ErrUnknownKind is returned for a Kind that has no generator.
	ErrUnknownKind = errors.New("unknown reference kind")

	// ErrInvalidReference is returned by Validate when a reference does not
	// match the expected prefix, length or alphabet.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrEntropyUnavailable is the panic payload when the secure random source
	// cannot be read. It signals a broken environment, not bad input.
	ErrEntropyUnavailable = errors.New("secure random source unavailable")
)
