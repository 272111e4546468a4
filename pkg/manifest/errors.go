package manifest

import "errors"

var (
	ErrParseManifest     = errors.New("failed to parse reference manifest")
	ErrReadManifest      = errors.New("failed to read reference manifest")
	ErrEmptyManifest     = errors.New("manifest has no references")
	ErrInvalidEntry      = errors.New("invalid manifest entry")
	ErrManifestCancelled = errors.New("manifest processing cancelled")
	ErrEncodeResults     = errors.New("failed to encode manifest results")
)
