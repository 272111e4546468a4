package manifest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/refcode/pkg/reference"
)

// Entry describes one group of references to generate.
type Entry struct {
	Name   string         `yaml:"name"`
	Kind   reference.Kind `yaml:"kind"`
	Length int            `yaml:"length,omitempty"`
	Prefix string         `yaml:"prefix,omitempty"`
	Count  int            `yaml:"count,omitempty"`
}

// Manifest is a list of reference groups, usually loaded from YAML:
//
//	references:
//	  - name: orders
//	    kind: numeric
//	    length: 8
//	    prefix: ORD-
//	    count: 3
type Manifest struct {
	References []Entry `yaml:"references"`
}

// Result holds the references generated for one entry.
type Result struct {
	Name       string         `yaml:"name"`
	Kind       reference.Kind `yaml:"kind"`
	References []string       `yaml:"references"`
}

// Parse decodes YAML content into a Manifest and validates it.
func Parse(ctx context.Context, data []byte) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrManifestCancelled, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Join(ErrParseManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses the manifest at path.
func Load(ctx context.Context, path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrReadManifest, err)
	}
	return Parse(ctx, data)
}

// Validate checks every entry and normalizes a zero count to 1.
// All entry problems are reported together.
func (m *Manifest) Validate() error {
	if m == nil || len(m.References) == 0 {
		return ErrEmptyManifest
	}

	var errs []error
	seen := make(map[string]bool, len(m.References))

	for i := range m.References {
		e := &m.References[i]
		switch {
		case e.Name == "":
			errs = append(errs, fmt.Errorf("entry %d: name is required", i))
		case seen[e.Name]:
			errs = append(errs, fmt.Errorf("entry %d: duplicate name %q", i, e.Name))
		}
		seen[e.Name] = true

		if !e.Kind.Valid() {
			errs = append(errs, fmt.Errorf("entry %d (%s): %w", i, e.Name, reference.ErrUnknownKind))
		} else if e.Kind != reference.GUID && e.Length <= 0 {
			errs = append(errs, fmt.Errorf("entry %d (%s): %w", i, e.Name, reference.ErrInvalidLength))
		}

		if e.Count < 0 {
			errs = append(errs, fmt.Errorf("entry %d (%s): count must not be negative", i, e.Name))
		} else if e.Count == 0 {
			e.Count = 1
		}
	}

	if len(errs) > 0 {
		return errors.Join(ErrInvalidEntry, errors.Join(errs...))
	}
	return nil
}

// Generate produces references for every entry in order using g.
func (m *Manifest) Generate(ctx context.Context, g *reference.Generator) ([]Result, error) {
	results := make([]Result, 0, len(m.References))

	for _, e := range m.References {
		res := Result{Name: e.Name, Kind: e.Kind, References: make([]string, 0, e.Count)}
		for range e.Count {
			if err := ctx.Err(); err != nil {
				return results, errors.Join(ErrManifestCancelled, err)
			}
			ref, err := g.Generate(e.Kind, e.Length, e.Prefix)
			if err != nil {
				return results, fmt.Errorf("entry %q: %w", e.Name, err)
			}
			res.References = append(res.References, ref)
		}
		results = append(results, res)
	}

	return results, nil
}

// Encode writes results as a YAML document.
func Encode(w io.Writer, results []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]Result{"results": results}); err != nil {
		return errors.Join(ErrEncodeResults, err)
	}
	if err := enc.Close(); err != nil {
		return errors.Join(ErrEncodeResults, err)
	}
	return nil
}
