package langdet

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/sync/errgroup"
)

// LoadProfile decodes and validates a single JSON profile document.
// Failures wrap ErrProfileLoad.
func LoadProfile(r io.Reader) (*Profile, error) {
	var p Profile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileLoad, err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileLoad, err)
	}
	return &p, nil
}

// LoadProfiles reads the named profile documents from fsys. Documents are
// decoded concurrently but returned in input order, so the caller's path
// order decides the detection indexes downstream. Any read or decode failure
// aborts the whole load.
func LoadProfiles(fsys fs.FS, paths []string) ([]*Profile, error) {
	profiles := make([]*Profile, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			f, err := fsys.Open(path)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrProfileLoad, path, err)
			}
			defer f.Close()

			p, err := LoadProfile(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			profiles[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Build loads the named profile documents from fsys and merges them, in
// input order, into a model sized for exactly those languages. Construction
// is all-or-nothing: any load failure or duplicate language yields no model.
func Build(fsys fs.FS, paths []string, opts ...BuilderOption) (*Model, error) {
	profiles, err := LoadProfiles(fsys, paths)
	if err != nil {
		return nil, err
	}

	b := NewBuilder(len(profiles), opts...)
	for _, p := range profiles {
		if err := b.Add(p); err != nil {
			return nil, err
		}
	}
	return b.Model(), nil
}
