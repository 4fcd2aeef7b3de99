package workspace

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/writ-vcs/writ/pkg/errors"
	"github.com/writ-vcs/writ/pkg/store"
)

// Analysis classifies the working tree against the recorded mappings.
// All paths are slash-separated and relative to the workspace root.
type Analysis struct {
	// Created is on disk but not recorded.
	Created []string

	// Modified is recorded but its content hash changed.
	Modified []string

	// Missing is recorded but absent from disk.
	Missing []string

	// Clean is recorded and unchanged.
	Clean []string
}

// Dirty reports whether anything differs from the recorded state.
func (a *Analysis) Dirty() bool {
	return len(a.Created)+len(a.Modified)+len(a.Missing) > 0
}

// Analyze hashes every working file and compares it against the
// recorded mappings. Dot-prefixed entries are skipped with the same
// rule the store index uses, so status and storage build agree on
// what counts as content.
func (r *Reader) Analyze() (*Analysis, error) {
	mappings, err := r.Mappings()
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{}
	seen := make(map[string]struct{}, len(mappings))

	walkErr := filepath.WalkDir(r.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot walk %s", path)
		}
		if strings.HasPrefix(d.Name(), ".") && path != r.root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(r.root, path)
		if relErr != nil {
			return errors.Wrapf(relErr, errors.ErrFileAccess, "cannot relativize %s", path)
		}
		rel = filepath.ToSlash(rel)
		seen[rel] = struct{}{}

		recorded, known := mappings[rel]
		if !known {
			analysis.Created = append(analysis.Created, rel)
			return nil
		}

		sum, hashErr := store.HashFile(path)
		if hashErr != nil {
			return errors.Wrapf(hashErr, errors.ErrFileAccess, "cannot hash %s", rel)
		}
		if sum == recorded {
			analysis.Clean = append(analysis.Clean, rel)
		} else {
			analysis.Modified = append(analysis.Modified, rel)
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	for path := range mappings {
		if _, ok := seen[path]; !ok {
			analysis.Missing = append(analysis.Missing, path)
		}
	}

	sort.Strings(analysis.Created)
	sort.Strings(analysis.Modified)
	sort.Strings(analysis.Missing)
	sort.Strings(analysis.Clean)

	log.Debug().
		Int("created", len(analysis.Created)).
		Int("modified", len(analysis.Modified)).
		Int("missing", len(analysis.Missing)).
		Int("clean", len(analysis.Clean)).
		Msg("workspace analyzed")
	return analysis, nil
}
