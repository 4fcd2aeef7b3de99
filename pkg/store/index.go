package store

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/writ-vcs/writ/pkg/errors"
)

// Index records which workspace paths hash to which content. Paths
// are slash-separated and relative to the workspace root.
type Index struct {
	Objects map[string]string `toml:"objects"`
}

// Build walks a workspace tree and hashes every content file into a
// fresh index. Dot-prefixed entries are not content: the workspace
// marker, version control droppings, and editor state all hide behind
// the same convention.
func (s *Store) Build(root string) (*Index, error) {
	index := &Index{Objects: make(map[string]string)}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrStorageScan, "cannot walk %s", path)
		}
		if strings.HasPrefix(d.Name(), ".") && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return errors.Wrapf(relErr, errors.ErrStorageScan, "cannot relativize %s", path)
		}

		sum, hashErr := HashFile(path)
		if hashErr != nil {
			return errors.Wrapf(hashErr, errors.ErrStorageScan, "cannot hash %s", rel)
		}
		index.Objects[filepath.ToSlash(rel)] = sum
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Int("files", len(index.Objects)).Str("root", root).Msg("index built")
	return index, nil
}

// SaveIndex persists the index under the store directory.
func (s *Store) SaveIndex(index *Index) error {
	data, err := toml.Marshal(index)
	if err != nil {
		return errors.Wrap(err, errors.ErrStorageWrite, "cannot encode storage index")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create store directory %s", s.dir)
	}
	if err := os.WriteFile(s.IndexPath(), data, 0o644); err != nil {
		return errors.Wrap(err, errors.ErrStorageWrite, "cannot write storage index")
	}
	return nil
}

// LoadIndex reads the persisted index. A store that was never built
// has none.
func (s *Store) LoadIndex() (*Index, error) {
	data, err := os.ReadFile(s.IndexPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrNotFound, "storage index not found, run storage build first")
		}
		return nil, errors.Wrap(err, errors.ErrStorageScan, "cannot read storage index")
	}

	var index Index
	if err := toml.Unmarshal(data, &index); err != nil {
		return nil, errors.Wrap(err, errors.ErrStorageScan, "cannot parse storage index")
	}
	if index.Objects == nil {
		index.Objects = make(map[string]string)
	}
	return &index, nil
}
