// Package store implements the content-addressed object store backing
// a workspace. Blobs live under objects/ fanned out by hash prefix,
// and index.toml records which workspace paths map to which hashes.
// The store never locates itself; callers hand it its directory.
package store

import (
	"os"
	"path/filepath"

	"github.com/writ-vcs/writ/pkg/logging"
)

var log = logging.GetLogger("store")

const (
	objectsDir = "objects"
	indexFile  = "index.toml"
)

// Store is a content-addressed blob store rooted at one directory.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// IndexPath returns the location of the store index.
func (s *Store) IndexPath() string {
	return filepath.Join(s.dir, indexFile)
}

// BlobPath returns where a hash's content lives, git-style: two hex
// characters of fanout directory, the rest as the file name.
func (s *Store) BlobPath(hash string) string {
	return filepath.Join(s.dir, objectsDir, hash[:2], hash[2:])
}

// Has reports whether a blob is already persisted.
func (s *Store) Has(hash string) bool {
	if len(hash) < 3 {
		return false
	}
	info, err := os.Stat(s.BlobPath(hash))
	return err == nil && !info.IsDir()
}
