// Package workspace locates and reads writ workspaces. A workspace is
// any directory holding a .writ marker; all recorded state lives under
// the marker, and every operation takes the workspace root as an
// explicit parameter instead of touching the process working
// directory.
package workspace

import (
	"os"
	"path/filepath"

	"github.com/writ-vcs/writ/pkg/errors"
	"github.com/writ-vcs/writ/pkg/logging"
)

var log = logging.GetLogger("workspace")

const (
	// MarkerDir anchors a workspace root.
	MarkerDir = ".writ"

	// ConfigFile is the workspace state file inside the marker.
	ConfigFile = "workspace.toml"

	// StorageDir holds the content-addressed store inside the marker.
	StorageDir = "storage"
)

// StorePath returns the object store location for a workspace root.
func StorePath(root string) string {
	return filepath.Join(root, MarkerDir, StorageDir)
}

// Open finds the workspace enclosing start and returns a reader for
// its state.
func Open(start string) (*Reader, error) {
	root, err := Find(start)
	if err != nil {
		return nil, err
	}
	return NewReader(root), nil
}

// Find walks up from start to the nearest directory holding the
// marker and returns it. An empty start begins at the process working
// directory; a file start begins at its parent.
func Find(start string) (string, error) {
	if start == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, errors.ErrFileAccess, "cannot determine working directory")
		}
		start = cwd
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %s", start)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		marker := filepath.Join(dir, MarkerDir)
		if info, statErr := os.Stat(marker); statErr == nil && info.IsDir() {
			log.Debug().Str("root", dir).Msg("workspace found")
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.Newf(errors.ErrWorkspaceNotFound,
				"no %s marker found above %s", MarkerDir, start)
		}
		dir = parent
	}
}
