package workspace

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/writ-vcs/writ/pkg/errors"
)

// Config is the decoded workspace state file.
type Config struct {
	// Account owns the local copies in this workspace.
	Account string `toml:"account"`

	// Sheet is the sheet currently in use, empty when none.
	Sheet string `toml:"sheet,omitempty"`

	// Host marks a workspace that also hosts for other members.
	Host bool `toml:"host,omitempty"`

	// Files maps recorded slash-relative paths to content hashes.
	Files map[string]string `toml:"files,omitempty"`
}

// Reader reads workspace state rooted at an explicit directory.
// Accessors load lazily and memoize, so one command invocation hits
// the disk once however many fields it asks for. Not safe for
// concurrent use.
type Reader struct {
	root string
	cfg  *Config
}

func NewReader(root string) *Reader {
	return &Reader{root: root}
}

func (r *Reader) Root() string {
	return r.root
}

// ConfigPath returns the state file location under the marker.
func (r *Reader) ConfigPath() string {
	return filepath.Join(r.root, MarkerDir, ConfigFile)
}

// Config loads and caches the state file.
func (r *Reader) Config() (*Config, error) {
	if r.cfg != nil {
		return r.cfg, nil
	}

	path := r.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkspaceInvalid, "cannot read workspace state %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrWorkspaceInvalid, "cannot parse workspace state %s", path)
	}

	r.cfg = &cfg
	return r.cfg, nil
}

// Account returns the account owning this workspace.
func (r *Reader) Account() (string, error) {
	cfg, err := r.Config()
	if err != nil {
		return "", err
	}
	if cfg.Account == "" {
		return "", errors.New(errors.ErrWorkspaceInvalid, "workspace state has no account")
	}
	return cfg.Account, nil
}

// SheetInUse returns the sheet currently in use, empty when none.
func (r *Reader) SheetInUse() (string, error) {
	cfg, err := r.Config()
	if err != nil {
		return "", err
	}
	return cfg.Sheet, nil
}

// SheetName returns the sheet in use and fails when none is set.
func (r *Reader) SheetName() (string, error) {
	sheet, err := r.SheetInUse()
	if err != nil {
		return "", err
	}
	if sheet == "" {
		return "", errors.New(errors.ErrWorkspaceInvalid, "no sheet in use")
	}
	return sheet, nil
}

// HostMode reports whether this workspace hosts for other members.
func (r *Reader) HostMode() (bool, error) {
	cfg, err := r.Config()
	if err != nil {
		return false, err
	}
	return cfg.Host, nil
}

// Mappings returns the recorded path to content hash table. The table
// may be nil when the workspace has never recorded files.
func (r *Reader) Mappings() (map[string]string, error) {
	cfg, err := r.Config()
	if err != nil {
		return nil, err
	}
	return cfg.Files, nil
}
