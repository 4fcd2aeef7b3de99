// Package out holds the output types commands produce. Every type
// here is plain data with serialization tags, so the serializing
// renderers can emit it in any format while the typed renderers in
// pkg/cmds/renderer own the human-readable form.
package out

// StatusReport is the output of the status command: who owns the
// workspace, which sheet is in use, and how the working tree compares
// to the recorded state.
type StatusReport struct {
	// Root is the workspace root directory.
	Root string `json:"root" yaml:"root" toml:"root"`

	// Account owns the local copies in this workspace.
	Account string `json:"account" yaml:"account" toml:"account"`

	// Sheet is the sheet in use, empty when none.
	Sheet string `json:"sheet" yaml:"sheet" toml:"sheet"`

	// Host marks a workspace that also hosts for other members.
	Host bool `json:"host" yaml:"host" toml:"host"`

	// Created, Modified, Missing, and Clean classify the working
	// files against the recorded content hashes. Paths are slash
	// separated and relative to Root.
	Created  []string `json:"created" yaml:"created" toml:"created"`
	Modified []string `json:"modified" yaml:"modified" toml:"modified"`
	Missing  []string `json:"missing" yaml:"missing" toml:"missing"`
	Clean    []string `json:"clean" yaml:"clean" toml:"clean"`

	// Dirty is true when anything differs from the recorded state.
	Dirty bool `json:"dirty" yaml:"dirty" toml:"dirty"`
}

// WorkspaceInfo is the output of the here command: where the enclosing
// workspace lives and what its state file records.
type WorkspaceInfo struct {
	// Root is the workspace root directory.
	Root string `json:"root" yaml:"root" toml:"root"`

	// StatePath is the location of the workspace state file.
	StatePath string `json:"state_path" yaml:"state_path" toml:"state_path"`

	// Account owns the local copies in this workspace.
	Account string `json:"account" yaml:"account" toml:"account"`

	// Sheet is the sheet in use, empty when none.
	Sheet string `json:"sheet" yaml:"sheet" toml:"sheet"`

	// Host marks a workspace that also hosts for other members.
	Host bool `json:"host" yaml:"host" toml:"host"`

	// Tracked is the number of files the state records.
	Tracked int `json:"tracked" yaml:"tracked" toml:"tracked"`
}
