package out

// StorageMappings is the output of the storage build command: the
// freshly computed path to content hash index of the workspace.
type StorageMappings struct {
	// Root is the workspace root the index was built from.
	Root string `json:"root" yaml:"root" toml:"root"`

	// Store is the object store directory the index belongs to.
	Store string `json:"store" yaml:"store" toml:"store"`

	// Files maps slash-relative workspace paths to content hashes.
	Files map[string]string `json:"files" yaml:"files" toml:"files"`
}

// WriteReceipt is the output of the storage write command: what the
// blob write pass did, or would have done on a dry run.
type WriteReceipt struct {
	// Store is the object store directory written to.
	Store string `json:"store" yaml:"store" toml:"store"`

	// Written lists the hashes of blobs persisted this run.
	Written []string `json:"written" yaml:"written" toml:"written"`

	// Skipped counts blobs the store already held.
	Skipped int `json:"skipped" yaml:"skipped" toml:"skipped"`

	// DryRun is true when nothing touched the disk.
	DryRun bool `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
}
