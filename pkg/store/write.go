package store

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"

	"github.com/writ-vcs/writ/pkg/errors"
)

// Receipt summarizes one Write run.
type Receipt struct {
	// Written lists the hashes persisted by this run, sorted. In dry
	// run mode these are the hashes that would have been persisted.
	Written []string

	// Skipped counts blobs the store already held.
	Skipped int

	DryRun bool
}

type blob struct {
	hash   string
	source string
}

// Write persists every indexed blob the store does not hold yet,
// reading content from the workspace rooted at root. Blob files are
// created through a synthfs pipeline, so a failing operation leaves
// no half-written blob behind. Dry run reports what would be stored
// without touching disk.
func (s *Store) Write(root string, index *Index, dryRun bool) (*Receipt, error) {
	receipt := &Receipt{DryRun: dryRun}

	paths := make([]string, 0, len(index.Objects))
	for path := range index.Objects {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var missing []blob
	seen := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		hash := index.Objects[path]
		if _, dup := seen[hash]; dup {
			continue
		}
		seen[hash] = struct{}{}

		if s.Has(hash) {
			receipt.Skipped++
			continue
		}
		missing = append(missing, blob{hash: hash, source: filepath.Join(root, filepath.FromSlash(path))})
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i].hash < missing[j].hash })

	if dryRun {
		for _, b := range missing {
			log.Info().Str("hash", b.hash).Str("source", b.source).Msg("would store blob")
			receipt.Written = append(receipt.Written, b.hash)
		}
		return receipt, nil
	}

	if len(missing) == 0 {
		log.Debug().Int("skipped", receipt.Skipped).Msg("store already up to date")
		return receipt, nil
	}

	// Fanout directories are created up front; the pipeline only ever
	// creates files that do not exist, which is what synthfs create
	// semantics require.
	for _, b := range missing {
		dir := filepath.Dir(s.BlobPath(b.hash))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create blob directory %s", dir)
		}
	}

	pipeline := synthfs.NewMemPipeline()
	for _, b := range missing {
		content, err := os.ReadFile(b.source)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", b.source)
		}

		rel, err := filepath.Rel(s.dir, s.BlobPath(b.hash))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInternal, "cannot relativize blob path for %s", b.hash)
		}

		opID := core.OperationID(fmt.Sprintf("write-blob-%s", b.hash))
		createOp := operations.NewCreateFileOperation(opID, rel)
		createOp.SetItem(&blobItem{
			path:    rel,
			content: content,
		})

		if err := pipeline.Add(synthfs.NewOperationsPackageAdapter(createOp)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrStorageWrite, "cannot queue blob %s", b.hash)
		}
		receipt.Written = append(receipt.Written, b.hash)
	}

	executor := synthfs.NewExecutor()
	result := executor.Run(context.Background(), pipeline, filesystem.NewOSFileSystem(s.dir))
	if result.GetError() != nil {
		return nil, errors.Wrap(result.GetError(), errors.ErrStorageWrite, "blob pipeline failed")
	}

	log.Info().Int("written", len(receipt.Written)).Int("skipped", receipt.Skipped).Msg("blobs persisted")
	return receipt, nil
}

// blobItem satisfies the synthfs item interface for blob writes.
// Blobs are immutable once stored, hence the read-only mode.
type blobItem struct {
	path    string
	content []byte
}

func (b *blobItem) Path() string       { return b.path }
func (b *blobItem) Type() string       { return "file" }
func (b *blobItem) Content() []byte    { return b.content }
func (b *blobItem) Mode() fs.FileMode  { return 0o444 }
func (b *blobItem) IsDir() bool        { return false }
func (b *blobItem) ModTime() time.Time { return time.Now() }
func (b *blobItem) Size() int64        { return int64(len(b.content)) }
