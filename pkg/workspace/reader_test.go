// pkg/workspace/reader_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem via t.TempDir
// PURPOSE: Test lazy workspace state loading and accessors

package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writ-vcs/writ/pkg/errors"
	"github.com/writ-vcs/writ/pkg/workspace"
)

func writeState(t *testing.T, root string, content string) {
	t.Helper()
	dir := filepath.Join(root, workspace.MarkerDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, workspace.ConfigFile), []byte(content), 0o644))
}

func TestReaderAccessors(t *testing.T) {
	root := t.TempDir()
	writeState(t, root, `
account = "mel"
sheet = "draft-1"
host = true

[files]
"ch1.md" = "aaaa"
`)

	r := workspace.NewReader(root)

	account, err := r.Account()
	require.NoError(t, err)
	assert.Equal(t, "mel", account)

	sheet, err := r.SheetName()
	require.NoError(t, err)
	assert.Equal(t, "draft-1", sheet)

	host, err := r.HostMode()
	require.NoError(t, err)
	assert.True(t, host)

	mappings, err := r.Mappings()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ch1.md": "aaaa"}, mappings)
}

func TestReaderMemoizes(t *testing.T) {
	root := t.TempDir()
	writeState(t, root, "account = \"mel\"\n")

	r := workspace.NewReader(root)
	_, err := r.Account()
	require.NoError(t, err)

	// Later state edits are invisible to an already-loaded reader.
	writeState(t, root, "account = \"someone-else\"\n")

	account, err := r.Account()
	require.NoError(t, err)
	assert.Equal(t, "mel", account)
}

func TestReaderDefaults(t *testing.T) {
	root := t.TempDir()
	writeState(t, root, "account = \"mel\"\n")

	r := workspace.NewReader(root)

	sheet, err := r.SheetInUse()
	require.NoError(t, err)
	assert.Empty(t, sheet)

	host, err := r.HostMode()
	require.NoError(t, err)
	assert.False(t, host)

	mappings, err := r.Mappings()
	require.NoError(t, err)
	assert.Empty(t, mappings)
}

func TestReaderErrors(t *testing.T) {
	t.Run("missing_state_file", func(t *testing.T) {
		r := workspace.NewReader(t.TempDir())
		_, err := r.Config()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrWorkspaceInvalid))
	})

	t.Run("unparseable_state", func(t *testing.T) {
		root := t.TempDir()
		writeState(t, root, "account = \n")
		_, err := workspace.NewReader(root).Config()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrWorkspaceInvalid))
	})

	t.Run("no_account", func(t *testing.T) {
		root := t.TempDir()
		writeState(t, root, "sheet = \"draft-1\"\n")
		_, err := workspace.NewReader(root).Account()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrWorkspaceInvalid))
	})

	t.Run("no_sheet_in_use", func(t *testing.T) {
		root := t.TempDir()
		writeState(t, root, "account = \"mel\"\n")
		_, err := workspace.NewReader(root).SheetName()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrWorkspaceInvalid))
	})
}
