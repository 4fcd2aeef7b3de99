// pkg/cobrax/topics/topics_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem via t.TempDir
// PURPOSE: Test topic loading, lookup, and the installed help command

package topics

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTopic(t *testing.T, dir string, name string, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestManagerLoad(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "workspace.md", "# Workspaces\n\nA workspace is marked by .writ.")
	writeTopic(t, dir, "recording.txt", "Recording walks the tracked files.")
	writeTopic(t, dir, "notes.json", `{"skipped": true}`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "drafts"), 0o755))
	writeTopic(t, filepath.Join(dir, "drafts"), "nested.md", "nested topics are not loaded")

	m := NewManager(dir, Options{})
	require.NoError(t, m.Load())

	topic, ok := m.Get("workspace")
	require.True(t, ok)
	assert.Equal(t, "workspace", topic.Name)
	assert.Contains(t, topic.Body, "marked by .writ")

	_, ok = m.Get("notes")
	assert.False(t, ok, "unknown extensions should be skipped")

	_, ok = m.Get("nested")
	assert.False(t, ok, "subdirectories should be skipped")

	assert.Equal(t, []string{"recording", "workspace"}, m.Names())
}

func TestManagerLoadCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "sheets.rst", "Sheets\n======")
	writeTopic(t, dir, "workspace.md", "# Workspaces")

	m := NewManager(dir, Options{Extensions: []string{".rst"}})
	require.NoError(t, m.Load())

	_, ok := m.Get("sheets")
	assert.True(t, ok)
	_, ok = m.Get("workspace")
	assert.False(t, ok, "configured extensions replace the defaults")
}

func TestManagerLoadMissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "absent"), Options{})
	require.NoError(t, m.Load())
	assert.Empty(t, m.Names())
}

func TestManagerGet(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "workspace.md", "workspace body")
	writeTopic(t, dir, "option-renderer.md", "renderer flag body")

	m := NewManager(dir, Options{})
	require.NoError(t, m.Load())

	tests := []struct {
		input string
		want  string
		found bool
	}{
		{input: "workspace", want: "workspace", found: true},
		{input: "option-renderer", want: "option-renderer", found: true},
		{input: "renderer", want: "option-renderer", found: true},
		{input: "--renderer", want: "option-renderer", found: true},
		{input: "-renderer", want: "option-renderer", found: true},
		{input: "--workspace", want: "workspace", found: true},
		{input: "-r", found: false},
		{input: "sheets", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, ok := m.Get(tt.input)
			require.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.want, topic.Name)
			}
		})
	}
}

func TestManagerIndex(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "workspace.md", "w")
	writeTopic(t, dir, "storage.md", "s")
	writeTopic(t, dir, "option-renderer.md", "r")

	m := NewManager(dir, Options{})
	require.NoError(t, m.Load())

	index := m.Index("writ")
	assert.Contains(t, index, "Topics:\n  storage\n  workspace\n")
	assert.Contains(t, index, "Flag topics:\n  --renderer\n")
	assert.Contains(t, index, `Run "writ help <topic>" to read one.`)
}

func TestManagerIndexEmpty(t *testing.T) {
	m := NewManager(t.TempDir(), Options{})
	require.NoError(t, m.Load())
	assert.Equal(t, "No help topics available.\n", m.Index("writ"))
}

func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "scribble",
		Short: "test application",
		Run:   func(cmd *cobra.Command, args []string) {},
	}
	return root
}

func runHelp(t *testing.T, root *cobra.Command, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return buf.String()
}

func TestInstallShowsTopic(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "recording.txt", "RECORDING\nHow snapshots are taken.")

	root := newTestRoot()
	_, err := Install(root, dir, Options{})
	require.NoError(t, err)

	helpCmd, _, err := root.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help [command or topic]", helpCmd.Use)

	output := runHelp(t, root, "help", "recording")
	assert.Contains(t, output, "How snapshots are taken.")
}

func TestInstallShowsIndex(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "recording.txt", "r")
	writeTopic(t, dir, "workspace.md", "w")

	root := newTestRoot()
	_, err := Install(root, dir, Options{})
	require.NoError(t, err)

	output := runHelp(t, root, "help", "topics")
	assert.Contains(t, output, "recording")
	assert.Contains(t, output, "workspace")
	assert.Contains(t, output, `"scribble help <topic>"`)
}

func TestInstallFallback(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "workspace.md", "w")

	var got []string
	fallback := func(w io.Writer, args []string) bool {
		got = args
		_, _ = io.WriteString(w, "table help for "+args[0]+"\n")
		return true
	}

	root := newTestRoot()
	_, err := Install(root, dir, Options{Fallback: fallback})
	require.NoError(t, err)

	output := runHelp(t, root, "help", "status")
	assert.Equal(t, []string{"status"}, got)
	assert.Contains(t, output, "table help for status")
}

func TestInstallFallbackDeclines(t *testing.T) {
	root := newTestRoot()
	_, err := Install(root, t.TempDir(), Options{
		Fallback: func(w io.Writer, args []string) bool { return false },
	})
	require.NoError(t, err)

	// An unhandled name falls through to cobra's usage text.
	output := runHelp(t, root, "help", "nonsense")
	assert.Contains(t, output, "Usage:")
}

func TestInstallRendersMarkdownOnly(t *testing.T) {
	dir := t.TempDir()
	writeTopic(t, dir, "workspace.md", "# Workspaces")
	writeTopic(t, dir, "recording.txt", "# not markdown")

	root := newTestRoot()
	m, err := Install(root, dir, Options{Renderer: Glamour{Width: 60}})
	require.NoError(t, err)

	txt, ok := m.Get("recording")
	require.True(t, ok)
	assert.Equal(t, "# not markdown", m.Render(txt))

	md, ok := m.Get("workspace")
	require.True(t, ok)
	assert.Contains(t, m.Render(md), "Workspaces")
}
