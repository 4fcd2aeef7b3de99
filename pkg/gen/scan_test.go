// pkg/gen/scan_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem via t.TempDir
// PURPOSE: Test source scanning for output markers and renderer annotations

package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const useHexDump = "//writ:use cmds::out::{HexDump, StatusReport}\n\n"

func TestScanRendererFile(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantOK   bool
		wantFunc string
		wantType string
	}{
		{
			name:     "annotation_and_function",
			src:      useHexDump + "//writ:renderer RenderHex\nfunc RenderHex(d *out.HexDump) render.Result {\n\treturn render.Result{}\n}\n",
			wantOK:   true,
			wantFunc: "RenderHex",
			wantType: "cmds::out::HexDump",
		},
		{
			name:   "misspelled_annotation",
			src:    useHexDump + "//writ:rendrer RenderHex\nfunc RenderHex(d *out.HexDump) render.Result {}\n",
			wantOK: false,
		},
		{
			name:   "no_annotation",
			src:    useHexDump + "func RenderHex(d *out.HexDump) render.Result {}\n",
			wantOK: false,
		},
		{
			name:   "function_without_parameters",
			src:    useHexDump + "//writ:renderer RenderHex\nfunc RenderHex() render.Result {}\n",
			wantOK: false,
		},
		{
			name:     "first_of_several_parameters",
			src:      useHexDump + "//writ:renderer RenderHex\nfunc RenderHex(d *out.HexDump, width int) render.Result {}\n",
			wantOK:   true,
			wantFunc: "RenderHex",
			wantType: "cmds::out::HexDump",
		},
		{
			name:     "value_parameter",
			src:      useHexDump + "//writ:renderer RenderStatus\nfunc RenderStatus(r out.StatusReport) render.Result {}\n",
			wantOK:   true,
			wantFunc: "RenderStatus",
			wantType: "cmds::out::StatusReport",
		},
		{
			name:     "unqualified_parameter",
			src:      useHexDump + "//writ:renderer RenderHex\nfunc RenderHex(d *HexDump) render.Result {}\n",
			wantOK:   true,
			wantFunc: "RenderHex",
			wantType: "cmds::out::HexDump",
		},
		{
			name:     "extra_whitespace",
			src:      useHexDump + "//writ:renderer   RenderHex  \nfunc  RenderHex ( d  *out.HexDump )  render.Result {}\n",
			wantOK:   true,
			wantFunc: "RenderHex",
			wantType: "cmds::out::HexDump",
		},
		{
			name:     "multiline_declaration",
			src:      useHexDump + "//writ:renderer RenderHex\nfunc RenderHex(\n\td *out.HexDump,\n) render.Result {}\n",
			wantOK:   true,
			wantFunc: "RenderHex",
			wantType: "cmds::out::HexDump",
		},
		{
			name:   "commented_out_annotation",
			src:    useHexDump + "// //writ:renderer RenderHex\nfunc RenderHex(d *out.HexDump) render.Result {}\n",
			wantOK: false,
		},
		{
			name:   "annotation_at_end_of_file",
			src:    useHexDump + "//writ:renderer RenderHex\n",
			wantOK: false,
		},
		{
			name:     "first_annotation_wins",
			src:      useHexDump + "//writ:renderer RenderHex\nfunc RenderHex(d *out.HexDump) render.Result {}\n\n//writ:renderer RenderStatus\nfunc RenderStatus(r *out.StatusReport) render.Result {}\n",
			wantOK:   true,
			wantFunc: "RenderHex",
			wantType: "cmds::out::HexDump",
		},
		{
			name:     "code_between_annotation_and_function",
			src:      useHexDump + "//writ:renderer RenderHex\nvar hexWidth = 16\nfunc RenderHex(d *out.HexDump) render.Result {}\n",
			wantOK:   true,
			wantFunc: "RenderHex",
			wantType: "cmds::out::HexDump",
		},
		{
			name:   "parameter_type_not_declared",
			src:    useHexDump + "//writ:renderer RenderSecret\nfunc RenderSecret(s *out.Secret) render.Result {}\n",
			wantOK: false,
		},
		{
			name:   "no_use_declarations_at_all",
			src:    "//writ:renderer RenderHex\nfunc RenderHex(d *out.HexDump) render.Result {}\n",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binding, ok := scanRendererFile(tt.src, "render_test_input.go")
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantFunc, binding.Func)
				assert.Equal(t, tt.wantType, binding.Output)
			}
		})
	}
}

func TestOutputTypeNames(t *testing.T) {
	src := `package cmd

func (c StatusCommand) run() {
	report := StatusReport{}
	out := pipeline.Tagged(&report, "StatusReport")
	_ = out
	other := pipeline.Tagged(&report, "StatusReport")
	_ = other
	mapped := pipeline.Tagged( &mappings , "StorageMappings" )
	_ = mapped
}
`
	names := outputTypeNames(src)
	assert.Equal(t, []string{"StatusReport", "StatusReport", "StorageMappings"}, names)
}

func TestScanOutputTypes(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, CommandsPath)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	writeSource := func(name string, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	writeSource("status.go", "//writ:use cmds::out::{StatusReport}\n"+
		"func a() { _ = pipeline.Tagged(&r, \"StatusReport\") }\n")
	writeSource("hexdump.go", "//writ:use cmds::out::{HexDump, StatusReport}\n"+
		"func b() { _ = pipeline.Tagged(&d, \"HexDump\") }\n"+
		"func c() { _ = pipeline.Tagged(&r, \"StatusReport\") }\n")
	// Marker referencing a type the file never declares resolves to nothing.
	writeSource("broken.go", "//writ:use cmds::out::{HexDump}\n"+
		"func d() { _ = pipeline.Tagged(&x, \"Mystery\") }\n")
	// Ineligible files are invisible to the scan.
	writeSource("_template.go", "//writ:use cmds::out::{WriteReceipt}\n"+
		"func e() { _ = pipeline.Tagged(&w, \"WriteReceipt\") }\n")
	writeSource("status_test.go", "//writ:use cmds::out::{WriteReceipt}\n"+
		"func f() { _ = pipeline.Tagged(&w, \"WriteReceipt\") }\n")
	writeSource("notes.txt", "pipeline.Tagged(&w, \"WriteReceipt\")\n")

	types, err := ScanOutputTypes(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"cmds::out::HexDump", "cmds::out::StatusReport"}, types)
}

func TestScanRenderers(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, RenderersPath)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	writeSource := func(name string, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	writeSource("render_status.go", "//writ:use cmds::out::{StatusReport}\n"+
		"//writ:renderer RenderStatus\nfunc RenderStatus(r *out.StatusReport) render.Result {}\n")
	writeSource("render_hex.go", "//writ:use cmds::out::{HexDump}\n"+
		"//writ:renderer RenderHex\nfunc RenderHex(d *out.HexDump) render.Result {}\n")
	writeSource("helpers.go", "func pad(s string) string { return s }\n")

	bindings, err := ScanRenderers(root)
	require.NoError(t, err)
	require.Len(t, bindings, 2)

	// Sorted by function name regardless of file order.
	assert.Equal(t, "RenderHex", bindings[0].Func)
	assert.Equal(t, "cmds::out::HexDump", bindings[0].Output)
	assert.Equal(t, "RenderStatus", bindings[1].Func)
	assert.Equal(t, "cmds::out::StatusReport", bindings[1].Output)
}

func TestEligibleSource(t *testing.T) {
	tests := []struct {
		name string
		file string
		want bool
	}{
		{"plain_source", "status.go", true},
		{"underscore_prefix", "_template.go", false},
		{"test_file", "status_test.go", false},
		{"not_go", "notes.md", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eligibleSource(tt.file))
		})
	}
}
