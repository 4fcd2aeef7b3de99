package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writ-vcs/writ/pkg/render"
)

type testReceipt struct {
	Path   string `json:"path" yaml:"path" toml:"path"`
	Size   int64  `json:"size" yaml:"size" toml:"size"`
	Stored bool   `json:"stored" yaml:"stored" toml:"stored"`
}

func TestResultAccumulation(t *testing.T) {
	var r render.Result

	r.Print("workspace: ")
	r.Println("notes")
	r.Printf("%d files tracked", 3)

	assert.Equal(t, "workspace: notes\n3 files tracked", r.Text())
	assert.Equal(t, "workspace: notes\n3 files tracked\n", r.String())
}

func TestResultStringTrims(t *testing.T) {
	tests := []struct {
		name string
		fill func(r *render.Result)
		want string
	}{
		{
			name: "trailing newlines collapse to one",
			fill: func(r *render.Result) {
				r.Println("line")
				r.Println("")
				r.Println("")
			},
			want: "line\n",
		},
		{
			name: "leading whitespace trimmed",
			fill: func(r *render.Result) {
				r.Print("\n\n  centered  ")
			},
			want: "centered\n",
		},
		{
			name: "empty result is a single newline",
			fill: func(r *render.Result) {},
			want: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r render.Result
			tt.fill(&r)
			assert.Equal(t, tt.want, r.String())
		})
	}
}

func TestResultClear(t *testing.T) {
	var r render.Result
	r.Println("stale")
	r.Clear()
	r.Print("fresh")

	assert.Equal(t, "fresh", r.Text())
}

func TestJSON(t *testing.T) {
	r, err := render.JSON(testReceipt{Path: "notes/ch1.md", Size: 42, Stored: true})
	require.NoError(t, err)

	assert.Equal(t, `{"path":"notes/ch1.md","size":42,"stored":true}`+"\n", r.String())
}

func TestJSONPretty(t *testing.T) {
	r, err := render.JSONPretty(testReceipt{Path: "notes/ch1.md", Size: 42})
	require.NoError(t, err)

	out := r.String()
	assert.True(t, strings.HasPrefix(out, "{\n"))
	assert.Contains(t, out, "  \"path\": \"notes/ch1.md\"")
}

func TestJSONUnserializable(t *testing.T) {
	_, err := render.JSON(map[string]any{"bad": func() {}})
	require.Error(t, err)

	var serr *render.SerializeError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "json", serr.Format)
}

func TestYAML(t *testing.T) {
	r, err := render.YAML(testReceipt{Path: "notes/ch1.md", Size: 42, Stored: true})
	require.NoError(t, err)

	out := r.String()
	assert.Contains(t, out, "path: notes/ch1.md")
	assert.Contains(t, out, "size: 42")
	assert.Contains(t, out, "stored: true")
}

func TestTOML(t *testing.T) {
	r, err := render.TOML(testReceipt{Path: "notes/ch1.md", Size: 42})
	require.NoError(t, err)

	out := r.String()
	assert.Contains(t, out, "path = 'notes/ch1.md'")
	assert.Contains(t, out, "size = 42")
}

func TestXML(t *testing.T) {
	r, err := render.XML(testReceipt{Path: "notes/ch1.md", Size: 42, Stored: true})
	require.NoError(t, err)

	out := r.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<path>notes/ch1.md</path>")
	assert.Contains(t, out, "<size>42</size>")
	assert.Contains(t, out, "<stored>true</stored>")

	// Keys come out sorted, so output is stable across runs.
	assert.Less(t, strings.Index(out, "<path>"), strings.Index(out, "<size>"))
	assert.Less(t, strings.Index(out, "<size>"), strings.Index(out, "<stored>"))
}

func TestXMLLists(t *testing.T) {
	r, err := render.XML(map[string]any{
		"files": []string{"a.md", "b.md"},
	})
	require.NoError(t, err)

	out := r.String()
	assert.Contains(t, out, "<item>a.md</item>")
	assert.Contains(t, out, "<item>b.md</item>")
}

func TestNone(t *testing.T) {
	r, err := render.None(testReceipt{Path: "ignored"})
	require.NoError(t, err)

	assert.Equal(t, "", r.Text())
	assert.Equal(t, "\n", r.String())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `renderer "hex" not found`,
		(&render.RendererNotFoundError{Name: "hex"}).Error())
	assert.Equal(t, `type mismatch: expected "HexDump", got "StatusReport"`,
		(&render.TypeMismatchError{Expected: "HexDump", Actual: "StatusReport"}).Error())
	assert.Equal(t, `cannot downcast output to "HexDump"`,
		(&render.DowncastError{Type: "HexDump"}).Error())
}
