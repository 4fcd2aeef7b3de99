// pkg/gen/template_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test marker template expansion

package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/writ-vcs/writ/pkg/errors"
)

const armTemplate = `package dispatch
func table() {
// -- TEMPLATE START --
	case "<<NAME>>":
		use(<<REF>>)
// -- TEMPLATE END --
// MATCH
}
`

func TestExpandTemplate(t *testing.T) {
	t.Run("single_entry", func(t *testing.T) {
		got, err := ExpandTemplate(armTemplate, []map[string]string{
			{"NAME": "json", "REF": "render.JSON"},
		})
		require.NoError(t, err)
		assert.Equal(t, "package dispatch\nfunc table() {\n\tcase \"json\":\n\t\tuse(render.JSON)\n}\n", got)
	})

	t.Run("entries_join_in_order", func(t *testing.T) {
		got, err := ExpandTemplate(armTemplate, []map[string]string{
			{"NAME": "json", "REF": "render.JSON"},
			{"NAME": "yaml", "REF": "render.YAML"},
		})
		require.NoError(t, err)
		jsonAt := strings.Index(got, `case "json":`)
		yamlAt := strings.Index(got, `case "yaml":`)
		require.GreaterOrEqual(t, jsonAt, 0)
		require.GreaterOrEqual(t, yamlAt, 0)
		assert.Less(t, jsonAt, yamlAt)
	})

	t.Run("no_entries_leaves_no_arms", func(t *testing.T) {
		got, err := ExpandTemplate(armTemplate, nil)
		require.NoError(t, err)
		assert.Equal(t, "package dispatch\nfunc table() {\n}\n", got)
	})

	t.Run("markers_never_survive", func(t *testing.T) {
		got, err := ExpandTemplate(armTemplate, []map[string]string{{"NAME": "n", "REF": "r"}})
		require.NoError(t, err)
		assert.NotContains(t, got, "TEMPLATE START")
		assert.NotContains(t, got, "TEMPLATE END")
		assert.NotContains(t, got, "// MATCH")
	})

	t.Run("blank_lines_stripped", func(t *testing.T) {
		template := "a\n\n// -- TEMPLATE START --\nx <<V>>\n// -- TEMPLATE END --\n\n// MATCH\n\nb\n"
		got, err := ExpandTemplate(template, []map[string]string{{"V": "1"}})
		require.NoError(t, err)
		assert.Equal(t, "a\nx 1\nb\n", got)
	})

	t.Run("unknown_placeholders_stay_verbatim", func(t *testing.T) {
		got, err := ExpandTemplate(armTemplate, []map[string]string{{"NAME": "json"}})
		require.NoError(t, err)
		assert.Contains(t, got, "use(<<REF>>)")
	})
}

func TestExpandTemplateInvalid(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{"missing_start", "// -- TEMPLATE END --\n// MATCH\n"},
		{"missing_end", "// -- TEMPLATE START --\n// MATCH\n"},
		{"missing_match", "// -- TEMPLATE START --\n// -- TEMPLATE END --\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExpandTemplate(tt.template, nil)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateInvalid))
		})
	}
}
