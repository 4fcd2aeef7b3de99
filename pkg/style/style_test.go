package style

import (
	"strings"
	"testing"
)

func TestTextHelpers(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		style    func(string) string
		contains string
	}{
		{
			name:     "bold text",
			text:     "Hello World",
			style:    Bold,
			contains: "Hello World",
		},
		{
			name:     "italic text",
			text:     "Hello World",
			style:    Italic,
			contains: "Hello World",
		},
		{
			name:     "underline text",
			text:     "Hello World",
			style:    Underline,
			contains: "Hello World",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.style(tt.text)
			if !strings.Contains(result, tt.contains) {
				t.Errorf("Expected output to contain %q, got %q", tt.contains, result)
			}
		})
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		level    int
		expected string
	}{
		{
			name:     "no indent",
			text:     "Hello",
			level:    0,
			expected: "Hello",
		},
		{
			name:     "single indent",
			text:     "Hello",
			level:    1,
			expected: "  Hello",
		},
		{
			name:     "double indent",
			text:     "Hello",
			level:    2,
			expected: "    Hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Indent(tt.text, tt.level)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestMarkupRender(t *testing.T) {
	t.Run("known tag keeps content", func(t *testing.T) {
		result := Render("[error]broken[/error]")
		if !strings.Contains(result, "broken") {
			t.Errorf("Expected content to survive rendering, got %q", result)
		}
		if strings.Contains(result, "[error]") {
			t.Errorf("Expected tags to be consumed, got %q", result)
		}
	})

	t.Run("unknown tag stays verbatim", func(t *testing.T) {
		result := Render("[nope]text[/nope]")
		if result != "[nope]text[/nope]" {
			t.Errorf("Expected unknown tags untouched, got %q", result)
		}
	})

	t.Run("nested tags resolve", func(t *testing.T) {
		result := Render("[muted]saved as [path]ch1.md[/path][/muted]")
		for _, expected := range []string{"saved as", "ch1.md"} {
			if !strings.Contains(result, expected) {
				t.Errorf("Expected output to contain %q, got %q", expected, result)
			}
		}
		if strings.Contains(result, "[path]") || strings.Contains(result, "[muted]") {
			t.Errorf("Expected all tags consumed, got %q", result)
		}
	})

	t.Run("change class tags exist", func(t *testing.T) {
		for _, tag := range []string{"created", "modified", "missing", "clean"} {
			result := Render("[" + tag + "]x[/" + tag + "]")
			if strings.Contains(result, "["+tag+"]") {
				t.Errorf("Expected %q tag to be known", tag)
			}
		}
	})
}

func TestMarkupRenderTemplate(t *testing.T) {
	result := RenderTemplate("[subtitle]{{account}} on {{sheet}}[/subtitle]", map[string]string{
		"account": "ines",
		"sheet":   "draft-2",
	})

	for _, expected := range []string{"ines", "draft-2"} {
		if !strings.Contains(result, expected) {
			t.Errorf("Expected output to contain %q, got %q", expected, result)
		}
	}
	if strings.Contains(result, "{{") {
		t.Errorf("Expected all variables substituted, got %q", result)
	}
}
