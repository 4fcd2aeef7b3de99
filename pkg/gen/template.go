package gen

import (
	"strings"

	"github.com/writ-vcs/writ/pkg/errors"
)

// ExpandTemplate fills a marker template. The block between the start
// and end markers is the per-entry snippet; each entry substitutes its
// <<PLACEHOLDER>> values into a copy. The joined copies replace the
// match marker, the block and markers disappear, and blank lines are
// stripped so entry count never changes the file's shape.
func ExpandTemplate(template string, entries []map[string]string) (string, error) {
	startIdx := strings.Index(template, TemplateStart)
	if startIdx < 0 {
		return "", errors.Newf(errors.ErrTemplateInvalid, "template start marker %q not found", TemplateStart)
	}
	endIdx := strings.Index(template, TemplateEnd)
	if endIdx < 0 {
		return "", errors.Newf(errors.ErrTemplateInvalid, "template end marker %q not found", TemplateEnd)
	}
	if !strings.Contains(template, MatchMarker) {
		return "", errors.Newf(errors.ErrTemplateInvalid, "match marker %q not found", MatchMarker)
	}

	block := template[startIdx : endIdx+len(TemplateEnd)]
	snippet := strings.Trim(
		strings.TrimSuffix(strings.TrimPrefix(block, TemplateStart), TemplateEnd), "\n")

	arms := make([]string, 0, len(entries))
	for _, entry := range entries {
		arm := snippet
		for placeholder, value := range entry {
			arm = strings.ReplaceAll(arm, "<<"+placeholder+">>", value)
		}
		arms = append(arms, strings.Trim(arm, "\n"))
	}

	out := template
	if snippet != "" {
		out = strings.Replace(out, snippet, "", 1)
	}
	out = strings.ReplaceAll(out, TemplateStart, "")
	out = strings.ReplaceAll(out, TemplateEnd, "")
	out = strings.ReplaceAll(out, MatchMarker, strings.Join(arms, "\n"))

	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n") + "\n", nil
}
