package style

import (
	"strings"

	"github.com/pterm/pterm"
)

// Change classes a workspace file can be in relative to the recorded
// state.
type Change string

const (
	ChangeCreated  Change = "created"  // On disk but not recorded
	ChangeModified Change = "modified" // Recorded but content differs
	ChangeMissing  Change = "missing"  // Recorded but gone from disk
	ChangeClean    Change = "clean"    // Recorded and unchanged
)

// ChangeStyle returns the appropriate pterm style for a change class
func ChangeStyle(change Change) *pterm.Style {
	switch change {
	case ChangeCreated:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case ChangeModified:
		return pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	case ChangeMissing:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// ChangeMarker returns the one-character marker shown before a path
func ChangeMarker(change Change) string {
	switch change {
	case ChangeCreated:
		return "+"
	case ChangeModified:
		return "~"
	case ChangeMissing:
		return "-"
	default:
		return "="
	}
}

// ChangeTitle returns the group heading for a change class
func ChangeTitle(change Change) string {
	switch change {
	case ChangeCreated:
		return "Created"
	case ChangeModified:
		return "Modified"
	case ChangeMissing:
		return "Missing"
	default:
		return "Clean"
	}
}

// RenderChangeLine renders a single file line: marker plus path,
// both in the class color.
func RenderChangeLine(change Change, path string) string {
	marker := ChangeStyle(change).Sprint(ChangeMarker(change))
	return "  " + marker + " " + path
}

// RenderChangeGroup renders a heading and one line per path. Empty
// groups render to the empty string so callers can join groups
// without blank sections.
func RenderChangeGroup(change Change, paths []string) string {
	if len(paths) == 0 {
		return ""
	}

	var result strings.Builder
	result.WriteString(ChangeStyle(change).Sprint(ChangeTitle(change)) + "\n")
	for _, path := range paths {
		result.WriteString(RenderChangeLine(change, path) + "\n")
	}
	return strings.TrimRight(result.String(), "\n")
}
