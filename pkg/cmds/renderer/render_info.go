package renderer

import (
	"fmt"

	"github.com/writ-vcs/writ/pkg/cmds/out"
	"github.com/writ-vcs/writ/pkg/render"
	"github.com/writ-vcs/writ/pkg/style"
)

//writ:use cmds::out::{WorkspaceInfo}

// RenderWorkspaceInfo renders where the enclosing workspace lives and
// what its state file records, as a labeled two-column block.
//
//writ:renderer RenderWorkspaceInfo
func RenderWorkspaceInfo(info *out.WorkspaceInfo) render.Result {
	var r render.Result
	r.Println(style.PathStyle.Render(info.Root))

	sheet := info.Sheet
	if sheet == "" {
		sheet = "(none)"
	}
	rows := [][2]string{
		{"state", info.StatePath},
		{"account", info.Account},
		{"sheet", sheet},
		{"tracked", fmt.Sprintf("%d files", info.Tracked)},
	}
	if info.Host {
		rows = append(rows, [2]string{"mode", "host"})
	}

	for _, row := range rows {
		r.Printf("  %s %s\n", style.MutedStyle.Render(fmt.Sprintf("%-8s", row[0])), row[1])
	}
	return r
}
