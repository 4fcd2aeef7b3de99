package renderer

import (
	"sort"

	"github.com/writ-vcs/writ/pkg/cmds/out"
	"github.com/writ-vcs/writ/pkg/render"
	"github.com/writ-vcs/writ/pkg/style"
)

//writ:use cmds::out::{StorageMappings}

// RenderMappings renders the path to hash index one file per line,
// paths left-aligned so the hashes form a column.
//
//writ:renderer RenderMappings
func RenderMappings(mappings *out.StorageMappings) render.Result {
	var r render.Result
	if len(mappings.Files) == 0 {
		r.Println(style.MutedStyle.Render("no files recorded"))
		return r
	}

	paths := make([]string, 0, len(mappings.Files))
	width := 0
	for path := range mappings.Files {
		paths = append(paths, path)
		if len(path) > width {
			width = len(path)
		}
	}
	sort.Strings(paths)

	for _, path := range paths {
		r.Printf("%-*s  %s\n", width, path, style.HashStyle.Render(mappings.Files[path]))
	}
	return r
}
