package renderer

import (
	"fmt"
	"sort"

	"github.com/writ-vcs/writ/pkg/cmds/out"
	"github.com/writ-vcs/writ/pkg/render"
	"github.com/writ-vcs/writ/pkg/style"
)

// RenderMappingsPretty is the numbered-table take on the index. It is
// wired by name only, never by output tag, so it takes the erased value
// and does its own downcast.
func RenderMappingsPretty(v any) (render.Result, error) {
	mappings, ok := v.(*out.StorageMappings)
	if !ok {
		return render.Result{}, &render.DowncastError{Type: "StorageMappings"}
	}

	var r render.Result
	r.Println(style.RenderTemplate(
		"[subtitle]{{count}} files[/subtitle] in [path]{{store}}[/path]",
		map[string]string{
			"count": fmt.Sprint(len(mappings.Files)),
			"store": mappings.Store,
		}))

	paths := make([]string, 0, len(mappings.Files))
	width := 0
	for path := range mappings.Files {
		paths = append(paths, path)
		if len(path) > width {
			width = len(path)
		}
	}
	sort.Strings(paths)

	numWidth := len(fmt.Sprint(len(paths)))
	for i, path := range paths {
		r.Printf("  %s  %-*s  %s\n",
			style.Bold(fmt.Sprintf("%*d", numWidth, i+1)),
			width, path,
			style.HashStyle.Render(shortHash(mappings.Files[path])))
	}
	return r, nil
}

// shortHash abbreviates a content hash for display. Serializers always
// carry the full hash.
func shortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12]
}
