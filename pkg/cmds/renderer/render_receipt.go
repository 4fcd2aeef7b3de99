package renderer

import (
	"fmt"

	"github.com/writ-vcs/writ/pkg/cmds/out"
	"github.com/writ-vcs/writ/pkg/render"
	"github.com/writ-vcs/writ/pkg/style"
)

//writ:use cmds::out::{WriteReceipt}

// RenderReceipt renders what a blob write pass did: the hashes it
// touched, a one-line summary, and the store it wrote to.
//
//writ:renderer RenderReceipt
func RenderReceipt(receipt *out.WriteReceipt) render.Result {
	var r render.Result

	for _, hash := range receipt.Written {
		r.Println("  " + style.HashStyle.Render(shortHash(hash)))
	}

	if receipt.DryRun {
		r.Println(style.WarningIndicator + fmt.Sprintf(" would write %d, skip %d", len(receipt.Written), receipt.Skipped))
		r.Println(style.MutedStyle.Render("dry run, pass --yes to write"))
	} else {
		r.Println(style.SuccessIndicator + fmt.Sprintf(" wrote %d, skipped %d", len(receipt.Written), receipt.Skipped))
	}
	r.Println(style.MutedStyle.Render("store " + receipt.Store))

	return r
}
