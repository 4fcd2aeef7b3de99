// Package renderer holds the typed renderers that turn command output
// into human-readable text. Each annotated function in this tree is
// picked up by writ-gen and dispatched on the output tag; functions
// without an annotation are wired by name through registry.toml.
package renderer

import (
	"github.com/writ-vcs/writ/pkg/cmds/out"
	"github.com/writ-vcs/writ/pkg/render"
	"github.com/writ-vcs/writ/pkg/style"
)

//writ:use cmds::out::{StatusReport}

// RenderStatus renders the status report: a header naming the account
// and sheet, the change groups, and the hints that apply.
//
//writ:renderer RenderStatus
func RenderStatus(report *out.StatusReport) render.Result {
	var r render.Result

	header := "[bold]{{account}}[/bold] on sheet [subtitle]{{sheet}}[/subtitle]"
	if report.Sheet == "" {
		header = "[bold]{{account}}[/bold], no sheet in use"
	}
	r.Println(style.RenderTemplate(header, map[string]string{
		"account": report.Account,
		"sheet":   report.Sheet,
	}))
	r.Println("")

	if report.Dirty {
		groups := []struct {
			change style.Change
			paths  []string
		}{
			{style.ChangeCreated, report.Created},
			{style.ChangeModified, report.Modified},
			{style.ChangeMissing, report.Missing},
		}
		for _, group := range groups {
			if rendered := style.RenderChangeGroup(group.change, group.paths); rendered != "" {
				r.Println(rendered)
			}
		}
	} else {
		r.Println(style.SuccessIndicator + " working tree clean")
	}

	if report.Host {
		r.Println(style.MutedStyle.Render("hosting this workspace for other members"))
	}

	return r
}
