// writ-gen regenerates the dispatch tables and doc listings from
// registry.toml and the sources under pkg/cmds. Pass the project root
// as the only argument; the default is the working directory.
package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/writ-vcs/writ/pkg/gen"
	"github.com/writ-vcs/writ/pkg/logging"
)

func main() {
	logging.SetupLogger(0)

	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	report, err := gen.New(root).Generate()
	if err != nil {
		pterm.Error.Printfln("generation failed: %v", err)
		os.Exit(1)
	}

	for _, file := range report.Files {
		pterm.Info.Printfln("wrote %s", file)
	}
	pterm.Success.Printfln("%d commands, %d renderers, %d overrides, %d listings",
		report.Commands, report.Renderers, report.Overrides, report.Listings)
}
