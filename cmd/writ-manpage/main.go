package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/writ-vcs/writ/internal/cli"
	"github.com/writ-vcs/writ/internal/version"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "WRIT",
		Section: "1",
		Source:  "writ " + version.Version,
		Manual:  "writ manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
