package main

import (
	"fmt"
	"os"

	"github.com/writ-vcs/writ/internal/cli"
	"github.com/writ-vcs/writ/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		presenter := style.NewPresenter(style.DetectFormat(os.Stderr))
		if msg := presenter.Error(err); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		os.Exit(cli.ExitCode(err))
	}
}
