// Package cmd implements the built-in commands, one file per command.
// The file stem is the invocation path with dots and underscores read
// as spaces, so storage_build.go answers to "writ storage build".
// writ-gen discovers every eligible file here; underscore-prefixed
// files are reserved for templates and never scanned.
package cmd

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/writ-vcs/writ/pkg/cmds/out"
	"github.com/writ-vcs/writ/pkg/errors"
	"github.com/writ-vcs/writ/pkg/pipeline"
	"github.com/writ-vcs/writ/pkg/render"
	"github.com/writ-vcs/writ/pkg/workspace"
)

//writ:use cmds::out::{StatusReport}

// StatusCommand reports how the working tree compares to the recorded
// workspace state.
type StatusCommand struct{}

type statusArgs struct{}

type statusInput struct {
	root    string
	account string
	sheet   string
	host    bool
}

type statusCollect struct {
	analysis *workspace.Analysis
}

func (StatusCommand) Help() string {
	return `writ status

Compare the working tree against the recorded workspace state.
Changed files are grouped as created, modified, or missing.`
}

func (StatusCommand) Parse(argv []string) (statusArgs, error) {
	flags := pflag.NewFlagSet("status", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	if err := flags.Parse(argv); err != nil {
		return statusArgs{}, err
	}
	if flags.NArg() > 0 {
		return statusArgs{}, errors.Newf(errors.ErrInvalidInput,
			"status takes no arguments, got %q", flags.Args())
	}
	return statusArgs{}, nil
}

func (StatusCommand) Prepare(args statusArgs, ctx *pipeline.Context) (statusInput, error) {
	reader, err := workspace.Open(ctx.Root)
	if err != nil {
		return statusInput{}, err
	}

	account, err := reader.Account()
	if err != nil {
		return statusInput{}, err
	}
	sheet, err := reader.SheetInUse()
	if err != nil {
		return statusInput{}, err
	}
	host, err := reader.HostMode()
	if err != nil {
		return statusInput{}, err
	}

	return statusInput{
		root:    reader.Root(),
		account: account,
		sheet:   sheet,
		host:    host,
	}, nil
}

func (StatusCommand) Collect(args statusArgs, ctx *pipeline.Context) (statusCollect, error) {
	reader, err := workspace.Open(ctx.Root)
	if err != nil {
		return statusCollect{}, err
	}
	analysis, err := reader.Analyze()
	if err != nil {
		return statusCollect{}, err
	}
	return statusCollect{analysis: analysis}, nil
}

func (StatusCommand) Exec(input statusInput, collect statusCollect) (pipeline.Output, error) {
	report := &out.StatusReport{
		Root:     input.root,
		Account:  input.account,
		Sheet:    input.sheet,
		Host:     input.host,
		Created:  collect.analysis.Created,
		Modified: collect.analysis.Modified,
		Missing:  collect.analysis.Missing,
		Clean:    collect.analysis.Clean,
		Dirty:    collect.analysis.Dirty(),
	}
	return pipeline.Tagged(report, "StatusReport"), nil
}

func (c StatusCommand) Run(ctx *pipeline.Context, argv []string, renderers pipeline.Renderers) (render.Result, error) {
	return pipeline.Run[statusArgs, statusInput, statusCollect](c, ctx, argv, renderers)
}
