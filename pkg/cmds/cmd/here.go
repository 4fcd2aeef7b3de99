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

//writ:use cmds::out::{WorkspaceInfo}

// HereCommand shows which workspace encloses the current directory
// and what its state records.
type HereCommand struct{}

type hereArgs struct{}

type hereInput struct {
	root      string
	statePath string
	account   string
	sheet     string
	host      bool
}

type hereCollect struct {
	tracked int
}

func (HereCommand) Help() string {
	return `writ here

Show the enclosing workspace: its root, the owning account, the sheet
in use, and how many files the state records.`
}

func (HereCommand) Parse(argv []string) (hereArgs, error) {
	flags := pflag.NewFlagSet("here", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	if err := flags.Parse(argv); err != nil {
		return hereArgs{}, err
	}
	if flags.NArg() > 0 {
		return hereArgs{}, errors.Newf(errors.ErrInvalidInput,
			"here takes no arguments, got %q", flags.Args())
	}
	return hereArgs{}, nil
}

func (HereCommand) Prepare(args hereArgs, ctx *pipeline.Context) (hereInput, error) {
	reader, err := workspace.Open(ctx.Root)
	if err != nil {
		return hereInput{}, err
	}

	account, err := reader.Account()
	if err != nil {
		return hereInput{}, err
	}
	sheet, err := reader.SheetInUse()
	if err != nil {
		return hereInput{}, err
	}
	host, err := reader.HostMode()
	if err != nil {
		return hereInput{}, err
	}

	return hereInput{
		root:      reader.Root(),
		statePath: reader.ConfigPath(),
		account:   account,
		sheet:     sheet,
		host:      host,
	}, nil
}

func (HereCommand) Collect(args hereArgs, ctx *pipeline.Context) (hereCollect, error) {
	reader, err := workspace.Open(ctx.Root)
	if err != nil {
		return hereCollect{}, err
	}
	mappings, err := reader.Mappings()
	if err != nil {
		return hereCollect{}, err
	}
	return hereCollect{tracked: len(mappings)}, nil
}

func (HereCommand) Exec(input hereInput, collect hereCollect) (pipeline.Output, error) {
	info := &out.WorkspaceInfo{
		Root:      input.root,
		StatePath: input.statePath,
		Account:   input.account,
		Sheet:     input.sheet,
		Host:      input.host,
		Tracked:   collect.tracked,
	}
	return pipeline.Tagged(info, "WorkspaceInfo"), nil
}

func (c HereCommand) Run(ctx *pipeline.Context, argv []string, renderers pipeline.Renderers) (render.Result, error) {
	return pipeline.Run[hereArgs, hereInput, hereCollect](c, ctx, argv, renderers)
}
