// New commands start from this file. Copy it, name the copy after the
// invocation path (underscores in the stem become spaces, so
// sheet_use.go answers to "writ sheet use"), and rename Example below
// to the pascal-cased stem. writ-gen picks the file up on its next
// run; nothing else needs registering. The underscore prefix keeps
// this file out of the build and out of every scan.

package cmd

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/writ-vcs/writ/pkg/cmds/out"
	"github.com/writ-vcs/writ/pkg/errors"
	"github.com/writ-vcs/writ/pkg/pipeline"
	"github.com/writ-vcs/writ/pkg/render"
)

//writ:use cmds::out::{Example}

type ExampleCommand struct{}

type exampleArgs struct{}

type exampleInput struct{}

type exampleCollect struct{}

func (ExampleCommand) Help() string {
	return `writ example

One line on what the command does.`
}

func (ExampleCommand) Parse(argv []string) (exampleArgs, error) {
	flags := pflag.NewFlagSet("example", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	if err := flags.Parse(argv); err != nil {
		return exampleArgs{}, err
	}
	if flags.NArg() > 0 {
		return exampleArgs{}, errors.Newf(errors.ErrInvalidInput,
			"example takes no arguments, got %q", flags.Args())
	}
	return exampleArgs{}, nil
}

func (ExampleCommand) Prepare(args exampleArgs, ctx *pipeline.Context) (exampleInput, error) {
	return exampleInput{}, nil
}

func (ExampleCommand) Collect(args exampleArgs, ctx *pipeline.Context) (exampleCollect, error) {
	return exampleCollect{}, nil
}

func (ExampleCommand) Exec(input exampleInput, collect exampleCollect) (pipeline.Output, error) {
	result := &out.Example{}
	return pipeline.Tagged(result, "Example"), nil
}

func (c ExampleCommand) Run(ctx *pipeline.Context, argv []string, renderers pipeline.Renderers) (render.Result, error) {
	return pipeline.Run[exampleArgs, exampleInput, exampleCollect](c, ctx, argv, renderers)
}
