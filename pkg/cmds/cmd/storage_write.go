package cmd

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/writ-vcs/writ/pkg/cmds/out"
	"github.com/writ-vcs/writ/pkg/errors"
	"github.com/writ-vcs/writ/pkg/pipeline"
	"github.com/writ-vcs/writ/pkg/render"
	"github.com/writ-vcs/writ/pkg/store"
	"github.com/writ-vcs/writ/pkg/workspace"
)

//writ:use cmds::out::{WriteReceipt}

// StorageWriteCommand persists indexed content into the object store.
// Without confirmation it only reports what a real run would write.
type StorageWriteCommand struct{}

type writeArgs struct {
	yes bool
}

type writeInput struct {
	root   string
	dryRun bool
}

type writeCollect struct {
	index *store.Index
}

func (StorageWriteCommand) Help() string {
	return `writ storage write

Persist indexed content into the object store. Runs dry unless
confirmed with --yes; blobs already stored are skipped.`
}

// Parse accepts --yes here as well as at the root, so the flag works
// wherever it lands on the command line.
func (StorageWriteCommand) Parse(argv []string) (writeArgs, error) {
	var args writeArgs
	flags := pflag.NewFlagSet("storage write", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.BoolVarP(&args.yes, "yes", "y", false, "confirm the write")
	if err := flags.Parse(argv); err != nil {
		return writeArgs{}, err
	}
	if flags.NArg() > 0 {
		return writeArgs{}, errors.Newf(errors.ErrInvalidInput,
			"storage write takes no arguments, got %q", flags.Args())
	}
	return args, nil
}

func (StorageWriteCommand) Prepare(args writeArgs, ctx *pipeline.Context) (writeInput, error) {
	root, err := workspace.Find(ctx.Root)
	if err != nil {
		return writeInput{}, err
	}
	return writeInput{root: root, dryRun: !(ctx.Confirmed || args.yes)}, nil
}

func (StorageWriteCommand) Collect(args writeArgs, ctx *pipeline.Context) (writeCollect, error) {
	root, err := workspace.Find(ctx.Root)
	if err != nil {
		return writeCollect{}, err
	}
	index, err := store.New(workspace.StorePath(root)).LoadIndex()
	if err != nil {
		return writeCollect{}, err
	}
	return writeCollect{index: index}, nil
}

func (StorageWriteCommand) Exec(input writeInput, collect writeCollect) (pipeline.Output, error) {
	st := store.New(workspace.StorePath(input.root))
	receipt, err := st.Write(input.root, collect.index, input.dryRun)
	if err != nil {
		return pipeline.Output{}, err
	}

	result := &out.WriteReceipt{
		Store:   st.Dir(),
		Written: receipt.Written,
		Skipped: receipt.Skipped,
		DryRun:  receipt.DryRun,
	}
	return pipeline.Tagged(result, "WriteReceipt"), nil
}

func (c StorageWriteCommand) Run(ctx *pipeline.Context, argv []string, renderers pipeline.Renderers) (render.Result, error) {
	return pipeline.Run[writeArgs, writeInput, writeCollect](c, ctx, argv, renderers)
}
