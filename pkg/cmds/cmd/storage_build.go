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

//writ:use cmds::out::{StorageMappings}

// StorageBuildCommand hashes every workspace file into the storage
// index. The index is what storage write later persists from.
type StorageBuildCommand struct{}

type buildArgs struct{}

type buildInput struct {
	root string
}

type buildCollect struct {
	index *store.Index
}

func (StorageBuildCommand) Help() string {
	return `writ storage build

Hash every workspace file into the storage index. Run it before
storage write; the index is what the write pass reads.`
}

func (StorageBuildCommand) Parse(argv []string) (buildArgs, error) {
	flags := pflag.NewFlagSet("storage build", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	if err := flags.Parse(argv); err != nil {
		return buildArgs{}, err
	}
	if flags.NArg() > 0 {
		return buildArgs{}, errors.Newf(errors.ErrInvalidInput,
			"storage build takes no arguments, got %q", flags.Args())
	}
	return buildArgs{}, nil
}

func (StorageBuildCommand) Prepare(args buildArgs, ctx *pipeline.Context) (buildInput, error) {
	root, err := workspace.Find(ctx.Root)
	if err != nil {
		return buildInput{}, err
	}
	return buildInput{root: root}, nil
}

func (StorageBuildCommand) Collect(args buildArgs, ctx *pipeline.Context) (buildCollect, error) {
	root, err := workspace.Find(ctx.Root)
	if err != nil {
		return buildCollect{}, err
	}
	index, err := store.New(workspace.StorePath(root)).Build(root)
	if err != nil {
		return buildCollect{}, err
	}
	return buildCollect{index: index}, nil
}

func (StorageBuildCommand) Exec(input buildInput, collect buildCollect) (pipeline.Output, error) {
	st := store.New(workspace.StorePath(input.root))
	if err := st.SaveIndex(collect.index); err != nil {
		return pipeline.Output{}, err
	}

	mappings := &out.StorageMappings{
		Root:  input.root,
		Store: st.Dir(),
		Files: collect.index.Objects,
	}
	return pipeline.Tagged(mappings, "StorageMappings"), nil
}

func (c StorageBuildCommand) Run(ctx *pipeline.Context, argv []string, renderers pipeline.Renderers) (render.Result, error) {
	return pipeline.Run[buildArgs, buildInput, buildCollect](c, ctx, argv, renderers)
}
