package cmd

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/writ-vcs/writ/pkg/cmds/out"
	"github.com/writ-vcs/writ/pkg/errors"
	"github.com/writ-vcs/writ/pkg/pipeline"
	"github.com/writ-vcs/writ/pkg/render"
)

//writ:use cmds::out::{HexDump}

// HexdumpCommand dumps a file's bytes. It touches no workspace state,
// which makes it the smallest complete command in the tree.
type HexdumpCommand struct{}

type hexArgs struct {
	File   string
	Length int64
}

type hexInput struct {
	// path keeps the command line spelling for display; reads go
	// through resolveFileArg.
	path string
}

type hexCollect struct {
	data []byte
}

func (HexdumpCommand) Help() string {
	return `writ hexdump <file> [-n length]

Dump a file as offset, hex, and text columns.

  -n, --length   dump at most this many bytes`
}

func (HexdumpCommand) Parse(argv []string) (hexArgs, error) {
	var args hexArgs
	flags := pflag.NewFlagSet("hexdump", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Int64VarP(&args.Length, "length", "n", 0, "dump at most this many bytes")
	if err := flags.Parse(argv); err != nil {
		return args, err
	}
	if flags.NArg() != 1 {
		return args, errors.Newf(errors.ErrInvalidInput,
			"hexdump takes exactly one file, got %d arguments", flags.NArg())
	}
	args.File = flags.Arg(0)
	return args, nil
}

// resolveFileArg anchors a relative path argument at the context root,
// never at the process working directory.
func resolveFileArg(ctx *pipeline.Context, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(ctx.Root, path)
}

func (HexdumpCommand) Prepare(args hexArgs, ctx *pipeline.Context) (hexInput, error) {
	info, err := os.Stat(resolveFileArg(ctx, args.File))
	if err != nil {
		return hexInput{}, errors.Wrapf(err, errors.ErrFileNotFound, "cannot open %s", args.File)
	}
	if info.IsDir() {
		return hexInput{}, errors.Newf(errors.ErrInvalidInput, "%s is a directory", args.File)
	}
	return hexInput{path: args.File}, nil
}

func (HexdumpCommand) Collect(args hexArgs, ctx *pipeline.Context) (hexCollect, error) {
	data, err := os.ReadFile(resolveFileArg(ctx, args.File))
	if err != nil {
		return hexCollect{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", args.File)
	}
	if args.Length > 0 && int64(len(data)) > args.Length {
		data = data[:args.Length]
	}
	return hexCollect{data: data}, nil
}

func (HexdumpCommand) Exec(input hexInput, collect hexCollect) (pipeline.Output, error) {
	dump := &out.HexDump{
		Path: input.path,
		Size: int64(len(collect.data)),
		Data: collect.data,
	}
	return pipeline.Tagged(dump, "HexDump"), nil
}

func (c HexdumpCommand) Run(ctx *pipeline.Context, argv []string, renderers pipeline.Renderers) (render.Result, error) {
	return pipeline.Run[hexArgs, hexInput, hexCollect](c, ctx, argv, renderers)
}
