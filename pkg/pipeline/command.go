package pipeline

import "github.com/writ-vcs/writ/pkg/render"

// Spec is the contract a command implements. A is the parsed argument
// type, I the prepared input, C the collected local state. Prepare and
// Collect run concurrently; Exec receives both results.
type Spec[A, I, C any] interface {
	// Help returns the text shown for --help and after parse failures.
	Help() string

	// Parse converts raw argv into the argument type.
	Parse(argv []string) (A, error)

	// Prepare turns parsed arguments into execution input.
	Prepare(args A, ctx *Context) (I, error)

	// Collect gathers local state the execution needs.
	Collect(args A, ctx *Context) (C, error)

	// Exec runs the command and returns its tagged output.
	Exec(input I, collect C) (Output, error)
}

// Output is a command result together with the type tag the render
// dispatch keys on.
type Output struct {
	Value any
	Type  string
}

// Tagged boxes a command output with its type tag. The source scanner
// reads these calls to learn which output types a command produces,
// so the tag must be a quoted literal naming the value's type.
func Tagged(v any, typeName string) Output {
	return Output{Value: v, Type: typeName}
}

// Command is the erased form of a Spec that the command table can
// store. Each command satisfies it with a one-line Run method that
// instantiates pipeline.Run with its own phase types.
type Command interface {
	Run(ctx *Context, argv []string, renderers Renderers) (render.Result, error)
}

// RunFunc executes one command table entry against parsed-out argv.
type RunFunc func(ctx *Context, argv []string) (render.Result, error)

// Entry is one row of the generated command table.
type Entry struct {
	// Key is the registry key or source file stem the entry came from.
	Key string

	// Node is the space separated invocation path, e.g. "storage build".
	Node string

	// Impl names the implementing command type, for logs and listings.
	Impl string

	Run RunFunc
}

// Renderers resolves rendering for tagged outputs. The generated
// dispatch tables implement it.
type Renderers interface {
	// ByType renders v with the renderer bound to its type tag.
	ByType(tag string, v any) (render.Result, error)

	// Named renders v with the named renderer, verifying the renderer
	// accepts the tagged type first.
	Named(name string, tag string, v any) (render.Result, error)
}
