// Package dispatch owns the generated command and renderer tables.
// The zz_ files are written by writ-gen from registry.toml and the
// sources under pkg/cmds; everything else here is the hand-written
// glue they call into.
package dispatch

//go:generate go run github.com/writ-vcs/writ/cmd/writ-gen ../..

import (
	"github.com/writ-vcs/writ/pkg/logging"
	"github.com/writ-vcs/writ/pkg/pipeline"
	"github.com/writ-vcs/writ/pkg/registry"
	"github.com/writ-vcs/writ/pkg/render"
)

var log = logging.GetLogger("dispatch")

// Commands is the routing table. The generated zz_commands.go fills it
// from init, one entry per configured or discovered command.
var Commands = registry.New[pipeline.Entry]()

// register adds one generated entry. The generator deduplicates nodes
// before emitting, so a collision here is a programming error.
func register(node string, e pipeline.Entry) {
	registry.MustRegister(Commands, node, e)
	log.Trace().Str("node", node).Str("impl", e.Impl).Msg("command registered")
}

// runCommand erases a command into the RunFunc shape the table
// stores, binding it to the generated renderer tables.
func runCommand(c pipeline.Command) pipeline.RunFunc {
	return func(ctx *pipeline.Context, argv []string) (render.Result, error) {
		return c.Run(ctx, argv, Tables())
	}
}

// Render routes any tagged value through the type-directed table,
// with no command involved. Tags without a bound renderer fail with
// RendererNotFoundError.
func Render(tag string, v any) (render.Result, error) {
	return renderByTag(tag, v)
}

// tables implements pipeline.Renderers on top of the generated
// dispatch functions.
type tables struct{}

// Tables returns the renderer dispatch backed by zz_renderers.go and
// zz_override.go.
func Tables() pipeline.Renderers {
	return tables{}
}

func (tables) ByType(tag string, v any) (render.Result, error) {
	return Render(tag, v)
}

func (tables) Named(name string, tag string, v any) (render.Result, error) {
	return renderByName(name, tag, v)
}

// renderTyped guards a named typed renderer: the output tag must be
// the type the renderer accepts, then by-tag dispatch takes over.
func renderTyped(expected string, tag string, v any) (render.Result, error) {
	if tag != expected {
		return render.Result{}, &render.TypeMismatchError{Expected: expected, Actual: tag}
	}
	return renderByTag(tag, v)
}
