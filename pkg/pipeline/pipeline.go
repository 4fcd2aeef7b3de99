// Package pipeline runs commands through their phases: parse the
// arguments, prepare and collect concurrently, execute, then render
// the tagged output through the dispatch tables.
package pipeline

import (
	"sync"

	"github.com/writ-vcs/writ/pkg/logging"
	"github.com/writ-vcs/writ/pkg/render"
)

var log = logging.GetLogger("pipeline")

// Run executes a command spec through the full phase sequence.
//
// --help short-circuits before parsing: with a renderer override it is
// an error, otherwise the help text becomes the result. Prepare and
// Collect always both run to completion; when both fail, the prepare
// error is the one reported.
func Run[A, I, C any](s Spec[A, I, C], ctx *Context, argv []string, renderers Renderers) (render.Result, error) {
	var result render.Result

	if ctx.Help {
		if ctx.Renderer != "" {
			return result, &HelpWithRendererError{Renderer: ctx.Renderer}
		}
		result.Println(s.Help())
		return result, nil
	}

	args, err := s.Parse(argv)
	if err != nil {
		return result, &ParseError{Help: s.Help(), Err: err}
	}

	var (
		input      I
		collected  C
		prepareErr error
		collectErr error
		wg         sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		input, prepareErr = s.Prepare(args, ctx)
	}()
	go func() {
		defer wg.Done()
		collected, collectErr = s.Collect(args, ctx)
	}()
	wg.Wait()

	if prepareErr != nil {
		return result, &PhaseError{Phase: PhasePrepare, Err: prepareErr}
	}
	if collectErr != nil {
		return result, &PhaseError{Phase: PhaseCollect, Err: collectErr}
	}

	out, err := s.Exec(input, collected)
	if err != nil {
		return result, &ExecuteError{Err: err}
	}

	log.Trace().Str("type", out.Type).Msg("command output tagged")

	if ctx.Renderer != "" {
		result, err = renderers.Named(ctx.Renderer, out.Type, out.Value)
	} else {
		result, err = renderers.ByType(out.Type, out.Value)
	}
	if err != nil {
		return result, &RenderError{Err: err}
	}

	return result, nil
}
