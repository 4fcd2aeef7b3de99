package pipeline

import "fmt"

// Phase names carried by PhaseError.
const (
	PhasePrepare = "prepare"
	PhaseCollect = "collect"
)

// PhaseError wraps a failure from the prepare or collect phase.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// ExecuteError wraps a failure from the execution phase.
type ExecuteError struct {
	Err error
}

func (e *ExecuteError) Error() string {
	return fmt.Sprintf("execute error: %v", e.Err)
}

func (e *ExecuteError) Unwrap() error {
	return e.Err
}

// RenderError wraps a failure from the rendering phase.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// ParseError reports rejected command arguments. Help carries the
// command's help text so the caller can show usage instead of a bare
// flag-parsing message.
type ParseError struct {
	Node string
	Help string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NodeNotFoundError reports a routed node missing from the command
// table. The table is generated from the same sources routing reads,
// so hitting this means the build is stale.
type NodeNotFoundError struct {
	Node string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %q not found", e.Node)
}

// NoMatchingCommandError reports input that matched no registered
// command. Suggestion holds the nearest known node, if any is close
// enough to be worth offering.
type NoMatchingCommandError struct {
	Input      []string
	Suggestion string
}

func (e *NoMatchingCommandError) Error() string {
	return "no matching command found"
}

// AmbiguousCommandError reports input whose words prefix-match more
// than one registered command. Candidates are sorted.
type AmbiguousCommandError struct {
	Input      []string
	Candidates []string
}

func (e *AmbiguousCommandError) Error() string {
	return fmt.Sprintf("ambiguous command, %d matches found", len(e.Candidates))
}

// HelpWithRendererError reports --help combined with a renderer
// override. Help output has no stable type, so it cannot go through a
// named renderer.
type HelpWithRendererError struct {
	Renderer string
}

func (e *HelpWithRendererError) Error() string {
	return "renderer override is active, but help was requested"
}
