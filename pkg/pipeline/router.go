package pipeline

import (
	"errors"
	"strings"

	"github.com/writ-vcs/writ/pkg/registry"
	"github.com/writ-vcs/writ/pkg/render"
)

// Process routes raw arguments to a command table entry and runs it.
//
// Matching compares word prefixes with a trailing space appended to
// both sides, so "bananas" never routes to a registered "banana".
// One match runs with the node words stripped from the front of the
// arguments. Zero matches reports the nearest known node; several
// matches is an error listing every candidate.
func Process(commands *registry.Registry[Entry], args []string, ctx *Context) (render.Result, error) {
	var result render.Result

	nodes := commands.List()
	command := strings.Join(args, " ") + " "

	var matching []string
	for _, node := range nodes {
		if strings.HasPrefix(command, node+" ") {
			matching = append(matching, node)
		}
	}

	switch len(matching) {
	case 0:
		return result, &NoMatchingCommandError{
			Input:      args,
			Suggestion: closestNode(strings.TrimSpace(command), nodes),
		}
	case 1:
		node := matching[0]
		entry, err := commands.Get(node)
		if err != nil {
			return result, &NodeNotFoundError{Node: node}
		}

		prefixLen := len(strings.Fields(node))
		trimmed := args[prefixLen:]

		log.Debug().Str("node", node).Str("impl", entry.Impl).Msg("routing command")
		result, err := entry.Run(ctx, trimmed)

		// The pipeline cannot know which node it ran under; stamp parse
		// failures here so callers can tell whose flags were mistyped.
		var parseErr *ParseError
		if errors.As(err, &parseErr) && parseErr.Node == "" {
			parseErr.Node = node
		}
		return result, err
	default:
		// matching preserves List() order, so candidates come sorted.
		return result, &AmbiguousCommandError{Input: args, Candidates: matching}
	}
}
