package pipeline

import (
	"strings"

	"github.com/agext/levenshtein"
)

// suggestionDistance is how far an input may be from a node before
// suggesting it stops being helpful.
const suggestionDistance = 2

// closestNode picks the registered node nearest to the attempted
// input. A node the input prefixes wins outright, so "storage" points
// at "storage build" rather than whichever node is fewest edits away.
// Otherwise the nearest node within suggestionDistance edits is
// suggested. Empty input suggests nothing.
func closestNode(input string, nodes []string) string {
	if input == "" {
		return ""
	}

	// nodes arrive sorted, so the first prefix match is stable.
	for _, node := range nodes {
		if strings.HasPrefix(node, input) {
			return node
		}
	}

	best := ""
	bestDist := -1
	for _, node := range nodes {
		d := levenshtein.Distance(input, node, nil)
		if bestDist < 0 || d < bestDist {
			best, bestDist = node, d
		}
	}

	if bestDist < 0 || bestDist > suggestionDistance {
		return ""
	}
	return best
}
