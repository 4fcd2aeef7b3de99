package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/writ-vcs/writ/pkg/cobrax/topics"
	"github.com/writ-vcs/writ/pkg/dispatch"
	"github.com/writ-vcs/writ/pkg/pipeline"
)

// installHelp wires the topic help system into the root command, so
// "writ help workspace" reads a topic file and "writ help status"
// shows command help from the dispatch table. A missing topic
// directory leaves the topic set empty; command help still works.
func installHelp(rootCmd *cobra.Command) {
	opts := topics.Options{
		Renderer: topics.Glamour{},
		Fallback: commandHelp,
	}

	dirs := topicsDirs()
	dir := dirs[0]
	for _, candidate := range dirs {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			dir = candidate
			break
		}
	}

	if _, err := topics.Install(rootCmd, dir, opts); err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("help topics unavailable")
	}
}

// topicsDirs lists the places topic files may live: next to an
// installed binary, in the development tree relative to it, or under
// the working directory.
func topicsDirs() []string {
	dirs := []string{filepath.Join("docs", "help")}
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		dirs = []string{
			filepath.Join(exeDir, "topics"),
			filepath.Join(exeDir, "..", "..", "docs", "help"),
			filepath.Join("docs", "help"),
		}
	}
	return dirs
}

// commandHelp answers help requests naming registered command words.
// The help flag short-circuits the pipeline before any workspace
// access, so an empty context is enough.
func commandHelp(w io.Writer, args []string) bool {
	ctx := &pipeline.Context{Help: true}
	result, err := pipeline.Process(dispatch.Commands, args, ctx)
	if err != nil {
		return false
	}
	fmt.Fprint(w, result.String())
	return true
}
