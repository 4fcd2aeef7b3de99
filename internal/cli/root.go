// Package cli builds the writ command line. There is one cobra root;
// its arguments are routed through the dispatch table rather than
// registered as cobra subcommands, so the command vocabulary stays in
// lockstep with the generated registry.
package cli

import (
	stderrors "errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/writ-vcs/writ/internal/version"
	"github.com/writ-vcs/writ/pkg/dispatch"
	"github.com/writ-vcs/writ/pkg/errors"
	"github.com/writ-vcs/writ/pkg/logging"
	"github.com/writ-vcs/writ/pkg/pipeline"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		renderer  string
		yes       bool
		quiet     bool
		root      string
	)

	rootCmd := &cobra.Command{
		Use:     "writ [command]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return &pipeline.NoMatchingCommandError{}
			}

			ctx, err := newContext(root, renderer, yes, quiet)
			if err != nil {
				return err
			}

			argv, help := stripHelp(args)
			ctx.Help = help

			result, err := pipeline.Process(dispatch.Commands, argv, ctx)
			if err != nil {
				return err
			}

			if !quiet && result.Text() != "" {
				fmt.Fprint(cmd.OutOrStdout(), result.String())
			}
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			// Completion scripts ship through writ-completions.
			DisableDefaultCmd: true,
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return completeCommandWord(args), cobra.ShellCompDirectiveNoFileComp
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}}\nCommit: %s\nBuilt:  %s\n",
		version.Commit, version.Date))

	// Command words and their own flags must reach the router
	// untouched, so flag parsing stops at the first bare argument.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().StringVarP(&renderer, "renderer", "r", "", MsgFlagRenderer)
	rootCmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)
	rootCmd.Flags().StringVarP(&root, "root", "C", ".", MsgFlagRoot)

	installHelp(rootCmd)

	return rootCmd
}

// newContext builds the pipeline context from the parsed global
// flags. The workspace root travels explicitly; nothing below the CLI
// consults the process working directory.
func newContext(root string, renderer string, yes bool, quiet bool) (*pipeline.Context, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve --root %s", root)
	}
	return &pipeline.Context{
		Root:      abs,
		Confirmed: yes,
		Quiet:     quiet,
		Renderer:  renderer,
	}, nil
}

// completeCommandWord offers the next word of every registered node
// whose leading words match what has been typed so far. Multi-word
// nodes complete one word at a time: "storage" first, then "build" or
// "write".
func completeCommandWord(typed []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, node := range dispatch.Commands.List() {
		words := strings.Fields(node)
		if len(words) <= len(typed) {
			continue
		}
		matched := true
		for i, w := range typed {
			if words[i] != w {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		next := words[len(typed)]
		if _, dup := seen[next]; dup {
			continue
		}
		seen[next] = struct{}{}
		out = append(out, next)
	}
	sort.Strings(out)
	return out
}

// stripHelp removes --help and -h from the arguments and reports
// whether either was present. Flag parsing stops at the command
// words, so a help request after them arrives here as a plain
// argument. Everything past a -- terminator is left alone.
func stripHelp(args []string) ([]string, bool) {
	var (
		out  []string
		help bool
	)
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if arg == "--help" || arg == "-h" {
			help = true
			continue
		}
		out = append(out, arg)
	}
	return out, help
}

// ExitCode maps an error from Execute to the process exit status.
// Mistyped invocations exit 2, failures during a well-formed one
// exit 1.
func ExitCode(err error) int {
	var (
		noMatch      *pipeline.NoMatchingCommandError
		ambiguous    *pipeline.AmbiguousCommandError
		parse        *pipeline.ParseError
		helpRenderer *pipeline.HelpWithRendererError
	)
	switch {
	case stderrors.As(err, &noMatch),
		stderrors.As(err, &ambiguous),
		stderrors.As(err, &parse),
		stderrors.As(err, &helpRenderer):
		return 2
	}
	return 1
}
