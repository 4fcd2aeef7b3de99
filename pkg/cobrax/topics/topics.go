// Package topics bolts a file-backed help system onto a cobra root
// command. Topic files live in a flat directory and are addressed by
// file name, so "writ help workspace" reads workspace.md. Help
// arguments that name no topic go to a fallback hook, which lets the
// binary answer them from its own command table before cobra's usage
// text takes over.
package topics

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// optionPrefix marks topic files documenting a flag rather than a
// concept, so "help --renderer" resolves to option-renderer.md.
const optionPrefix = "option-"

// Topic is one help file, keyed by its name without extension.
type Topic struct {
	Name string
	Path string
	Body string
}

// Fallback answers help requests that matched no topic file. It
// reports whether the request was handled; unhandled requests fall
// through to cobra's own help.
type Fallback func(w io.Writer, args []string) bool

// Options configure Install.
type Options struct {
	// Extensions lists the file suffixes read as topics. Defaults to
	// .md and .txt.
	Extensions []string

	// Renderer formats topic bodies for display. Defaults to Plain.
	Renderer Renderer

	// Fallback handles non-topic help arguments.
	Fallback Fallback
}

// Manager holds the topics loaded from one directory.
type Manager struct {
	dir      string
	topics   map[string]Topic
	exts     []string
	renderer Renderer
}

// NewManager builds a manager for dir. Call Load before using it.
func NewManager(dir string, opts Options) *Manager {
	m := &Manager{
		dir:      dir,
		topics:   make(map[string]Topic),
		exts:     opts.Extensions,
		renderer: opts.Renderer,
	}
	if len(m.exts) == 0 {
		m.exts = []string{".md", ".txt"}
	}
	if m.renderer == nil {
		m.renderer = Plain{}
	}
	return m
}

// Load reads every topic file in the directory. Subdirectories and
// files with other extensions are skipped. A missing directory is not
// an error, just an empty topic set.
func (m *Manager) Load() error {
	entries, err := os.ReadDir(m.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !m.supported(ext) {
			continue
		}

		path := filepath.Join(m.dir, entry.Name())
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		m.topics[name] = Topic{Name: name, Path: path, Body: string(body)}
	}
	return nil
}

func (m *Manager) supported(ext string) bool {
	for _, known := range m.exts {
		if ext == known {
			return true
		}
	}
	return false
}

// Get resolves a topic name. Flag spellings are also tried against
// option- files, so both "renderer" and "--renderer" find
// option-renderer.md when no plain renderer topic exists.
func (m *Manager) Get(name string) (Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := m.topics[name]; ok {
		return topic, true
	}
	topic, ok := m.topics[optionPrefix+name]
	return topic, ok
}

// Names returns the sorted topic names.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic body through the configured renderer. The
// file extension tells the renderer what it is looking at.
func (m *Manager) Render(topic Topic) string {
	return m.renderer.Render(topic.Body, filepath.Ext(topic.Path))
}

// Index renders the listing shown by "help topics". Option topics are
// grouped separately and shown in their flag spelling.
func (m *Manager) Index(app string) string {
	names := m.Names()
	if len(names) == 0 {
		return "No help topics available.\n"
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, "--"+strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	var b strings.Builder
	if len(general) > 0 {
		b.WriteString("Topics:\n")
		for _, name := range general {
			b.WriteString("  " + name + "\n")
		}
	}
	if len(options) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Flag topics:\n")
		for _, name := range options {
			b.WriteString("  " + name + "\n")
		}
	}
	fmt.Fprintf(&b, "\nRun \"%s help <topic>\" to read one.\n", app)
	return b.String()
}

// Install loads the topics in dir and replaces root's help command
// with one that resolves, in order: the topic index ("help topics"),
// a topic file, the fallback, then cobra's usage text. The --help
// flag keeps its usual behavior except that topic names are honored
// there too.
func Install(root *cobra.Command, dir string, opts Options) (*Manager, error) {
	m := NewManager(dir, opts)
	if err := m.Load(); err != nil {
		return nil, fmt.Errorf("loading help topics: %w", err)
	}

	originalHelp := root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: fmt.Sprintf(`Help shows the usage of any command or the text of any topic.

To list the available topics:
  %s help topics`, root.Name()),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				originalHelp(root, nil)
			case args[0] == "topics":
				fmt.Fprint(out, m.Index(root.Name()))
			default:
				if topic, ok := m.Get(args[0]); ok {
					fmt.Fprint(out, m.Render(topic))
					return
				}
				if opts.Fallback != nil && opts.Fallback(out, args) {
					return
				}
				originalHelp(root, args)
			}
		},
	}
	// A nameless hidden placeholder keeps cobra from minting its own
	// help command next to ours.
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	for _, cmd := range root.Commands() {
		if cmd.Name() == "help" {
			root.RemoveCommand(cmd)
			break
		}
	}
	root.AddCommand(helpCmd)

	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := m.Get(args[0]); ok {
				fmt.Fprint(cmd.OutOrStdout(), m.Render(topic))
				return
			}
		}
		originalHelp(cmd, args)
	})

	return m, nil
}
