// Package topics adds help topics to a cobra command tree. Topics are
// documents loaded from a file system (usually embedded in the binary) and
// shown with `help <topic>`; `help topics` lists them.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// OptionPrefix marks topics that document a flag. `help --dry-run` shows
// the option-dry-run topic.
const OptionPrefix = "option-"

// Topic is one help document
type Topic struct {
	Name    string
	Ext     string
	Content string
}

// Options configures which files become topics and how they are shown
type Options struct {
	// Extensions defaults to .txt and .md
	Extensions []string

	// Renderer defaults to PlainRenderer
	Renderer Renderer
}

// Manager holds the topics of one command tree
type Manager struct {
	topics   map[string]*Topic
	renderer Renderer
}

// Load reads every file with a topic extension in fsys
func Load(fsys fs.FS, opts Options) (*Manager, error) {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".txt", ".md"}
	}
	m := &Manager{topics: map[string]*Topic{}, renderer: opts.Renderer}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := path.Ext(p)
		if d.IsDir() || !contains(exts, ext) {
			return nil
		}
		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Ext: ext, Content: string(content)}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}
	return m, nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// Get finds a topic by name. Flag style names (--name, -n) look for the
// option topic.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if t, ok := m.topics[name]; ok {
		return t, true
	}
	t, ok := m.topics[OptionPrefix+name]
	return t, ok
}

// Names lists the topic names in alphabetical order
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats a topic for the terminal
func (m *Manager) Render(t *Topic) string {
	return m.renderer.Render(t.Content, t.Ext)
}

// WriteList prints the topics, general ones first and then the options
func (m *Manager) WriteList(w io.Writer, app string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, OptionPrefix) {
			options = append(options, strings.TrimPrefix(name, OptionPrefix))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", app)
}

// Install replaces the help command of root with one that also knows
// about topics, and makes --help show a topic when given one
func Install(root *cobra.Command, m *Manager) {
	original := root.HelpFunc()

	help := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + root.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + root.Name() + ` help topics`,
		DisableFlagParsing: true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			return append(completions, m.Names()...), cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			switch {
			case len(args) == 0:
				original(root, args)
			case args[0] == "topics":
				m.WriteList(out, root.Name())
			default:
				if t, ok := m.Get(args[0]); ok {
					fmt.Fprint(out, m.Render(t))
					return
				}
				if target, _, err := root.Find(args); err == nil {
					original(target, args)
					return
				}
				original(root, args)
			}
		},
	}

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.SetHelpCommand(help)

	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if t, ok := m.Get(args[0]); ok {
				fmt.Fprint(cmd.OutOrStdout(), m.Render(t))
				return
			}
		}
		original(cmd, args)
	})
}
