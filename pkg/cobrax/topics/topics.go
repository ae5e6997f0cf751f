// Package topics adds file-backed help topics to a Cobra application.
// Topics are markdown or plain-text files bundled into the binary; the
// help command resolves command names first and falls back to topics,
// so `gentlegoose help patterns` reads docs/patterns.md.
package topics

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// Topic is a single help topic loaded from the bundled docs
type Topic struct {
	Name    string
	Format  string
	Content string
}

// Manager indexes topics and hooks them into a root command's help
type Manager struct {
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	renderer     Renderer
}

// Options configures a Manager
type Options struct {
	// Renderer formats topic content for the terminal; defaults to
	// PlainRenderer
	Renderer Renderer
}

var topicExtensions = []string{".md", ".txt"}

// NewManager loads every .md and .txt file under root in docsFS as a
// topic, keyed by its basename without extension.
func NewManager(docsFS fs.FS, root string, opts Options) (*Manager, error) {
	m := &Manager{
		topics:   make(map[string]*Topic),
		renderer: opts.Renderer,
	}
	if m.renderer == nil {
		m.renderer = &PlainRenderer{}
	}

	err := fs.WalkDir(docsFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		supported := false
		for _, validExt := range topicExtensions {
			if ext == validExt {
				supported = true
				break
			}
		}
		if !supported {
			return nil
		}

		content, err := fs.ReadFile(docsFS, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{
			Name:    name,
			Format:  ext,
			Content: string(content),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load help topics: %w", err)
	}

	return m, nil
}

// Get retrieves a topic by name. Flag spellings are accepted, so
// `help --dry-run` resolves the dry-run topic.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	topic, ok := m.topics[name]
	return topic, ok
}

// Names returns the sorted list of available topic names
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Install replaces the root command's help command and help function
// with topic-aware versions. Command names still win over topics.
func Install(rootCmd *cobra.Command, docsFS fs.FS, root string, opts Options) error {
	m, err := NewManager(docsFS, root, opts)
	if err != nil {
		return err
	}

	m.originalHelp = rootCmd.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic.
Type ` + rootCmd.Name() + ` help [command or topic] for full details.

To see all available help topics:
  ` + rootCmd.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				m.originalHelp(rootCmd, []string{})
				return
			}

			if args[0] == "topics" {
				m.printTopicList(rootCmd.Name())
				return
			}

			// Commands shadow topics of the same name
			if sub, _, err := rootCmd.Find(args); err == nil && sub != rootCmd {
				m.originalHelp(sub, args)
				return
			}

			if topic, ok := m.Get(args[0]); ok {
				fmt.Print(m.renderer.Render(topic.Content, topic.Format))
				return
			}

			m.originalHelp(rootCmd, args)
		},
	}

	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			rootCmd.RemoveCommand(cmd)
			break
		}
	}
	rootCmd.AddCommand(helpCmd)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if topic, ok := m.Get(args[0]); ok {
				fmt.Print(m.renderer.Render(topic.Content, topic.Format))
				return
			}
		}
		m.originalHelp(cmd, args)
	})

	return nil
}

// printTopicList writes the available topics in help-command style
func (m *Manager) printTopicList(appName string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Println("No help topics available.")
		return
	}

	fmt.Println("Available help topics:")
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Printf("\nUse '%s help <topic>' to read about a specific topic.\n", appName)
}
