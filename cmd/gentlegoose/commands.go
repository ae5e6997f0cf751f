// Package gentlegoose wires the CLI surface: the root command runs the
// sync pipeline, with version, completion, man, and topic subcommands
// around it.
package gentlegoose

import (
	"embed"
	"fmt"
	"os"

	"github.com/arthur-debert/gentlegoose/internal/version"
	"github.com/arthur-debert/gentlegoose/pkg/cobrax/topics"
	"github.com/arthur-debert/gentlegoose/pkg/errors"
	"github.com/arthur-debert/gentlegoose/pkg/commands/sync"
	"github.com/arthur-debert/gentlegoose/pkg/logging"
	"github.com/arthur-debert/gentlegoose/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

//go:embed docs
var docsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var (
		verbosity      int
		dryRun         bool
		updateExisting bool
		settingsFile   string
		exclusionsKey  string
		outputFormat   string
	)

	rootCmd := &cobra.Command{
		Use:     "gentlegoose",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(outputFormat)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format value")
			}

			result, err := sync.Sync(sync.Options{
				SettingsFile:   settingsFile,
				ExclusionsKey:  exclusionsKey,
				UpdateExisting: updateExisting,
				DryRun:         dryRun,
			})
			if err != nil {
				return err
			}

			reporter := ui.NewReporter(os.Stdout)
			if format != ui.FormatAuto {
				reporter = ui.NewReporterWithFormat(os.Stdout, format)
			}
			reporter.Render(result)
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	rootCmd.Flags().BoolVarP(&updateExisting, "update-existing", "u", false, MsgFlagUpdate)
	rootCmd.Flags().StringVarP(&settingsFile, "settings-file", "s", "", MsgFlagSettings)
	rootCmd.Flags().StringVar(&exclusionsKey, "key", "", MsgFlagKey)
	rootCmd.Flags().StringVar(&outputFormat, "format", "auto", MsgFlagFormat)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(rootCmd))
	rootCmd.AddCommand(newTopicsCmd())

	// Topic-based help from the bundled docs; markdown rendered with
	// glamour. A load failure leaves the stock help in place.
	opts := topics.Options{Renderer: topics.NewGlamourRenderer()}
	if err := topics.Install(rootCmd, docsFS, "docs", opts); err != nil {
		log.Debug().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gentlegoose version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(gentlegoose completion bash)

Zsh:
  $ gentlegoose completion zsh > "${fpath[1]}/_gentlegoose"

Fish:
  $ gentlegoose completion fish | source

PowerShell:
  PS> gentlegoose completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}

func newManCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "man",
		Short: MsgManShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "GENTLEGOOSE",
				Section: "1",
			}
			return doc.GenManTree(rootCmd, header, "/tmp")
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: MsgTopicsShort,
		Long:  MsgTopicsLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := topics.NewManager(docsFS, "docs", topics.Options{})
			if err != nil {
				return err
			}

			names := m.Names()
			if len(names) == 0 {
				fmt.Println("No help topics available.")
				return nil
			}

			fmt.Println("Available help topics:")
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("\nUse 'gentlegoose help <topic>' to read about a specific topic.")
			return nil
		},
	}
}
