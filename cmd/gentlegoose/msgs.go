package gentlegoose

// Short messages (one-liners)
const (
	MsgRootShort = "Sync global gitignore patterns into Zed settings"
	MsgRootLong = `gentlegoose keeps your editor's file tree as tidy as your git status:
it reads your global gitignore and mirrors its patterns into the
file_scan_exclusions list of a Zed settings file.

By default it only creates a missing settings file and never touches an
existing one. Pass --update-existing to merge new patterns in; existing
settings and patterns are always preserved.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Preview changes without writing anything"
	MsgFlagUpdate   = "Merge new patterns into an existing settings file"
	MsgFlagSettings = "Path to the settings file to sync into"
	MsgFlagKey      = "Settings key holding the exclusion list"
	MsgFlagFormat   = "Output format: auto, term, or text"
)

// MsgUsageTemplate renders usage with bold section headers on terminals
const MsgUsageTemplate = `{{boldUpper "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasAvailableSubCommands}}

{{boldUpper "Available Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
