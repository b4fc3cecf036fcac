package cleaner

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Clean build artifacts, empty folders and stale repositories"
	MsgBuildsShort     = "List or remove build artifacts"
	MsgEmptiesShort    = "List or remove empty folders"
	MsgReposShort      = "Report on git repositories"
	MsgSupportedShort  = "Manage the supported platforms"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics, or one topic, beyond command help."
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"
	MsgVersionShort    = "Print version information"

	MsgSupportedListShort   = "List the supported platforms"
	MsgSupportedPathShort   = "Print the platforms configuration file path"
	MsgSupportedResetShort  = "Restore the default platforms"
	MsgSupportedCheckShort  = "Validate the platforms configuration"
	MsgSupportedExportShort = "Print the platforms configuration as json, yaml or toml"
	MsgSupportedAddShort    = "Add a platform"
	MsgSupportedModifyShort = "Change a platform"
	MsgSupportedDeleteShort = "Delete a platform"

	// Error messages
	MsgErrNoCommand = "no command specified"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Configuration file (default $XDG_CONFIG_HOME/cleaner/config.toml)"
	MsgFlagPlatforms  = "Platforms file (default $XDG_CONFIG_HOME/cleaner/supported-platforms.json)"
	MsgFlagFormat     = "Output format: auto, term, text or json"
	MsgFlagTypes      = "Platforms to look for, comma separated, or all"
	MsgFlagShowHidden = "Include hidden folders"
	MsgFlagYes        = "Remove without asking for confirmation"
	MsgFlagFilter     = "Report branches that are ahead, behind or either"
	MsgFlagOnlyMain   = "Only check main branches"
	MsgFlagExport     = "Export format: json, yaml or toml"
	MsgFlagFolders    = "Build artifact folders, comma separated"
	MsgFlagAssociated = "Files or folders identifying the platform, comma separated"
	MsgFlagRename     = "New platform name"

	// Version output
	MsgVersionFormat = "cleaner version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/builds-long.txt
	msgBuildsLongRaw string
	MsgBuildsLong    = strings.TrimSpace(msgBuildsLongRaw)

	//go:embed msgs/builds-example.txt
	msgBuildsExampleRaw string
	MsgBuildsExample    = strings.TrimRight(msgBuildsExampleRaw, "\n")

	//go:embed msgs/empties-long.txt
	msgEmptiesLongRaw string
	MsgEmptiesLong    = strings.TrimSpace(msgEmptiesLongRaw)

	//go:embed msgs/empties-example.txt
	msgEmptiesExampleRaw string
	MsgEmptiesExample    = strings.TrimRight(msgEmptiesExampleRaw, "\n")

	//go:embed msgs/repos-long.txt
	msgReposLongRaw string
	MsgReposLong    = strings.TrimSpace(msgReposLongRaw)

	//go:embed msgs/repos-example.txt
	msgReposExampleRaw string
	MsgReposExample    = strings.TrimRight(msgReposExampleRaw, "\n")

	//go:embed msgs/supported-long.txt
	msgSupportedLongRaw string
	MsgSupportedLong    = strings.TrimSpace(msgSupportedLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
