package cleaner

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/cleaner/internal/version"
	"github.com/arthur-debert/cleaner/pkg/cobrax/topics"
	"github.com/arthur-debert/cleaner/pkg/commands"
	"github.com/arthur-debert/cleaner/pkg/config"
	"github.com/arthur-debert/cleaner/pkg/errors"
	"github.com/arthur-debert/cleaner/pkg/logging"
	"github.com/arthur-debert/cleaner/pkg/paths"
	"github.com/arthur-debert/cleaner/pkg/platforms"
	"github.com/arthur-debert/cleaner/pkg/ui"
	"github.com/arthur-debert/cleaner/pkg/ui/prompt"
)

// session is what every subcommand needs, resolved from the global flags
// before the subcommand runs
type session struct {
	verbosity     int
	configFile    string
	platformsFile string
	format        string

	fs       afero.Fs
	cfg      *config.Config
	renderer ui.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	rt := &session{fs: afero.NewOsFs()}

	rootCmd := &cobra.Command{
		Use:     "cleaner",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(rt.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return rt.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&rt.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&rt.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&rt.platformsFile, "platforms", "", MsgFlagPlatforms)
	rootCmd.PersistentFlags().StringVar(&rt.format, "format", "", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newBuildsCmd(rt))
	rootCmd.AddCommand(newEmptiesCmd(rt))
	rootCmd.AddCommand(newReposCmd(rt))
	rootCmd.AddCommand(newSupportedCmd(rt))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newVersionCmd())

	manager, err := topics.Load(topicFiles(), topics.Options{Renderer: topics.NewGlamourRenderer()})
	if err == nil {
		topics.Install(rootCmd, manager)
		rootCmd.AddCommand(newTopicsCmd(manager))
	} else {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// setup loads the configuration and builds the renderer. Flags given on
// the command line override the configuration.
func (rt *session) setup(cmd *cobra.Command) error {
	p := paths.New()

	configFile := rt.configFile
	if configFile == "" {
		configFile = p.ConfigFile()
	}

	// export has a --format of its own, so look at the root flag
	overrides := map[string]interface{}{}
	if cmd.Root().PersistentFlags().Changed("format") {
		overrides["output.format"] = rt.format
	}
	if rt.platformsFile != "" {
		overrides["platforms.file"] = paths.ExpandHome(rt.platformsFile)
	}

	cfg, err := config.Load(configFile, overrides)
	if err != nil {
		return err
	}
	if cfg.Platforms.File == "" {
		cfg.Platforms.File = p.PlatformsFile()
	}
	rt.cfg = cfg

	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	rt.renderer, err = ui.NewRenderer(format, cmd.OutOrStdout())
	return err
}

func (rt *session) supportedOptions() commands.SupportedOptions {
	return commands.SupportedOptions{
		Store:    platforms.NewStore(rt.fs, paths.ExpandHome(rt.cfg.Platforms.File)),
		Renderer: rt.renderer,
	}
}

func (rt *session) rules() (*platforms.RuleSet, error) {
	return commands.LoadRules(rt.supportedOptions())
}

// confirmer asks on the terminal unless yes is set
func confirmer(yes bool) commands.Confirmer {
	if yes {
		return nil
	}
	return prompt.NewConsole()
}

// rootArg returns the path argument, the current directory by default
func rootArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
