package cleaner

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/cleaner/pkg/commands"
	"github.com/arthur-debert/cleaner/pkg/repos"
	"github.com/arthur-debert/cleaner/pkg/selection"
)

// scanActions adds the list|ls and remove|rm subcommands to a builds or
// empties command. run does the work; the parent itself lists.
func scanActions(parent *cobra.Command, run func(cmd *cobra.Command, action commands.Action, yes bool, args []string) error) {
	parent.Args = cobra.MaximumNArgs(1)
	parent.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, commands.ActionList, false, args)
	}

	parent.AddCommand(&cobra.Command{
		Use:     "list [path]",
		Aliases: []string{"ls"},
		Short:   "List " + parent.Annotations["items"],
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, commands.ActionList, false, args)
		},
	})

	var yes bool
	remove := &cobra.Command{
		Use:     "remove [path]",
		Aliases: []string{"rm"},
		Short:   "Remove " + parent.Annotations["items"],
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, commands.ActionRemove, yes, args)
		},
	}
	remove.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	parent.AddCommand(remove)
}

func newBuildsCmd(rt *session) *cobra.Command {
	var types string

	cmd := &cobra.Command{
		Use:         "builds [list|remove] [path]",
		Short:       MsgBuildsShort,
		Long:        MsgBuildsLong,
		Example:     MsgBuildsExample,
		GroupID:     "core",
		Annotations: map[string]string{"items": "build artifacts"},
	}
	cmd.PersistentFlags().StringVarP(&types, "types", "t", selection.AllKeyword, MsgFlagTypes)

	scanActions(cmd, func(cmd *cobra.Command, action commands.Action, yes bool, args []string) error {
		rules, err := rt.rules()
		if err != nil {
			return err
		}

		root := rootArg(args)
		log.Info().Str("root", root).Str("types", types).Str("action", action.String()).Msg("Scanning for build artifacts")

		_, err = commands.Builds(commands.BuildsOptions{
			FS:        rt.fs,
			Root:      root,
			Selection: selection.Parse(types),
			Rules:     rules,
			Action:    action,
			Confirm:   confirmer(yes),
			Renderer:  rt.renderer,
		})
		return err
	})
	return cmd
}

func newEmptiesCmd(rt *session) *cobra.Command {
	var showHidden bool

	cmd := &cobra.Command{
		Use:         "empties [list|remove] [path]",
		Short:       MsgEmptiesShort,
		Long:        MsgEmptiesLong,
		Example:     MsgEmptiesExample,
		GroupID:     "core",
		Annotations: map[string]string{"items": "empty folders"},
	}
	cmd.PersistentFlags().BoolVarP(&showHidden, "show-hidden", "s", false, MsgFlagShowHidden)

	scanActions(cmd, func(cmd *cobra.Command, action commands.Action, yes bool, args []string) error {
		rules, err := rt.rules()
		if err != nil {
			return err
		}

		root := rootArg(args)
		log.Info().Str("root", root).Str("action", action.String()).Msg("Scanning for empty folders")

		_, err = commands.Empties(commands.EmptiesOptions{
			FS:         rt.fs,
			Root:       root,
			ShowHidden: showHidden || rt.cfg.Empties.Hidden,
			Rules:      rules,
			Action:     action,
			Confirm:    confirmer(yes),
			Renderer:   rt.renderer,
		})
		return err
	})
	return cmd
}

func newReposCmd(rt *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "repos <check> [path]",
		Short:   MsgReposShort,
		Long:    MsgReposLong,
		Example: MsgReposExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, k := range commands.RepoKinds {
		cmd.AddCommand(newRepoCheckCmd(rt, k.Kind, k.Aliases, k.Short))
	}
	return cmd
}

func newRepoCheckCmd(rt *session, kind commands.RepoKind, aliases []string, short string) *cobra.Command {
	var (
		filter   string
		onlyMain bool
	)

	cmd := &cobra.Command{
		Use:     string(kind) + " [path]",
		Aliases: aliases,
		Short:   short,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := repos.ParseOutdatedFilter(filter)
			if err != nil {
				return err
			}

			root := rootArg(args)
			log.Info().Str("root", root).Str("check", string(kind)).Msg("Checking repositories")

			_, err = commands.Repos(cmd.Context(), commands.ReposOptions{
				FS:          rt.fs,
				Root:        root,
				Kind:        kind,
				Filter:      f,
				OnlyMain:    onlyMain,
				MainPattern: rt.cfg.Repos.MainBranch(),
				Workers:     rt.cfg.Repos.Workers,
				Renderer:    rt.renderer,
			})
			return err
		},
	}

	switch kind {
	case commands.RepoKindOutdated:
		cmd.Flags().StringVarP(&filter, "filter", "f", repos.Either.String(), MsgFlagFilter)
		cmd.Flags().BoolVarP(&onlyMain, "main", "m", false, MsgFlagOnlyMain)
	case commands.RepoKindUpToDate:
		cmd.Flags().BoolVarP(&onlyMain, "main", "m", false, MsgFlagOnlyMain)
	}
	return cmd
}
