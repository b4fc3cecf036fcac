package cleaner

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/cleaner/internal/version"
	"github.com/arthur-debert/cleaner/pkg/cobrax/topics"
	"github.com/arthur-debert/cleaner/pkg/errors"
)

//go:embed topics
var topicsFS embed.FS

func topicFiles() fs.FS {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}

func newTopicsCmd(m *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics [name]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return m.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				m.WriteList(cmd.OutOrStdout(), cmd.Root().Name())
				return nil
			}
			t, ok := m.Get(args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound, "no help topic %q", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), m.Render(t))
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man <dir>",
		Short:   MsgManShort,
		GroupID: "misc",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrInternal, "failed to create %s", dir)
			}
			header := &doc.GenManHeader{Title: "CLEANER", Section: "1"}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to generate man pages")
			}
			log.Info().Str("dir", dir).Msg("Man pages generated")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}
