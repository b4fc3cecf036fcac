package cleaner

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/cleaner/pkg/commands"
	"github.com/arthur-debert/cleaner/pkg/platforms"
)

func newSupportedCmd(rt *session) *cobra.Command {
	list := func(cmd *cobra.Command, args []string) error {
		_, err := commands.SupportedList(rt.supportedOptions())
		return err
	}

	cmd := &cobra.Command{
		Use:     "supported",
		Short:   MsgSupportedShort,
		Long:    MsgSupportedLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE:    list,
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgSupportedListShort,
		Args:    cobra.NoArgs,
		RunE:    list,
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "path",
		Aliases: []string{"show"},
		Short:   MsgSupportedPathShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.SupportedPath(rt.supportedOptions())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: MsgSupportedCheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.SupportedCheck(rt.supportedOptions())
		},
	})

	cmd.AddCommand(newSupportedResetCmd(rt))
	cmd.AddCommand(newSupportedExportCmd(rt))
	cmd.AddCommand(newSupportedEditCmd(rt, platforms.EditAdd))
	cmd.AddCommand(newSupportedEditCmd(rt, platforms.EditModify))
	cmd.AddCommand(newSupportedEditCmd(rt, platforms.EditDelete))
	return cmd
}

func newSupportedResetCmd(rt *session) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: MsgSupportedResetShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := commands.SupportedReset(rt.supportedOptions(), confirmer(yes))
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	return cmd
}

func newSupportedExportCmd(rt *session) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: MsgSupportedExportShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := platforms.ParseFormat(format)
			if err != nil {
				return err
			}
			return commands.SupportedExport(rt.supportedOptions(), f)
		},
	}
	cmd.Flags().StringVar(&format, "format", string(platforms.FormatJSON), MsgFlagExport)
	return cmd
}

func newSupportedEditCmd(rt *session, kind platforms.EditKind) *cobra.Command {
	var e platforms.Edit
	e.Kind = kind

	cmd := &cobra.Command{
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e.Name = args[0]
			return commands.SupportedEdit(rt.supportedOptions(), e)
		},
	}

	switch kind {
	case platforms.EditAdd:
		cmd.Use, cmd.Short = "add <name>", MsgSupportedAddShort
		cmd.Flags().StringSliceVarP(&e.Folders, "folders", "f", nil, MsgFlagFolders)
		cmd.Flags().StringSliceVarP(&e.Associated, "associated", "a", nil, MsgFlagAssociated)
		_ = cmd.MarkFlagRequired("folders")
	case platforms.EditModify:
		cmd.Use, cmd.Short = "modify <name>", MsgSupportedModifyShort
		cmd.Flags().StringVar(&e.Rename, "rename", "", MsgFlagRename)
		cmd.Flags().StringSliceVarP(&e.Folders, "folders", "f", nil, MsgFlagFolders)
		cmd.Flags().StringSliceVarP(&e.Associated, "associated", "a", nil, MsgFlagAssociated)
	case platforms.EditDelete:
		cmd.Use, cmd.Short = "delete <name>", MsgSupportedDeleteShort
	}
	return cmd
}
