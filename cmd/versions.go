package cmd

import (
	"fmt"
	"strconv"

	"github.com/grovetools/playground/cli"
	"github.com/grovetools/playground/errors"
	"github.com/grovetools/playground/logging"
	"github.com/grovetools/playground/pkg/models"
	"github.com/grovetools/playground/session"
	"github.com/grovetools/playground/tui/theme"
	"github.com/spf13/cobra"
)

func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, fmt.Sprintf("version must be a number, got %q", arg))
	}
	return n, nil
}

func NewSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Save the current buffers as a new version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, "")
			if err != nil {
				return err
			}
			defer ws.Close()

			v, err := ws.session.SaveVersion()
			if err != nil {
				return err
			}
			if cli.GetOptions(cmd).JSONOutput {
				return printJSON(cmd, v)
			}
			logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout()).Success("Version saved: " + v.Timestamp)
			return nil
		},
	}
}

func NewHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "history",
		Aliases: []string{"versions"},
		Short:   "List saved versions, oldest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, "")
			if err != nil {
				return err
			}
			defer ws.Close()

			versions, err := ws.session.Versions()
			if err != nil {
				return err
			}
			if cli.GetOptions(cmd).JSONOutput {
				if versions == nil {
					versions = []models.Version{}
				}
				return printJSON(cmd, versions)
			}

			out := cmd.OutOrStdout()
			t := theme.DefaultTheme
			if len(versions) == 0 {
				fmt.Fprintln(out, t.Muted.Render(session.NoVersionsMessage))
				return nil
			}
			for i, v := range versions {
				fmt.Fprintf(out, "%s  %s  %s\n",
					t.Accent.Render(fmt.Sprintf("%3d", i+1)),
					v.Timestamp,
					t.Muted.Render(fmt.Sprintf("html %d · css %d · js %d", len(v.HTML), len(v.CSS), len(v.JS))))
			}
			return nil
		},
	}
}

func NewShowCmd() *cobra.Command {
	var channel string
	cmd := &cobra.Command{
		Use:   "show <n>",
		Short: "Print a saved version",
		Long:  `Print the saved version at position n, where 1 is the oldest.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			ws, err := openWorkspace(cmd, "")
			if err != nil {
				return err
			}
			defer ws.Close()

			v, err := ws.session.Version(index)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			snap := v.Snapshot()
			if channel != "" {
				c, err := models.ParseChannel(channel)
				if err != nil {
					return err
				}
				fmt.Fprint(out, snap.Get(c))
				return nil
			}
			if cli.GetOptions(cmd).JSONOutput {
				return printJSON(cmd, v)
			}

			t := theme.DefaultTheme
			fmt.Fprintf(out, "%s %s\n\n", t.Muted.Render("Version saved:"), t.Accent.Render(v.Timestamp))
			for _, c := range models.Channels {
				fmt.Fprintln(out, t.Header.Render(fmt.Sprintf("=== %s ===", c.Label())))
				fmt.Fprintln(out, snap.Get(c))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&channel, "channel", "", "Print only this channel's content")
	return cmd
}

func NewRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <n>",
		Short: "Copy a saved version back into the buffers",
		Long: `Replace all three buffers with the saved version at position n. The archive
itself is not changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			ws, err := openWorkspace(cmd, "")
			if err != nil {
				return err
			}
			defer ws.Close()

			v, err := ws.session.Restore(index)
			if err != nil {
				return err
			}
			if cli.GetOptions(cmd).JSONOutput {
				return printJSON(cmd, v)
			}
			logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout()).
				Success(fmt.Sprintf("Restored version %d (%s)", index, v.Timestamp))
			return nil
		},
	}
}
