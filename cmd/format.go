package cmd

import (
	"github.com/grovetools/playground/cli"
	"github.com/grovetools/playground/logging"
	"github.com/spf13/cobra"
)

func NewFormatCmd() *cobra.Command {
	var policy string
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Reformat all three buffers",
		Long: `Reformat the markup, style and script buffers.

With the all-or-nothing policy a buffer that fails to format leaves every
buffer unchanged. With per-channel the buffers that format are updated and
the failing ones keep their text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, policy)
			if err != nil {
				return err
			}
			defer ws.Close()

			if err := ws.session.Format(); err != nil {
				return err
			}
			if cli.GetOptions(cmd).JSONOutput {
				return printJSON(cmd, ws.session.Snapshot())
			}
			logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr()).Success("Buffers formatted")
			return nil
		},
	}
	cmd.Flags().StringVar(&policy, "policy", "", "all-or-nothing or per-channel (default from config)")
	return cmd
}
