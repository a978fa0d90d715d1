package cli

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/playground/version"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the standard version command. With --json it
// prints the full build information.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of playground",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			if GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), info.Short())
			if GetOptions(cmd).Verbose {
				fmt.Fprintln(cmd.OutOrStdout(), info.String())
			}
			return nil
		},
	}
}
