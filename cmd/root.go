// Package cmd holds the playground command tree.
package cmd

import (
	"github.com/grovetools/playground/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the playground command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	root := cli.NewStandardCommand(
		"playground",
		"A three-buffer HTML, CSS and JavaScript playground",
	)
	root.Long = `A three-buffer HTML, CSS and JavaScript playground.

The markup, style and script buffers are persisted on every change. Saved
versions form an append-only archive that the current buffers can be diffed
against or restored from. The preview combines all three buffers into one
document.

Examples:
  echo '<p>hi</p>' | playground set html -
  playground save
  playground diff --markers ansi
  playground preview --frame --device mobile --out preview.html
  playground watch --dir ./site --out ./site/preview.html`

	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cli.ConfigureColor(cmd)
	}

	root.AddCommand(
		NewGetCmd(),
		NewSetCmd(),
		NewLoadCmd(),
		NewSaveCmd(),
		NewHistoryCmd(),
		NewShowCmd(),
		NewRestoreCmd(),
		NewDiffCmd(),
		NewPreviewCmd(),
		NewFormatCmd(),
		NewWatchCmd(),
		NewConfigCmd(),
		NewPathsCmd(),
		NewLogsCmd(),
		cli.NewVersionCommand(),
	)
	cli.SetStyledHelp(root)
	return root
}
