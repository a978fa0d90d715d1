package cmd

import (
	"fmt"

	"github.com/grovetools/playground/cli"
	"github.com/grovetools/playground/diff"
	"github.com/grovetools/playground/pkg/models"
	"github.com/grovetools/playground/session"
	"github.com/grovetools/playground/tui/diffview"
	"github.com/grovetools/playground/tui/theme"
	"github.com/spf13/cobra"
)

func NewDiffCmd() *cobra.Command {
	var (
		markers     string
		channel     string
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the buffers with the most recently saved version",
		Long: `Compare each buffer with the most recently saved version and print the
changes. Inserted and deleted text is marked according to --markers:

  text   {+added+} and [-removed-]
  html   <ins>added</ins> and <del>removed</del>
  ansi   colored with the active theme

Examples:
  playground diff
  playground diff --markers html --channel html
  playground diff -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, "")
			if err != nil {
				return err
			}
			defer ws.Close()

			report, err := ws.session.DiffLatest()
			if err != nil {
				return err
			}

			var only models.Channel
			if channel != "" {
				if only, err = models.ParseChannel(channel); err != nil {
					return err
				}
				report = filterReport(report, only)
			}

			if cli.GetOptions(cmd).JSONOutput {
				return printJSON(cmd, report)
			}
			if interactive {
				return diffview.Run(report, cmd.InOrStdin(), cmd.OutOrStdout())
			}

			if markers == "" {
				markers = ws.cfg.Diff.Markers
			}
			out := cmd.OutOrStdout()
			if markers == "ansi" {
				fmt.Fprint(out, diffview.RenderReport(report, theme.DefaultTheme, only))
				if !report.HasBaseline() {
					fmt.Fprintln(out)
				}
				return nil
			}
			m, ok := diff.MarkersByName(markers)
			if !ok {
				return fmt.Errorf("unknown markers %q (use text, html or ansi)", markers)
			}
			rendered := report.Render(m)
			fmt.Fprint(out, rendered)
			if !report.HasBaseline() {
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&markers, "markers", "", "Edit markers: text, html or ansi (default from config)")
	cmd.Flags().StringVar(&channel, "channel", "", "Only compare this channel")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the diff in a full-screen viewer")
	return cmd
}

func filterReport(r session.Report, only models.Channel) session.Report {
	var kept []session.ChannelDiff
	for _, c := range r.Channels {
		if c.Channel == only {
			kept = append(kept, c)
		}
	}
	r.Channels = kept
	return r
}
