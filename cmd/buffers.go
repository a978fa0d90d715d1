package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/playground/cli"
	"github.com/grovetools/playground/internal/watcher"
	"github.com/grovetools/playground/logging"
	"github.com/grovetools/playground/pkg/models"
	"github.com/grovetools/playground/tui/theme"
	"github.com/spf13/cobra"
)

func NewGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [channel]",
		Short: "Print the content of one buffer or of all three",
		Long: `Print the content of a buffer. The channel is one of html, css or js.
Without a channel every buffer is printed under a header.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, "")
			if err != nil {
				return err
			}
			defer ws.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				c, err := models.ParseChannel(args[0])
				if err != nil {
					return err
				}
				if cli.GetOptions(cmd).JSONOutput {
					return printJSON(cmd, map[string]string{string(c): ws.session.Get(c)})
				}
				fmt.Fprint(out, ws.session.Get(c))
				return nil
			}

			snap := ws.session.Snapshot()
			if cli.GetOptions(cmd).JSONOutput {
				return printJSON(cmd, snap)
			}
			t := theme.DefaultTheme
			for _, c := range models.Channels {
				fmt.Fprintln(out, t.Header.Render(fmt.Sprintf("=== %s ===", c.Label())))
				fmt.Fprintln(out, snap.Get(c))
			}
			return nil
		},
	}
}

func NewSetCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "set <channel> [file|-]",
		Short: "Replace the content of a buffer",
		Long: `Replace the content of a buffer with the given file, standard input ("-")
or the --text value. The new content is persisted immediately.

Examples:
  playground set html index.html
  echo 'body{margin:0}' | playground set css -
  playground set js --text 'console.log(1)'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := models.ParseChannel(args[0])
			if err != nil {
				return err
			}

			content := text
			switch {
			case len(args) == 2 && cmd.Flags().Changed("text"):
				return fmt.Errorf("give either a file or --text, not both")
			case len(args) == 2 && args[1] == "-":
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read standard input: %w", err)
				}
				content = string(data)
			case len(args) == 2:
				data, err := os.ReadFile(args[1])
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", args[1], err)
				}
				content = string(data)
			case !cmd.Flags().Changed("text"):
				return fmt.Errorf("nothing to set: give a file, '-' or --text")
			}

			ws, err := openWorkspace(cmd, "")
			if err != nil {
				return err
			}
			defer ws.Close()

			if err := ws.session.Set(c, content); err != nil {
				return err
			}
			if !cli.GetOptions(cmd).JSONOutput {
				logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr()).
					Success(fmt.Sprintf("%s buffer updated (%d bytes)", c.Label(), len(content)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Content to store instead of reading a file")
	return cmd
}

func NewLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load [dir]",
		Short: "Load index.html, style.css and script.js from a directory",
		Long: `Load the buffers from a workspace directory. Each of index.html, style.css
and script.js that exists replaces its buffer; missing files leave their
buffer unchanged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, "")
			if err != nil {
				return err
			}
			defer ws.Close()

			dir := ws.cfg.Watch.Dir
			if len(args) == 1 {
				dir = args[0]
			}
			files, err := watcher.ReadWorkspace(dir)
			if err != nil {
				return err
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr())
			loaded := []string{}
			for _, c := range models.Channels {
				text, ok := files[c]
				if !ok {
					continue
				}
				if err := ws.session.Set(c, text); err != nil {
					return err
				}
				loaded = append(loaded, watcher.Files[c])
			}

			if cli.GetOptions(cmd).JSONOutput {
				return printJSON(cmd, map[string]interface{}{"dir": dir, "loaded": loaded})
			}
			if len(loaded) == 0 {
				pretty.Warn(fmt.Sprintf("No workspace files found in %s", dir))
				return nil
			}
			for _, name := range loaded {
				pretty.Path("Loaded", name)
			}
			return nil
		},
	}
}
