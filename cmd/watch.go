package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/grovetools/playground/cli"
	"github.com/grovetools/playground/internal/watcher"
	"github.com/grovetools/playground/logging"
	"github.com/grovetools/playground/pkg/models"
	"github.com/grovetools/playground/preview"
	"github.com/grovetools/playground/util/pathutil"
	"github.com/spf13/cobra"
)

func NewWatchCmd() *cobra.Command {
	var (
		dir      string
		out      string
		frame    bool
		device   string
		debounce time.Duration
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Edit the buffers through files in a directory",
		Long: `Mirror the buffers to index.html, style.css and script.js in a directory and
watch those files. Every change is stored in its buffer and the preview is
written again. Existing files win over the stored buffers at startup; missing
files are created from them.

Examples:
  playground watch --dir ./site
  playground watch --dir ./site --frame --device tablet --out ./site/preview.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, "")
			if err != nil {
				return err
			}
			defer ws.Close()

			if dir == "" {
				dir = ws.cfg.Watch.Dir
			}
			if out == "" {
				out = ws.cfg.Preview.Output
			}
			if out == "" {
				out = filepath.Join(dir, "preview.html")
			}
			if dir, err = pathutil.Expand(dir); err != nil {
				return err
			}
			if out, err = pathutil.Expand(out); err != nil {
				return err
			}
			for _, c := range models.Channels {
				if same, _ := pathutil.ComparePaths(out, filepath.Join(dir, watcher.Files[c])); same {
					return fmt.Errorf("preview output %s would overwrite the %s buffer file", out, c.Label())
				}
			}
			if !cmd.Flags().Changed("debounce") {
				debounce = ws.cfg.DebounceDuration()
			}

			opts := watcher.Options{
				Dir:      dir,
				Output:   out,
				Debounce: debounce,
				Logger:   cli.GetLogger(cmd, "watcher"),
			}
			if frame || cmd.Flags().Changed("device") {
				if device == "" {
					device = ws.cfg.Preview.DefaultDevice
				}
				d, err := preview.Devices(ws.cfg.Preview.Devices).Lookup(device)
				if err != nil {
					return err
				}
				opts.Frame = &d
			}

			pretty := logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr())
			opts.OnApply = func(c models.Channel) {
				pretty.Success(c.Label() + " updated")
			}

			w, err := watcher.New(ws.session, opts)
			if err != nil {
				return err
			}
			defer w.Close()

			if err := w.Sync(); err != nil {
				return err
			}
			pretty.Path("Watching", dir)
			pretty.Path("Preview", out)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return w.Run(ctx)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Workspace directory (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Preview output file (default <dir>/preview.html)")
	cmd.Flags().BoolVar(&frame, "frame", false, "Write the sandboxed device frame instead of the bare document")
	cmd.Flags().StringVar(&device, "device", "", "Device width for --frame")
	cmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "Quiet period before a file change is applied")
	return cmd
}
