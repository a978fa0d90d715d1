package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/grovetools/playground/cli"
	"github.com/grovetools/playground/logging"
	"github.com/grovetools/playground/preview"
	"github.com/spf13/cobra"
)

func NewPreviewCmd() *cobra.Command {
	var (
		out    string
		frame  bool
		device string
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Compose the buffers into one HTML document",
		Long: `Compose the markup, style and script buffers into a single HTML document.
With --frame the document is wrapped in a host page that shows it in a
sandboxed iframe sized for --device.

Examples:
  playground preview > preview.html
  playground preview --frame --device mobile --out preview.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, "")
			if err != nil {
				return err
			}
			defer ws.Close()

			doc := ws.session.Preview()
			data := []byte(doc.String())

			if frame || cmd.Flags().Changed("device") {
				if device == "" {
					device = ws.cfg.Preview.DefaultDevice
				}
				d, err := preview.Devices(ws.cfg.Preview.Devices).Lookup(device)
				if err != nil {
					return err
				}
				var buf bytes.Buffer
				if err := preview.Frame(&buf, doc, d); err != nil {
					return fmt.Errorf("failed to render preview frame: %w", err)
				}
				data = buf.Bytes()
			}

			if out == "" {
				out = ws.cfg.Preview.Output
			}
			if out == "" || out == "-" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write preview: %w", err)
			}
			if cli.GetOptions(cmd).JSONOutput {
				return printJSON(cmd, map[string]interface{}{"output": out, "bytes": len(data)})
			}
			logging.NewPrettyLogger().WithWriter(cmd.ErrOrStderr()).Path("Preview written", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the preview to this file instead of stdout")
	cmd.Flags().BoolVar(&frame, "frame", false, "Wrap the document in a sandboxed device frame")
	cmd.Flags().StringVar(&device, "device", "", "Device width for --frame (desktop, tablet, mobile or a configured name)")
	return cmd
}
