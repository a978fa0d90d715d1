package cmd

import (
	"fmt"
	"os"

	"github.com/grovetools/playground/cli"
	"github.com/grovetools/playground/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewConfigCmd() *cobra.Command {
	var showSchema bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Display the layered configuration for the current directory",
		Long: `Shows how the final configuration is built by merging layers:
1. Global config (~/.config/playground/playground.yml)
2. Project config (playground.yml, searched upward)
3. Override files (playground.override.yml)
This is useful for debugging configuration issues. With --schema the JSON
schema of the configuration file is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if showSchema {
				data, err := config.GenerateSchema()
				if err != nil {
					return fmt.Errorf("failed to generate schema: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
			layered, err := config.LoadLayered(cwd)
			if err != nil {
				return err
			}

			if cli.GetOptions(cmd).JSONOutput {
				return printJSON(cmd, layered)
			}

			printLayer := func(title, path string, v interface{}) {
				fmt.Fprintf(out, "--- # %s\n", title)
				if path != "" {
					fmt.Fprintf(out, "# Source: %s\n", path)
				}
				data, _ := yaml.Marshal(v)
				fmt.Fprintln(out, string(data))
			}

			for _, layer := range layered.Layers {
				printLayer(fmt.Sprintf("%s CONFIG", layerTitle(layer.Source)), layer.Path, layer.Values)
			}
			printLayer("FINAL MERGED CONFIG", "", layered.Final)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showSchema, "schema", false, "Print the configuration JSON schema")
	return cmd
}

func layerTitle(s config.ConfigSource) string {
	switch s {
	case config.SourceGlobal:
		return "GLOBAL"
	case config.SourceProject:
		return "PROJECT"
	case config.SourceOverride:
		return "OVERRIDE"
	}
	return "DEFAULT"
}
