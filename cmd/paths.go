package cmd

import (
	"fmt"

	"github.com/grovetools/playground/cli"
	"github.com/grovetools/playground/pkg/paths"
	"github.com/spf13/cobra"
)

// PathsOutput represents the XDG-compliant paths used by playground.
type PathsOutput struct {
	ConfigDir  string `json:"config_dir"`
	DataDir    string `json:"data_dir"`
	StateDir   string `json:"state_dir"`
	CacheDir   string `json:"cache_dir"`
	LogDir     string `json:"log_dir"`
	ConfigFile string `json:"config_file"`
	StateFile  string `json:"state_file"`
}

func NewPathsCmd() *cobra.Command {
	var create bool
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the XDG-compliant paths used by playground",
		Long: `Print the XDG-compliant paths used by playground.

The paths follow the XDG Base Directory Specification and can all be moved
under one directory with PLAYGROUND_HOME:
- config_dir: Configuration files (playground.yml)
- data_dir: Persistent buffers and versions
- state_dir: Runtime state (logs)
- cache_dir: Temporary/regenerable data
- state_file: Storage file of the configured backend`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if create {
				if err := paths.EnsureDirs(); err != nil {
					return fmt.Errorf("failed to create directories: %w", err)
				}
			}

			output := PathsOutput{
				ConfigDir:  paths.ConfigDir(),
				DataDir:    paths.DataDir(),
				StateDir:   paths.StateDir(),
				CacheDir:   paths.CacheDir(),
				LogDir:     paths.LogDir(),
				ConfigFile: paths.GlobalConfigFile(),
				StateFile:  cfg.Storage.Path,
			}

			if cli.GetOptions(cmd).JSONOutput {
				return printJSON(cmd, output)
			}
			out := cmd.OutOrStdout()
			for _, row := range [][2]string{
				{"config_dir", output.ConfigDir},
				{"data_dir", output.DataDir},
				{"state_dir", output.StateDir},
				{"cache_dir", output.CacheDir},
				{"log_dir", output.LogDir},
				{"config_file", output.ConfigFile},
				{"state_file", output.StateFile},
			} {
				fmt.Fprintf(out, "%-12s %s\n", row[0], row[1])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&create, "create", false, "Create the directories if they are missing")
	return cmd
}
