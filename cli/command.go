package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/playground/config"
	"github.com/grovetools/playground/logging"
	"github.com/muesli/termenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds common options for playground commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
	NoColor    bool
}

// NewStandardCommand creates a new command with standard flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to playground.yml config file")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	return cmd
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
		NoColor:    noColor,
	}
}

// GetLogger returns the logger for a component with the command's flags
// applied: --verbose raises every logger to debug.
func GetLogger(cmd *cobra.Command, component string) *logrus.Entry {
	opts := GetOptions(cmd)
	if opts.Verbose {
		logging.SetLevel(logrus.DebugLevel)
	}
	return logging.NewLogger(component)
}

// LoadConfig loads the file named by --config, or the layered
// configuration for the current directory.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path := GetOptions(cmd).ConfigFile; path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

// ConfigureColor picks the lipgloss color profile for stdout. NO_COLOR,
// CLICOLOR_FORCE and --no-color are honored; --json output is never colored.
func ConfigureColor(cmd *cobra.Command) {
	opts := GetOptions(cmd)
	if opts.NoColor || opts.JSONOutput {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())
}
