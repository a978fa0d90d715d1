package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/playground/cli"
	"github.com/grovetools/playground/config"
	"github.com/grovetools/playground/format"
	"github.com/grovetools/playground/session"
	"github.com/grovetools/playground/state"
	"github.com/grovetools/playground/tui/theme"
	"github.com/grovetools/playground/util/pathutil"
	"github.com/spf13/cobra"
)

// workspace is an open session together with the configuration it was built
// from. Close releases the storage backend.
type workspace struct {
	cfg     *config.Config
	session *session.Session
	backend state.Backend
}

func (w *workspace) Close() error {
	return w.backend.Close()
}

// loadConfig loads the configuration for cmd and applies its theme.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := cli.LoadConfig(cmd)
	if err != nil {
		return nil, err
	}
	theme.Use(cfg.UI.Theme)
	return cfg, nil
}

// openWorkspace opens the session described by the configuration. A
// non-empty policy overrides the configured format policy.
func openWorkspace(cmd *cobra.Command, policy string) (*workspace, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if policy == "" {
		policy = cfg.Format.Policy
	}
	p, err := format.ParsePolicy(policy)
	if err != nil {
		return nil, err
	}

	logger := cli.GetLogger(cmd, "session")
	if cfg.Storage.Path, err = pathutil.Expand(cfg.Storage.Path); err != nil {
		return nil, err
	}
	backend, err := state.Open(state.Kind(cfg.Storage.Backend), cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}
	logger.WithField("backend", cfg.Storage.Backend).WithField("path", cfg.Storage.Path).Debug("Storage opened")

	s, err := session.Open(session.Options{
		Backend:         backend,
		ArchiveKey:      cfg.Archive.Key,
		Formatter:       format.WithWidth(cfg.Format.Width),
		FormatPolicy:    p,
		TimestampLayout: cfg.Archive.TimestampLayout,
		Logger:          logger,
	})
	if err != nil {
		backend.Close()
		return nil, err
	}
	return &workspace{cfg: cfg, session: s, backend: backend}, nil
}

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
