package config

import (
	"fmt"
	"time"

	"github.com/grovetools/playground/pkg/paths"
	"github.com/mitchellh/mapstructure"
)

// Defaults applied by SetDefaults.
const (
	DefaultVersion         = "1.0"
	DefaultBackend         = "file"
	DefaultArchiveKey      = "miniEditorVersions"
	DefaultTimestampLayout = "2006-01-02 15:04:05"
	DefaultMarkers         = "text"
	DefaultDevice          = "desktop"
	DefaultFormatPolicy    = "all-or-nothing"
	DefaultFormatWidth     = 80
	DefaultWatchDebounce   = "200ms"
)

// Config is the playground configuration, loaded from playground.yml (or
// playground.toml) layered over the global file.
type Config struct {
	Version string        `yaml:"version,omitempty" json:"version,omitempty" jsonschema:"description=Configuration version (e.g. '1.0')"`
	Storage StorageConfig `yaml:"storage,omitempty" json:"storage,omitempty" jsonschema:"description=Where buffers and the version archive are persisted"`
	Archive ArchiveConfig `yaml:"archive,omitempty" json:"archive,omitempty" jsonschema:"description=Version archive settings"`
	Diff    DiffConfig    `yaml:"diff,omitempty" json:"diff,omitempty" jsonschema:"description=Diff rendering settings"`
	Preview PreviewConfig `yaml:"preview,omitempty" json:"preview,omitempty" jsonschema:"description=Preview composition settings"`
	Format  FormatConfig  `yaml:"format,omitempty" json:"format,omitempty" jsonschema:"description=Formatter settings"`
	Watch   WatchConfig   `yaml:"watch,omitempty" json:"watch,omitempty" jsonschema:"description=Workspace watcher settings"`
	UI      UIConfig      `yaml:"ui,omitempty" json:"ui,omitempty" jsonschema:"description=Terminal output settings"`

	// Extensions holds every top-level section not described above, such as
	// "logging". Decode one with UnmarshalExtension.
	Extensions map[string]interface{} `yaml:",inline" json:"-"`
}

// StorageConfig selects the key/value backend.
type StorageConfig struct {
	Backend string `yaml:"backend,omitempty" json:"backend,omitempty" jsonschema:"enum=file,enum=sqlite,enum=memory,description=Storage backend kind"`
	Path    string `yaml:"path,omitempty" json:"path,omitempty" jsonschema:"description=State file or database path; defaults under the data directory"`
}

type ArchiveConfig struct {
	Key             string `yaml:"key,omitempty" json:"key,omitempty" jsonschema:"description=Storage key holding the version archive"`
	TimestampLayout string `yaml:"timestamp_layout,omitempty" json:"timestamp_layout,omitempty" jsonschema:"description=Go time layout for version timestamps"`
}

type DiffConfig struct {
	Markers string `yaml:"markers,omitempty" json:"markers,omitempty" jsonschema:"enum=html,enum=text,enum=ansi,description=How inserted and deleted text is marked"`
}

type PreviewConfig struct {
	// Devices maps a device name to a CSS width, extending the built-in
	// desktop, tablet and mobile widths.
	Devices       map[string]string `yaml:"devices,omitempty" json:"devices,omitempty" jsonschema:"description=Extra device widths by name"`
	DefaultDevice string            `yaml:"default_device,omitempty" json:"default_device,omitempty" jsonschema:"description=Device used when none is given"`
	Output        string            `yaml:"output,omitempty" json:"output,omitempty" jsonschema:"description=File the composed preview is written to"`
}

type FormatConfig struct {
	Policy string `yaml:"policy,omitempty" json:"policy,omitempty" jsonschema:"enum=all-or-nothing,enum=per-channel,description=What happens to other channels when one fails to format"`
	Width  int    `yaml:"width,omitempty" json:"width,omitempty" jsonschema:"minimum=20,description=Line width for markup formatting"`
}

type WatchConfig struct {
	Dir      string `yaml:"dir,omitempty" json:"dir,omitempty" jsonschema:"description=Directory holding index.html, style.css and script.js"`
	Debounce string `yaml:"debounce,omitempty" json:"debounce,omitempty" jsonschema:"description=Quiet period before a change is applied (Go duration)"`
}

type UIConfig struct {
	Theme string `yaml:"theme,omitempty" json:"theme,omitempty" jsonschema:"description=Color theme (kanagawa or terminal)"`
}

// SetDefaults fills every unset field.
func (c *Config) SetDefaults() {
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = DefaultBackend
	}
	if c.Storage.Path == "" && c.Storage.Backend != "memory" {
		c.Storage.Path = paths.DefaultStateFile(c.Storage.Backend)
	}
	if c.Archive.Key == "" {
		c.Archive.Key = DefaultArchiveKey
	}
	if c.Archive.TimestampLayout == "" {
		c.Archive.TimestampLayout = DefaultTimestampLayout
	}
	if c.Diff.Markers == "" {
		c.Diff.Markers = DefaultMarkers
	}
	if c.Preview.DefaultDevice == "" {
		c.Preview.DefaultDevice = DefaultDevice
	}
	if c.Format.Policy == "" {
		c.Format.Policy = DefaultFormatPolicy
	}
	if c.Format.Width == 0 {
		c.Format.Width = DefaultFormatWidth
	}
	if c.Watch.Dir == "" {
		c.Watch.Dir = "."
	}
	if c.Watch.Debounce == "" {
		c.Watch.Debounce = DefaultWatchDebounce
	}
}

// DebounceDuration parses Watch.Debounce. Validate has already rejected
// malformed values for a loaded config.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0
	}
	return d
}

// UnmarshalExtension decodes a specific extension's configuration from the
// loaded file into the provided target struct. The target must be a pointer.
// A missing section leaves target untouched.
//
// Example:
//
//	var logCfg logging.Config
//	err := cfg.UnmarshalExtension("logging", &logCfg)
func (c *Config) UnmarshalExtension(key string, target interface{}) error {
	extensionConfig, ok := c.Extensions[key]
	if !ok {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "yaml",
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(extensionConfig); err != nil {
		return fmt.Errorf("failed to decode extension config for '%s': %w", key, err)
	}

	return nil
}

// ConfigSource identifies the origin of a configuration layer.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceGlobal   ConfigSource = "global"
	SourceProject  ConfigSource = "project"
	SourceOverride ConfigSource = "override"
)

// Layer is one configuration file before merging.
type Layer struct {
	Source ConfigSource
	Path   string
	Values map[string]interface{}
}

// LayeredConfig keeps every layer found for a directory together with the
// merged result.
type LayeredConfig struct {
	Layers []Layer
	Final  *Config
}
