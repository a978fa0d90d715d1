package logging

// Config is the "logging" section of playground.yml.
type Config struct {
	// Level is a logrus level name. PLAYGROUND_LOG_LEVEL takes precedence.
	Level  string         `yaml:"level"`
	File   FileSinkConfig `yaml:"file"`
	Format FormatConfig   `yaml:"format"`
}

// FileSinkConfig enables the log file sink.
type FileSinkConfig struct {
	Enabled bool `yaml:"enabled"`
	// Path defaults to <state dir>/logs/<component>-<date>.log.
	Path string `yaml:"path"`
}

// FormatConfig shapes text output.
type FormatConfig struct {
	// Preset is "default", "simple" (level and message only) or "json".
	Preset           string `yaml:"preset"`
	DisableTimestamp bool   `yaml:"disable_timestamp"`
	DisableComponent bool   `yaml:"disable_component"`
	// StructuredToStderr is "auto", "always" or "never". In auto mode
	// stderr only gets log lines at debug level or when it is not a terminal.
	StructuredToStderr string `yaml:"structured_to_stderr"`
}
