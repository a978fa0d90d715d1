package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/grovetools/playground/errors"
	"github.com/grovetools/playground/pkg/paths"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// configNames are searched in order in each directory.
var configNames = []string{
	"playground.yml",
	"playground.yaml",
	".playground.yml",
	".playground.yaml",
	"playground.toml",
}

var overrideNames = []string{
	"playground.override.yml",
	"playground.override.yaml",
	".playground.override.yml",
	".playground.override.yaml",
}

// Load reads a single configuration file, without the global layer.
func Load(path string) (*Config, error) {
	values, err := readLayer(path)
	if err != nil {
		return nil, err
	}
	return finalize(values)
}

// LoadDefault loads the configuration for the current directory.
func LoadDefault() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to get current directory")
	}
	return LoadFrom(cwd)
}

// LoadFrom loads configuration with hierarchical merging starting from the
// given directory:
// 1. Global config (~/.config/playground/playground.yml) - base layer
// 2. Project config (playground.yml, found upward) - overrides global
// 3. Local override (playground.override.yml) - overrides all
//
// Every layer is optional; without any file the defaults are returned.
func LoadFrom(startDir string) (*Config, error) {
	return LoadFromWithLogger(startDir, logrus.New())
}

// LoadFromWithLogger loads configuration with hierarchical merging and logging.
func LoadFromWithLogger(startDir string, logger *logrus.Logger) (*Config, error) {
	layered, err := loadLayers(startDir, logger)
	if err != nil {
		return nil, err
	}

	merged := map[string]interface{}{}
	for _, layer := range layered.Layers {
		merged = mergeMaps(merged, layer.Values)
	}

	cfg, err := finalize(merged)
	if err != nil {
		return nil, err
	}
	logger.Debug("Configuration loaded and validated successfully")

	if logger.IsLevelEnabled(logrus.DebugLevel) {
		if data, err := yaml.Marshal(cfg); err == nil {
			logger.Debugf("Merged configuration:\n%s", string(data))
		}
	}
	return cfg, nil
}

// LoadLayered finds all configuration layers for startDir without merging
// them, and computes the final merged config alongside.
func LoadLayered(startDir string) (*LayeredConfig, error) {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	layered, err := loadLayers(startDir, logger)
	if err != nil {
		return nil, err
	}

	merged := map[string]interface{}{}
	for _, layer := range layered.Layers {
		merged = mergeMaps(merged, layer.Values)
	}
	if layered.Final, err = finalize(merged); err != nil {
		return nil, err
	}
	return layered, nil
}

// LoadFromBytes parses a YAML configuration document.
func LoadFromBytes(data []byte) (*Config, error) {
	values, err := parseDocument(data, false)
	if err != nil {
		return nil, err
	}
	return finalize(values)
}

func loadLayers(startDir string, logger *logrus.Logger) (*LayeredConfig, error) {
	layered := &LayeredConfig{}
	add := func(source ConfigSource, path string) error {
		values, err := readLayer(path)
		if err != nil {
			return err
		}
		logger.WithField("path", path).WithField("source", source).Debug("Loaded configuration layer")
		layered.Layers = append(layered.Layers, Layer{Source: source, Path: path, Values: values})
		return nil
	}

	if globalPath := paths.GlobalConfigFile(); globalPath != "" {
		if info, err := os.Stat(globalPath); err == nil && !info.IsDir() {
			if err := add(SourceGlobal, globalPath); err != nil {
				logger.WithError(err).Warn("Failed to load global configuration, continuing without it")
			}
		}
	}

	projectPath, err := FindConfigFile(startDir)
	if err != nil {
		if errors.Is(err, errors.ErrCodeConfigNotFound) {
			return layered, nil
		}
		return nil, err
	}
	if err := add(SourceProject, projectPath); err != nil {
		return nil, err
	}

	projectDir := filepath.Dir(projectPath)
	for _, name := range overrideNames {
		overridePath := filepath.Join(projectDir, name)
		if info, err := os.Stat(overridePath); err != nil || info.IsDir() {
			continue
		}
		if err := add(SourceOverride, overridePath); err != nil {
			logger.WithError(err).Warn("Failed to load override file, skipping")
		}
	}
	return layered, nil
}

// finalize validates merged values against the schema, decodes them, fills
// defaults and runs semantic validation.
func finalize(values map[string]interface{}) (*Config, error) {
	if err := validateSchema(values); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "schema validation failed")
	}

	raw, err := yaml.Marshal(values)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to re-encode configuration")
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to decode configuration")
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readLayer(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").
			WithDetail("path", path)
	}

	values, err := parseDocument(data, strings.EqualFold(filepath.Ext(path), ".toml"))
	if err != nil {
		if pe, ok := errors.As(err); ok {
			pe.WithDetail("path", path)
		}
		return nil, err
	}
	return values, nil
}

// parseDocument expands environment references and decodes a YAML or TOML
// document into a generic map.
func parseDocument(data []byte, isTOML bool) (map[string]interface{}, error) {
	expanded := []byte(expandEnvVars(string(data)))
	values := map[string]interface{}{}

	if isTOML {
		if err := toml.Unmarshal(expanded, &values); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse TOML configuration")
		}
		return values, nil
	}

	if err := yaml.Unmarshal(expanded, &values); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to parse YAML configuration")
	}
	if values == nil {
		values = map[string]interface{}{}
	}
	return values, nil
}

// FindConfigFile searches from startDir up to the filesystem root for a
// project configuration file.
func FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", errors.ConfigNotFound(startDir).WithDetail("searchPath", startDir)
}

// expandEnvVars replaces ${VAR} with environment variable values
func expandEnvVars(content string) string {
	return envVarRegex.ReplaceAllStringFunc(content, func(match string) string {
		varName := envVarRegex.FindStringSubmatch(match)[1]

		// Handle default values: ${VAR:-default}
		parts := strings.SplitN(varName, ":-", 2)
		varName = parts[0]
		defaultValue := ""
		if len(parts) > 1 {
			defaultValue = parts[1]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}

		return defaultValue
	})
}
