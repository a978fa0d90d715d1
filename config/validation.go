package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/grovetools/playground/errors"
)

var (
	validBackends = []string{"file", "sqlite", "memory"}
	validMarkers  = []string{"html", "text", "ansi"}
	validPolicies = []string{"all-or-nothing", "per-channel"}
)

// Validate checks if the configuration is valid. It expects SetDefaults to
// have run.
func (c *Config) Validate() error {
	if err := oneOf("storage.backend", c.Storage.Backend, validBackends); err != nil {
		return err
	}
	if err := oneOf("diff.markers", c.Diff.Markers, validMarkers); err != nil {
		return err
	}
	if err := oneOf("format.policy", c.Format.Policy, validPolicies); err != nil {
		return err
	}

	if strings.TrimSpace(c.Archive.Key) == "" {
		return errors.New(errors.ErrCodeConfigValidation, "archive.key cannot be empty")
	}
	for _, key := range []string{"htmlCode", "cssCode", "jsCode"} {
		if c.Archive.Key == key {
			return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("archive.key cannot reuse the buffer key %q", key)).
				WithDetail("key", key)
		}
	}

	// A layout without any reference component would stamp every version
	// with the same text.
	if time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC).Format(c.Archive.TimestampLayout) == c.Archive.TimestampLayout {
		return errors.New(errors.ErrCodeConfigValidation, "archive.timestamp_layout contains no time fields").
			WithDetail("layout", c.Archive.TimestampLayout)
	}

	for name, width := range c.Preview.Devices {
		if strings.TrimSpace(name) == "" || strings.TrimSpace(width) == "" {
			return errors.New(errors.ErrCodeConfigValidation, "preview.devices entries need a name and a width").
				WithDetail("device", name)
		}
	}

	if c.Format.Width < 20 {
		return errors.New(errors.ErrCodeConfigValidation, "format.width must be at least 20").
			WithDetail("width", c.Format.Width)
	}

	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigValidation, "invalid watch.debounce").
			WithDetail("debounce", c.Watch.Debounce)
	}
	if d < 0 {
		return errors.New(errors.ErrCodeConfigValidation, "watch.debounce cannot be negative").
			WithDetail("debounce", c.Watch.Debounce)
	}

	return nil
}

func oneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.New(errors.ErrCodeConfigValidation, fmt.Sprintf("invalid %s %q (expected one of: %s)", field, value, strings.Join(allowed, ", "))).
		WithDetail("field", field)
}
