package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *PlaygroundError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *PlaygroundError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// StorageRead creates an error for a failed read of a durable key
func StorageRead(key string, err error) *PlaygroundError {
	return Wrap(err, ErrCodeStorageRead, fmt.Sprintf("failed to read key '%s'", key)).
		WithDetail("key", key)
}

// StorageWrite creates an error for a failed write of a durable key
func StorageWrite(key string, err error) *PlaygroundError {
	return Wrap(err, ErrCodeStorageWrite, fmt.Sprintf("failed to write key '%s'", key)).
		WithDetail("key", key)
}

// ArchiveCorrupt reports a stored archive that cannot be parsed as a version sequence.
func ArchiveCorrupt(key string, err error) *PlaygroundError {
	return Wrap(err, ErrCodeArchiveCorrupt, fmt.Sprintf("stored version archive under '%s' is corrupt", key)).
		WithDetail("key", key)
}

// VersionNotFound creates an error for an out-of-range version index
func VersionNotFound(index, count int) *PlaygroundError {
	return New(ErrCodeVersionNotFound, fmt.Sprintf("version %d not found (%d saved)", index, count)).
		WithDetail("index", index).
		WithDetail("count", count)
}

// FormatFailed creates a formatter failure error for one channel
func FormatFailed(channel string, err error) *PlaygroundError {
	return Wrap(err, ErrCodeFormatFailed, fmt.Sprintf("failed to format %s", channel)).
		WithDetail("channel", channel)
}

// UnknownChannel creates an error for a channel name that is not markup, style or script
func UnknownChannel(name string) *PlaygroundError {
	return New(ErrCodeUnknownChannel, fmt.Sprintf("unknown channel '%s'", name)).
		WithDetail("channel", name)
}
