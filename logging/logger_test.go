package logging

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	t.Cleanup(reset)
	t.Chdir(t.TempDir())
	t.Setenv("PLAYGROUND_HOME", t.TempDir())

	logger := NewLogger("test-component")
	if logger == nil {
		t.Fatal("Expected logger to be created")
	}
	if logger.Data["component"] != "test-component" {
		t.Errorf("Expected component to be 'test-component', got %v", logger.Data["component"])
	}
	if NewLogger("test-component") != logger {
		t.Error("Expected the logger to be cached per component")
	}
}

func TestLoggerOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&TextFormatter{Config: FormatConfig{}})

	logger.WithField("component", "test").Info("Test message")

	output := buf.String()
	for _, want := range []string{"[INFO]", "[test]", "Test message"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got: %s", want, output)
		}
	}
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name    string
		config  FormatConfig
		entry   *logrus.Entry
		want    string
		notWant []string
	}{
		{
			name:   "fields sorted after message",
			config: FormatConfig{DisableTimestamp: true},
			entry: &logrus.Entry{
				Level:   logrus.InfoLevel,
				Message: "saved",
				Data:    logrus.Fields{"component": "session", "b": 2, "a": 1},
			},
			want: "[INFO] [session] saved a=1 b=2\n",
		},
		{
			name:   "simple format",
			config: FormatConfig{DisableTimestamp: true, DisableComponent: true},
			entry: &logrus.Entry{
				Level:   logrus.WarnLevel,
				Message: "careful",
				Data:    logrus.Fields{"component": "session"},
			},
			want:    "[WARN] careful\n",
			notWant: []string{"session"},
		},
		{
			name:   "values with spaces are quoted",
			config: FormatConfig{DisableTimestamp: true, DisableComponent: true},
			entry: &logrus.Entry{
				Level:   logrus.ErrorLevel,
				Message: "format failed",
				Data:    logrus.Fields{"channel": "css", "error": "line 1:4: unexpected }"},
			},
			want: "[ERROR] format failed channel=css error=\"line 1:4: unexpected }\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &TextFormatter{Config: tt.config}
			out, err := f.Format(tt.entry)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("Format() = %q, want %q", out, tt.want)
			}
			for _, nw := range tt.notWant {
				if strings.Contains(string(out), nw) {
					t.Errorf("Expected output to not contain %q", nw)
				}
			}
		})
	}
}

func TestEnvironmentLevel(t *testing.T) {
	t.Setenv("PLAYGROUND_LOG_LEVEL", "debug")
	entry := newLogger("env", Config{Level: "error"})
	if entry.Logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected env to win over config, got %s", entry.Logger.GetLevel())
	}

	t.Setenv("PLAYGROUND_LOG_LEVEL", "")
	entry = newLogger("cfg", Config{Level: "error"})
	if entry.Logger.GetLevel() != logrus.ErrorLevel {
		t.Errorf("Expected config level, got %s", entry.Logger.GetLevel())
	}

	entry = newLogger("bad", Config{Level: "loud"})
	if entry.Logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info for an unknown level, got %s", entry.Logger.GetLevel())
	}
}

func TestPresets(t *testing.T) {
	t.Setenv("PLAYGROUND_LOG_LEVEL", "")
	if _, ok := newLogger("j", Config{Format: FormatConfig{Preset: "json"}}).Logger.Formatter.(*logrus.JSONFormatter); !ok {
		t.Error("Expected JSON formatter for the json preset")
	}
	f, ok := newLogger("s", Config{Format: FormatConfig{Preset: "simple"}}).Logger.Formatter.(*TextFormatter)
	if !ok || !f.Config.DisableComponent || !f.Config.DisableTimestamp {
		t.Error("Expected a minimal text formatter for the simple preset")
	}
}

func TestFileSink(t *testing.T) {
	t.Setenv("PLAYGROUND_LOG_LEVEL", "")
	path := filepath.Join(t.TempDir(), "logs", "out.log")
	entry := newLogger("file", Config{
		File:   FileSinkConfig{Enabled: true, Path: path},
		Format: FormatConfig{StructuredToStderr: "never"},
	})
	entry.Info("to the file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file: %v", err)
	}
	if !strings.Contains(string(data), "to the file") {
		t.Errorf("Expected message in log file, got %q", data)
	}
}

func TestStderrModes(t *testing.T) {
	if !shouldLogToStderr("always", logrus.InfoLevel) {
		t.Error("always must log")
	}
	if shouldLogToStderr("never", logrus.DebugLevel) {
		t.Error("never must not log")
	}
	if !shouldLogToStderr("auto", logrus.DebugLevel) {
		t.Error("auto must log at debug level")
	}

	entry := newLogger("quiet", Config{Format: FormatConfig{StructuredToStderr: "never"}})
	if entry.Logger.Out != io.Discard {
		t.Error("Expected discarded output without sinks")
	}
}

func TestSetLevelAppliesToAllLoggers(t *testing.T) {
	t.Cleanup(reset)
	t.Chdir(t.TempDir())
	t.Setenv("PLAYGROUND_HOME", t.TempDir())
	t.Setenv("PLAYGROUND_LOG_LEVEL", "")

	before := NewLogger("before")
	SetLevel(logrus.DebugLevel)
	after := NewLogger("after")

	if before.Logger.GetLevel() != logrus.DebugLevel || after.Logger.GetLevel() != logrus.DebugLevel {
		t.Error("Expected debug level on existing and new loggers")
	}
}

func TestGlobalOutputRedirect(t *testing.T) {
	var buf bytes.Buffer
	prev := SetGlobalOutput(&buf)
	t.Cleanup(func() { SetGlobalOutput(prev) })

	entry := newLogger("redirect", Config{Format: FormatConfig{StructuredToStderr: "always", DisableTimestamp: true}})
	entry.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("Expected redirected output, got %q", buf.String())
	}
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)
	p.Success("Version saved")
	p.Error("Save failed", errors.New("disk full"))
	p.Field("versions", 3)

	out := buf.String()
	for _, want := range []string{"Version saved", "Save failed", "disk full", "versions", "3"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}
