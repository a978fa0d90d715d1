package logging

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/grovetools/playground/tui/theme"
	"github.com/sirupsen/logrus"
)

// TextFormatter prints one line per entry:
//
//	2026-10-17 09:30:00 [INFO] [session] saved version=3
//
// The component field is highlighted and the remaining fields follow the
// message in key order. Values containing spaces are quoted.
type TextFormatter struct {
	Config FormatConfig
}

func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}

	if !f.Config.DisableTimestamp {
		b.WriteString(entry.Time.Format("2006-01-02 15:04:05 "))
	}
	fmt.Fprintf(b, "[%s]", levelTag(entry.Level))

	component, hasComponent := entry.Data["component"]
	if hasComponent && !f.Config.DisableComponent {
		fmt.Fprintf(b, " [%s]", theme.DefaultTheme.Accent.Render(fmt.Sprint(component)))
	}

	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "component" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%s", k, fieldValue(entry.Data[k]))
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

func levelTag(l logrus.Level) string {
	if l == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(l.String())
}

func fieldValue(v interface{}) string {
	s := fmt.Sprint(v)
	if strings.ContainsAny(s, " \t\n\"") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
