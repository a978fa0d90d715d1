// Package version reports build information for the playground binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/grovetools/playground/version.Version=...".
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// GetInfo falls back to the VCS stamp recorded by the Go toolchain when the
// commit and build date were not set at link time.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "":
				info.Commit = s.Value
			case s.Key == "vcs.time" && info.BuildDate == "":
				info.BuildDate = s.Value
			}
		}
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if len(info.Commit) > 12 {
		info.Commit = info.Commit[:12]
	}
	if info.BuildDate == "" {
		info.BuildDate = "unknown"
	}
	return info
}

// String is the multi-line form printed by `playground version --verbose`.
func (i Info) String() string {
	return fmt.Sprintf("commit:   %s\nbuilt:    %s\ngo:       %s\nplatform: %s",
		i.Commit, i.BuildDate, i.GoVersion, i.Platform)
}

// Short is the one-line form printed by `playground version`.
func (i Info) Short() string {
	return fmt.Sprintf("playground %s (%s, %s)", i.Version, i.Commit, i.Platform)
}
