package tui

import "fmt"

// Build metadata, overridden with -ldflags at release time.
var (
	AppVersion = "0.1.0"
	GitCommit  = "unknown"
	BuildTime  = "unknown"
)

func versionLabel() string {
	label := AppVersion
	if GitCommit != "unknown" || BuildTime != "unknown" {
		label = fmt.Sprintf("%s (%s %s)", AppVersion, GitCommit, BuildTime)
	}
	return label
}

// VersionLabel is the version string printed by the CLI.
func VersionLabel() string {
	return versionLabel()
}
