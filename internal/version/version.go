// Package version reports what build is running. Values are injected with
// -ldflags "-X github.com/phanterra/website/internal/version.Version=...".
package version

var (
	Version   = "dev"
	GitCommit = "unknown"
	// BuildTime is RFC3339.
	BuildTime = "unknown"
)

// VersionInfo is the build information served by /health.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
}

func Info() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
}

// String renders the version for log lines, e.g. "1.2.0 (abc1234)".
func (v VersionInfo) String() string {
	if v.GitCommit == "" || v.GitCommit == "unknown" {
		return v.Version
	}
	return v.Version + " (" + v.GitCommit + ")"
}
