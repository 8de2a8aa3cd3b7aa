package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Заполняются через -ldflags "-X github.com/expenses/snowy/internal/version.BuildDate=..."
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	BuildDate string `json:"build_date"`
	Commit    string `json:"commit"`
	Modified  bool   `json:"modified"` // собрано из грязного дерева
	GoVersion string `json:"go_version"`
}

// Info returns structured version information.
// Если ldflags не заданы, берет данные VCS, которые Go вшивает в бинарник.
func Info() VersionInfo {
	info := VersionInfo{
		BuildDate: BuildDate,
		Commit:    BuildCommit,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "" {
				if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
					info.BuildDate = t.UTC().Format(time.DateOnly)
				}
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String returns a human-readable build string.
func String() string {
	return Info().String()
}

func (i VersionInfo) String() string {
	commit := coalesce(i.Commit, "unknown")
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if i.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("Build %s commit[%s] go[%s]",
		coalesce(i.BuildDate, "unknown"),
		commit,
		coalesce(i.GoVersion, "unknown"),
	)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
