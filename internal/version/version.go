package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/weather/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/weather/internal/version.Commit=abc1234def \
//	                   -X github.com/muurk/weather/internal/version.CommitDate=2026-01-31"
//
// If not set, they are populated from VCS build info when available,
// or fall back to "dev" with a timestamp.
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the full git commit hash
	Commit = ""
	// CommitDate is the date of the commit (YYYY-MM-DD)
	CommitDate = ""
	// Dirty is set when the build had uncommitted changes. Commit itself
	// always holds a bare hash.
	Dirty = false
)

const dirtySuffix = "-dirty"

func init() {
	if Version == "" || Commit == "" || CommitDate == "" {
		populateFromBuildInfo()
	}
	normalizeCommit()

	if Version == "" {
		Version = fmt.Sprintf("dev-%s", time.Now().Format("20060102-150405"))
	}
	if Commit == "" {
		Commit = "unknown"
	}
	if CommitDate == "" {
		CommitDate = "unknown"
	}
}

// populateFromBuildInfo reads VCS settings embedded by the go toolchain
func populateFromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var vcsRevision, vcsModified, vcsTime string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsRevision = setting.Value
		case "vcs.modified":
			vcsModified = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	if Commit == "" && vcsRevision != "" {
		Commit = vcsRevision
		Dirty = vcsModified == "true"
	}

	if vcsTime == "" {
		return
	}
	t, err := time.Parse(time.RFC3339, vcsTime)
	if err != nil {
		return
	}
	if CommitDate == "" {
		CommitDate = t.Format("2006-01-02")
	}
	if Version == "" {
		Version = fmt.Sprintf("dev-%s", t.Format("20060102"))
	}
}

// ShortCommit returns the first seven characters of the commit hash
func ShortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}

// normalizeCommit moves a "-dirty" marker from an ldflags-provided Commit
// into Dirty.
func normalizeCommit() {
	if strings.HasSuffix(Commit, dirtySuffix) {
		Commit = strings.TrimSuffix(Commit, dirtySuffix)
		Dirty = true
	}
}

// DisplayCommit returns the short commit with a dirty marker when needed
func DisplayCommit() string {
	if Dirty {
		return ShortCommit() + dirtySuffix
	}
	return ShortCommit()
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s, %s)", Version, DisplayCommit(), CommitDate)
}
