package app

import (
	"github.com/muurk/weather/internal/urls"
	"github.com/muurk/weather/internal/version"
)

// AboutInfo is the build metadata shown in the About panel.
type AboutInfo struct {
	Name       string
	Version    string
	Commit     string
	CommitDate string
	Repository string
	// CommitURL is empty when the build commit is unknown.
	CommitURL string
}

// CurrentAbout describes the running binary.
func CurrentAbout() AboutInfo {
	info := AboutInfo{
		Name:       "Weather",
		Version:    version.Version,
		Commit:     version.DisplayCommit(),
		CommitDate: version.CommitDate,
		Repository: urls.Repository,
	}
	if version.Commit != "" && version.Commit != "unknown" {
		info.CommitURL = urls.Commit(version.Commit)
	}
	return info
}
