package app

import "github.com/muurk/weather/internal/config"

// Effect is a side effect requested by Transition and carried out by an Orchestrator.
type Effect interface {
	Kind() string
}

type (
	// Quit terminates the application.
	Quit struct{}
	// OpenURL launches a link externally.
	OpenURL struct{ URL string }
	// ResolveLocation geocodes a place name.
	ResolveLocation struct{ Query string }
	// FetchWeather retrieves weather for coordinates kept in their stored string form.
	FetchWeather struct {
		Lat, Lon string
		Gen      uint64
	}
	// PersistConfig writes the settings record.
	PersistConfig struct{ Settings config.Settings }
	// PersistTheme applies a theme preference, resolving System to the desktop mode.
	PersistTheme struct{ Theme config.Theme }
)

func (Quit) Kind() string            { return "quit" }
func (OpenURL) Kind() string         { return "open-url" }
func (ResolveLocation) Kind() string { return "resolve-location" }
func (FetchWeather) Kind() string    { return "fetch-weather" }
func (PersistConfig) Kind() string   { return "persist-config" }
func (PersistTheme) Kind() string    { return "persist-theme" }
