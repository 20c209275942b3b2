package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/muurk/weather/internal/config"
	"github.com/muurk/weather/internal/location"
	"github.com/muurk/weather/internal/logging"
	"github.com/muurk/weather/internal/remote"
	"github.com/muurk/weather/internal/weather"
)

const (
	noLocationMessage = "Could not get location data."
	noWeatherMessage  = "Could not get weather data."
)

// Cmd performs one effect and returns its follow-up message, or nil.
type Cmd func() Message

// SettingsStore persists the settings record.
type SettingsStore interface {
	SaveSettings(config.Settings) error
}

// ThemeSource resolves a theme preference to Light or Dark.
type ThemeSource interface {
	EffectiveTheme(config.Theme) (config.Theme, error)
}

// Launcher opens a URL outside the application.
type Launcher func(url string) error

// Orchestrator turns effects into commands. Each command is independent and
// may run concurrently with any other.
type Orchestrator struct {
	Resolver location.Resolver
	Provider weather.Provider
	Store    SettingsStore
	Themes   ThemeSource
	Launcher Launcher
}

// NewOrchestrator wires an orchestrator to its collaborators, opening URLs
// with the system browser.
func NewOrchestrator(resolver location.Resolver, provider weather.Provider, store *config.Store) *Orchestrator {
	// Browser helpers must not write into the terminal the UI owns.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	return &Orchestrator{
		Resolver: resolver,
		Provider: provider,
		Store:    store,
		Themes:   store,
		Launcher: browser.OpenURL,
	}
}

// Run returns one command per effect, in order.
func (o *Orchestrator) Run(ctx context.Context, effects []Effect) []Cmd {
	cmds := make([]Cmd, 0, len(effects))
	for _, e := range effects {
		cmds = append(cmds, o.command(ctx, e))
	}
	return cmds
}

func (o *Orchestrator) command(ctx context.Context, e Effect) Cmd {
	return func() Message {
		id := uuid.NewString()
		start := time.Now()
		logging.LogEffect(id, e.Kind(), "start", 0)

		msg := o.perform(ctx, e)

		event := "done"
		if failed, ok := msg.(OperationFailed); ok {
			event = "failed: " + failed.Message
		}
		logging.LogEffect(id, e.Kind(), event, time.Since(start))
		return msg
	}
}

func (o *Orchestrator) perform(ctx context.Context, e Effect) Message {
	switch e := e.(type) {
	case Quit:
		return QuitRequested{}

	case OpenURL:
		if err := o.Launcher(e.URL); err != nil {
			logging.Warn("Failed to open URL", zap.String("url", e.URL), zap.Error(err))
		}
		return nil

	case ResolveLocation:
		return o.resolveLocation(ctx, e.Query)

	case FetchWeather:
		return o.fetchWeather(ctx, e)

	case PersistConfig:
		if err := o.Store.SaveSettings(e.Settings); err != nil {
			logging.Error("Failed to persist settings", zap.Error(err))
		}
		return nil

	case PersistTheme:
		mode, err := o.Themes.EffectiveTheme(e.Theme)
		if err != nil {
			logging.Warn("Failed to read system theme mode, using dark", zap.Error(err))
			mode = config.Dark
		}
		return ThemeApplied{Palette: PaletteFor(mode)}

	default:
		logging.Error("Unhandled effect", zap.String("kind", fmt.Sprintf("%T", e)))
		return nil
	}
}

func (o *Orchestrator) resolveLocation(ctx context.Context, query string) Message {
	candidates, err := o.Resolver.Search(ctx, query)
	if err != nil {
		logging.Warn("Location lookup failed", zap.String("query", query), zap.Error(err))
		return OperationFailed{Message: remote.ShortMessage(err)}
	}
	if len(candidates) == 0 {
		return OperationFailed{Message: noLocationMessage}
	}
	return LocationResolved{Location: candidates[0]}
}

func (o *Orchestrator) fetchWeather(ctx context.Context, e FetchWeather) Message {
	lat, errLat := strconv.ParseFloat(e.Lat, 64)
	lon, errLon := strconv.ParseFloat(e.Lon, 64)
	if errLat != nil || errLon != nil {
		logging.Warn("Invalid stored coordinates", zap.String("lat", e.Lat), zap.String("lon", e.Lon))
		return OperationFailed{Message: fmt.Sprintf("Invalid coordinates %s, %s", e.Lat, e.Lon)}
	}

	snap, err := o.Provider.Fetch(ctx, lat, lon)
	if err != nil {
		logging.Warn("Weather fetch failed", zap.Error(err))
		return OperationFailed{Message: remote.ShortMessage(err)}
	}
	if snap == nil {
		return OperationFailed{Message: noWeatherMessage}
	}
	return WeatherFetched{Gen: e.Gen, Snapshot: *snap}
}
