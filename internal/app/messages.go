package app

import (
	"github.com/muurk/weather/internal/config"
	"github.com/muurk/weather/internal/location"
	"github.com/muurk/weather/internal/weather"
)

// Message is an input to Update: a user action, an async result or a system notification.
type Message interface {
	message()
}

// User requests.
type (
	// RequestCityChange opens the change city dialog.
	RequestCityChange struct{}
	// RequestQuit asks the application to exit.
	RequestQuit struct{}
	// ToggleContextPage shows, hides or switches the side panel.
	ToggleContextPage struct{ Page ContextPage }
	// LaunchURL opens a link in the user's browser.
	LaunchURL struct{ URL string }
	// SetUnits, SetTimeFormat and SetTheme change a preference.
	SetUnits      struct{ Units config.Units }
	SetTimeFormat struct{ TimeFormat config.TimeFormat }
	SetTheme      struct{ Theme config.Theme }
	// NavSelect activates a body page.
	NavSelect struct{ Page PageID }
	NavNext   struct{}
	NavPrev   struct{}
)

// Dialog interaction. These always target the front of the queue.
type (
	DialogTextChanged struct{ Text string }
	DialogConfirm     struct{ Text string }
	DialogCancel      struct{}
)

// Raw input, resolved by Resolve before Transition sees it.
type (
	// KeyEvent is a key press with the modifiers held at the time.
	KeyEvent struct {
		Mods Modifiers
		Key  string
	}
	// ModifiersChanged reports a new set of held modifiers.
	ModifiersChanged struct{ Mods Modifiers }
)

// Results and notifications.
type (
	// ConfigChanged carries settings edited outside the application.
	ConfigChanged struct{ Settings config.Settings }
	// SystemThemeModeChanged reports that the desktop switched between light and dark.
	SystemThemeModeChanged struct{}
	// LocationResolved carries the first geocoding candidate.
	LocationResolved struct{ Location location.Location }
	// WeatherFetched carries a snapshot. Gen is the FetchWeather generation
	// that produced it; zero means unnumbered.
	WeatherFetched struct {
		Gen      uint64
		Snapshot weather.Snapshot
	}
	// OperationFailed carries a one-line user-visible error.
	OperationFailed struct{ Message string }
	// QuitRequested is produced by the Quit effect; the event loop exits on it.
	QuitRequested struct{}
	// ThemeApplied carries the palette to render with. Only the rendering layer consumes it.
	ThemeApplied struct{ Palette Palette }
)

func (RequestCityChange) message()      {}
func (RequestQuit) message()            {}
func (ToggleContextPage) message()      {}
func (LaunchURL) message()              {}
func (SetUnits) message()               {}
func (SetTimeFormat) message()          {}
func (SetTheme) message()               {}
func (NavSelect) message()              {}
func (NavNext) message()                {}
func (NavPrev) message()                {}
func (DialogTextChanged) message()      {}
func (DialogConfirm) message()          {}
func (DialogCancel) message()           {}
func (KeyEvent) message()               {}
func (ModifiersChanged) message()       {}
func (ConfigChanged) message()          {}
func (SystemThemeModeChanged) message() {}
func (LocationResolved) message()       {}
func (WeatherFetched) message()         {}
func (OperationFailed) message()        {}
func (QuitRequested) message()          {}
func (ThemeApplied) message()           {}
