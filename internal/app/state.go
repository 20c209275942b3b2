package app

import (
	"github.com/muurk/weather/internal/config"
	"github.com/muurk/weather/internal/weather"
)

// State is the aggregate owned by the event loop. Only Transition mutates it.
type State struct {
	Settings  config.Settings
	Weather   weather.Snapshot
	Nav       Navigation
	Dialogs   DialogQueue
	Context   ContextPanel
	Modifiers Modifiers
	Keys      KeyBindings
	About     AboutInfo

	// Notice is the last user-visible failure, cleared by the next success.
	Notice string
	// FallbackCity is resolved at startup when no location is configured.
	FallbackCity string
	Quitting     bool

	// weatherGen numbers FetchWeather effects; older results are dropped.
	weatherGen uint64
}

// NewState creates the initial state for the given settings.
func NewState(settings config.Settings, fallbackCity string) *State {
	if fallbackCity == "" {
		fallbackCity = config.DefaultFallbackCity
	}
	return &State{
		Settings:     settings,
		Nav:          NewNavigation(),
		Context:      ContextPanel{Page: ContextSettings},
		Keys:         DefaultKeyBindings(),
		About:        CurrentAbout(),
		FallbackCity: fallbackCity,
	}
}

// ContextPage identifies a side panel.
type ContextPage int

const (
	ContextAbout ContextPage = iota
	ContextSettings
)

func (p ContextPage) String() string {
	switch p {
	case ContextAbout:
		return "About"
	case ContextSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// ContextPanel is the side panel selection and visibility.
type ContextPanel struct {
	Page    ContextPage
	Visible bool
}

// Toggle flips visibility when p is already selected, otherwise selects p and shows it.
func (c *ContextPanel) Toggle(p ContextPage) {
	if c.Page == p {
		c.Visible = !c.Visible
		return
	}
	c.Page = p
	c.Visible = true
}

// Modifiers is the set of held keyboard modifiers.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
	ModSuper
)

// Has reports whether all modifiers in m are held.
func (m Modifiers) Has(o Modifiers) bool {
	return m&o == o
}

func (m Modifiers) String() string {
	s := ""
	for _, mod := range []struct {
		bit  Modifiers
		name string
	}{{ModCtrl, "ctrl"}, {ModAlt, "alt"}, {ModShift, "shift"}, {ModSuper, "super"}} {
		if m&mod.bit != 0 {
			s += mod.name + "+"
		}
	}
	return s
}
