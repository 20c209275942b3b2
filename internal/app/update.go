package app

import (
	"go.uber.org/zap"

	"github.com/muurk/weather/internal/logging"
)

// Update resolves msg and applies the result to s.
func Update(s *State, msg Message) []Effect {
	resolved := Resolve(s, msg)
	if resolved == nil {
		return nil
	}
	return Transition(s, resolved)
}

// Init returns the effects to run at startup.
func Init(s *State) []Effect {
	var effects []Effect
	if s.Settings.Location() == "" {
		effects = append(effects, ResolveLocation{Query: s.FallbackCity})
	} else if lat, lon, ok := s.Settings.Coordinates(); ok {
		effects = append(effects, s.fetchWeather(lat, lon))
	}
	return append(effects, PersistTheme{Theme: s.Settings.Theme})
}

// Resolve maps a KeyEvent to the message it stands for, or nil when the key
// means nothing in the current state. Other messages resolve to themselves.
//
// Lookup order: the binding table (first match wins), then dialog keys while a
// dialog is open, otherwise page navigation and keys local to the visible panel.
func Resolve(s *State, msg Message) Message {
	ev, ok := msg.(KeyEvent)
	if !ok {
		return msg
	}

	mods := ev.Mods | s.Modifiers
	front, dialogOpen := s.Dialogs.Front()
	if action, ok := s.Keys.Lookup(mods, ev.Key); ok && !(dialogOpen && action.togglesPanel()) {
		return action.Message()
	}

	if dialogOpen {
		return dialogKey(front, mods, ev.Key)
	}

	if m := navigationKey(mods, ev.Key); m != nil {
		return m
	}

	if mods == 0 && s.Context.Visible {
		return panelKey(s, ev.Key)
	}
	return nil
}

func dialogKey(front DialogPage, mods Modifiers, key string) Message {
	if mods != 0 {
		return nil
	}
	switch key {
	case "enter":
		if cc, ok := front.(ChangeCity); ok {
			return DialogConfirm{Text: cc.Text}
		}
	case "esc":
		return DialogCancel{}
	}
	return nil
}

func navigationKey(mods Modifiers, key string) Message {
	switch {
	case key == "tab" && mods == 0:
		return NavNext{}
	case key == "tab" && mods == ModShift:
		return NavPrev{}
	case mods == 0 && len(key) == 1 && key[0] >= '1' && key[0] <= '9':
		return NavSelect{Page: PageID(key[0] - '1')}
	}
	return nil
}

func panelKey(s *State, key string) Message {
	switch s.Context.Page {
	case ContextSettings:
		switch key {
		case "u":
			return SetUnits{Units: s.Settings.Units.Next()}
		case "f":
			return SetTimeFormat{TimeFormat: s.Settings.TimeFormat.Next()}
		case "t":
			return SetTheme{Theme: s.Settings.Theme.Next()}
		}
	case ContextAbout:
		switch key {
		case "o":
			if s.About.Repository != "" {
				return LaunchURL{URL: s.About.Repository}
			}
		case "c":
			if s.About.CommitURL != "" {
				return LaunchURL{URL: s.About.CommitURL}
			}
		}
	}
	if key == "esc" {
		return ToggleContextPage{Page: s.Context.Page}
	}
	return nil
}

// Transition applies a resolved message to s and returns the effects to run.
// KeyEvents must be passed through Resolve first; Transition ignores them.
func Transition(s *State, msg Message) []Effect {
	switch m := msg.(type) {
	case RequestCityChange:
		s.Dialogs.Push(ChangeCity{})

	case RequestQuit:
		return []Effect{Quit{}}

	case QuitRequested:
		s.Quitting = true

	case ToggleContextPage:
		s.Context.Toggle(m.Page)

	case LaunchURL:
		return []Effect{OpenURL{URL: m.URL}}

	case ModifiersChanged:
		s.Modifiers = m.Mods

	case ConfigChanged:
		// External edits are adopted but never written back.
		if !m.Settings.Equal(s.Settings) {
			s.Settings = m.Settings
		}

	case SetUnits:
		s.Settings.Units = m.Units
		return []Effect{PersistConfig{Settings: s.Settings}}

	case SetTimeFormat:
		s.Settings.TimeFormat = m.TimeFormat
		return []Effect{PersistConfig{Settings: s.Settings}}

	case SetTheme:
		s.Settings.Theme = m.Theme
		return []Effect{PersistConfig{Settings: s.Settings}, PersistTheme{Theme: m.Theme}}

	case NavSelect:
		s.Nav.Activate(m.Page)

	case NavNext:
		s.Nav.Next()

	case NavPrev:
		s.Nav.Prev()

	case DialogTextChanged:
		s.Dialogs.SetFrontText(m.Text)

	case DialogConfirm:
		if _, ok := s.Dialogs.Pop(); !ok {
			return nil
		}
		return []Effect{ResolveLocation{Query: m.Text}, PersistConfig{Settings: s.Settings}}

	case DialogCancel:
		s.Dialogs.Pop()

	case LocationResolved:
		loc := m.Location
		s.Settings = s.Settings.WithLocation(loc.DisplayName, loc.Lat, loc.Lon)
		s.Notice = ""
		return []Effect{PersistConfig{Settings: s.Settings}, s.fetchWeather(loc.Lat, loc.Lon)}

	case WeatherFetched:
		if m.Gen != 0 && m.Gen < s.weatherGen {
			logging.Debug("Dropping superseded weather result",
				zap.Uint64("gen", m.Gen), zap.Uint64("latest", s.weatherGen))
			return nil
		}
		s.Weather = m.Snapshot
		s.Notice = ""

	case OperationFailed:
		logging.Warn("Operation failed", zap.String("message", m.Message))
		s.Notice = m.Message

	case SystemThemeModeChanged:
		return []Effect{PersistTheme{Theme: s.Settings.Theme}, PersistConfig{Settings: s.Settings}}
	}

	return nil
}

func (s *State) fetchWeather(lat, lon string) FetchWeather {
	s.weatherGen++
	return FetchWeather{Lat: lat, Lon: lon, Gen: s.weatherGen}
}
