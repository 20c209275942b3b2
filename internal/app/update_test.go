package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/muurk/weather/internal/config"
	"github.com/muurk/weather/internal/location"
	"github.com/muurk/weather/internal/weather"
)

func newTestState() *State {
	return NewState(config.DefaultSettings(), "Denver")
}

func countEffects[T Effect](effects []Effect) int {
	n := 0
	for _, e := range effects {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func sampleSnapshot() weather.Snapshot {
	now := time.Date(2026, 10, 18, 14, 0, 0, 0, time.UTC)
	return weather.Snapshot{
		Timezone: "America/Denver",
		Current:  weather.Current{Time: now, TemperatureC: 20, WeatherCode: 1, IsDay: true},
		Hourly:   []weather.Hour{{Time: now, TemperatureC: 20}},
		Daily: []weather.Day{{
			Date: now, MaxC: 22, MinC: 5,
			Sunrise: now.Add(-7 * time.Hour), Sunset: now.Add(4 * time.Hour),
		}},
	}
}

func TestInit(t *testing.T) {
	t.Run("empty location resolves fallback city", func(t *testing.T) {
		s := newTestState()
		effects := Init(s)
		require.Equal(t, []Effect{ResolveLocation{Query: "Denver"}, PersistTheme{Theme: config.System}}, effects)
	})

	t.Run("configured location fetches weather", func(t *testing.T) {
		s := NewState(config.DefaultSettings().WithLocation("Paris", "48.85", "2.35"), "Denver")
		effects := Init(s)
		require.Len(t, effects, 2)
		fetch, ok := effects[0].(FetchWeather)
		require.True(t, ok)
		require.Equal(t, "48.85", fetch.Lat)
		require.Equal(t, "2.35", fetch.Lon)
		require.NotZero(t, fetch.Gen)
		require.IsType(t, PersistTheme{}, effects[1])
	})
}

func TestDenverStartupScenario(t *testing.T) {
	s := newTestState()

	effects := Init(s)
	require.Contains(t, effects, Effect(ResolveLocation{Query: "Denver"}))

	effects = Update(s, LocationResolved{Location: location.Location{DisplayName: "Denver, CO", Lat: "39.74", Lon: "-104.99"}})
	require.Equal(t, "Denver, CO", s.Settings.Location())
	lat, lon, ok := s.Settings.Coordinates()
	require.True(t, ok)
	require.Equal(t, "39.74", lat)
	require.Equal(t, "-104.99", lon)

	require.Equal(t, 1, countEffects[FetchWeather](effects))
	require.Equal(t, 1, countEffects[PersistConfig](effects))
	var fetch FetchWeather
	for _, e := range effects {
		if f, ok := e.(FetchWeather); ok {
			fetch = f
		}
	}
	require.Equal(t, "39.74", fetch.Lat)
	require.Equal(t, "-104.99", fetch.Lon)

	snap := sampleSnapshot()
	effects = Update(s, WeatherFetched{Gen: fetch.Gen, Snapshot: snap})
	require.Empty(t, effects)
	require.Equal(t, snap.Current.TemperatureC, s.Weather.Current.TemperatureC)
	require.Len(t, s.Weather.Daily, 1)
}

func TestDialogConfirmScenario(t *testing.T) {
	s := newTestState()
	Update(s, RequestCityChange{})
	Update(s, DialogTextChanged{Text: "Paris"})

	front, ok := s.Dialogs.Front()
	require.True(t, ok)
	require.Equal(t, ChangeCity{Text: "Paris"}, front)

	effects := Update(s, DialogConfirm{Text: "Paris"})
	require.Zero(t, s.Dialogs.Len())
	require.Len(t, effects, 2)
	require.Contains(t, effects, Effect(ResolveLocation{Query: "Paris"}))
	require.Equal(t, 1, countEffects[PersistConfig](effects))
}

func TestDialogOnEmptyQueueIsNoop(t *testing.T) {
	s := newTestState()

	require.Empty(t, Update(s, DialogConfirm{Text: "Paris"}))
	require.Empty(t, Update(s, DialogCancel{}))
	require.Empty(t, Update(s, DialogTextChanged{Text: "x"}))
	require.Zero(t, s.Dialogs.Len())
}

func TestDialogQueueBounds(t *testing.T) {
	s := newTestState()
	ops := []Message{
		RequestCityChange{}, DialogCancel{}, DialogCancel{}, RequestCityChange{},
		RequestCityChange{}, DialogConfirm{Text: "a"}, DialogConfirm{Text: "b"},
		DialogConfirm{Text: "c"}, RequestCityChange{}, DialogCancel{},
	}

	pushes := 0
	for _, op := range ops {
		if _, ok := op.(RequestCityChange); ok {
			pushes++
		}
		Update(s, op)
		require.GreaterOrEqual(t, s.Dialogs.Len(), 0)
		require.LessOrEqual(t, s.Dialogs.Len(), pushes)
	}
	require.Zero(t, s.Dialogs.Len())
}

func TestDialogQueueEditsFrontOnly(t *testing.T) {
	s := newTestState()
	Update(s, RequestCityChange{})
	Update(s, RequestCityChange{})
	Update(s, DialogTextChanged{Text: "Oslo"})

	Update(s, DialogCancel{})
	front, ok := s.Dialogs.Front()
	require.True(t, ok)
	require.Equal(t, ChangeCity{}, front, "second dialog starts with an empty buffer")
}

func TestToggleContextPage(t *testing.T) {
	t.Run("same page twice restores visibility", func(t *testing.T) {
		s := newTestState()
		require.Equal(t, ContextPanel{Page: ContextSettings}, s.Context)

		Update(s, ToggleContextPage{Page: ContextSettings})
		require.True(t, s.Context.Visible)

		Update(s, ToggleContextPage{Page: ContextSettings})
		require.False(t, s.Context.Visible)
		require.Equal(t, ContextSettings, s.Context.Page)
	})

	t.Run("different page forces visible", func(t *testing.T) {
		for _, visible := range []bool{false, true} {
			s := newTestState()
			s.Context.Visible = visible
			Update(s, ToggleContextPage{Page: ContextSettings})
			Update(s, ToggleContextPage{Page: ContextAbout})
			require.True(t, s.Context.Visible)
			require.Equal(t, ContextAbout, s.Context.Page)
		}
	})
}

func TestPreferenceChangesPersist(t *testing.T) {
	s := newTestState()

	effects := Update(s, SetUnits{Units: config.Celsius})
	require.Equal(t, config.Celsius, s.Settings.Units)
	require.Equal(t, []Effect{PersistConfig{Settings: s.Settings}}, effects)

	effects = Update(s, SetTimeFormat{TimeFormat: config.TwentyFour})
	require.Equal(t, config.TwentyFour, s.Settings.TimeFormat)
	require.Equal(t, 1, countEffects[PersistConfig](effects))
	require.Len(t, effects, 1)

	effects = Update(s, SetTheme{Theme: config.Light})
	require.Equal(t, config.Light, s.Settings.Theme)
	require.Equal(t, 1, countEffects[PersistConfig](effects))
	require.Equal(t, 1, countEffects[PersistTheme](effects))
	require.Len(t, effects, 2)

	// Unchanged values still persist once.
	effects = Update(s, SetUnits{Units: config.Celsius})
	require.Equal(t, 1, countEffects[PersistConfig](effects))
}

func TestConfigChanged(t *testing.T) {
	s := newTestState()

	require.Empty(t, Update(s, ConfigChanged{Settings: config.DefaultSettings()}))

	edited := config.DefaultSettings()
	edited.Units = config.Celsius
	effects := Update(s, ConfigChanged{Settings: edited})
	require.Empty(t, effects, "external edits are not written back")
	require.Equal(t, config.Celsius, s.Settings.Units)

	edited.Theme = config.Dark
	require.Empty(t, Update(s, ConfigChanged{Settings: edited}))
	require.Equal(t, config.Dark, s.Settings.Theme)
}

func TestSystemThemeModeChanged(t *testing.T) {
	s := newTestState()
	effects := Update(s, SystemThemeModeChanged{})
	require.Equal(t, 1, countEffects[PersistTheme](effects))
	require.Equal(t, 1, countEffects[PersistConfig](effects))
}

func TestOperationFailedSetsNotice(t *testing.T) {
	s := newTestState()
	before := s.Settings

	require.Empty(t, Update(s, OperationFailed{Message: noLocationMessage}))
	require.Equal(t, noLocationMessage, s.Notice)
	require.True(t, before.Equal(s.Settings))

	Update(s, WeatherFetched{Snapshot: sampleSnapshot()})
	require.Empty(t, s.Notice)
}

func TestStaleWeatherDropped(t *testing.T) {
	s := newTestState()

	first := Update(s, LocationResolved{Location: location.Location{DisplayName: "A", Lat: "1", Lon: "1"}})
	second := Update(s, LocationResolved{Location: location.Location{DisplayName: "B", Lat: "2", Lon: "2"}})

	var gen1, gen2 uint64
	for _, e := range first {
		if f, ok := e.(FetchWeather); ok {
			gen1 = f.Gen
		}
	}
	for _, e := range second {
		if f, ok := e.(FetchWeather); ok {
			gen2 = f.Gen
		}
	}
	require.Less(t, gen1, gen2)

	fresh := sampleSnapshot()
	Update(s, WeatherFetched{Gen: gen2, Snapshot: fresh})

	stale := sampleSnapshot()
	stale.Current.TemperatureC = -40
	Update(s, WeatherFetched{Gen: gen1, Snapshot: stale})
	require.Equal(t, fresh.Current.TemperatureC, s.Weather.Current.TemperatureC)

	// Unnumbered results always apply.
	Update(s, WeatherFetched{Snapshot: stale})
	require.Equal(t, -40.0, s.Weather.Current.TemperatureC)
}

func TestQuit(t *testing.T) {
	s := newTestState()
	require.Equal(t, []Effect{Quit{}}, Update(s, RequestQuit{}))
	require.False(t, s.Quitting)

	Update(s, QuitRequested{})
	require.True(t, s.Quitting)
}

func TestLaunchURL(t *testing.T) {
	s := newTestState()
	require.Equal(t, []Effect{OpenURL{URL: "https://example.com"}}, Update(s, LaunchURL{URL: "https://example.com"}))
}

func TestNavigation(t *testing.T) {
	s := newTestState()
	require.Equal(t, PageHourly, s.Nav.Active())

	Update(s, NavSelect{Page: PageDetails})
	require.Equal(t, PageDetails, s.Nav.Active())

	Update(s, NavSelect{Page: PageDetails})
	require.Equal(t, PageDetails, s.Nav.Active())

	Update(s, NavSelect{Page: PageID(42)})
	require.Equal(t, PageDetails, s.Nav.Active(), "unknown page ignored")

	Update(s, NavNext{})
	require.Equal(t, PageHourly, s.Nav.Active())
	Update(s, NavPrev{})
	require.Equal(t, PageDetails, s.Nav.Active())

	msgs := []Message{NavNext{}, ToggleContextPage{Page: ContextAbout}, NavPrev{}, NavSelect{Page: PageDaily}, ToggleContextPage{Page: ContextAbout}}
	for _, m := range msgs {
		Update(s, m)
		active := 0
		for _, item := range Present(s).Nav {
			if item.Active {
				active++
			}
		}
		require.Equal(t, 1, active)
	}
}

func TestResolveKeyEvents(t *testing.T) {
	s := newTestState()

	require.Equal(t, RequestQuit{}, Resolve(s, KeyEvent{Mods: ModCtrl, Key: "q"}))
	require.Equal(t, RequestCityChange{}, Resolve(s, KeyEvent{Mods: ModCtrl, Key: "l"}))
	require.Equal(t, ToggleContextPage{Page: ContextSettings}, Resolve(s, KeyEvent{Mods: ModCtrl, Key: "s"}))
	require.Equal(t, ToggleContextPage{Page: ContextAbout}, Resolve(s, KeyEvent{Mods: ModCtrl, Key: "a"}))
	require.Nil(t, Resolve(s, KeyEvent{Mods: ModCtrl, Key: "z"}))

	require.Equal(t, NavNext{}, Resolve(s, KeyEvent{Key: "tab"}))
	require.Equal(t, NavPrev{}, Resolve(s, KeyEvent{Mods: ModShift, Key: "tab"}))
	require.Equal(t, NavSelect{Page: PageDaily}, Resolve(s, KeyEvent{Key: "2"}))

	// Non-key messages pass through untouched.
	require.Equal(t, NavNext{}, Resolve(s, NavNext{}))
}

func TestResolveUsesHeldModifiers(t *testing.T) {
	s := newTestState()
	Update(s, ModifiersChanged{Mods: ModCtrl})
	require.Equal(t, ModCtrl, s.Modifiers)

	require.Equal(t, []Effect{Quit{}}, Update(s, KeyEvent{Key: "q"}))
}

func TestResolveDialogKeys(t *testing.T) {
	s := newTestState()
	Update(s, RequestCityChange{})
	Update(s, DialogTextChanged{Text: "Lima"})

	require.Equal(t, DialogConfirm{Text: "Lima"}, Resolve(s, KeyEvent{Key: "enter"}))
	require.Equal(t, DialogCancel{}, Resolve(s, KeyEvent{Key: "esc"}))
	require.Nil(t, Resolve(s, KeyEvent{Key: "tab"}), "navigation is blocked behind a dialog")
	require.Equal(t, RequestQuit{}, Resolve(s, KeyEvent{Mods: ModCtrl, Key: "q"}), "bindings still apply")
}

func TestResolvePanelTogglesYieldToDialog(t *testing.T) {
	s := newTestState()
	Update(s, RequestCityChange{})

	require.Nil(t, Resolve(s, KeyEvent{Mods: ModCtrl, Key: "a"}), "ctrl+a belongs to the text field")
	require.Nil(t, Resolve(s, KeyEvent{Mods: ModCtrl, Key: "s"}))
	require.Empty(t, Update(s, KeyEvent{Mods: ModCtrl, Key: "a"}))
	require.False(t, s.Context.Visible)

	Update(s, DialogCancel{})
	require.Equal(t, ToggleContextPage{Page: ContextAbout}, Resolve(s, KeyEvent{Mods: ModCtrl, Key: "a"}))
}

func TestResolvePanelKeys(t *testing.T) {
	s := newTestState()
	require.Nil(t, Resolve(s, KeyEvent{Key: "u"}), "panel keys need a visible panel")

	Update(s, ToggleContextPage{Page: ContextSettings})
	effects := Update(s, KeyEvent{Key: "u"})
	require.Equal(t, config.Celsius, s.Settings.Units)
	require.Len(t, effects, 1)

	Update(s, KeyEvent{Key: "f"})
	require.Equal(t, config.TwentyFour, s.Settings.TimeFormat)

	effects = Update(s, KeyEvent{Key: "t"})
	require.Equal(t, config.Light, s.Settings.Theme)
	require.Equal(t, 1, countEffects[PersistTheme](effects))

	s.About = AboutInfo{Repository: "https://example.com/repo", CommitURL: "https://example.com/repo/commits/abc"}
	Update(s, ToggleContextPage{Page: ContextAbout})
	require.Equal(t, LaunchURL{URL: "https://example.com/repo"}, Resolve(s, KeyEvent{Key: "o"}))
	require.Equal(t, LaunchURL{URL: "https://example.com/repo/commits/abc"}, Resolve(s, KeyEvent{Key: "c"}))

	Update(s, KeyEvent{Key: "esc"})
	require.False(t, s.Context.Visible)
}
