package app

import (
	"time"

	"github.com/muurk/weather/internal/config"
	"github.com/muurk/weather/internal/weather"
)

const (
	unknownPageMessage = "Unknown page selected."
	loadingMessage     = "Loading weather…"
)

// ViewModel is everything the rendering layer needs for one frame.
type ViewModel struct {
	Title   string
	Nav     []NavItem
	Body    Body
	Context *ContextView
	Dialog  *DialogView
	Notice  string
	Actions []ActionHint
}

// NavItem is one page tab.
type NavItem struct {
	ID     PageID
	Title  string
	Icon   string
	Active bool
}

// BodyKind says which body layout to render.
type BodyKind int

const (
	BodyHourly BodyKind = iota
	BodyDaily
	BodyDetails
	BodyUnknown
	BodyEmpty
)

// Body is the main content area.
type Body struct {
	Kind     BodyKind
	Location string
	// Headline summarises current conditions; empty without data.
	Headline string
	Hourly   []HourRow
	Daily    []DayRow
	Details  []DetailRow
	Message  string
}

type HourRow struct {
	Time          string
	Icon          string
	Temperature   string
	Precipitation string
	Condition     string
}

type DayRow struct {
	Day           string
	Icon          string
	High          string
	Low           string
	Precipitation string
	Condition     string
}

type DetailRow struct {
	Label string
	Value string
}

// ContextView is the visible side panel.
type ContextView struct {
	Page     ContextPage
	Title    string
	About    *AboutView
	Settings *SettingsView
}

type AboutView struct {
	Name       string
	Version    string
	Commit     string
	CommitDate string
	Links      []Link
}

// Link is an activatable URL with an optional shortcut key.
type Link struct {
	Label string
	URL   string
	Key   string
}

type SettingsView struct {
	Sections []SettingsSection
}

type SettingsSection struct {
	Title string
	Items []SettingsItem
}

// SettingsItem is a dropdown-style choice. Choose builds the message for option i.
type SettingsItem struct {
	Label    string
	Key      string
	Options  []string
	Selected int
	Choose   func(i int) Message
}

// DialogView is the front of the dialog queue.
type DialogView struct {
	Title       string
	Placeholder string
	Text        string
	Primary     string
	Secondary   string
	// Pending counts dialogs queued behind this one.
	Pending int
}

// ActionHint describes a key currently available to the user.
type ActionHint struct {
	Keys        string
	Description string
}

// Present derives the view model from s. It does not modify s.
func Present(s *State) ViewModel {
	vm := ViewModel{
		Title:  "Weather",
		Body:   presentBody(s),
		Notice: s.Notice,
	}

	for _, p := range s.Nav.Pages() {
		vm.Nav = append(vm.Nav, NavItem{
			ID:     p.ID,
			Title:  p.Title,
			Icon:   p.Icon,
			Active: p.ID == s.Nav.Active(),
		})
	}

	if s.Context.Visible {
		vm.Context = presentContext(s)
	}

	if front, ok := s.Dialogs.Front(); ok {
		vm.Dialog = presentDialog(front, s.Dialogs.Len()-1)
	}

	vm.Actions = presentActions(s)
	return vm
}

func formatterFor(settings config.Settings) weather.Formatter {
	return weather.NewFormatter(settings.Units == config.Fahrenheit, settings.TimeFormat == config.TwentyFour)
}

func presentBody(s *State) Body {
	body := Body{Location: s.Settings.Location()}

	page, ok := s.Nav.Page(s.Nav.Active())
	if !ok {
		body.Kind = BodyUnknown
		body.Message = unknownPageMessage
		return body
	}

	snap := s.Weather
	if snap.IsEmpty() {
		body.Kind = BodyEmpty
		body.Message = loadingMessage
		if s.Notice != "" {
			body.Message = s.Notice
		}
		return body
	}

	f := formatterFor(s.Settings)
	cur := snap.Current
	body.Headline = weather.Icon(cur.WeatherCode, cur.IsDay) + " " + f.Temperature(cur.TemperatureC) +
		"  " + weather.Describe(cur.WeatherCode).Description

	switch page.ID {
	case PageHourly:
		body.Kind = BodyHourly
		for _, h := range snap.Hourly {
			body.Hourly = append(body.Hourly, HourRow{
				Time:          f.Hour(h.Time),
				Icon:          weather.Icon(h.WeatherCode, isDaytime(snap, h.Time)),
				Temperature:   f.Temperature(h.TemperatureC),
				Precipitation: f.Percent(h.PrecipitationProbability),
				Condition:     weather.Describe(h.WeatherCode).Description,
			})
		}

	case PageDaily:
		body.Kind = BodyDaily
		for _, d := range snap.Daily {
			body.Daily = append(body.Daily, DayRow{
				Day:           f.Weekday(d.Date),
				Icon:          weather.Icon(d.WeatherCode, true),
				High:          f.Temperature(d.MaxC),
				Low:           f.Temperature(d.MinC),
				Precipitation: f.Precipitation(d.PrecipitationMM),
				Condition:     weather.Describe(d.WeatherCode).Description,
			})
		}

	case PageDetails:
		body.Kind = BodyDetails
		body.Details = []DetailRow{
			{"Feels like", f.Temperature(cur.ApparentC)},
			{"Humidity", f.Percent(cur.Humidity)},
			{"Wind", f.Wind(cur.WindSpeedKmh, cur.WindDirection)},
			{"Pressure", f.Pressure(cur.PressureHPa)},
			{"Precipitation", f.Precipitation(cur.Precipitation)},
			{"Cloud cover", f.Percent(cur.CloudCover)},
		}
		if today, ok := snap.Today(); ok {
			body.Details = append(body.Details,
				DetailRow{"UV index", f.UV(today.UVIndex)},
				DetailRow{"Sunrise", f.Clock(today.Sunrise)},
				DetailRow{"Sunset", f.Clock(today.Sunset)},
			)
		}
		body.Details = append(body.Details, DetailRow{"Updated", f.Clock(cur.Time)})

	default:
		body.Kind = BodyUnknown
		body.Message = unknownPageMessage
	}

	return body
}

// isDaytime uses the sunrise and sunset of the matching day, falling back to
// the current day/night flag.
func isDaytime(snap weather.Snapshot, t time.Time) bool {
	for _, d := range snap.Daily {
		if sameDay(d.Date, t) && !d.Sunrise.IsZero() && !d.Sunset.IsZero() {
			return !t.Before(d.Sunrise) && t.Before(d.Sunset)
		}
	}
	return snap.Current.IsDay
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func presentContext(s *State) *ContextView {
	view := &ContextView{Page: s.Context.Page, Title: s.Context.Page.String()}

	switch s.Context.Page {
	case ContextAbout:
		about := s.About
		av := &AboutView{
			Name:       about.Name,
			Version:    about.Version,
			Commit:     about.Commit,
			CommitDate: about.CommitDate,
		}
		if about.Repository != "" {
			av.Links = append(av.Links, Link{Label: "Repository", URL: about.Repository, Key: "o"})
		}
		if about.CommitURL != "" {
			av.Links = append(av.Links, Link{Label: "Commit " + about.Commit, URL: about.CommitURL, Key: "c"})
		}
		view.About = av

	case ContextSettings:
		settings := s.Settings
		view.Settings = &SettingsView{Sections: []SettingsSection{
			{
				Title: "General",
				Items: []SettingsItem{
					{
						Label:    "Units",
						Key:      "u",
						Options:  []string{"Fahrenheit", "Celsius"},
						Selected: int(settings.Units),
						Choose:   func(i int) Message { return SetUnits{Units: config.Units(i)} },
					},
					{
						Label:    "Time format",
						Key:      "f",
						Options:  []string{"12h", "24h"},
						Selected: int(settings.TimeFormat),
						Choose:   func(i int) Message { return SetTimeFormat{TimeFormat: config.TimeFormat(i)} },
					},
				},
			},
			{
				Title: "Appearance",
				Items: []SettingsItem{
					{
						Label:    "Theme",
						Key:      "t",
						Options:  []string{"Light", "Dark", "System"},
						Selected: int(settings.Theme),
						Choose:   func(i int) Message { return SetTheme{Theme: config.Theme(i)} },
					},
				},
			},
		}}

	default:
		view.Title = unknownPageMessage
	}

	return view
}

func presentDialog(front DialogPage, pending int) *DialogView {
	view := &DialogView{
		Title:     front.Title(),
		Primary:   "Save",
		Secondary: "Cancel",
		Pending:   pending,
	}
	if cc, ok := front.(ChangeCity); ok {
		view.Placeholder = "Search"
		view.Text = cc.Text
	}
	return view
}

func presentActions(s *State) []ActionHint {
	if _, ok := s.Dialogs.Front(); ok {
		return []ActionHint{{"enter", "save"}, {"esc", "cancel"}}
	}

	var hints []ActionHint
	if s.Context.Visible {
		switch s.Context.Page {
		case ContextSettings:
			hints = append(hints,
				ActionHint{"u", "units"},
				ActionHint{"f", "time format"},
				ActionHint{"t", "theme"},
			)
		case ContextAbout:
			hints = append(hints, ActionHint{"o", "open repository"})
			if s.About.CommitURL != "" {
				hints = append(hints, ActionHint{"c", "open commit"})
			}
		}
		hints = append(hints, ActionHint{"esc", "close panel"})
	}

	hints = append(hints, ActionHint{"tab", "next page"})
	for _, b := range s.Keys.Binds() {
		hints = append(hints, ActionHint{b.String(), b.Action.String()})
	}
	return hints
}
