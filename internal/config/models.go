package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the settings record version written by this build.
const CurrentVersion = 1

// Units selects how temperatures and other measurements are displayed.
type Units int

const (
	Fahrenheit Units = iota
	Celsius
)

// TimeFormat selects 12 or 24 hour clock rendering.
type TimeFormat int

const (
	Twelve TimeFormat = iota
	TwentyFour
)

// Theme selects the application color scheme. System follows the desktop's
// light/dark preference.
type Theme int

const (
	Light Theme = iota
	Dark
	System
)

var (
	unitNames  = []string{"fahrenheit", "celsius"}
	timeNames  = []string{"12h", "24h"}
	themeNames = []string{"light", "dark", "system"}
)

// Settings is the persisted user preferences record.
// The location fields are either all set or all nil.
type Settings struct {
	Version      int        `yaml:"version"`
	Units        Units      `yaml:"units"`
	TimeFormat   TimeFormat `yaml:"time_format"`
	Theme        Theme      `yaml:"theme"`
	LocationName *string    `yaml:"location_name,omitempty"`
	Latitude     *string    `yaml:"latitude,omitempty"`
	Longitude    *string    `yaml:"longitude,omitempty"`
}

// DefaultSettings returns the settings used when nothing has been saved yet.
func DefaultSettings() Settings {
	return Settings{
		Version:    CurrentVersion,
		Units:      Fahrenheit,
		TimeFormat: Twelve,
		Theme:      System,
	}
}

// Equal reports whether two settings records hold the same values.
func (s Settings) Equal(o Settings) bool {
	return s.Version == o.Version &&
		s.Units == o.Units &&
		s.TimeFormat == o.TimeFormat &&
		s.Theme == o.Theme &&
		equalString(s.LocationName, o.LocationName) &&
		equalString(s.Latitude, o.Latitude) &&
		equalString(s.Longitude, o.Longitude)
}

// Location returns the configured location name, or "" when none is set.
func (s Settings) Location() string {
	if s.LocationName == nil {
		return ""
	}
	return *s.LocationName
}

// Coordinates returns the configured latitude and longitude as stored.
func (s Settings) Coordinates() (lat, lon string, ok bool) {
	if s.Latitude == nil || s.Longitude == nil {
		return "", "", false
	}
	return *s.Latitude, *s.Longitude, true
}

// WithLocation returns a copy of s pointing at the given location.
func (s Settings) WithLocation(name, lat, lon string) Settings {
	s.LocationName = &name
	s.Latitude = &lat
	s.Longitude = &lon
	return s
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (u Units) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return fmt.Sprintf("Units(%d)", int(u))
	}
	return unitNames[u]
}

// Next cycles to the following unit system.
func (u Units) Next() Units {
	return Units((int(u) + 1) % len(unitNames))
}

// ParseUnits parses the YAML name of a unit system.
func ParseUnits(s string) (Units, error) {
	i, err := parseName("units", unitNames, s)
	return Units(i), err
}

func (u Units) MarshalYAML() (interface{}, error) {
	return u.String(), nil
}

func (u *Units) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseUnits(value.Value)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (t TimeFormat) String() string {
	if t < 0 || int(t) >= len(timeNames) {
		return fmt.Sprintf("TimeFormat(%d)", int(t))
	}
	return timeNames[t]
}

// Next cycles to the following time format.
func (t TimeFormat) Next() TimeFormat {
	return TimeFormat((int(t) + 1) % len(timeNames))
}

// ParseTimeFormat parses the YAML name of a time format.
func ParseTimeFormat(s string) (TimeFormat, error) {
	i, err := parseName("time format", timeNames, s)
	return TimeFormat(i), err
}

func (t TimeFormat) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *TimeFormat) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseTimeFormat(value.Value)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t Theme) String() string {
	if t < 0 || int(t) >= len(themeNames) {
		return fmt.Sprintf("Theme(%d)", int(t))
	}
	return themeNames[t]
}

// Next cycles to the following theme.
func (t Theme) Next() Theme {
	return Theme((int(t) + 1) % len(themeNames))
}

// ParseTheme parses the YAML name of a theme.
func ParseTheme(s string) (Theme, error) {
	i, err := parseName("theme", themeNames, s)
	return Theme(i), err
}

func (t Theme) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

func (t *Theme) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseTheme(value.Value)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func parseName(kind string, names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (expected one of %s)", kind, s, strings.Join(names, ", "))
}

// themeModeRecord is the on-disk form of the system theme mode.
type themeModeRecord struct {
	Mode Theme `yaml:"mode"`
}
