package weather

import "time"

// Snapshot is a complete set of weather data for one location
type Snapshot struct {
	Timezone  string
	Current   Current
	Hourly    []Hour
	Daily     []Day
	FetchedAt time.Time
}

// Current holds the conditions at fetch time
type Current struct {
	Time          time.Time
	TemperatureC  float64
	ApparentC     float64
	Humidity      int     // percent
	Precipitation float64 // mm in the last hour
	WeatherCode   int     // WMO code
	CloudCover    int     // percent
	PressureHPa   float64 // mean sea level
	WindSpeedKmh  float64
	WindDirection int // degrees
	IsDay         bool
}

// Hour is one entry of the hourly forecast
type Hour struct {
	Time                     time.Time
	TemperatureC             float64
	PrecipitationProbability int
	WeatherCode              int
}

// Day is one entry of the daily forecast
type Day struct {
	Date            time.Time
	MaxC            float64
	MinC            float64
	Sunrise         time.Time
	Sunset          time.Time
	PrecipitationMM float64
	UVIndex         float64
	WeatherCode     int
}

// IsEmpty reports whether the snapshot holds no data at all
func (s Snapshot) IsEmpty() bool {
	return s.Current.Time.IsZero() && len(s.Hourly) == 0 && len(s.Daily) == 0
}

// Today returns the first daily entry, if any
func (s Snapshot) Today() (Day, bool) {
	if len(s.Daily) == 0 {
		return Day{}, false
	}
	return s.Daily[0], true
}
