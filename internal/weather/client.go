package weather

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/muurk/weather/internal/remote"
)

const (
	// ServiceName identifies the forecast service in errors and logs
	ServiceName = "forecast"

	// DefaultForecastHours is the length of the hourly forecast
	DefaultForecastHours = 24

	// DefaultForecastDays is the length of the daily forecast
	DefaultForecastDays = 7

	localMinuteLayout = "2006-01-02T15:04"
	localDayLayout    = "2006-01-02"
)

const (
	currentVars = "temperature_2m,apparent_temperature,relative_humidity_2m,is_day,precipitation,weather_code,cloud_cover,pressure_msl,wind_speed_10m,wind_direction_10m"
	hourlyVars  = "temperature_2m,precipitation_probability,weather_code"
	dailyVars   = "weather_code,temperature_2m_max,temperature_2m_min,sunrise,sunset,precipitation_sum,uv_index_max"
)

// Provider retrieves weather for a coordinate pair.
// A nil snapshot with a nil error means the service had no data.
type Provider interface {
	Fetch(ctx context.Context, latitude, longitude float64) (*Snapshot, error)
}

// Client is an Open-Meteo forecast API client
type Client struct {
	// BaseURL is the service root (e.g., "https://api.open-meteo.com")
	BaseURL string

	ForecastHours int
	ForecastDays  int

	http *remote.JSONClient
	now  func() time.Time
}

// NewClient creates a forecast client
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:       strings.TrimSuffix(baseURL, "/"),
		ForecastHours: DefaultForecastHours,
		ForecastDays:  DefaultForecastDays,
		http:          remote.NewJSONClient(ServiceName, userAgent, timeout),
		now:           time.Now,
	}
}

type forecastResponse struct {
	Timezone         string        `json:"timezone"`
	UTCOffsetSeconds int           `json:"utc_offset_seconds"`
	Current          *currentBlock `json:"current"`
	Hourly           *hourlyBlock  `json:"hourly"`
	Daily            *dailyBlock   `json:"daily"`
}

type currentBlock struct {
	Time                string  `json:"time"`
	Temperature         float64 `json:"temperature_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	RelativeHumidity    int     `json:"relative_humidity_2m"`
	IsDay               int     `json:"is_day"`
	Precipitation       float64 `json:"precipitation"`
	WeatherCode         int     `json:"weather_code"`
	CloudCover          int     `json:"cloud_cover"`
	PressureMSL         float64 `json:"pressure_msl"`
	WindSpeed           float64 `json:"wind_speed_10m"`
	WindDirection       int     `json:"wind_direction_10m"`
}

type hourlyBlock struct {
	Time                     []string  `json:"time"`
	Temperature              []float64 `json:"temperature_2m"`
	PrecipitationProbability []int     `json:"precipitation_probability"`
	WeatherCode              []int     `json:"weather_code"`
}

type dailyBlock struct {
	Time             []string  `json:"time"`
	WeatherCode      []int     `json:"weather_code"`
	TemperatureMax   []float64 `json:"temperature_2m_max"`
	TemperatureMin   []float64 `json:"temperature_2m_min"`
	Sunrise          []string  `json:"sunrise"`
	Sunset           []string  `json:"sunset"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
	UVIndexMax       []float64 `json:"uv_index_max"`
}

// Fetch retrieves the forecast for the given coordinates
func (c *Client) Fetch(ctx context.Context, latitude, longitude float64) (*Snapshot, error) {
	var resp forecastResponse
	if err := c.http.GetJSON(ctx, c.forecastURL(latitude, longitude), &resp); err != nil {
		return nil, err
	}

	if resp.Current == nil {
		return nil, nil
	}

	return resp.toSnapshot(c.now()), nil
}

func (c *Client) forecastURL(latitude, longitude float64) string {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("current", currentVars)
	params.Set("hourly", hourlyVars)
	params.Set("daily", dailyVars)
	params.Set("forecast_hours", strconv.Itoa(c.ForecastHours))
	params.Set("forecast_days", strconv.Itoa(c.ForecastDays))
	params.Set("timezone", "auto")
	return c.BaseURL + "/v1/forecast?" + params.Encode()
}

func (r *forecastResponse) toSnapshot(fetchedAt time.Time) *Snapshot {
	loc := time.FixedZone(r.Timezone, r.UTCOffsetSeconds)

	snap := &Snapshot{
		Timezone:  r.Timezone,
		FetchedAt: fetchedAt,
		Current: Current{
			Time:          parseLocal(localMinuteLayout, r.Current.Time, loc),
			TemperatureC:  r.Current.Temperature,
			ApparentC:     r.Current.ApparentTemperature,
			Humidity:      r.Current.RelativeHumidity,
			Precipitation: r.Current.Precipitation,
			WeatherCode:   r.Current.WeatherCode,
			CloudCover:    r.Current.CloudCover,
			PressureHPa:   r.Current.PressureMSL,
			WindSpeedKmh:  r.Current.WindSpeed,
			WindDirection: r.Current.WindDirection,
			IsDay:         r.Current.IsDay == 1,
		},
	}

	if h := r.Hourly; h != nil {
		for i, ts := range h.Time {
			snap.Hourly = append(snap.Hourly, Hour{
				Time:                     parseLocal(localMinuteLayout, ts, loc),
				TemperatureC:             floatAt(h.Temperature, i),
				PrecipitationProbability: intAt(h.PrecipitationProbability, i),
				WeatherCode:              intAt(h.WeatherCode, i),
			})
		}
	}

	if d := r.Daily; d != nil {
		for i, ts := range d.Time {
			snap.Daily = append(snap.Daily, Day{
				Date:            parseLocal(localDayLayout, ts, loc),
				MaxC:            floatAt(d.TemperatureMax, i),
				MinC:            floatAt(d.TemperatureMin, i),
				Sunrise:         parseLocal(localMinuteLayout, stringAt(d.Sunrise, i), loc),
				Sunset:          parseLocal(localMinuteLayout, stringAt(d.Sunset, i), loc),
				PrecipitationMM: floatAt(d.PrecipitationSum, i),
				UVIndex:         floatAt(d.UVIndexMax, i),
				WeatherCode:     intAt(d.WeatherCode, i),
			})
		}
	}

	return snap
}

// parseLocal returns the zero time for values the service left empty
func parseLocal(layout, value string, loc *time.Location) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.ParseInLocation(layout, value, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

func floatAt(s []float64, i int) float64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func intAt(s []int, i int) int {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func stringAt(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
