package weather

// Condition describes a WMO weather interpretation code
type Condition struct {
	Description string
	DayIcon     string
	NightIcon   string
}

var conditions = map[int]Condition{
	0:  {"Clear sky", "☀", "☾"},
	1:  {"Mainly clear", "🌤", "☾"},
	2:  {"Partly cloudy", "⛅", "☁"},
	3:  {"Overcast", "☁", "☁"},
	45: {"Fog", "🌫", "🌫"},
	48: {"Depositing rime fog", "🌫", "🌫"},
	51: {"Light drizzle", "🌦", "🌧"},
	53: {"Drizzle", "🌦", "🌧"},
	55: {"Dense drizzle", "🌧", "🌧"},
	56: {"Light freezing drizzle", "🌧", "🌧"},
	57: {"Freezing drizzle", "🌧", "🌧"},
	61: {"Light rain", "🌦", "🌧"},
	63: {"Rain", "🌧", "🌧"},
	65: {"Heavy rain", "🌧", "🌧"},
	66: {"Light freezing rain", "🌧", "🌧"},
	67: {"Freezing rain", "🌧", "🌧"},
	71: {"Light snow", "🌨", "🌨"},
	73: {"Snow", "🌨", "🌨"},
	75: {"Heavy snow", "❄", "❄"},
	77: {"Snow grains", "🌨", "🌨"},
	80: {"Light showers", "🌦", "🌧"},
	81: {"Showers", "🌧", "🌧"},
	82: {"Violent showers", "🌧", "🌧"},
	85: {"Snow showers", "🌨", "🌨"},
	86: {"Heavy snow showers", "❄", "❄"},
	95: {"Thunderstorm", "⛈", "⛈"},
	96: {"Thunderstorm with hail", "⛈", "⛈"},
	99: {"Severe thunderstorm with hail", "⛈", "⛈"},
}

// Describe returns the condition for a WMO code
func Describe(code int) Condition {
	if c, ok := conditions[code]; ok {
		return c
	}
	return Condition{Description: "Unknown", DayIcon: "?", NightIcon: "?"}
}

// Icon returns the glyph for a WMO code at day or night
func Icon(code int, isDay bool) string {
	c := Describe(code)
	if isDay {
		return c.DayIcon
	}
	return c.NightIcon
}

var compassPoints = []string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}

// Compass converts a bearing in degrees to a 16-point compass direction
func Compass(degrees int) string {
	d := ((degrees % 360) + 360) % 360
	idx := int((float64(d)+11.25)/22.5) % len(compassPoints)
	return compassPoints[idx]
}
