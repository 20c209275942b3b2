package weather

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders snapshot values in the user's preferred units
type Formatter struct {
	Imperial       bool
	TwentyFourHour bool
	p              *message.Printer
}

// NewFormatter creates a formatter; imperial selects °F, mph and inches
func NewFormatter(imperial, twentyFourHour bool) Formatter {
	return Formatter{
		Imperial:       imperial,
		TwentyFourHour: twentyFourHour,
		p:              message.NewPrinter(language.English),
	}
}

// CelsiusToFahrenheit converts a temperature
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// Temperature formats a temperature given in Celsius
func (f Formatter) Temperature(c float64) string {
	if f.Imperial {
		return f.p.Sprintf("%.0f°F", round(CelsiusToFahrenheit(c)))
	}
	return f.p.Sprintf("%.0f°C", round(c))
}

// Wind formats a wind speed given in km/h with its compass direction
func (f Formatter) Wind(kmh float64, degrees int) string {
	if f.Imperial {
		return f.p.Sprintf("%.0f mph %s", round(kmh*0.621371), Compass(degrees))
	}
	return f.p.Sprintf("%.0f km/h %s", round(kmh), Compass(degrees))
}

// Precipitation formats an amount given in millimetres
func (f Formatter) Precipitation(mm float64) string {
	if f.Imperial {
		return f.p.Sprintf("%.2f in", mm/25.4)
	}
	return f.p.Sprintf("%.1f mm", mm)
}

// Pressure formats a sea-level pressure given in hPa
func (f Formatter) Pressure(hpa float64) string {
	if f.Imperial {
		return f.p.Sprintf("%.2f inHg", hpa*0.02953)
	}
	return f.p.Sprintf("%.0f hPa", round(hpa))
}

// Percent formats a percentage
func (f Formatter) Percent(v int) string {
	return f.p.Sprintf("%d%%", v)
}

// UV formats a UV index
func (f Formatter) UV(index float64) string {
	return f.p.Sprintf("%.1f", index)
}

// Clock formats a time of day in 12 or 24 hour style
func (f Formatter) Clock(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	if f.TwentyFourHour {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// Hour formats the hour of an hourly entry
func (f Formatter) Hour(t time.Time) string {
	if f.TwentyFourHour {
		return t.Format("15:00")
	}
	return t.Format("3 PM")
}

// Weekday formats the day of a daily entry
func (f Formatter) Weekday(t time.Time) string {
	return t.Format("Mon Jan 2")
}

// round avoids printing "-0"
func round(v float64) float64 {
	r := math.Round(v)
	if r == 0 {
		return 0
	}
	return r
}
