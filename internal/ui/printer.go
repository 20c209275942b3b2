package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/muurk/weather/internal/location"
	"github.com/muurk/weather/internal/weather"
)

// Field is one labelled value in a header or result box.
type Field struct {
	Key   string
	Value string
}

// Printer provides methods for printing UI components to a writer.
// This is the primary way commands should output styled content.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = clampWidth(width, nil)
	return p
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params []Field) {
	p.Println(RenderHeader(title, command, params, p.width))
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details []Field) {
	p.Println(RenderSuccessBox(title, details, p.width))
}

// PrintError prints an error result box with hints
func (p *Printer) PrintError(title string, err error, hints []string) {
	p.Println(RenderErrorBox(title, err, hints, p.width))
}

// PrintFields prints a titled list of fields without a border
func (p *Printer) PrintFields(title string, fields []Field) {
	if title != "" {
		p.Println(SectionTitleStyle.Render(title))
	}
	p.Println(renderFields(fields))
}

// PrintLocations prints geocoding candidates, best match first
func (p *Printer) PrintLocations(query string, locs []location.Location) {
	if len(locs) == 0 {
		p.Println(ErrorMessageStyle.Render(fmt.Sprintf("  No places match %q", query)))
		return
	}
	rows := make([][]string, 0, len(locs))
	for i, l := range locs {
		rows = append(rows, []string{strconv.Itoa(i + 1), l.DisplayName, l.Lat, l.Lon})
	}
	p.Println(renderTable([]string{"#", "Place", "Latitude", "Longitude"}, rows))
}

// PrintForecast prints current conditions followed by the hourly and daily
// outlook. hours and days cap the number of rows; zero means all.
func (p *Printer) PrintForecast(place string, snap weather.Snapshot, f weather.Formatter, hours, days int) {
	if snap.IsEmpty() {
		p.Println(StepNoteStyle.Render("  No weather data for " + place))
		return
	}

	c := snap.Current
	cond := weather.Describe(c.WeatherCode)
	p.PrintFields("Now", []Field{
		{"Conditions", weather.Icon(c.WeatherCode, c.IsDay) + "  " + cond.Description},
		{"Temperature", f.Temperature(c.TemperatureC)},
		{"Feels like", f.Temperature(c.ApparentC)},
		{"Humidity", f.Percent(c.Humidity)},
		{"Wind", f.Wind(c.WindSpeedKmh, c.WindDirection)},
		{"Pressure", f.Pressure(c.PressureHPa)},
		{"Precipitation", f.Precipitation(c.Precipitation)},
		{"Cloud cover", f.Percent(c.CloudCover)},
	})

	if len(snap.Hourly) > 0 {
		p.Newline()
		p.Println(SectionTitleStyle.Render("Hourly"))
		var rows [][]string
		for _, h := range limit(snap.Hourly, hours) {
			rows = append(rows, []string{
				f.Hour(h.Time),
				weather.Icon(h.WeatherCode, true) + " " + weather.Describe(h.WeatherCode).Description,
				f.Temperature(h.TemperatureC),
				f.Percent(h.PrecipitationProbability),
			})
		}
		p.Println(renderTable([]string{"Time", "Conditions", "Temp", "Rain"}, rows))
	}

	if len(snap.Daily) > 0 {
		p.Newline()
		p.Println(SectionTitleStyle.Render("Daily"))
		var rows [][]string
		for _, d := range limit(snap.Daily, days) {
			rows = append(rows, []string{
				f.Weekday(d.Date),
				weather.Icon(d.WeatherCode, true) + " " + weather.Describe(d.WeatherCode).Description,
				f.Temperature(d.MaxC) + " / " + f.Temperature(d.MinC),
				f.Precipitation(d.PrecipitationMM),
				f.UV(d.UVIndex),
			})
		}
		p.Println(renderTable([]string{"Day", "Conditions", "High / Low", "Precip", "UV"}, rows))
	}
}

func limit[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}

func renderFields(fields []Field) string {
	lines := make([]string, 0, len(fields))
	for _, fld := range fields {
		lines = append(lines, FieldKeyStyle.Render(fld.Key+":")+" "+FieldValueStyle.Render(fld.Value))
	}
	return strings.Join(lines, "\n")
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Foreground(MutedColor).Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().Foreground(TextColor).PaddingRight(2)
		})
	return t.Render()
}

// RenderHeader renders a command header box
func RenderHeader(title, command string, params []Field, width int) string {
	titleLine := HeaderTitleStyle.Render(strings.ToUpper(title))
	commandLine := HeaderCommandStyle.Render(command)
	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, commandLine)

	if len(params) > 0 {
		dividerWidth := width - 6 // border and padding
		if dividerWidth < 10 {
			dividerWidth = 10
		}
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			RenderHorizontalDivider(dividerWidth, "─"),
			renderFields(params),
		)
	}

	return HeaderBorderStyle(width).Render(content)
}

// RenderSuccessBox renders a success result box
func RenderSuccessBox(title string, details []Field, width int) string {
	lines := []string{
		"",
		SuccessTitleStyle.Render(" " + SuccessMarker + "  " + title),
		"",
	}
	if len(details) > 0 {
		lines = append(lines, renderFields(details), "")
	}
	return SuccessBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderErrorBox renders an error result box with hints
func RenderErrorBox(title string, err error, hints []string, width int) string {
	lines := []string{
		"",
		ErrorTitleStyle.Render(" " + FailureMarker + "  FAILED  ─  " + title),
		"",
	}

	if err != nil {
		lines = append(lines, ErrorMessageStyle.Render(" Error: "+err.Error()), "")
	}

	if len(hints) > 0 {
		hintLines := []string{HintTitleStyle.Render("Try:"), ""}
		for _, h := range hints {
			hintLines = append(hintLines, HintItemStyle.Render("  • "+h))
		}
		lines = append(lines, HintBoxStyle(width).Render(strings.Join(hintLines, "\n")), "")
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}
