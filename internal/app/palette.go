package app

import "github.com/muurk/weather/internal/config"

// Palette is a set of colors for one theme mode, as hex strings.
type Palette struct {
	Mode       config.Theme
	Foreground string
	Muted      string
	Accent     string
	Highlight  string
	Border     string
	Error      string
	Surface    string
}

// PaletteFor returns the palette for Light or Dark. Any other mode gets Dark.
func PaletteFor(mode config.Theme) Palette {
	if mode == config.Light {
		return Palette{
			Mode:       config.Light,
			Foreground: "#1F2328",
			Muted:      "#656D76",
			Accent:     "#0969DA",
			Highlight:  "#BF8700",
			Border:     "#D0D7DE",
			Error:      "#CF222E",
			Surface:    "#F6F8FA",
		}
	}
	return Palette{
		Mode:       config.Dark,
		Foreground: "#E6EDF3",
		Muted:      "#7D8590",
		Accent:     "#58A6FF",
		Highlight:  "#D29922",
		Border:     "#30363D",
		Error:      "#F85149",
		Surface:    "#161B22",
	}
}
