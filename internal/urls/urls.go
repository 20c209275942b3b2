package urls

import "strings"

// Repository is the project home, linked from the About panel.
const Repository = "https://github.com/muurk/weather"

// GeocodingAPI is the default base URL of the Nominatim search service
// used to resolve place names to coordinates.
const GeocodingAPI = "https://nominatim.openstreetmap.org"

// ForecastAPI is the default base URL of the Open-Meteo forecast service.
const ForecastAPI = "https://api.open-meteo.com"

// Commit returns the repository page for a single commit.
func Commit(hash string) string {
	return strings.TrimSuffix(Repository, "/") + "/commits/" + hash
}
