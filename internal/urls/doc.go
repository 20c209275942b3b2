// Package urls provides centralized constants for the URLs used throughout
// the application: the project repository shown in the About panel and the
// default endpoints of the remote geocoding and forecast services.
//
// Endpoints are defaults only; they can be overridden at runtime through
// the options layer (see internal/config).
//
// Usage:
//
//	import "github.com/muurk/weather/internal/urls"
//
//	fmt.Printf("Source code: %s\n", urls.Repository)
package urls
