// Package location resolves free-text place names to coordinates using the
// Nominatim search API.
//
// Coordinates are kept as the strings the service returns; they are parsed
// to float64 only when weather is requested. An empty result list is a
// valid outcome, not an error. Callers decide how to present it.
//
//	client := location.NewClient(urls.GeocodingAPI, "weather/1.0", 10*time.Second)
//	candidates, err := client.Search(ctx, "Denver")
//
// Requests are throttled to one per second, as the public Nominatim usage
// policy requires. The client never retries.
package location
