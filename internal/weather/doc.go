// Package weather retrieves forecasts from the Open-Meteo API and formats
// them for display.
//
// # Snapshot
//
// A Snapshot is everything the application shows for one location: current
// conditions, the next 24 hours and the next 7 days. Snapshots are values;
// a newer fetch replaces the old one wholesale and nothing mutates one in
// place. The zero Snapshot is the empty state shown before the first fetch.
//
// # Units
//
// Data is always requested in metric units. Conversion to Fahrenheit, mph
// and inches happens at display time through a Formatter, so a units change
// never needs a refetch.
//
//	client := weather.NewClient(urls.ForecastAPI, "weather/1.0", 10*time.Second)
//	snap, err := client.Fetch(ctx, 39.74, -104.99)
//	if err == nil && snap == nil {
//	    // the service answered but had no current conditions
//	}
//
//	f := weather.NewFormatter(true, false)
//	fmt.Println(f.Temperature(snap.Current.TemperatureC)) // "72°F"
package weather
