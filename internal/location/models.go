package location

// Location is a single geocoding candidate
type Location struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// String returns the display name with coordinates
func (l Location) String() string {
	return l.DisplayName + " (" + l.Lat + ", " + l.Lon + ")"
}
