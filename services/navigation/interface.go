package navigation

// Route is a computed path through the building with spoken instructions.
type Route struct {
	Destination    string   `json:"destination"`
	DestinationKey string   `json:"destination_key"`
	Path           []string `json:"path"`
	Instructions   []string `json:"instructions"`
}

// Service resolves a normalized destination key to a route from the
// reception desk. The second return value is false for unknown or
// unreachable destinations.
type Service interface {
	Route(destinationKey string) (*Route, bool)
}
