package ports

import "context"

// First route returned by a directions service.
type DirectionsResult struct {
	// Encoded overview polyline of the route (precision 1e5).
	OverviewPolyline string
	// Provider's short description of the route, may be empty.
	Summary string
}

// Contract for retrieving a route between two addresses.
type DirectionsProvider interface {
	// Return the first route from origin to destination.
	// A single attempt is made; no retries.
	GetDirections(ctx context.Context, origin string, destination string) (DirectionsResult, error)
}
