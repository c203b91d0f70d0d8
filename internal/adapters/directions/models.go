package directions

import (
	"fmt"
	"route-polyline/internal/domain"
	"route-polyline/internal/ports"
)

// Subset of the Directions API response that is read. Pointer fields are
// optional in the document and are checked for presence before use.
type directionsResponse struct {
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message"`
	Routes       []directionsRoute `json:"routes"`
}

type directionsRoute struct {
	Summary          string           `json:"summary"`
	OverviewPolyline *encodedPolyline `json:"overview_polyline"`
}

type encodedPolyline struct {
	Points *string `json:"points"`
}

// firstRoute extracts the first route's overview polyline.
// A missing status is accepted as OK; any other status, an empty route list or
// a route without overview points wraps domain.ErrNoRoute.
func (r *directionsResponse) firstRoute() (ports.DirectionsResult, error) {
	switch r.Status {
	case "", "OK":
	default:
		if r.ErrorMessage != "" {
			return ports.DirectionsResult{}, fmt.Errorf("%w: status %s: %s", domain.ErrNoRoute, r.Status, r.ErrorMessage)
		}
		return ports.DirectionsResult{}, fmt.Errorf("%w: status %s", domain.ErrNoRoute, r.Status)
	}

	if len(r.Routes) == 0 {
		return ports.DirectionsResult{}, fmt.Errorf("%w: response contains no routes", domain.ErrNoRoute)
	}

	route := r.Routes[0]
	if route.OverviewPolyline == nil || route.OverviewPolyline.Points == nil {
		return ports.DirectionsResult{}, fmt.Errorf("%w: route has no overview_polyline.points", domain.ErrNoRoute)
	}

	return ports.DirectionsResult{
		OverviewPolyline: *route.OverviewPolyline.Points,
		Summary:          route.Summary,
	}, nil
}
