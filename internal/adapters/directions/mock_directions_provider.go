package directions

import (
	"context"
	"fmt"
	"route-polyline/internal/domain"
	"route-polyline/internal/ports"
)

type MockRoute struct {
	From, To string
	Polyline string
	Summary  string
}

// MockDirectionsProvider serves fixed polylines keyed by origin and destination.
// Unknown pairs wrap domain.ErrNoRoute, like an address the provider cannot resolve.
type MockDirectionsProvider struct {
	m map[string]ports.DirectionsResult
}

func NewMockDirectionsProvider(routes []MockRoute) *MockDirectionsProvider {
	m := make(map[string]ports.DirectionsResult, len(routes))
	for _, r := range routes {
		m[r.From+"|"+r.To] = ports.DirectionsResult{OverviewPolyline: r.Polyline, Summary: r.Summary}
	}
	return &MockDirectionsProvider{m: m}
}

func (p *MockDirectionsProvider) GetDirections(ctx context.Context, origin, destination string) (ports.DirectionsResult, error) {
	r, ok := p.m[origin+"|"+destination]
	if !ok {
		return ports.DirectionsResult{}, fmt.Errorf("%w: missing pair %q -> %q", domain.ErrNoRoute, origin, destination)
	}

	return r, nil
}
