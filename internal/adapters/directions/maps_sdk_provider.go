package directions

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"route-polyline/internal/domain"
	"route-polyline/internal/platform/obs"
	"route-polyline/internal/ports"
	"time"

	"googlemaps.github.io/maps"
)

// MapsSDKProvider implements DirectionsProvider with the official Google Maps
// client library.
//
// The SDK returns no routes for ZERO_RESULTS, which wraps domain.ErrNoRoute.
// Statuses the SDK rejects (REQUEST_DENIED, OVER_QUERY_LIMIT, ...) and
// network failures are reported as a domain.TransportError.
type MapsSDKProvider struct {
	client *maps.Client
}

func NewMapsSDKProvider(apiKey string, baseURL string, timeout time.Duration) (*MapsSDKProvider, error) {
	if apiKey == "" {
		return nil, errors.New("google maps api key is empty")
	}

	opts := []maps.ClientOption{
		maps.WithAPIKey(apiKey),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if baseURL != "" && baseURL != DefaultBaseURL {
		opts = append(opts, maps.WithBaseURL(baseURL))
	}

	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}

	return &MapsSDKProvider{client: client}, nil
}

func (m *MapsSDKProvider) GetDirections(
	ctx context.Context,
	origin string,
	destination string,
) (_ ports.DirectionsResult, err error) {
	defer obs.Time(ctx, "maps.Directions")(&err)

	normOrigin := normalize(origin)
	if normOrigin == "" {
		return ports.DirectionsResult{}, errors.New("origin must be non-empty")
	}

	normDestination := normalize(destination)
	if normDestination == "" {
		return ports.DirectionsResult{}, errors.New("destination must be non-empty")
	}

	routes, _, err := m.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      normOrigin,
		Destination: normDestination,
	})
	if err != nil {
		return ports.DirectionsResult{}, &domain.TransportError{Op: "maps directions", Err: redactURLError(err)}
	}

	if len(routes) == 0 {
		return ports.DirectionsResult{}, fmt.Errorf("%w: response contains no routes", domain.ErrNoRoute)
	}

	return ports.DirectionsResult{
		OverviewPolyline: routes[0].OverviewPolyline.Points,
		Summary:          routes[0].Summary,
	}, nil
}
