package directions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"route-polyline/internal/domain"
	"route-polyline/internal/platform/obs"
	"route-polyline/internal/ports"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com"
	directionsPath = "/maps/api/directions/json"
)

// GoogleDirectionsProvider implements DirectionsProvider against the Google
// Directions web service with a plain HTTP client.
//
// Each call is a single GET; failures are never retried.
// The provider is safe for concurrent use.
type GoogleDirectionsProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

// NewGoogleDirectionsProvider returns a provider for baseURL (DefaultBaseURL
// when empty). A zero timeout leaves requests bounded only by the context.
func NewGoogleDirectionsProvider(
	apiKey string,
	baseURL string,
	timeout time.Duration,
) (*GoogleDirectionsProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google directions api key is empty")
	}

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	provider := &GoogleDirectionsProvider{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}

	return provider, nil
}

// normalize collapses whitespace so addresses copied from other sources
// produce the same query.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (g *GoogleDirectionsProvider) GetDirections(
	ctx context.Context,
	origin string,
	destination string,
) (_ ports.DirectionsResult, err error) {
	defer obs.Time(ctx, "google.GetDirections")(&err)

	normOrigin := normalize(origin)
	if normOrigin == "" {
		return ports.DirectionsResult{}, errors.New("origin must be non-empty")
	}

	normDestination := normalize(destination)
	if normDestination == "" {
		return ports.DirectionsResult{}, errors.New("destination must be non-empty")
	}

	req, err := g.newRequest(ctx, http.MethodGet, g.baseURL+directionsPath)
	if err != nil {
		return ports.DirectionsResult{}, &domain.TransportError{Op: "build directions request", Err: err}
	}

	q := req.URL.Query()
	q.Set("origin", normOrigin)
	q.Set("destination", normDestination)
	q.Set("key", g.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := g.do(req)
	if err != nil {
		return ports.DirectionsResult{}, &domain.TransportError{Op: "get directions", Err: err}
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.DirectionsResult{}, &domain.TransportError{Op: "decode directions response", Err: err}
	}

	return decoded.firstRoute()
}
