package domain

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestRouteLineString(t *testing.T) {
	route := Route{
		{Lat: 50.4297, Long: -104.52251},
		{Lat: 50.42941, Long: -104.52251},
	}

	ls := route.LineString()
	if len(ls) != 2 {
		t.Fatalf("expected 2 points, got %d", len(ls))
	}

	// orb points are [lon, lat]
	if ls[0][0] != -104.52251 || ls[0][1] != 50.4297 {
		t.Errorf("first point = %v, want [-104.52251 50.4297]", ls[0])
	}
}

func TestRouteLengthMeters(t *testing.T) {
	tests := []struct {
		name  string
		route Route
		want  float64
		tol   float64
	}{
		{name: "empty", route: Route{}, want: 0},
		{name: "single point", route: Route{{Lat: 38.5, Long: -120.2}}, want: 0},
		{
			// 0.00029 degrees of latitude is about 32 m
			name: "short northbound segment",
			route: Route{
				{Lat: 50.4297, Long: -104.52251},
				{Lat: 50.42941, Long: -104.52251},
			},
			want: 32.2,
			tol:  1,
		},
		{
			name: "one degree of longitude on the equator",
			route: Route{
				{Lat: 0, Long: 0},
				{Lat: 0, Long: 1},
			},
			want: 111319,
			tol:  200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.route.LengthMeters()
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("LengthMeters() = %v, want %v ± %v", got, tt.want, tt.tol)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("fetch route: %w", &TransportError{Op: "get directions", Err: cause})

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("errors.As(%v, *TransportError) = false", err)
	}
	if te.Op != "get directions" {
		t.Errorf("Op = %q, want get directions", te.Op)
	}
	if !errors.Is(err, cause) {
		t.Errorf("TransportError does not unwrap to its cause")
	}
	if got, want := te.Error(), "get directions: connection reset"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if errors.Is(err, ErrNoRoute) {
		t.Errorf("transport failure must not match ErrNoRoute")
	}
}
