package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"route-polyline/internal/domain"
	"route-polyline/internal/output"
	"route-polyline/internal/platform/obs"
	"route-polyline/internal/polyline"
	"route-polyline/internal/ports"
)

// FetchRoute requests directions once and decodes the first route's overview
// polyline. Provider errors (domain.ErrNoRoute, *domain.TransportError) and
// *polyline.DecodeError are returned wrapped.
func FetchRoute(
	ctx context.Context,
	provider ports.DirectionsProvider,
	origin string,
	destination string,
) (_ domain.Route, err error) {
	defer obs.Time(ctx, "services.FetchRoute")(&err)

	res, err := provider.GetDirections(ctx, origin, destination)
	if err != nil {
		return nil, fmt.Errorf("fetch route %q -> %q: %w", origin, destination, err)
	}

	route, err := polyline.Decode(res.OverviewPolyline)
	if err != nil {
		return nil, fmt.Errorf("fetch route %q -> %q: %w", origin, destination, err)
	}

	// Route length is only reported in debug logs.
	if logger := slog.Default(); logger.Enabled(ctx, slog.LevelDebug) {
		logger.DebugContext(ctx, "route decoded",
			"run_id", obs.RunID(ctx),
			"summary", res.Summary,
			"points", len(route),
			"length_m", int(route.LengthMeters()),
		)
	}

	return route, nil
}

// RoutePrinter fetches one route and writes it to Out.
// Either the full coordinate list or the single no-route line is written,
// never both and never a partial list.
type RoutePrinter struct {
	Provider ports.DirectionsProvider
	Out      io.Writer
	Logger   *slog.Logger
}

// Print runs request, decode and format once. Failing to obtain a route is not
// an error: the diagnostic line is printed and the cause logged at warn level.
// Only a failure to write Out is returned.
func (p *RoutePrinter) Print(ctx context.Context, origin, destination string) error {
	route, err := FetchRoute(ctx, p.Provider, origin, destination)
	if err != nil {
		p.logger().WarnContext(ctx, "no route",
			"run_id", obs.RunID(ctx),
			"origin", origin,
			"destination", destination,
			"error", err,
		)
		return output.WriteNoRoute(p.Out)
	}

	return output.WriteRoute(p.Out, route)
}

func (p *RoutePrinter) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
