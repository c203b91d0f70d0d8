// Package output renders decoded routes as the plain-text list consumed by
// the ride simulator scripts.
package output

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"route-polyline/internal/domain"
	"strconv"
	"strings"
)

// NoRouteMessage is printed instead of a route when none could be obtained.
const NoRouteMessage = "No route found! Check API Key or input addresses."

// WriteRoute writes r as a bracketed list with one coordinate per line:
//
//	[
//	    { lat: 38.5, long: -120.2 },
//	]
func WriteRoute(w io.Writer, r domain.Route) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("[\n")
	for _, c := range r {
		fmt.Fprintf(bw, "    { lat: %s, long: %s },\n", formatDegrees(c.Lat), formatDegrees(c.Long))
	}
	bw.WriteString("]\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write route: %w", err)
	}
	return nil
}

// WriteNoRoute writes the single diagnostic line.
func WriteNoRoute(w io.Writer) error {
	if _, err := io.WriteString(w, NoRouteMessage+"\n"); err != nil {
		return fmt.Errorf("write no-route message: %w", err)
	}
	return nil
}

// formatDegrees prints the shortest decimal that round-trips f.
// Integral values keep a ".0" suffix; magnitudes below 1e-4 or from 1e16 up
// use exponent form (1e-05).
func formatDegrees(f float64) string {
	if abs := math.Abs(f); f != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
