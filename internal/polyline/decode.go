// Package polyline decodes the encoded polyline format used by directions
// services: delta-encoded coordinates scaled by 1e5, zig-zag signed and
// written as 5-bit groups offset by ASCII 63.
package polyline

import (
	"errors"
	"fmt"
	"route-polyline/internal/domain"
)

const precision = 1e5

const (
	charOffset   = 63
	continuation = 0x20
	chunkMask    = 0x1f
	chunkBits    = 5
)

// ErrMalformed matches every DecodeError via errors.Is.
var ErrMalformed = errors.New("malformed polyline")

// DecodeError reports input that does not encode a whole number of points.
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode polyline at offset %d: %s", e.Offset, e.Reason)
}

func (e *DecodeError) Is(target error) bool { return target == ErrMalformed }

// Decode returns the coordinates encoded in s, in order.
// Empty input yields an empty route. Truncated or otherwise malformed input
// yields a *DecodeError and no coordinates.
func Decode(s string) (domain.Route, error) {
	route := make(domain.Route, 0, len(s)/8)

	var lat, long int64
	for i := 0; i < len(s); {
		dLat, next, err := decodeValue(s, i)
		if err != nil {
			return nil, err
		}
		if next == len(s) {
			return nil, &DecodeError{Offset: next, Reason: "point has a latitude but no longitude"}
		}

		dLong, next, err := decodeValue(s, next)
		if err != nil {
			return nil, err
		}

		lat += dLat
		long += dLong
		route = append(route, domain.Coordinate{
			Lat:  float64(lat) / precision,
			Long: float64(long) / precision,
		})
		i = next
	}

	return route, nil
}

// decodeValue reads one signed delta starting at s[start] and returns it with
// the offset of the first unread byte.
func decodeValue(s string, start int) (int64, int, error) {
	var result uint64
	var shift uint

	for i := start; i < len(s); i++ {
		c := s[i]
		if c < charOffset || c > '~' {
			return 0, i, &DecodeError{Offset: i, Reason: fmt.Sprintf("invalid character %q", c)}
		}
		b := uint64(c - charOffset)
		// The 13th group starts at bit 60; only its low 4 bits fit.
		if shift > 60 || (shift == 60 && b&chunkMask > 0xf) {
			return 0, i, &DecodeError{Offset: i, Reason: "value overflows 64 bits"}
		}

		result |= (b & chunkMask) << shift
		shift += chunkBits

		if b&continuation == 0 {
			v := int64(result >> 1)
			if result&1 != 0 {
				v = ^v
			}
			return v, i + 1, nil
		}
	}

	return 0, len(s), &DecodeError{Offset: len(s), Reason: "input ends inside a value"}
}
