package geometry

import (
	"errors"
	"math"
)

// Polyline is an ordered sequence of points describing an open path.
type Polyline []Point2D

// Length returns the total path length in the polyline's native units.
// A polyline with fewer than two points has zero length.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 0; i < len(pl)-1; i++ {
		total += pl[i].Distance(pl[i+1])
	}
	return total
}

// Start returns the first point, or the zero point if empty.
func (pl Polyline) Start() Point2D {
	if len(pl) == 0 {
		return Point2D{}
	}
	return pl[0]
}

// End returns the last point, or the zero point if empty.
func (pl Polyline) End() Point2D {
	if len(pl) == 0 {
		return Point2D{}
	}
	return pl[len(pl)-1]
}

// ErrInvalidScale is returned for a zero, negative, or non-finite scale.
var ErrInvalidScale = errors.New("geometry: scale must be a positive finite pixels-per-meter value")

// Scale converts between drawing pixels and real-world meters.
// The value is pixels per meter and is always supplied by the caller;
// the engine has no default drawing scale of its own.
type Scale struct {
	pixelsPerMeter float64
}

// NewScale validates and constructs a Scale.
func NewScale(pixelsPerMeter float64) (Scale, error) {
	if pixelsPerMeter <= 0 || math.IsInf(pixelsPerMeter, 0) || math.IsNaN(pixelsPerMeter) {
		return Scale{}, ErrInvalidScale
	}
	return Scale{pixelsPerMeter: pixelsPerMeter}, nil
}

// PixelsPerMeter returns the raw scale factor.
func (s Scale) PixelsPerMeter() float64 {
	return s.pixelsPerMeter
}

// PixelsToMeters converts a pixel distance to meters.
func (s Scale) PixelsToMeters(pixels float64) float64 {
	return pixels / s.pixelsPerMeter
}

// MetersToPixels converts a meter distance to pixels.
func (s Scale) MetersToPixels(meters float64) float64 {
	return meters * s.pixelsPerMeter
}

// IsZero reports whether the scale is unset.
func (s Scale) IsZero() bool {
	return s.pixelsPerMeter == 0
}
