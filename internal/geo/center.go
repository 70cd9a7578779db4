package geo

import (
	"fmt"
	"math"
)

// Input holds everything needed to locate one image center.
type Input struct {
	Point    Coordinate // known reference point
	Azimuth  Azimuth    // camera heading
	CenterPx PixelPoint // image center in pixels
	PointPx  PixelPoint // reference point in pixels
	Scale    float64    // meters per pixel
}

// Calculator runs the center pipeline with explicit numeric settings.
// The zero value uses DefaultPrecision, the decomposition projection and no tracing.
type Calculator struct {
	Tracer     Tracer
	Projection Projection
	Precision  uint32
}

// DefaultCalculator is used by CalculateImageCenter.
var DefaultCalculator = Calculator{}

// CalculateImageCenter returns the coordinate of the image center given a
// reference point with known coordinates, the camera azimuth, both pixel
// positions and the pixel scale in meters.
func CalculateImageCenter(point Coordinate, azimuth int, centerPx, pointPx PixelPoint, scale float64) (Coordinate, error) {
	return DefaultCalculator.ImageCenter(Input{
		Point:    point,
		Azimuth:  Azimuth(azimuth),
		CenterPx: centerPx,
		PointPx:  pointPx,
		Scale:    scale,
	})
}

// ImageCenter validates the input and runs the four stages in order:
// pixel offset, azimuth projection, degree conversion and coordinate shift.
func (c Calculator) ImageCenter(in Input) (Coordinate, error) {
	lat, err := validate(in)
	if err != nil {
		return Coordinate{}, err
	}

	tracer := c.Tracer
	if tracer == nil {
		tracer = noopTracer{}
	}

	off := PixelOffset(in.CenterPx, in.PointPx, in.Scale)
	tracer.PixelShift(in.PointPx.X-in.CenterPx.X, in.PointPx.Y-in.CenterPx.Y, off)

	ground := c.Projection.Apply(off, in.Azimuth)
	tracer.Projected(in.Azimuth.Right(), in.Azimuth.Down(), ground)

	delta, err := GeoShift(lat, ground)
	if err != nil {
		return Coordinate{}, err
	}
	tracer.GeoShifted(delta)

	center, err := Shift(in.Point, delta, c.Precision)
	if err != nil {
		return Coordinate{}, err
	}
	tracer.Shifted(center)

	return center, nil
}

// validate checks scale and coordinate ranges and returns the reference
// latitude as a float for the trigonometric stages.
func validate(in Input) (float64, error) {
	if in.Scale <= 0 || math.IsNaN(in.Scale) || math.IsInf(in.Scale, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidScale, in.Scale)
	}

	lat, lon, err := in.Point.Float64()
	if err != nil {
		return 0, err
	}
	if lat < -90 || lat > 90 || math.IsNaN(lat) {
		return 0, fmt.Errorf("%w: latitude %v", ErrCoordinateRange, lat)
	}
	if lon < -180 || lon > 180 || math.IsNaN(lon) {
		return 0, fmt.Errorf("%w: longitude %v", ErrCoordinateRange, lon)
	}

	return lat, nil
}
