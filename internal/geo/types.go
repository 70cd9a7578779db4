// Package geo computes the geographic coordinate of an image center from a
// known reference point, pixel positions, ground sample distance and camera azimuth.
package geo

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// PixelPoint is a position in the image raster. X grows rightward, Y downward.
type PixelPoint struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// MetricOffset is a displacement in meters along the image axes.
type MetricOffset struct {
	X float64
	Y float64
}

// GroundOffset is a displacement in meters in the geographic frame.
type GroundOffset struct {
	East  float64
	North float64
}

// Delta is a latitude/longitude displacement in degrees.
type Delta struct {
	Lat float64
	Lon float64
}

// Coordinate is a latitude/longitude pair in decimal degrees.
// The decimals are never modified after construction.
type Coordinate struct {
	Lat *apd.Decimal
	Lon *apd.Decimal
}

// NewCoordinate parses latitude and longitude from their decimal text form.
func NewCoordinate(lat, lon string) (Coordinate, error) {
	la, _, err := apd.NewFromString(lat)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: latitude %q: %v", ErrInvalidCoordinate, lat, err)
	}
	lo, _, err := apd.NewFromString(lon)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: longitude %q: %v", ErrInvalidCoordinate, lon, err)
	}

	return Coordinate{Lat: la, Lon: lo}, nil
}

// MustCoordinate is like NewCoordinate but panics on malformed input.
// Intended for literals.
func MustCoordinate(lat, lon string) Coordinate {
	c, err := NewCoordinate(lat, lon)
	if err != nil {
		panic(err)
	}

	return c
}

// CoordinateFromFloat converts binary floats using their shortest decimal form.
func CoordinateFromFloat(lat, lon float64) (Coordinate, error) {
	la, err := new(apd.Decimal).SetFloat64(lat)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: latitude %v: %v", ErrInvalidCoordinate, lat, err)
	}
	lo, err := new(apd.Decimal).SetFloat64(lon)
	if err != nil {
		return Coordinate{}, fmt.Errorf("%w: longitude %v: %v", ErrInvalidCoordinate, lon, err)
	}

	return Coordinate{Lat: la, Lon: lo}, nil
}

// Float64 returns the coordinate as binary floats, for trigonometry and GeoJSON.
func (c Coordinate) Float64() (lat, lon float64, err error) {
	if c.Lat == nil || c.Lon == nil {
		return 0, 0, fmt.Errorf("%w: empty coordinate", ErrInvalidCoordinate)
	}
	if lat, err = c.Lat.Float64(); err != nil {
		return 0, 0, fmt.Errorf("%w: latitude: %v", ErrInvalidCoordinate, err)
	}
	if lon, err = c.Lon.Float64(); err != nil {
		return 0, 0, fmt.Errorf("%w: longitude: %v", ErrInvalidCoordinate, err)
	}

	return lat, lon, nil
}

// String formats the coordinate as "lat, lon".
func (c Coordinate) String() string {
	if c.Lat == nil || c.Lon == nil {
		return "<nil>"
	}

	return c.Lat.Text('f') + ", " + c.Lon.Text('f')
}
