package geo

import (
	"fmt"
	"math"
)

// EarthMetersPerDegree is the flat-earth length of one degree of latitude.
// It is a rounded constant, not a WGS84 value; results depend on it exactly.
const EarthMetersPerDegree = 111_000

// poleEpsilon is the smallest |cos(lat)| for which a longitude delta is defined.
const poleEpsilon = 1e-12

// GeoShift converts an east/north displacement at the given latitude into
// degree deltas using a local flat-earth approximation.
func GeoShift(lat float64, g GroundOffset) (Delta, error) {
	cos := math.Cos(radians(lat))
	if math.Abs(cos) < poleEpsilon || math.IsNaN(cos) {
		return Delta{}, fmt.Errorf("%w: lat %v", ErrPoleSingularity, lat)
	}

	return Delta{
		Lat: g.North / EarthMetersPerDegree,
		Lon: g.East / (EarthMetersPerDegree * cos),
	}, nil
}
