package geo

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// DefaultPrecision is the number of significant digits used for the final
// coordinate arithmetic when none is configured.
const DefaultPrecision uint32 = 8

// decimalContext returns an arithmetic context with the given significant
// digits and half-even rounding.
func decimalContext(precision uint32) *apd.Context {
	if precision == 0 {
		precision = DefaultPrecision
	}
	ctx := apd.BaseContext.WithPrecision(precision)
	ctx.Rounding = apd.RoundHalfEven

	return ctx
}

// Shift subtracts the deltas from the reference coordinate. The deltas point
// from the image center to the reference point, so the center is ref - d.
func Shift(ref Coordinate, d Delta, precision uint32) (Coordinate, error) {
	if ref.Lat == nil || ref.Lon == nil {
		return Coordinate{}, fmt.Errorf("%w: empty coordinate", ErrInvalidCoordinate)
	}

	dLat, err := new(apd.Decimal).SetFloat64(d.Lat)
	if err != nil {
		return Coordinate{}, fmt.Errorf("latitude delta %v: %w", d.Lat, err)
	}
	dLon, err := new(apd.Decimal).SetFloat64(d.Lon)
	if err != nil {
		return Coordinate{}, fmt.Errorf("longitude delta %v: %w", d.Lon, err)
	}

	ctx := decimalContext(precision)
	out := Coordinate{Lat: new(apd.Decimal), Lon: new(apd.Decimal)}

	if _, err := ctx.Sub(out.Lat, ref.Lat, dLat); err != nil {
		return Coordinate{}, fmt.Errorf("shift latitude: %w", err)
	}
	if _, err := ctx.Sub(out.Lon, ref.Lon, dLon); err != nil {
		return Coordinate{}, fmt.Errorf("shift longitude: %w", err)
	}

	return out, nil
}
