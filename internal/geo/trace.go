package geo

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Tracer observes the intermediate values of a center calculation.
// Tracers never influence the result.
type Tracer interface {
	PixelShift(dx, dy int, off MetricOffset)
	Projected(right, down Azimuth, g GroundOffset)
	GeoShifted(d Delta)
	Shifted(c Coordinate)
}

type noopTracer struct{}

func (noopTracer) PixelShift(int, int, MetricOffset) {}
func (noopTracer) Projected(Azimuth, Azimuth, GroundOffset) {}
func (noopTracer) GeoShifted(Delta) {}
func (noopTracer) Shifted(Coordinate) {}

// LogTracer emits every step as a zerolog event at the given level.
type LogTracer struct {
	Logger zerolog.Logger
	Level  zerolog.Level
}

// PixelShift logs the pixel and metric offsets.
func (t LogTracer) PixelShift(dx, dy int, off MetricOffset) {
	t.Logger.WithLevel(t.Level).
		Int("dx_px", dx).
		Int("dy_px", dy).
		Float64("dx_m", off.X).
		Float64("dy_m", off.Y).
		Msg("Pixel shift converted to meters")
}

// Projected logs the axis bearings and the geographic offset.
func (t LogTracer) Projected(right, down Azimuth, g GroundOffset) {
	t.Logger.WithLevel(t.Level).
		Int("azimuth_right", int(right)).
		Int("azimuth_down", int(down)).
		Float64("east_m", g.East).
		Float64("north_m", g.North).
		Msg("Shift projected to east/north")
}

// GeoShifted logs the degree deltas.
func (t LogTracer) GeoShifted(d Delta) {
	t.Logger.WithLevel(t.Level).
		Float64("delta_lat", d.Lat).
		Float64("delta_lon", d.Lon).
		Msg("Shift converted to degrees")
}

// Shifted logs the resulting coordinate.
func (t LogTracer) Shifted(c Coordinate) {
	t.Logger.WithLevel(t.Level).
		Str("lat", c.Lat.Text('f')).
		Str("lon", c.Lon.Text('f')).
		Msg("Image center computed")
}

// TextTracer writes numbered, human-readable step lines to W.
type TextTracer struct {
	W io.Writer
}

// PixelShift implements Tracer.
func (t TextTracer) PixelShift(dx, dy int, off MetricOffset) {
	fmt.Fprintf(t.W, "[1] Pixel shift: dx = %d, dy = %d\n", dx, dy)
	fmt.Fprintf(t.W, "[2] Converted to meters: dx = %.4f m, dy = %.4f m\n", off.X, off.Y)
}

// Projected implements Tracer.
func (t TextTracer) Projected(right, down Azimuth, g GroundOffset) {
	fmt.Fprintf(t.W, "[3] Projected azimuths: right = %d°, down = %d°\n", right, down)
	fmt.Fprintf(t.W, "[4] Projected shift: east = %.4f m, north = %.4f m\n", g.East, g.North)
}

// GeoShifted implements Tracer.
func (t TextTracer) GeoShifted(d Delta) {
	fmt.Fprintf(t.W, "[5] Geographic shift: dlat = %.8f°, dlon = %.8f°\n", d.Lat, d.Lon)
}

// Shifted implements Tracer.
func (t TextTracer) Shifted(c Coordinate) {
	fmt.Fprintf(t.W, "[6] Final coordinates: lat = %s, lon = %s\n", c.Lat.Text('f'), c.Lon.Text('f'))
}

// MultiTracer fans every step out to all tracers.
type MultiTracer []Tracer

// PixelShift implements Tracer.
func (m MultiTracer) PixelShift(dx, dy int, off MetricOffset) {
	for _, t := range m {
		t.PixelShift(dx, dy, off)
	}
}

// Projected implements Tracer.
func (m MultiTracer) Projected(right, down Azimuth, g GroundOffset) {
	for _, t := range m {
		t.Projected(right, down, g)
	}
}

// GeoShifted implements Tracer.
func (m MultiTracer) GeoShifted(d Delta) {
	for _, t := range m {
		t.GeoShifted(d)
	}
}

// Shifted implements Tracer.
func (m MultiTracer) Shifted(c Coordinate) {
	for _, t := range m {
		t.Shifted(c)
	}
}
