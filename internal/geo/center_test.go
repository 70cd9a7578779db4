package geo

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	demoPoint    = MustCoordinate("50.603694", "30.650625")
	demoCenterPx = PixelPoint{X: 320, Y: 256}
	demoPointPx  = PixelPoint{X: 558, Y: 328}
)

const demoAzimuth, demoScale = 335, 0.38

func floats(t *testing.T, c Coordinate) (float64, float64) {
	t.Helper()
	lat, lon, err := c.Float64()
	require.NoError(t, err)
	return lat, lon
}

func TestCalculateImageCenterWorkedExample(t *testing.T) {
	center, err := CalculateImageCenter(demoPoint, demoAzimuth, demoCenterPx, demoPointPx, demoScale)
	require.NoError(t, err)

	assert.Equal(t, "50.603573", center.Lat.Text('f'))
	assert.Equal(t, "30.649297", center.Lon.Text('f'))
	assert.Equal(t, "50.603573, 30.649297", center.String())
}

func TestImageCenterHigherPrecision(t *testing.T) {
	calc := Calculator{Precision: 12}
	center, err := calc.ImageCenter(Input{
		Point:    demoPoint,
		Azimuth:  demoAzimuth,
		CenterPx: demoCenterPx,
		PointPx:  demoPointPx,
		Scale:    demoScale,
	})
	require.NoError(t, err)

	lat, lon := floats(t, center)
	assert.InDelta(t, 50.6035730539, lat, 1e-9)
	assert.InDelta(t, 30.6492973932, lon, 1e-9)
}

func TestImageCenterZeroDisplacement(t *testing.T) {
	for _, az := range []int{0, 45, 90, 180, 269, 335, 359} {
		center, err := CalculateImageCenter(demoPoint, az, demoCenterPx, demoCenterPx, 0.5)
		require.NoError(t, err)
		assert.Zero(t, center.Lat.Cmp(demoPoint.Lat), "azimuth %d lat %s", az, center.Lat)
		assert.Zero(t, center.Lon.Cmp(demoPoint.Lon), "azimuth %d lon %s", az, center.Lon)
	}
}

func TestImageCenterAzimuthPeriodicity(t *testing.T) {
	calc := Calculator{Precision: 15}
	in := Input{Point: demoPoint, CenterPx: demoCenterPx, PointPx: demoPointPx, Scale: demoScale}

	for _, az := range []Azimuth{0, 10, 90, 335} {
		in.Azimuth = az
		base, err := calc.ImageCenter(in)
		require.NoError(t, err)

		for _, shifted := range []Azimuth{az + 360, az + 720, az - 360} {
			in.Azimuth = shifted
			got, err := calc.ImageCenter(in)
			require.NoError(t, err)
			assert.Equal(t, base.String(), got.String(), "azimuth %d vs %d", az, shifted)
		}
	}
}

func TestImageCenterScaleLinearity(t *testing.T) {
	calc := Calculator{Precision: 20}
	in := Input{Point: demoPoint, Azimuth: demoAzimuth, CenterPx: demoCenterPx, PointPx: demoPointPx}
	refLat, refLon := floats(t, demoPoint)

	in.Scale = 0.2
	single, err := calc.ImageCenter(in)
	require.NoError(t, err)
	in.Scale = 0.4
	double, err := calc.ImageCenter(in)
	require.NoError(t, err)

	lat1, lon1 := floats(t, single)
	lat2, lon2 := floats(t, double)
	assert.InDelta(t, 2*(lat1-refLat), lat2-refLat, 1e-12)
	assert.InDelta(t, 2*(lon1-refLon), lon2-refLon, 1e-12)
}

func TestImageCenterSwapRoundTrip(t *testing.T) {
	calc := Calculator{Precision: 15}
	forward, err := calc.ImageCenter(Input{
		Point:    demoPoint,
		Azimuth:  demoAzimuth,
		CenterPx: demoCenterPx,
		PointPx:  demoPointPx,
		Scale:    demoScale,
	})
	require.NoError(t, err)

	back, err := calc.ImageCenter(Input{
		Point:    forward,
		Azimuth:  demoAzimuth,
		CenterPx: demoPointPx,
		PointPx:  demoCenterPx,
		Scale:    demoScale,
	})
	require.NoError(t, err)

	wantLat, wantLon := floats(t, demoPoint)
	gotLat, gotLon := floats(t, back)
	// cos(lat) differs slightly between the two reference latitudes.
	assert.InDelta(t, wantLat, gotLat, 1e-9)
	assert.InDelta(t, wantLon, gotLon, 1e-7)
}

func TestImageCenterSignConvention(t *testing.T) {
	// Camera facing north, known point 100 m right of center: the center lies west.
	ref := MustCoordinate("10", "20")
	center, err := CalculateImageCenter(ref, 0, PixelPoint{0, 0}, PixelPoint{100, 0}, 1)
	require.NoError(t, err)

	lat, lon := floats(t, center)
	assert.InDelta(t, 10, lat, 1e-12)
	assert.Less(t, lon, 20.0)
}

func TestImageCenterErrors(t *testing.T) {
	tests := []struct {
		name  string
		point Coordinate
		scale float64
		want  error
	}{
		{"north pole", MustCoordinate("90", "0"), 1, ErrPoleSingularity},
		{"south pole", MustCoordinate("-90.0", "12.5"), 1, ErrPoleSingularity},
		{"zero scale", demoPoint, 0, ErrInvalidScale},
		{"negative scale", demoPoint, -0.38, ErrInvalidScale},
		{"latitude out of range", MustCoordinate("90.5", "0"), 1, ErrCoordinateRange},
		{"longitude out of range", MustCoordinate("0", "-180.01"), 1, ErrCoordinateRange},
		{"empty coordinate", Coordinate{}, 1, ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculateImageCenter(tt.point, 0, demoCenterPx, demoPointPx, tt.scale)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestImageCenterProjectionsAgree(t *testing.T) {
	in := Input{Point: demoPoint, Azimuth: demoAzimuth, CenterPx: demoCenterPx, PointPx: demoPointPx, Scale: demoScale}

	a, err := Calculator{Precision: 8, Projection: ProjectionDecomposition}.ImageCenter(in)
	require.NoError(t, err)
	b, err := Calculator{Precision: 8, Projection: ProjectionMatrix}.ImageCenter(in)
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
}

func TestImageCenterTracingDoesNotChangeResult(t *testing.T) {
	in := Input{Point: demoPoint, Azimuth: demoAzimuth, CenterPx: demoCenterPx, PointPx: demoPointPx, Scale: demoScale}

	plain, err := Calculator{}.ImageCenter(in)
	require.NoError(t, err)

	var text, logs bytes.Buffer
	traced, err := Calculator{Tracer: MultiTracer{
		TextTracer{W: &text},
		LogTracer{Logger: zerolog.New(&logs), Level: zerolog.InfoLevel},
	}}.ImageCenter(in)
	require.NoError(t, err)

	assert.Equal(t, plain.String(), traced.String())

	out := text.String()
	assert.Contains(t, out, "[1] Pixel shift: dx = 238, dy = 72")
	assert.Contains(t, out, "[2] Converted to meters: dx = 90.4400 m, dy = 27.3600 m")
	assert.Contains(t, out, "[3] Projected azimuths: right = 65°, down = 155°")
	assert.Contains(t, out, "east = 93.5293 m, north = 13.4250 m")
	assert.Contains(t, out, "dlat = 0.00012095°, dlon = 0.00132761°")
	assert.Contains(t, out, "[6] Final coordinates: lat = 50.603573, lon = 30.649297")

	assert.Contains(t, logs.String(), `"azimuth_right":65`)
	assert.Contains(t, logs.String(), `"lat":"50.603573"`)
}
