package geo

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	rightAngleDeg = 90
	halfCircleDeg = 180
	fullCircleDeg = 360
)

// Azimuth is a compass bearing in whole degrees, 0 = North, clockwise.
type Azimuth int

// Normalize folds the bearing into [0, 360).
func (a Azimuth) Normalize() Azimuth {
	return Azimuth((int(a)%fullCircleDeg + fullCircleDeg) % fullCircleDeg)
}

// Right is the bearing of the image X axis.
func (a Azimuth) Right() Azimuth {
	return (a + rightAngleDeg).Normalize()
}

// Down is the bearing of the image Y axis.
func (a Azimuth) Down() Azimuth {
	return (a + halfCircleDeg).Normalize()
}

// Radians returns the normalized bearing in radians.
func (a Azimuth) Radians() float64 {
	return radians(float64(a.Normalize()))
}

// Projection selects how image-axis offsets are rotated into east/north.
type Projection string

const (
	// ProjectionDecomposition projects each image axis onto its own compass bearing.
	ProjectionDecomposition Projection = "decomposition"
	// ProjectionMatrix applies the equivalent 2x2 matrix to the offset vector.
	ProjectionMatrix Projection = "matrix"
)

// ParseProjection accepts an empty string as the default projection.
func ParseProjection(s string) (Projection, error) {
	switch Projection(s) {
	case "", ProjectionDecomposition:
		return ProjectionDecomposition, nil
	case ProjectionMatrix:
		return ProjectionMatrix, nil
	default:
		return "", fmt.Errorf("unknown projection %q", s)
	}
}

// Apply runs the selected projection.
func (p Projection) Apply(off MetricOffset, az Azimuth) GroundOffset {
	if p == ProjectionMatrix {
		return ProjectMatrix(off, az)
	}

	return Project(off, az)
}

// Project rotates an image-axis offset into the geographic frame. A
// displacement m along bearing θ contributes m·sin θ east and m·cos θ north.
func Project(off MetricOffset, az Azimuth) GroundOffset {
	right := az.Right().Radians()
	down := az.Down().Radians()

	return GroundOffset{
		East:  off.X*math.Sin(right) + off.Y*math.Sin(down),
		North: off.X*math.Cos(right) + off.Y*math.Cos(down),
	}
}

// ProjectMatrix is Project expressed as a single matrix product.
// With Y pointing down the transform is a reflection, not a pure rotation:
//
//	| east  |   |  cos a  -sin a | | x |
//	| north | = | -sin a  -cos a | | y |
func ProjectMatrix(off MetricOffset, az Azimuth) GroundOffset {
	a := az.Radians()
	sin, cos := math.Sin(a), math.Cos(a)

	m := mat.NewDense(2, 2, []float64{
		cos, -sin,
		-sin, -cos,
	})
	v := mat.NewVecDense(2, []float64{off.X, off.Y})

	var out mat.VecDense
	out.MulVec(m, v)

	return GroundOffset{East: out.AtVec(0), North: out.AtVec(1)}
}

func radians(deg float64) float64 {
	return deg * (math.Pi / halfCircleDeg)
}
