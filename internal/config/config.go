// Package config handles scene configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/woozymasta/imgcenter/internal/geo"
	"github.com/woozymasta/imgcenter/internal/raster"

	"gopkg.in/yaml.v3"
)

// Scene describes one image: the known point, where it and the center
// appear in the frame, the ground sample distance and the camera heading.
type Scene struct {
	// Center pixel; ignored when Image is set.
	CenterPx *geo.PixelPoint `yaml:"center_px,omitempty" json:"center_px,omitempty"`

	Reference  Reference      `yaml:"reference" json:"reference"`
	Image      string         `yaml:"image,omitempty" json:"image,omitempty"` // raster whose size gives the center pixel
	Projection string         `yaml:"projection,omitempty" json:"projection,omitempty"`
	PointPx    geo.PixelPoint `yaml:"point_px" json:"point_px"`
	Scale      float64        `yaml:"scale" json:"scale"` // meters per pixel
	Azimuth    int            `yaml:"azimuth" json:"azimuth"`
	Precision  uint32         `yaml:"precision,omitempty" json:"precision,omitempty"`
}

// Reference is the known point, kept as decimal text to avoid float rounding.
type Reference struct {
	Lat string `yaml:"lat" json:"lat"`
	Lon string `yaml:"lon" json:"lon"`
}

// Default returns the demonstration scene.
func Default() *Scene {
	return &Scene{
		Reference: Reference{Lat: "50.603694", Lon: "30.650625"},
		Azimuth:   335,
		CenterPx:  &geo.PixelPoint{X: 320, Y: 256},
		PointPx:   geo.PixelPoint{X: 558, Y: 328},
		Scale:     0.38,
		Precision: geo.DefaultPrecision,
	}
}

// Load reads and parses the YAML scene file from the specified path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, err
	}

	if err := scene.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &scene, nil
}

// Validate checks that the scene is complete. Range checks on the values
// themselves are left to the calculation.
func (s *Scene) Validate() error {
	var errs []error

	if s.Reference.Lat == "" || s.Reference.Lon == "" {
		errs = append(errs, errors.New("reference lat and lon are required"))
	}
	if s.CenterPx == nil && s.Image == "" {
		errs = append(errs, errors.New("either center_px or image is required"))
	}
	if s.Scale <= 0 {
		errs = append(errs, fmt.Errorf("%w: %v", geo.ErrInvalidScale, s.Scale))
	}
	if _, err := geo.ParseProjection(s.Projection); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Input resolves the scene into calculation input, reading the image header
// when the center pixel comes from an image file.
func (s *Scene) Input() (geo.Input, error) {
	point, err := geo.NewCoordinate(s.Reference.Lat, s.Reference.Lon)
	if err != nil {
		return geo.Input{}, err
	}

	var center geo.PixelPoint
	switch {
	case s.Image != "":
		if center, err = raster.Center(s.Image); err != nil {
			return geo.Input{}, err
		}
	case s.CenterPx != nil:
		center = *s.CenterPx
	default:
		return geo.Input{}, errors.New("either center_px or image is required")
	}

	return geo.Input{
		Point:    point,
		Azimuth:  geo.Azimuth(s.Azimuth),
		CenterPx: center,
		PointPx:  s.PointPx,
		Scale:    s.Scale,
	}, nil
}

// Calculator builds a calculator from the scene's numeric settings.
func (s *Scene) Calculator(tracer geo.Tracer) (geo.Calculator, error) {
	projection, err := geo.ParseProjection(s.Projection)
	if err != nil {
		return geo.Calculator{}, err
	}

	return geo.Calculator{
		Precision:  s.Precision,
		Projection: projection,
		Tracer:     tracer,
	}, nil
}
