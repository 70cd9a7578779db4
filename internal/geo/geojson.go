package geo

const (
	featureType       = "Feature"
	geometryPointType = "Point"
)

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature.
type GeoJSONGeometry struct {
	Type        string    `json:"type" yaml:"type"`
	Coordinates []float64 `json:"coordinates" yaml:"coordinates"` // [Lon, Lat]
}

// Feature builds a Point feature for a computed image center. The exact
// decimal text of both coordinates is kept in the properties since the
// geometry holds binary floats.
func Feature(center, reference Coordinate) (GeoJSONFeature, error) {
	lat, lon, err := center.Float64()
	if err != nil {
		return GeoJSONFeature{}, err
	}

	props := map[string]interface{}{
		"name": "image_center",
		"lat":  center.Lat.Text('f'),
		"lon":  center.Lon.Text('f'),
	}
	if reference.Lat != nil && reference.Lon != nil {
		props["reference_lat"] = reference.Lat.Text('f')
		props["reference_lon"] = reference.Lon.Text('f')
	}

	return GeoJSONFeature{
		Type: featureType,
		Geometry: GeoJSONGeometry{
			Type:        geometryPointType,
			Coordinates: []float64{lon, lat},
		},
		Properties: props,
	}, nil
}
