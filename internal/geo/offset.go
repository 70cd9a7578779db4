package geo

// PixelOffset converts the pixel displacement from the image center to the
// known point into meters along the image axes (X right, Y down).
// Scale is taken as is; validation belongs to the caller.
func PixelOffset(center, point PixelPoint, scale float64) MetricOffset {
	return MetricOffset{
		X: float64(point.X-center.X) * scale,
		Y: float64(point.Y-center.Y) * scale,
	}
}
