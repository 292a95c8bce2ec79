package projections

// LongitudeLatitude is the trivial pass-through "projection": both transform
// directions are the identity on the coordinate pair, with only basic
// angular validity checked. Its purpose is to let the geographic system
// itself participate in a mappers.ConversionPipe, reducing the pipe to a
// plain forward or inverse projection.
type LongitudeLatitude struct{}

// NewLongitudeLatitude returns the pass-through variant. It has no
// parameters and construction cannot fail; the constructor exists for
// symmetry with the other variants.
func NewLongitudeLatitude() LongitudeLatitude {
	return LongitudeLatitude{}
}

// Project returns (lon, lat) unchanged, bit-for-bit.
func (LongitudeLatitude) Project(lon, lat float64) (float64, float64, error) {
	if err := checkGeoDomain(lon, lat); err != nil {
		return 0, 0, err
	}
	return lon, lat, nil
}

// InverseProject returns (x, y) unchanged, bit-for-bit. The planar
// coordinates of this variant are themselves degrees.
func (LongitudeLatitude) InverseProject(x, y float64) (float64, float64, error) {
	if err := checkGeoDomain(x, y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
