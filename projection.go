package mappers

// Projection converts between geographic coordinates on a reference
// ellipsoid and planar cartographic coordinates.
//
// Implementations are immutable value types: all projection constants are
// computed once at construction and no call mutates shared state, so a
// single instance is safe for concurrent use from many goroutines.
type Projection interface {
	// Project transforms geographic coordinates (decimal degrees) to the
	// projection's planar system (the ellipsoid's linear unit, meters for
	// the standard presets). Inputs outside the projection's valid domain
	// yield a *DomainError.
	Project(lon, lat float64) (x, y float64, err error)

	// InverseProject transforms planar coordinates back to geographic
	// longitude and latitude in decimal degrees. It may additionally return
	// a *ConvergenceError for variants whose inverse is iterative.
	//
	// InverseProject(Project(lon, lat)) recovers (lon, lat) up to
	// floating-point rounding error, not bit-exact equality; compare with a
	// tolerance.
	InverseProject(x, y float64) (lon, lat float64, err error)
}

// ConversionPipe converts coordinates expressed in a source projection's
// planar system directly into a target projection's planar system by
// round-tripping through geographic coordinates.
//
// The composition is deliberately naive: every Convert performs a full
// inverse projection followed by a forward projection, so numerical error
// accumulates with each chained conversion.
type ConversionPipe struct {
	source Projection
	target Projection
}

// NewConversionPipe builds a pipe converting from source's planar system to
// target's. With the LongitudeLatitude variant as source the pipe reduces to
// target.Project; with it as target, to source.InverseProject.
func NewConversionPipe(source, target Projection) ConversionPipe {
	return ConversionPipe{source: source, target: target}
}

// PipeTo builds a pipe converting from source's planar system to target's.
// It reads as the fluent counterpart of NewConversionPipe when the source is
// at hand: PipeTo(utm, merc).
func PipeTo(source, target Projection) ConversionPipe {
	return NewConversionPipe(source, target)
}

// Convert treats (x, y) as coordinates in the source projection's system and
// returns the equivalent coordinates in the target projection's system.
// Errors from either stage are returned unchanged; the pipe introduces no
// error kinds of its own.
func (p ConversionPipe) Convert(x, y float64) (float64, float64, error) {
	lon, lat, err := p.source.InverseProject(x, y)
	if err != nil {
		return 0, 0, err
	}
	return p.target.Project(lon, lat)
}

// Invert returns a new pipe converting in the opposite direction.
func (p ConversionPipe) Invert() ConversionPipe {
	return ConversionPipe{source: p.target, target: p.source}
}
