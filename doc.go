// Package mappers implements map projections in pure Go: forward and inverse
// transforms between geographic coordinates on a reference ellipsoid and
// planar cartographic coordinates, without a native PROJ dependency.
//
// The concrete projection variants live in the projections subpackage; this
// package provides the Projection interface they implement, the Ellipsoid
// model with its named presets, the ConversionPipe that composes two
// projections into a single conversion, batch helpers that apply an
// operation to a slice of coordinate pairs in parallel, and the error
// taxonomy (ConfigurationError, DomainError, ConvergenceError).
//
// Projection algorithms follow Map Projections: A Working Manual
// (John P. Snyder, 1987).
//
// A basic forward projection:
//
//	lcc, err := projections.NewLambertConformalConic(2.0, 0.0, 30.0, 60.0, mappers.WGS84)
//	if err != nil {
//		// invalid parameters
//	}
//	x, y, err := lcc.Project(6.8651, 45.8326)
//
// Converting between two projected systems goes through a pipe:
//
//	pipe := mappers.NewConversionPipe(lcc, merc)
//	x2, y2, err := pipe.Convert(x, y)
//
// All projection values are immutable after construction and safe for
// concurrent use without synchronization.
package mappers
