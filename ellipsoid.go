package mappers

import "math"

// Ellipsoid holds the geometric parameters of a reference ellipsoid together
// with the derived constants used repeatedly by projection formulas. Values
// are immutable once constructed; a single Ellipsoid may be shared by any
// number of projection instances and goroutines.
type Ellipsoid struct {
	A   float64 // semi-major axis [m]
	B   float64 // semi-minor axis [m]
	F   float64 // flattening
	E   float64 // first eccentricity
	E2  float64 // first eccentricity squared
	Ep2 float64 // second eccentricity squared
}

// Named ellipsoid presets, pre-validated. Sphere is the authalic-style
// sphere of radius 6370997 m used by purely spherical projections.
var (
	WGS84  = mustEllipsoid(6378137.0, 1/298.257223563)
	GRS80  = mustEllipsoid(6378137.0, 1/298.257222101)
	WGS72  = mustEllipsoid(6378135.0, 1/298.26)
	WGS66  = mustEllipsoid(6378145.0, 1/298.25)
	WGS60  = mustEllipsoid(6378165.0, 1/298.3)
	Sphere = mustEllipsoid(6370997.0, 0)
)

// NewEllipsoid constructs an Ellipsoid from a semi-major axis in meters and
// a flattening. A flattening of 0 describes a sphere.
func NewEllipsoid(semiMajorAxis, flattening float64) (Ellipsoid, error) {
	if !(semiMajorAxis > 0) || math.IsInf(semiMajorAxis, 0) {
		return Ellipsoid{}, &ConfigurationError{
			Param: "semiMajorAxis", Value: semiMajorAxis,
			Constraint: "must be finite and positive",
		}
	}
	if !(flattening >= 0 && flattening < 1) {
		return Ellipsoid{}, &ConfigurationError{
			Param: "flattening", Value: flattening,
			Constraint: "must be within [0, 1)",
		}
	}
	return newEllipsoid(semiMajorAxis, flattening), nil
}

// NewEllipsoidFromEccSq constructs an Ellipsoid from a semi-major axis in
// meters and the square of the first eccentricity.
func NewEllipsoidFromEccSq(semiMajorAxis, eccSq float64) (Ellipsoid, error) {
	if !(eccSq >= 0 && eccSq < 1) {
		return Ellipsoid{}, &ConfigurationError{
			Param: "eccSq", Value: eccSq,
			Constraint: "must be within [0, 1)",
		}
	}
	return NewEllipsoid(semiMajorAxis, 1-math.Sqrt(1-eccSq))
}

func newEllipsoid(a, f float64) Ellipsoid {
	e2 := f * (2 - f)
	return Ellipsoid{
		A:   a,
		B:   a * (1 - f),
		F:   f,
		E:   math.Sqrt(e2),
		E2:  e2,
		Ep2: e2 / (1 - e2),
	}
}

func mustEllipsoid(a, f float64) Ellipsoid {
	e, err := NewEllipsoid(a, f)
	if err != nil {
		panic(err)
	}
	return e
}
