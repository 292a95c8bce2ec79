package projections

import (
	"math"

	"github.com/ScaleWeather/mappers"
)

// Standard parallels closer than this (degrees) are treated as coincident
// and the projection degenerates to the single-parallel tangent form.
const lccParallelEps = 1e-10

// LambertConformalConic is the conic conformal projection of Snyder (1987),
// chapter 15, in its ellipsoidal form.
//
// Summary by Snyder:
//
//   - Conic, conformal.
//   - Parallels are unequally spaced arcs of concentric circles; meridians
//     are equally spaced radii of the same circles, cutting parallels at
//     right angles.
//   - Scale is true along the one or two standard parallels.
//   - The pole nearer the standard parallels is a point, the other pole is
//     at infinity.
//   - Used for regions of predominant east-west extent.
type LambertConformalConic struct {
	lambda0 float64 // reference longitude [rad]
	n       float64 // cone constant
	bigF    float64
	rho0    float64 // cone radius at the reference latitude [m]
	a       float64 // ellipsoid semi-major axis [m]
	e       float64 // ellipsoid first eccentricity
}

// NewLambertConformalConic constructs the projection from a reference
// longitude and latitude (the origin of the planar system) and two standard
// parallels, on the given ellipsoid.
//
// Coincident standard parallels are accepted and handled through the
// single-parallel tangent form (cone constant n = sin stdPar1). Standard
// parallels of equal magnitude on opposite sides of the equator are
// rejected: their cone constant is zero and the cone degenerates to a
// cylinder.
func NewLambertConformalConic(refLon, refLat, stdPar1, stdPar2 float64, ellps mappers.Ellipsoid) (LambertConformalConic, error) {
	if err := cfgRange("refLon", refLon, -180, 180); err != nil {
		return LambertConformalConic{}, err
	}
	if err := cfgRangeOpen("refLat", refLat, -90, 90); err != nil {
		return LambertConformalConic{}, err
	}
	if err := cfgRangeOpen("stdPar1", stdPar1, -90, 90); err != nil {
		return LambertConformalConic{}, err
	}
	if err := cfgRangeOpen("stdPar2", stdPar2, -90, 90); err != nil {
		return LambertConformalConic{}, err
	}

	tangent := math.Abs(stdPar1-stdPar2) < lccParallelEps
	if tangent && math.Abs(stdPar1) < lccParallelEps {
		return LambertConformalConic{}, &mappers.ConfigurationError{
			Param: "stdPar1", Value: stdPar1,
			Constraint: "coincident standard parallels on the equator degenerate to a cylinder",
		}
	}
	if !tangent && math.Abs(stdPar1+stdPar2) < lccParallelEps {
		return LambertConformalConic{}, &mappers.ConfigurationError{
			Param: "stdPar2", Value: stdPar2,
			Constraint: "standard parallels of equal magnitude on opposite sides of the equator give a zero cone constant",
		}
	}

	phi0 := refLat * deg2rad
	phi1 := stdPar1 * deg2rad
	phi2 := stdPar2 * deg2rad

	e := ellps.E
	t0 := tsfnz(e, phi0, math.Sin(phi0))
	t1 := tsfnz(e, phi1, math.Sin(phi1))
	m1 := msfnz(e, math.Sin(phi1), math.Cos(phi1))

	var n float64
	if tangent {
		n = math.Sin(phi1)
	} else {
		t2 := tsfnz(e, phi2, math.Sin(phi2))
		m2 := msfnz(e, math.Sin(phi2), math.Cos(phi2))
		n = (math.Log(m1) - math.Log(m2)) / (math.Log(t1) - math.Log(t2))
	}

	bigF := m1 / (n * math.Pow(t1, n))

	return LambertConformalConic{
		lambda0: refLon * deg2rad,
		n:       n,
		bigF:    bigF,
		rho0:    ellps.A * bigF * math.Pow(t0, n),
		a:       ellps.A,
		e:       e,
	}, nil
}

// Project forward-projects geographic coordinates in degrees. The pole on
// the cone's side maps to the cone apex; the opposite pole is at infinity
// and yields a *DomainError.
func (p LambertConformalConic) Project(lon, lat float64) (float64, float64, error) {
	if err := checkGeoDomain(lon, lat); err != nil {
		return 0, 0, err
	}

	var rho float64
	if math.Abs(lat) == 90 {
		if lat*p.n <= 0 {
			return 0, 0, &mappers.DomainError{
				Param: "lat", Value: lat,
				Constraint: "pole opposite the cone apex is at infinite radius",
			}
		}
		rho = 0
	} else {
		phi := lat * deg2rad
		t := tsfnz(p.e, phi, math.Sin(phi))
		rho = p.a * p.bigF * math.Pow(t, p.n)
	}

	theta := p.n * adjustLonRad(lon*deg2rad-p.lambda0)
	x := rho * math.Sin(theta)
	y := p.rho0 - rho*math.Cos(theta)

	if err := checkResult("x", "y", x, y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// InverseProject recovers geographic coordinates in degrees. The cone radius
// and angle come from (x, y) in closed form; latitude then requires the
// iterative isometric-latitude inversion, whose exhaustion is reported as a
// *ConvergenceError. A zero cone radius is the cone apex and is
// special-cased to the matching pole.
func (p LambertConformalConic) InverseProject(x, y float64) (float64, float64, error) {
	if err := checkPlanarDomain(x, y); err != nil {
		return 0, 0, err
	}

	sign := 1.0
	if p.n < 0 {
		sign = -1.0
	}
	rho := sign * math.Hypot(x, p.rho0-y)
	if rho == 0 {
		return adjustLonDeg(p.lambda0 * rad2deg), math.Copysign(90, p.n), nil
	}

	theta := math.Atan2(sign*x, sign*(p.rho0-y))
	ts := math.Pow(rho/(p.a*p.bigF), 1/p.n)

	phi, err := phi2z(p.e, ts)
	if err != nil {
		return 0, 0, err
	}

	lon := adjustLonDeg((theta/p.n + p.lambda0) * rad2deg)
	lat := phi * rad2deg

	if err := checkResult("lon", "lat", lon, lat); err != nil {
		return 0, 0, err
	}
	return lon, lat, nil
}
