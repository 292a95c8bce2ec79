package projections

import (
	"math"

	"github.com/ScaleWeather/mappers"
)

// Mercator is the cylindrical conformal projection in its ellipsoidal form,
// Snyder (1987) chapter 7. Scale is true along the chosen standard parallel
// (and its mirror image across the equator). The poles map to infinity and
// are outside the projection's domain.
type Mercator struct {
	lambda0 float64 // reference longitude [rad]
	ak0     float64 // semi-major axis times scale along the standard parallel [m]
	e       float64
}

// NewMercator constructs the projection from a reference longitude and a
// standard parallel, on the given ellipsoid. A standard parallel of 0 gives
// the classic equatorial-scale form.
func NewMercator(refLon, stdPar float64, ellps mappers.Ellipsoid) (Mercator, error) {
	if err := cfgRange("refLon", refLon, -180, 180); err != nil {
		return Mercator{}, err
	}
	if err := cfgRangeOpen("stdPar", stdPar, -90, 90); err != nil {
		return Mercator{}, err
	}

	ts := stdPar * deg2rad
	k0 := msfnz(ellps.E, math.Sin(ts), math.Cos(ts))

	return Mercator{
		lambda0: refLon * deg2rad,
		ak0:     ellps.A * k0,
		e:       ellps.E,
	}, nil
}

// Project forward-projects geographic coordinates in degrees. Latitudes of
// exactly ±90° yield a *DomainError.
func (p Mercator) Project(lon, lat float64) (float64, float64, error) {
	if err := checkGeoDomain(lon, lat); err != nil {
		return 0, 0, err
	}
	if math.Abs(lat) == 90 {
		return 0, 0, &mappers.DomainError{
			Param: "lat", Value: lat,
			Constraint: "poles are at infinity on the Mercator projection",
		}
	}

	phi := lat * deg2rad
	x := p.ak0 * adjustLonRad(lon*deg2rad-p.lambda0)
	y := -p.ak0 * math.Log(tsfnz(p.e, phi, math.Sin(phi)))

	if err := checkResult("x", "y", x, y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// InverseProject recovers geographic coordinates in degrees via the
// iterative isometric-latitude inversion shared with the conic conformal
// variant.
func (p Mercator) InverseProject(x, y float64) (float64, float64, error) {
	if err := checkPlanarDomain(x, y); err != nil {
		return 0, 0, err
	}

	phi, err := phi2z(p.e, math.Exp(-y/p.ak0))
	if err != nil {
		return 0, 0, err
	}

	lon := adjustLonDeg((p.lambda0 + x/p.ak0) * rad2deg)
	return lon, phi * rad2deg, nil
}
