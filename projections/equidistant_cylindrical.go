package projections

import (
	"math"

	"github.com/ScaleWeather/mappers"
)

// EquidistantCylindrical is the equirectangular projection (plate carrée in
// its default form), Snyder (1987) chapter 12. Meridians and parallels are
// equidistant straight lines crossing at right angles; the projection is
// neither equal-area nor conformal and is defined only for the sphere, so it
// always uses the mappers.Sphere radius.
type EquidistantCylindrical struct {
	lambda0 float64 // reference longitude [rad]
	phi0    float64 // reference latitude [rad]
	r       float64 // sphere radius [m]
	rCosPar float64 // radius scaled by the standard parallel's cosine [m]
}

// NewEquidistantCylindrical constructs the projection from a reference
// longitude and latitude (the planar origin) and the standard parallel
// along which scale is true. All three set to 0 gives plate carrée.
func NewEquidistantCylindrical(refLon, refLat, stdPar float64) (EquidistantCylindrical, error) {
	if err := cfgRange("refLon", refLon, -180, 180); err != nil {
		return EquidistantCylindrical{}, err
	}
	if err := cfgRangeOpen("refLat", refLat, -90, 90); err != nil {
		return EquidistantCylindrical{}, err
	}
	if err := cfgRangeOpen("stdPar", stdPar, -90, 90); err != nil {
		return EquidistantCylindrical{}, err
	}

	r := mappers.Sphere.A
	return EquidistantCylindrical{
		lambda0: refLon * deg2rad,
		phi0:    refLat * deg2rad,
		r:       r,
		rCosPar: r * math.Cos(stdPar*deg2rad),
	}, nil
}

// Project forward-projects geographic coordinates in degrees.
func (p EquidistantCylindrical) Project(lon, lat float64) (float64, float64, error) {
	if err := checkGeoDomain(lon, lat); err != nil {
		return 0, 0, err
	}
	x := p.rCosPar * adjustLonRad(lon*deg2rad-p.lambda0)
	y := p.r * (lat*deg2rad - p.phi0)
	return x, y, nil
}

// InverseProject recovers geographic coordinates in degrees. Northings that
// would place the latitude beyond a pole are outside the map.
func (p EquidistantCylindrical) InverseProject(x, y float64) (float64, float64, error) {
	if err := checkPlanarDomain(x, y); err != nil {
		return 0, 0, err
	}
	lat := (y/p.r + p.phi0) * rad2deg
	if lat < -90 || lat > 90 {
		return 0, 0, &mappers.DomainError{
			Param: "y", Value: y, Constraint: "northing lies beyond the pole",
		}
	}
	lon := adjustLonDeg((x/p.rCosPar + p.lambda0) * rad2deg)
	return lon, lat, nil
}
