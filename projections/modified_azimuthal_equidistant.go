package projections

import (
	"math"

	"github.com/ScaleWeather/mappers"
)

// ModifiedAzimuthalEquidistant is the closed-form small-scale variant of the
// azimuthal equidistant projection described by Snyder (1987) chapter 25 for
// the islands of Micronesia. Distances and azimuths measured from the center
// are true; away from the center the series diverges from the exact
// geodesic-based projection, so the variant is intended for regional maps of
// a few hundred kilometers around the reference point.
type ModifiedAzimuthalEquidistant struct {
	lambda0 float64 // reference longitude [rad]
	phi0    float64 // reference latitude [rad]
	n1      float64 // radius of curvature in the prime vertical at phi0 [m]
	g       float64
	a       float64
	e       float64
	e2      float64
}

// NewModifiedAzimuthalEquidistant constructs the projection centered on the
// given reference longitude and latitude, on the given ellipsoid.
func NewModifiedAzimuthalEquidistant(refLon, refLat float64, ellps mappers.Ellipsoid) (ModifiedAzimuthalEquidistant, error) {
	if err := cfgRange("refLon", refLon, -180, 180); err != nil {
		return ModifiedAzimuthalEquidistant{}, err
	}
	if err := cfgRangeOpen("refLat", refLat, -90, 90); err != nil {
		return ModifiedAzimuthalEquidistant{}, err
	}

	phi0 := refLat * deg2rad
	sinphi0 := math.Sin(phi0)

	return ModifiedAzimuthalEquidistant{
		lambda0: refLon * deg2rad,
		phi0:    phi0,
		n1:      ellps.A / math.Sqrt(1-ellps.E2*sinphi0*sinphi0),
		g:       ellps.E * sinphi0 / math.Sqrt(1-ellps.E2),
		a:       ellps.A,
		e:       ellps.E,
		e2:      ellps.E2,
	}, nil
}

// Project forward-projects geographic coordinates in degrees, Snyder
// eqs. 25-1 to 25-15.
func (p ModifiedAzimuthalEquidistant) Project(lon, lat float64) (float64, float64, error) {
	if err := checkGeoDomain(lon, lat); err != nil {
		return 0, 0, err
	}

	lam := lon * deg2rad
	phi := lat * deg2rad
	dlam := adjustLonRad(lam - p.lambda0)

	sinphi := math.Sin(phi)
	n := p.a / math.Sqrt(1-p.e2*sinphi*sinphi)

	psi := math.Atan((1-p.e2)*math.Tan(phi) +
		p.e2*p.n1*math.Sin(p.phi0)/(n*math.Cos(phi)))

	az := math.Atan2(math.Sin(dlam),
		math.Cos(p.phi0)*math.Tan(psi)-math.Sin(p.phi0)*math.Cos(dlam))

	sinAz := math.Sin(az)
	var s float64
	if math.Abs(sinAz) < 1e-12 {
		// Point on the central meridian: the general formula divides by
		// sin(az). The angular distance stays non-negative; az alone
		// carries the direction (0 due north, pi due south).
		s = math.Abs(math.Asin(math.Cos(p.phi0)*math.Sin(psi) - math.Sin(p.phi0)*math.Cos(psi)))
	} else {
		s = math.Asin(math.Sin(dlam) * math.Cos(psi) / sinAz)
	}

	h := p.e * math.Cos(p.phi0) * math.Cos(az) / math.Sqrt(1-p.e2)
	h2 := h * h
	g := p.g

	c := p.n1 * s * (1 -
		s*s*h2*(1-h2)/6 +
		(s*s*s/8)*g*h*(1-2*h2) +
		(math.Pow(s, 4)/120)*(h2*(4-7*h2)-3*g*g*(1-7*h2)) -
		(math.Pow(s, 5)/48)*g*h)

	x := c * sinAz
	y := c * math.Cos(az)

	if err := checkResult("x", "y", x, y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// InverseProject recovers geographic coordinates in degrees, Snyder
// eqs. 25-16 to 25-27. Planar points beyond the series' usable radius have
// no finite preimage and yield a *DomainError.
func (p ModifiedAzimuthalEquidistant) InverseProject(x, y float64) (float64, float64, error) {
	if err := checkPlanarDomain(x, y); err != nil {
		return 0, 0, err
	}
	if x == 0 && y == 0 {
		return adjustLonDeg(p.lambda0 * rad2deg), p.phi0 * rad2deg, nil
	}

	c := math.Hypot(x, y)
	az := math.Atan2(x, y)
	cosAz := math.Cos(az)

	bigA := -p.e2 * math.Pow(math.Cos(p.phi0), 2) * cosAz * cosAz / (1 - p.e2)
	bigB := 3 * p.e2 * (1 - bigA) * math.Sin(p.phi0) * math.Cos(p.phi0) * cosAz / (1 - p.e2)
	bigD := c / p.n1
	bigE := bigD -
		bigA*(1+bigA)*math.Pow(bigD, 3)/6 -
		bigB*(1+3*bigA)*math.Pow(bigD, 4)/24
	bigF := 1 - bigA*bigE*bigE/2 - bigB*math.Pow(bigE, 3)/6

	psi := math.Asin(math.Sin(p.phi0)*math.Cos(bigE) +
		math.Cos(p.phi0)*math.Sin(bigE)*cosAz)

	lon := adjustLonDeg((p.lambda0 + math.Asin(math.Sin(az)*math.Sin(bigE)/math.Cos(psi))) * rad2deg)
	lat := math.Atan((1-p.e2*bigF*math.Sin(p.phi0)/math.Sin(psi))*
		math.Tan(psi)/(1-p.e2)) * rad2deg

	if err := checkResult("lon", "lat", lon, lat); err != nil {
		return 0, 0, err
	}
	return lon, lat, nil
}
