package projections

import (
	"math"

	"github.com/ScaleWeather/mappers"
)

// The truncated series below lose accuracy quickly away from the central
// meridian; inputs beyond this longitude difference (degrees) are rejected.
const tmercMaxLonDiff = 45.0

// TransverseMercator is the ellipsoidal transverse cylindrical conformal
// projection of Snyder (1987) chapter 8, using the truncated series of
// eqs. 8-9 to 8-17 in both directions. It is the projection underlying UTM
// zones and most national grids; scale is true along the central meridian
// scaled by k0.
type TransverseMercator struct {
	lambda0 float64 // central meridian [rad]
	k0      float64 // scale on the central meridian
	x0, y0  float64 // false easting and northing [m]
	m0      float64 // meridional arc at the reference latitude [m]
	a       float64
	e2, ep2 float64
}

// NewTransverseMercator constructs the projection from a central meridian,
// reference latitude, central scale factor, and false easting/northing, on
// the given ellipsoid. UTM zone 31N, for example, is
// NewTransverseMercator(3, 0, 0.9996, 500000, 0, mappers.WGS84).
func NewTransverseMercator(refLon, refLat, scale, falseEasting, falseNorthing float64, ellps mappers.Ellipsoid) (TransverseMercator, error) {
	if err := cfgRange("refLon", refLon, -180, 180); err != nil {
		return TransverseMercator{}, err
	}
	if err := cfgRangeOpen("refLat", refLat, -90, 90); err != nil {
		return TransverseMercator{}, err
	}
	if err := cfgFinite("scale", scale); err != nil {
		return TransverseMercator{}, err
	}
	if scale <= 0 {
		return TransverseMercator{}, &mappers.ConfigurationError{
			Param: "scale", Value: scale, Constraint: "must be positive",
		}
	}
	if err := cfgFinite("falseEasting", falseEasting); err != nil {
		return TransverseMercator{}, err
	}
	if err := cfgFinite("falseNorthing", falseNorthing); err != nil {
		return TransverseMercator{}, err
	}

	return TransverseMercator{
		lambda0: refLon * deg2rad,
		k0:      scale,
		x0:      falseEasting,
		y0:      falseNorthing,
		m0:      mlfn(ellps.A, ellps.E2, refLat*deg2rad),
		a:       ellps.A,
		e2:      ellps.E2,
		ep2:     ellps.Ep2,
	}, nil
}

// Project forward-projects geographic coordinates in degrees. Points more
// than 45° of longitude from the central meridian are outside the series'
// usable domain and yield a *DomainError.
func (p TransverseMercator) Project(lon, lat float64) (float64, float64, error) {
	if err := checkGeoDomain(lon, lat); err != nil {
		return 0, 0, err
	}

	dlam := adjustLonRad(lon*deg2rad - p.lambda0)
	if math.Abs(dlam) > tmercMaxLonDiff*deg2rad {
		return 0, 0, &mappers.DomainError{
			Param: "lon", Value: lon,
			Constraint: "must be within 45 degrees of the central meridian",
		}
	}

	phi := lat * deg2rad
	m := mlfn(p.a, p.e2, phi)

	// At the poles the meridian convergence terms vanish.
	if math.Abs(lat) == 90 {
		return p.x0, p.y0 + p.k0*(m-p.m0), nil
	}

	sinphi := math.Sin(phi)
	cosphi := math.Cos(phi)
	tanphi := math.Tan(phi)

	nu := p.a / math.Sqrt(1-p.e2*sinphi*sinphi)
	t := tanphi * tanphi
	c := p.ep2 * cosphi * cosphi
	al := dlam * cosphi

	x := p.x0 + p.k0*nu*(al+
		(1-t+c)*al*al*al/6+
		(5-18*t+t*t+72*c-58*p.ep2)*math.Pow(al, 5)/120)
	y := p.y0 + p.k0*(m-p.m0+nu*tanphi*(al*al/2+
		(5-t+9*c+4*c*c)*math.Pow(al, 4)/24+
		(61-58*t+t*t+600*c-330*p.ep2)*math.Pow(al, 6)/720))

	if err := checkResult("x", "y", x, y); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// InverseProject recovers geographic coordinates in degrees through the
// footpoint-latitude series (Snyder eqs. 8-12 to 8-25), the closed
// counterpart of the forward series at the same truncation degree.
func (p TransverseMercator) InverseProject(x, y float64) (float64, float64, error) {
	if err := checkPlanarDomain(x, y); err != nil {
		return 0, 0, err
	}

	m := p.m0 + (y-p.y0)/p.k0
	mu := m / (p.a * (1 - p.e2/4 - 3*p.e2*p.e2/64 - 5*p.e2*p.e2*p.e2/256))

	e1 := (1 - math.Sqrt(1-p.e2)) / (1 + math.Sqrt(1-p.e2))
	phi1 := mu +
		(3*e1/2-27*math.Pow(e1, 3)/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*math.Pow(e1, 4)/32)*math.Sin(4*mu) +
		(151*math.Pow(e1, 3)/96)*math.Sin(6*mu) +
		(1097*math.Pow(e1, 4)/512)*math.Sin(8*mu)

	sinphi1 := math.Sin(phi1)
	cosphi1 := math.Cos(phi1)
	tanphi1 := math.Tan(phi1)

	c1 := p.ep2 * cosphi1 * cosphi1
	t1 := tanphi1 * tanphi1
	n1 := p.a / math.Sqrt(1-p.e2*sinphi1*sinphi1)
	r1 := p.a * (1 - p.e2) / math.Pow(1-p.e2*sinphi1*sinphi1, 1.5)
	d := (x - p.x0) / (n1 * p.k0)

	phi := phi1 - (n1*tanphi1/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c1*c1-9*p.ep2)*math.Pow(d, 4)/24+
		(61+90*t1+298*c1+45*t1*t1-252*p.ep2-3*c1*c1)*math.Pow(d, 6)/720)
	lam := p.lambda0 + (d-
		(1+2*t1+c1)*d*d*d/6+
		(5-2*c1+28*t1-3*c1*c1+8*p.ep2+24*t1*t1)*math.Pow(d, 5)/120)/cosphi1

	lon := adjustLonDeg(lam * rad2deg)
	lat := phi * rad2deg

	if err := checkResult("lon", "lat", lon, lat); err != nil {
		return 0, 0, err
	}
	// The footpoint series can overshoot the pole by a rounding error for
	// northings that land exactly on it.
	if lat > 90 && lat-90 < 1e-9 {
		lat = 90
	}
	if lat < -90 && -90-lat < 1e-9 {
		lat = -90
	}
	if lat < -90 || lat > 90 {
		return 0, 0, &mappers.DomainError{
			Param: "y", Value: y, Constraint: "northing lies beyond the pole",
		}
	}
	return lon, lat, nil
}
