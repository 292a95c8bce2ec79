package projections

import "math"

// ObliqueLonLat is the rotated-pole transformation (Snyder 1987, eqs. 5-7 to
// 5-10b): the graticule is rotated so an arbitrary point serves as the
// coordinate system's north pole, which lets a region of interest sit near
// the rotated equator where grid distortion is smallest. Widely used for
// regional numerical weather-model grids.
//
// Unlike the other variants, both coordinate spaces are angular: Project
// returns rotated longitude/latitude in degrees, not meters.
type ObliqueLonLat struct {
	lambdaP float64 // rotated-pole longitude [rad]
	sinPhiP float64
	cosPhiP float64
	lon0    float64 // central meridian [deg]
}

// NewObliqueLonLat constructs the transformation from the geographic
// longitude and latitude of the rotated pole and a central meridian.
func NewObliqueLonLat(poleLon, poleLat, centralLon float64) (ObliqueLonLat, error) {
	if err := cfgRange("poleLon", poleLon, -180, 180); err != nil {
		return ObliqueLonLat{}, err
	}
	if err := cfgRange("poleLat", poleLat, -90, 90); err != nil {
		return ObliqueLonLat{}, err
	}
	if err := cfgRange("centralLon", centralLon, -180, 180); err != nil {
		return ObliqueLonLat{}, err
	}

	phiP := poleLat * deg2rad
	return ObliqueLonLat{
		lambdaP: poleLon * deg2rad,
		sinPhiP: math.Sin(phiP),
		cosPhiP: math.Cos(phiP),
		lon0:    centralLon,
	}, nil
}

// Project rotates geographic coordinates into the oblique system. Both
// inputs and outputs are degrees.
func (p ObliqueLonLat) Project(lon, lat float64) (float64, float64, error) {
	if err := checkGeoDomain(lon, lat); err != nil {
		return 0, 0, err
	}

	lam := (lon - p.lon0) * deg2rad
	phi := lat * deg2rad

	sinLam, cosLam := math.Sincos(lam)
	sinPhi, cosPhi := math.Sincos(phi)

	lamPrime := math.Atan2(cosPhi*sinLam, p.sinPhiP*cosPhi*cosLam+p.cosPhiP*sinPhi) + p.lambdaP
	phiPrime := math.Asin(p.sinPhiP*sinPhi - p.cosPhiP*cosPhi*cosLam)

	return adjustLonDeg(lamPrime * rad2deg), phiPrime * rad2deg, nil
}

// InverseProject rotates oblique coordinates back to the geographic system.
func (p ObliqueLonLat) InverseProject(x, y float64) (float64, float64, error) {
	if err := checkGeoDomain(x, y); err != nil {
		return 0, 0, err
	}

	lamPrime := x*deg2rad - p.lambdaP
	phiPrime := y * deg2rad

	sinLamR, cosLamR := math.Sincos(lamPrime)
	sinPhiR, cosPhiR := math.Sincos(phiPrime)

	lam := math.Atan2(cosPhiR*sinLamR, p.sinPhiP*cosPhiR*cosLamR-p.cosPhiP*sinPhiR)
	phi := math.Asin(p.sinPhiP*sinPhiR + p.cosPhiP*cosPhiR*cosLamR)

	return adjustLonDeg(lam*rad2deg + p.lon0), phi * rad2deg, nil
}
