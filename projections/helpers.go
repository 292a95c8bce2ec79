// Package projections provides the concrete projection variants. Every
// variant is an immutable value type constructed by a validating factory and
// implements the mappers.Projection interface.
package projections

import (
	"math"
	"strconv"

	"github.com/ScaleWeather/mappers"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
	halfPi  = math.Pi / 2

	// Bounds of the iterative isometric-latitude inversion shared by the
	// conformal variants.
	phiTolerance = 1e-10 // radians
	phiMaxIter   = 15
)

// adjustLonRad wraps a longitude difference in radians into (-pi, pi] so
// angles stay well-defined across the anti-meridian.
func adjustLonRad(lon float64) float64 {
	if lon > math.Pi {
		return lon - 2*math.Pi
	}
	if lon <= -math.Pi {
		return lon + 2*math.Pi
	}
	return lon
}

// adjustLonDeg wraps a longitude in degrees into (-180, 180].
func adjustLonDeg(lon float64) float64 {
	if lon > 180 {
		return lon - 360
	}
	if lon <= -180 {
		return lon + 360
	}
	return lon
}

// tsfnz computes the isometric-latitude ratio t of Snyder eq. 15-9 for
// latitude phi (radians) on an ellipsoid with first eccentricity e.
func tsfnz(e, phi, sinphi float64) float64 {
	con := e * sinphi
	return math.Tan(math.Pi/4-phi/2) / math.Pow((1-con)/(1+con), e/2)
}

// msfnz computes the parallel-radius factor m of Snyder eq. 14-15.
func msfnz(e, sinphi, cosphi float64) float64 {
	return cosphi / math.Sqrt(1-e*e*sinphi*sinphi)
}

// phi2z inverts the isometric-latitude relationship, recovering geographic
// latitude (radians) from t. There is no closed form on an ellipsoid: the
// fixed-point iteration of Snyder eq. 7-9 starts from the spherical
// approximation and stops when successive estimates differ by less than
// phiTolerance, or fails with a *mappers.ConvergenceError after phiMaxIter
// iterations.
func phi2z(e, ts float64) (float64, error) {
	phi := halfPi - 2*math.Atan(ts)
	for i := 0; i < phiMaxIter; i++ {
		con := e * math.Sin(phi)
		dphi := halfPi - 2*math.Atan(ts*math.Pow((1-con)/(1+con), e/2)) - phi
		phi += dphi
		if math.Abs(dphi) <= phiTolerance {
			return phi, nil
		}
	}
	return 0, &mappers.ConvergenceError{
		Op:           "isometric latitude inversion",
		Iterations:   phiMaxIter,
		LastEstimate: phi,
	}
}

// mlfn computes the meridional arc length from the equator to latitude phi
// (radians), Snyder eq. 3-21.
func mlfn(a, e2, phi float64) float64 {
	e4 := e2 * e2
	e6 := e4 * e2
	return a * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))
}

// Constructor-time parameter checks.

func cfgFinite(param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &mappers.ConfigurationError{Param: param, Value: v, Constraint: "must be finite"}
	}
	return nil
}

func cfgRange(param string, v, min, max float64) error {
	if err := cfgFinite(param, v); err != nil {
		return err
	}
	if v < min || v > max {
		return &mappers.ConfigurationError{Param: param, Value: v,
			Constraint: "must be within [" + formatBound(min) + ", " + formatBound(max) + "]"}
	}
	return nil
}

func cfgRangeOpen(param string, v, min, max float64) error {
	if err := cfgFinite(param, v); err != nil {
		return err
	}
	if v <= min || v >= max {
		return &mappers.ConfigurationError{Param: param, Value: v,
			Constraint: "must be within (" + formatBound(min) + ", " + formatBound(max) + ")"}
	}
	return nil
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Call-time domain checks.

// checkGeoDomain validates a geographic input pair in degrees.
func checkGeoDomain(lon, lat float64) error {
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return &mappers.DomainError{Param: "lon", Value: lon, Constraint: "must be finite"}
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return &mappers.DomainError{Param: "lat", Value: lat, Constraint: "must be finite"}
	}
	if lon < -180 || lon > 180 {
		return &mappers.DomainError{Param: "lon", Value: lon, Constraint: "must be within [-180, 180]"}
	}
	if lat < -90 || lat > 90 {
		return &mappers.DomainError{Param: "lat", Value: lat, Constraint: "must be within [-90, 90]"}
	}
	return nil
}

// checkPlanarDomain validates a planar input pair.
func checkPlanarDomain(x, y float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return &mappers.DomainError{Param: "x", Value: x, Constraint: "must be finite"}
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return &mappers.DomainError{Param: "y", Value: y, Constraint: "must be finite"}
	}
	return nil
}

// checkResult guards against silently returning NaN or infinity when an
// input slips past the explicit domain checks (e.g. a planar point with no
// geographic preimage). aName and bName name the output pair.
func checkResult(aName, bName string, a, b float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return &mappers.DomainError{Param: aName, Value: a, Constraint: "input has no finite image under this projection"}
	}
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return &mappers.DomainError{Param: bName, Value: b, Constraint: "input has no finite image under this projection"}
	}
	return nil
}
