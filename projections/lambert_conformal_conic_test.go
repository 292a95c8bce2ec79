package projections

import (
	"errors"
	"math"
	"testing"

	"github.com/ScaleWeather/mappers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLCCConstructorValidation(t *testing.T) {
	tests := []struct {
		name                         string
		refLon, refLat, stdP1, stdP2 float64
		wantErr                      bool
	}{
		{"valid two parallels", 2, 0, 30, 60, false},
		{"valid southern parallels", 20, -40, -30, -60, false},
		{"coincident parallels tangent form", 30, 30, 40, 40, false},
		{"coincident equatorial parallels", 2, 0, 0, 0, true},
		{"opposite parallels", 2, 0, 30, -30, true},
		{"parallel at pole", 2, 0, 30, 90, true},
		{"reference latitude at pole", 2, 90, 30, 60, true},
		{"longitude out of range", 200, 0, 30, 60, true},
		{"non-finite parallel", 2, 0, math.NaN(), 60, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLambertConformalConic(tt.refLon, tt.refLat, tt.stdP1, tt.stdP2, mappers.WGS84)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var cfgErr *mappers.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}

// Reference values computed with proj for
// +proj=lcc +lon_0=2 +lat_0=0 +lat_1=30 +lat_2=60 +ellps=WGS84 at Mont Blanc.
func TestLCCKnownValues(t *testing.T) {
	lcc, err := NewLambertConformalConic(2.0, 0.0, 30.0, 60.0, mappers.WGS84)
	require.NoError(t, err)

	x, y, err := lcc.Project(6.8651, 45.8326)
	require.NoError(t, err)
	assert.InDelta(t, 364836.4408, x, 1e-3)
	assert.InDelta(t, 5421073.7263, y, 1e-3)

	lon, lat, err := lcc.InverseProject(364836.44, 5421073.73)
	require.NoError(t, err)
	assert.InDelta(t, 6.8651, lon, 1e-6)
	assert.InDelta(t, 45.8326, lat, 1e-6)
}

func TestLCCRoundTrip(t *testing.T) {
	lcc, err := NewLambertConformalConic(2.0, 0.0, 30.0, 60.0, mappers.WGS84)
	require.NoError(t, err)

	lons := []float64{-150, -60, -2, 0, 2, 6.8651, 60, 150}
	lats := []float64{-80, -45, 0, 30, 45.8326, 60, 85, 89.9}

	for _, lon := range lons {
		for _, lat := range lats {
			x, y, err := lcc.Project(lon, lat)
			require.NoError(t, err, "project (%v, %v)", lon, lat)

			gotLon, gotLat, err := lcc.InverseProject(x, y)
			require.NoError(t, err, "inverse (%v, %v)", lon, lat)

			assert.InDelta(t, lon, gotLon, 1e-8, "lon for (%v, %v)", lon, lat)
			assert.InDelta(t, lat, gotLat, 1e-8, "lat for (%v, %v)", lon, lat)
		}
	}
}

func TestLCCTangentForm(t *testing.T) {
	lcc, err := NewLambertConformalConic(30.0, 30.0, 40.0, 40.0, mappers.WGS84)
	require.NoError(t, err)

	// Cone constant of the tangent form is sin of the standard parallel.
	assert.InDelta(t, math.Sin(40*deg2rad), lcc.n, 1e-15)

	x, y, err := lcc.Project(31.48, 31.26)
	require.NoError(t, err)
	assert.InDelta(t, 142538.1256001056, x, 1e-6)
	assert.InDelta(t, 142674.4562594574, y, 1e-6)

	lon, lat, err := lcc.InverseProject(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 31.48, lon, 1e-8)
	assert.InDelta(t, 31.26, lat, 1e-8)
}

func TestLCCPole(t *testing.T) {
	lcc, err := NewLambertConformalConic(2.0, 0.0, 30.0, 60.0, mappers.WGS84)
	require.NoError(t, err)

	// The cone apex projects to x = 0, y = rho0 regardless of longitude.
	x, y, err := lcc.Project(77.0, 90.0)
	require.NoError(t, err)
	assert.InDelta(t, 0, x, 1e-12)
	assert.InDelta(t, lcc.rho0, y, 1e-9)

	// Inverse of the apex is the pole at the reference longitude, without a
	// convergence failure.
	lon, lat, err := lcc.InverseProject(0, lcc.rho0)
	require.NoError(t, err)
	assert.Equal(t, 90.0, lat)
	assert.InDelta(t, 2.0, lon, 1e-12)

	// The opposite pole is at infinite radius.
	_, _, err = lcc.Project(0.0, -90.0)
	var domErr *mappers.DomainError
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, "lat", domErr.Param)
}

func TestLCCAntimeridianWrap(t *testing.T) {
	lcc, err := NewLambertConformalConic(170.0, 0.0, 30.0, 60.0, mappers.WGS84)
	require.NoError(t, err)

	// The raw longitude difference is -345 degrees; the cone angle must be
	// computed from the wrapped +15 degrees.
	x, y, err := lcc.Project(-175.0, 45.0)
	require.NoError(t, err)
	assert.InDelta(t, 1135623.384652642, x, 1e-5)
	assert.InDelta(t, 5427314.86609785, y, 1e-5)

	lon, lat, err := lcc.InverseProject(x, y)
	require.NoError(t, err)
	assert.InDelta(t, -175.0, lon, 1e-8)
	assert.InDelta(t, 45.0, lat, 1e-8)
}

func TestLCCDomainErrors(t *testing.T) {
	lcc, err := NewLambertConformalConic(2.0, 0.0, 30.0, 60.0, mappers.WGS84)
	require.NoError(t, err)

	var domErr *mappers.DomainError

	_, _, err = lcc.Project(181.0, 45.0)
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, "lon", domErr.Param)
	assert.Equal(t, 181.0, domErr.Value)

	_, _, err = lcc.Project(0.0, 91.0)
	require.ErrorAs(t, err, &domErr)
	assert.Equal(t, "lat", domErr.Param)

	_, _, err = lcc.Project(math.NaN(), 45.0)
	require.ErrorAs(t, err, &domErr)

	_, _, err = lcc.InverseProject(math.Inf(1), 0)
	require.ErrorAs(t, err, &domErr)

	// Construction-time and call-time failures are distinct types.
	var cfgErr *mappers.ConfigurationError
	assert.False(t, errors.As(err, &cfgErr))
}
