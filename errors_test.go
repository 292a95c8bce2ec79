package mappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	cfgErr := &ConfigurationError{Param: "flattening", Value: 1.5, Constraint: "must be within [0, 1)"}
	assert.Equal(t, "invalid configuration: flattening = 1.5: must be within [0, 1)", cfgErr.Error())

	domErr := &DomainError{Param: "lat", Value: 91, Constraint: "must be within [-90, 90]"}
	assert.Equal(t, "coordinate out of domain: lat = 91: must be within [-90, 90]", domErr.Error())

	convErr := &ConvergenceError{Op: "isometric latitude inversion", Iterations: 15, LastEstimate: 1.5}
	assert.Equal(t, "isometric latitude inversion did not converge after 15 iterations (last estimate 1.5 rad)", convErr.Error())
}

func TestErrorKindsAreDistinct(t *testing.T) {
	// The three kinds never match each other through errors.As.
	var err error = &DomainError{Param: "lon"}

	var cfgErr *ConfigurationError
	assert.False(t, errors.As(err, &cfgErr))
	var convErr *ConvergenceError
	assert.False(t, errors.As(err, &convErr))
	var domErr *DomainError
	assert.True(t, errors.As(err, &domErr))
}
