package mappers

import "fmt"

// ConfigurationError reports construction-time parameters that do not
// describe a valid ellipsoid or projection. It is only ever returned by
// constructors; call-time failures use DomainError or ConvergenceError.
type ConfigurationError struct {
	Param      string  // offending parameter name
	Value      float64 // offending value
	Constraint string  // constraint that was violated
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s = %v: %s", e.Param, e.Value, e.Constraint)
}

// DomainError reports a call-time coordinate outside the mathematically
// valid input domain of the operation.
type DomainError struct {
	Param      string  // offending input name
	Value      float64 // offending value
	Constraint string  // constraint that was violated
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("coordinate out of domain: %s = %v: %s", e.Param, e.Value, e.Constraint)
}

// ConvergenceError reports an iterative inverse that did not reach the
// required tolerance within its iteration budget. It carries the last
// latitude estimate (radians) and the number of iterations performed.
type ConvergenceError struct {
	Op           string  // operation that failed to converge
	Iterations   int     // iterations performed before giving up
	LastEstimate float64 // last latitude estimate in radians
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s did not converge after %d iterations (last estimate %v rad)",
		e.Op, e.Iterations, e.LastEstimate)
}
