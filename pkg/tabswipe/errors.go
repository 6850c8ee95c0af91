package tabswipe

import (
	"errors"
	"fmt"
)

// Sentinel errors returned while building a Controller.
var (
	// ErrNilBridge indicates a Controller was created without a NavigationBridge.
	ErrNilBridge = errors.New("navigation bridge is nil")

	// ErrNoRoutes indicates the bridge reported an empty route order.
	ErrNoRoutes = errors.New("route order is empty")

	// ErrDuplicateRoute indicates the route order lists the same route twice.
	ErrDuplicateRoute = errors.New("route order contains a duplicate route")

	// ErrIndexOutOfRange indicates the bridge's current index is outside the route order.
	ErrIndexOutOfRange = errors.New("current index out of range")
)

// ConfigError reports a configuration value that failed validation.
type ConfigError struct {
	Field  string // Config field name, e.g. "DistanceThresholdPx"
	Value  any    // Offending value
	Reason string // What the value must satisfy
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tabswipe: invalid config %s=%v: %s", e.Field, e.Value, e.Reason)
}

// IsConfigError checks if an error is a configuration validation error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}

// InfrastructureError represents a failure in a platform binding (opening an
// input device, initializing SDL, rasterizing an icon). The gesture core
// itself never produces these.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "open_device", "sdl_init")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tabswipe: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("tabswipe: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
