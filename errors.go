package spark

import "fmt"

// ConfigError reports an invalid engine, canvas, or preset configuration:
// a nil or zero-sized drawing surface, an unknown state name or value, or
// a config preset that cannot be resolved. It is returned synchronously by
// the violating call and never retried or recovered internally.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "spark: config: " + e.Reason
}

// ValidationError reports a contract violation on a GameObject: a missing
// render routine, a non-finite position or velocity component, or an
// acceleration outside [0, 1]. Like ConfigError it represents programmer
// misuse, not a runtime failure.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "spark: validation: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
