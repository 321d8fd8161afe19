package fieldvet

import (
	"errors"
	"fmt"
)

// Sentinel errors for declaration problems. They surface wrapped inside
// a ConfigurationError so callers can match them with errors.Is.
var (
	// ErrNotStruct is returned when the validated value is not a struct
	// or a non-nil pointer to one.
	ErrNotStruct = errors.New("model must be a struct or non-nil pointer to struct")

	// ErrUnknownField is returned when a schema names a field the model
	// does not declare.
	ErrUnknownField = errors.New("field is not declared on the model")

	// ErrUnexportedField is returned when constraints are declared on a
	// field the engine cannot read.
	ErrUnexportedField = errors.New("constraint declared on unexported field")

	// ErrUnknownToken is returned for an unrecognized token in a checks tag.
	ErrUnknownToken = errors.New("unknown constraint token")

	// ErrMissingParameter is returned when a tag token omits a required parameter.
	ErrMissingParameter = errors.New("constraint requires a parameter")

	// ErrInvalidParameter is returned when a constraint parameter cannot be parsed.
	ErrInvalidParameter = errors.New("invalid constraint parameter")

	// ErrNegativeBound is returned for a negative length bound.
	ErrNegativeBound = errors.New("length bound must not be negative")

	// ErrNonStringField is returned when a string-only constraint is
	// declared on a non-string field.
	ErrNonStringField = errors.New("constraint applies only to string fields")

	// ErrNonNumericField is returned when a numeric bound is declared on
	// a non-numeric field.
	ErrNonNumericField = errors.New("constraint applies only to numeric fields")

	// ErrAlreadyRegistered is returned when a schema is registered for a
	// type whose descriptors already exist.
	ErrAlreadyRegistered = errors.New("schema already registered for model type")

	// ErrNilPredicate is returned for a Custom constraint without a predicate.
	ErrNilPredicate = errors.New("custom constraint requires a predicate")
)

// ConfigurationError reports a malformed constraint declaration. It is
// a programmer error: it surfaces at registry-build time, names the
// offending model field and constraint kind, and is never represented
// as a Violation.
type ConfigurationError struct {
	Model string
	Field string
	Kind  Kind
	cause error
}

func newConfigError(model, field string, kind Kind, cause error) *ConfigurationError {
	return &ConfigurationError{Model: model, Field: field, Kind: kind, cause: cause}
}

func (e *ConfigurationError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("fieldvet: invalid declaration on %s.%s: %v", e.Model, e.Field, e.cause)
	}
	return fmt.Sprintf("fieldvet: invalid %s declaration on %s.%s: %v", e.Kind, e.Model, e.Field, e.cause)
}

func (e *ConfigurationError) Unwrap() error { return e.cause }

// IsConfigurationError reports whether err wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
