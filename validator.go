package fieldvet

import (
	"fmt"
	"reflect"
)

// validationContext carries per-call data shared by message formatting:
// display-name overrides and the humanization flag. Created per
// Validate call, discarded after.
type validationContext struct {
	names    map[string]string
	humanize bool
}

// Option adjusts a single Validate call.
type Option func(*validationContext)

// WithDisplayName overrides the display name used in messages for one
// field of this call.
func WithDisplayName(field, displayName string) Option {
	return func(ctx *validationContext) {
		if ctx.names == nil {
			ctx.names = make(map[string]string)
		}
		ctx.names[field] = displayName
	}
}

// WithHumanizedNames derives display names from Go field names by
// splitting camel case and title-casing the words, e.g. "firstName"
// becomes "First Name". Explicit display names still win.
func WithHumanizedNames() Option {
	return func(ctx *validationContext) {
		ctx.humanize = true
	}
}

func (ctx *validationContext) displayName(d FieldDescriptor) string {
	if name, ok := ctx.names[d.name]; ok {
		return name
	}
	if d.displayName != "" {
		return d.displayName
	}
	if ctx.humanize {
		return humanizeFieldName(d.name)
	}
	return d.name
}

// Validate evaluates every constraint declared on the model's fields
// against the instance's current values and returns the collected
// violations. Fields are visited in declaration order and every
// constraint on a field is evaluated even after an earlier one on the
// same field has failed, so one field can contribute several
// violations.
//
// The error return is reserved for configuration problems: a malformed
// declaration discovered while building the type's descriptors, or a
// model that is not a struct. Data failures never produce an error;
// inspect the Result.
func Validate(model any, opts ...Option) (Result, error) {
	v := reflect.ValueOf(model)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return Result{}, fmt.Errorf("fieldvet: %w, got nil %T", ErrNotStruct, model)
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return Result{}, fmt.Errorf("fieldvet: %w, got %T", ErrNotStruct, model)
	}

	descs, err := defaultRegistry.descriptors(v.Type())
	if err != nil {
		return Result{}, err
	}

	ctx := &validationContext{}
	for _, opt := range opts {
		opt(ctx)
	}

	var violations Violations
	for _, d := range descs {
		display := ctx.displayName(d)
		value := d.value(v)
		for _, c := range d.constraints {
			if !c.IsSatisfied(value) {
				violations.Add(Violation{
					Field:   d.name,
					Kind:    c.Kind(),
					Message: c.Message(display),
				})
			}
		}
	}

	return Result{violations: violations}, nil
}
