package fieldvet

import (
	"errors"
	"fmt"
	"strings"
)

// Violation records one failed constraint on one field. Field carries
// the Go field name (stable identity for programmatic handling);
// Message is fully formatted with the field's display name.
type Violation struct {
	Field   string
	Kind    Kind
	Message string
}

// Violations is the ordered collection of failures from one validation
// pass: field declaration order first, constraint declaration order
// within a field. It implements the error interface.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (vs *Violations) Add(v Violation) {
	*vs = append(*vs, v)
}

func (vs Violations) Has(field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}

// Get returns every message recorded for a field, in order.
func (vs Violations) Get(field string) []string {
	var messages []string
	for _, v := range vs {
		if v.Field == field {
			messages = append(messages, v.Message)
		}
	}
	return messages
}

// Fields returns the distinct violated field names in first-violation order.
func (vs Violations) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, v := range vs {
		if !seen[v.Field] {
			fields = append(fields, v.Field)
			seen[v.Field] = true
		}
	}
	return fields
}

func (vs Violations) IsEmpty() bool {
	return len(vs) == 0
}

// Result is the complete outcome of one validation call. The zero value
// is a valid (violation-free) result.
type Result struct {
	violations Violations
}

// Valid reports whether the validated instance satisfied every declared
// constraint. It is true exactly when Violations is empty.
func (r Result) Valid() bool {
	return len(r.violations) == 0
}

func (r Result) Violations() Violations {
	return r.violations
}

// Err adapts the result to the error interface: nil when valid, the
// Violations collection otherwise.
func (r Result) Err() error {
	if len(r.violations) == 0 {
		return nil
	}
	return r.violations
}

// ExtractViolations recovers the structured violation collection from
// an error produced by Result.Err, or nil if err carries none.
func ExtractViolations(err error) Violations {
	if err == nil {
		return nil
	}

	var vs Violations
	if errors.As(err, &vs) {
		return vs
	}
	return nil
}

// IsViolationError reports whether err represents validation failures
// rather than a configuration problem.
func IsViolationError(err error) bool {
	if err == nil {
		return false
	}

	var vs Violations
	return errors.As(err, &vs)
}
