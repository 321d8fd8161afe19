package fieldvet

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind identifies a constraint family. It is carried on every Violation
// so callers can react to the rule that failed, not just its message.
type Kind string

const (
	KindRequired   Kind = "required"
	KindPattern    Kind = "pattern"
	KindNotPattern Kind = "not_pattern"
	KindMaxLen     Kind = "max_len"
	KindMinLen     Kind = "min_len"
	KindMin        Kind = "min"
	KindMax        Kind = "max"
	KindOneOf      Kind = "one_of"
	KindUUID       Kind = "uuid"
	KindCustom     Kind = "custom"
)

// Constraint is a single declarative rule evaluated against one field's
// value. Implementations are immutable once constructed and must be
// pure: no side effects, no retained state between evaluations.
type Constraint interface {
	Kind() Kind
	IsSatisfied(value any) bool
	Message(field string) string
}

// configChecker reports a construction-time problem with a constraint's
// parameters. The registry consults it while building descriptors so
// that malformed declarations fail as ConfigurationError instead of
// misbehaving silently at validation time.
type configChecker interface {
	configErr() error
}

// typeChecker restricts a constraint to compatible field types. Checked
// once per declaration at registry-build time against the field's type
// (pointers dereferenced).
type typeChecker interface {
	checkType(t reflect.Type) error
}

// Default message templates. Placeholders in braces are expanded when a
// violation is recorded.
const (
	msgRequired   = "The {field} field is required."
	msgPattern    = "The {field} field does not match the required pattern."
	msgNotPattern = "The {field} field must not match the excluded pattern."
	msgMaxLen     = "The {field} field exceeds the maximum length of {max}."
	msgMinLen     = "The {field} field must be at least {min} characters long."
	msgMin        = "The {field} field must be at least {min}."
	msgMax        = "The {field} field must be at most {max}."
	msgOneOf      = "The {field} field must be one of: {values}."
	msgUUID       = "The {field} field must be a valid UUID."
)

func expandTemplate(template string, params map[string]string) string {
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// stringForm converts a value to its canonical string form for
// pattern-style constraints: string kinds directly, fmt.Stringer if
// implemented, anything else through fmt.Sprint.
func stringForm(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	v := reflect.ValueOf(value)
	if v.IsValid() && v.Kind() == reflect.String {
		return v.String()
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(value)
}

// requiredConstraint fails when the value equals its type's zero value.
type requiredConstraint struct{}

// Required validates that a field holds something other than its type's
// zero value. A nil pointer counts as absent, as does a pointer to the
// zero value of its element type.
func Required() Constraint { return requiredConstraint{} }

func (requiredConstraint) Kind() Kind { return KindRequired }

func (requiredConstraint) IsSatisfied(value any) bool {
	if value == nil {
		return false
	}
	return !reflect.ValueOf(value).IsZero()
}

func (requiredConstraint) Message(field string) string {
	return expandTemplate(msgRequired, map[string]string{"field": field})
}

// customConstraint wraps an arbitrary predicate supplied by the caller.
type customConstraint struct {
	name      string
	predicate func(value any) bool
	template  string
}

// Custom builds a constraint from an arbitrary predicate. It is only
// available through the schema builder; there is no tag token for it.
// The message template may reference {field}.
func Custom(name string, predicate func(value any) bool, messageTemplate string) Constraint {
	return customConstraint{name: name, predicate: predicate, template: messageTemplate}
}

func (customConstraint) Kind() Kind { return KindCustom }

func (c customConstraint) IsSatisfied(value any) bool {
	return c.predicate(value)
}

func (c customConstraint) Message(field string) string {
	return expandTemplate(c.template, map[string]string{"field": field})
}

func (c customConstraint) configErr() error {
	if c.predicate == nil {
		return ErrNilPredicate
	}
	if strings.TrimSpace(c.name) == "" || strings.TrimSpace(c.template) == "" {
		return ErrInvalidParameter
	}
	return nil
}
