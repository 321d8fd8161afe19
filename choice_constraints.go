package fieldvet

import (
	"reflect"
	"strings"
)

type oneOfConstraint struct {
	allowed []string
}

// OneOf validates that a string field equals one of the allowed values.
func OneOf(allowed ...string) Constraint {
	return oneOfConstraint{allowed: allowed}
}

func (oneOfConstraint) Kind() Kind { return KindOneOf }

func (c oneOfConstraint) IsSatisfied(value any) bool {
	s, ok := value.(string)
	if !ok {
		v := reflect.ValueOf(value)
		if !v.IsValid() || v.Kind() != reflect.String {
			return false
		}
		s = v.String()
	}
	for _, allowed := range c.allowed {
		if s == allowed {
			return true
		}
	}
	return false
}

func (c oneOfConstraint) Message(field string) string {
	return expandTemplate(msgOneOf, map[string]string{
		"field":  field,
		"values": strings.Join(c.allowed, ", "),
	})
}

func (c oneOfConstraint) configErr() error {
	if len(c.allowed) == 0 {
		return ErrMissingParameter
	}
	return nil
}

func (oneOfConstraint) checkType(t reflect.Type) error {
	if t.Kind() != reflect.String {
		return ErrNonStringField
	}
	return nil
}
