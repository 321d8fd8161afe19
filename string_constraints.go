package fieldvet

import (
	"reflect"
	"strconv"
)

type maxLenConstraint struct {
	max int
}

// MaxLen validates that a string field does not exceed max bytes.
// Declaring it on a non-string field is a configuration error.
func MaxLen(max int) Constraint { return maxLenConstraint{max: max} }

func (maxLenConstraint) Kind() Kind { return KindMaxLen }

func (c maxLenConstraint) IsSatisfied(value any) bool {
	s, ok := value.(string)
	if !ok {
		v := reflect.ValueOf(value)
		if !v.IsValid() || v.Kind() != reflect.String {
			return false
		}
		s = v.String()
	}
	return len(s) <= c.max
}

func (c maxLenConstraint) Message(field string) string {
	return expandTemplate(msgMaxLen, map[string]string{
		"field": field,
		"max":   strconv.Itoa(c.max),
	})
}

func (c maxLenConstraint) configErr() error {
	if c.max < 0 {
		return ErrNegativeBound
	}
	return nil
}

func (maxLenConstraint) checkType(t reflect.Type) error {
	if t.Kind() != reflect.String {
		return ErrNonStringField
	}
	return nil
}

type minLenConstraint struct {
	min int
}

// MinLen validates that a string field holds at least min bytes.
func MinLen(min int) Constraint { return minLenConstraint{min: min} }

func (minLenConstraint) Kind() Kind { return KindMinLen }

func (c minLenConstraint) IsSatisfied(value any) bool {
	s, ok := value.(string)
	if !ok {
		v := reflect.ValueOf(value)
		if !v.IsValid() || v.Kind() != reflect.String {
			return false
		}
		s = v.String()
	}
	return len(s) >= c.min
}

func (c minLenConstraint) Message(field string) string {
	return expandTemplate(msgMinLen, map[string]string{
		"field": field,
		"min":   strconv.Itoa(c.min),
	})
}

func (c minLenConstraint) configErr() error {
	if c.min < 0 {
		return ErrNegativeBound
	}
	return nil
}

func (minLenConstraint) checkType(t reflect.Type) error {
	if t.Kind() != reflect.String {
		return ErrNonStringField
	}
	return nil
}
