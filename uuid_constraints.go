package fieldvet

import (
	"reflect"

	"github.com/google/uuid"
)

type uuidConstraint struct{}

// UUID validates that a string field holds a standard UUID. Length and
// hyphen positions are checked before parsing to reject obvious
// non-UUIDs cheaply.
func UUID() Constraint { return uuidConstraint{} }

func (uuidConstraint) Kind() Kind { return KindUUID }

func (uuidConstraint) IsSatisfied(value any) bool {
	s, ok := value.(string)
	if !ok {
		v := reflect.ValueOf(value)
		if !v.IsValid() || v.Kind() != reflect.String {
			return false
		}
		s = v.String()
	}

	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}

func (uuidConstraint) Message(field string) string {
	return expandTemplate(msgUUID, map[string]string{"field": field})
}

func (uuidConstraint) checkType(t reflect.Type) error {
	if t.Kind() != reflect.String {
		return ErrNonStringField
	}
	return nil
}
