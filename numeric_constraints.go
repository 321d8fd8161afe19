package fieldvet

import (
	"reflect"
	"strconv"
)

// numericValue widens any integer, unsigned, or float value to float64
// for bound comparison. Non-numeric values report false.
func numericValue(value any) (float64, bool) {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func checkNumericType(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	}
	return ErrNonNumericField
}

type minConstraint struct {
	min float64
}

// Min validates that a numeric field is greater than or equal to min.
func Min(min float64) Constraint { return minConstraint{min: min} }

func (minConstraint) Kind() Kind { return KindMin }

func (c minConstraint) IsSatisfied(value any) bool {
	n, ok := numericValue(value)
	return ok && n >= c.min
}

func (c minConstraint) Message(field string) string {
	return expandTemplate(msgMin, map[string]string{
		"field": field,
		"min":   formatBound(c.min),
	})
}

func (minConstraint) checkType(t reflect.Type) error { return checkNumericType(t) }

type maxConstraint struct {
	max float64
}

// Max validates that a numeric field is less than or equal to max.
func Max(max float64) Constraint { return maxConstraint{max: max} }

func (maxConstraint) Kind() Kind { return KindMax }

func (c maxConstraint) IsSatisfied(value any) bool {
	n, ok := numericValue(value)
	return ok && n <= c.max
}

func (c maxConstraint) Message(field string) string {
	return expandTemplate(msgMax, map[string]string{
		"field": field,
		"max":   formatBound(c.max),
	})
}

func (maxConstraint) checkType(t reflect.Type) error { return checkNumericType(t) }
