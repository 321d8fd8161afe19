package fieldvet

import "reflect"

// FieldDescriptor binds one validated field to its accessor and its
// ordered constraints. Descriptors are built once per model type and
// never mutated afterwards.
type FieldDescriptor struct {
	name        string
	displayName string
	index       []int
	constraints []Constraint
}

// Name returns the Go field name.
func (d FieldDescriptor) Name() string { return d.name }

// DisplayName returns the declared display name, or "" when the field
// relies on the default.
func (d FieldDescriptor) DisplayName() string { return d.displayName }

// Constraints returns a copy of the field's constraints in declaration order.
func (d FieldDescriptor) Constraints() []Constraint {
	out := make([]Constraint, len(d.constraints))
	copy(out, d.constraints)
	return out
}

// value reads the field from a struct value, dereferencing pointers. A
// nil pointer reads as the zero value of its element type so that every
// constraint sees a concrete value snapshot.
func (d FieldDescriptor) value(model reflect.Value) any {
	v := model.FieldByIndex(d.index)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			elem := v.Type().Elem()
			for elem.Kind() == reflect.Pointer {
				elem = elem.Elem()
			}
			return reflect.Zero(elem).Interface()
		}
		v = v.Elem()
	}
	return v.Interface()
}

// checkConstraint runs a constraint's construction-time checks against
// the field type it is declared on.
func checkConstraint(c Constraint, fieldType reflect.Type, model, field string) error {
	if cc, ok := c.(configChecker); ok {
		if err := cc.configErr(); err != nil {
			return newConfigError(model, field, c.Kind(), err)
		}
	}

	t := fieldType
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if tc, ok := c.(typeChecker); ok {
		if err := tc.checkType(t); err != nil {
			return newConfigError(model, field, c.Kind(), err)
		}
	}
	return nil
}

// FieldSchema declares the constraints for one field when a model is
// registered explicitly instead of through struct tags.
type FieldSchema struct {
	name        string
	displayName string
	constraints []Constraint
}

// Field declares constraints for the named struct field.
func Field(name string, constraints ...Constraint) FieldSchema {
	return FieldSchema{name: name, constraints: constraints}
}

// As sets the display name used in formatted messages.
func (f FieldSchema) As(displayName string) FieldSchema {
	f.displayName = displayName
	return f
}
