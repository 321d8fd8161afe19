package fieldvet

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// TagKey is the struct tag consulted during descriptor discovery.
//
// The tag value is a `;`-separated list of tokens, each either a bare
// constraint name or name=parameter:
//
//	Name  string `checks:"required;max_len=50"`
//	Phone string `checks:"required;pattern=^\\d{3}-\\d{4}$"`
//	Plan  string `checks:"oneof=free pro enterprise"`
//
// A value of "-" skips the field. Patterns containing `;` cannot be
// expressed in a tag; register such fields through Register instead.
const TagKey = "checks"

const tagSkip = "-"

// buildTagDescriptors walks a struct type's fields and materializes
// descriptors from their checks tags. Declaration order is the struct's
// field order.
func buildTagDescriptors(t reflect.Type) ([]FieldDescriptor, error) {
	var descs []FieldDescriptor
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup(TagKey)
		if !ok || tag == tagSkip || strings.TrimSpace(tag) == "" {
			continue
		}
		if !sf.IsExported() {
			return nil, newConfigError(t.String(), sf.Name, "", ErrUnexportedField)
		}

		constraints, displayName, err := parseTag(t.String(), sf.Name, tag)
		if err != nil {
			return nil, err
		}
		for _, c := range constraints {
			if err := checkConstraint(c, sf.Type, t.String(), sf.Name); err != nil {
				return nil, err
			}
		}

		descs = append(descs, FieldDescriptor{
			name:        sf.Name,
			displayName: displayName,
			index:       sf.Index,
			constraints: constraints,
		})
	}
	return descs, nil
}

// parseTag translates one tag value into constraints, in token order.
// model and field are carried only for error reporting.
func parseTag(model, field, tag string) ([]Constraint, string, error) {
	var (
		constraints []Constraint
		displayName string
	)

	for _, token := range strings.Split(tag, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		name, param, hasParam := strings.Cut(token, "=")
		name = strings.TrimSpace(name)

		switch name {
		case "required":
			constraints = append(constraints, Required())

		case "pattern", "not_pattern":
			if !hasParam || param == "" {
				return nil, "", newConfigError(model, field, Kind(name), ErrMissingParameter)
			}
			if name == "pattern" {
				constraints = append(constraints, Pattern(param))
			} else {
				constraints = append(constraints, NotPattern(param))
			}

		case "max_len", "min_len":
			n, err := parseIntParam(model, field, Kind(name), param, hasParam)
			if err != nil {
				return nil, "", err
			}
			if name == "max_len" {
				constraints = append(constraints, MaxLen(n))
			} else {
				constraints = append(constraints, MinLen(n))
			}

		case "min", "max":
			f, err := parseFloatParam(model, field, Kind(name), param, hasParam)
			if err != nil {
				return nil, "", err
			}
			if name == "min" {
				constraints = append(constraints, Min(f))
			} else {
				constraints = append(constraints, Max(f))
			}

		case "oneof":
			if !hasParam || strings.TrimSpace(param) == "" {
				return nil, "", newConfigError(model, field, KindOneOf, ErrMissingParameter)
			}
			constraints = append(constraints, OneOf(strings.Fields(param)...))

		case "uuid":
			constraints = append(constraints, UUID())

		case "name":
			if !hasParam || strings.TrimSpace(param) == "" {
				return nil, "", newConfigError(model, field, "name", ErrMissingParameter)
			}
			displayName = param

		default:
			return nil, "", newConfigError(model, field, Kind(name), fmt.Errorf("%w: %q", ErrUnknownToken, name))
		}
	}

	return constraints, displayName, nil
}

func parseIntParam(model, field string, kind Kind, param string, hasParam bool) (int, error) {
	if !hasParam || param == "" {
		return 0, newConfigError(model, field, kind, ErrMissingParameter)
	}
	n, err := strconv.Atoi(param)
	if err != nil {
		return 0, newConfigError(model, field, kind, fmt.Errorf("%w: %q", ErrInvalidParameter, param))
	}
	return n, nil
}

func parseFloatParam(model, field string, kind Kind, param string, hasParam bool) (float64, error) {
	if !hasParam || param == "" {
		return 0, newConfigError(model, field, kind, ErrMissingParameter)
	}
	f, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return 0, newConfigError(model, field, kind, fmt.Errorf("%w: %q", ErrInvalidParameter, param))
	}
	return f, nil
}
