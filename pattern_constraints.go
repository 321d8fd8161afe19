package fieldvet

import (
	"regexp"
)

type patternConstraint struct {
	expr   string
	re     *regexp.Regexp
	err    error
	negate bool
}

// Pattern validates the value's string form against a regular
// expression. Matching is not implicitly anchored: a pattern without
// ^...$ matches anywhere in the value, so authors who want whole-string
// semantics must embed the anchors themselves. An unparsable expression
// is a configuration error reported at registry-build time.
func Pattern(expr string) Constraint {
	re, err := regexp.Compile(expr)
	return patternConstraint{expr: expr, re: re, err: err}
}

// NotPattern is the negated form of Pattern: the constraint is
// satisfied when the value's string form does not match the expression.
func NotPattern(expr string) Constraint {
	re, err := regexp.Compile(expr)
	return patternConstraint{expr: expr, re: re, err: err, negate: true}
}

func (c patternConstraint) Kind() Kind {
	if c.negate {
		return KindNotPattern
	}
	return KindPattern
}

func (c patternConstraint) IsSatisfied(value any) bool {
	matched := c.re.MatchString(stringForm(value))
	if c.negate {
		return !matched
	}
	return matched
}

func (c patternConstraint) Message(field string) string {
	template := msgPattern
	if c.negate {
		template = msgNotPattern
	}
	return expandTemplate(template, map[string]string{
		"field":   field,
		"pattern": c.expr,
	})
}

func (c patternConstraint) configErr() error {
	return c.err
}
