// Package fieldvet provides a declarative, metadata-driven validation
// engine for struct models: fields declare their constraints once, and
// Validate inspects an instance, evaluates every declared constraint
// against its current field values, and returns a structured list of
// violations (which field, which constraint, what message).
//
// Constraints are declared either through the `checks` struct tag or
// through an explicit schema registered in code. Both mechanisms feed
// the same per-type descriptor registry, which is built lazily on first
// use and cached for the lifetime of the process.
//
// # Architecture
//
// Core building blocks:
//   - Constraint        – immutable rule with a predicate and a message template
//   - FieldDescriptor   – binds a field name, its accessor, and its ordered constraints
//   - registry          – per-type descriptor cache, built once, read-only afterwards
//   - Violation         – one failed constraint on one field
//   - Result            – validity flag plus the ordered violation sequence
//
// Each source file groups a family of constraints for a specific domain
// (string_constraints.go, pattern_constraints.go, numeric_constraints.go,
// etc.). Constraints are pure predicates over a single value snapshot;
// the engine holds no per-call state, performs no I/O, and is safe for
// concurrent use.
//
// # Usage
//
//	type User struct {
//	    Name  string `checks:"required;max_len=50"`
//	    Phone string `checks:"required;pattern=^\\d{3}-\\d{4}$"`
//	}
//
//	res, err := fieldvet.Validate(user)
//	if err != nil {
//	    // malformed declaration: fix the model, not the data
//	}
//	if !res.Valid() {
//	    for _, v := range res.Violations() {
//	        // v.Field, v.Kind, v.Message
//	    }
//	}
//
// # Error Handling
//
// Two tiers are kept strictly apart. Data-driven failures are returned
// as Violations inside a Result and are never raised as errors or
// panics. Programmer mistakes in a declaration (an unparsable pattern,
// a negative length bound, a length constraint on a non-string field)
// surface once, at registry-build time, as a ConfigurationError naming
// the offending field and constraint kind.
//
// Result.Err adapts a failed Result to the error interface for callers
// that bubble validation failures up an error chain; ExtractViolations
// recovers the structured form with errors.As.
package fieldvet
