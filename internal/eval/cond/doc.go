// Package cond evaluates the fixed condition grammar used by label template
// directives.
//
// The grammar is intentionally limited to four comparison forms, checked in
// priority order:
//
//	name == 'literal'            exact match against the value's display text
//	name.startswith('literal')   string-prefix test, absent reads as empty text
//	name > 42                    relational comparison (>, >=, <, <=) against
//	                             a numeric literal
//	name                         bare truthiness test
//
// There are no boolean combinators and no expression language: conditions
// are user-authored fragments of display configuration, not code, so the
// evaluator never executes anything.
//
// Example usage:
//
//	evaluator := cond.NewEvaluator(logger)
//
//	vars := label.Context{
//	    "key":       label.Text("SUM(sell_in)"),
//	    "row_count": label.Number(1234, printer),
//	}
//
//	evaluator.Evaluate("key.startswith('SUM')", vars) // true
//	evaluator.Evaluate("row_count > 1000", vars)      // true
//	evaluator.Evaluate("missing_name", vars)          // false
//
// Malformed conditions evaluate to false. Evaluation is total and never
// returns an error to the caller.
package cond
