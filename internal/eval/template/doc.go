// Package template implements the label template language: conditional
// block directives and placeholder interpolation.
//
// A template is plain text with two kinds of markers:
//
//	{{ name }}                              placeholder, replaced by the
//	                                        formatted context value
//	{% if cond %}...{% elif cond %}...
//	{% else %}...{% endif %}                conditional block, reduced to the
//	                                        body of the first true branch
//
// Rendering is total. A block missing its endif stays literal, a placeholder
// with no matching key stays literal, and a malformed condition evaluates to
// false. Whatever the input, Render returns a string and never an error: a
// broken user-authored template must never break the consuming display.
//
// Example usage:
//
//	engine := template.NewEngine(nil, logger)
//
//	vars := label.Context{
//	    "column_name": label.Text("Sales"),
//	    "row_count":   label.Number(1234, printer),
//	}
//
//	result := engine.Render("{{column_name}} ({{row_count}} rows)", vars)
//	// Output: Sales (1,234 rows)
//
// Templates are parsed once in a single pass over directive tags and the
// parse tree is cached; parsing does not depend on the context, so repeated
// renders with identical inputs produce identical output.
//
// Conditional blocks do not nest: directive tags inside a branch body are
// carried through as literal text.
package template
