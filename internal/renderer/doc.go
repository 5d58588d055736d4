// Package renderer is the render entry point: it ties the context builder,
// the condition evaluator and the template engine together.
//
// One call builds a fresh context from the request's column metadata, row
// data and auxiliary values, resolves the template's conditional blocks and
// interpolates its placeholders. The context carries no identity or
// lifecycle beyond the call.
//
// Example usage:
//
//	r := renderer.New(language.English, nil, logger)
//
//	result := r.RenderLabel(&renderer.Request{
//	    Template: "{% if key.startswith('SUM') %}Total{% else %}{{key}}{% endif %}",
//	    Column:   label.Column{Label: "Sales", Key: "SUM(sell_in)"},
//	    Rows:     []label.Row{{"SUM(sell_in)": 10.0}},
//	})
//	// Output: Total
//
// RenderLabel never fails: worst case the label contains visible literal
// directive or placeholder syntax, and the consuming display decides whether
// that is acceptable.
package renderer
