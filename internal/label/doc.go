// Package label models the named-value context a column label is rendered
// against.
//
// A Context is a flat bag of Values built fresh for every render call. Each
// Value is a closed variant (absent, bool, number, text, record or list)
// whose display text, truthiness and numeric reading are resolved when the
// context is built, never during interpolation.
//
// Example usage:
//
//	builder := label.NewBuilder(language.English, nil)
//
//	col := label.Column{Label: "Sales", Key: "SUM(sell_in)", IsMetric: true}
//	rows := []label.Row{
//	    {"SUM(sell_in)": 10.0},
//	    {"SUM(sell_in)": 999.0},
//	}
//
//	ctx := builder.Build(col, rows, nil, nil, false)
//	ctx["row_count"].Text() // "2"
//	ctx["max"].Text()       // "999"
//
// Built-in context keys:
//   - column_name, original_label, key, data_type
//   - row_count, first_row, last_row, first_value, last_value
//   - is_metric, is_percent_metric, is_numeric
//   - sum, avg, min, max, count (only when numeric data exists)
//   - metrics, metric_count (only when metric inclusion is on)
//
// Built-in keys are reserved: auxiliary values supplied by the caller never
// shadow them.
//
// The package also provides the name transformer, which turns raw field
// identifiers such as SUM(sell_in) into display fragments such as
// "Total Sell In".
package label
