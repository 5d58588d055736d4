package label

import "strings"

// aggregatePrefixes maps an aggregate function name to the word placed in
// front of the field label.
var aggregatePrefixes = map[string]string{
	"SUM":   "Total",
	"COUNT": "Count",
	"AVG":   "Average",
	"MAX":   "Maximum",
	"MIN":   "Minimum",
}

// defaultLabelTable maps raw field identifiers to display fragments.
var defaultLabelTable = map[string]string{
	"sell_in":     "Sell In",
	"sell_out":    "Sell Out",
	"revenue":     "Revenue",
	"quantity":    "Quantity",
	"margin":      "Margin",
	"order_count": "Orders",
}

// Transformer turns raw field identifiers into human-friendly label
// fragments.
type Transformer struct {
	labels map[string]string
}

// NewTransformer creates a transformer with the given identifier→label
// table. A nil table selects the built-in default table.
func NewTransformer(labels map[string]string) *Transformer {
	if labels == nil {
		labels = defaultLabelTable
	}
	return &Transformer{labels: labels}
}

// Transform maps a raw identifier to a display fragment. Identifiers wrapped
// in an aggregate function, such as SUM(sell_in), become the function's
// prefix word followed by the resolved field label. Identifiers without a
// table entry pass through unchanged.
func (t *Transformer) Transform(raw string) string {
	raw = strings.TrimSpace(raw)

	if fn, field, ok := splitAggregate(raw); ok {
		if prefix, known := aggregatePrefixes[fn]; known {
			return prefix + " " + t.lookup(field)
		}
	}

	return t.lookup(raw)
}

// lookup resolves an identifier through the label table, defaulting to the
// identifier itself.
func (t *Transformer) lookup(id string) string {
	if label, ok := t.labels[id]; ok {
		return label
	}
	return id
}

// splitAggregate splits FUNC(field) notation into its upper-cased function
// name and the inner field identifier.
func splitAggregate(raw string) (fn, field string, ok bool) {
	open := strings.Index(raw, "(")
	if open <= 0 || !strings.HasSuffix(raw, ")") {
		return "", "", false
	}
	fn = strings.ToUpper(strings.TrimSpace(raw[:open]))
	field = strings.TrimSpace(raw[open+1 : len(raw)-1])
	if fn == "" || field == "" {
		return "", "", false
	}
	return fn, field, true
}
