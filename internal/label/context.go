package label

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Column describes the column a label is rendered for.
type Column struct {
	Label           string `json:"label"`
	Key             string `json:"key"`
	DataType        string `json:"data_type"`
	IsMetric        bool   `json:"is_metric"`
	IsPercentMetric bool   `json:"is_percent_metric"`
	IsNumeric       bool   `json:"is_numeric"`
}

// Row is one result-set record keyed by column key.
type Row map[string]any

// Context is the flat named-value bag available to one render call. It is
// built fresh per call and never shared or mutated across calls.
type Context map[string]Value

// Builder assembles render contexts from column metadata, row data and
// externally supplied auxiliary values.
type Builder struct {
	printer     *message.Printer
	transformer *Transformer
}

// NewBuilder creates a context builder. Numbers are formatted for the given
// locale. A nil transformer selects the default label table.
func NewBuilder(locale language.Tag, transformer *Transformer) *Builder {
	if transformer == nil {
		transformer = NewTransformer(nil)
	}
	return &Builder{
		printer:     message.NewPrinter(locale),
		transformer: transformer,
	}
}

// Build assembles the context for one render call. Built-in keys are
// reserved: an auxiliary value whose name collides with a built-in key is
// ignored. Column statistics appear only when the column holds at least one
// non-null numeric entry; otherwise their keys are entirely absent so the
// matching placeholders stay unresolved.
func (b *Builder) Build(col Column, rows []Row, extra map[string]any, metrics []string, includeMetrics bool) Context {
	ctx := Context{
		"column_name":       Text(b.transformer.Transform(col.Key)),
		"original_label":    Text(col.Label),
		"key":               Text(col.Key),
		"data_type":         Text(col.DataType),
		"row_count":         Number(float64(len(rows)), b.printer),
		"is_metric":         Bool(col.IsMetric),
		"is_percent_metric": Bool(col.IsPercentMetric),
		"is_numeric":        Bool(col.IsNumeric),
	}

	// First and last row default to an empty record, never to absent
	if len(rows) > 0 {
		ctx["first_row"] = Record(rows[0])
		ctx["last_row"] = Record(rows[len(rows)-1])
		ctx["first_value"] = FromAny(rows[0][col.Key], b.printer)
		ctx["last_value"] = FromAny(rows[len(rows)-1][col.Key], b.printer)
	} else {
		ctx["first_row"] = Record(nil)
		ctx["last_row"] = Record(nil)
	}

	b.addStatistics(ctx, col, rows)

	if includeMetrics {
		items := make([]any, len(metrics))
		for i, m := range metrics {
			items[i] = m
		}
		ctx["metrics"] = List(items)
		ctx["metric_count"] = Number(float64(len(metrics)), b.printer)
	}

	for name, v := range extra {
		if _, reserved := ctx[name]; reserved {
			continue
		}
		ctx[name] = FromAny(v, b.printer)
	}

	return ctx
}

// addStatistics computes sum, avg, min, max and count over the column's
// non-null numeric entries. With zero such entries no statistics keys are
// added.
func (b *Builder) addStatistics(ctx Context, col Column, rows []Row) {
	var (
		sum      float64
		min, max float64
		count    int
	)
	for _, row := range rows {
		f, ok := numericReading(row[col.Key])
		if !ok {
			continue
		}
		if count == 0 || f < min {
			min = f
		}
		if count == 0 || f > max {
			max = f
		}
		sum += f
		count++
	}
	if count == 0 {
		return
	}

	ctx["sum"] = Number(sum, b.printer)
	ctx["avg"] = Number(sum/float64(count), b.printer)
	ctx["min"] = Number(min, b.printer)
	ctx["max"] = Number(max, b.printer)
	ctx["count"] = Number(float64(count), b.printer)
}
