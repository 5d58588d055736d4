package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformAggregates(t *testing.T) {
	tr := NewTransformer(nil)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"sum of known field", "SUM(sell_in)", "Total Sell In"},
		{"avg of known field", "AVG(margin)", "Average Margin"},
		{"count of known field", "COUNT(order_count)", "Count Orders"},
		{"max of known field", "MAX(revenue)", "Maximum Revenue"},
		{"min of known field", "MIN(quantity)", "Minimum Quantity"},
		{"lowercase function", "sum(sell_out)", "Total Sell Out"},
		{"mixed case function", "Avg(sell_in)", "Average Sell In"},
		{"unknown field keeps identifier", "SUM(forecast)", "Total forecast"},
		{"unknown function passes through", "MEDIAN(sell_in)", "MEDIAN(sell_in)"},
		{"whitespace inside wrapper", "SUM( sell_in )", "Total Sell In"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Transform(tt.raw))
		})
	}
}

func TestTransformPlainIdentifiers(t *testing.T) {
	tr := NewTransformer(nil)

	assert.Equal(t, "Sell In", tr.Transform("sell_in"))
	assert.Equal(t, "Revenue", tr.Transform("revenue"))
	assert.Equal(t, "customer_id", tr.Transform("customer_id"))
	assert.Equal(t, "", tr.Transform(""))
}

func TestTransformCustomTable(t *testing.T) {
	tr := NewTransformer(map[string]string{"hits": "Page Hits"})

	assert.Equal(t, "Page Hits", tr.Transform("hits"))
	assert.Equal(t, "Total Page Hits", tr.Transform("SUM(hits)"))

	// Custom table fully replaces the default one
	assert.Equal(t, "sell_in", tr.Transform("sell_in"))
}
