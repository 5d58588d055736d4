package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func testColumn() Column {
	return Column{
		Label:     "Sales",
		Key:       "SUM(sell_in)",
		DataType:  "DOUBLE",
		IsMetric:  true,
		IsNumeric: true,
	}
}

func TestBuildBasics(t *testing.T) {
	b := NewBuilder(language.English, nil)

	rows := []Row{
		{"SUM(sell_in)": 10.0, "region": "north"},
		{"SUM(sell_in)": 999.0, "region": "south"},
		{"SUM(sell_in)": 50.0, "region": "east"},
	}
	ctx := b.Build(testColumn(), rows, nil, nil, false)

	assert.Equal(t, "Total Sell In", ctx["column_name"].Text())
	assert.Equal(t, "Sales", ctx["original_label"].Text())
	assert.Equal(t, "SUM(sell_in)", ctx["key"].Text())
	assert.Equal(t, "DOUBLE", ctx["data_type"].Text())
	assert.Equal(t, "3", ctx["row_count"].Text())
	assert.Equal(t, "true", ctx["is_metric"].Text())
	assert.Equal(t, "false", ctx["is_percent_metric"].Text())
	assert.Equal(t, "true", ctx["is_numeric"].Text())
	assert.Equal(t, "10", ctx["first_value"].Text())
	assert.Equal(t, "50", ctx["last_value"].Text())
	assert.Equal(t, KindRecord, ctx["first_row"].Kind())
	assert.Equal(t, KindRecord, ctx["last_row"].Kind())
}

func TestBuildStatistics(t *testing.T) {
	b := NewBuilder(language.English, nil)

	rows := []Row{
		{"SUM(sell_in)": 10.0},
		{"SUM(sell_in)": 999.0},
		{"SUM(sell_in)": nil},
		{"SUM(sell_in)": "n/a"},
		{"SUM(sell_in)": 50.0},
	}
	ctx := b.Build(testColumn(), rows, nil, nil, false)

	// Null and non-numeric entries are filtered out
	assert.Equal(t, "1,059", ctx["sum"].Text())
	assert.Equal(t, "353", ctx["avg"].Text())
	assert.Equal(t, "10", ctx["min"].Text())
	assert.Equal(t, "999", ctx["max"].Text())
	assert.Equal(t, "3", ctx["count"].Text())
}

func TestBuildNoNumericDataOmitsStatistics(t *testing.T) {
	b := NewBuilder(language.English, nil)

	rows := []Row{
		{"SUM(sell_in)": nil},
		{"SUM(sell_in)": "n/a"},
	}
	ctx := b.Build(testColumn(), rows, nil, nil, false)

	// Statistics are never defaulted to zero
	for _, key := range []string{"sum", "avg", "min", "max", "count"} {
		_, present := ctx[key]
		assert.False(t, present, "key %q must be absent", key)
	}
}

func TestBuildEmptyRows(t *testing.T) {
	b := NewBuilder(language.English, nil)

	ctx := b.Build(testColumn(), nil, nil, nil, false)

	assert.Equal(t, "0", ctx["row_count"].Text())

	// First and last row are empty records, never absent
	require.Contains(t, ctx, "first_row")
	require.Contains(t, ctx, "last_row")
	assert.Equal(t, "{}", ctx["first_row"].Text())
	assert.Equal(t, "{}", ctx["last_row"].Text())
	assert.False(t, ctx["first_row"].Truthy())

	_, present := ctx["first_value"]
	assert.False(t, present)
	_, present = ctx["last_value"]
	assert.False(t, present)
}

func TestBuildAuxiliaryValues(t *testing.T) {
	b := NewBuilder(language.English, nil)

	extra := map[string]any{
		"forecast_total": 12500.0,
		"series_name":    "EMEA",
		"row_count":      99.0, // collides with a built-in key
	}
	ctx := b.Build(testColumn(), []Row{{"SUM(sell_in)": 1.0}}, extra, nil, false)

	assert.Equal(t, "12,500", ctx["forecast_total"].Text())
	assert.Equal(t, "EMEA", ctx["series_name"].Text())

	// Built-in keys are reserved and never shadowed
	assert.Equal(t, "1", ctx["row_count"].Text())
}

func TestBuildMetrics(t *testing.T) {
	b := NewBuilder(language.English, nil)

	metrics := []string{"sum__sell_in", "avg__margin"}

	ctx := b.Build(testColumn(), nil, nil, metrics, true)
	assert.Equal(t, `["sum__sell_in","avg__margin"]`, ctx["metrics"].Text())
	assert.Equal(t, "2", ctx["metric_count"].Text())

	// Without the option the keys are absent entirely
	ctx = b.Build(testColumn(), nil, nil, metrics, false)
	_, present := ctx["metrics"]
	assert.False(t, present)
	_, present = ctx["metric_count"]
	assert.False(t, present)
}
