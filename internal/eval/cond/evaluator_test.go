package cond

import (
	"testing"

	"github.com/aescanero/label-engine/internal/label"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func testContext() label.Context {
	p := message.NewPrinter(language.English)
	return label.Context{
		"key":        label.Text("SUM(sell_in)"),
		"data_type":  label.Text("DOUBLE"),
		"row_count":  label.Number(1234, p),
		"zero":       label.Number(0, p),
		"is_metric":  label.Bool(true),
		"empty_text": label.Text(""),
		"missing_v":  label.Absent(),
		"first_row":  label.Record(map[string]any{"a": 1}),
	}
}

func TestEvaluateEquality(t *testing.T) {
	e := NewEvaluator(nil)
	vars := testContext()

	tests := []struct {
		name      string
		condition string
		want      bool
	}{
		{"match single quotes", "data_type == 'DOUBLE'", true},
		{"match double quotes", `data_type == "DOUBLE"`, true},
		{"no match", "data_type == 'VARCHAR'", false},
		{"no spaces around operator", "data_type=='DOUBLE'", true},
		{"compares formatted number text", "row_count == '1,234'", true},
		{"zero compares as its text form", "zero == '0'", true},
		{"unknown name reads as empty text", "nope == ''", true},
		{"unknown name never matches literal", "nope == 'x'", false},
		{"unquoted literal is malformed", "data_type == DOUBLE", false},
		{"dangling operator is malformed", "data_type ==", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Evaluate(tt.condition, vars))
		})
	}
}

func TestEvaluateStartswith(t *testing.T) {
	e := NewEvaluator(nil)
	vars := testContext()

	tests := []struct {
		name      string
		condition string
		want      bool
	}{
		{"prefix match", "key.startswith('SUM')", true},
		{"full match", "key.startswith('SUM(sell_in)')", true},
		{"no match", "key.startswith('AVG')", false},
		{"double quotes", `key.startswith("SUM")`, true},
		{"absent value reads as empty text", "missing_v.startswith('x')", false},
		{"absent value matches empty prefix", "missing_v.startswith('')", true},
		{"unknown name reads as empty text", "nope.startswith('x')", false},
		{"missing closing paren is malformed", "key.startswith('SUM'", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Evaluate(tt.condition, vars))
		})
	}
}

func TestEvaluateRelational(t *testing.T) {
	e := NewEvaluator(nil)
	vars := testContext()

	tests := []struct {
		name      string
		condition string
		want      bool
	}{
		{"greater than", "row_count > 1000", true},
		{"greater than false", "row_count > 2000", false},
		{"greater or equal boundary", "row_count >= 1234", true},
		{"less than", "row_count < 2000", true},
		{"less or equal boundary", "row_count <= 1233", false},
		{"fractional literal", "row_count > 1233.5", true},
		{"text value has no numeric reading", "data_type > 1", false},
		{"unknown name", "nope > 1", false},
		{"non-numeric literal is malformed", "row_count > many", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Evaluate(tt.condition, vars))
		})
	}
}

func TestEvaluateTruthiness(t *testing.T) {
	e := NewEvaluator(nil)
	vars := testContext()

	tests := []struct {
		name      string
		condition string
		want      bool
	}{
		{"true bool", "is_metric", true},
		{"non-empty text", "data_type", true},
		{"non-empty record", "first_row", true},
		{"zero number", "zero", false},
		{"empty text", "empty_text", false},
		{"absent value", "missing_v", false},
		{"unknown name", "never_set", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Evaluate(tt.condition, vars))
		})
	}
}

func TestEvaluateMalformed(t *testing.T) {
	e := NewEvaluator(nil)
	vars := testContext()

	// Anything outside the fixed grammar evaluates to false, never panics
	for _, condition := range []string{
		"",
		"   ",
		"a && b",
		"not is_metric",
		"row_count + 1",
		"data_type == 'DOUBLE' || is_metric",
		"row_count.contains('1')",
		"'literal'",
		"1row",
	} {
		assert.False(t, e.Evaluate(condition, vars), "condition %q", condition)
	}
}
