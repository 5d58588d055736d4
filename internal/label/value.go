package label

import (
	"encoding/json"
	"fmt"
	"math"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Kind identifies the variant carried by a Value.
type Kind int

const (
	// KindAbsent represents a missing or null value
	KindAbsent Kind = iota

	// KindBool represents a boolean value
	KindBool

	// KindNumber represents a numeric value
	KindNumber

	// KindText represents a text value
	KindText

	// KindRecord represents one structured data row
	KindRecord

	// KindList represents a list of values
	KindList
)

// Value is one entry in a render context. Display text, truthiness and the
// numeric reading are fixed when the value is constructed, so interpolation
// and condition evaluation never probe the underlying Go type.
type Value struct {
	kind   Kind
	text   string
	truthy bool
	num    float64
	hasNum bool
}

// Kind returns the variant of the value.
func (v Value) Kind() Kind { return v.kind }

// Text returns the display text of the value. Absent values format as the
// empty string, numbers as locale-grouped decimals, records and lists as
// compact JSON.
func (v Value) Text() string { return v.text }

// Truthy reports whether the value counts as true in a bare-name condition.
// Empty text, zero, false and absent are falsy; everything else is truthy.
func (v Value) Truthy() bool { return v.truthy }

// Num returns the numeric reading of the value, if it has one.
func (v Value) Num() (float64, bool) { return v.num, v.hasNum }

// Absent returns the absent/null value.
func Absent() Value {
	return Value{kind: KindAbsent}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	text := "false"
	if b {
		text = "true"
	}
	return Value{kind: KindBool, text: text, truthy: b}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s, truthy: s != ""}
}

// Number returns a numeric value formatted with the given printer. Whole
// numbers render without a decimal part.
func Number(f float64, p *message.Printer) Value {
	return Value{
		kind:   KindNumber,
		text:   formatNumber(f, p),
		truthy: f != 0,
		num:    f,
		hasNum: true,
	}
}

// Record returns a structured-record value for one data row. A nil row is
// the empty record.
func Record(row map[string]any) Value {
	if row == nil {
		row = map[string]any{}
	}
	return Value{
		kind:   KindRecord,
		text:   compactJSON(row),
		truthy: len(row) > 0,
	}
}

// List returns a list value. A nil slice is the empty list.
func List(items []any) Value {
	if items == nil {
		items = []any{}
	}
	return Value{
		kind:   KindList,
		text:   compactJSON(items),
		truthy: len(items) > 0,
	}
}

// FromAny converts an arbitrary decoded value (typically from JSON row data)
// into a Value. Unrecognized types fall back to their plain text form.
func FromAny(v any, p *message.Printer) Value {
	switch vv := v.(type) {
	case nil:
		return Absent()
	case bool:
		return Bool(vv)
	case string:
		return Text(vv)
	case map[string]any:
		return Record(vv)
	case []any:
		return List(vv)
	default:
		if f, ok := numericReading(v); ok {
			return Number(f, p)
		}
		return Text(fmt.Sprintf("%v", v))
	}
}

// formatNumber renders a number as locale-grouped decimal text. Whole
// numbers within int64 range render without a decimal part; conversion
// beyond that range is implementation-defined, so larger magnitudes stay on
// the float path.
func formatNumber(f float64, p *message.Printer) string {
	if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
		return p.Sprintf("%v", number.Decimal(int64(f)))
	}
	return p.Sprintf("%v", number.Decimal(f))
}

// compactJSON serializes records and lists without whitespace. Values that
// cannot be marshalled render as their plain text form.
func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// numericReading extracts a float64 from the numeric Go kinds JSON decoding
// and callers may hand in. Booleans and numeric strings do not count.
func numericReading(v any) (float64, bool) {
	switch vv := v.(type) {
	case float64:
		return vv, true
	case float32:
		return float64(vv), true
	case int:
		return float64(vv), true
	case int64:
		return float64(vv), true
	case int32:
		return float64(vv), true
	case uint:
		return float64(vv), true
	case uint64:
		return float64(vv), true
	case json.Number:
		f, err := vv.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
