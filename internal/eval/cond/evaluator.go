package cond

import (
	"strconv"
	"strings"

	"github.com/aescanero/label-engine/internal/label"
	"go.uber.org/zap"
)

// Evaluator evaluates label template conditions against a render context.
type Evaluator struct {
	logger *zap.Logger
}

// NewEvaluator creates a new condition evaluator. A nil logger disables
// diagnostics.
func NewEvaluator(logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{logger: logger}
}

// Evaluate evaluates one condition against the context and returns whether
// it holds. The grammar is checked in fixed priority order: equality against
// a quoted literal, a startswith prefix test, a relational comparison
// against a numeric literal, and bare-name truthiness. Malformed conditions
// and unknown names evaluate to false; evaluation never returns an error.
func (e *Evaluator) Evaluate(condition string, vars label.Context) bool {
	condition = strings.TrimSpace(condition)
	if condition == "" {
		return false
	}

	result := e.evaluate(condition, vars)
	e.logger.Debug("condition evaluated",
		zap.String("condition", condition),
		zap.Bool("result", result),
	)
	return result
}

func (e *Evaluator) evaluate(condition string, vars label.Context) bool {
	if name, literal, ok := splitEquality(condition); ok {
		return textOf(vars, name) == literal
	}

	if name, literal, ok := splitStartswith(condition); ok {
		// An absent value is treated as empty text
		return strings.HasPrefix(textOf(vars, name), literal)
	}

	if name, op, threshold, ok := splitRelational(condition); ok {
		v, known := vars[name]
		if !known {
			return false
		}
		f, numeric := v.Num()
		if !numeric {
			return false
		}
		switch op {
		case ">":
			return f > threshold
		case ">=":
			return f >= threshold
		case "<":
			return f < threshold
		case "<=":
			return f <= threshold
		}
		return false
	}

	if isIdentifier(condition) {
		v, known := vars[condition]
		return known && v.Truthy()
	}

	// Anything outside the fixed grammar is treated as false
	return false
}

// splitEquality parses a condition of the form name == 'literal'.
func splitEquality(condition string) (name, literal string, ok bool) {
	idx := strings.Index(condition, "==")
	if idx < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(condition[:idx])
	if !isIdentifier(name) {
		return "", "", false
	}
	literal, ok = unquote(strings.TrimSpace(condition[idx+2:]))
	if !ok {
		return "", "", false
	}
	return name, literal, true
}

// splitStartswith parses a condition of the form name.startswith('literal').
func splitStartswith(condition string) (name, literal string, ok bool) {
	idx := strings.Index(condition, ".startswith(")
	if idx < 0 || !strings.HasSuffix(condition, ")") {
		return "", "", false
	}
	name = strings.TrimSpace(condition[:idx])
	if !isIdentifier(name) {
		return "", "", false
	}
	inner := strings.TrimSpace(condition[idx+len(".startswith(") : len(condition)-1])
	literal, ok = unquote(inner)
	if !ok {
		return "", "", false
	}
	return name, literal, true
}

// splitRelational parses a condition of the form name > 42 for the
// relational operators >, >=, < and <=.
func splitRelational(condition string) (name, op string, threshold float64, ok bool) {
	idx := strings.IndexAny(condition, "<>")
	if idx < 0 {
		return "", "", 0, false
	}
	op = condition[idx : idx+1]
	rest := condition[idx+1:]
	if strings.HasPrefix(rest, "=") {
		op += "="
		rest = rest[1:]
	}
	name = strings.TrimSpace(condition[:idx])
	if !isIdentifier(name) {
		return "", "", 0, false
	}
	threshold, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
	if err != nil {
		return "", "", 0, false
	}
	return name, op, threshold, true
}

// textOf returns the display text of a context value, treating unknown names
// as empty text.
func textOf(vars label.Context, name string) string {
	if v, ok := vars[name]; ok {
		return v.Text()
	}
	return ""
}

// unquote strips a matching pair of single or double quotes. The grammar has
// no escape sequences.
func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	q := s[0]
	if q != '\'' && q != '"' {
		return "", false
	}
	if s[len(s)-1] != q {
		return "", false
	}
	inner := s[1 : len(s)-1]
	if strings.ContainsRune(inner, rune(q)) {
		return "", false
	}
	return inner, true
}

// isIdentifier reports whether s is a plain variable name.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
