package template

import (
	"strings"
	"sync"

	"github.com/aescanero/label-engine/internal/eval/cond"
	"github.com/aescanero/label-engine/internal/label"
	"go.uber.org/zap"
)

// Engine renders label templates against a context
type Engine struct {
	conditions *cond.Evaluator
	logger     *zap.Logger
	cache      map[string]*parsedTemplate
	mu         sync.RWMutex
}

// NewEngine creates a new template engine
func NewEngine(conditions *cond.Evaluator, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conditions == nil {
		conditions = cond.NewEvaluator(logger)
	}
	return &Engine{
		conditions: conditions,
		logger:     logger,
		cache:      make(map[string]*parsedTemplate),
	}
}

// Render renders a template with the given context. It always returns a
// string: malformed directives and unresolved placeholders are left as
// literal text rather than reported as errors.
func (e *Engine) Render(templateStr string, vars label.Context) string {
	tree := e.getParsed(templateStr)

	// Reduce each conditional block to its surviving branch body
	intermediate := e.resolveBlocks(tree, vars)

	// Substitute placeholders in the branch-resolved text
	return interpolate(intermediate, vars)
}

// getParsed gets a parsed template from cache or parses it
func (e *Engine) getParsed(templateStr string) *parsedTemplate {
	// Check cache first (read lock)
	e.mu.RLock()
	if tree, ok := e.cache[templateStr]; ok {
		e.mu.RUnlock()
		return tree
	}
	e.mu.RUnlock()

	// Parse the template (write lock)
	e.mu.Lock()
	defer e.mu.Unlock()

	// Check again in case another goroutine parsed it
	if tree, ok := e.cache[templateStr]; ok {
		return tree
	}

	tree := parse(templateStr)
	e.cache[templateStr] = tree
	return tree
}

// resolveBlocks emits literal segments as-is and each conditional block as
// the body of its first true branch, the else body when no condition holds,
// or nothing at all.
func (e *Engine) resolveBlocks(tree *parsedTemplate, vars label.Context) string {
	var sb strings.Builder
	for _, n := range tree.nodes {
		switch nn := n.(type) {
		case literalNode:
			sb.WriteString(nn.text)
		case blockNode:
			for _, br := range nn.branches {
				if !br.hasCond || e.conditions.Evaluate(br.condition, vars) {
					sb.WriteString(br.body)
					break
				}
			}
		}
	}
	return sb.String()
}

// interpolate replaces every {{ name }} placeholder with the display text of
// the named context value. Placeholders with no matching key are left
// verbatim.
func interpolate(src string, vars label.Context) string {
	var sb strings.Builder
	pos := 0
	for pos < len(src) {
		open := strings.Index(src[pos:], "{{")
		if open < 0 {
			break
		}
		open += pos
		close := strings.Index(src[open+2:], "}}")
		if close < 0 {
			break
		}
		close += open + 2

		name := strings.TrimSpace(src[open+2 : close])
		v, ok := vars[name]
		if !ok {
			// No matching key: keep the opening marker literal and rescan
			// after it, so overlapping placeholders still resolve
			sb.WriteString(src[pos : open+2])
			pos = open + 2
			continue
		}
		sb.WriteString(src[pos:open])
		sb.WriteString(v.Text())
		pos = close + 2
	}
	sb.WriteString(src[pos:])
	return sb.String()
}

// ClearCache clears the parsed template cache
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]*parsedTemplate)
}
