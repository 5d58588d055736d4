package renderer

import (
	"github.com/aescanero/label-engine/internal/eval/cond"
	"github.com/aescanero/label-engine/internal/eval/template"
	"github.com/aescanero/label-engine/internal/label"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Request carries everything needed to render one column label.
type Request struct {
	Template       string         `json:"template"`
	Column         label.Column   `json:"column"`
	Rows           []label.Row    `json:"rows,omitempty"`
	ExtraValues    map[string]any `json:"extra_values,omitempty"`
	Metrics        []string       `json:"metrics,omitempty"`
	IncludeMetrics bool           `json:"include_metrics,omitempty"`
}

// Renderer turns label templates and result-set data into display labels.
type Renderer struct {
	builder *label.Builder
	engine  *template.Engine
	logger  *zap.Logger
}

// New creates a renderer. Numbers are formatted for the given locale and the
// transformer resolves raw identifiers to display fragments; a nil
// transformer selects the default label table.
func New(locale language.Tag, transformer *label.Transformer, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		builder: label.NewBuilder(locale, transformer),
		engine:  template.NewEngine(cond.NewEvaluator(logger), logger),
		logger:  logger,
	}
}

// RenderLabel builds a fresh context for the request and renders its
// template. It always returns a string: on malformed input the result is a
// best-effort partial render with literal leftover markers, and deciding
// whether to fall back to a static label is the caller's concern.
func (r *Renderer) RenderLabel(req *Request) string {
	ctx := r.builder.Build(req.Column, req.Rows, req.ExtraValues, req.Metrics, req.IncludeMetrics)

	result := r.engine.Render(req.Template, ctx)

	r.logger.Debug("label rendered",
		zap.String("column_key", req.Column.Key),
		zap.Int("row_count", len(req.Rows)),
		zap.String("label", result),
	)

	return result
}
