package template

import "strings"

// tagKind classifies a {% ... %} directive tag.
type tagKind int

const (
	tagIf tagKind = iota
	tagElif
	tagElse
	tagEndif
	tagUnknown
)

// tag is one directive tag located in the template source.
type tag struct {
	start int // offset of "{%"
	end   int // offset just past "%}"
	kind  tagKind
	arg   string // condition text for if/elif tags
}

// node is one element of a parsed template tree.
type node interface{}

// literalNode is a run of template text emitted as-is.
type literalNode struct {
	text string
}

// branch is one arm of a conditional block. The final else branch carries no
// condition.
type branch struct {
	condition string
	hasCond   bool
	body      string
}

// blockNode is one resolved if/elif/else/endif span.
type blockNode struct {
	branches []branch
}

// parsedTemplate is the cached parse result for one template string.
type parsedTemplate struct {
	nodes []node
}

// parse scans the template in a single left-to-right pass over directive
// tags and builds the node tree. Parsing is independent of any context, so
// the result is safe to cache and reuse across renders.
func parse(src string) *parsedTemplate {
	var nodes []node
	pos := 0
	for pos < len(src) {
		t, ok := nextTag(src, pos)
		if !ok {
			break
		}
		if t.kind != tagIf {
			// Stray elif/else/endif and unrecognized tags stay literal
			nodes = append(nodes, literalNode{text: src[pos:t.end]})
			pos = t.end
			continue
		}
		blk, after, closed := collectBlock(src, t)
		if !closed {
			// A span with a missing endif is never matched: the opening tag
			// stays literal and scanning resumes after it
			nodes = append(nodes, literalNode{text: src[pos:t.end]})
			pos = t.end
			continue
		}
		if t.start > pos {
			nodes = append(nodes, literalNode{text: src[pos:t.start]})
		}
		nodes = append(nodes, blk)
		pos = after
	}
	if pos < len(src) {
		nodes = append(nodes, literalNode{text: src[pos:]})
	}
	return &parsedTemplate{nodes: nodes}
}

// collectBlock gathers the branches of an if span, partitioning the interior
// at elif/else tags until the closing endif. Directive tags inside a branch
// body other than elif/else/endif are kept as literal body text: nested
// blocks are not processed.
func collectBlock(src string, open tag) (blockNode, int, bool) {
	branches := []branch{{condition: open.arg, hasCond: true}}
	bodyStart := open.end
	pos := open.end
	for {
		t, ok := nextTag(src, pos)
		if !ok {
			return blockNode{}, 0, false
		}
		switch t.kind {
		case tagElif:
			branches[len(branches)-1].body = src[bodyStart:t.start]
			branches = append(branches, branch{condition: t.arg, hasCond: true})
			bodyStart = t.end
		case tagElse:
			branches[len(branches)-1].body = src[bodyStart:t.start]
			branches = append(branches, branch{})
			bodyStart = t.end
		case tagEndif:
			branches[len(branches)-1].body = src[bodyStart:t.start]
			return blockNode{branches: branches}, t.end, true
		}
		pos = t.end
	}
}

// nextTag locates the next complete {% ... %} tag at or after from. An
// opening marker without a closing marker means no further tags exist.
func nextTag(src string, from int) (tag, bool) {
	open := strings.Index(src[from:], "{%")
	if open < 0 {
		return tag{}, false
	}
	open += from
	close := strings.Index(src[open+2:], "%}")
	if close < 0 {
		return tag{}, false
	}
	close += open + 2

	t := tag{start: open, end: close + 2}
	inner := strings.TrimSpace(src[open+2 : close])
	switch {
	case inner == "else":
		t.kind = tagElse
	case inner == "endif":
		t.kind = tagEndif
	case strings.HasPrefix(inner, "if "):
		t.kind = tagIf
		t.arg = strings.TrimSpace(inner[3:])
	case strings.HasPrefix(inner, "elif "):
		t.kind = tagElif
		t.arg = strings.TrimSpace(inner[5:])
	default:
		t.kind = tagUnknown
	}
	return t, true
}
