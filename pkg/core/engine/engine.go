// Package engine ties normalization, extraction and statement resolution
// together behind the query surface callers consume, and owns the only
// piece of shared mutable state in the system: the resolved-statement
// cache.
package engine

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"edgar_statements/pkg/core/items"
	"edgar_statements/pkg/core/taxonomy"
	"edgar_statements/pkg/core/xbrl"
	"edgar_statements/pkg/models"
)

// StatementRequest identifies one resolution: a filing, a statement kind,
// how many periods, and the active view.
type StatementRequest struct {
	FilingID    string
	Kind        xbrl.StatementKind
	PeriodCount int
	View        xbrl.View
}

func (r StatementRequest) cacheKey() string {
	return fmt.Sprintf("%s|%s|%d|%s", r.FilingID, r.Kind, r.PeriodCount, r.View)
}

// Engine resolves statements against loaded filings. Parsing a filing is
// pure and per-filing independent, so loads may run concurrently; the
// statement cache coalesces concurrent identical requests so at most one
// resolution computes per key at a time.
type Engine struct {
	mapping *taxonomy.Mapping
	weights taxonomy.Weights

	mu      sync.RWMutex
	filings map[string]*xbrl.Filing
	cache   map[string]*models.ResolvedStatement
	group   singleflight.Group
}

// New creates an engine with an immutable taxonomy snapshot and scoring
// weights, both passed explicitly rather than read from ambient state.
func New(mapping *taxonomy.Mapping, weights taxonomy.Weights) *Engine {
	return &Engine{
		mapping: mapping,
		weights: weights,
		filings: make(map[string]*xbrl.Filing),
		cache:   make(map[string]*models.ResolvedStatement),
	}
}

// LoadFiling normalizes the raw documents and registers the filing under
// the given id. The fetch of raw content must already be complete; fetch
// is strictly sequential relative to parsing of one document.
func (e *Engine) LoadFiling(id string, rawDocs ...[]byte) (*xbrl.Filing, error) {
	docs := make([]*xbrl.Document, 0, len(rawDocs))
	for i, raw := range rawDocs {
		doc, err := xbrl.Normalize(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize document %d of filing %s: %w", i, id, err)
		}
		docs = append(docs, doc)
	}
	filing, err := xbrl.NewFiling(id, docs...)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.filings[id] = filing
	// A reloaded filing invalidates nothing retroactively: cache keys
	// embed the filing id and filings are immutable once registered.
	e.mu.Unlock()
	return filing, nil
}

// Filing returns a loaded filing.
func (e *Engine) Filing(id string) (*xbrl.Filing, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	f, ok := e.filings[id]
	return f, ok
}

// Statement resolves one statement request, serving repeats from the
// cache. Concurrent requests for the same key share a single computation;
// a caller abandoning via ctx gets ctx.Err() and never a partial result.
func (e *Engine) Statement(ctx context.Context, req StatementRequest) (*models.ResolvedStatement, error) {
	key := req.cacheKey()

	e.mu.RLock()
	cached, ok := e.cache[key]
	e.mu.RUnlock()
	if ok {
		return cached, nil
	}

	ch := e.group.DoChan(key, func() (interface{}, error) {
		e.mu.RLock()
		filing, ok := e.filings[req.FilingID]
		e.mu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("filing %s not loaded", req.FilingID)
		}

		stmt, err := xbrl.Assemble(filing, e.mapping, e.weights, req.Kind, req.PeriodCount, req.View)
		if err != nil {
			return nil, err
		}

		e.mu.Lock()
		e.cache[key] = stmt
		e.mu.Unlock()
		return stmt, nil
	})

	select {
	case <-ctx.Done():
		// The in-flight computation finishes for other waiters; this
		// caller only ever sees a complete result or its own cancellation.
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.ResolvedStatement), nil
	}
}

// StatementLegacy accepts the deprecated include_dimensions toggle and
// maps it onto the view it always meant.
func (e *Engine) StatementLegacy(ctx context.Context, filingID string, kind xbrl.StatementKind,
	periodCount int, includeDimensions bool) (*models.ResolvedStatement, error) {
	return e.Statement(ctx, StatementRequest{
		FilingID:    filingID,
		Kind:        kind,
		PeriodCount: periodCount,
		View:        xbrl.ViewFromLegacyToggle(includeDimensions),
	})
}

// ItemReferences returns a filing's form-item references. Structured
// metadata wins when available; the text fallback is used only when it is
// absent or empty. Markdown-rendered text goes through the AST walk so
// emphasis markers inside a reference do not split the match.
func (e *Engine) ItemReferences(structured []string, renderedText string) []string {
	if len(structured) > 0 {
		return structured
	}
	if looksLikeMarkdown(renderedText) {
		return items.ExtractFromMarkdown(renderedText)
	}
	return items.Extract(renderedText)
}

// looksLikeMarkdown sniffs text that batch pipelines pre-render to
// markdown, as opposed to raw HTML or plain filing text.
func looksLikeMarkdown(s string) bool {
	head := s
	if len(head) > 2048 {
		head = head[:2048]
	}
	if strings.HasPrefix(strings.TrimSpace(head), "<") {
		return false
	}
	return strings.Contains(head, "# ") || strings.Contains(head, "**") ||
		strings.Contains(head, "\n- ")
}
