package xbrl

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Extraction is the complete fact/context/footnote collection produced by
// one pass over a normalized document tree. Immutable once built; resolved
// statements are derived from it on demand.
type Extraction struct {
	RunID       string // unique per extraction pass; recorded alongside persisted facts
	Era         FormatEra
	Contexts    map[string]*Context
	Units       map[string]string // unit id -> measure
	Facts       []*Fact
	Concepts    map[string]Concept  // qname -> concept reference data
	Footnotes   map[string]*Footnote // keyed by label (see footnoteKey)
	Arcs        []FootnoteArc
	Diagnostics []Diagnostic
}

// Extract walks the normalized tree and builds the extraction in a single
// pass: context and unit definitions first, then facts, footnotes and
// arcs in document order. A document yielding no contexts at all is
// structurally unrecoverable.
func Extract(doc *Document) (*Extraction, error) {
	ext := &Extraction{
		RunID:     uuid.NewString(),
		Era:       doc.Era,
		Contexts:  make(map[string]*Context),
		Units:     make(map[string]string),
		Concepts:  make(map[string]Concept),
		Footnotes: make(map[string]*Footnote),
	}
	ext.Diagnostics = append(ext.Diagnostics, doc.Diagnostics...)

	// Pass 1: definitions. Contexts and units may appear after the facts
	// that reference them (iXBRL hides them at the end of the document).
	doc.Root.Walk(func(n *Node) {
		switch strings.ToLower(n.Local) {
		case "context":
			if ctx := parseContext(n); ctx != nil {
				ext.Contexts[ctx.ID] = ctx
			}
		case "unit":
			if id := n.Attr("id"); id != "" {
				ext.Units[id] = strings.TrimSpace(n.InnerText())
			}
		}
	})

	if len(ext.Contexts) == 0 {
		return nil, ErrNoContexts
	}

	// Pass 2: facts, footnotes, arcs.
	order := 0
	doc.Root.Walk(func(n *Node) {
		lower := strings.ToLower(n.Local)
		switch lower {
		case "footnote":
			key := footnoteKey(n)
			if key == "" {
				ext.Diagnostics = append(ext.Diagnostics,
					diag(DiagMalformedDocument, SeverityWarning, "", "footnote element with no label or id; skipped"))
				return
			}
			ext.Footnotes[key] = &Footnote{
				Label: key,
				ID:    n.Attr("id"),
				Text:  n.InnerText(),
				Lang:  n.AttrLocal("lang"),
				Role:  n.AttrLocal("role"),
			}
			return
		case "footnotearc":
			ext.Arcs = append(ext.Arcs, FootnoteArc{
				From:  n.AttrLocal("from"),
				To:    n.AttrLocal("to"),
				Order: len(ext.Arcs),
			})
			return
		case "context", "unit", "loc", "footnotelink",
			"presentationarc", "calculationarc", "labelarc", "presentationlink", "calculationlink":
			return
		}

		contextRef := n.Attr("contextRef")
		if contextRef == "" {
			return
		}

		ctx, ok := ext.Contexts[contextRef]
		if !ok {
			// A fact without a resolvable context is a parse error for
			// that fact alone, never a silent default.
			ext.Diagnostics = append(ext.Diagnostics,
				diag(DiagUnresolvedContext, SeverityError, contextRef,
					"fact %s references undefined context", n.Name()))
			return
		}

		value := strings.TrimSpace(n.Text)
		fact := &Fact{
			Concept:    n.Name(),
			Value:      value,
			ContextRef: contextRef,
			UnitRef:    n.Attr("unitRef"),
			Decimals:   n.Attr("decimals"),
			Context:    ctx,
			Numeric:    parseFactValue(value, n.Attr("scale"), n.Attr("sign")),
			Order:      order,
			ID:         n.Attr("id"),
		}
		order++
		ext.Facts = append(ext.Facts, fact)

		if _, seen := ext.Concepts[fact.Concept]; !seen {
			space, local := splitQName(fact.Concept)
			ext.Concepts[fact.Concept] = Concept{
				Namespace:  space,
				Name:       local,
				PeriodType: inferPeriodType(ctx),
				Balance:    BalanceNone,
				DataType:   inferDataType(fact),
			}
		}
	})

	return ext, nil
}

// parseContext builds a Context from a context definition node. Returns
// nil for definitions missing an id, which cannot ever be referenced.
func parseContext(n *Node) *Context {
	id := n.Attr("id")
	if id == "" {
		return nil
	}
	ctx := &Context{ID: id}

	n.Walk(func(c *Node) {
		switch strings.ToLower(c.Local) {
		case "identifier":
			ctx.Entity = strings.TrimSpace(c.Text)
		case "instant":
			ctx.Period.Instant = strings.TrimSpace(c.Text)
		case "startdate":
			ctx.Period.StartDate = strings.TrimSpace(c.Text)
		case "enddate":
			ctx.Period.EndDate = strings.TrimSpace(c.Text)
		case "explicitmember":
			axis := c.AttrLocal("dimension")
			member := strings.TrimSpace(c.InnerText())
			if axis != "" && member != "" {
				ctx.Dimensions = append(ctx.Dimensions, Dimension{Axis: axis, Member: member})
			}
		}
	})
	return ctx
}

// parseFactValue converts a raw fact string to a number, tolerating the
// formatting found across eras: thousands commas, currency symbols,
// parenthesized negatives, iXBRL scale and sign attributes. Returns nil
// for text facts.
func parseFactValue(value, scale, sign string) *float64 {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" || cleaned == "-" || cleaned == "—" || cleaned == "–" {
		return nil
	}

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.TrimSpace(cleaned)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	if negative {
		v = -v
	}
	if scale != "" {
		if s, err := strconv.Atoi(scale); err == nil {
			v *= math.Pow10(s)
		}
	}
	if sign == "-" {
		v = -v
	}
	return &v
}

func inferPeriodType(ctx *Context) PeriodType {
	if ctx.Period.IsInstant() {
		return PeriodInstant
	}
	return PeriodDuration
}

func inferDataType(f *Fact) string {
	if f.Numeric != nil {
		return "monetary"
	}
	return "string"
}
