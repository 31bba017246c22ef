package xbrl

// footnoteKey returns the lookup key a footnote element is stored under.
//
// Arcs reference footnotes through the XLink label value in their "to"
// attribute. In filings before roughly 2016 the footnote's id attribute
// and its xlink:label hold different strings for the same element; later
// filings write the same value in both. Checking the label first works for
// every era. Checking id first stores older footnotes under a key no arc
// ever carries, making every lookup "fail" even though the text exists.
func footnoteKey(n *Node) string {
	if label := n.Attr("xlink:label"); label != "" {
		return label
	}
	return n.Attr("id")
}

// ResolveFootnotes resolves every arc to its footnote. An arc that still
// has no target after label-priority lookup is a genuine undefined
// reference, surfaced as a low-severity diagnostic; it never blocks
// statement assembly. The returned map is keyed by the arc's "from"
// locator label.
func (e *Extraction) ResolveFootnotes() map[string][]*Footnote {
	resolved := make(map[string][]*Footnote)
	for _, arc := range e.Arcs {
		fn, ok := e.Footnotes[arc.To]
		if !ok {
			e.Diagnostics = append(e.Diagnostics,
				diag(DiagUndefinedFootnoteReference, SeverityInfo, arc.To,
					"footnote arc target has no matching footnote"))
			continue
		}
		resolved[arc.From] = append(resolved[arc.From], fn)
	}
	return resolved
}

// UnresolvedArcs counts arcs whose targets do not match any footnote
// label. After correct extraction this is zero for well-formed filings of
// every era.
func (e *Extraction) UnresolvedArcs() int {
	n := 0
	for _, arc := range e.Arcs {
		if _, ok := e.Footnotes[arc.To]; !ok {
			n++
		}
	}
	return n
}
