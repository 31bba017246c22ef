package xbrl

import (
	"fmt"
)

// Filing is one filed artifact after full parsing: the fact/context
// extraction from its instance document plus the merged linkbase from any
// companion documents. Immutable once built; safe to share across
// goroutines.
type Filing struct {
	ID         string
	Extraction *Extraction
	Linkbase   *Linkbase
	Footnotes  map[string][]*Footnote // fact locator label -> resolved footnotes
}

// NewFiling normalizes and assembles a filing from its raw documents. The
// first document yielding contexts becomes the instance; every document
// contributes to the linkbase. Parsing one filing is single-threaded and
// side effect free.
func NewFiling(id string, docs ...*Document) (*Filing, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("filing %s has no documents", id)
	}

	f := &Filing{ID: id, Linkbase: NewLinkbase()}
	for _, doc := range docs {
		f.Linkbase.Merge(doc)
		if f.Extraction != nil {
			continue
		}
		ext, err := Extract(doc)
		if err == ErrNoContexts {
			continue // linkbase-only document
		}
		if err != nil {
			return nil, fmt.Errorf("failed to extract filing %s: %w", id, err)
		}
		f.Extraction = ext
	}
	if f.Extraction == nil {
		return nil, fmt.Errorf("filing %s: %w", id, ErrNoContexts)
	}

	f.Footnotes = f.Extraction.ResolveFootnotes()
	return f, nil
}

// Diagnostics returns everything collected during normalization,
// extraction and footnote resolution.
func (f *Filing) Diagnostics() []Diagnostic {
	return f.Extraction.Diagnostics
}

// Facts returns the raw extracted facts, including those that map to no
// canonical line item.
func (f *Filing) Facts() []*Fact {
	return f.Extraction.Facts
}
