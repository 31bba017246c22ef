package xbrl

import (
	"fmt"
	"sort"
	"strings"
)

// FactQuery is a fluent filter over a filing's raw extracted facts. Every
// fact is reachable here, including concepts that map to no canonical
// line item.
type FactQuery struct {
	facts        []*Fact
	concepts     []string
	periodEnd    string
	instantOnly  bool
	durationOnly bool
	noDimensions bool
}

// Query starts a raw fact query over the filing.
func (f *Filing) Query() *FactQuery {
	return &FactQuery{facts: f.Extraction.Facts}
}

// ByConcept keeps facts whose concept matches any given name, with or
// without namespace prefix.
func (q *FactQuery) ByConcept(concepts ...string) *FactQuery {
	q.concepts = concepts
	return q
}

// ForPeriodEndingOn keeps facts whose period ends on the given date.
func (q *FactQuery) ForPeriodEndingOn(date string) *FactQuery {
	q.periodEnd = date
	return q
}

// InstantOnly keeps point-in-time facts.
func (q *FactQuery) InstantOnly() *FactQuery {
	q.instantOnly = true
	return q
}

// DurationOnly keeps date-range facts.
func (q *FactQuery) DurationOnly() *FactQuery {
	q.durationOnly = true
	return q
}

// WithoutDimensions keeps facts reported at face value only.
func (q *FactQuery) WithoutDimensions() *FactQuery {
	q.noDimensions = true
	return q
}

// Get returns all matching facts in document order.
func (q *FactQuery) Get() []*Fact {
	var out []*Fact
	for _, f := range q.facts {
		if len(q.concepts) > 0 && !q.matchConcept(f) {
			continue
		}
		if q.periodEnd != "" && f.Context.Period.End() != q.periodEnd {
			continue
		}
		if q.instantOnly && !f.Context.Period.IsInstant() {
			continue
		}
		if q.durationOnly && !f.Context.Period.IsDuration() {
			continue
		}
		if q.noDimensions && f.Context.HasDimensions() {
			continue
		}
		out = append(out, f)
	}
	return out
}

// First returns the first match in document order.
func (q *FactQuery) First() (*Fact, error) {
	got := q.Get()
	if len(got) == 0 {
		return nil, fmt.Errorf("no facts match query")
	}
	return got[0], nil
}

// MostRecent returns the match with the latest period end.
func (q *FactQuery) MostRecent() (*Fact, error) {
	got := q.Get()
	if len(got) == 0 {
		return nil, fmt.Errorf("no facts match query")
	}
	sort.SliceStable(got, func(i, j int) bool {
		return got[i].Context.Period.End() > got[j].Context.Period.End()
	})
	return got[0], nil
}

func (q *FactQuery) matchConcept(f *Fact) bool {
	for _, c := range q.concepts {
		if strings.EqualFold(f.Concept, c) ||
			strings.EqualFold(normalizeLocal(f.Concept), normalizeLocal(c)) {
			return true
		}
	}
	return false
}
