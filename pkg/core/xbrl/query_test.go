package xbrl

import (
	"testing"
)

func TestQueryByConcept(t *testing.T) {
	f := mustFiling(t)

	// Prefix-insensitive: a bare local name matches the qualified concept.
	got := f.Query().ByConcept("Revenues").WithoutDimensions().DurationOnly().Get()
	if len(got) != 2 {
		t.Fatalf("face-value revenue facts = %d, want 2", len(got))
	}
	for _, fact := range got {
		if fact.Context.HasDimensions() {
			t.Errorf("dimensional fact leaked through WithoutDimensions: %+v", fact.Context)
		}
	}
}

func TestQueryMostRecent(t *testing.T) {
	f := mustFiling(t)

	fact, err := f.Query().ByConcept("us-gaap:Assets").InstantOnly().MostRecent()
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if fact.Context.Period.Instant != "2023-12-31" {
		t.Errorf("most recent assets instant = %q, want 2023-12-31", fact.Context.Period.Instant)
	}
	v, err := fact.Float64()
	if err != nil || v != 1200 {
		t.Errorf("most recent assets = %v (%v), want 1200", v, err)
	}
}

func TestQueryPeriodEnd(t *testing.T) {
	f := mustFiling(t)

	got := f.Query().ByConcept("NetIncomeLoss").ForPeriodEndingOn("2022-12-31").Get()
	if len(got) != 1 {
		t.Fatalf("matches = %d, want 1", len(got))
	}
	if v, _ := got[0].Float64(); v != 90 {
		t.Errorf("FY2022 net income = %v, want 90", v)
	}
}

func TestQueryNoMatch(t *testing.T) {
	f := mustFiling(t)
	if _, err := f.Query().ByConcept("us-gaap:NothingReported").First(); err == nil {
		t.Error("expected an error for an empty result")
	}
}
