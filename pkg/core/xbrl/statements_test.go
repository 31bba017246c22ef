package xbrl

import (
	"testing"

	"edgar_statements/pkg/core/taxonomy"
)

func TestFindCandidates(t *testing.T) {
	f := mustFiling(t)

	tests := []struct {
		kind StatementKind
		want int
	}{
		{KindIncome, 1},
		{KindBalance, 1},
		{KindEquity, 2}, // primary plus parenthetical
		{KindCashFlow, 0},
	}
	for _, tt := range tests {
		got := FindCandidates(f.Linkbase, tt.kind)
		if len(got) != tt.want {
			t.Errorf("FindCandidates(%s) = %d candidates, want %d", tt.kind, len(got), tt.want)
		}
	}
}

// The parenthetical equity role appears earlier in the document than the
// primary statement. Selection must not depend on that ordering: the
// parenthetical penalty and the roll-forward bonus outweigh document
// position.
func TestSelectCandidateEquity(t *testing.T) {
	f := mustFiling(t)
	w := taxonomy.DefaultWeights()

	cands := FindCandidates(f.Linkbase, KindEquity)
	selected := SelectCandidate(cands, w)
	if selected == nil {
		t.Fatal("no candidate selected")
	}
	if selected.RoleURI != "http://example.com/role/StatementsOfStockholdersEquity" {
		t.Errorf("selected %q, want the primary equity role", selected.RoleURI)
	}
	// Despite the parenthetical having the earlier document order.
	for _, c := range cands {
		if c.RoleURI == selected.RoleURI {
			continue
		}
		if c.DocOrder > selected.DocOrder {
			t.Error("fixture regressed: the rejected candidate should precede the selected one in document order")
		}
	}
}

func TestSelectCandidateScoring(t *testing.T) {
	w := taxonomy.DefaultWeights()
	parenthetical := &Candidate{
		RoleURI:  "http://x/role/StockholdersEquityParenthetical",
		DocOrder: 0,
		Concepts: []string{"us-gaap:CommonStockValue"},
	}
	primary := &Candidate{
		RoleURI:  "http://x/role/StockholdersEquity",
		DocOrder: 1,
		Concepts: []string{"us-gaap:IncreaseDecreaseInStockholdersEquityRollForward", "us-gaap:CommonStockValue"},
	}

	got := SelectCandidate([]*Candidate{parenthetical, primary}, w)
	if got != primary {
		t.Fatalf("selected %q, want primary", got.RoleURI)
	}
	if parenthetical.Score != w.ParentheticalPenalty {
		t.Errorf("parenthetical score = %v, want %v", parenthetical.Score, w.ParentheticalPenalty)
	}
	if primary.Score != w.RollForwardBonus {
		t.Errorf("primary score = %v, want %v", primary.Score, w.RollForwardBonus)
	}
}

func TestSelectCandidateTieBreaksByDocOrder(t *testing.T) {
	w := taxonomy.DefaultWeights()
	a := &Candidate{RoleURI: "http://x/role/BalanceSheetA", DocOrder: 3}
	b := &Candidate{RoleURI: "http://x/role/BalanceSheetB", DocOrder: 1}

	got := SelectCandidate([]*Candidate{a, b}, w)
	if got != b {
		t.Errorf("tie should break to earliest document order, got %q", got.RoleURI)
	}
}

func TestSelectCandidateEmpty(t *testing.T) {
	if got := SelectCandidate(nil, taxonomy.DefaultWeights()); got != nil {
		t.Errorf("SelectCandidate(nil) = %v, want nil", got)
	}
}
