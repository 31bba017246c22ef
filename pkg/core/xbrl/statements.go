package xbrl

import (
	"sort"
	"strings"

	"edgar_statements/pkg/core/taxonomy"
)

// Candidate is one realization of a logical statement role inside a
// filing. A filing commonly carries several for the same role: the
// primary statement plus a near-duplicate "parenthetical" disclosure with
// overlapping concepts. Exactly one candidate is authoritative.
type Candidate struct {
	RoleURI    string
	Definition string
	DocOrder   int
	Concepts   []string // presentation order
	Score      float64
}

// rolePatterns identify which extended link roles realize each logical
// statement. Matched case-insensitively against the role URI and its
// definition text.
var rolePatterns = map[StatementKind][]string{
	KindIncome:   {"statementofincome", "statementsofincome", "incomestatement", "statementofoperations", "statementsofoperations", "income statement", "statements of operations", "statements of income"},
	KindBalance:  {"balancesheet", "statementoffinancialposition", "balance sheet", "financial position"},
	KindCashFlow: {"cashflow", "statementofcashflows", "cash flow"},
	KindEquity:   {"stockholdersequity", "shareholdersequity", "changesinequity", "stockholders equity", "shareholders equity", "changes in equity"},
}

// FindCandidates returns every role realizing the requested statement
// kind, in document order. Empty means the statement is not present in
// this filing, which is a valid outcome, not an error.
func FindCandidates(lb *Linkbase, kind StatementKind) []*Candidate {
	patterns := rolePatterns[kind]
	var out []*Candidate
	for _, rt := range lb.Roles {
		haystack := strings.ToLower(rt.RoleURI + " " + rt.Definition)
		for _, p := range patterns {
			if strings.Contains(haystack, p) {
				out = append(out, &Candidate{
					RoleURI:    rt.RoleURI,
					Definition: rt.Definition,
					DocOrder:   rt.DocOrder,
					Concepts:   rt.Concepts(),
				})
				break
			}
		}
	}
	return out
}

// SelectCandidate scores the candidates and picks the authoritative one.
// Parenthetical naming draws a strong negative penalty; a roll-forward
// concept draws a bonus, since genuine primary equity statements carry
// roll-forward semantics and parentheticals do not. Highest score wins;
// ties break by earliest document order so selection is reproducible.
// Returns nil for an empty candidate list.
func SelectCandidate(cands []*Candidate, w taxonomy.Weights) *Candidate {
	if len(cands) == 0 {
		return nil
	}
	for _, c := range cands {
		c.Score = 0
		if isParenthetical(c) {
			c.Score += w.ParentheticalPenalty
		}
		if hasRollForward(c) {
			c.Score += w.RollForwardBonus
		}
	}
	sorted := append([]*Candidate(nil), cands...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].DocOrder < sorted[j].DocOrder
	})
	return sorted[0]
}

func isParenthetical(c *Candidate) bool {
	haystack := strings.ToLower(c.RoleURI + " " + c.Definition)
	return strings.Contains(haystack, "parenthetical")
}

func hasRollForward(c *Candidate) bool {
	for _, concept := range c.Concepts {
		local := concept
		if i := strings.LastIndex(concept, ":"); i >= 0 {
			local = concept[i+1:]
		}
		if strings.HasSuffix(local, "RollForward") {
			return true
		}
	}
	return false
}
