package xbrl

import (
	"sort"
	"time"
)

// BalancePosition tags a roll-forward fact occurrence.
type BalancePosition string

const (
	BalanceBeginning BalancePosition = "beginning"
	BalanceEnding    BalancePosition = "ending"
)

// rollAssignment is the resolved placement of one roll-forward fact: which
// side of the period it belongs to and the instant it should display at.
type rollAssignment struct {
	Position       BalancePosition
	DisplayInstant string
}

// matchRollForward assigns duplicated roll-forward occurrences within one
// reporting period. Equity statements report the same concept (say
// "CommonStockValue") at both period boundaries; the only reliable
// distinguisher is occurrence order. The first occurrence of a concept
// within the period is the beginning balance, displayed at
// instant(start-1d); later occurrences are ending balances, displayed at
// instant(end). Getting this backwards puts the period-end value on the
// "Balance at period start" row.
func matchRollForward(facts []*Fact, period Period) map[*Fact]rollAssignment {
	assignments := make(map[*Fact]rollAssignment)
	if !period.IsDuration() {
		return assignments
	}
	start, err := time.Parse(dateLayout, period.StartDate)
	if err != nil {
		return assignments
	}
	beginInstant := start.AddDate(0, 0, -1).Format(dateLayout)
	endInstant := period.EndDate

	seen := make(map[string]bool) // concept -> beginning already taken
	for _, f := range facts {    // facts arrive in document order
		if !f.Context.Period.IsInstant() {
			continue
		}
		instant := f.Context.Period.Instant
		if instant != beginInstant && instant != endInstant {
			continue // outside this reporting period's boundaries
		}
		if !seen[f.Concept] {
			seen[f.Concept] = true
			assignments[f] = rollAssignment{Position: BalanceBeginning, DisplayInstant: beginInstant}
		} else {
			assignments[f] = rollAssignment{Position: BalanceEnding, DisplayInstant: endInstant}
		}
	}
	return assignments
}

// reportingPeriods derives the filing's duration reporting periods from
// its contexts, most recent first, skipping dimensional contexts and
// sub-annual noise shorter than two months.
func reportingPeriods(ext *Extraction) []Period {
	seen := map[string]bool{}
	var periods []Period
	for _, ctx := range ext.Contexts {
		p := ctx.Period
		if !p.IsDuration() || ctx.HasDimensions() {
			continue
		}
		start, err1 := time.Parse(dateLayout, p.StartDate)
		end, err2 := time.Parse(dateLayout, p.EndDate)
		if err1 != nil || err2 != nil {
			continue
		}
		if end.Sub(start) < 60*24*time.Hour {
			continue
		}
		key := p.StartDate + "|" + p.EndDate
		if seen[key] {
			continue
		}
		seen[key] = true
		periods = append(periods, p)
	}
	sort.SliceStable(periods, func(i, j int) bool {
		if periods[i].EndDate != periods[j].EndDate {
			return periods[i].EndDate > periods[j].EndDate
		}
		return periods[i].StartDate > periods[j].StartDate
	})
	return periods
}
