// Package validate provides cross-checks over resolved statements. These
// functions can be called from tests, API handlers, or batch tooling to
// verify that a resolution is internally consistent before it is served
// or persisted.
package validate

import (
	"fmt"
	"math"

	"edgar_statements/pkg/models"
)

// relTolerance absorbs rounding introduced by the filer's own decimals
// attribute; reported totals rarely foot to the penny.
const relTolerance = 0.005

// Issue is one failed consistency check. Issues are advisory: a statement
// with issues is still served, the same way extraction diagnostics never
// block assembly.
type Issue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Row     string `json:"row,omitempty"` // offending canonical line-item key
}

func (i Issue) String() string {
	if i.Row != "" {
		return fmt.Sprintf("[%s] %s (%s)", i.Code, i.Message, i.Row)
	}
	return fmt.Sprintf("[%s] %s", i.Code, i.Message)
}

// CheckStatement runs every check applicable to the statement's kind.
// Absent statements have nothing to validate.
func CheckStatement(stmt *models.ResolvedStatement) []Issue {
	if stmt == nil || !stmt.Present {
		return nil
	}
	var issues []Issue
	switch stmt.Kind {
	case "balance":
		issues = append(issues, checkBalanceEquation(stmt)...)
	case "equity":
		issues = append(issues, checkBalanceContinuity(stmt)...)
	}
	issues = append(issues, checkEmptyColumns(stmt)...)
	return issues
}

// checkBalanceEquation verifies total assets against total liabilities and
// equity, column by column, wherever both sides are reported.
func checkBalanceEquation(stmt *models.ResolvedStatement) []Issue {
	assets := rowByKey(stmt, "total_assets")
	liabEquity := rowByKey(stmt, "total_liabilities_equity")
	if assets == nil || liabEquity == nil {
		return nil
	}

	var issues []Issue
	for i := range stmt.Periods {
		a, okA := cellValue(assets, i)
		le, okLE := cellValue(liabEquity, i)
		if !okA || !okLE {
			continue
		}
		if !withinTolerance(a, le) {
			issues = append(issues, Issue{
				Code: "BalanceEquation",
				Row:  "total_assets",
				Message: fmt.Sprintf("%s: assets %v vs liabilities and equity %v",
					stmt.Periods[i].Label, a, le),
			})
		}
	}
	return issues
}

// checkBalanceContinuity verifies the roll-forward chain: two balance
// columns displayed at the same instant (the end of one period and the
// start of the next) must agree row by row.
func checkBalanceContinuity(stmt *models.ResolvedStatement) []Issue {
	var issues []Issue
	for i := range stmt.Periods {
		for j := i + 1; j < len(stmt.Periods); j++ {
			if stmt.Periods[i].Instant == "" || stmt.Periods[i].Instant != stmt.Periods[j].Instant {
				continue
			}
			for _, row := range stmt.Rows {
				if row.Abstract {
					continue
				}
				a, okA := cellValue(&row, i)
				b, okB := cellValue(&row, j)
				if !okA || !okB {
					continue
				}
				if !withinTolerance(a, b) {
					issues = append(issues, Issue{
						Code: "RollForwardContinuity",
						Row:  row.Key,
						Message: fmt.Sprintf("balance at %s reported as both %v and %v",
							stmt.Periods[i].Instant, a, b),
					})
				}
			}
		}
	}
	return issues
}

// checkEmptyColumns flags period columns no row reports into, which
// usually means period selection overshot what the filing covers.
func checkEmptyColumns(stmt *models.ResolvedStatement) []Issue {
	var issues []Issue
	for i, p := range stmt.Periods {
		reported := false
		for _, row := range stmt.Rows {
			if i < len(row.Cells) && row.Cells[i].Reported {
				reported = true
				break
			}
		}
		if !reported {
			issues = append(issues, Issue{
				Code:    "EmptyPeriod",
				Message: fmt.Sprintf("no line item reports a value for %s", p.Label),
			})
		}
	}
	return issues
}

func rowByKey(stmt *models.ResolvedStatement, key string) *models.LineRow {
	for i := range stmt.Rows {
		if stmt.Rows[i].Key == key && stmt.Rows[i].Dimension == nil {
			return &stmt.Rows[i]
		}
	}
	return nil
}

func cellValue(row *models.LineRow, i int) (float64, bool) {
	if i >= len(row.Cells) {
		return 0, false
	}
	c := row.Cells[i]
	if !c.Reported || c.Value == nil {
		return 0, false
	}
	return *c.Value, true
}

func withinTolerance(a, b float64) bool {
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= scale*relTolerance+1e-9
}
