package xbrl

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"edgar_statements/pkg/core/taxonomy"
	"edgar_statements/pkg/models"
)

// Assemble produces the final ordered line-item × period matrix for one
// statement request. Row order follows the presentation linkbase of the
// selected candidate, falling back to the canonical taxonomy order for
// filings without a usable linkbase. Absence of the statement role is an
// explicit "not present" result, never an error.
func Assemble(f *Filing, mapping *taxonomy.Mapping, w taxonomy.Weights,
	kind StatementKind, periodCount int, view View) (*models.ResolvedStatement, error) {

	selected := SelectCandidate(FindCandidates(f.Linkbase, kind), w)

	concepts := orderedConcepts(f, mapping, kind, selected)
	if len(concepts) == 0 {
		return models.NotPresent(string(kind), string(view)), nil
	}

	byConcept := factIndex(f.Extraction.Facts)

	// A candidate role with no reported facts at all is as absent as no
	// candidate.
	if !anyReported(concepts, byConcept) {
		return models.NotPresent(string(kind), string(view)), nil
	}

	stmt := &models.ResolvedStatement{
		Present: true,
		Kind:    string(kind),
		View:    string(view),
	}
	if selected != nil {
		stmt.RoleURI = selected.RoleURI
	}

	if kind == KindEquity {
		assembleEquity(stmt, f, mapping, concepts, byConcept, periodCount, view)
	} else {
		assembleFlow(stmt, f, mapping, kind, concepts, byConcept, periodCount, view, selected)
	}
	return stmt, nil
}

// orderedConcepts returns the statement's concepts in presentation order.
// With a selected candidate the linkbase hierarchy rules; otherwise the
// canonical taxonomy order stands in, restricted to concepts the filing
// actually reports.
func orderedConcepts(f *Filing, mapping *taxonomy.Mapping, kind StatementKind, selected *Candidate) []string {
	if selected != nil && len(selected.Concepts) > 0 {
		return selected.Concepts
	}
	reported := map[string]bool{}
	for _, fact := range f.Extraction.Facts {
		reported[normalizeLocal(fact.Concept)] = true
	}
	var out []string
	for _, item := range mapping.Items(string(kind)) {
		for _, c := range item.Concepts {
			if reported[normalizeLocal(c)] {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func normalizeLocal(concept string) string {
	if i := strings.LastIndex(concept, ":"); i >= 0 {
		return concept[i+1:]
	}
	return concept
}

// factIndex groups facts by local concept name, preserving document order.
func factIndex(facts []*Fact) map[string][]*Fact {
	idx := make(map[string][]*Fact)
	for _, f := range facts {
		key := normalizeLocal(f.Concept)
		idx[key] = append(idx[key], f)
	}
	return idx
}

func anyReported(concepts []string, byConcept map[string][]*Fact) bool {
	for _, c := range concepts {
		if structuralConcept(c) {
			continue
		}
		if len(byConcept[normalizeLocal(c)]) > 0 {
			return true
		}
	}
	return false
}

// assembleFlow builds income, balance and cash-flow statements: one
// column per reporting period, one row per canonical line item, plus
// structural and dimensional rows per the view policy.
func assembleFlow(stmt *models.ResolvedStatement, f *Filing, mapping *taxonomy.Mapping,
	kind StatementKind, concepts []string, byConcept map[string][]*Fact,
	periodCount int, view View, selected *Candidate) {

	instantPeriods := kind == KindBalance
	periods := selectPeriods(f.Extraction, instantPeriods, periodCount)
	for _, p := range periods {
		col := models.PeriodColumn{Label: p.Label()}
		if p.IsInstant() {
			col.Instant = p.Instant
		} else {
			col.StartDate, col.EndDate = p.StartDate, p.EndDate
		}
		stmt.Periods = append(stmt.Periods, col)
	}

	seenKeys := map[string]bool{}
	for _, concept := range concepts {
		if structuralConcept(concept) {
			if view.includeStructural() && selected != nil {
				stmt.Rows = append(stmt.Rows, models.LineRow{
					Label:    humanizeQName(concept),
					Concept:  concept,
					Abstract: true,
					Cells:    emptyCells(len(periods)),
				})
			}
			continue
		}

		item, _, ok := mapping.Canonical(string(kind), concept)
		if !ok {
			// Retained in raw fact queries, excluded from canonical rows.
			// The filing is shared across requests, so this lands on the
			// statement, not on the filing's extraction.
			stmt.Diagnostics = append(stmt.Diagnostics,
				unknownConceptDiag(concept, string(kind)))
			continue
		}
		if seenKeys[item.Key] {
			continue // a second concept realizing the same line item
		}

		facts := byConcept[normalizeLocal(concept)]
		baseRow := models.LineRow{
			Key:     item.Key,
			Label:   item.Label,
			Concept: concept,
			Total:   item.Total,
			Cells:   make([]models.Cell, len(periods)),
		}
		if rt := roleFor(f.Linkbase, stmt.RoleURI); rt != nil {
			baseRow.Weight = rt.Weight(concept)
		}

		reported := false
		for i, p := range periods {
			if fact := matchFact(facts, p, nil); fact != nil {
				baseRow.Cells[i] = factCell(fact)
				reported = true
			}
		}
		if !reported && (view != ViewDetailed || !hasDimensionalFacts(facts)) {
			continue // concept present in presentation but never reported
		}
		seenKeys[item.Key] = true
		stmt.Rows = append(stmt.Rows, baseRow)

		if view == ViewDetailed {
			stmt.Rows = append(stmt.Rows, dimensionRows(item, concept, facts, periods)...)
		}
	}
}

// assembleEquity builds the roll-forward statement: for every reporting
// period two balance columns, start and end, populated by occurrence-order
// matching so the period-start column never shows the period-end value.
func assembleEquity(stmt *models.ResolvedStatement, f *Filing, mapping *taxonomy.Mapping,
	concepts []string, byConcept map[string][]*Fact, periodCount int, view View) {

	periods := reportingPeriods(f.Extraction)
	if periodCount > 0 && len(periods) > periodCount {
		periods = periods[:periodCount]
	}

	type column struct {
		period    Period
		beginning bool
		instant   string
		assigned  map[*Fact]rollAssignment
	}
	var cols []column
	for _, p := range periods {
		start, err := time.Parse(dateLayout, p.StartDate)
		if err != nil {
			continue
		}
		beginInstant := start.AddDate(0, 0, -1).Format(dateLayout)
		// Occurrence-order matching runs once per reporting period: the
		// same boundary fact is legitimately the ending balance of one
		// period and the beginning balance of the next.
		assigned := matchRollForward(f.Extraction.Facts, p)
		cols = append(cols,
			column{period: p, beginning: true, instant: beginInstant, assigned: assigned},
			column{period: p, beginning: false, instant: p.EndDate, assigned: assigned},
		)
		stmt.Periods = append(stmt.Periods,
			models.PeriodColumn{Label: "Balance at " + p.StartDate, Instant: beginInstant},
			models.PeriodColumn{Label: "Balance at " + p.EndDate, Instant: p.EndDate},
		)
	}

	seenKeys := map[string]bool{}
	for _, concept := range concepts {
		if structuralConcept(concept) {
			if view.includeStructural() {
				stmt.Rows = append(stmt.Rows, models.LineRow{
					Label:    humanizeQName(concept),
					Concept:  concept,
					Abstract: true,
					Cells:    emptyCells(len(cols)),
				})
			}
			continue
		}
		item, _, ok := mapping.Canonical("equity", concept)
		if !ok {
			stmt.Diagnostics = append(stmt.Diagnostics,
				unknownConceptDiag(concept, "equity"))
			continue
		}
		if seenKeys[item.Key] {
			continue
		}

		row := models.LineRow{
			Key:     item.Key,
			Label:   item.Label,
			Concept: concept,
			Total:   item.Total,
			Cells:   make([]models.Cell, len(cols)),
		}
		reported := false
		for _, fact := range byConcept[normalizeLocal(concept)] {
			if fact.Context.HasDimensions() {
				continue // component axes are not broken out in the roll-forward matrix
			}
			for i, col := range cols {
				if fact.Context.Period.IsInstant() {
					a, ok := col.assigned[fact]
					if !ok {
						continue
					}
					if a.DisplayInstant == col.instant &&
						(a.Position == BalanceBeginning) == col.beginning {
						row.Cells[i] = factCell(fact)
						reported = true
					}
				} else if !col.beginning &&
					fact.Context.Period.StartDate == col.period.StartDate &&
					fact.Context.Period.EndDate == col.period.EndDate {
					// Activity during the period lands on its closing column.
					row.Cells[i] = factCell(fact)
					reported = true
				}
			}
		}
		if !reported {
			continue
		}
		seenKeys[item.Key] = true
		stmt.Rows = append(stmt.Rows, row)
	}
}

// dimensionRows expands one line item into its dimensional break-outs,
// deduplicated by segment signature, in document order.
func dimensionRows(item taxonomy.LineItem, concept string, facts []*Fact, periods []Period) []models.LineRow {
	rows := map[string]*models.LineRow{}
	var order []string

	for _, fact := range facts {
		if !fact.Context.HasDimensions() {
			continue
		}
		sig := dimSignature(fact.Context)
		row, ok := rows[sig]
		if !ok {
			last := fact.Context.Dimensions[len(fact.Context.Dimensions)-1]
			row = &models.LineRow{
				Key:     item.Key,
				Label:   "  " + fact.Context.MemberLabel(),
				Concept: concept,
				Dimension: &models.DimensionInfo{
					Axis:        last.Axis,
					Member:      last.Member,
					Label:       fact.Context.AxisMemberLabel(),
					MemberLabel: fact.Context.MemberLabel(),
				},
				Cells: make([]models.Cell, len(periods)),
			}
			rows[sig] = row
			order = append(order, sig)
		}
		for i, p := range periods {
			if periodMatches(fact.Context.Period, p) {
				row.Cells[i] = factCell(fact)
			}
		}
	}

	out := make([]models.LineRow, 0, len(order))
	for _, sig := range order {
		out = append(out, *rows[sig])
	}
	return out
}

func dimSignature(ctx *Context) string {
	var b strings.Builder
	for _, d := range ctx.Dimensions {
		b.WriteString(d.Axis)
		b.WriteByte('=')
		b.WriteString(d.Member)
		b.WriteByte(';')
	}
	return b.String()
}

// selectPeriods returns the filing's reporting periods of the wanted
// shape, most recent first, capped at periodCount (0 means all).
func selectPeriods(ext *Extraction, instant bool, periodCount int) []Period {
	var periods []Period
	if instant {
		seen := map[string]bool{}
		for _, ctx := range ext.Contexts {
			p := ctx.Period
			if !p.IsInstant() || ctx.HasDimensions() || seen[p.Instant] {
				continue
			}
			seen[p.Instant] = true
			periods = append(periods, p)
		}
		sort.SliceStable(periods, func(i, j int) bool {
			return periods[i].Instant > periods[j].Instant
		})
	} else {
		periods = reportingPeriods(ext)
	}
	if periodCount > 0 && len(periods) > periodCount {
		periods = periods[:periodCount]
	}
	return periods
}

// matchFact finds the non-dimensional fact for a concept and period.
func matchFact(facts []*Fact, p Period, _ []Dimension) *Fact {
	for _, f := range facts {
		if f.Context.HasDimensions() {
			continue
		}
		if periodMatches(f.Context.Period, p) {
			return f
		}
	}
	return nil
}

func periodMatches(a, b Period) bool {
	if b.IsInstant() {
		return a.Instant == b.Instant
	}
	return a.StartDate == b.StartDate && a.EndDate == b.EndDate
}

func factCell(f *Fact) models.Cell {
	return models.Cell{Reported: true, Value: f.Numeric, Raw: f.Value}
}

func emptyCells(n int) []models.Cell {
	return make([]models.Cell, n)
}

func hasDimensionalFacts(facts []*Fact) bool {
	for _, f := range facts {
		if f.Context.HasDimensions() {
			return true
		}
	}
	return false
}

func unknownConceptDiag(concept, kind string) models.Diagnostic {
	return models.Diagnostic{
		Kind:     string(DiagUnknownConcept),
		Severity: string(SeverityInfo),
		Message:  fmt.Sprintf("concept %s maps to no canonical %s line item", concept, kind),
		Ref:      concept,
	}
}

func roleFor(lb *Linkbase, uri string) *RoleTree {
	if uri == "" {
		return nil
	}
	return lb.Role(uri)
}
