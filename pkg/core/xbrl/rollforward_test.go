package xbrl

import (
	"testing"
)

func rollFixtureFacts() []*Fact {
	i2021 := &Context{ID: "i2021", Period: Period{Instant: "2021-12-31"}}
	i2022 := &Context{ID: "i2022", Period: Period{Instant: "2022-12-31"}}
	i2023 := &Context{ID: "i2023", Period: Period{Instant: "2023-12-31"}}
	fy23 := &Context{ID: "cFY23", Period: Period{StartDate: "2023-01-01", EndDate: "2023-12-31"}}

	f := func(v float64) *float64 { return &v }
	// Document order matters: the filing reports each balance concept at
	// the period start before the period end.
	return []*Fact{
		{Concept: "us-gaap:CommonStockValue", Context: i2021, Numeric: f(40), Order: 0},
		{Concept: "us-gaap:CommonStockValue", Context: i2022, Numeric: f(42), Order: 1},
		{Concept: "us-gaap:CommonStockValue", Context: i2023, Numeric: f(45), Order: 2},
		{Concept: "us-gaap:NetIncomeLoss", Context: fy23, Numeric: f(100), Order: 3},
	}
}

func TestMatchRollForward(t *testing.T) {
	facts := rollFixtureFacts()
	fy23 := Period{StartDate: "2023-01-01", EndDate: "2023-12-31"}

	assigned := matchRollForward(facts, fy23)

	// The 2021 instant is outside FY2023's boundaries; the duration fact
	// is not a balance at all.
	if len(assigned) != 2 {
		t.Fatalf("assignments = %d, want 2", len(assigned))
	}

	begin, ok := assigned[facts[1]] // 2022-12-31 occurrence
	if !ok {
		t.Fatal("period-start occurrence not assigned")
	}
	if begin.Position != BalanceBeginning {
		t.Errorf("first occurrence position = %q, want beginning", begin.Position)
	}
	if begin.DisplayInstant != "2022-12-31" {
		t.Errorf("beginning display instant = %q, want 2022-12-31 (start minus one day)", begin.DisplayInstant)
	}

	end, ok := assigned[facts[2]] // 2023-12-31 occurrence
	if !ok {
		t.Fatal("period-end occurrence not assigned")
	}
	if end.Position != BalanceEnding {
		t.Errorf("second occurrence position = %q, want ending", end.Position)
	}
	if end.DisplayInstant != "2023-12-31" {
		t.Errorf("ending display instant = %q, want 2023-12-31", end.DisplayInstant)
	}
}

// A fact at a fiscal-year boundary is the ending balance of one period and
// the beginning balance of the next. Assignment is per reporting period,
// never global.
func TestMatchRollForwardBoundaryFactServesBothPeriods(t *testing.T) {
	facts := rollFixtureFacts()
	boundary := facts[1] // instant 2022-12-31

	fy22 := matchRollForward(facts, Period{StartDate: "2022-01-01", EndDate: "2022-12-31"})
	fy23 := matchRollForward(facts, Period{StartDate: "2023-01-01", EndDate: "2023-12-31"})

	if a := fy22[boundary]; a.Position != BalanceEnding {
		t.Errorf("boundary fact in FY2022 = %q, want ending", a.Position)
	}
	if a := fy23[boundary]; a.Position != BalanceBeginning {
		t.Errorf("boundary fact in FY2023 = %q, want beginning", a.Position)
	}
}

func TestMatchRollForwardNonDuration(t *testing.T) {
	facts := rollFixtureFacts()
	if got := matchRollForward(facts, Period{Instant: "2023-12-31"}); len(got) != 0 {
		t.Errorf("instant periods have no roll-forward, got %d assignments", len(got))
	}
}

func TestReportingPeriods(t *testing.T) {
	ext := &Extraction{Contexts: map[string]*Context{
		"fy23": {ID: "fy23", Period: Period{StartDate: "2023-01-01", EndDate: "2023-12-31"}},
		"fy22": {ID: "fy22", Period: Period{StartDate: "2022-01-01", EndDate: "2022-12-31"}},
		"q4":   {ID: "q4", Period: Period{StartDate: "2023-10-01", EndDate: "2023-11-15"}}, // sub-annual noise, under two months
		"dim": {ID: "dim",
			Period:     Period{StartDate: "2023-01-01", EndDate: "2023-12-31"},
			Dimensions: []Dimension{{Axis: "us-gaap:StatementBusinessSegmentsAxis", Member: "us-gaap:OperatingSegmentsMember"}}},
		"i23": {ID: "i23", Period: Period{Instant: "2023-12-31"}},
	}}

	periods := reportingPeriods(ext)
	if len(periods) != 2 {
		t.Fatalf("period count = %d, want 2 (noise, dimensional and instant contexts excluded)", len(periods))
	}
	if periods[0].EndDate != "2023-12-31" || periods[1].EndDate != "2022-12-31" {
		t.Errorf("periods not most-recent-first: %v", periods)
	}
}
