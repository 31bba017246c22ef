// Package xbrl resolves SEC filing markup into coherent financial statements.
//
// The pipeline is: normalize era-specific markup into one element tree,
// extract facts/contexts/footnotes from that tree, link footnotes, select
// the authoritative statement candidate per role, match roll-forward
// periods, and assemble the final line-item matrix.
package xbrl

import (
	"fmt"
	"strings"
	"time"
)

// FormatEra identifies the structural generation of a filed document.
type FormatEra string

const (
	EraLegacySGML FormatEra = "legacy-sgml"  // pre-2001 SGML submissions
	EraXMLXBRL    FormatEra = "xml-xbrl"     // standalone XBRL instance/linkbase XML (~2005-2015)
	EraInlineXBRL FormatEra = "inline-xbrl"  // iXBRL embedded in HTML (2015-present)
)

// StatementKind is the closed set of logical statement roles.
type StatementKind string

const (
	KindIncome   StatementKind = "income"
	KindBalance  StatementKind = "balance"
	KindCashFlow StatementKind = "cashflow"
	KindEquity   StatementKind = "equity"
)

// PeriodType distinguishes point-in-time from date-range concepts.
type PeriodType string

const (
	PeriodInstant  PeriodType = "instant"
	PeriodDuration PeriodType = "duration"
)

// BalanceType is the debit/credit nature of a concept.
type BalanceType string

const (
	BalanceDebit  BalanceType = "debit"
	BalanceCredit BalanceType = "credit"
	BalanceNone   BalanceType = "none"
)

const dateLayout = "2006-01-02"

// Concept is a taxonomy element. Concepts are read-only reference data
// shared by facts; they are never mutated after extraction.
type Concept struct {
	Namespace  string // prefix as written in the filing, e.g. "us-gaap"
	Name       string // local name, e.g. "CashAndCashEquivalents"
	PeriodType PeriodType
	Balance    BalanceType
	DataType   string
}

// QName returns the qualified "namespace:LocalName" form.
func (c Concept) QName() string {
	if c.Namespace == "" {
		return c.Name
	}
	return c.Namespace + ":" + c.Name
}

// Period is the reporting period of a context, either an instant or a
// start/end duration. Dates keep the wire "2006-01-02" form.
type Period struct {
	Instant   string
	StartDate string
	EndDate   string
}

// IsInstant reports whether the period is a single point in time.
func (p Period) IsInstant() bool {
	return p.Instant != ""
}

// IsDuration reports whether the period is a date range.
func (p Period) IsDuration() bool {
	return p.StartDate != "" && p.EndDate != ""
}

// End returns the period's end date (the instant for instant periods).
func (p Period) End() string {
	if p.Instant != "" {
		return p.Instant
	}
	return p.EndDate
}

// EndTime parses the period end date.
func (p Period) EndTime() (time.Time, error) {
	end := p.End()
	if end == "" {
		return time.Time{}, fmt.Errorf("period has no end date or instant")
	}
	return time.Parse(dateLayout, end)
}

// Label returns a human-readable period label.
func (p Period) Label() string {
	if p.Instant != "" {
		return p.Instant
	}
	if p.IsDuration() {
		return fmt.Sprintf("%s to %s", p.StartDate, p.EndDate)
	}
	return "Unknown"
}

// Dimension is one axis/member pair of a context's segment.
type Dimension struct {
	Axis   string // qualified axis name, e.g. "us-gaap:StatementBusinessSegmentsAxis"
	Member string // qualified member name, e.g. "country:US"
}

// Context is the reporting scope a fact was tagged under. Contexts are
// keyed by their document-local id and are immutable once parsed.
type Context struct {
	ID         string
	Entity     string // entity identifier (CIK)
	Period     Period
	Dimensions []Dimension // segment axis/member pairs in document order
}

// HasDimensions reports whether the context carries any segment axes.
func (c *Context) HasDimensions() bool {
	return len(c.Dimensions) > 0
}

// MemberLabel returns the display label for the context's most specific
// dimension member. With multiple axes the LAST axis wins: a fact that is
// segmented by both business unit and geography should surface "Americas",
// not "Operating segments".
func (c *Context) MemberLabel() string {
	if len(c.Dimensions) == 0 {
		return ""
	}
	last := c.Dimensions[len(c.Dimensions)-1]
	return humanizeQName(last.Member)
}

// AxisMemberLabel returns the full "Axis: Member" label for the most
// specific dimension.
func (c *Context) AxisMemberLabel() string {
	if len(c.Dimensions) == 0 {
		return ""
	}
	last := c.Dimensions[len(c.Dimensions)-1]
	return humanizeQName(last.Axis) + ": " + humanizeQName(last.Member)
}

// Fact is one atomic reported value. A fact never exists without a
// resolvable context; extraction drops facts whose contextRef cannot be
// resolved and records an UnresolvedContext diagnostic instead.
type Fact struct {
	Concept    string // qualified concept name
	Value      string // raw string value as filed
	ContextRef string
	UnitRef    string
	Decimals   string
	Context    *Context // resolved; never nil on an extracted fact
	Numeric    *float64 // parsed numeric value, nil for text facts
	Order      int      // document occurrence order within the filing
	ID         string   // element id attribute when present (arc anchor)
}

// Float64 returns the parsed numeric value.
func (f *Fact) Float64() (float64, error) {
	if f.Numeric == nil {
		return 0, fmt.Errorf("fact %s has no numeric value", f.Concept)
	}
	return *f.Numeric, nil
}

// Footnote is a free-text annotation keyed by its XLink label. The label
// attribute, not the auxiliary id attribute, is the lookup key: in filings
// before roughly 2016 the two hold different strings for the same element,
// and arcs always point at the label.
type Footnote struct {
	Label string // xlink:label, the key arcs resolve against
	ID    string // auxiliary id attribute, informational only
	Text  string
	Lang  string
	Role  string
}

// FootnoteArc is a directed edge from a fact location to a footnote label.
type FootnoteArc struct {
	From  string // fact locator label
	To    string // footnote label key
	Order int
}

// humanizeQName converts "us-gaap:AmericasSegmentMember" into a readable
// "Americas Segment" style label.
func humanizeQName(qname string) string {
	local := qname
	if i := strings.LastIndex(qname, ":"); i >= 0 {
		local = qname[i+1:]
	}
	local = strings.TrimSuffix(local, "Member")
	local = strings.TrimSuffix(local, "Axis")
	local = strings.TrimSuffix(local, "Domain")
	if local == "" {
		return qname
	}
	var b strings.Builder
	for i, r := range local {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := rune(local[i-1])
			if prev < 'A' || prev > 'Z' {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
