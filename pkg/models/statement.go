// Package models holds the derived output shapes consumed by API callers.
package models

// DimensionInfo describes the dimensional scope of a break-out row. The
// member-only label comes from the last, most specific axis.
type DimensionInfo struct {
	Axis        string `json:"axis"`         // qualified axis name
	Member      string `json:"member"`       // qualified member name
	Label       string `json:"label"`        // "Axis: Member" display form
	MemberLabel string `json:"member_label"` // member-only display form
}

// Cell is one statement matrix cell: a reported value or "not reported".
type Cell struct {
	Reported bool     `json:"reported"`
	Value    *float64 `json:"value,omitempty"`
	Raw      string   `json:"raw,omitempty"` // value as filed, for text facts
}

// LineRow is one ordered row of a resolved statement.
type LineRow struct {
	Key         string         `json:"key"`     // canonical line-item key, "" for unmapped rows
	Label       string         `json:"label"`
	Concept     string         `json:"concept"` // qualified concept qname
	Abstract    bool           `json:"abstract,omitempty"`
	Total       bool           `json:"total,omitempty"`
	Weight      float64        `json:"weight,omitempty"` // calculation linkbase weight
	Dimension   *DimensionInfo `json:"dimension,omitempty"`
	Cells       []Cell         `json:"cells"`
}

// PeriodColumn is one ordered period of a resolved statement. Roll-forward
// balance columns carry the display instant; flow columns carry the range.
type PeriodColumn struct {
	Label     string `json:"label"`
	Instant   string `json:"instant,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Diagnostic is a non-fatal finding raised while resolving one statement
// request, such as a presentation concept with no canonical line item.
// Filing-level parse findings stay on the filing; these belong to the
// single request that produced them.
type Diagnostic struct {
	Kind     string `json:"kind"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Ref      string `json:"ref,omitempty"`
}

// ResolvedStatement is the final ordered line-item × period matrix for one
// (filing, kind, periods, view) request. Derived on demand, never mutated;
// identical requests yield identical output.
type ResolvedStatement struct {
	Present     bool           `json:"present"`
	Kind        string         `json:"kind"`
	RoleURI     string         `json:"role_uri,omitempty"`
	View        string         `json:"view"`
	Periods     []PeriodColumn `json:"periods"`
	Rows        []LineRow      `json:"rows"`
	Diagnostics []Diagnostic   `json:"diagnostics,omitempty"`
}

// NotPresent is the explicit absent result for a statement role the
// filing simply does not carry.
func NotPresent(kind, view string) *ResolvedStatement {
	return &ResolvedStatement{Present: false, Kind: kind, View: view}
}
