package xbrl

import (
	"fmt"
	"log"
	"strings"
)

// View is the resolution-time presentation policy for dimensional facts.
// It is never stored state; the same filing resolves differently under
// different views.
type View string

const (
	// ViewStandard is face-value presentation: dimensional breakouts and
	// structural-only placeholder elements are suppressed. Default for
	// human-facing rendering.
	ViewStandard View = "STANDARD"
	// ViewDetailed includes every dimensional breakout as additional
	// rows. Default for analytical export.
	ViewDetailed View = "DETAILED"
	// ViewSummary keeps only non-dimensional top-level aggregates; any
	// fact tied to a non-trivial dimension is excluded entirely.
	ViewSummary View = "SUMMARY"
)

// ParseView parses a view name, case-insensitively.
func ParseView(s string) (View, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "STANDARD":
		return ViewStandard, nil
	case "DETAILED":
		return ViewDetailed, nil
	case "SUMMARY":
		return ViewSummary, nil
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// ViewFromLegacyToggle maps the retired include_dimensions boolean onto
// the view it always meant: true was DETAILED, false was STANDARD. Kept
// for one compatibility window; every use logs a deprecation warning.
func ViewFromLegacyToggle(includeDimensions bool) View {
	log.Printf("[DEPRECATED] include_dimensions is deprecated; use view=DETAILED or view=STANDARD")
	if includeDimensions {
		return ViewDetailed
	}
	return ViewStandard
}

// includeStructural reports whether placeholder presentation elements
// (abstract headers, roll-forward wrappers) appear as rows. They carry no
// independent economic meaning and only DETAILED and STANDARD keep them
// for structure.
func (v View) includeStructural() bool {
	return v != ViewSummary
}

// structuralConcept identifies taxonomy placeholder elements that never
// carry a reported value.
func structuralConcept(concept string) bool {
	local := concept
	if i := strings.LastIndex(concept, ":"); i >= 0 {
		local = concept[i+1:]
	}
	return strings.HasSuffix(local, "Abstract") ||
		strings.HasSuffix(local, "RollForward") ||
		strings.HasSuffix(local, "Axis") ||
		strings.HasSuffix(local, "Domain") ||
		strings.HasSuffix(local, "LineItems") ||
		strings.HasSuffix(local, "Table")
}
