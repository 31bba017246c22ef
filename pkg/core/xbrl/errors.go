package xbrl

import (
	"errors"
	"fmt"
)

// Hard failures. Only structurally unrecoverable documents abort; anything
// else degrades to a diagnostic and extraction continues.
var (
	// ErrUnknownEra means the document's format generation could not be
	// identified at all.
	ErrUnknownEra = errors.New("cannot identify document format era")
	// ErrNoContexts means not a single context could be built, so no fact
	// can ever resolve.
	ErrNoContexts = errors.New("document contains no parseable contexts")
)

// Severity grades a diagnostic.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// DiagnosticKind classifies the localized, non-fatal conditions produced
// during extraction and resolution.
type DiagnosticKind string

const (
	// DiagMalformedDocument: an unparseable markup fragment was skipped.
	DiagMalformedDocument DiagnosticKind = "MalformedDocument"
	// DiagUnresolvedContext: a fact referenced an undefined context id and
	// was excluded from extraction.
	DiagUnresolvedContext DiagnosticKind = "UnresolvedContext"
	// DiagUndefinedFootnoteReference: an arc target has no matching
	// footnote even after label-priority lookup.
	DiagUndefinedFootnoteReference DiagnosticKind = "UndefinedFootnoteReference"
	// DiagUnknownConcept: a fact's concept maps to no canonical line item.
	// The fact stays available in raw queries.
	DiagUnknownConcept DiagnosticKind = "UnknownConcept"
	// DiagDeprecatedOption: a caller used a retired compatibility input.
	DiagDeprecatedOption DiagnosticKind = "DeprecatedOption"
)

// Diagnostic is a localized parse or resolution finding. Diagnostics are
// collected, not thrown; statement assembly proceeds past all of them.
type Diagnostic struct {
	Kind     DiagnosticKind `json:"kind"`
	Severity Severity       `json:"severity"`
	Message  string         `json:"message"`
	Ref      string         `json:"ref,omitempty"` // offending id/label/concept
}

func (d Diagnostic) String() string {
	if d.Ref != "" {
		return fmt.Sprintf("[%s] %s (%s)", d.Kind, d.Message, d.Ref)
	}
	return fmt.Sprintf("[%s] %s", d.Kind, d.Message)
}

func diag(kind DiagnosticKind, sev Severity, ref, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Kind:     kind,
		Severity: sev,
		Message:  fmt.Sprintf(format, args...),
		Ref:      ref,
	}
}
