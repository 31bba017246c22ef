package xbrl

import (
	"strings"
	"testing"
)

func TestFootnoteKeyPrefersLabel(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			"divergent label and id",
			&Node{Local: "footnote", Attrs: map[string]string{"id": "FN_0", "xlink:label": "lbl_footnote_0"}},
			"lbl_footnote_0",
		},
		{
			"identical label and id",
			&Node{Local: "footnote", Attrs: map[string]string{"id": "fn1", "xlink:label": "fn1"}},
			"fn1",
		},
		{
			"id only",
			&Node{Local: "footnote", Attrs: map[string]string{"id": "FN_2"}},
			"FN_2",
		},
		{
			"neither",
			&Node{Local: "footnote", Attrs: map[string]string{}},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := footnoteKey(tt.node); got != tt.want {
				t.Errorf("footnoteKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

// An older-era footnote whose id and xlink:label diverge must still be
// reachable through the arc, which always carries the label.
func TestResolveFootnotesDivergentLabel(t *testing.T) {
	f := mustFiling(t)

	notes := f.Footnotes["fact_rev"]
	if len(notes) != 1 {
		t.Fatalf("footnotes for fact_rev = %d, want 1", len(notes))
	}
	if !strings.Contains(notes[0].Text, "deferred revenue") {
		t.Errorf("footnote text = %q", notes[0].Text)
	}
	if notes[0].Label != "lbl_footnote_0" {
		t.Errorf("footnote stored under label %q, want lbl_footnote_0", notes[0].Label)
	}
	if notes[0].ID != "FN_0" {
		t.Errorf("auxiliary id = %q, want FN_0", notes[0].ID)
	}
	if n := f.Extraction.UnresolvedArcs(); n != 0 {
		t.Errorf("unresolved arcs = %d, want 0", n)
	}
}

func TestResolveFootnotesUndefinedReference(t *testing.T) {
	ext := &Extraction{
		Footnotes: map[string]*Footnote{
			"fn_real": {Label: "fn_real", Text: "exists"},
		},
		Arcs: []FootnoteArc{
			{From: "fact_a", To: "fn_real"},
			{From: "fact_b", To: "fn_ghost"},
		},
	}

	resolved := ext.ResolveFootnotes()
	if len(resolved["fact_a"]) != 1 {
		t.Errorf("fact_a footnotes = %d, want 1", len(resolved["fact_a"]))
	}
	if len(resolved["fact_b"]) != 0 {
		t.Errorf("fact_b resolved against a nonexistent footnote")
	}

	// The dangling arc surfaces as a low-severity diagnostic; it must not
	// be an error, because statement assembly is unaffected.
	var found *Diagnostic
	for i, d := range ext.Diagnostics {
		if d.Kind == DiagUndefinedFootnoteReference {
			found = &ext.Diagnostics[i]
		}
	}
	if found == nil {
		t.Fatal("expected an undefined footnote reference diagnostic")
	}
	if found.Severity != SeverityInfo {
		t.Errorf("severity = %q, want %q", found.Severity, SeverityInfo)
	}
	if ext.UnresolvedArcs() != 1 {
		t.Errorf("UnresolvedArcs() = %d, want 1", ext.UnresolvedArcs())
	}
}
