package xbrl

import (
	"testing"
)

func TestExtract(t *testing.T) {
	doc, err := Normalize([]byte(testInstance))
	if err != nil {
		t.Fatalf("failed to normalize: %v", err)
	}
	ext, err := Extract(doc)
	if err != nil {
		t.Fatalf("failed to extract: %v", err)
	}

	if len(ext.Contexts) != 8 {
		t.Errorf("context count = %d, want 8", len(ext.Contexts))
	}
	// BadFact references an undefined context: dropped with a diagnostic,
	// never extracted with a guessed scope.
	if len(ext.Facts) != 15 {
		t.Errorf("fact count = %d, want 15", len(ext.Facts))
	}
	for _, f := range ext.Facts {
		if f.Context == nil {
			t.Fatalf("fact %s extracted without resolved context", f.Concept)
		}
		if f.Concept == "us-gaap:BadFact" {
			t.Error("fact with undefined context was not dropped")
		}
	}

	var unresolved int
	for _, d := range ext.Diagnostics {
		if d.Kind == DiagUnresolvedContext {
			unresolved++
		}
	}
	if unresolved != 1 {
		t.Errorf("unresolved context diagnostics = %d, want 1", unresolved)
	}

	if ext.Units["usd"] != "iso4217:USD" {
		t.Errorf("unit usd = %q, want iso4217:USD", ext.Units["usd"])
	}
	if ext.Contexts["cFY23"].Entity != "0000320193" {
		t.Errorf("entity = %q", ext.Contexts["cFY23"].Entity)
	}
}

func TestExtractDimensions(t *testing.T) {
	doc, err := Normalize([]byte(testInstance))
	if err != nil {
		t.Fatalf("failed to normalize: %v", err)
	}
	ext, err := Extract(doc)
	if err != nil {
		t.Fatalf("failed to extract: %v", err)
	}

	ctx := ext.Contexts["cFY23Americas"]
	if ctx == nil {
		t.Fatal("context cFY23Americas missing")
	}
	if len(ctx.Dimensions) != 2 {
		t.Fatalf("dimension count = %d, want 2", len(ctx.Dimensions))
	}
	// Two axes: business segment then geography. The most specific (last)
	// axis names the row, so the label is the geography member.
	if got := ctx.MemberLabel(); got != "Americas" {
		t.Errorf("MemberLabel() = %q, want Americas", got)
	}
	if got := ctx.AxisMemberLabel(); got != "Statement Geographical: Americas" {
		t.Errorf("AxisMemberLabel() = %q", got)
	}

	single := ext.Contexts["cFY23Products"]
	if got := single.MemberLabel(); got != "Product" {
		t.Errorf("single-axis MemberLabel() = %q, want Product", got)
	}
}

func TestExtractNoContexts(t *testing.T) {
	doc, err := Normalize([]byte(testLinkbase))
	if err != nil {
		t.Fatalf("failed to normalize: %v", err)
	}
	if _, err := Extract(doc); err != ErrNoContexts {
		t.Fatalf("expected ErrNoContexts for linkbase-only document, got %v", err)
	}
}

func TestExtractRunID(t *testing.T) {
	doc, err := Normalize([]byte(testInstance))
	if err != nil {
		t.Fatalf("failed to normalize: %v", err)
	}
	first, err := Extract(doc)
	if err != nil {
		t.Fatalf("failed to extract: %v", err)
	}
	second, err := Extract(doc)
	if err != nil {
		t.Fatalf("failed to extract: %v", err)
	}
	if first.RunID == "" {
		t.Fatal("extraction has no run id")
	}
	// Each pass gets its own id so persisted rows are attributable.
	if first.RunID == second.RunID {
		t.Errorf("two extraction passes share run id %s", first.RunID)
	}
}

func TestParseFactValue(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	tests := []struct {
		name  string
		value string
		scale string
		sign  string
		want  *float64
	}{
		{"plain", "500", "", "", f(500)},
		{"thousands commas", "1,234,567", "", "", f(1234567)},
		{"currency symbol", "$42.50", "", "", f(42.5)},
		{"parenthesized negative", "(1,000)", "", "", f(-1000)},
		{"ixbrl scale", "1,234", "6", "", f(1234000000)},
		{"ixbrl sign", "500", "", "-", f(-500)},
		{"scale and sign", "5", "3", "-", f(-5000)},
		{"em dash placeholder", "—", "", "", nil},
		{"bare hyphen placeholder", "-", "", "", nil},
		{"empty", "", "", "", nil},
		{"text fact", "Delaware", "", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFactValue(tt.value, tt.scale, tt.sign)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("parseFactValue(%q) = %v, want nil", tt.value, *got)
			case tt.want != nil && got == nil:
				t.Errorf("parseFactValue(%q) = nil, want %v", tt.value, *tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("parseFactValue(%q) = %v, want %v", tt.value, *got, *tt.want)
			}
		})
	}
}

func TestHumanizeQName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"us-gaap:AmericasMember", "Americas"},
		{"us-gaap:ProductMember", "Product"},
		{"us-gaap:StatementGeographicalAxis", "Statement Geographical"},
		{"us-gaap:OperatingSegmentsMember", "Operating Segments"},
		{"srt:ProductOrServiceAxis", "Product Or Service"},
		{"us-gaap:IncomeStatementAbstract", "Income Statement Abstract"},
	}
	for _, tt := range tests {
		if got := humanizeQName(tt.in); got != tt.want {
			t.Errorf("humanizeQName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
