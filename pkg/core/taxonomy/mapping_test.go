package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMapping(t *testing.T) {
	m := Default()

	for _, kind := range []string{"income", "balance", "cashflow", "equity"} {
		if len(m.Items(kind)) == 0 {
			t.Errorf("no built-in line items for %q", kind)
		}
	}

	tests := []struct {
		kind    string
		concept string
		wantKey string
	}{
		{"income", "us-gaap:Revenues", "revenue"},
		{"income", "Revenues", "revenue"}, // prefix-insensitive
		{"income", "us-gaap:SalesRevenueNet", "revenue"},
		{"income", "us-gaap:NetIncomeLoss", "net_income"},
		{"balance", "us-gaap:Assets", "total_assets"},
		{"equity", "us-gaap:StockholdersEquity", "total_equity"},
		{"cashflow", "us-gaap:NetIncomeLoss", "net_income"},
	}
	for _, tt := range tests {
		item, _, ok := m.Canonical(tt.kind, tt.concept)
		if !ok {
			t.Errorf("Canonical(%s, %s) not found", tt.kind, tt.concept)
			continue
		}
		if item.Key != tt.wantKey {
			t.Errorf("Canonical(%s, %s) = %q, want %q", tt.kind, tt.concept, item.Key, tt.wantKey)
		}
	}

	if _, _, ok := m.Canonical("income", "us-gaap:SomeObscureDisclosure"); ok {
		t.Error("unknown concept should not resolve")
	}
	if _, _, ok := m.Canonical("balance", "us-gaap:Revenues"); ok {
		t.Error("income concept should not resolve under the balance kind")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	overrides := `income:
  - key: revenue
    label: Net Revenue
    concepts:
      - Revenues
      - RevenueFromContractWithCustomerExcludingAssessedTax
  - key: adjusted_ebitda
    label: Adjusted EBITDA
    concepts:
      - AdjustedEbitda
`
	if err := os.WriteFile(path, []byte(overrides), 0644); err != nil {
		t.Fatalf("failed to write override file: %v", err)
	}

	m := Default()
	before := len(m.Items("income"))
	if err := m.LoadOverrides(path); err != nil {
		t.Fatalf("failed to load overrides: %v", err)
	}

	// Same key replaces in place.
	item, _, ok := m.Canonical("income", "us-gaap:Revenues")
	if !ok {
		t.Fatal("revenue lookup lost after override")
	}
	if item.Label != "Net Revenue" {
		t.Errorf("override label = %q, want Net Revenue", item.Label)
	}

	// New key appends at the end of the role's order.
	if got := len(m.Items("income")); got != before+1 {
		t.Errorf("income item count = %d, want %d", got, before+1)
	}
	if _, _, ok := m.Canonical("income", "AdjustedEbitda"); !ok {
		t.Error("appended override concept did not reindex")
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	m := Default()
	if err := m.LoadOverrides("/nonexistent/overrides.yaml"); err == nil {
		t.Error("expected an error for a missing override file")
	}
}
