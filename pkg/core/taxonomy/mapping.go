// Package taxonomy holds the read-only reference data shared across
// filings: canonical line-item mappings per statement role and the tuned
// scoring weights for statement-candidate disambiguation. A Mapping is
// loaded once and passed explicitly; parsing stays pure and testable.
package taxonomy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// LineItem is one canonical statement row. Concepts lists the us-gaap
// qnames that map onto it, most common first.
type LineItem struct {
	Key      string   `yaml:"key"`
	Label    string   `yaml:"label"`
	Concepts []string `yaml:"concepts"`
	Total    bool     `yaml:"total,omitempty"`
}

// Mapping is an immutable taxonomy snapshot: line items per statement
// kind plus the inverted concept index.
type Mapping struct {
	items     map[string][]LineItem // statement kind -> ordered line items
	byConcept map[string]conceptRef // "kind|qname" -> line item position
}

type conceptRef struct {
	kind  string
	index int
}

// Default returns the built-in us-gaap mapping covering the four
// statement roles.
func Default() *Mapping {
	m := &Mapping{items: map[string][]LineItem{}}
	m.items["income"] = incomeItems
	m.items["balance"] = balanceItems
	m.items["cashflow"] = cashflowItems
	m.items["equity"] = equityItems
	m.reindex()
	return m
}

// LoadOverrides merges a YAML override file into the mapping. Override
// entries replace the built-in item with the same key and append new keys
// at the end of the role's order.
func (m *Mapping) LoadOverrides(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read taxonomy overrides: %w", err)
	}
	var overrides map[string][]LineItem
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return fmt.Errorf("failed to parse taxonomy overrides: %w", err)
	}
	for kind, items := range overrides {
		existing := m.items[kind]
		for _, item := range items {
			replaced := false
			for i := range existing {
				if existing[i].Key == item.Key {
					existing[i] = item
					replaced = true
					break
				}
			}
			if !replaced {
				existing = append(existing, item)
			}
		}
		m.items[kind] = existing
	}
	m.reindex()
	return nil
}

func (m *Mapping) reindex() {
	m.byConcept = make(map[string]conceptRef)
	for kind, items := range m.items {
		for i, item := range items {
			for _, c := range item.Concepts {
				key := kind + "|" + normalizeConcept(c)
				if _, taken := m.byConcept[key]; !taken {
					m.byConcept[key] = conceptRef{kind: kind, index: i}
				}
			}
		}
	}
}

// Items returns the ordered canonical line items for a statement kind.
func (m *Mapping) Items(kind string) []LineItem {
	return m.items[kind]
}

// Canonical maps a concept qname to its canonical line item for the given
// statement kind. The second return is false for unknown concepts; those
// facts stay out of canonical rows but remain queryable raw.
func (m *Mapping) Canonical(kind, concept string) (LineItem, int, bool) {
	ref, ok := m.byConcept[kind+"|"+normalizeConcept(concept)]
	if !ok {
		return LineItem{}, 0, false
	}
	return m.items[ref.kind][ref.index], ref.index, true
}

// normalizeConcept strips namespace prefixes so "us-gaap:Assets" and a
// bare "Assets" land on the same key.
func normalizeConcept(c string) string {
	if i := strings.LastIndex(c, ":"); i >= 0 {
		return c[i+1:]
	}
	return c
}
