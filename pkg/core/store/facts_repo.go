package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"edgar_statements/pkg/core/xbrl"
)

// FactsRepo persists raw extracted facts per filing.
//
// Schema assumption (managed by migrations elsewhere):
//
//	CREATE TABLE IF NOT EXISTS filing_facts (
//	  filing_id TEXT NOT NULL,
//	  run_id    TEXT NOT NULL,
//	  concept   TEXT NOT NULL,
//	  context_id TEXT NOT NULL,
//	  period_end DATE,
//	  value_num  DOUBLE PRECISION,
//	  value_raw  TEXT,
//	  unit_ref   TEXT,
//	  dimensional BOOLEAN NOT NULL DEFAULT FALSE,
//	  doc_order  INT NOT NULL,
//	  PRIMARY KEY (filing_id, concept, context_id)
//	);
type FactsRepo struct{}

// NewFactsRepo creates a repository instance.
func NewFactsRepo() *FactsRepo {
	return &FactsRepo{}
}

// Save upserts one extraction run's facts in one batch. The run id records
// which pass last wrote each row, so re-extractions are attributable.
func (r *FactsRepo) Save(ctx context.Context, filingID string, ext *xbrl.Extraction) error {
	p := GetPool()
	if p == nil {
		return fmt.Errorf("database pool not initialized")
	}

	batch := &pgx.Batch{}
	for _, f := range ext.Facts {
		var periodEnd interface{}
		if end := f.Context.Period.End(); end != "" {
			periodEnd = end
		}
		batch.Queue(`
			INSERT INTO filing_facts
			  (filing_id, run_id, concept, context_id, period_end, value_num, value_raw, unit_ref, dimensional, doc_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (filing_id, concept, context_id) DO UPDATE SET
			  run_id = EXCLUDED.run_id,
			  value_num = EXCLUDED.value_num,
			  value_raw = EXCLUDED.value_raw`,
			filingID, ext.RunID, f.Concept, f.ContextRef, periodEnd,
			f.Numeric, f.Value, f.UnitRef, f.Context.HasDimensions(), f.Order)
	}

	results := p.SendBatch(ctx, batch)
	defer results.Close()
	for range ext.Facts {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to upsert fact: %w", err)
		}
	}
	return nil
}

// CountForFiling returns how many facts are stored for a filing.
func (r *FactsRepo) CountForFiling(ctx context.Context, filingID string) (int64, error) {
	p := GetPool()
	if p == nil {
		return 0, fmt.Errorf("database pool not initialized")
	}
	var n int64
	err := p.QueryRow(ctx,
		"SELECT COUNT(*) FROM filing_facts WHERE filing_id = $1", filingID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count facts: %w", err)
	}
	return n, nil
}
