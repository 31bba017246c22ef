package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"edgar_statements/pkg/models"
)

// StatementsRepo persists resolved statement snapshots as JSONB, keyed by
// the same composite identity the in-memory cache uses.
//
// Schema assumption:
//
//	CREATE TABLE IF NOT EXISTS resolved_statements (
//	  filing_id TEXT NOT NULL,
//	  kind      TEXT NOT NULL,
//	  period_count INT NOT NULL,
//	  view_name TEXT NOT NULL,
//	  statement_json JSONB NOT NULL,
//	  updated_at TIMESTAMPTZ NOT NULL,
//	  PRIMARY KEY (filing_id, kind, period_count, view_name)
//	);
type StatementsRepo struct{}

// NewStatementsRepo creates a repository instance.
func NewStatementsRepo() *StatementsRepo {
	return &StatementsRepo{}
}

// Save upserts one resolved statement snapshot.
func (r *StatementsRepo) Save(ctx context.Context, filingID, kind string, periodCount int,
	view string, stmt *models.ResolvedStatement) error {
	p := GetPool()
	if p == nil {
		return fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(stmt)
	if err != nil {
		return fmt.Errorf("failed to marshal statement: %w", err)
	}

	_, err = p.Exec(ctx, `
		INSERT INTO resolved_statements (filing_id, kind, period_count, view_name, statement_json, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (filing_id, kind, period_count, view_name)
		DO UPDATE SET statement_json = EXCLUDED.statement_json, updated_at = EXCLUDED.updated_at`,
		filingID, kind, periodCount, view, jsonData, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to upsert statement: %w", err)
	}
	return nil
}

// Load retrieves one snapshot; (nil, nil) when absent.
func (r *StatementsRepo) Load(ctx context.Context, filingID, kind string, periodCount int,
	view string) (*models.ResolvedStatement, error) {
	p := GetPool()
	if p == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	var jsonData []byte
	err := p.QueryRow(ctx, `
		SELECT statement_json FROM resolved_statements
		WHERE filing_id = $1 AND kind = $2 AND period_count = $3 AND view_name = $4`,
		filingID, kind, periodCount, view).Scan(&jsonData)
	if err != nil {
		return nil, nil // absent or unreadable; callers recompute
	}

	var stmt models.ResolvedStatement
	if err := json.Unmarshal(jsonData, &stmt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal statement: %w", err)
	}
	return &stmt, nil
}
