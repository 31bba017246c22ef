// Package statements exposes the statement query surface over HTTP.
package statements

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"edgar_statements/pkg/core/engine"
	"edgar_statements/pkg/core/ingest"
	"edgar_statements/pkg/core/xbrl"
)

// Handler serves statement resolution requests. Filings load into the
// engine on first query; repeats skip the fetch entirely.
type Handler struct {
	engine  *engine.Engine
	client  *ingest.Client
	fetcher *ingest.Fetcher
}

// NewHandler creates the handler with its collaborators.
func NewHandler(eng *engine.Engine, client *ingest.Client, fetcher *ingest.Fetcher) *Handler {
	return &Handler{engine: eng, client: client, fetcher: fetcher}
}

// StatementRequest is the JSON body for POST /api/statements.
type StatementRequest struct {
	Ticker      string `json:"ticker,omitempty"`
	CIK         string `json:"cik,omitempty"`
	Form        string `json:"form,omitempty"`   // default "10-K"
	Kind        string `json:"kind"`             // income | balance | cashflow | equity
	PeriodCount int    `json:"period_count"`     // 0 = all reported periods
	View        string `json:"view,omitempty"`   // STANDARD | DETAILED | SUMMARY

	// Deprecated: include_dimensions maps onto DETAILED/STANDARD and will
	// be removed after the compatibility window.
	IncludeDimensions *bool `json:"include_dimensions,omitempty"`
}

// HandleStatement handles POST /api/statements.
func (h *Handler) HandleStatement(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req StatementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Form == "" {
		req.Form = "10-K"
	}

	kind, err := parseKind(req.Kind)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view := xbrl.ViewStandard
	if req.IncludeDimensions != nil {
		view = xbrl.ViewFromLegacyToggle(*req.IncludeDimensions)
	} else if req.View != "" {
		view, err = xbrl.ParseView(req.View)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	ctx := r.Context()
	ref, err := h.latestFiling(ctx, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, loaded := h.engine.Filing(ref.ID()); !loaded {
		start := time.Now()
		docs, err := h.fetcher.FetchInstance(ctx, *ref)
		if err != nil {
			http.Error(w, fmt.Sprintf("failed to fetch filing: %v", err), http.StatusBadGateway)
			return
		}
		if _, err := h.engine.LoadFiling(ref.ID(), docs...); err != nil {
			http.Error(w, fmt.Sprintf("failed to parse filing: %v", err), http.StatusUnprocessableEntity)
			return
		}
		log.Printf("[STATEMENTS] loaded %s in %v", ref.ID(), time.Since(start))
	}

	stmt, err := h.engine.Statement(ctx, engine.StatementRequest{
		FilingID:    ref.ID(),
		Kind:        kind,
		PeriodCount: req.PeriodCount,
		View:        view,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(stmt)
}

// ItemsRequest is the JSON body for POST /api/statements/items.
type ItemsRequest struct {
	Ticker string `json:"ticker,omitempty"`
	CIK    string `json:"cik,omitempty"`
	Form   string `json:"form,omitempty"` // default "8-K"
}

// HandleItems handles POST /api/statements/items: the filing's form-item
// references, structured metadata first, text fallback second.
func (h *Handler) HandleItems(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Form == "" {
		req.Form = "8-K"
	}

	ctx := r.Context()
	ref, err := h.latestFiling(ctx, StatementRequest{Ticker: req.Ticker, CIK: req.CIK, Form: req.Form})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	refs := ref.Items
	source := "structured"
	if len(refs) == 0 {
		raw, err := h.fetcher.FetchPrimary(ctx, *ref)
		if err != nil {
			http.Error(w, fmt.Sprintf("failed to fetch filing: %v", err), http.StatusBadGateway)
			return
		}
		refs = h.engine.ItemReferences(nil, string(raw))
		source = "fallback"
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"accession_number": ref.AccessionNumber,
		"items":            refs,
		"source":           source,
	})
}

func (h *Handler) latestFiling(ctx context.Context, req StatementRequest) (*ingest.FilingRef, error) {
	cik := req.CIK
	if cik == "" && req.Ticker != "" {
		var err error
		cik, err = h.client.LookupCIK(ctx, req.Ticker)
		if err != nil {
			return nil, err
		}
	}
	if cik == "" {
		return nil, fmt.Errorf("ticker or cik is required")
	}

	info, err := h.client.CompanyInfo(ctx, cik)
	if err != nil {
		return nil, err
	}
	filings := h.client.Filings(info, []string{req.Form}, 1)
	if len(filings) == 0 {
		return nil, fmt.Errorf("no %s filings found for CIK %s", req.Form, cik)
	}
	return &filings[0], nil
}

func parseKind(s string) (xbrl.StatementKind, error) {
	switch s {
	case "income":
		return xbrl.KindIncome, nil
	case "balance":
		return xbrl.KindBalance, nil
	case "cashflow":
		return xbrl.KindCashFlow, nil
	case "equity":
		return xbrl.KindEquity, nil
	}
	return "", fmt.Errorf("unknown statement kind %q (want income|balance|cashflow|equity)", s)
}
