// Package ingest provides SEC EDGAR API integration: CIK lookup, filing
// metadata, and rate-limited document fetching. Fetching is an external
// collaborator of the resolution core; a document's fetch completes (or
// fails) before its normalization begins.
// API Documentation: https://www.sec.gov/developer
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// SEC EDGAR API endpoints
	submissionsURL    = "https://data.sec.gov/submissions/CIK%s.json"
	archivesURL       = "https://www.sec.gov/Archives/edgar/data/%s/%s/%s"
	companyTickersURL = "https://www.sec.gov/files/company_tickers.json"

	// Required User-Agent per SEC guidelines
	userAgent = "edgar-statements/1.0 (admin@example.com)"
)

// SEC fair-access policy allows 10 requests per second; stay under it.
var defaultLimiter = rate.NewLimiter(rate.Limit(8), 8)

// CompanyInfo is the top-level company submission response.
type CompanyInfo struct {
	CIK            string   `json:"cik"`
	Name           string   `json:"name"`
	SICDescription string   `json:"sicDescription"`
	Tickers        []string `json:"tickers"`
	Filings        struct {
		Recent RecentFilings `json:"recent"`
	} `json:"filings"`
}

// RecentFilings holds the submission API's parallel filing arrays.
type RecentFilings struct {
	AccessionNumber []string `json:"accessionNumber"`
	FilingDate      []string `json:"filingDate"`
	ReportDate      []string `json:"reportDate"`
	Form            []string `json:"form"`
	PrimaryDocument []string `json:"primaryDocument"`
	Items           []string `json:"items"` // 8-K item lists, e.g. "2.02,9.01"
	Size            []int    `json:"size"`
}

// FilingRef is one filing denormalized from the parallel arrays, with the
// structured item references when the submissions API carries them.
type FilingRef struct {
	CIK             string    `json:"cik"`
	AccessionNumber string    `json:"accession_number"`
	FilingDate      time.Time `json:"filing_date"`
	ReportDate      time.Time `json:"report_date"`
	FormType        string    `json:"form_type"`
	PrimaryDocument string    `json:"primary_document"`
	Items           []string  `json:"items,omitempty"`
	URL             string    `json:"url"`
}

// ID returns the filing's stable identity: CIK plus dashless accession.
func (f FilingRef) ID() string {
	return f.CIK + "_" + strings.ReplaceAll(f.AccessionNumber, "-", "")
}

// Client is a rate-limited SEC EDGAR API client.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter

	tickerMu    sync.Mutex
	tickerCache map[string]string // TICKER -> zero-padded CIK
}

// NewClient creates an EDGAR client with the default rate limit.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiter:    defaultLimiter,
	}
}

// get performs one rate-limited request against SEC infrastructure.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("SEC request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SEC returned status %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// LookupCIK resolves a ticker symbol to a zero-padded CIK, loading the
// ticker map lazily on first use.
func (c *Client) LookupCIK(ctx context.Context, ticker string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(ticker))

	c.tickerMu.Lock()
	defer c.tickerMu.Unlock()

	if cik, ok := c.tickerCache[normalized]; ok {
		return cik, nil
	}
	if len(c.tickerCache) == 0 {
		if err := c.loadTickerCache(ctx); err != nil {
			return "", err
		}
		if cik, ok := c.tickerCache[normalized]; ok {
			return cik, nil
		}
	}
	return "", fmt.Errorf("ticker %s not found in SEC database", ticker)
}

func (c *Client) loadTickerCache(ctx context.Context) error {
	fmt.Println("[INGEST] Loading ticker->CIK map from SEC...")
	body, err := c.get(ctx, companyTickersURL)
	if err != nil {
		return fmt.Errorf("failed to fetch company tickers: %w", err)
	}

	// Format: {"0": {"cik_str": 320193, "ticker": "AAPL", "title": "..."}, ...}
	var mapping map[string]struct {
		CIK    int    `json:"cik_str"`
		Ticker string `json:"ticker"`
	}
	if err := json.Unmarshal(body, &mapping); err != nil {
		return fmt.Errorf("failed to parse ticker mapping: %w", err)
	}

	c.tickerCache = make(map[string]string, len(mapping))
	for _, entry := range mapping {
		c.tickerCache[strings.ToUpper(entry.Ticker)] = fmt.Sprintf("%010d", entry.CIK)
	}
	return nil
}

// CompanyInfo retrieves submission data for a CIK (padded automatically).
func (c *Client) CompanyInfo(ctx context.Context, cik string) (*CompanyInfo, error) {
	cik = fmt.Sprintf("%010s", strings.TrimLeft(cik, "0"))
	body, err := c.get(ctx, fmt.Sprintf(submissionsURL, cik))
	if err != nil {
		return nil, err
	}
	var info CompanyInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse SEC submissions response: %w", err)
	}
	return &info, nil
}

// Filings denormalizes the submissions arrays, filtered by form type.
// Pass nil formTypes for all; limit 0 for no limit.
func (c *Client) Filings(info *CompanyInfo, formTypes []string, limit int) []FilingRef {
	recent := info.Filings.Recent
	wanted := make(map[string]bool, len(formTypes))
	for _, ft := range formTypes {
		wanted[ft] = true
	}

	var out []FilingRef
	for i := range recent.AccessionNumber {
		if len(formTypes) > 0 && !wanted[recent.Form[i]] {
			continue
		}
		filingDate, _ := time.Parse("2006-01-02", recent.FilingDate[i])
		reportDate, _ := time.Parse("2006-01-02", at(recent.ReportDate, i))

		dashless := strings.ReplaceAll(recent.AccessionNumber[i], "-", "")
		ref := FilingRef{
			CIK:             info.CIK,
			AccessionNumber: recent.AccessionNumber[i],
			FilingDate:      filingDate,
			ReportDate:      reportDate,
			FormType:        recent.Form[i],
			PrimaryDocument: at(recent.PrimaryDocument, i),
			URL:             fmt.Sprintf(archivesURL, strings.TrimLeft(info.CIK, "0"), dashless, at(recent.PrimaryDocument, i)),
		}
		if raw := at(recent.Items, i); raw != "" {
			for _, item := range strings.Split(raw, ",") {
				if item = strings.TrimSpace(item); item != "" {
					ref.Items = append(ref.Items, item)
				}
			}
		}
		out = append(out, ref)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// FetchDocument downloads one filing document from the archives.
func (c *Client) FetchDocument(ctx context.Context, ref FilingRef, document string) ([]byte, error) {
	dashless := strings.ReplaceAll(ref.AccessionNumber, "-", "")
	url := fmt.Sprintf(archivesURL, strings.TrimLeft(ref.CIK, "0"), dashless, document)
	return c.get(ctx, url)
}

// at guards the submissions API's occasionally ragged parallel arrays.
func at(s []string, i int) string {
	if i < len(s) {
		return s[i]
	}
	return ""
}
