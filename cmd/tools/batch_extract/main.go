// batch_extract parses the latest filings of several companies
// concurrently and reports resolved statement coverage. Filings share no
// mutable state, so parsing is embarrassingly parallel up to the chosen
// worker count; facts are optionally persisted when DATABASE_URL is set.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"edgar_statements/pkg/core/engine"
	"edgar_statements/pkg/core/ingest"
	"edgar_statements/pkg/core/store"
	"edgar_statements/pkg/core/taxonomy"
	"edgar_statements/pkg/core/validate"
	"edgar_statements/pkg/core/xbrl"
)

func main() {
	godotenv.Load()

	tickers := flag.String("tickers", "AAPL,MSFT,GOOGL", "comma-separated tickers")
	form := flag.String("form", "10-K", "form type to extract")
	workers := flag.Int("workers", 4, "concurrent parse workers")
	view := flag.String("view", "STANDARD", "view policy")
	persist := flag.Bool("persist", false, "persist extracted facts to Postgres")
	flag.Parse()

	v, err := xbrl.ParseView(*view)
	if err != nil {
		fmt.Printf("[ERROR] %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	eng := engine.New(taxonomy.Default(), taxonomy.DefaultWeights())
	client := ingest.NewClient()
	fetcher := ingest.NewFetcher(client, ingest.NewRawCache())

	var factsRepo *store.FactsRepo
	var stmtRepo *store.StatementsRepo
	if *persist {
		if err := store.InitDB(ctx); err != nil {
			fmt.Printf("[ERROR] Failed to init database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		factsRepo = store.NewFactsRepo()
		stmtRepo = store.NewStatementsRepo()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)

	for _, ticker := range strings.Split(*tickers, ",") {
		ticker := strings.TrimSpace(ticker)
		if ticker == "" {
			continue
		}
		g.Go(func() error {
			return extractOne(gctx, eng, client, fetcher, factsRepo, stmtRepo, ticker, *form, v)
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Printf("[ERROR] Batch failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("[BATCH] Done")
}

func extractOne(ctx context.Context, eng *engine.Engine, client *ingest.Client,
	fetcher *ingest.Fetcher, factsRepo *store.FactsRepo, stmtRepo *store.StatementsRepo,
	ticker, form string, view xbrl.View) error {

	cik, err := client.LookupCIK(ctx, ticker)
	if err != nil {
		return fmt.Errorf("%s: %w", ticker, err)
	}
	info, err := client.CompanyInfo(ctx, cik)
	if err != nil {
		return fmt.Errorf("%s: %w", ticker, err)
	}
	refs := client.Filings(info, []string{form}, 1)
	if len(refs) == 0 {
		fmt.Printf("[BATCH] %s: no %s filings\n", ticker, form)
		return nil
	}
	ref := refs[0]

	// Fetch completes before normalization begins; strictly sequential
	// per document.
	docs, err := fetcher.FetchInstance(ctx, ref)
	if err != nil {
		return fmt.Errorf("%s: fetch: %w", ticker, err)
	}
	filing, err := eng.LoadFiling(ref.ID(), docs...)
	if err != nil {
		return fmt.Errorf("%s: parse: %w", ticker, err)
	}

	if factsRepo != nil {
		if err := factsRepo.Save(ctx, ref.ID(), filing.Extraction); err != nil {
			return fmt.Errorf("%s: persist: %w", ticker, err)
		}
		fmt.Printf("[BATCH] %s: persisted %d facts under run %s\n",
			ticker, len(filing.Facts()), filing.Extraction.RunID)
	}

	for _, kind := range []xbrl.StatementKind{xbrl.KindIncome, xbrl.KindBalance, xbrl.KindCashFlow, xbrl.KindEquity} {
		stmt, err := eng.Statement(ctx, engine.StatementRequest{
			FilingID: ref.ID(), Kind: kind, PeriodCount: 3, View: view,
		})
		if err != nil {
			return fmt.Errorf("%s: %s: %w", ticker, kind, err)
		}
		if !stmt.Present {
			fmt.Printf("[BATCH] %s %s: not present\n", ticker, kind)
			continue
		}
		fmt.Printf("[BATCH] %s %s: %d rows x %d periods\n", ticker, kind, len(stmt.Rows), len(stmt.Periods))
		for _, issue := range validate.CheckStatement(stmt) {
			fmt.Printf("[WARNING] %s %s: %s\n", ticker, kind, issue)
		}
		if stmtRepo != nil {
			if err := stmtRepo.Save(ctx, ref.ID(), string(kind), 3, string(view), stmt); err != nil {
				return fmt.Errorf("%s: persist %s: %w", ticker, kind, err)
			}
		}
	}
	fmt.Printf("[BATCH] %s: %d facts, %d diagnostics\n", ticker, len(filing.Facts()), len(filing.Diagnostics()))
	return nil
}
