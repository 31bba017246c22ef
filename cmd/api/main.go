package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"edgar_statements/pkg/api/statements"
	"edgar_statements/pkg/core/engine"
	"edgar_statements/pkg/core/ingest"
	"edgar_statements/pkg/core/taxonomy"
)

func main() {
	// Load environment variables
	godotenv.Load()

	mapping := taxonomy.Default()
	if path := os.Getenv("TAXONOMY_OVERRIDES"); path != "" {
		if err := mapping.LoadOverrides(path); err != nil {
			fmt.Printf("[WARNING] Failed to load taxonomy overrides: %v\n", err)
		} else {
			fmt.Printf("[TAXONOMY] Loaded overrides from %s\n", path)
		}
	}

	weights := taxonomy.DefaultWeights()
	if path := os.Getenv("SCORING_WEIGHTS"); path != "" {
		w, err := taxonomy.LoadWeights(path)
		if err != nil {
			fmt.Printf("[WARNING] Failed to load scoring weights: %v\n", err)
		} else {
			weights = w
			fmt.Printf("[TAXONOMY] Loaded scoring weights from %s\n", path)
		}
	}

	eng := engine.New(mapping, weights)
	client := ingest.NewClient()
	fetcher := ingest.NewFetcher(client, ingest.NewRawCache())

	handler := statements.NewHandler(eng, client, fetcher)
	http.HandleFunc("/api/statements", handler.HandleStatement)
	http.HandleFunc("/api/statements/items", handler.HandleItems)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("[API] Statement resolution server listening on :%s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		fmt.Printf("[ERROR] Server failed: %v\n", err)
		os.Exit(1)
	}
}
