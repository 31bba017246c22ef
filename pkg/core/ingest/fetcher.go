package ingest

import (
	"context"
	"fmt"
	"strings"
)

// Fetcher retrieves the raw documents of a filing, cache first, network
// second. The returned bytes feed directly into normalization; fetch and
// parse of one document are strictly sequential.
type Fetcher struct {
	client *Client
	cache  *RawCache
}

// NewFetcher creates a fetcher. A nil cache disables caching.
func NewFetcher(client *Client, cache *RawCache) *Fetcher {
	return &Fetcher{client: client, cache: cache}
}

// FetchPrimary returns the filing's primary document content.
func (f *Fetcher) FetchPrimary(ctx context.Context, ref FilingRef) ([]byte, error) {
	if ref.PrimaryDocument == "" {
		return nil, fmt.Errorf("filing %s has no primary document", ref.AccessionNumber)
	}
	return f.fetch(ctx, ref, ref.PrimaryDocument)
}

// FetchInstance returns the filing's XBRL instance and linkbase companion
// documents where they exist as standalone files (the xml-xbrl era);
// inline filings carry everything in the primary document.
func (f *Fetcher) FetchInstance(ctx context.Context, ref FilingRef) ([][]byte, error) {
	primary, err := f.FetchPrimary(ctx, ref)
	if err != nil {
		return nil, err
	}
	docs := [][]byte{primary}

	base := strings.TrimSuffix(ref.PrimaryDocument, ".htm")
	base = strings.TrimSuffix(base, ".html")
	base = strings.TrimSuffix(base, ".xml")
	for _, suffix := range []string{"_pre.xml", "_cal.xml"} {
		raw, err := f.fetch(ctx, ref, base+suffix)
		if err != nil {
			continue // linkbase files are optional companions
		}
		docs = append(docs, raw)
	}
	return docs, nil
}

func (f *Fetcher) fetch(ctx context.Context, ref FilingRef, document string) ([]byte, error) {
	if f.cache != nil {
		if raw := f.cache.Get(ref, document); raw != nil {
			return raw, nil
		}
	}
	raw, err := f.client.FetchDocument(ctx, ref, document)
	if err != nil {
		return nil, err
	}
	if f.cache != nil {
		if err := f.cache.Set(ref, document, raw); err != nil {
			fmt.Printf("[INGEST] failed to cache %s: %v\n", document, err)
		}
	}
	return raw, nil
}
