package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RawCache is the file-based cache for fetched filing documents. Raw
// content never changes once filed, so entries have no expiry.
type RawCache struct {
	cacheDir string
}

// NewRawCache creates a cache under .cache/edgar/raw in the working
// directory.
func NewRawCache() *RawCache {
	return NewRawCacheWithDir(filepath.Join(".cache", "edgar", "raw"))
}

// NewRawCacheWithDir creates a cache with a custom directory.
func NewRawCacheWithDir(dir string) *RawCache {
	os.MkdirAll(dir, 0755)
	return &RawCache{cacheDir: dir}
}

func (c *RawCache) path(ref FilingRef, document string) string {
	dashless := strings.ReplaceAll(ref.AccessionNumber, "-", "")
	name := fmt.Sprintf("%s_%s_%s", ref.CIK, dashless, filepath.Base(document))
	return filepath.Join(c.cacheDir, name)
}

// Get retrieves a cached document; nil when absent.
func (c *RawCache) Get(ref FilingRef, document string) []byte {
	data, err := os.ReadFile(c.path(ref, document))
	if err != nil {
		return nil
	}
	return data
}

// Set stores a fetched document.
func (c *RawCache) Set(ref FilingRef, document string, raw []byte) error {
	return os.WriteFile(c.path(ref, document), raw, 0644)
}

// Has checks for a cached document.
func (c *RawCache) Has(ref FilingRef, document string) bool {
	_, err := os.Stat(c.path(ref, document))
	return err == nil
}
