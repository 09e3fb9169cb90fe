package assistant

import (
	"sort"
	"strings"

	"parket-portal/internal/models"
)

// ProductIndex maps lower-cased vendor codes to product records in feed
// order. It is built once at session start and read-only afterwards.
type ProductIndex struct {
	byCode map[string][]models.Product
}

// BuildIndex builds the lookup from a full product feed. Records without a
// vendor code are skipped; duplicate codes keep all records in feed order.
func BuildIndex(feed []models.Product) *ProductIndex {
	idx := &ProductIndex{byCode: make(map[string][]models.Product, len(feed))}
	for _, p := range feed {
		if p.VendorCode == "" {
			continue
		}
		code := strings.ToLower(p.VendorCode)
		idx.byCode[code] = append(idx.byCode[code], p)
	}
	return idx
}

// Lookup returns all records for a vendor code, first record canonical.
func (idx *ProductIndex) Lookup(code string) []models.Product {
	return idx.byCode[strings.ToLower(code)]
}

// Len returns the number of distinct vendor codes in the index.
func (idx *ProductIndex) Len() int {
	return len(idx.byCode)
}

// PrefixMatches returns one product per indexed code that starts with the
// given code, excluding the exact key itself. Results are deduplicated by
// vendor code (first record per code wins) and sorted ascending by code.
func (idx *ProductIndex) PrefixMatches(code string) []models.Product {
	prefix := strings.ToLower(code)

	var keys []string
	for key := range idx.byCode {
		if key != prefix && strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	matches := make([]models.Product, 0, len(keys))
	for _, key := range keys {
		matches = append(matches, idx.byCode[key][0])
	}
	return matches
}
