package assistant

import (
	"testing"

	"parket-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFeed() []models.Product {
	return []models.Product{
		{VendorCode: "MS110", Name: "Дуб натуральный"},
		{VendorCode: "ms110", Name: "Дуб натуральный (дубль)"},
		{VendorCode: "MS1101", Name: "Дуб беленый"},
		{VendorCode: "MS1102", Name: "Дуб копченый"},
		{VendorCode: "XK55", Name: "Ясень"},
		{Name: "Без артикула"},
	}
}

func TestBuildIndex(t *testing.T) {
	idx := BuildIndex(testFeed())

	// ms110, ms1101, ms1102, xk55; the record without a code is skipped
	assert.Equal(t, 4, idx.Len())
}

func TestLookupCaseInsensitive(t *testing.T) {
	idx := BuildIndex(testFeed())

	records := idx.Lookup("Ms110")
	require.Len(t, records, 2)
	// First record in feed order is canonical
	assert.Equal(t, "Дуб натуральный", records[0].Name)
}

func TestLookupMiss(t *testing.T) {
	idx := BuildIndex(testFeed())
	assert.Empty(t, idx.Lookup("zz99"))
}

func TestPrefixMatches(t *testing.T) {
	idx := BuildIndex(testFeed())

	matches := idx.PrefixMatches("ms110")
	require.Len(t, matches, 2)
	// Sorted ascending by code, exact key excluded
	assert.Equal(t, "MS1101", matches[0].VendorCode)
	assert.Equal(t, "MS1102", matches[1].VendorCode)
}

func TestPrefixMatchesNoHits(t *testing.T) {
	idx := BuildIndex(testFeed())
	assert.Empty(t, idx.PrefixMatches("qq"))
}

func TestBuildIndexEmptyFeed(t *testing.T) {
	idx := BuildIndex(nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Lookup("ms110"))
}
