package assistant

import (
	"testing"

	"parket-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveExactProduct(t *testing.T) {
	idx := BuildIndex(testFeed())

	d := Resolve("ms110", false, idx)

	assert.Equal(t, DecisionExactProduct, d.Kind)
	require.NotNil(t, d.Product)
	assert.Equal(t, "Дуб натуральный", d.Product.Name)
}

func TestResolveSupplementaryWinsOverExact(t *testing.T) {
	idx := BuildIndex(testFeed())

	d := Resolve("ms110", true, idx)

	assert.Equal(t, DecisionDeferToKnowledge, d.Kind)
	assert.Nil(t, d.Product)
	assert.Equal(t, "ms110", d.Code)
}

func TestResolveSimilarSuggestions(t *testing.T) {
	idx := BuildIndex([]models.Product{
		{VendorCode: "MS1101", Name: "Дуб беленый"},
		{VendorCode: "MS1102", Name: "Дуб копченый"},
	})

	d := Resolve("ms110", false, idx)

	assert.Equal(t, DecisionSimilarSuggestions, d.Kind)
	require.Len(t, d.Suggestions, 2)
	assert.Equal(t, "MS1101", d.Suggestions[0].VendorCode)
}

func TestResolveNotFound(t *testing.T) {
	idx := BuildIndex(testFeed())

	d := Resolve("zz99", false, idx)

	assert.Equal(t, DecisionNotFound, d.Kind)
	assert.Equal(t, "zz99", d.Code)
}
