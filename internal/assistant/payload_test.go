package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalContentPlainTextVerbatim(t *testing.T) {
	content, err := NewPlainText("Просто ответ").MarshalContent()
	require.NoError(t, err)
	// No envelope for plain text
	assert.Equal(t, "Просто ответ", content)
}

func TestMarshalParseRoundTripDownloadLink(t *testing.T) {
	p := NewDownloadLink(DownloadLink{
		Text: `Вы можете скачать "Каталог" по следующей ссылке`,
		URL:  "https://disk.yandex.ru/d/catalog",
	})

	content, err := p.MarshalContent()
	require.NoError(t, err)

	parsed := ParseAssistantContent(content)
	assert.Equal(t, PayloadDownloadLink, parsed.Kind)
	require.NotNil(t, parsed.Link)
	assert.Equal(t, p.Link.URL, parsed.Link.URL)
}

func TestMarshalParseRoundTripProductInfo(t *testing.T) {
	p := NewProductInfo(ProductInfo{
		Name:       "Дуб натуральный",
		VendorCode: "MS110",
		Price:      "3500 руб.",
		Params:     map[string]string{"Кол-во м2 в упаковке": "2,5"},
	})

	content, err := p.MarshalContent()
	require.NoError(t, err)

	parsed := ParseAssistantContent(content)
	assert.Equal(t, PayloadProductInfo, parsed.Kind)
	require.NotNil(t, parsed.Product)
	assert.Equal(t, "MS110", parsed.Product.VendorCode)
	assert.Equal(t, "2,5", parsed.Product.Params["Кол-во м2 в упаковке"])
}

func TestParseUserTypedJSONStaysPlain(t *testing.T) {
	// JSON that is not a known envelope renders as typed
	tests := []string{
		`{"foo": "bar"}`,
		`{"type": "unknown_kind", "data": {}}`,
		`{"type": "product_info"}`,
		`not json at all`,
		``,
	}

	for _, content := range tests {
		parsed := ParseAssistantContent(content)
		assert.Equal(t, PayloadPlainText, parsed.Kind, "content: %s", content)
		assert.Equal(t, content, parsed.Text)
	}
}

func TestParseMalformedDataFallsBack(t *testing.T) {
	content := `{"type": "multi_download_links", "data": "not an object"}`
	parsed := ParseAssistantContent(content)
	assert.Equal(t, PayloadPlainText, parsed.Kind)
	assert.Equal(t, content, parsed.Text)
}
