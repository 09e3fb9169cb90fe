package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<yml_catalog date="2025-06-01 12:00">
  <shop>
    <name>Паркет</name>
    <offers>
      <offer id="1">
        <vendorCode> MS110 </vendorCode>
        <name>Дуб натуральный</name>
        <description>Инженерная доска.</description>
        <picture>https://cdn.example.ru/ms110.jpg</picture>
        <price>3500</price>
        <param name="Кол-во м2 в упаковке">2.5</param>
        <param name="Толщина">14 мм</param>
      </offer>
      <offer id="2">
        <vendorCode>MS111</vendorCode>
        <model>Дуб копченый</model>
        <price>4200</price>
      </offer>
    </offers>
  </shop>
</yml_catalog>`

func TestFeedParse(t *testing.T) {
	svc := NewFeedService(zap.NewNop())

	products, err := svc.Parse(strings.NewReader(sampleFeed))

	require.NoError(t, err)
	require.Len(t, products, 2)

	first := products[0]
	assert.Equal(t, "MS110", first.VendorCode)
	assert.Equal(t, "Дуб натуральный", first.Name)
	assert.Equal(t, "Инженерная доска.", first.Description)
	assert.Equal(t, "https://cdn.example.ru/ms110.jpg", first.Picture)
	assert.Equal(t, "3500", first.Price)
	assert.Equal(t, "2.5", first.Params["Кол-во м2 в упаковке"])
	assert.Equal(t, "14 мм", first.Params["Толщина"])
}

func TestFeedParseNameFallsBackToModel(t *testing.T) {
	svc := NewFeedService(zap.NewNop())

	products, err := svc.Parse(strings.NewReader(sampleFeed))

	require.NoError(t, err)
	assert.Equal(t, "Дуб копченый", products[1].Name)
	assert.Empty(t, products[1].Params)
}

func TestFeedParseMalformedXML(t *testing.T) {
	svc := NewFeedService(zap.NewNop())

	_, err := svc.Parse(strings.NewReader("<yml_catalog><shop><offers>"))

	assert.Error(t, err)
}

func TestFeedParseEmptyOffers(t *testing.T) {
	svc := NewFeedService(zap.NewNop())

	products, err := svc.Parse(strings.NewReader(`<yml_catalog><shop><offers></offers></shop></yml_catalog>`))

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFeedParseUnsupportedCharset(t *testing.T) {
	svc := NewFeedService(zap.NewNop())

	_, err := svc.Parse(strings.NewReader(`<?xml version="1.0" encoding="ibm866"?><yml_catalog></yml_catalog>`))

	assert.Error(t, err)
}
