package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"parket-portal/internal/models"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

// ymlCatalog mirrors the YML (Yandex Market Language) feed layout used by
// the product catalog exports.
type ymlCatalog struct {
	XMLName xml.Name `xml:"yml_catalog"`
	Shop    struct {
		Offers struct {
			Offers []ymlOffer `xml:"offer"`
		} `xml:"offers"`
	} `xml:"shop"`
}

type ymlOffer struct {
	VendorCode  string `xml:"vendorCode"`
	Name        string `xml:"name"`
	Model       string `xml:"model"`
	Description string `xml:"description"`
	Picture     string `xml:"picture"`
	Price       string `xml:"price"`
	Params      []struct {
		Name  string `xml:"name,attr"`
		Value string `xml:",chardata"`
	} `xml:"param"`
}

type FeedService struct {
	httpClient *http.Client
	logger     *zap.Logger
}

func NewFeedService(logger *zap.Logger) *FeedService {
	return &FeedService{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

// Fetch downloads a product feed and parses it into the flat product list
// stored on the owning knowledge item.
func (s *FeedService) Fetch(ctx context.Context, feedURL string) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create feed request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed request failed with status %d", resp.StatusCode)
	}

	products, err := s.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Product feed synced",
		zap.String("url", feedURL),
		zap.Int("products", len(products)),
	)

	return products, nil
}

// Parse decodes a YML catalog document. Feeds from 1C exports commonly
// declare windows-1251, so the decoder carries a charset reader.
func (s *FeedService) Parse(r io.Reader) ([]models.Product, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader

	var catalog ymlCatalog
	if err := decoder.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to parse feed XML: %w", err)
	}

	offers := catalog.Shop.Offers.Offers
	products := make([]models.Product, 0, len(offers))
	for _, offer := range offers {
		name := strings.TrimSpace(offer.Name)
		if name == "" {
			name = strings.TrimSpace(offer.Model)
		}

		params := make(map[string]string, len(offer.Params))
		for _, p := range offer.Params {
			key := strings.TrimSpace(p.Name)
			if key == "" {
				continue
			}
			params[key] = sanitizeUTF8(strings.TrimSpace(p.Value))
		}

		products = append(products, models.Product{
			VendorCode:  strings.TrimSpace(offer.VendorCode),
			Name:        sanitizeUTF8(name),
			Description: sanitizeUTF8(strings.TrimSpace(offer.Description)),
			Picture:     strings.TrimSpace(offer.Picture),
			Price:       strings.TrimSpace(offer.Price),
			Params:      params,
		})
	}

	return products, nil
}

func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return input, nil
	case "windows-1251", "cp1251":
		return charmap.Windows1251.NewDecoder().Reader(input), nil
	case "koi8-r":
		return charmap.KOI8R.NewDecoder().Reader(input), nil
	default:
		return nil, fmt.Errorf("unsupported feed charset: %s", charset)
	}
}
