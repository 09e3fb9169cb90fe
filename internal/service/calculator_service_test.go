package service

import (
	"context"
	"errors"
	"testing"

	"parket-portal/internal/dto"
	"parket-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProductSource struct {
	products []models.Product
	err      error
}

func (s *stubProductSource) Products(_ context.Context) ([]models.Product, error) {
	return s.products, s.err
}

func calculableProducts() []models.Product {
	return []models.Product{
		{
			VendorCode: "MS110",
			Name:       "Дуб натуральный",
			Price:      "1000",
			Params:     map[string]string{"Кол-во м2 в упаковке": "2.5"},
		},
		{
			VendorCode: "MS111",
			Name:       "Дуб без цены",
			Price:      "",
			Params:     map[string]string{"Кол-во м2 в упаковке": "2.5"},
		},
		{
			VendorCode: "MS112",
			Name:       "Дуб без упаковки",
			Price:      "1000",
			Params:     map[string]string{},
		},
		{
			VendorCode: "MS113",
			Name:       "Дуб с запятыми",
			Price:      "1000,50",
			Params:     map[string]string{"Кол-во м2 в упаковке": "2,5"},
		},
	}
}

func newTestCalculator(products []models.Product) *CalculatorService {
	return NewCalculatorService(&stubProductSource{products: products}, zap.NewNop())
}

func TestCalculateStraight(t *testing.T) {
	svc := newTestCalculator(calculableProducts())

	resp, err := svc.Calculate(context.Background(), &dto.CalculateRequest{
		VendorCode:       "ms110",
		Area:             10,
		InstallationType: "straight",
	})

	require.NoError(t, err)
	assert.Equal(t, "MS110", resp.VendorCode)
	assert.Equal(t, 10.0, resp.CleanArea)
	assert.Equal(t, 10.5, resp.AreaWithReserve)
	assert.Equal(t, 5, resp.PackagesNeeded)
	assert.Equal(t, 12.5, resp.PurchasedArea)
	assert.Equal(t, 12500.0, resp.BaseCost)
	assert.Equal(t, 0.0, resp.Earnings)
	assert.Equal(t, 12500.0, resp.TotalCost)
}

func TestCalculateInstallationCoefficients(t *testing.T) {
	tests := []struct {
		installationType string
		wantReserve      float64
	}{
		{"straight", 10.5},
		{"diagonal", 11.0},
		{"herringbone", 11.5},
		{"unknown", 10.5},
	}

	svc := newTestCalculator(calculableProducts())
	for _, tt := range tests {
		resp, err := svc.Calculate(context.Background(), &dto.CalculateRequest{
			VendorCode:       "MS110",
			Area:             10,
			InstallationType: tt.installationType,
		})
		require.NoError(t, err, "type: %s", tt.installationType)
		assert.Equal(t, tt.wantReserve, resp.AreaWithReserve, "type: %s", tt.installationType)
	}
}

func TestCalculateDiscount(t *testing.T) {
	svc := newTestCalculator(calculableProducts())

	resp, err := svc.Calculate(context.Background(), &dto.CalculateRequest{
		VendorCode:       "MS110",
		Area:             10,
		InstallationType: "straight",
		Discount:         5,
	})

	require.NoError(t, err)
	assert.Equal(t, 625.0, resp.Earnings)
	assert.Equal(t, 11875.0, resp.TotalCost)
}

func TestCalculateDiscountClamped(t *testing.T) {
	svc := newTestCalculator(calculableProducts())

	over, err := svc.Calculate(context.Background(), &dto.CalculateRequest{
		VendorCode:       "MS110",
		Area:             10,
		InstallationType: "straight",
		Discount:         50,
	})
	require.NoError(t, err)
	assert.Equal(t, 1250.0, over.Earnings)

	negative, err := svc.Calculate(context.Background(), &dto.CalculateRequest{
		VendorCode:       "MS110",
		Area:             10,
		InstallationType: "straight",
		Discount:         -5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, negative.Earnings)
}

func TestCalculateCommaDecimals(t *testing.T) {
	svc := newTestCalculator(calculableProducts())

	resp, err := svc.Calculate(context.Background(), &dto.CalculateRequest{
		VendorCode:       "MS113",
		Area:             10,
		InstallationType: "straight",
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.PackagesNeeded)
	assert.Equal(t, 12506.25, resp.BaseCost)
}

func TestCalculateProductNotFound(t *testing.T) {
	svc := newTestCalculator(calculableProducts())

	_, err := svc.Calculate(context.Background(), &dto.CalculateRequest{
		VendorCode:       "ZZ99",
		Area:             10,
		InstallationType: "straight",
	})

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCalculateNotCalculable(t *testing.T) {
	svc := newTestCalculator(calculableProducts())

	for _, code := range []string{"MS111", "MS112"} {
		_, err := svc.Calculate(context.Background(), &dto.CalculateRequest{
			VendorCode:       code,
			Area:             10,
			InstallationType: "straight",
		})
		assert.ErrorIs(t, err, ErrProductNotCalculable, "code: %s", code)
	}
}

func TestCalculateSourceErrorPropagates(t *testing.T) {
	svc := NewCalculatorService(&stubProductSource{err: errors.New("feed unavailable")}, zap.NewNop())

	_, err := svc.Calculate(context.Background(), &dto.CalculateRequest{
		VendorCode:       "MS110",
		Area:             10,
		InstallationType: "straight",
	})

	assert.Error(t, err)
}
