package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"parket-portal/internal/assistant"
	"parket-portal/internal/dto"
	"parket-portal/internal/models"

	"go.uber.org/zap"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductNotCalculable = errors.New("product is missing price or package area")
)

// areaPerPackageParam is the feed parameter the calculator needs; products
// without it cannot be calculated.
const areaPerPackageParam = "Кол-во м2 в упаковке"

const maxDiscountPercent = 10

// reserveCoefficients account for cutting waste per installation pattern.
var reserveCoefficients = map[string]float64{
	"straight":    1.05,
	"diagonal":    1.10,
	"herringbone": 1.15,
}

// ProductSource yields the current product catalog.
type ProductSource interface {
	Products(ctx context.Context) ([]models.Product, error)
}

type CalculatorService struct {
	products ProductSource
	logger   *zap.Logger
}

func NewCalculatorService(products ProductSource, logger *zap.Logger) *CalculatorService {
	return &CalculatorService{
		products: products,
		logger:   logger,
	}
}

// Calculate works out package count and cost for covering the requested
// area with the given product, including the cutting reserve and an
// optional dealer discount.
func (s *CalculatorService) Calculate(ctx context.Context, req *dto.CalculateRequest) (*dto.CalculateResponse, error) {
	products, err := s.products.Products(ctx)
	if err != nil {
		return nil, err
	}

	index := assistant.BuildIndex(products)
	records := index.Lookup(req.VendorCode)
	if len(records) == 0 {
		return nil, ErrProductNotFound
	}
	product := records[0]

	areaPerPackage := parseDecimal(product.Params[areaPerPackageParam])
	pricePerM2 := parseDecimal(product.Price)
	if areaPerPackage <= 0 || pricePerM2 <= 0 {
		return nil, ErrProductNotCalculable
	}

	coefficient, ok := reserveCoefficients[req.InstallationType]
	if !ok {
		coefficient = reserveCoefficients["straight"]
	}

	discount := req.Discount
	if discount < 0 {
		discount = 0
	}
	if discount > maxDiscountPercent {
		discount = maxDiscountPercent
	}

	areaWithReserve := req.Area * coefficient
	packagesNeeded := int(math.Ceil(areaWithReserve / areaPerPackage))
	purchasedArea := float64(packagesNeeded) * areaPerPackage
	baseCost := purchasedArea * pricePerM2
	earnings := baseCost * discount / 100
	totalCost := baseCost - earnings

	s.logger.Debug("Calculation completed",
		zap.String("vendor_code", product.VendorCode),
		zap.Float64("area", req.Area),
		zap.Int("packages", packagesNeeded),
	)

	return &dto.CalculateResponse{
		VendorCode:      product.VendorCode,
		ProductName:     product.Name,
		CleanArea:       round2(req.Area),
		AreaWithReserve: round2(areaWithReserve),
		PackagesNeeded:  packagesNeeded,
		PurchasedArea:   round2(purchasedArea),
		BaseCost:        round2(baseCost),
		Earnings:        round2(earnings),
		TotalCost:       round2(totalCost),
	}, nil
}

// parseDecimal reads a feed number that may use a comma decimal separator.
func parseDecimal(s string) float64 {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if normalized == "" {
		return 0
	}
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
