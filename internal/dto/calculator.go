package dto

type CalculateRequest struct {
	VendorCode       string  `json:"vendor_code" validate:"required"`
	Area             float64 `json:"area" validate:"required,gt=0"`
	InstallationType string  `json:"installation_type" validate:"required,oneof=straight diagonal herringbone"`
	Discount         float64 `json:"discount"`
}

type CalculateResponse struct {
	VendorCode      string  `json:"vendor_code"`
	ProductName     string  `json:"product_name"`
	CleanArea       float64 `json:"clean_area"`
	AreaWithReserve float64 `json:"area_with_reserve"`
	PackagesNeeded  int     `json:"packages_needed"`
	PurchasedArea   float64 `json:"purchased_area"`
	BaseCost        float64 `json:"base_cost"`
	Earnings        float64 `json:"earnings"`
	TotalCost       float64 `json:"total_cost"`
}
