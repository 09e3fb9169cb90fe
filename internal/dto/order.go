package dto

type CreateOrderRequest struct {
	ArticleCode   string  `json:"article_code" validate:"required"`
	ProductName   string  `json:"product_name" validate:"required"`
	UserName      string  `json:"user_name" validate:"required"`
	UserEmail     string  `json:"user_email" validate:"required,email"`
	PhoneNumber   string  `json:"phone_number" validate:"required"`
	City          string  `json:"city"`
	RetailPoint   string  `json:"retail_point"`
	LegalEntityID string  `json:"legal_entity_id"`
	Quantity      int     `json:"quantity" validate:"required,min=1"`
	TotalCost     float64 `json:"total_cost"`
	Comment       string  `json:"comment"`
}

type OrderResponse struct {
	ID              string  `json:"id"`
	OrderNumber     string  `json:"order_number"`
	ArticleCode     string  `json:"article_code"`
	ProductName     string  `json:"product_name"`
	UserName        string  `json:"user_name"`
	UserEmail       string  `json:"user_email"`
	PhoneNumber     string  `json:"phone_number"`
	City            string  `json:"city,omitempty"`
	RetailPoint     string  `json:"retail_point,omitempty"`
	LegalEntityName string  `json:"legal_entity_name,omitempty"`
	Quantity        int     `json:"quantity"`
	TotalCost       float64 `json:"total_cost"`
	Comment         string  `json:"comment,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type LegalEntityRequest struct {
	Name    string `json:"name" validate:"required"`
	INN     string `json:"inn" validate:"required"`
	KPP     string `json:"kpp"`
	Address string `json:"address"`
}

type LegalEntityResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	INN     string `json:"inn"`
	KPP     string `json:"kpp,omitempty"`
	Address string `json:"address,omitempty"`
}
