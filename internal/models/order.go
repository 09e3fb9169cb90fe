package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID              uuid.UUID  `db:"id"`
	OrderNumber     string     `db:"order_number"`
	ArticleCode     string     `db:"article_code"`
	ProductName     string     `db:"product_name"`
	UserName        string     `db:"user_name"`
	UserEmail       string     `db:"user_email"`
	PhoneNumber     string     `db:"phone_number"`
	City            string     `db:"city"`
	RetailPoint     string     `db:"retail_point"`
	LegalEntityID   *uuid.UUID `db:"legal_entity_id"`
	LegalEntityName string     `db:"legal_entity_name"`
	Quantity        int        `db:"quantity"`
	TotalCost       float64    `db:"total_cost"`
	Comment         string     `db:"comment"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}
