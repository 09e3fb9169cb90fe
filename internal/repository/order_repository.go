package repository

import (
	"context"

	"parket-portal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var orderColumns = []string{
	"id", "order_number", "article_code", "product_name", "user_name",
	"user_email", "phone_number", "city", "retail_point", "legal_entity_id",
	"legal_entity_name", "quantity", "total_cost", "comment",
	"created_at", "updated_at",
}

type OrderRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewOrderRepository(db *pgxpool.Pool, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := squirrel.Insert("orders").
		Columns(orderColumns...).
		Values(order.ID, order.OrderNumber, order.ArticleCode, order.ProductName,
			order.UserName, order.UserEmail, order.PhoneNumber, order.City,
			order.RetailPoint, order.LegalEntityID, order.LegalEntityName,
			order.Quantity, order.TotalCost, order.Comment,
			order.CreatedAt, order.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByEmail returns a user's order history, newest first.
func (r *OrderRepository) ListByEmail(ctx context.Context, email string) ([]*models.Order, error) {
	return r.list(ctx, squirrel.Eq{"user_email": email}, 0, 0)
}

func (r *OrderRepository) List(ctx context.Context, limit, offset int) ([]*models.Order, error) {
	return r.list(ctx, nil, limit, offset)
}

func (r *OrderRepository) list(ctx context.Context, pred squirrel.Eq, limit, offset int) ([]*models.Order, error) {
	query := squirrel.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if pred != nil {
		query = query.Where(pred)
	}
	if limit > 0 {
		query = query.Limit(uint64(limit)).Offset(uint64(offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.ArticleCode, &o.ProductName,
			&o.UserName, &o.UserEmail, &o.PhoneNumber, &o.City,
			&o.RetailPoint, &o.LegalEntityID, &o.LegalEntityName,
			&o.Quantity, &o.TotalCost, &o.Comment,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}

	return orders, rows.Err()
}
