package repository

import (
	"context"

	"parket-portal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type FAQRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewFAQRepository(db *pgxpool.Pool, logger *zap.Logger) *FAQRepository {
	return &FAQRepository{
		db:     db,
		logger: logger,
	}
}

func (r *FAQRepository) ListCategories(ctx context.Context) ([]*models.FAQCategory, error) {
	query := squirrel.Select("id", "name", "sort_order", "created_at", "updated_at").
		From("faq_categories").
		OrderBy("sort_order ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.FAQCategory
	for rows.Next() {
		var c models.FAQCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

func (r *FAQRepository) CreateCategory(ctx context.Context, c *models.FAQCategory) error {
	query := squirrel.Insert("faq_categories").
		Columns("id", "name", "sort_order", "created_at", "updated_at").
		Values(c.ID, c.Name, c.SortOrder, c.CreatedAt, c.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *FAQRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("faq_categories").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// List returns FAQs, optionally restricted to a category, ordered for
// display.
func (r *FAQRepository) List(ctx context.Context, categoryID *uuid.UUID) ([]*models.FAQ, error) {
	query := squirrel.Select("id", "category_id", "question", "answer", "sort_order", "created_at", "updated_at").
		From("faqs").
		OrderBy("sort_order ASC").
		PlaceholderFormat(squirrel.Dollar)

	if categoryID != nil {
		query = query.Where(squirrel.Eq{"category_id": *categoryID})
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

	var faqs []*models.FAQ
	for rows.Next() {
		var f models.FAQ
		if err := rows.Scan(&f.ID, &f.CategoryID, &f.Question, &f.Answer, &f.SortOrder, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, &f)
	}

	return faqs, rows.Err()
}

func (r *FAQRepository) Create(ctx context.Context, f *models.FAQ) error {
	query := squirrel.Insert("faqs").
		Columns("id", "category_id", "question", "answer", "sort_order", "created_at", "updated_at").
		Values(f.ID, f.CategoryID, f.Question, f.Answer, f.SortOrder, f.CreatedAt, f.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *FAQRepository) Update(ctx context.Context, f *models.FAQ) error {
	query := squirrel.Update("faqs").
		Set("category_id", f.CategoryID).
		Set("question", f.Question).
		Set("answer", f.Answer).
		Set("sort_order", f.SortOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": f.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *FAQRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("faqs").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
