package repository

import (
	"context"
	"encoding/json"

	"parket-portal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var knowledgeColumns = []string{
	"id", "title", "description", "content", "url", "file_url", "image_url",
	"article_code", "type", "is_ai_source", "products", "created_at", "updated_at",
}

type KnowledgeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *KnowledgeRepository) Create(ctx context.Context, item *models.KnowledgeItem) error {
	products, err := json.Marshal(item.Products)
	if err != nil {
		return err
	}

	query := squirrel.Insert("knowledge_items").
		Columns(knowledgeColumns...).
		Values(item.ID, item.Title, item.Description, item.Content, item.URL,
			item.FileURL, item.ImageURL, item.ArticleCode, item.Type,
			item.IsAISource, products, item.CreatedAt, item.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *KnowledgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.KnowledgeItem, error) {
	query := squirrel.Select(knowledgeColumns...).
		From("knowledge_items").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanKnowledgeItem(r.db.QueryRow(ctx, sql, args...))
}

// List returns all items ordered by the given sort key (created_at DESC by
// default).
func (r *KnowledgeRepository) List(ctx context.Context, sortKey string) ([]*models.KnowledgeItem, error) {
	if sortKey == "" {
		sortKey = "created_at DESC"
	}
	return r.selectWhere(ctx, nil, sortKey)
}

// Filter returns items matching a field predicate map, e.g.
// {"is_ai_source": true} or {"type": "xml_feed"}.
func (r *KnowledgeRepository) Filter(ctx context.Context, predicate map[string]interface{}, sortKey string) ([]*models.KnowledgeItem, error) {
	if sortKey == "" {
		sortKey = "created_at DESC"
	}
	return r.selectWhere(ctx, predicate, sortKey)
}

func (r *KnowledgeRepository) selectWhere(ctx context.Context, predicate map[string]interface{}, sortKey string) ([]*models.KnowledgeItem, error) {
	query := squirrel.Select(knowledgeColumns...).
		From("knowledge_items").
		OrderBy(sortKey).
		PlaceholderFormat(squirrel.Dollar)

	if len(predicate) > 0 {
		query = query.Where(squirrel.Eq(predicate))
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

	var items []*models.KnowledgeItem
	for rows.Next() {
		item, err := scanKnowledgeItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *KnowledgeRepository) Update(ctx context.Context, item *models.KnowledgeItem) error {
	products, err := json.Marshal(item.Products)
	if err != nil {
		return err
	}

	query := squirrel.Update("knowledge_items").
		Set("title", item.Title).
		Set("description", item.Description).
		Set("content", item.Content).
		Set("url", item.URL).
		Set("file_url", item.FileURL).
		Set("image_url", item.ImageURL).
		Set("article_code", item.ArticleCode).
		Set("type", item.Type).
		Set("is_ai_source", item.IsAISource).
		Set("products", products).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": item.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *KnowledgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("knowledge_items").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func scanKnowledgeItem(row pgx.Row) (*models.KnowledgeItem, error) {
	var item models.KnowledgeItem
	var products []byte

	if err := row.Scan(
		&item.ID, &item.Title, &item.Description, &item.Content, &item.URL,
		&item.FileURL, &item.ImageURL, &item.ArticleCode, &item.Type,
		&item.IsAISource, &products, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(products) > 0 {
		if err := json.Unmarshal(products, &item.Products); err != nil {
			return nil, err
		}
	}

	return &item, nil
}
