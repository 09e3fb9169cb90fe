package repository

import (
	"context"

	"parket-portal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type VideoRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewVideoRepository(db *pgxpool.Pool, logger *zap.Logger) *VideoRepository {
	return &VideoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *VideoRepository) ListCategories(ctx context.Context) ([]*models.VideoCategory, error) {
	query := squirrel.Select("id", "name", "sort_order", "created_at", "updated_at").
		From("video_categories").
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

	var categories []*models.VideoCategory
	for rows.Next() {
		var c models.VideoCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}

	return categories, rows.Err()
}

func (r *VideoRepository) CreateCategory(ctx context.Context, c *models.VideoCategory) error {
	query := squirrel.Insert("video_categories").
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

func (r *VideoRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("video_categories").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *VideoRepository) List(ctx context.Context, categoryID *uuid.UUID) ([]*models.Video, error) {
	query := squirrel.Select("id", "category_id", "title", "description", "url", "preview_url", "sort_order", "created_at", "updated_at").
		From("videos").
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

	var videos []*models.Video
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.ID, &v.CategoryID, &v.Title, &v.Description, &v.URL, &v.PreviewURL, &v.SortOrder, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		videos = append(videos, &v)
	}

	return videos, rows.Err()
}

func (r *VideoRepository) Create(ctx context.Context, v *models.Video) error {
	query := squirrel.Insert("videos").
		Columns("id", "category_id", "title", "description", "url", "preview_url", "sort_order", "created_at", "updated_at").
		Values(v.ID, v.CategoryID, v.Title, v.Description, v.URL, v.PreviewURL, v.SortOrder, v.CreatedAt, v.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *VideoRepository) Update(ctx context.Context, v *models.Video) error {
	query := squirrel.Update("videos").
		Set("category_id", v.CategoryID).
		Set("title", v.Title).
		Set("description", v.Description).
		Set("url", v.URL).
		Set("preview_url", v.PreviewURL).
		Set("sort_order", v.SortOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": v.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("videos").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
