package repository

import (
	"context"

	"parket-portal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SettingsRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSettingsRepository(db *pgxpool.Pool, logger *zap.Logger) *SettingsRepository {
	return &SettingsRepository{
		db:     db,
		logger: logger,
	}
}

// List returns all settings rows, oldest first; the first row is active.
func (r *SettingsRepository) List(ctx context.Context) ([]*models.AISettings, error) {
	query := squirrel.Select("id", "system_prompt", "created_at", "updated_at").
		From("ai_settings").
		OrderBy("created_at ASC").
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

	var settings []*models.AISettings
	for rows.Next() {
		var s models.AISettings
		if err := rows.Scan(&s.ID, &s.SystemPrompt, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, &s)
	}

	return settings, rows.Err()
}

func (r *SettingsRepository) Create(ctx context.Context, s *models.AISettings) error {
	query := squirrel.Insert("ai_settings").
		Columns("id", "system_prompt", "created_at", "updated_at").
		Values(s.ID, s.SystemPrompt, s.CreatedAt, s.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *SettingsRepository) Update(ctx context.Context, id uuid.UUID, systemPrompt string) error {
	query := squirrel.Update("ai_settings").
		Set("system_prompt", systemPrompt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
