package repository

import (
	"context"

	"parket-portal/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LegalEntityRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewLegalEntityRepository(db *pgxpool.Pool, logger *zap.Logger) *LegalEntityRepository {
	return &LegalEntityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *LegalEntityRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.LegalEntity, error) {
	query := squirrel.Select("id", "user_id", "name", "inn", "kpp", "address", "created_at", "updated_at").
		From("legal_entities").
		Where(squirrel.Eq{"user_id": userID}).
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

	var entities []*models.LegalEntity
	for rows.Next() {
		var e models.LegalEntity
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.INN, &e.KPP, &e.Address, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entities = append(entities, &e)
	}

	return entities, rows.Err()
}

func (r *LegalEntityRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.LegalEntity, error) {
	query := squirrel.Select("id", "user_id", "name", "inn", "kpp", "address", "created_at", "updated_at").
		From("legal_entities").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var e models.LegalEntity
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&e.ID, &e.UserID, &e.Name, &e.INN, &e.KPP, &e.Address, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *LegalEntityRepository) Create(ctx context.Context, e *models.LegalEntity) error {
	query := squirrel.Insert("legal_entities").
		Columns("id", "user_id", "name", "inn", "kpp", "address", "created_at", "updated_at").
		Values(e.ID, e.UserID, e.Name, e.INN, e.KPP, e.Address, e.CreatedAt, e.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *LegalEntityRepository) Update(ctx context.Context, e *models.LegalEntity) error {
	query := squirrel.Update("legal_entities").
		Set("name", e.Name).
		Set("inn", e.INN).
		Set("kpp", e.KPP).
		Set("address", e.Address).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": e.ID, "user_id": e.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *LegalEntityRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("legal_entities").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
