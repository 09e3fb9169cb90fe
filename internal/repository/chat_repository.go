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

var chatSessionColumns = []string{
	"id", "session_id", "user_email", "messages", "last_activity", "is_active",
	"created_at", "updated_at",
}

type ChatRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewChatRepository(db *pgxpool.Pool, logger *zap.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ChatRepository) Create(ctx context.Context, session *models.ChatSession) error {
	messages, err := json.Marshal(session.Messages)
	if err != nil {
		return err
	}

	query := squirrel.Insert("chat_sessions").
		Columns(chatSessionColumns...).
		Values(session.ID, session.SessionID, session.UserEmail, messages,
			session.LastActivity, session.IsActive, session.CreatedAt, session.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetBySessionID returns the active session for a chat session id, or
// pgx.ErrNoRows when none exists.
func (r *ChatRepository) GetBySessionID(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	query := squirrel.Select(chatSessionColumns...).
		From("chat_sessions").
		Where(squirrel.Eq{"session_id": sessionID, "is_active": true}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	return scanChatSession(r.db.QueryRow(ctx, sql, args...))
}

// UpdateMessages replaces the stored message sequence. The caller only ever
// appends; the stored history is never rewritten mid-sequence.
func (r *ChatRepository) UpdateMessages(ctx context.Context, id uuid.UUID, messages []models.ChatMessage) error {
	payload, err := json.Marshal(messages)
	if err != nil {
		return err
	}

	query := squirrel.Update("chat_sessions").
		Set("messages", payload).
		Set("last_activity", squirrel.Expr("NOW()")).
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

// Deactivate marks a session inactive (chat cleared, new session minted).
func (r *ChatRepository) Deactivate(ctx context.Context, sessionID string) error {
	query := squirrel.Update("chat_sessions").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"session_id": sessionID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// List returns sessions ordered by recent activity, for the admin history
// viewer.
func (r *ChatRepository) List(ctx context.Context, limit, offset int) ([]*models.ChatSession, error) {
	query := squirrel.Select(chatSessionColumns...).
		From("chat_sessions").
		OrderBy("last_activity DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
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

	var sessions []*models.ChatSession
	for rows.Next() {
		session, err := scanChatSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

func scanChatSession(row pgx.Row) (*models.ChatSession, error) {
	var session models.ChatSession
	var messages []byte

	if err := row.Scan(
		&session.ID, &session.SessionID, &session.UserEmail, &messages,
		&session.LastActivity, &session.IsActive, &session.CreatedAt, &session.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(messages) > 0 {
		if err := json.Unmarshal(messages, &session.Messages); err != nil {
			return nil, err
		}
	}

	return &session, nil
}
