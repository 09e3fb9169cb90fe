package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parket-portal/internal/assistant"
	"parket-portal/internal/dto"
	"parket-portal/internal/models"
	"parket-portal/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// apologyMessage replaces the assistant reply when response generation
// fails; the user message stays in the history either way.
const apologyMessage = "Извините, произошла ошибка при обработке вашего запроса. Попробуйте ещё раз."

type ChatService struct {
	chatRepo            *repository.ChatRepository
	knowledgeRepo       *repository.KnowledgeRepository
	settingsRepo        *repository.SettingsRepository
	userRepo            *repository.UserRepository
	snapshotCache       *repository.SnapshotCache
	router              *assistant.Router
	defaultSystemPrompt string
	logger              *zap.Logger
}

func NewChatService(
	chatRepo *repository.ChatRepository,
	knowledgeRepo *repository.KnowledgeRepository,
	settingsRepo *repository.SettingsRepository,
	userRepo *repository.UserRepository,
	snapshotCache *repository.SnapshotCache,
	router *assistant.Router,
	defaultSystemPrompt string,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		chatRepo:            chatRepo,
		knowledgeRepo:       knowledgeRepo,
		settingsRepo:        settingsRepo,
		userRepo:            userRepo,
		snapshotCache:       snapshotCache,
		router:              router,
		defaultSystemPrompt: defaultSystemPrompt,
		logger:              logger,
	}
}

// InitSession mints a session identifier on first open, warms the snapshot
// cache, and returns the stored history.
func (s *ChatService) InitSession(ctx context.Context, userID uuid.UUID) (*dto.ChatSessionResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	sessionID := user.SessionID
	if sessionID == "" {
		sessionID, err = s.mintSession(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	if _, err := s.snapshot(ctx, sessionID); err != nil {
		return nil, err
	}

	session, err := s.chatRepo.GetBySessionID(ctx, sessionID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to load chat session: %w", err)
	}

	resp := &dto.ChatSessionResponse{SessionID: sessionID, Messages: []dto.ChatMessageResponse{}}
	if session != nil {
		resp.Messages = messagesToResponse(session.Messages)
	}
	return resp, nil
}

// SendMessage appends the user message, runs the response cascade against
// the session snapshot, and appends exactly one assistant message. Cascade
// failures degrade to an apology instead of dropping the turn.
func (s *ChatService) SendMessage(ctx context.Context, userID uuid.UUID, message string) (*dto.ChatMessageResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	sessionID := user.SessionID
	if sessionID == "" {
		sessionID, err = s.mintSession(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	cached, err := s.snapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session, err := s.chatRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to load chat session: %w", err)
		}
		now := time.Now()
		session = &models.ChatSession{
			ID:           uuid.New(),
			SessionID:    sessionID,
			UserEmail:    user.Email,
			Messages:     []models.ChatMessage{},
			LastActivity: now,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.chatRepo.Create(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to create chat session: %w", err)
		}
	}

	userMessage := models.ChatMessage{
		ID:          uuid.New().String(),
		Role:        models.MessageRoleUser,
		Content:     message,
		Timestamp:   time.Now(),
		Attachments: []models.Attachment{},
	}
	history := session.Messages
	messages := append(session.Messages, userMessage)

	snap := &assistant.Snapshot{
		Index:        assistant.BuildIndex(cached.Products),
		Catalog:      cached.Catalog,
		SystemPrompt: cached.SystemPrompt,
	}

	var content string
	var attachments []models.Attachment

	response, err := s.router.Respond(ctx, message, history, snap)
	if err != nil {
		s.logger.Error("Response generation failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		content = apologyMessage
	} else {
		content, err = response.Payload.MarshalContent()
		if err != nil {
			s.logger.Error("Failed to serialize response payload", zap.Error(err))
			content = apologyMessage
		} else {
			attachments = response.Attachments
		}
	}

	if attachments == nil {
		attachments = []models.Attachment{}
	}

	assistantMessage := models.ChatMessage{
		ID:          uuid.New().String(),
		Role:        models.MessageRoleAssistant,
		Content:     content,
		Timestamp:   time.Now(),
		Attachments: attachments,
	}
	messages = append(messages, assistantMessage)

	if err := s.chatRepo.UpdateMessages(ctx, session.ID, messages); err != nil {
		return nil, fmt.Errorf("failed to save chat messages: %w", err)
	}

	resp := messageToResponse(assistantMessage)
	return &resp, nil
}

// ClearSession deactivates the current session and mints a fresh identifier
// so the next message starts a new history with a fresh snapshot.
func (s *ChatService) ClearSession(ctx context.Context, userID uuid.UUID) (*dto.ChatSessionResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if user.SessionID != "" {
		if err := s.chatRepo.Deactivate(ctx, user.SessionID); err != nil {
			s.logger.Warn("Failed to deactivate chat session", zap.String("session_id", user.SessionID), zap.Error(err))
		}
		if err := s.snapshotCache.Delete(ctx, user.SessionID); err != nil {
			s.logger.Warn("Failed to drop snapshot cache entry", zap.Error(err))
		}
	}

	sessionID, err := s.mintSession(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ChatSessionResponse{SessionID: sessionID, Messages: []dto.ChatMessageResponse{}}, nil
}

// ListSessions is the admin history view.
func (s *ChatService) ListSessions(ctx context.Context, limit, offset int) ([]dto.ChatSessionAdminResponse, error) {
	sessions, err := s.chatRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}

	resp := make([]dto.ChatSessionAdminResponse, 0, len(sessions))
	for _, session := range sessions {
		resp = append(resp, dto.ChatSessionAdminResponse{
			SessionID:    session.SessionID,
			UserEmail:    session.UserEmail,
			IsActive:     session.IsActive,
			LastActivity: session.LastActivity,
			Messages:     messagesToResponse(session.Messages),
		})
	}
	return resp, nil
}

func (s *ChatService) mintSession(ctx context.Context, userID uuid.UUID) (string, error) {
	sessionID := "chat_" + uuid.New().String()
	if err := s.userRepo.UpdateProfile(ctx, userID, map[string]interface{}{"session_id": sessionID}); err != nil {
		return "", fmt.Errorf("failed to assign session id: %w", err)
	}
	return sessionID, nil
}

// snapshot returns the cached session state, rebuilding it from PostgreSQL
// on a miss. The snapshot stays fixed for the session lifetime so mid-chat
// knowledge base edits do not shift answers.
func (s *ChatService) snapshot(ctx context.Context, sessionID string) (*repository.CachedSnapshot, error) {
	cached, err := s.snapshotCache.Get(ctx, sessionID)
	if err != nil {
		s.logger.Warn("Snapshot cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	items, err := s.knowledgeRepo.Filter(ctx, map[string]interface{}{"is_ai_source": true}, "created_at ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to load knowledge base: %w", err)
	}

	catalog := make([]models.KnowledgeItem, 0, len(items))
	var products []models.Product
	for _, item := range items {
		catalog = append(catalog, *item)
		if item.Type == models.KnowledgeTypeXMLFeed && products == nil && len(item.Products) > 0 {
			products = item.Products
		}
	}

	systemPrompt := s.defaultSystemPrompt
	if settings, err := s.settingsRepo.List(ctx); err != nil {
		s.logger.Warn("Failed to load AI settings, using default prompt", zap.Error(err))
	} else if len(settings) > 0 && settings[0].SystemPrompt != "" {
		systemPrompt = settings[0].SystemPrompt
	}

	cached = &repository.CachedSnapshot{
		Catalog:      catalog,
		Products:     products,
		SystemPrompt: systemPrompt,
	}

	if err := s.snapshotCache.Set(ctx, sessionID, cached); err != nil {
		s.logger.Warn("Snapshot cache write failed", zap.Error(err))
	}

	return cached, nil
}

func messagesToResponse(messages []models.ChatMessage) []dto.ChatMessageResponse {
	resp := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, messageToResponse(m))
	}
	return resp
}

func messageToResponse(m models.ChatMessage) dto.ChatMessageResponse {
	payloadType := string(assistant.PayloadPlainText)
	if m.Role == models.MessageRoleAssistant {
		payloadType = string(assistant.ParseAssistantContent(m.Content).Kind)
	}

	attachments := make([]dto.AttachmentResponse, 0, len(m.Attachments))
	for _, a := range m.Attachments {
		attachments = append(attachments, dto.AttachmentResponse{Name: a.Name, URL: a.URL, Type: a.Type})
	}

	return dto.ChatMessageResponse{
		ID:          m.ID,
		Role:        string(m.Role),
		Content:     m.Content,
		PayloadType: payloadType,
		Timestamp:   m.Timestamp,
		Attachments: attachments,
	}
}
