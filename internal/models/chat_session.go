package models

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// ChatMessage content may itself be a serialized structured payload for
// assistant messages; user messages are always plain text.
type ChatMessage struct {
	ID          string       `json:"id"`
	Role        MessageRole  `json:"role"`
	Content     string       `json:"content"`
	Timestamp   time.Time    `json:"timestamp"`
	Attachments []Attachment `json:"attachments"`
}

type ChatSession struct {
	ID           uuid.UUID     `db:"id"`
	SessionID    string        `db:"session_id"`
	UserEmail    string        `db:"user_email"`
	Messages     []ChatMessage `db:"messages"` // jsonb, append-only
	LastActivity time.Time     `db:"last_activity"`
	IsActive     bool          `db:"is_active"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}
