package dto

import "time"

type SendMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

type AttachmentResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// ChatMessageResponse carries the stored content plus the decoded payload
// kind so the client renders cards without re-sniffing JSON.
type ChatMessageResponse struct {
	ID          string               `json:"id"`
	Role        string               `json:"role"`
	Content     string               `json:"content"`
	PayloadType string               `json:"payload_type"`
	Timestamp   time.Time            `json:"timestamp"`
	Attachments []AttachmentResponse `json:"attachments"`
}

type ChatSessionResponse struct {
	SessionID string                `json:"session_id"`
	Messages  []ChatMessageResponse `json:"messages"`
}

// ChatSessionAdminResponse is the admin history view of a session.
type ChatSessionAdminResponse struct {
	SessionID    string                `json:"session_id"`
	UserEmail    string                `json:"user_email"`
	IsActive     bool                  `json:"is_active"`
	LastActivity time.Time             `json:"last_activity"`
	Messages     []ChatMessageResponse `json:"messages"`
}
