package models

import (
	"time"

	"github.com/google/uuid"
)

// AISettings holds the administrator-editable assistant configuration.
// The first row returned by List is treated as active.
type AISettings struct {
	ID           uuid.UUID `db:"id"`
	SystemPrompt string    `db:"system_prompt"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
