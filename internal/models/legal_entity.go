package models

import (
	"time"

	"github.com/google/uuid"
)

type LegalEntity struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	INN       string    `db:"inn"`
	KPP       string    `db:"kpp"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
