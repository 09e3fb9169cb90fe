package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"
)

type User struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	FullName  string    `db:"full_name"`
	Role      UserRole  `db:"role"`
	// Order-form profile fields cached on the user between orders
	PhoneNumber string `db:"phone_number"`
	City        string `db:"city"`
	RetailPoint string `db:"retail_point"`
	// Current chat session identifier, minted at first chat open
	SessionID string    `db:"session_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
