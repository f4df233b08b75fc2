package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize in JSON
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PublicUser is the projection returned to clients after login.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// Public strips everything a client is not allowed to see.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
