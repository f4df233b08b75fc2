package models

import (
	"time"

	"github.com/google/uuid"
)

// Message workflow statuses. A message starts as StatusNew and is moved
// by staff to contacted or discarded; it is never deleted.
const (
	StatusNew       = "nuevo"
	StatusContacted = "contactado"
	StatusDiscarded = "descartado"
)

type Message struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Message   string    `json:"message" db:"message"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"-" db:"created_at"` // set at insertion, never exposed
}

// IsValidMessageStatus reports whether status is one of the three
// workflow states.
func IsValidMessageStatus(status string) bool {
	switch status {
	case StatusNew, StatusContacted, StatusDiscarded:
		return true
	}
	return false
}
