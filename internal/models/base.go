package models

import (
	"time"

	"finpredictor/internal/uuid"
)

// Base contains the identity and creation time shared by stored records
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBase generates a UUIDv7 identity stamped with the current UTC time
func NewBase() Base {
	return Base{ID: uuid.New(), CreatedAt: time.Now().UTC()}
}
