package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a destination saved by a user
type Favorite struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        uuid.UUID  `json:"userId" db:"user_id"`
	Destination   string     `json:"destination" db:"destination"`
	Country       string     `json:"country" db:"country"`
	Description   *string    `json:"description,omitempty" db:"description"`
	ImageURL      *string    `json:"imageUrl,omitempty" db:"image_url"`
	Tags          StringList `json:"tags" db:"tags"`
	AISuggestions JSONMap    `json:"aiSuggestions,omitempty" db:"ai_suggestions"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}
