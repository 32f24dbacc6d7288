package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// Preferences captures what the AI advisor uses to personalise suggestions
type Preferences struct {
	Interests           []string `json:"interests,omitempty"`
	TravelStyle         string   `json:"travelStyle,omitempty"`
	PreferredActivities []string `json:"preferredActivities,omitempty"`
}

func (p Preferences) Value() (driver.Value, error) { return marshalJSONB(p) }
func (p *Preferences) Scan(src any) error          { return unmarshalJSONB(src, p) }

// User represents a user in the system
type User struct {
	ID           uuid.UUID   `json:"id" db:"id"`
	Email        string      `json:"email" db:"email"`
	PasswordHash string      `json:"-" db:"password_hash"` // Hidden from JSON responses
	Name         string      `json:"name" db:"name"`
	Phone        *string     `json:"phone,omitempty" db:"phone"`
	Preferences  Preferences `json:"preferences" db:"preferences"`
	IsActive     bool        `json:"isActive" db:"is_active"`
	CreatedAt    time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time   `json:"updatedAt" db:"updated_at"`
}
