package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username string    `gorm:"unique" json:"username"`
	Password string    `json:"-"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Nickname string    `json:"nickname,omitempty"`
	Avatar   string    `json:"avatar,omitempty"`
	Role     string    `json:"role"`

	// Biometrics are optional until the user fills in their profile.
	Gender        string   `json:"gender,omitempty"` // "male", "female", "unknown"
	Weight        *float64 `json:"weight,omitempty"` // kg
	Height        *float64 `json:"height,omitempty"` // cm
	Age           *int     `json:"age,omitempty"`
	ActivityLevel *int     `json:"activity_level,omitempty"` // 1 (sedentary) .. 5 (very active)

	Timestamp
}
