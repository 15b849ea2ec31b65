package entities

import (
	"time"

	"github.com/google/uuid"
)

// PantryItem is a quantity of an ingredient a user has at home.
// IngredientName is a denormalized snapshot taken when the item is added; it
// is never re-synced with the ingredient table.
type PantryItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	IngredientID   uuid.UUID `json:"ingredient_id"`
	IngredientName string    `json:"ingredient_name"`

	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"` // "g", "ml", "piece", ...
	PurchaseDate    time.Time  `gorm:"type:date" json:"purchase_date"`
	ExpiryDate      *time.Time `gorm:"type:date" json:"expiry_date,omitempty"`
	StorageLocation string     `json:"storage_location"` // "Refrigerated", "Frozen", "RoomTemperature"
	Notes           string     `json:"notes,omitempty"`

	IsConsumed   bool       `json:"is_consumed"`
	ConsumedDate *time.Time `gorm:"type:date" json:"consumed_date,omitempty"`
	Deleted      bool       `json:"-"`

	User       *User       `gorm:"foreignKey:UserID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}
