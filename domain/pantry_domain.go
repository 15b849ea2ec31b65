package domain

import (
	"errors"
)

// StorageMethod is where an ingredient should be kept.
type StorageMethod string

const (
	StorageRefrigerated    StorageMethod = "Refrigerated"
	StorageFrozen          StorageMethod = "Frozen"
	StorageRoomTemperature StorageMethod = "RoomTemperature"
)

// SeverityBand classifies how close a pantry item is to its expiry date. The
// bands are ordered and mutually exclusive; classification is computed at read
// time and never stored.
type SeverityBand string

const (
	SeverityUnknown  SeverityBand = "unknown"
	SeverityExpired  SeverityBand = "expired"
	SeverityCritical SeverityBand = "critical"
	SeverityWarning  SeverityBand = "warning"
	SeverityCaution  SeverityBand = "caution"
	SeverityGood     SeverityBand = "good"
)

var (
	MessageSuccessAddPantryItem    = "ingredient added to pantry successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessConsumeItem      = "pantry item marked as consumed"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantryItem    = "pantry item retrieved successfully"
	MessageSuccessGetPantry        = "pantry retrieved successfully"
	MessageSuccessGetExpiring      = "expiring ingredients retrieved successfully"
	MessageSuccessGetExpired       = "expired ingredients retrieved successfully"
	MessageSuccessGetPantryStats   = "pantry statistics retrieved successfully"

	MessageFailedAddPantryItem    = "failed to add ingredient to pantry"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedConsumeItem      = "failed to mark pantry item as consumed"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantryItem    = "failed to retrieve pantry item"
	MessageFailedGetPantry        = "failed to retrieve pantry"
	MessageFailedGetExpiring      = "failed to retrieve expiring ingredients"
	MessageFailedGetExpired       = "failed to retrieve expired ingredients"
	MessageFailedGetPantryStats   = "failed to retrieve pantry statistics"

	ErrPantryItemNotFound  = errors.New("pantry item not found")
	ErrInvalidPurchaseDate = errors.New("invalid purchase date")
	ErrInvalidExpiryDate   = errors.New("invalid expiry date")
	ErrInvalidConsumedDate = errors.New("invalid consumed date")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
)

type (
	AddPantryItemRequest struct {
		IngredientID    string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity        float64 `json:"quantity" validate:"required,gt=0"`
		Unit            string  `json:"unit" validate:"required,max=20"`
		PurchaseDate    string  `json:"purchase_date" validate:"required"`
		StorageLocation string  `json:"storage_location" validate:"omitempty,max=50"`
		Notes           string  `json:"notes" validate:"omitempty,max=500"`
	}

	UpdatePantryItemRequest struct {
		Quantity        float64 `json:"quantity" validate:"required,gt=0"`
		Unit            string  `json:"unit" validate:"required,max=20"`
		PurchaseDate    string  `json:"purchase_date" validate:"required"`
		ExpiryDate      string  `json:"expiry_date" validate:"omitempty"`
		StorageLocation string  `json:"storage_location" validate:"omitempty,max=50"`
		Notes           string  `json:"notes" validate:"omitempty,max=500"`
	}

	ConsumePantryItemRequest struct {
		ConsumedDate string `json:"consumed_date" validate:"omitempty"`
	}

	PantryItemResponse struct {
		ID              string       `json:"id"`
		IngredientID    string       `json:"ingredient_id"`
		IngredientName  string       `json:"ingredient_name"`
		Quantity        float64      `json:"quantity"`
		Unit            string       `json:"unit"`
		PurchaseDate    string       `json:"purchase_date"`
		ExpiryDate      string       `json:"expiry_date,omitempty"`
		StorageLocation string       `json:"storage_location"`
		Notes           string       `json:"notes,omitempty"`
		IsConsumed      bool         `json:"is_consumed"`
		ConsumedDate    string       `json:"consumed_date,omitempty"`
		RemainingDays   int          `json:"remaining_days"`
		ExpiryStatus    SeverityBand `json:"expiry_status"`
	}

	PantryStatsResponse struct {
		TotalItems           int64 `json:"total_items"`
		ActiveItems          int64 `json:"active_items"`
		ExpiringItems        int64 `json:"expiring_items"` // within 7 days
		ExpiredItems         int64 `json:"expired_items"`
		RefrigeratedItems    int64 `json:"refrigerated_items"`
		FrozenItems          int64 `json:"frozen_items"`
		RoomTemperatureItems int64 `json:"room_temperature_items"`
	}
)
