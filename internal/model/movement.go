package model

import "github.com/google/uuid"

type MovementType string

const (
	MovementPurchase   MovementType = "purchase"
	MovementAdjustment MovementType = "adjustment"
)

// StockMovement is an append-only audit record. Rows are created whenever a
// product's stock changes and are never updated or deleted afterwards.
type StockMovement struct {
	BaseModel
	ProductID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product     *Product     `json:"product,omitempty" validate:"-"`
	WarehouseID *uuid.UUID   `gorm:"type:uuid" json:"warehouse_id,omitempty"`
	Type        MovementType `gorm:"type:varchar(20);not null;default:'adjustment'" json:"type"`
	Quantity    int          `gorm:"not null" json:"quantity"` // signed delta
	Note        string       `gorm:"type:text" json:"note,omitempty"`
}
