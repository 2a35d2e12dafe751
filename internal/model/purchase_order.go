package model

import "github.com/google/uuid"

type OrderStatus string

const (
	OrderDraft    OrderStatus = "draft"
	OrderOrdered  OrderStatus = "ordered"
	OrderReceived OrderStatus = "received"
)

type PurchaseOrder struct {
	BaseModel
	SupplierID uuid.UUID   `gorm:"type:uuid;not null;index" json:"supplier_id"`
	Supplier   *Supplier   `json:"supplier,omitempty"`
	Status     OrderStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	// Snapshot of sum(quantity * unit_cost) taken at creation, never
	// recalculated afterwards
	TotalCost float64             `gorm:"not null;default:0" json:"total_cost"`
	Items     []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

type PurchaseOrderItem struct {
	BaseModel
	PurchaseOrderID uuid.UUID `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	Product         *Product  `json:"product,omitempty"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	UnitCost        float64   `gorm:"not null;default:0" json:"unit_cost"`
	// Cumulative, monotonically non-decreasing, never exceeds Quantity
	ReceivedQuantity int `gorm:"not null;default:0" json:"received_quantity"`
}
