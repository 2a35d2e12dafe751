package service

import (
	"errors"
	"fmt"
	"time"

	"go-mini-erp/internal/model"
	"go-mini-erp/internal/repository"
	"go-mini-erp/internal/ws"
	"go-mini-erp/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseService interface {
	CreateOrder(req *CreateOrderRequest) (*OrderSummary, error)
	GetAllOrders() ([]OrderSummary, error)
	Receive(orderID uuid.UUID, req *ReceiveRequest) (*ReceiveResult, error)
}

type CreateOrderItem struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	UnitCost  float64   `json:"unit_cost" validate:"gte=0"`
}

type CreateOrderRequest struct {
	SupplierID uuid.UUID         `json:"supplier_id" validate:"uuid_required"`
	Items      []CreateOrderItem `json:"items" validate:"required,min=1,dive"`
}

type ReceiveItem struct {
	PurchaseItemID   uuid.UUID `json:"purchase_item_id"`
	ReceivedQuantity int       `json:"received_quantity"`
}

// ReceiveRequest with nil Items means full-mode receiving: every line item
// is filled up to its ordered quantity.
type ReceiveRequest struct {
	WarehouseID *uuid.UUID    `json:"warehouse_id,omitempty"`
	Items       []ReceiveItem `json:"items,omitempty"`
}

type ReceiveResult struct {
	PurchaseOrderID uuid.UUID         `json:"purchase_order_id"`
	ReceivedItems   int               `json:"received_items"`
	Status          model.OrderStatus `json:"status"`
}

// OrderSummary projects an order with supplier name and product-enriched
// items for external consumption.
type OrderSummary struct {
	ID           uuid.UUID          `json:"id"`
	SupplierID   uuid.UUID          `json:"supplier_id"`
	SupplierName string             `json:"supplier_name,omitempty"`
	Status       model.OrderStatus  `json:"status"`
	TotalCost    float64            `json:"total_cost"`
	CreatedAt    time.Time          `json:"created_at"`
	Items        []OrderItemSummary `json:"items"`
}

type OrderItemSummary struct {
	ID               uuid.UUID `json:"id"`
	ProductID        uuid.UUID `json:"product_id"`
	ProductName      string    `json:"product_name,omitempty"`
	SKU              string    `json:"sku,omitempty"`
	Quantity         int       `json:"quantity"`
	UnitCost         float64   `json:"unit_cost"`
	ReceivedQuantity int       `json:"received_quantity"`
}

type purchaseService struct {
	orderRepo repository.PurchaseOrderRepository
	db        *gorm.DB
	wsHub     *ws.Hub
}

func NewPurchaseService(orderRepo repository.PurchaseOrderRepository, db *gorm.DB, hub *ws.Hub) PurchaseService {
	return &purchaseService{
		orderRepo: orderRepo,
		db:        db,
		wsHub:     hub,
	}
}

// CreateOrder persists an order and its line items atomically. The total is
// computed once here; later receiving never touches it.
func (s *purchaseService) CreateOrder(req *CreateOrderRequest) (*OrderSummary, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	var orderID uuid.UUID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var supplier model.Supplier
		if err := tx.First(&supplier, "id = ?", req.SupplierID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSupplierNotFound
			}
			return err
		}

		total := 0.0
		items := make([]model.PurchaseOrderItem, 0, len(req.Items))
		for _, it := range req.Items {
			var product model.Product
			if err := tx.First(&product, "id = ?", it.ProductID).Error; err != nil {
				// Any invalid product aborts the whole order
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrProductNotFound, it.ProductID)
				}
				return err
			}
			items = append(items, model.PurchaseOrderItem{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitCost:  it.UnitCost,
			})
			total += float64(it.Quantity) * it.UnitCost
		}

		order := model.PurchaseOrder{
			SupplierID: req.SupplierID,
			Status:     model.OrderOrdered,
			TotalCost:  total,
			Items:      items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	summary := toSummary(created)
	return &summary, nil
}

func (s *purchaseService) GetAllOrders() ([]OrderSummary, error) {
	orders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, err
	}
	summaries := make([]OrderSummary, len(orders))
	for i := range orders {
		summaries[i] = toSummary(&orders[i])
	}
	return summaries, nil
}

// Receive applies deliveries against an order. In targeted mode each entry
// is clamped to the item's remaining quantity; over-receipt is silently
// ignored rather than rejected. Full mode tops every item up and forces the
// order to received.
func (s *purchaseService) Receive(orderID uuid.UUID, req *ReceiveRequest) (*ReceiveResult, error) {
	if req == nil {
		req = &ReceiveRequest{}
	}

	var result ReceiveResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order model.PurchaseOrder
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		totalReceived := 0

		if len(req.Items) > 0 {
			// Targeted mode
			byID := make(map[uuid.UUID]*model.PurchaseOrderItem, len(order.Items))
			for i := range order.Items {
				byID[order.Items[i].ID] = &order.Items[i]
			}

			for _, recv := range req.Items {
				item, ok := byID[recv.PurchaseItemID]
				if !ok {
					return fmt.Errorf("%w: %s", ErrItemNotInOrder, recv.PurchaseItemID)
				}
				canAdd := min(recv.ReceivedQuantity, item.Quantity-item.ReceivedQuantity)
				if canAdd <= 0 {
					continue // already complete, or nothing requested
				}
				if err := s.applyReceipt(tx, &order, item, canAdd, req.WarehouseID); err != nil {
					return err
				}
				totalReceived += canAdd
			}

			order.Status = model.OrderOrdered
			if orderComplete(order.Items) {
				order.Status = model.OrderReceived
			}
		} else {
			// Full mode: receive every remaining unit
			for i := range order.Items {
				item := &order.Items[i]
				canAdd := item.Quantity - item.ReceivedQuantity
				if canAdd <= 0 {
					continue
				}
				if err := s.applyReceipt(tx, &order, item, canAdd, req.WarehouseID); err != nil {
					return err
				}
				totalReceived += canAdd
			}
			order.Status = model.OrderReceived
		}

		if err := tx.Model(&model.PurchaseOrder{}).
			Where("id = ?", order.ID).
			Update("status", order.Status).Error; err != nil {
			return err
		}

		result = ReceiveResult{
			PurchaseOrderID: order.ID,
			ReceivedItems:   totalReceived,
			Status:          order.Status,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(map[string]interface{}{
		"type":              "stock_update",
		"action":            "purchase_received",
		"purchase_order_id": result.PurchaseOrderID,
		"received_items":    result.ReceivedItems,
		"status":            result.Status,
	})

	return &result, nil
}

// applyReceipt performs the per-item side effects of receiving: bump the
// item's received quantity, bump product stock by the same amount, and
// append one purchase movement to the audit trail.
func (s *purchaseService) applyReceipt(tx *gorm.DB, order *model.PurchaseOrder, item *model.PurchaseOrderItem, qty int, warehouseID *uuid.UUID) error {
	item.ReceivedQuantity += qty
	if err := tx.Model(&model.PurchaseOrderItem{}).
		Where("id = ?", item.ID).
		Update("received_quantity", item.ReceivedQuantity).Error; err != nil {
		return err
	}

	var product model.Product
	if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if err := tx.Model(&model.Product{}).
		Where("id = ?", product.ID).
		Update("stock", product.Stock+qty).Error; err != nil {
		return err
	}

	movement := model.StockMovement{
		ProductID:   item.ProductID,
		WarehouseID: warehouseID,
		Type:        model.MovementPurchase,
		Quantity:    qty,
		Note:        fmt.Sprintf("Received PO %s, item %s", order.ID, item.ID),
	}
	return tx.Create(&movement).Error
}

func orderComplete(items []model.PurchaseOrderItem) bool {
	for _, it := range items {
		if it.ReceivedQuantity < it.Quantity {
			return false
		}
	}
	return true
}

func toSummary(order *model.PurchaseOrder) OrderSummary {
	summary := OrderSummary{
		ID:         order.ID,
		SupplierID: order.SupplierID,
		Status:     order.Status,
		TotalCost:  order.TotalCost,
		CreatedAt:  order.CreatedAt,
		Items:      make([]OrderItemSummary, len(order.Items)),
	}
	if order.Supplier != nil {
		summary.SupplierName = order.Supplier.Name
	}
	for i, it := range order.Items {
		itemSummary := OrderItemSummary{
			ID:               it.ID,
			ProductID:        it.ProductID,
			Quantity:         it.Quantity,
			UnitCost:         it.UnitCost,
			ReceivedQuantity: it.ReceivedQuantity,
		}
		if it.Product != nil {
			itemSummary.ProductName = it.Product.Name
			itemSummary.SKU = it.Product.SKU
		}
		summary.Items[i] = itemSummary
	}
	return summary
}
