package service

import (
	"go-mini-erp/internal/repository"
)

type DashboardService interface {
	GetSummary() (*DashboardSummary, error)
}

type DashboardSummary struct {
	TotalProducts int64 `json:"total_products"`
	TotalOrders   int64 `json:"total_orders"`
	TotalStock    int64 `json:"total_stock"`
}

type dashboardService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.PurchaseOrderRepository
}

func NewDashboardService(pRepo repository.ProductRepository, oRepo repository.PurchaseOrderRepository) DashboardService {
	return &dashboardService{
		productRepo: pRepo,
		orderRepo:   oRepo,
	}
}

// GetSummary aggregates in SQL rather than loading rows
func (s *dashboardService) GetSummary() (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	var err error
	if summary.TotalProducts, err = s.productRepo.Count(); err != nil {
		return nil, err
	}
	if summary.TotalOrders, err = s.orderRepo.Count(); err != nil {
		return nil, err
	}
	if summary.TotalStock, err = s.productRepo.TotalStock(); err != nil {
		return nil, err
	}
	return summary, nil
}
