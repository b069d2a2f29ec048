package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/internal/domain/repository"
)

// DashboardService aggregates the headline numbers for the back-office
// landing page.
type DashboardService struct {
	reportRepo  repository.ReportRepository
	invoiceRepo repository.InvoiceRepository
	orderRepo   repository.KitchenOrderRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	reportRepo repository.ReportRepository,
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.KitchenOrderRepository,
) *DashboardService {
	return &DashboardService{
		reportRepo:  reportRepo,
		invoiceRepo: invoiceRepo,
		orderRepo:   orderRepo,
	}
}

// DashboardStats represents the dashboard summary
type DashboardStats struct {
	TodaySales     decimal.Decimal       `json:"today_sales"`
	TodayInvoices  int64                 `json:"today_invoices"`
	MonthSales     decimal.Decimal       `json:"month_sales"`
	MonthInvoices  int64                 `json:"month_invoices"`
	PendingOrders  int64                 `json:"pending_orders"`
	RecentInvoices []entity.Invoice      `json:"recent_invoices"`
	OrderQueue     []entity.KitchenOrder `json:"order_queue"`
}

// GetStats computes today's and this month's sales totals, the pending order
// count, and the most recent activity.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := s.reportRepo.InvoiceRangeTotals(ctx, startOfDay, endOfDay, nil)
	if err != nil {
		return nil, err
	}
	month, err := s.reportRepo.InvoiceRangeTotals(ctx, startOfMonth, endOfDay, nil)
	if err != nil {
		return nil, err
	}

	pending, err := s.orderRepo.CountByStatus(ctx, enum.OrderStatusPending)
	if err != nil {
		return nil, err
	}

	recent, err := s.invoiceRepo.RecentInvoices(ctx, 10)
	if err != nil {
		return nil, err
	}
	queue, err := s.orderRepo.PendingOrders(ctx, 10)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []entity.Invoice{}
	}
	if queue == nil {
		queue = []entity.KitchenOrder{}
	}

	return &DashboardStats{
		TodaySales:     today.TotalAmount,
		TodayInvoices:  today.InvoiceCount,
		MonthSales:     month.TotalAmount,
		MonthInvoices:  month.InvoiceCount,
		PendingOrders:  pending,
		RecentInvoices: recent,
		OrderQueue:     queue,
	}, nil
}
