package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/internal/domain/repository"
	"github.com/stayops/resortbill-api/pkg/apperror"
)

// ReportService handles the aggregation reports over invoices and kitchen
// orders.
type ReportService struct {
	reportRepo  repository.ReportRepository
	invoiceRepo repository.InvoiceRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, invoiceRepo repository.InvoiceRepository) *ReportService {
	return &ReportService{
		reportRepo:  reportRepo,
		invoiceRepo: invoiceRepo,
	}
}

// ReportRange is a validated, end-of-day-widened date range.
type ReportRange struct {
	Start time.Time
	End   time.Time
}

// NewReportRange validates and widens a calendar date range. The end bound
// is pushed to 23:59:59 so the full final day is included.
func NewReportRange(start, end time.Time) (ReportRange, error) {
	if start.IsZero() || end.IsZero() {
		return ReportRange{}, apperror.NewValidationError("Both start and end dates are required")
	}
	if end.Before(start) {
		return ReportRange{}, apperror.NewValidationError("End date must not be before start date")
	}
	widened := widenToEndOfDay(&end)
	return ReportRange{Start: start, End: *widened}, nil
}

// SalesReport is the daily sales breakdown over a range, with grand totals.
type SalesReport struct {
	From   time.Time                  `json:"from"`
	To     time.Time                  `json:"to"`
	Rows   []repository.DailySalesRow `json:"rows"`
	Totals repository.RangeTotals     `json:"totals"`
}

// Sales returns per-day, per-type sales rows plus range totals. An empty
// range yields zero totals, never nulls.
func (s *ReportService) Sales(ctx context.Context, r ReportRange, invoiceType *enum.InvoiceType) (*SalesReport, error) {
	if invoiceType != nil && !invoiceType.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid invoice type: %s", *invoiceType))
	}

	rows, err := s.reportRepo.DailySales(ctx, r.Start, r.End, invoiceType)
	if err != nil {
		return nil, err
	}
	totals, err := s.reportRepo.InvoiceRangeTotals(ctx, r.Start, r.End, invoiceType)
	if err != nil {
		return nil, err
	}

	return &SalesReport{
		From:   r.Start,
		To:     r.End,
		Rows:   rows,
		Totals: *totals,
	}, nil
}

// GSTReport is the per-invoice-type GST breakdown over a range.
type GSTReport struct {
	From   time.Time              `json:"from"`
	To     time.Time              `json:"to"`
	Rows   []repository.GSTRow    `json:"rows"`
	Totals repository.RangeTotals `json:"totals"`
}

// GST returns the taxable and GST amounts grouped by invoice type.
func (s *ReportService) GST(ctx context.Context, r ReportRange) (*GSTReport, error) {
	rows, err := s.reportRepo.GSTSummary(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	totals, err := s.reportRepo.InvoiceRangeTotals(ctx, r.Start, r.End, nil)
	if err != nil {
		return nil, err
	}
	return &GSTReport{From: r.Start, To: r.End, Rows: rows, Totals: *totals}, nil
}

// KitchenItemsReport lists menu items by ordered quantity over a range.
type KitchenItemsReport struct {
	From time.Time                   `json:"from"`
	To   time.Time                   `json:"to"`
	Rows []repository.KitchenItemRow `json:"rows"`
}

// KitchenItems returns per-menu-item order quantities, most ordered first.
func (s *ReportService) KitchenItems(ctx context.Context, r ReportRange) (*KitchenItemsReport, error) {
	rows, err := s.reportRepo.KitchenItemTotals(ctx, r.Start, r.End)
	if err != nil {
		return nil, err
	}
	return &KitchenItemsReport{From: r.Start, To: r.End, Rows: rows}, nil
}

// InvoiceRegister is the detailed invoice listing for a range: every invoice
// with its lines attached, plus aggregates recomputed over the listed
// invoices themselves so the totals always match the rows shown.
type InvoiceRegister struct {
	From          time.Time                               `json:"from"`
	To            time.Time                               `json:"to"`
	Invoices      []entity.Invoice                        `json:"invoices"`
	Totals        repository.RangeTotals                  `json:"totals"`
	StatusCounts  map[enum.PaymentStatus]int64           `json:"status_counts"`
	MethodCounts  map[enum.PaymentMethod]int64           `json:"method_counts"`
	StatusAmounts map[enum.PaymentStatus]decimal.Decimal `json:"status_amounts"`
}

// Register returns the full invoice register for the range. Lines are
// fetched in one batch and reattached in memory; aggregates are summed over
// the returned headers with decimal arithmetic, which reproduces the
// database SUM exactly since both run over the same stored 2-decimal values.
func (s *ReportService) Register(ctx context.Context, r ReportRange, invoiceType *enum.InvoiceType, guestName string) (*InvoiceRegister, error) {
	if invoiceType != nil && !invoiceType.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid invoice type: %s", *invoiceType))
	}

	invoices, err := s.invoiceRepo.ListByRange(ctx, r.Start, r.End, invoiceType, guestName)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(invoices))
	for i := range invoices {
		ids[i] = invoices[i].ID
	}
	items, err := s.invoiceRepo.ItemsByInvoiceIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	itemsByInvoice := make(map[uuid.UUID][]entity.InvoiceItem, len(invoices))
	for _, it := range items {
		itemsByInvoice[it.InvoiceID] = append(itemsByInvoice[it.InvoiceID], it)
	}

	register := &InvoiceRegister{
		From: r.Start,
		To:   r.End,
		Totals: repository.RangeTotals{
			Subtotal:    decimal.Zero,
			TaxAmount:   decimal.Zero,
			TotalAmount: decimal.Zero,
		},
		StatusCounts:  make(map[enum.PaymentStatus]int64),
		MethodCounts:  make(map[enum.PaymentMethod]int64),
		StatusAmounts: make(map[enum.PaymentStatus]decimal.Decimal),
	}
	// Every declared status appears in the summary, zero-valued when absent.
	for _, st := range []enum.PaymentStatus{enum.PaymentStatusPending, enum.PaymentStatusPaid, enum.PaymentStatusCancelled} {
		register.StatusCounts[st] = 0
		register.StatusAmounts[st] = decimal.Zero
	}
	for _, m := range []enum.PaymentMethod{enum.PaymentMethodCash, enum.PaymentMethodCard, enum.PaymentMethodUPI, enum.PaymentMethodOther} {
		register.MethodCounts[m] = 0
	}

	for i := range invoices {
		invoices[i].Items = itemsByInvoice[invoices[i].ID]

		register.Totals.InvoiceCount++
		register.Totals.Subtotal = register.Totals.Subtotal.Add(invoices[i].Subtotal)
		register.Totals.TaxAmount = register.Totals.TaxAmount.Add(invoices[i].TaxAmount)
		register.Totals.TotalAmount = register.Totals.TotalAmount.Add(invoices[i].TotalAmount)

		register.StatusCounts[invoices[i].PaymentStatus]++
		register.MethodCounts[invoices[i].PaymentMethod]++
		register.StatusAmounts[invoices[i].PaymentStatus] =
			register.StatusAmounts[invoices[i].PaymentStatus].Add(invoices[i].TotalAmount)
	}

	register.Invoices = invoices
	if register.Invoices == nil {
		register.Invoices = []entity.Invoice{}
	}
	return register, nil
}

// DailySales builds the sales report for one calendar day. Used by the
// scheduled report mail.
func (s *ReportService) DailySales(ctx context.Context, day time.Time) (*SalesReport, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	r, err := NewReportRange(start, start)
	if err != nil {
		return nil, err
	}
	return s.Sales(ctx, r, nil)
}
