package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayops/resortbill-api/internal/domain/enum"
)

// DailySalesRow is one (calendar date, invoice type) group of the sales
// report. Sums come straight from SQL SUM over numeric columns, so they are
// exact decimals.
type DailySalesRow struct {
	Date         time.Time        `json:"date"`
	Type         enum.InvoiceType `json:"type"`
	InvoiceCount int64            `json:"invoice_count"`
	Subtotal     decimal.Decimal  `json:"subtotal"`
	TaxAmount    decimal.Decimal  `json:"tax_amount"`
	TotalAmount  decimal.Decimal  `json:"total_amount"`
}

// GSTRow is one invoice-type group of the GST report.
type GSTRow struct {
	Type          enum.InvoiceType `json:"type"`
	InvoiceCount  int64            `json:"invoice_count"`
	TaxableAmount decimal.Decimal  `json:"taxable_amount"`
	GSTAmount     decimal.Decimal  `json:"gst_amount"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
}

// KitchenItemRow is one menu-item group of the kitchen items report,
// ordered by descending quantity.
type KitchenItemRow struct {
	MenuItemID *uuid.UUID      `json:"menu_item_id,omitempty"`
	ItemName   string          `json:"item_name"`
	Quantity   int64           `json:"quantity"`
	Amount     decimal.Decimal `json:"amount"`
}

// RangeTotals is a database-side SUM/COUNT over invoices in a date range.
// The in-memory recomputation performed by the report service must produce
// exactly these numbers for the same predicate.
type RangeTotals struct {
	InvoiceCount int64           `json:"invoice_count"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxAmount    decimal.Decimal `json:"tax_amount"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}

// ReportRepository defines the aggregate queries backing the reporting
// engine. All numeric results default to zero, never null, when no rows
// match.
type ReportRepository interface {
	DailySales(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType) ([]DailySalesRow, error)
	GSTSummary(ctx context.Context, start, end time.Time) ([]GSTRow, error)
	KitchenItemTotals(ctx context.Context, start, end time.Time) ([]KitchenItemRow, error)
	InvoiceRangeTotals(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType) (*RangeTotals, error)
}
