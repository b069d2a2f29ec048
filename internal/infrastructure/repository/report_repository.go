package repository

import (
	"context"
	"time"

	"github.com/stayops/resortbill-api/internal/domain/enum"
	domainRepo "github.com/stayops/resortbill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

// DailySales groups invoices by (calendar date, type). Sums run over numeric
// columns in SQL and are scanned into decimals, so no precision is lost.
func (r *reportRepository) DailySales(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType) ([]domainRepo.DailySalesRow, error) {
	rows := []domainRepo.DailySalesRow{}

	query := `
		SELECT
			DATE(invoice_date) AS date,
			type,
			COUNT(*) AS invoice_count,
			COALESCE(SUM(subtotal), 0) AS subtotal,
			COALESCE(SUM(tax_amount), 0) AS tax_amount,
			COALESCE(SUM(total_amount), 0) AS total_amount
		FROM invoices
		WHERE deleted_at IS NULL
		  AND invoice_date BETWEEN ? AND ?`
	args := []interface{}{start, end}

	if invoiceType != nil {
		query += ` AND type = ?`
		args = append(args, *invoiceType)
	}
	query += `
		GROUP BY DATE(invoice_date), type
		ORDER BY date ASC, type ASC`

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	return rows, err
}

// GSTSummary groups invoices by type. The taxable amount is the subtotal;
// GST is the summed tax column.
func (r *reportRepository) GSTSummary(ctx context.Context, start, end time.Time) ([]domainRepo.GSTRow, error) {
	rows := []domainRepo.GSTRow{}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			type,
			COUNT(*) AS invoice_count,
			COALESCE(SUM(subtotal), 0) AS taxable_amount,
			COALESCE(SUM(tax_amount), 0) AS gst_amount,
			COALESCE(SUM(total_amount), 0) AS total_amount
		FROM invoices
		WHERE deleted_at IS NULL
		  AND invoice_date BETWEEN ? AND ?
		GROUP BY type
		ORDER BY type ASC`, start, end).Scan(&rows).Error
	return rows, err
}

// KitchenItemTotals groups kitchen order lines by menu item over the range,
// most-ordered first.
func (r *reportRepository) KitchenItemTotals(ctx context.Context, start, end time.Time) ([]domainRepo.KitchenItemRow, error) {
	rows := []domainRepo.KitchenItemRow{}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			koi.menu_item_id,
			koi.item_name,
			COALESCE(SUM(koi.quantity), 0) AS quantity,
			COALESCE(SUM(koi.line_total), 0) AS amount
		FROM kitchen_order_items koi
		JOIN kitchen_orders ko ON ko.id = koi.order_id
		WHERE ko.deleted_at IS NULL
		  AND ko.created_at BETWEEN ? AND ?
		GROUP BY koi.menu_item_id, koi.item_name
		ORDER BY quantity DESC, koi.item_name ASC`, start, end).Scan(&rows).Error
	return rows, err
}

// InvoiceRangeTotals is the database-side SUM/COUNT the in-memory
// aggregation must reproduce exactly.
func (r *reportRepository) InvoiceRangeTotals(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType) (*domainRepo.RangeTotals, error) {
	var totals domainRepo.RangeTotals

	query := `
		SELECT
			COUNT(*) AS invoice_count,
			COALESCE(SUM(subtotal), 0) AS subtotal,
			COALESCE(SUM(tax_amount), 0) AS tax_amount,
			COALESCE(SUM(total_amount), 0) AS total_amount
		FROM invoices
		WHERE deleted_at IS NULL
		  AND invoice_date BETWEEN ? AND ?`
	args := []interface{}{start, end}

	if invoiceType != nil {
		query += ` AND type = ?`
		args = append(args, *invoiceType)
	}

	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return &totals, nil
}
