package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/internal/domain/repository"
)

// fakeReportRepo returns canned aggregate rows; the Register tests exercise
// the in-memory aggregation path, which never touches it.
type fakeReportRepo struct {
	totals repository.RangeTotals
}

func (f *fakeReportRepo) DailySales(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType) ([]repository.DailySalesRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) GSTSummary(ctx context.Context, start, end time.Time) ([]repository.GSTRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) KitchenItemTotals(ctx context.Context, start, end time.Time) ([]repository.KitchenItemRow, error) {
	return nil, nil
}

func (f *fakeReportRepo) InvoiceRangeTotals(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType) (*repository.RangeTotals, error) {
	totals := f.totals
	return &totals, nil
}

func newReportServiceFixture() (*ReportService, *fakeInvoiceRepo) {
	invoiceRepo := newFakeInvoiceRepo(newFakeOrderRepo())
	return NewReportService(&fakeReportRepo{}, invoiceRepo), invoiceRepo
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func seedInvoice(t *testing.T, repo *fakeInvoiceRepo, number, date string, status enum.PaymentStatus, method enum.PaymentMethod, subtotal, tax string) {
	t.Helper()
	sub := dec(t, subtotal)
	tx := dec(t, tax)
	inv := &entity.Invoice{
		InvoiceNumber: number,
		InvoiceDate:   day(t, date).Add(10 * time.Hour),
		Type:          enum.InvoiceTypeResort,
		GuestName:     "G",
		Subtotal:      sub,
		TaxAmount:     tx,
		TotalAmount:   sub.Add(tx),
		PaymentStatus: status,
		PaymentMethod: method,
	}
	if err := repo.CreateWithItems(context.Background(), inv); err != nil {
		t.Fatalf("seed invoice %s: %v", number, err)
	}
}

func TestNewReportRange(t *testing.T) {
	r, err := NewReportRange(day(t, "2024-03-01"), day(t, "2024-03-05"))
	if err != nil {
		t.Fatalf("NewReportRange: %v", err)
	}
	if r.End.Hour() != 23 || r.End.Minute() != 59 || r.End.Second() != 59 {
		t.Errorf("end not widened to end of day: %s", r.End)
	}
	if r.End.Day() != 5 {
		t.Errorf("end day = %d, want 5", r.End.Day())
	}

	if _, err := NewReportRange(day(t, "2024-03-05"), day(t, "2024-03-01")); err == nil {
		t.Error("reversed range accepted")
	}
	if _, err := NewReportRange(time.Time{}, day(t, "2024-03-01")); err == nil {
		t.Error("zero start accepted")
	}
}

func TestRegister_IncludesFullEndDay(t *testing.T) {
	svc, invoiceRepo := newReportServiceFixture()
	ctx := context.Background()

	// Written at 10:00 on the range's final day; a naive midnight bound
	// would drop it.
	seedInvoice(t, invoiceRepo, "RS1", "2024-03-05", enum.PaymentStatusPaid, enum.PaymentMethodCash, "100.00", "18.00")

	r, _ := NewReportRange(day(t, "2024-03-01"), day(t, "2024-03-05"))
	register, err := svc.Register(ctx, r, nil, "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if register.Totals.InvoiceCount != 1 {
		t.Errorf("InvoiceCount = %d, want 1", register.Totals.InvoiceCount)
	}
}

func TestRegister_PaymentSummary(t *testing.T) {
	svc, invoiceRepo := newReportServiceFixture()
	ctx := context.Background()

	seedInvoice(t, invoiceRepo, "RS1", "2024-03-02", enum.PaymentStatusPaid, enum.PaymentMethodCash, "100.00", "18.00")
	seedInvoice(t, invoiceRepo, "RS2", "2024-03-03", enum.PaymentStatusPaid, enum.PaymentMethodUPI, "200.00", "36.00")
	seedInvoice(t, invoiceRepo, "RS3", "2024-03-04", enum.PaymentStatusPending, enum.PaymentMethodCash, "50.00", "9.00")

	r, _ := NewReportRange(day(t, "2024-03-01"), day(t, "2024-03-05"))
	register, err := svc.Register(ctx, r, nil, "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if got := register.StatusCounts[enum.PaymentStatusPaid]; got != 2 {
		t.Errorf("paid count = %d, want 2", got)
	}
	if got := register.StatusCounts[enum.PaymentStatusPending]; got != 1 {
		t.Errorf("pending count = %d, want 1", got)
	}
	// Absent statuses still appear, zero-valued.
	if got, ok := register.StatusCounts[enum.PaymentStatusCancelled]; !ok || got != 0 {
		t.Errorf("cancelled count = %d (present=%v), want 0 present", got, ok)
	}
	if got := register.MethodCounts[enum.PaymentMethodCash]; got != 2 {
		t.Errorf("cash count = %d, want 2", got)
	}

	if got, want := register.Totals.Subtotal, dec(t, "350.00"); !got.Equal(want) {
		t.Errorf("Subtotal = %s, want %s", got, want)
	}
	if got, want := register.Totals.TaxAmount, dec(t, "63.00"); !got.Equal(want) {
		t.Errorf("TaxAmount = %s, want %s", got, want)
	}
	if got, want := register.Totals.TotalAmount, dec(t, "413.00"); !got.Equal(want) {
		t.Errorf("TotalAmount = %s, want %s", got, want)
	}
	if got, want := register.StatusAmounts[enum.PaymentStatusPaid], dec(t, "354.00"); !got.Equal(want) {
		t.Errorf("paid amount = %s, want %s", got, want)
	}

	// The recomputed aggregates must match summing the returned rows.
	sum := decimal.Zero
	for _, inv := range register.Invoices {
		sum = sum.Add(inv.TotalAmount)
	}
	if !sum.Equal(register.Totals.TotalAmount) {
		t.Errorf("row sum %s != totals %s", sum, register.Totals.TotalAmount)
	}
}

func TestRegister_EmptyRange(t *testing.T) {
	svc, _ := newReportServiceFixture()

	r, _ := NewReportRange(day(t, "2030-01-01"), day(t, "2030-01-31"))
	register, err := svc.Register(context.Background(), r, nil, "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if register.Totals.InvoiceCount != 0 {
		t.Errorf("InvoiceCount = %d, want 0", register.Totals.InvoiceCount)
	}
	if !register.Totals.TotalAmount.Equal(decimal.Zero) {
		t.Errorf("TotalAmount = %s, want 0", register.Totals.TotalAmount)
	}
	if register.Invoices == nil {
		t.Error("Invoices is nil, want empty slice")
	}
}

func TestRegister_TypeFilter(t *testing.T) {
	svc, invoiceRepo := newReportServiceFixture()
	ctx := context.Background()

	seedInvoice(t, invoiceRepo, "RS1", "2024-03-02", enum.PaymentStatusPaid, enum.PaymentMethodCash, "100.00", "18.00")
	kitchen := enum.InvoiceTypeKitchen

	r, _ := NewReportRange(day(t, "2024-03-01"), day(t, "2024-03-05"))
	register, err := svc.Register(ctx, r, &kitchen, "")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if register.Totals.InvoiceCount != 0 {
		t.Errorf("InvoiceCount = %d, want 0 for kitchen filter", register.Totals.InvoiceCount)
	}

	bad := enum.InvoiceType("spa")
	if _, err := svc.Register(ctx, r, &bad, ""); err == nil {
		t.Error("invalid invoice type accepted")
	}
}
