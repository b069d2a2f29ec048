package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/pkg/apperror"
)

func newInvoiceServiceFixture() (*InvoiceService, *fakeInvoiceRepo, *fakeOrderRepo, *fakeMenuRepo, *fakeServiceRepo) {
	orderRepo := newFakeOrderRepo()
	invoiceRepo := newFakeInvoiceRepo(orderRepo)
	menuRepo := newFakeMenuRepo()
	serviceRepo := newFakeServiceRepo()
	guestRepo := newFakeGuestRepo()
	svc := NewInvoiceService(invoiceRepo, orderRepo, menuRepo, serviceRepo, guestRepo)
	return svc, invoiceRepo, orderRepo, menuRepo, serviceRepo
}

func seedOrder(t *testing.T, orderRepo *fakeOrderRepo) *entity.KitchenOrder {
	t.Helper()
	order := &entity.KitchenOrder{
		OrderNumber: "KO202401050042",
		GuestName:   "Ravi",
		RoomNumber:  "204",
		Status:      enum.OrderStatusCompleted,
		Subtotal:    dec(t, "980.00"),
		TaxAmount:   dec(t, "176.40"),
		TotalAmount: dec(t, "1156.40"),
		Items: []entity.KitchenOrderItem{
			{ItemName: "Veg Thali", Quantity: 2, Rate: dec(t, "450.00"), TaxPercentage: dec(t, "18"), TaxAmount: dec(t, "162.00"), LineTotal: dec(t, "1062.00")},
			{ItemName: "Masala Tea", Quantity: 1, Rate: dec(t, "80.00"), TaxPercentage: dec(t, "18"), TaxAmount: dec(t, "14.40"), LineTotal: dec(t, "94.40")},
		},
	}
	if err := orderRepo.CreateWithItems(context.Background(), order); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestConvertOrder_CopiesTotalsVerbatim(t *testing.T) {
	svc, _, orderRepo, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()
	order := seedOrder(t, orderRepo)

	invoice, err := svc.ConvertOrder(ctx, &ConvertOrderInput{OrderID: order.ID})
	if err != nil {
		t.Fatalf("ConvertOrder: %v", err)
	}

	if invoice.Type != enum.InvoiceTypeKitchen {
		t.Errorf("Type = %s, want kitchen", invoice.Type)
	}
	if !strings.HasPrefix(invoice.InvoiceNumber, "KT") {
		t.Errorf("InvoiceNumber = %q, want KT prefix", invoice.InvoiceNumber)
	}

	// Totals and line amounts are copied, never recomputed.
	if !invoice.Subtotal.Equal(order.Subtotal) ||
		!invoice.TaxAmount.Equal(order.TaxAmount) ||
		!invoice.TotalAmount.Equal(order.TotalAmount) {
		t.Errorf("totals %s/%s/%s differ from order %s/%s/%s",
			invoice.Subtotal, invoice.TaxAmount, invoice.TotalAmount,
			order.Subtotal, order.TaxAmount, order.TotalAmount)
	}
	if len(invoice.Items) != len(order.Items) {
		t.Fatalf("len(Items) = %d, want %d", len(invoice.Items), len(order.Items))
	}
	for i := range invoice.Items {
		if !invoice.Items[i].LineTotal.Equal(order.Items[i].LineTotal) {
			t.Errorf("item %d LineTotal = %s, want %s", i, invoice.Items[i].LineTotal, order.Items[i].LineTotal)
		}
	}

	if invoice.GuestName != "Ravi" || invoice.RoomNumber != "204" {
		t.Errorf("guest = %q room = %q", invoice.GuestName, invoice.RoomNumber)
	}
	if order.InvoiceID == nil || *order.InvoiceID != invoice.ID {
		t.Error("order's invoice reference not set")
	}
}

func TestConvertOrder_OnlyOnce(t *testing.T) {
	svc, _, orderRepo, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()
	order := seedOrder(t, orderRepo)

	if _, err := svc.ConvertOrder(ctx, &ConvertOrderInput{OrderID: order.ID}); err != nil {
		t.Fatalf("first conversion: %v", err)
	}
	_, err := svc.ConvertOrder(ctx, &ConvertOrderInput{OrderID: order.ID})
	if !apperror.IsConflict(err) {
		t.Errorf("second conversion: err = %v, want conflict", err)
	}
}

func TestConvertOrder_MissingOrder(t *testing.T) {
	svc, _, _, _, _ := newInvoiceServiceFixture()

	_, err := svc.ConvertOrder(context.Background(), &ConvertOrderInput{OrderID: uuid.New()})
	if !apperror.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestCreateInvoice_ResortWithServices(t *testing.T) {
	svc, _, _, _, serviceRepo := newInvoiceServiceFixture()
	ctx := context.Background()

	room := &entity.Service{Name: "Deluxe Room", Rate: dec(t, "3500"), GSTPercent: dec(t, "12")}
	_ = serviceRepo.Create(ctx, room)

	invoice, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		Type:      enum.InvoiceTypeResort,
		GuestName: "Priya",
		Items: []InvoiceLineInput{
			{ServiceID: &room.ID, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("CreateInvoice: %v", err)
	}

	if !strings.HasPrefix(invoice.InvoiceNumber, "RS") {
		t.Errorf("InvoiceNumber = %q, want RS prefix", invoice.InvoiceNumber)
	}
	if !invoice.Subtotal.Equal(dec(t, "7000.00")) {
		t.Errorf("Subtotal = %s, want 7000.00", invoice.Subtotal)
	}
	if !invoice.TaxAmount.Equal(dec(t, "840.00")) {
		t.Errorf("TaxAmount = %s, want 840.00", invoice.TaxAmount)
	}
	if !invoice.TotalAmount.Equal(dec(t, "7840.00")) {
		t.Errorf("TotalAmount = %s, want 7840.00", invoice.TotalAmount)
	}
	if invoice.PaymentStatus != enum.PaymentStatusPending {
		t.Errorf("PaymentStatus = %s, want pending", invoice.PaymentStatus)
	}
	if invoice.Items[0].ItemName != "Deluxe Room" {
		t.Errorf("Items[0].ItemName = %q", invoice.Items[0].ItemName)
	}
}

func TestCreateInvoice_LineMayNotReferenceBothCatalogs(t *testing.T) {
	svc, _, _, menuRepo, serviceRepo := newInvoiceServiceFixture()
	ctx := context.Background()

	item := &entity.MenuItem{Name: "Tea", Rate: dec(t, "80"), IsAvailable: true}
	room := &entity.Service{Name: "Room", Rate: dec(t, "3500")}
	_ = menuRepo.Create(ctx, item)
	_ = serviceRepo.Create(ctx, room)

	_, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		Type:      enum.InvoiceTypeResort,
		GuestName: "A",
		Items: []InvoiceLineInput{
			{MenuItemID: &item.ID, ServiceID: &room.ID, Quantity: 1},
		},
	})
	if err == nil {
		t.Fatal("expected error for line referencing both catalogs")
	}
}

func TestUpdatePayment(t *testing.T) {
	svc, invoiceRepo, orderRepo, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()
	_ = orderRepo

	inv := &entity.Invoice{
		InvoiceNumber: "RS202401010001",
		InvoiceDate:   time.Now(),
		Type:          enum.InvoiceTypeResort,
		GuestName:     "A",
		PaymentStatus: enum.PaymentStatusPending,
		PaymentMethod: enum.PaymentMethodCash,
	}
	_ = invoiceRepo.CreateWithItems(ctx, inv)

	updated, err := svc.UpdatePayment(ctx, inv.ID, enum.PaymentStatusPaid, enum.PaymentMethodUPI)
	if err != nil {
		t.Fatalf("UpdatePayment: %v", err)
	}
	if updated.PaymentStatus != enum.PaymentStatusPaid || updated.PaymentMethod != enum.PaymentMethodUPI {
		t.Errorf("payment = %s/%s, want paid/upi", updated.PaymentStatus, updated.PaymentMethod)
	}

	if _, err := svc.UpdatePayment(ctx, inv.ID, "refunded", enum.PaymentMethodCash); err == nil {
		t.Error("invalid status accepted")
	}
	if _, err := svc.UpdatePayment(ctx, uuid.New(), enum.PaymentStatusPaid, enum.PaymentMethodCash); !apperror.IsNotFound(err) {
		t.Errorf("missing invoice: err = %v, want not found", err)
	}
}

func TestDeleteInvoice_ReleasesOrderForReconversion(t *testing.T) {
	svc, _, orderRepo, _, _ := newInvoiceServiceFixture()
	ctx := context.Background()
	order := seedOrder(t, orderRepo)

	invoice, err := svc.ConvertOrder(ctx, &ConvertOrderInput{OrderID: order.ID})
	if err != nil {
		t.Fatalf("ConvertOrder: %v", err)
	}

	if err := svc.DeleteInvoice(ctx, invoice.ID); err != nil {
		t.Fatalf("DeleteInvoice: %v", err)
	}
	if order.InvoiceID != nil {
		t.Fatal("order's invoice reference not cleared on delete")
	}

	// With the reference cleared the order is convertible again.
	if _, err := svc.ConvertOrder(ctx, &ConvertOrderInput{OrderID: order.ID}); err != nil {
		t.Errorf("reconversion after delete: %v", err)
	}

	if err := svc.DeleteInvoice(ctx, uuid.New()); !apperror.IsNotFound(err) {
		t.Errorf("missing invoice: err = %v, want not found", err)
	}
}
