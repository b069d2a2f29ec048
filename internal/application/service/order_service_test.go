package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/pkg/apperror"
)

func newOrderServiceFixture() (*OrderService, *fakeOrderRepo, *fakeMenuRepo, *fakeGuestRepo) {
	orderRepo := newFakeOrderRepo()
	menuRepo := newFakeMenuRepo()
	guestRepo := newFakeGuestRepo()
	return NewOrderService(orderRepo, menuRepo, guestRepo), orderRepo, menuRepo, guestRepo
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestCreateOrder_PricesFromCatalog(t *testing.T) {
	svc, _, menuRepo, _ := newOrderServiceFixture()
	ctx := context.Background()

	thali := &entity.MenuItem{
		Name:        "Veg Thali",
		Rate:        dec(t, "450"),
		GSTPercent:  dec(t, "18"),
		IsAvailable: true,
	}
	tea := &entity.MenuItem{
		Name:        "Masala Tea",
		Rate:        dec(t, "80"),
		GSTPercent:  dec(t, "18"),
		IsAvailable: true,
	}
	_ = menuRepo.Create(ctx, thali)
	_ = menuRepo.Create(ctx, tea)

	order, err := svc.CreateOrder(ctx, &CreateOrderInput{
		GuestName: "Anand",
		Items: []OrderLineInput{
			{MenuItemID: &thali.ID, Quantity: 2},
			{MenuItemID: &tea.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	if got, want := order.Subtotal, dec(t, "980.00"); !got.Equal(want) {
		t.Errorf("Subtotal = %s, want %s", got, want)
	}
	if got, want := order.TaxAmount, dec(t, "176.40"); !got.Equal(want) {
		t.Errorf("TaxAmount = %s, want %s", got, want)
	}
	if got, want := order.TotalAmount, dec(t, "1156.40"); !got.Equal(want) {
		t.Errorf("TotalAmount = %s, want %s", got, want)
	}
	if !order.Subtotal.Add(order.TaxAmount).Equal(order.TotalAmount) {
		t.Errorf("total %s != subtotal %s + tax %s", order.TotalAmount, order.Subtotal, order.TaxAmount)
	}

	if !strings.HasPrefix(order.OrderNumber, "KO") {
		t.Errorf("OrderNumber = %q, want KO prefix", order.OrderNumber)
	}
	if order.Status != enum.OrderStatusPending {
		t.Errorf("Status = %s, want pending", order.Status)
	}
	if len(order.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(order.Items))
	}
	// Lines snapshot the catalog values at order time.
	if order.Items[0].ItemName != "Veg Thali" {
		t.Errorf("Items[0].ItemName = %q", order.Items[0].ItemName)
	}
	if !order.Items[0].Rate.Equal(dec(t, "450")) {
		t.Errorf("Items[0].Rate = %s", order.Items[0].Rate)
	}
	if !order.Items[0].LineTotal.Equal(dec(t, "1062.00")) {
		t.Errorf("Items[0].LineTotal = %s, want 1062.00", order.Items[0].LineTotal)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	svc, _, menuRepo, _ := newOrderServiceFixture()
	ctx := context.Background()

	offMenu := &entity.MenuItem{Name: "Seasonal Special", Rate: dec(t, "200"), IsAvailable: false}
	_ = menuRepo.Create(ctx, offMenu)
	missing := uuid.New()
	rate := dec(t, "100")
	badRate := dec(t, "-5")

	tests := []struct {
		name  string
		input *CreateOrderInput
	}{
		{
			name:  "no items",
			input: &CreateOrderInput{GuestName: "A", Items: nil},
		},
		{
			name: "missing guest name",
			input: &CreateOrderInput{Items: []OrderLineInput{
				{ItemName: "Tea", Quantity: 1, Rate: &rate},
			}},
		},
		{
			name: "unknown menu item",
			input: &CreateOrderInput{GuestName: "A", Items: []OrderLineInput{
				{MenuItemID: &missing, Quantity: 1},
			}},
		},
		{
			name: "unavailable menu item",
			input: &CreateOrderInput{GuestName: "A", Items: []OrderLineInput{
				{MenuItemID: &offMenu.ID, Quantity: 1},
			}},
		},
		{
			name: "zero quantity",
			input: &CreateOrderInput{GuestName: "A", Items: []OrderLineInput{
				{ItemName: "Tea", Quantity: 0, Rate: &rate},
			}},
		},
		{
			name: "negative rate",
			input: &CreateOrderInput{GuestName: "A", Items: []OrderLineInput{
				{ItemName: "Tea", Quantity: 1, Rate: &badRate},
			}},
		},
		{
			name: "free-form line without rate",
			input: &CreateOrderInput{GuestName: "A", Items: []OrderLineInput{
				{ItemName: "Tea", Quantity: 1},
			}},
		},
		{
			name: "bad order type",
			input: &CreateOrderInput{GuestName: "A", OrderType: "takeaway", Items: []OrderLineInput{
				{ItemName: "Tea", Quantity: 1, Rate: &rate},
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.CreateOrder(ctx, tc.input); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestCreateOrder_BackfillsGuestDetails(t *testing.T) {
	svc, _, _, guestRepo := newOrderServiceFixture()
	ctx := context.Background()

	guest := &entity.Guest{Name: "Meera", RoomNumber: "104"}
	_ = guestRepo.Create(ctx, guest)
	rate := dec(t, "120")

	order, err := svc.CreateOrder(ctx, &CreateOrderInput{
		GuestID: &guest.ID,
		Items:   []OrderLineInput{{ItemName: "Coffee", Quantity: 1, Rate: &rate}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.GuestName != "Meera" || order.RoomNumber != "104" {
		t.Errorf("guest = %q room = %q, want Meera/104", order.GuestName, order.RoomNumber)
	}
}

func TestCreateOrder_RetriesDuplicateNumber(t *testing.T) {
	svc, orderRepo, _, _ := newOrderServiceFixture()
	ctx := context.Background()
	rate := dec(t, "50")

	orderRepo.failCreates = 2
	order, err := svc.CreateOrder(ctx, &CreateOrderInput{
		GuestName: "A",
		Items:     []OrderLineInput{{ItemName: "Tea", Quantity: 1, Rate: &rate}},
	})
	if err != nil {
		t.Fatalf("CreateOrder after retries: %v", err)
	}
	if order.OrderNumber == "" {
		t.Error("order number not set")
	}

	orderRepo.failCreates = 3
	if _, err := svc.CreateOrder(ctx, &CreateOrderInput{
		GuestName: "A",
		Items:     []OrderLineInput{{ItemName: "Tea", Quantity: 1, Rate: &rate}},
	}); !apperror.IsConflict(err) {
		t.Errorf("exhausted retries: err = %v, want conflict", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc, orderRepo, _, _ := newOrderServiceFixture()
	ctx := context.Background()

	order := &entity.KitchenOrder{OrderNumber: "KO202401010001", GuestName: "A", Status: enum.OrderStatusPending}
	_ = orderRepo.CreateWithItems(ctx, order)

	updated, err := svc.UpdateStatus(ctx, order.ID, enum.OrderStatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != enum.OrderStatusCompleted {
		t.Errorf("Status = %s, want completed", updated.Status)
	}

	// Any declared status may replace any other, including going backwards.
	if _, err := svc.UpdateStatus(ctx, order.ID, enum.OrderStatusPending); err != nil {
		t.Errorf("backwards transition rejected: %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, order.ID, "delivered"); err == nil {
		t.Error("invalid status accepted")
	}
	if _, err := svc.UpdateStatus(ctx, uuid.New(), enum.OrderStatusCompleted); !apperror.IsNotFound(err) {
		t.Errorf("missing order: err = %v, want not found", err)
	}
}
