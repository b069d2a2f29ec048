package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/internal/domain/repository"
	"github.com/stayops/resortbill-api/pkg/apperror"
	"github.com/stayops/resortbill-api/pkg/pagination"
	"gorm.io/gorm"
)

// In-memory repository fakes. They reproduce the contract the GORM
// implementations provide: nil-on-missing lookups, gorm.ErrDuplicatedKey on
// unique violations, and gorm.ErrRecordNotFound on zero-row updates.

type fakeOrderRepo struct {
	orders      map[uuid.UUID]*entity.KitchenOrder
	failCreates int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.KitchenOrder)}
}

func (f *fakeOrderRepo) CreateWithItems(ctx context.Context, order *entity.KitchenOrder) error {
	if f.failCreates > 0 {
		f.failCreates--
		return gorm.ErrDuplicatedKey
	}
	for _, existing := range f.orders {
		if existing.OrderNumber == order.OrderNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.KitchenOrder, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.KitchenOrder, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) List(ctx context.Context, params *repository.KitchenOrderFilterParams) ([]entity.KitchenOrder, int64, error) {
	var out []entity.KitchenOrder
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	order, ok := f.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	order.Status = status
	return nil
}

func (f *fakeOrderRepo) CountByStatus(ctx context.Context, status enum.OrderStatus) (int64, error) {
	var n int64
	for _, o := range f.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrderRepo) PendingOrders(ctx context.Context, limit int) ([]entity.KitchenOrder, error) {
	var out []entity.KitchenOrder
	for _, o := range f.orders {
		if o.Status == enum.OrderStatusPending && len(out) < limit {
			out = append(out, *o)
		}
	}
	return out, nil
}

type fakeInvoiceRepo struct {
	invoices    map[uuid.UUID]*entity.Invoice
	orderRepo   *fakeOrderRepo
	failCreates int
}

func newFakeInvoiceRepo(orderRepo *fakeOrderRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices:  make(map[uuid.UUID]*entity.Invoice),
		orderRepo: orderRepo,
	}
}

func (f *fakeInvoiceRepo) CreateWithItems(ctx context.Context, invoice *entity.Invoice) error {
	if f.failCreates > 0 {
		f.failCreates--
		return gorm.ErrDuplicatedKey
	}
	for _, existing := range f.invoices {
		if existing.InvoiceNumber == invoice.InvoiceNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	for i := range invoice.Items {
		invoice.Items[i].InvoiceID = invoice.ID
	}
	f.invoices[invoice.ID] = invoice
	return nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeInvoiceRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	return f.invoices[id], nil
}

func (f *fakeInvoiceRepo) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var out []entity.Invoice
	for _, inv := range f.invoices {
		out = append(out, *inv)
	}
	return out, int64(len(out)), nil
}

func (f *fakeInvoiceRepo) ListByRange(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType, guestName string) ([]entity.Invoice, error) {
	var out []entity.Invoice
	for _, inv := range f.invoices {
		if inv.InvoiceDate.Before(start) || inv.InvoiceDate.After(end) {
			continue
		}
		if invoiceType != nil && inv.Type != *invoiceType {
			continue
		}
		out = append(out, *inv)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) ItemsByInvoiceIDs(ctx context.Context, invoiceIDs []uuid.UUID) ([]entity.InvoiceItem, error) {
	var out []entity.InvoiceItem
	for _, id := range invoiceIDs {
		if inv, ok := f.invoices[id]; ok {
			out = append(out, inv.Items...)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) UpdatePayment(ctx context.Context, id uuid.UUID, status enum.PaymentStatus, method enum.PaymentMethod) error {
	inv, ok := f.invoices[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	inv.PaymentStatus = status
	inv.PaymentMethod = method
	return nil
}

func (f *fakeInvoiceRepo) DeleteWithItems(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.invoices[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.invoices, id)
	if f.orderRepo != nil {
		for _, o := range f.orderRepo.orders {
			if o.InvoiceID != nil && *o.InvoiceID == id {
				o.InvoiceID = nil
			}
		}
	}
	return nil
}

func (f *fakeInvoiceRepo) ConvertFromOrder(ctx context.Context, orderID uuid.UUID, build repository.BuildInvoiceFromOrder) (*entity.Invoice, error) {
	order, ok := f.orderRepo.orders[orderID]
	if !ok {
		return nil, apperror.NewNotFoundError("Kitchen order")
	}
	if order.InvoiceID != nil {
		return nil, apperror.NewConflictError("Order has already been converted to an invoice")
	}

	invoice := build(order, order.Items)
	if f.failCreates > 0 {
		f.failCreates--
		return nil, gorm.ErrDuplicatedKey
	}
	for _, existing := range f.invoices {
		if existing.InvoiceNumber == invoice.InvoiceNumber {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	invoice.ID = uuid.New()
	for i := range invoice.Items {
		invoice.Items[i].InvoiceID = invoice.ID
	}
	f.invoices[invoice.ID] = invoice
	order.InvoiceID = &invoice.ID
	return invoice, nil
}

func (f *fakeInvoiceRepo) RecentInvoices(ctx context.Context, limit int) ([]entity.Invoice, error) {
	var out []entity.Invoice
	for _, inv := range f.invoices {
		if len(out) < limit {
			out = append(out, *inv)
		}
	}
	return out, nil
}

type fakeMenuRepo struct {
	items       map[uuid.UUID]*entity.MenuItem
	invoiceRefs map[uuid.UUID]int64
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{
		items:       make(map[uuid.UUID]*entity.MenuItem),
		invoiceRefs: make(map[uuid.UUID]int64),
	}
}

func (f *fakeMenuRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	return f.items[id], nil
}

func (f *fakeMenuRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	for _, id := range ids {
		if item, ok := f.items[id]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.MenuItem, int64, error) {
	var out []entity.MenuItem
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (f *fakeMenuRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeMenuRepo) CountInvoiceLineRefs(ctx context.Context, id uuid.UUID) (int64, error) {
	return f.invoiceRefs[id], nil
}

type fakeServiceRepo struct {
	services    map[uuid.UUID]*entity.Service
	invoiceRefs map[uuid.UUID]int64
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{
		services:    make(map[uuid.UUID]*entity.Service),
		invoiceRefs: make(map[uuid.UUID]int64),
	}
}

func (f *fakeServiceRepo) Create(ctx context.Context, svc *entity.Service) error {
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error) {
	var out []entity.Service
	for _, id := range ids {
		if svc, ok := f.services[id]; ok {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Service, int64, error) {
	var out []entity.Service
	for _, svc := range f.services {
		out = append(out, *svc)
	}
	return out, int64(len(out)), nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, svc *entity.Service) error {
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.services[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.services, id)
	return nil
}

func (f *fakeServiceRepo) CountInvoiceLineRefs(ctx context.Context, id uuid.UUID) (int64, error) {
	return f.invoiceRefs[id], nil
}

type fakeGuestRepo struct {
	guests map[uuid.UUID]*entity.Guest
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{guests: make(map[uuid.UUID]*entity.Guest)}
}

func (f *fakeGuestRepo) Create(ctx context.Context, guest *entity.Guest) error {
	if guest.ID == uuid.Nil {
		guest.ID = uuid.New()
	}
	f.guests[guest.ID] = guest
	return nil
}

func (f *fakeGuestRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	return f.guests[id], nil
}

func (f *fakeGuestRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Guest, int64, error) {
	var out []entity.Guest
	for _, g := range f.guests {
		out = append(out, *g)
	}
	return out, int64(len(out)), nil
}

func (f *fakeGuestRepo) Update(ctx context.Context, guest *entity.Guest) error {
	f.guests[guest.ID] = guest
	return nil
}

func (f *fakeGuestRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.guests[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.guests, id)
	return nil
}
