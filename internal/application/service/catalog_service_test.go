package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stayops/resortbill-api/pkg/apperror"
)

func TestDeleteMenuItem_BlockedWhileInvoiced(t *testing.T) {
	menuRepo := newFakeMenuRepo()
	svc := NewCatalogService(menuRepo, newFakeServiceRepo())
	ctx := context.Background()

	item, err := svc.CreateMenuItem(ctx, &MenuItemInput{Name: "Veg Thali", Rate: dec(t, "450")})
	if err != nil {
		t.Fatalf("CreateMenuItem: %v", err)
	}

	menuRepo.invoiceRefs[item.ID] = 3
	if err := svc.DeleteMenuItem(ctx, item.ID); !apperror.IsConflict(err) {
		t.Errorf("delete with invoice refs: err = %v, want conflict", err)
	}

	menuRepo.invoiceRefs[item.ID] = 0
	if err := svc.DeleteMenuItem(ctx, item.ID); err != nil {
		t.Errorf("delete without refs: %v", err)
	}
}

func TestDeleteService_BlockedWhileInvoiced(t *testing.T) {
	serviceRepo := newFakeServiceRepo()
	svc := NewCatalogService(newFakeMenuRepo(), serviceRepo)
	ctx := context.Background()

	room, err := svc.CreateService(ctx, &ServiceInput{Name: "Deluxe Room", Rate: dec(t, "3500")})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}

	serviceRepo.invoiceRefs[room.ID] = 1
	if err := svc.DeleteService(ctx, room.ID); !apperror.IsConflict(err) {
		t.Errorf("delete with invoice refs: err = %v, want conflict", err)
	}
}

func TestCatalogValidation(t *testing.T) {
	svc := NewCatalogService(newFakeMenuRepo(), newFakeServiceRepo())
	ctx := context.Background()

	if _, err := svc.CreateMenuItem(ctx, &MenuItemInput{Name: "", Rate: dec(t, "10")}); err == nil {
		t.Error("empty name accepted")
	}
	if _, err := svc.CreateMenuItem(ctx, &MenuItemInput{Name: "X", Rate: dec(t, "-1")}); err == nil {
		t.Error("negative rate accepted")
	}
	if _, err := svc.CreateService(ctx, &ServiceInput{Name: "X", Rate: dec(t, "10"), GSTPercent: dec(t, "-2")}); err == nil {
		t.Error("negative GST accepted")
	}
	if _, err := svc.GetMenuItem(ctx, uuid.New()); !apperror.IsNotFound(err) {
		t.Error("missing item should be not found")
	}
}
