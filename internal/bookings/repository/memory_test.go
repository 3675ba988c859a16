package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingserrors "dreamshoots/internal/bookings/errors"
	"dreamshoots/pkg/model"
)

func newBooking(id string) *model.Booking {
	return &model.Booking{
		ID:            id,
		Name:          "Asha",
		Phone:         "+919876543210",
		PreferredDate: "2025-01-10",
		PreferredTime: "10:00",
		EventType:     "Wedding",
		Status:        model.BookingStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestMemoryBookingRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookingRepository()

	for _, id := range []string{"b1", "b2", "b3"} {
		if err := repo.Create(ctx, newBooking(id)); err != nil {
			t.Fatalf("Create(%s) error: %v", id, err)
		}
	}

	if err := repo.Create(ctx, newBooking("b1")); !errors.Is(err, bookingserrors.ErrDuplicateID) {
		t.Errorf("duplicate create error = %v, want ErrDuplicateID", err)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll error: %v", err)
	}
	if len(all) != 3 || all[0].ID != "b1" || all[2].ID != "b3" {
		t.Fatalf("FindAll returned unexpected order: %+v", all)
	}

	updated, err := repo.UpdateStatus(ctx, "b2", model.BookingStatusPending, model.BookingStatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}
	if updated.Status != model.BookingStatusConfirmed || updated.Name != "Asha" {
		t.Errorf("UpdateStatus returned %+v", updated)
	}

	if err := repo.Delete(ctx, "b1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := repo.FindByID(ctx, "b1"); !errors.Is(err, bookingserrors.ErrNotFound) {
		t.Errorf("FindByID after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "b1"); !errors.Is(err, bookingserrors.ErrNotFound) {
		t.Errorf("second Delete = %v, want ErrNotFound", err)
	}
	if _, err := repo.UpdateStatus(ctx, "missing", model.BookingStatusConfirmed, model.BookingStatusPending); !errors.Is(err, bookingserrors.ErrNotFound) {
		t.Errorf("UpdateStatus missing = %v, want ErrNotFound", err)
	}

	all, _ = repo.FindAll(ctx)
	if len(all) != 2 || all[0].ID != "b2" || all[1].ID != "b3" {
		t.Errorf("order after delete = %+v", all)
	}
}

func TestMemoryBookingRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookingRepository()
	b := newBooking("b1")
	if err := repo.Create(ctx, b); err != nil {
		t.Fatal(err)
	}

	b.Status = model.BookingStatusCompleted
	got, _ := repo.FindByID(ctx, "b1")
	if got.Status != model.BookingStatusPending {
		t.Error("caller mutation leaked into the store")
	}

	got.Name = "changed"
	again, _ := repo.FindByID(ctx, "b1")
	if again.Name != "Asha" {
		t.Error("returned record shares state with the store")
	}
}

func TestMemoryBookingRepository_UpdateStatusRequiresExpectedStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryBookingRepository()
	if err := repo.Create(ctx, newBooking("b1")); err != nil {
		t.Fatal(err)
	}

	_, err := repo.UpdateStatus(ctx, "b1", model.BookingStatusConfirmed, model.BookingStatusCompleted)
	if !errors.Is(err, bookingserrors.ErrStatusChanged) {
		t.Fatalf("UpdateStatus with stale status = %v, want ErrStatusChanged", err)
	}

	got, _ := repo.FindByID(ctx, "b1")
	if got.Status != model.BookingStatusPending {
		t.Errorf("Status = %q, want pending to be left untouched", got.Status)
	}
}
