package repository

import (
	"context"
	"sync"

	bookingserrors "dreamshoots/internal/bookings/errors"
	"dreamshoots/pkg/model"
)

// memoryBookingRepository keeps bookings in process memory. Records are
// copied on the way in and out so callers never share state with the store.
type memoryBookingRepository struct {
	mu    sync.RWMutex
	byID  map[string]*model.Booking
	order []string
}

func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{
		byID: make(map[string]*model.Booking),
	}
}

func (r *memoryBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[booking.ID]; exists {
		return bookingserrors.ErrDuplicateID
	}

	stored := *booking
	r.byID[booking.ID] = &stored
	r.order = append(r.order, booking.ID)
	return nil
}

func (r *memoryBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, bookingserrors.ErrNotFound
	}
	out := *booking
	return &out, nil
}

func (r *memoryBookingRepository) FindAll(ctx context.Context) ([]*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]*model.Booking, 0, len(r.order))
	for _, id := range r.order {
		out := *r.byID[id]
		bookings = append(bookings, &out)
	}
	return bookings, nil
}

func (r *memoryBookingRepository) UpdateStatus(ctx context.Context, id string, from, to model.BookingStatus) (*model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, bookingserrors.ErrNotFound
	}
	if booking.Status != from {
		return nil, bookingserrors.ErrStatusChanged
	}
	booking.Status = to
	out := *booking
	return &out, nil
}

func (r *memoryBookingRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return bookingserrors.ErrNotFound
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
