// Package events publishes booking and reel lifecycle records for downstream
// consumers. Publishing is best effort: failures are logged and never reach
// the caller.
package events

import (
	"context"
	"strings"

	"dreamshoots/pkg/model"
)

const (
	BookingCreated       = "booking.created"
	BookingStatusChanged = "booking.status_changed"
	BookingDeleted       = "booking.deleted"
	ReelCreated          = "reel.created"
	ReelDeleted          = "reel.deleted"
)

type Event struct {
	Type          string
	Key           string
	Payload       any
	CorrelationID string
}

type Publisher interface {
	Publish(ctx context.Context, ev Event)
	Close() error
}

type StatusChange struct {
	ID   string              `json:"id"`
	From model.BookingStatus `json:"from"`
	To   model.BookingStatus `json:"to"`
}

type Deleted struct {
	ID string `json:"id"`
}

func NewBookingCreated(b *model.Booking) Event {
	return Event{Type: BookingCreated, Key: b.ID, Payload: b}
}

func NewBookingStatusChanged(id string, from, to model.BookingStatus) Event {
	return Event{Type: BookingStatusChanged, Key: id, Payload: StatusChange{ID: id, From: from, To: to}}
}

func NewBookingDeleted(id string) Event {
	return Event{Type: BookingDeleted, Key: id, Payload: Deleted{ID: id}}
}

func NewReelCreated(r *model.Reel) Event {
	return Event{Type: ReelCreated, Key: r.ID, Payload: r}
}

func NewReelDeleted(id string) Event {
	return Event{Type: ReelDeleted, Key: id, Payload: Deleted{ID: id}}
}

// Entity returns the event's subject, e.g. "booking" for "booking.created".
func (e Event) Entity() string {
	entity, _, _ := strings.Cut(e.Type, ".")
	return entity
}

type nopPublisher struct{}

// NewNopPublisher returns a Publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, Event) {}

func (nopPublisher) Close() error { return nil }
