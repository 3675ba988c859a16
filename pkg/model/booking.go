package model

import (
	"time"
)

type Booking struct {
	ID              string        `json:"id" bson:"_id"`
	Name            string        `json:"name" bson:"name"`
	Phone           string        `json:"phone" bson:"phone"`
	PreferredDate   string        `json:"preferred_date" bson:"preferred_date"`
	PreferredTime   string        `json:"preferred_time" bson:"preferred_time"`
	EventType       string        `json:"event_type" bson:"event_type"`
	Location        string        `json:"location" bson:"location"`
	SelectedPackage string        `json:"selected_package" bson:"selected_package"`
	ImportantInfo   string        `json:"important_info" bson:"important_info"`
	Status          BookingStatus `json:"status" bson:"status"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
}

// BookingCreate is the public intake payload. It carries no id or status;
// both are assigned by the service.
type BookingCreate struct {
	Name            string `json:"name" validate:"required,max=100"`
	Phone           string `json:"phone" validate:"required,max=32"`
	PreferredDate   string `json:"preferred_date" validate:"required,max=32"`
	PreferredTime   string `json:"preferred_time" validate:"required,max=32"`
	EventType       string `json:"event_type" validate:"required,max=100"`
	Location        string `json:"location" validate:"max=200"`
	SelectedPackage string `json:"selected_package" validate:"max=100"`
	ImportantInfo   string `json:"important_info" validate:"max=2000"`
}

type BookingStatusUpdate struct {
	Status string `json:"status" validate:"required,booking_status"`
}

type BookingSummary struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// BookingList pairs a filtered listing with counts over the whole store.
type BookingList struct {
	Bookings []*Booking     `json:"bookings"`
	Summary  BookingSummary `json:"summary"`
}
