package validators

import (
	"slices"
	"testing"

	"dreamshoots/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
)

func schema(t *testing.T, v bson.M) bson.M {
	t.Helper()
	s, ok := v["$jsonSchema"].(bson.M)
	if !ok {
		t.Fatal("missing $jsonSchema")
	}
	return s
}

func TestBookingValidator_StatusEnum(t *testing.T) {
	props := schema(t, BookingValidator)["properties"].(bson.M)
	enum := props["status"].(bson.M)["enum"].([]string)

	for _, s := range model.BookingStatuses() {
		if !slices.Contains(enum, s.String()) {
			t.Errorf("status enum missing %q", s)
		}
	}
	if len(enum) != len(model.BookingStatuses()) {
		t.Errorf("status enum = %v, want exactly %v", enum, model.BookingStatuses())
	}
}

func TestBookingValidator_Required(t *testing.T) {
	required := schema(t, BookingValidator)["required"].([]string)
	for _, field := range []string{"name", "phone", "preferred_date", "preferred_time", "event_type", "status", "created_at"} {
		if !slices.Contains(required, field) {
			t.Errorf("required missing %q", field)
		}
	}
}

func TestReelValidator_Required(t *testing.T) {
	required := schema(t, ReelValidator)["required"].([]string)
	if !slices.Contains(required, "url") {
		t.Error("url must be required")
	}
}
