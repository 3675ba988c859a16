package mongo

import "testing"

func TestCollections(t *testing.T) {
	cols := Collections()
	if len(cols) != 2 || cols[0].Name != "Bookings" || cols[1].Name != "Reels" {
		t.Fatalf("Collections() = %+v", cols)
	}
	for _, c := range cols {
		if c.Validator == nil || len(c.Indexes) == 0 {
			t.Errorf("%s: validator and indexes are required", c.Name)
		}
	}
}
