package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sgchoi-dev/facilitybook/internal/testutil"
)

// Fixed clock well before the test dates so no input trips the past-date check.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()

	ledger := NewLedger(testutil.NewTestDB(t))
	ledger.now = func() time.Time { return testToday }
	return ledger
}

func baseInput() CreateInput {
	return CreateInput{
		Name:      "Jamie Park",
		Facility:  "Gymnasium",
		Date:      "2025-06-02",
		StartTime: "09:00",
		EndTime:   "10:00",
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	created, err := ledger.Create(ctx, baseInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected assigned id")
	}
	if created.Detail != DefaultDetail {
		t.Errorf("detail = %q, want %q", created.Detail, DefaultDetail)
	}
	if created.Phone != DefaultPhone {
		t.Errorf("phone = %q, want %q", created.Phone, DefaultPhone)
	}
	if created.Facility != "Gymnasium" || created.Date != "2025-06-02" {
		t.Errorf("unexpected persisted fields: %+v", created)
	}
}

func TestCreateSequentialIDs(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	first, err := ledger.Create(ctx, baseInput())
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	second := baseInput()
	second.StartTime = "10:00"
	second.EndTime = "11:00"
	created, err := ledger.Create(ctx, second)
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	if created.ID != first.ID+1 {
		t.Errorf("id = %d, want %d", created.ID, first.ID+1)
	}
}

func TestCreateOverlap(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantErr    error
	}{
		{"contained", "09:15", "09:45", ErrConflict},
		{"straddles start", "08:30", "09:30", ErrConflict},
		{"straddles end", "09:30", "10:30", ErrConflict},
		{"covers", "08:00", "11:00", ErrConflict},
		{"identical", "09:00", "10:00", ErrConflict},
		{"touching before", "08:00", "09:00", nil},
		{"touching after", "10:00", "11:00", nil},
		{"clear before", "07:00", "08:00", nil},
		{"clear after", "11:00", "12:00", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := newTestLedger(t)
			ctx := context.Background()

			if _, err := ledger.Create(ctx, baseInput()); err != nil {
				t.Fatalf("seed reservation: %v", err)
			}

			in := baseInput()
			in.Name = "Riley Kim"
			in.StartTime = tt.start
			in.EndTime = tt.end

			_, err := ledger.Create(ctx, in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("create %s-%s: err = %v, want %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}

func TestCreateOverlapScope(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	if _, err := ledger.Create(ctx, baseInput()); err != nil {
		t.Fatalf("seed reservation: %v", err)
	}

	// Same slot on a different facility never conflicts.
	other := baseInput()
	other.Facility = "Music Room"
	if _, err := ledger.Create(ctx, other); err != nil {
		t.Errorf("different facility: %v", err)
	}

	// Same slot on a different date never conflicts.
	other = baseInput()
	other.Date = "2025-06-03"
	if _, err := ledger.Create(ctx, other); err != nil {
		t.Errorf("different date: %v", err)
	}

	// Explicit distinct details are independent bookable units.
	unitA := baseInput()
	unitA.Facility = "PlayStation Lounge"
	unitA.Detail = "Console 1"
	if _, err := ledger.Create(ctx, unitA); err != nil {
		t.Fatalf("detail unit A: %v", err)
	}

	unitB := unitA
	unitB.Detail = "Console 2"
	if _, err := ledger.Create(ctx, unitB); err != nil {
		t.Errorf("detail unit B: %v", err)
	}

	// Same explicit detail competes for the unit.
	if _, err := ledger.Create(ctx, unitA); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate detail unit: err = %v, want %v", err, ErrConflict)
	}
}

func TestListAllOrdering(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	seed := []struct{ date, start, end string }{
		{"2025-06-03", "10:00", "11:00"},
		{"2025-06-02", "13:00", "14:00"},
		{"2025-06-03", "08:00", "09:00"},
	}
	for _, s := range seed {
		in := baseInput()
		in.Date = s.date
		in.StartTime = s.start
		in.EndTime = s.end
		if _, err := ledger.Create(ctx, in); err != nil {
			t.Fatalf("seed %s %s: %v", s.date, s.start, err)
		}
	}

	all, err := ledger.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}

	// Date descending, start time ascending within a date.
	want := []struct{ date, start string }{
		{"2025-06-03", "08:00"},
		{"2025-06-03", "10:00"},
		{"2025-06-02", "13:00"},
	}
	for i, w := range want {
		if all[i].Date != w.date || all[i].StartTime != w.start {
			t.Errorf("all[%d] = %s %s, want %s %s", i, all[i].Date, all[i].StartTime, w.date, w.start)
		}
	}
}

func TestListByDate(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	for _, s := range []struct{ date, start, end string }{
		{"2025-06-02", "14:00", "15:00"},
		{"2025-06-02", "09:00", "10:00"},
		{"2025-06-03", "09:00", "10:00"},
	} {
		in := baseInput()
		in.Date = s.date
		in.StartTime = s.start
		in.EndTime = s.end
		if _, err := ledger.Create(ctx, in); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	matches, err := ledger.ListByDate(ctx, "2025-06-02")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("len = %d, want 2", len(matches))
	}
	if matches[0].StartTime != "09:00" || matches[1].StartTime != "14:00" {
		t.Errorf("unexpected order: %s, %s", matches[0].StartTime, matches[1].StartTime)
	}
}

func TestListByRange(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	for _, date := range []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-05"} {
		in := baseInput()
		in.Date = date
		if _, err := ledger.Create(ctx, in); err != nil {
			t.Fatalf("seed %s: %v", date, err)
		}
	}

	matches, err := ledger.ListByRange(ctx, "2025-06-01", "2025-06-03")
	if err != nil {
		t.Fatalf("list by range: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("len = %d, want 3", len(matches))
	}
	// Both bounds are inclusive, ascending by date.
	for i, want := range []string{"2025-06-01", "2025-06-02", "2025-06-03"} {
		if matches[i].Date != want {
			t.Errorf("matches[%d].Date = %s, want %s", i, matches[i].Date, want)
		}
	}
}

func TestListByRangeMissingBounds(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	if _, err := ledger.ListByRange(ctx, "", "2025-06-03"); !errors.Is(err, ErrMissingRangeBounds) {
		t.Errorf("missing start: err = %v, want %v", err, ErrMissingRangeBounds)
	}
	if _, err := ledger.ListByRange(ctx, "2025-06-01", ""); !errors.Is(err, ErrMissingRangeBounds) {
		t.Errorf("missing end: err = %v, want %v", err, ErrMissingRangeBounds)
	}
}

func TestUpdate(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	created, err := ledger.Create(ctx, baseInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	purpose := "club practice"
	err = ledger.Update(ctx, created.ID, UpdateInput{
		Name:      "Riley Kim",
		Phone:     "+12124567890",
		Facility:  "Music Room",
		Date:      "2025-06-04",
		StartTime: "18:00",
		EndTime:   "19:00",
		Purpose:   &purpose,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	updated, err := ledger.store.Queries.GetReservation(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if updated.Name != "Riley Kim" || updated.Facility != "Music Room" || updated.Date != "2025-06-04" {
		t.Errorf("unexpected updated row: %+v", updated)
	}
	if updated.Purpose == nil || *updated.Purpose != purpose {
		t.Errorf("purpose = %v, want %q", updated.Purpose, purpose)
	}
}

func TestUpdateNotFound(t *testing.T) {
	ledger := newTestLedger(t)

	err := ledger.Update(context.Background(), 999999, UpdateInput{
		Name: "Nobody", Phone: "-", Facility: "Gymnasium",
		Date: "2025-06-02", StartTime: "09:00", EndTime: "10:00",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want %v", err, ErrNotFound)
	}
}

func TestDelete(t *testing.T) {
	ledger := newTestLedger(t)
	ctx := context.Background()

	created, err := ledger.Create(ctx, baseInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := ledger.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := ledger.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteNotFound(t *testing.T) {
	ledger := newTestLedger(t)

	if err := ledger.Delete(context.Background(), 999999); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want %v", err, ErrNotFound)
	}
}
