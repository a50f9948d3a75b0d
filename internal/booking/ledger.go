// internal/booking/ledger.go

// Package booking implements the reservation ledger: validated creation with
// overlap rejection, listings by date and range, updates and deletes.
package booking

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sgchoi-dev/facilitybook/internal/db"
)

const (
	// DefaultDetail marks reservations that name no sub-unit of a facility.
	// Two reservations without a detail compete for the same bookable unit.
	DefaultDetail = "-"

	// DefaultPhone marks reservations created without a contact number.
	DefaultPhone = "not provided"
)

type CreateInput struct {
	Name      string
	Phone     string
	Age       *int64
	Gender    *string
	Facility  string
	Detail    string
	Date      string
	StartTime string
	EndTime   string
	Purpose   *string
}

type UpdateInput struct {
	Name      string
	Phone     string
	Facility  string
	Date      string
	StartTime string
	EndTime   string
	Purpose   *string
}

// Ledger owns reservation reads and writes against an explicitly provided
// store. The store handle is opened at process start and closed at shutdown
// by the caller.
type Ledger struct {
	store *db.DB
	now   func() time.Time
}

func NewLedger(store *db.DB) *Ledger {
	return &Ledger{
		store: store,
		now:   time.Now,
	}
}

// Create validates the input, applies the detail and phone defaults, and
// inserts the reservation. The overlap check and the insert run in a single
// transaction so two concurrent creates for the same slot cannot both land.
func (l *Ledger) Create(ctx context.Context, in CreateInput) (db.Reservation, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Facility = strings.TrimSpace(in.Facility)
	in.Detail = strings.TrimSpace(in.Detail)

	if err := validateCreate(in, l.now()); err != nil {
		return db.Reservation{}, err
	}

	if in.Detail == "" {
		in.Detail = DefaultDetail
	}
	phone := normalizePhone(in.Phone)

	var created db.Reservation
	err := l.store.RunInTx(ctx, func(txdb *db.DB) error {
		overlapping, err := txdb.Queries.CountOverlappingReservations(ctx, db.CountOverlappingReservationsParams{
			Facility:  in.Facility,
			Detail:    in.Detail,
			Date:      in.Date,
			EndTime:   in.EndTime,
			StartTime: in.StartTime,
		})
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrConflict
		}

		created, err = txdb.Queries.CreateReservation(ctx, db.CreateReservationParams{
			Name:      in.Name,
			Phone:     phone,
			Age:       in.Age,
			Gender:    in.Gender,
			Facility:  in.Facility,
			Detail:    in.Detail,
			Date:      in.Date,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Purpose:   in.Purpose,
		})
		return err
	})
	if err != nil {
		return db.Reservation{}, err
	}

	log.Ctx(ctx).Info().
		Int64("reservation_id", created.ID).
		Str("facility", created.Facility).
		Str("date", created.Date).
		Msg("Reservation created")
	return created, nil
}

// ListAll returns every reservation, newest date first, mornings first
// within a date.
func (l *Ledger) ListAll(ctx context.Context) ([]db.Reservation, error) {
	return l.store.Queries.ListReservations(ctx)
}

// ListByDate returns the reservations on an exact date, ordered by start time.
func (l *Ledger) ListByDate(ctx context.Context, date string) ([]db.Reservation, error) {
	return l.store.Queries.ListReservationsByDate(ctx, date)
}

// ListByRange returns the reservations whose date falls inside the inclusive
// [startDate, endDate] window, ordered by date then start time.
func (l *Ledger) ListByRange(ctx context.Context, startDate, endDate string) ([]db.Reservation, error) {
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return nil, ErrMissingRangeBounds
	}
	return l.store.Queries.ListReservationsByDateRange(ctx, db.ListReservationsByDateRangeParams{
		StartDate: startDate,
		EndDate:   endDate,
	})
}

// Update overwrites the editable fields of an existing reservation. It does
// not re-run the create validation or the overlap check; an update can move
// a reservation onto an occupied slot. Known gap, kept to match the
// documented contract.
func (l *Ledger) Update(ctx context.Context, id int64, in UpdateInput) error {
	affected, err := l.store.Queries.UpdateReservation(ctx, db.UpdateReservationParams{
		ID:        id,
		Name:      in.Name,
		Phone:     in.Phone,
		Facility:  in.Facility,
		Date:      in.Date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Purpose:   in.Purpose,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	log.Ctx(ctx).Info().Int64("reservation_id", id).Msg("Reservation updated")
	return nil
}

// Delete removes a reservation by id.
func (l *Ledger) Delete(ctx context.Context, id int64) error {
	affected, err := l.store.Queries.DeleteReservation(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	log.Ctx(ctx).Info().Int64("reservation_id", id).Msg("Reservation deleted")
	return nil
}
