// internal/db/reservations.go
package db

import "context"

const reservationColumns = `id, name, phone, age, gender, facility, detail, date, start_time, end_time, purpose, created_at`

const createReservation = `
INSERT INTO reservations (name, phone, age, gender, facility, detail, date, start_time, end_time, purpose)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + reservationColumns

type CreateReservationParams struct {
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

func (q *Queries) CreateReservation(ctx context.Context, arg CreateReservationParams) (Reservation, error) {
	row := q.db.QueryRowContext(ctx, createReservation,
		arg.Name, arg.Phone, arg.Age, arg.Gender, arg.Facility,
		arg.Detail, arg.Date, arg.StartTime, arg.EndTime, arg.Purpose)
	return scanReservation(row)
}

const getReservation = `
SELECT ` + reservationColumns + `
FROM reservations
WHERE id = ?
`

func (q *Queries) GetReservation(ctx context.Context, id int64) (Reservation, error) {
	row := q.db.QueryRowContext(ctx, getReservation, id)
	return scanReservation(row)
}

const listReservations = `
SELECT ` + reservationColumns + `
FROM reservations
ORDER BY date DESC, start_time ASC
`

func (q *Queries) ListReservations(ctx context.Context) ([]Reservation, error) {
	return q.queryReservations(ctx, listReservations)
}

const listReservationsByDate = `
SELECT ` + reservationColumns + `
FROM reservations
WHERE date = ?
ORDER BY start_time ASC
`

func (q *Queries) ListReservationsByDate(ctx context.Context, date string) ([]Reservation, error) {
	return q.queryReservations(ctx, listReservationsByDate, date)
}

const listReservationsByDateRange = `
SELECT ` + reservationColumns + `
FROM reservations
WHERE date >= ? AND date <= ?
ORDER BY date ASC, start_time ASC
`

type ListReservationsByDateRangeParams struct {
	StartDate string
	EndDate   string
}

func (q *Queries) ListReservationsByDateRange(ctx context.Context, arg ListReservationsByDateRangeParams) ([]Reservation, error) {
	return q.queryReservations(ctx, listReservationsByDateRange, arg.StartDate, arg.EndDate)
}

// Two [start, end) intervals overlap iff each starts before the other ends.
// HH:MM strings compare lexicographically in time order, so the comparison
// runs directly on the stored text.
const countOverlappingReservations = `
SELECT COUNT(*)
FROM reservations
WHERE facility = ? AND detail = ? AND date = ?
  AND start_time < ? AND end_time > ?
`

type CountOverlappingReservationsParams struct {
	Facility  string
	Detail    string
	Date      string
	EndTime   string
	StartTime string
}

func (q *Queries) CountOverlappingReservations(ctx context.Context, arg CountOverlappingReservationsParams) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countOverlappingReservations,
		arg.Facility, arg.Detail, arg.Date, arg.EndTime, arg.StartTime).Scan(&count)
	return count, err
}

const updateReservation = `
UPDATE reservations
SET name = ?, phone = ?, facility = ?, date = ?, start_time = ?, end_time = ?, purpose = ?
WHERE id = ?
`

type UpdateReservationParams struct {
	ID        int64
	Name      string
	Phone     string
	Facility  string
	Date      string
	StartTime string
	EndTime   string
	Purpose   *string
}

func (q *Queries) UpdateReservation(ctx context.Context, arg UpdateReservationParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, updateReservation,
		arg.Name, arg.Phone, arg.Facility, arg.Date, arg.StartTime, arg.EndTime, arg.Purpose, arg.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const deleteReservation = `
DELETE FROM reservations
WHERE id = ?
`

func (q *Queries) DeleteReservation(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteReservation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (q *Queries) queryReservations(ctx context.Context, query string, args ...any) ([]Reservation, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []Reservation
	for rows.Next() {
		var r Reservation
		if err := rows.Scan(
			&r.ID, &r.Name, &r.Phone, &r.Age, &r.Gender, &r.Facility,
			&r.Detail, &r.Date, &r.StartTime, &r.EndTime, &r.Purpose, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		reservations = append(reservations, r)
	}
	return reservations, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (Reservation, error) {
	var r Reservation
	err := row.Scan(
		&r.ID, &r.Name, &r.Phone, &r.Age, &r.Gender, &r.Facility,
		&r.Detail, &r.Date, &r.StartTime, &r.EndTime, &r.Purpose, &r.CreatedAt,
	)
	return r, err
}
