// internal/db/facilities.go
package db

import "context"

const listFacilities = `
SELECT id, name, description, max_capacity, hourly_rate
FROM facilities
ORDER BY name
`

func (q *Queries) ListFacilities(ctx context.Context) ([]Facility, error) {
	rows, err := q.db.QueryContext(ctx, listFacilities)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facilities []Facility
	for rows.Next() {
		var f Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.MaxCapacity, &f.HourlyRate); err != nil {
			return nil, err
		}
		facilities = append(facilities, f)
	}
	return facilities, rows.Err()
}

const countFacilities = `
SELECT COUNT(*) FROM facilities
`

func (q *Queries) CountFacilities(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countFacilities).Scan(&count)
	return count, err
}

const createFacility = `
INSERT INTO facilities (name, description, max_capacity, hourly_rate)
VALUES (?, ?, ?, ?)
`

type CreateFacilityParams struct {
	Name        string
	Description string
	MaxCapacity int64
	HourlyRate  int64
}

func (q *Queries) CreateFacility(ctx context.Context, arg CreateFacilityParams) error {
	_, err := q.db.ExecContext(ctx, createFacility,
		arg.Name, arg.Description, arg.MaxCapacity, arg.HourlyRate)
	return err
}
