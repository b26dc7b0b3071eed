package absence

import (
	"context"
	"time"
)

// AbsenceRecordRepository defines data access for absence periods. Range
// queries use closed-interval intersection (start_date <= $end AND
// end_date >= $start). A production schema additionally carries an exclusion
// constraint over (employee_id, daterange) as the concurrency safety net.
type AbsenceRecordRepository interface {
	Create(ctx context.Context, record AbsenceRecord) (AbsenceRecord, error)

	GetByID(ctx context.Context, id string) (AbsenceRecord, error)

	GetByEmployeeID(ctx context.Context, employeeID string) ([]AbsenceRecord, error)

	// GetByEmployeeIDAndRange returns records whose period intersects
	// [start, end].
	GetByEmployeeIDAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]AbsenceRecord, error)

	// GetOverlapping is GetByEmployeeIDAndRange with an optional record to
	// skip, used when re-validating an update against the record's own
	// persisted range.
	GetOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) ([]AbsenceRecord, error)

	Update(ctx context.Context, record AbsenceRecord) error

	Delete(ctx context.Context, id string) error
}
