package attendance

import (
	"context"
	"time"
)

// AttendanceRecordRepository defines data access for attendance records.
// The at-most-one-open-record invariant is backed by a partial unique index
// (employee_id WHERE check_out IS NULL); a concurrent second check-in fails
// there and surfaces as ErrOpenRecordExists.
type AttendanceRecordRepository interface {
	Create(ctx context.Context, record AttendanceRecord) (AttendanceRecord, error)

	GetByID(ctx context.Context, id string) (AttendanceRecord, error)

	// GetOpenRecord returns the employee's open session, or nil when the
	// employee is checked out.
	GetOpenRecord(ctx context.Context, employeeID string) (*AttendanceRecord, error)

	Update(ctx context.Context, record AttendanceRecord) error

	Delete(ctx context.Context, id string) error

	// GetByEmployeeIDAndPeriod returns records whose check-in falls inside
	// [start, end], ordered by check-in ascending.
	GetByEmployeeIDAndPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]AttendanceRecord, error)

	// GetLast30 returns the employee's 30 most recent records.
	GetLast30(ctx context.Context, employeeID string) ([]AttendanceRecord, error)
}
