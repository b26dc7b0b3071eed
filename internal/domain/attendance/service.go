package attendance

import "context"

// AttendanceService is the check-in/check-out state machine plus manual
// record corrections.
type AttendanceService interface {
	// CheckIn opens a new session for the employee. A still-open previous
	// session is auto-closed, never rejected.
	CheckIn(ctx context.Context, employeeID string) (AttendanceRecordResponse, error)

	// CheckOut closes the employee's open session.
	CheckOut(ctx context.Context, employeeID string) (AttendanceRecordResponse, error)

	// CreateRecord creates a closed record for historical corrections.
	// It never touches the employee's live checked-in state.
	CreateRecord(ctx context.Context, req CreateAttendanceRecordRequest) (AttendanceRecordResponse, error)

	// UpdateRecord applies a partial patch to an existing record.
	UpdateRecord(ctx context.Context, req UpdateAttendanceRecordRequest) (AttendanceRecordResponse, error)

	DeleteRecord(ctx context.Context, id string) error

	GetLast30(ctx context.Context, employeeID string) ([]AttendanceRecordResponse, error)

	GetByEmployeeIDAndPeriod(ctx context.Context, filter PeriodFilter) ([]AttendanceRecordResponse, error)
}
