package attendance

import (
	"time"

	"github.com/punchly/punchly-backend-go/internal/pkg/dateutil"
)

// AttendanceRecord is one work session. CheckOut == nil means the session is
// still open; at most one open record may exist per employee (enforced by a
// partial unique index on the storage side).
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	CheckIn    time.Time
	CheckOut   *time.Time
	// AutoClosed is true when the system closed the record because a new
	// check-in superseded it, rather than an explicit check-out.
	AutoClosed bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// Open reports whether the record represents an ongoing session.
func (r AttendanceRecord) Open() bool {
	return r.CheckOut == nil
}

// WorkedMinutes returns the whole minutes between check-in and check-out,
// or 0 while the record is still open.
func (r AttendanceRecord) WorkedMinutes() int {
	if r.CheckOut == nil {
		return 0
	}
	return dateutil.MinutesBetween(r.CheckIn, *r.CheckOut)
}
