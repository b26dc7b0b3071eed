package attendance

import "errors"

// Attendance domain errors
var (
	// State machine errors
	ErrNotCheckedIn     = errors.New("no open attendance record to check out")
	ErrAbsenceConflict  = errors.New("employee has an absence on that date")
	ErrOpenRecordExists = errors.New("an open attendance record already exists for this employee")

	// General errors
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrEmployeeImmutable = errors.New("employee of an attendance record cannot be changed")
)
