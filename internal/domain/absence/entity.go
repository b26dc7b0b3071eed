package absence

import "time"

// AbsenceRecord is a calendar-day-granularity unavailability period.
// StartDate and EndDate are inclusive UTC days; per employee, no two records
// may overlap (closed-interval semantics).
type AbsenceRecord struct {
	ID            string
	EmployeeID    string
	AbsenceTypeID string
	StartDate     time.Time
	EndDate       time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	AbsenceTypeName *string
}

// Covers reports whether the given UTC day falls inside the absence period.
func (a AbsenceRecord) Covers(day time.Time) bool {
	return !day.Before(a.StartDate) && !day.After(a.EndDate)
}
