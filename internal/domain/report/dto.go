package report

import (
	"time"

	"github.com/punchly/punchly-backend-go/internal/pkg/dateutil"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
)

type AttendanceReportRequest struct {
	CompanyID    string  `json:"-"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Timezone     string  `json:"timezone"`
	DepartmentID *string `json:"department_id"`

	// Parsed during Validate
	Start    time.Time      `json:"-"`
	End      time.Time      `json:"-"`
	Location *time.Location `json:"-"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if t, ok := validator.IsValidDate(r.StartDate); ok {
		r.Start = t
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if t, ok := validator.IsValidDate(r.EndDate); ok {
		// Inclusive end: cover the whole last day
		r.End = t.Add(24*time.Hour - time.Millisecond)
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone is required",
		})
	} else if !validator.IsValidTimezone(r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA timezone",
		})
	} else {
		r.Location, _ = time.LoadLocation(r.Timezone)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReportEmployee is the fully joined employee row the aggregation engine
// consumes: employee master data enriched with the attendance records whose
// check-in falls in range and the absences whose period intersects it.
type ReportEmployee struct {
	ID               string
	Name             string
	Birthdate        time.Time
	Address          *string
	City             *string
	DepartmentName   string
	EmployeeTypeName string
	MonthlySalary    *float64
	HourlySalary     *float64
	MonthlyHours     *float64

	Attendance []ReportAttendanceRecord
	Absences   []ReportAbsence
}

type ReportAttendanceRecord struct {
	CheckIn    time.Time
	CheckOut   *time.Time
	AutoClosed bool
}

// WorkedMinutes returns the whole minutes of the record, 0 while open.
func (r ReportAttendanceRecord) WorkedMinutes() int {
	if r.CheckOut == nil {
		return 0
	}
	return dateutil.MinutesBetween(r.CheckIn, *r.CheckOut)
}

type ReportAbsence struct {
	StartDate       time.Time
	EndDate         time.Time
	AbsenceTypeName string
}

// ReportFile is the rendered workbook artifact.
type ReportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}
