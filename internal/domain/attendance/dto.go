package attendance

import (
	"time"

	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
)

type CreateAttendanceRecordRequest struct {
	EmployeeID string `json:"employee_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`

	// Parsed during Validate
	CheckInTime  time.Time `json:"-"`
	CheckOutTime time.Time `json:"-"`
}

func (r *CreateAttendanceRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in is required",
		})
	} else if t, ok := validator.IsValidDateTime(r.CheckIn); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be an ISO8601 timestamp",
		})
	} else {
		r.CheckInTime = t.UTC()
	}

	// Manual creation is for historical corrections, so both ends are required
	if validator.IsEmpty(r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out is required",
		})
	} else if t, ok := validator.IsValidDateTime(r.CheckOut); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be an ISO8601 timestamp",
		})
	} else {
		r.CheckOutTime = t.UTC()
	}

	if !r.CheckInTime.IsZero() && !r.CheckOutTime.IsZero() && r.CheckOutTime.Before(r.CheckInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must not be before check_in",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRecordRequest struct {
	ID         string  `json:"-"`
	EmployeeID *string `json:"employee_id"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`

	CheckInTime  *time.Time `json:"-"`
	CheckOutTime *time.Time `json:"-"`
}

func (r *UpdateAttendanceRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.CheckIn != nil {
		if t, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an ISO8601 timestamp",
			})
		} else {
			utc := t.UTC()
			r.CheckInTime = &utc
		}
	}

	if r.CheckOut != nil {
		if t, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an ISO8601 timestamp",
			})
		} else {
			utc := t.UTC()
			r.CheckOutTime = &utc
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodFilter struct {
	EmployeeID string `json:"employee_id"`
	Start      string `json:"start"`
	End        string `json:"end"`

	StartTime time.Time `json:"-"`
	EndTime   time.Time `json:"-"`
}

func (f *PeriodFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if t, ok := validator.IsValidDateTime(f.Start); ok {
		f.StartTime = t.UTC()
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be an ISO8601 timestamp",
		})
	}

	if t, ok := validator.IsValidDateTime(f.End); ok {
		f.EndTime = t.UTC()
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be an ISO8601 timestamp",
		})
	}

	if !f.StartTime.IsZero() && !f.EndTime.IsZero() && f.EndTime.Before(f.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must not be before start",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceRecordResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	CheckIn       string  `json:"check_in"`
	CheckOut      *string `json:"check_out"`
	AutoClosed    bool    `json:"auto_closed"`
	// WorkedMinutes is 0 while the record is still open.
	WorkedMinutes int `json:"worked_minutes"`
}
