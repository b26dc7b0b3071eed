package absence

import (
	"time"

	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
)

type CreateAbsenceRequest struct {
	EmployeeID    string `json:"employee_id"`
	AbsenceTypeID string `json:"absence_type_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`

	// Parsed during Validate
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.AbsenceTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "absence_type_id",
			Message: "absence_type_id is required",
		})
	}

	if t, ok := validator.IsValidDate(r.StartDate); ok {
		r.Start = t
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if t, ok := validator.IsValidDate(r.EndDate); ok {
		r.End = t
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	// Same-day absences are valid, so only strict reversal is rejected
	if !r.Start.IsZero() && !r.End.IsZero() && r.End.Before(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAbsenceRequest struct {
	ID            string  `json:"-"`
	EmployeeID    *string `json:"employee_id"`
	AbsenceTypeID *string `json:"absence_type_id"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`

	Start *time.Time `json:"-"`
	End   *time.Time `json:"-"`
}

func (r *UpdateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.StartDate != nil {
		if t, ok := validator.IsValidDate(*r.StartDate); ok {
			r.Start = &t
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.EndDate != nil {
		if t, ok := validator.IsValidDate(*r.EndDate); ok {
			r.End = &t
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RangeFilter struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if t, ok := validator.IsValidDate(f.StartDate); ok {
		f.Start = t
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if t, ok := validator.IsValidDate(f.EndDate); ok {
		f.End = t
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsenceResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	AbsenceTypeID   string  `json:"absence_type_id"`
	AbsenceTypeName *string `json:"absence_type_name,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
}
