package employee

import (
	"time"

	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
)

// MinimumAge is the youngest an employee may be at creation time.
const MinimumAge = 13

type CreateEmployeeRequest struct {
	CompanyID      string   `json:"-"`
	DepartmentID   string   `json:"department_id"`
	EmployeeTypeID string   `json:"employee_type_id"`
	Name           string   `json:"name"`
	Birthdate      string   `json:"birthdate"`
	Address        *string  `json:"address"`
	City           *string  `json:"city"`
	MonthlySalary  *float64 `json:"monthly_salary"`
	HourlySalary   *float64 `json:"hourly_salary"`
	MonthlyHours   *float64 `json:"monthly_hours"`

	// Parsed during Validate
	BirthdateTime time.Time `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_type_id",
			Message: "employee_type_id is required",
		})
	}

	if t, ok := validator.IsValidDate(r.Birthdate); ok {
		r.BirthdateTime = t
		if tooYoung(t, time.Now().UTC()) {
			errs = append(errs, validator.ValidationError{
				Field:   "birthdate",
				Message: "employee must be over 13",
			})
		}
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "birthdate",
			Message: "birthdate must be in YYYY-MM-DD format",
		})
	}

	if r.MonthlySalary != nil && r.HourlySalary != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary and hourly_salary are mutually exclusive",
		})
	}
	if r.MonthlySalary != nil && *r.MonthlySalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary must not be negative",
		})
	}
	if r.HourlySalary != nil && *r.HourlySalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_salary",
			Message: "hourly_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// tooYoung reports whether someone born on birthdate has not yet turned
// MinimumAge on the given day. Turning 13 exactly today is old enough.
func tooYoung(birthdate, today time.Time) bool {
	cutoff := time.Date(today.Year()-MinimumAge, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(birthdate.Year(), birthdate.Month(), birthdate.Day(), 0, 0, 0, 0, time.UTC)
	return b.After(cutoff)
}

type UpdateEmployeeRequest struct {
	ID             string   `json:"-"`
	CompanyID      string   `json:"-"`
	DepartmentID   *string  `json:"department_id"`
	EmployeeTypeID *string  `json:"employee_type_id"`
	Name           *string  `json:"name"`
	Address        *string  `json:"address"`
	City           *string  `json:"city"`
	MonthlySalary  *float64 `json:"monthly_salary"`
	HourlySalary   *float64 `json:"hourly_salary"`
	MonthlyHours   *float64 `json:"monthly_hours"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.MonthlySalary != nil && r.HourlySalary != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary and hourly_salary are mutually exclusive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string   `json:"id"`
	CompanyID        string   `json:"company_id"`
	DepartmentID     string   `json:"department_id"`
	DepartmentName   *string  `json:"department_name,omitempty"`
	EmployeeTypeID   string   `json:"employee_type_id"`
	EmployeeTypeName *string  `json:"employee_type_name,omitempty"`
	Name             string   `json:"name"`
	Birthdate        string   `json:"birthdate"`
	Address          *string  `json:"address"`
	City             *string  `json:"city"`
	CheckedIn        bool     `json:"checked_in"`
	MonthlySalary    *float64 `json:"monthly_salary"`
	HourlySalary     *float64 `json:"hourly_salary"`
	MonthlyHours     *float64 `json:"monthly_hours"`
}
