package employee

import "time"

// Employee belongs to exactly one company, department and employee type.
// MonthlySalary and HourlySalary are mutually exclusive by business rule.
// CheckedIn caches "has an open attendance record" and is updated alongside
// attendance mutations. Employees are soft-deleted via DeletedAt.
type Employee struct {
	ID             string
	CompanyID      string
	DepartmentID   string
	EmployeeTypeID string
	Name           string
	Birthdate      time.Time
	Address        *string
	City           *string
	CheckedIn      bool
	MonthlySalary  *float64
	HourlySalary   *float64
	MonthlyHours   *float64
	DeletedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	DepartmentName   *string
	EmployeeTypeName *string
}
