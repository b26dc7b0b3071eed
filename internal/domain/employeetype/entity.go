package employeetype

import "time"

// EmployeeType is a per-company classification (e.g. full-time, working
// student) used for report grouping; name is unique per company.
type EmployeeType struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
