package department

import "time"

// Department is a per-company named entity; name is unique per company.
type Department struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
