package absencetype

import "time"

// AbsenceType is a company-definable absence reason (vacation, sick, home
// day, public holiday); name is unique per company.
type AbsenceType struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
