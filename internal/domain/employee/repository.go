package employee

import "context"

// EmployeeRepository defines data access for employees. All reads exclude
// soft-deleted rows; methods with a companyID parameter enforce tenant
// isolation.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	List(ctx context.Context, companyID string, departmentID *string) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error

	// SetCheckedIn toggles the cached live-state flag; used by the
	// attendance state machine alongside record mutations.
	SetCheckedIn(ctx context.Context, id string, checkedIn bool) error

	// SoftDelete sets deleted_at; employees are never hard-deleted.
	SoftDelete(ctx context.Context, id string, companyID string) error
}
