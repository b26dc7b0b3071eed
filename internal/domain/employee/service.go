package employee

import "context"

// EmployeeService defines employee lifecycle operations
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetByID(ctx context.Context, id string, companyID string) (EmployeeResponse, error)

	List(ctx context.Context, companyID string, departmentID *string) ([]EmployeeResponse, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	Delete(ctx context.Context, id string, companyID string) error
}
