package employeetype

import "context"

type EmployeeTypeRepository interface {
	Create(ctx context.Context, et EmployeeType) (EmployeeType, error)
	GetByID(ctx context.Context, id string, companyID string) (EmployeeType, error)
	ListByCompany(ctx context.Context, companyID string) ([]EmployeeType, error)
	Update(ctx context.Context, et EmployeeType) error
	Delete(ctx context.Context, id string, companyID string) error
}
