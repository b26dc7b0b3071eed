package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dep Department) (Department, error)
	GetByID(ctx context.Context, id string, companyID string) (Department, error)
	ListByCompany(ctx context.Context, companyID string) ([]Department, error)
	Update(ctx context.Context, dep Department) error
	Delete(ctx context.Context, id string, companyID string) error
}
