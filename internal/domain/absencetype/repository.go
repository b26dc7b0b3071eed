package absencetype

import "context"

type AbsenceTypeRepository interface {
	Create(ctx context.Context, at AbsenceType) (AbsenceType, error)
	GetByID(ctx context.Context, id string, companyID string) (AbsenceType, error)
	ListByCompany(ctx context.Context, companyID string) ([]AbsenceType, error)
	Update(ctx context.Context, at AbsenceType) error
	Delete(ctx context.Context, id string, companyID string) error
}
