package company

import (
	"context"
	"errors"
	"fmt"

	"github.com/punchly/punchly-backend-go/internal/domain/absencetype"
	"github.com/punchly/punchly-backend-go/internal/domain/company"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
)

// defaultAbsenceTypes are seeded for every new company; companies can rename
// or remove them afterwards.
var defaultAbsenceTypes = []string{"Vacation", "Sick", "Home day", "Public holiday"}

type CompanyServiceImpl struct {
	companyRepo     company.CompanyRepository
	absenceTypeRepo absencetype.AbsenceTypeRepository
}

func NewCompanyService(companyRepo company.CompanyRepository, absenceTypeRepo absencetype.AbsenceTypeRepository) *CompanyServiceImpl {
	return &CompanyServiceImpl{
		companyRepo:     companyRepo,
		absenceTypeRepo: absenceTypeRepo,
	}
}

func (s *CompanyServiceImpl) Create(ctx context.Context, name string) (company.Company, error) {
	if validator.IsEmpty(name) {
		return company.Company{}, validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}

	created, err := s.companyRepo.Create(ctx, company.Company{Name: name})
	if err != nil {
		if errors.Is(err, company.ErrCompanyNameExists) {
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, fmt.Errorf("failed to create company: %w", err)
	}

	for _, typeName := range defaultAbsenceTypes {
		if _, err := s.absenceTypeRepo.Create(ctx, absencetype.AbsenceType{
			CompanyID: created.ID,
			Name:      typeName,
		}); err != nil {
			return company.Company{}, fmt.Errorf("failed to seed absence type %q: %w", typeName, err)
		}
	}

	return created, nil
}

func (s *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

func (s *CompanyServiceImpl) List(ctx context.Context) ([]company.Company, error) {
	companies, err := s.companyRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (s *CompanyServiceImpl) Update(ctx context.Context, id string, name string) (company.Company, error) {
	if validator.IsEmpty(name) {
		return company.Company{}, validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}

	c, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return company.Company{}, company.ErrCompanyNotFound
		}
		return company.Company{}, fmt.Errorf("failed to get company: %w", err)
	}

	c.Name = name
	if err := s.companyRepo.Update(ctx, c); err != nil {
		if errors.Is(err, company.ErrCompanyNameExists) {
			return company.Company{}, company.ErrCompanyNameExists
		}
		return company.Company{}, fmt.Errorf("failed to update company: %w", err)
	}
	return c, nil
}

func (s *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.companyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return company.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to delete company: %w", err)
	}
	return nil
}
