package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/punchly/punchly-backend-go/internal/domain/absencetype"
	"github.com/punchly/punchly-backend-go/internal/domain/department"
	"github.com/punchly/punchly-backend-go/internal/domain/employeetype"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
)

// MasterService covers the per-company named entities: departments, employee
// types, absence types. Their only rule is name uniqueness per company, which
// the repositories surface as *NameExists errors from the unique constraint.
type MasterService struct {
	departmentRepo   department.DepartmentRepository
	employeeTypeRepo employeetype.EmployeeTypeRepository
	absenceTypeRepo  absencetype.AbsenceTypeRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	employeeTypeRepo employeetype.EmployeeTypeRepository,
	absenceTypeRepo absencetype.AbsenceTypeRepository,
) *MasterService {
	return &MasterService{
		departmentRepo:   departmentRepo,
		employeeTypeRepo: employeeTypeRepo,
		absenceTypeRepo:  absenceTypeRepo,
	}
}

func validateName(name string) error {
	if validator.IsEmpty(name) {
		return validator.ValidationErrors{{
			Field:   "name",
			Message: "name is required",
		}}
	}
	return nil
}

// ===== DEPARTMENTS =====

func (s *MasterService) CreateDepartment(ctx context.Context, companyID, name string) (department.Department, error) {
	if err := validateName(name); err != nil {
		return department.Department{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{CompanyID: companyID, Name: name})
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNameExists) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return created, nil
}

func (s *MasterService) ListDepartments(ctx context.Context, companyID string) ([]department.Department, error) {
	deps, err := s.departmentRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return deps, nil
}

func (s *MasterService) UpdateDepartment(ctx context.Context, id, companyID, name string) (department.Department, error) {
	if err := validateName(name); err != nil {
		return department.Department{}, err
	}

	dep, err := s.departmentRepo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	dep.Name = name
	if err := s.departmentRepo.Update(ctx, dep); err != nil {
		if errors.Is(err, department.ErrDepartmentNameExists) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}
	return dep, nil
}

func (s *MasterService) DeleteDepartment(ctx context.Context, id, companyID string) error {
	if err := s.departmentRepo.Delete(ctx, id, companyID); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.ErrDepartmentNotFound
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}

// ===== EMPLOYEE TYPES =====

func (s *MasterService) CreateEmployeeType(ctx context.Context, companyID, name string) (employeetype.EmployeeType, error) {
	if err := validateName(name); err != nil {
		return employeetype.EmployeeType{}, err
	}

	created, err := s.employeeTypeRepo.Create(ctx, employeetype.EmployeeType{CompanyID: companyID, Name: name})
	if err != nil {
		if errors.Is(err, employeetype.ErrEmployeeTypeNameExists) {
			return employeetype.EmployeeType{}, employeetype.ErrEmployeeTypeNameExists
		}
		return employeetype.EmployeeType{}, fmt.Errorf("failed to create employee type: %w", err)
	}
	return created, nil
}

func (s *MasterService) ListEmployeeTypes(ctx context.Context, companyID string) ([]employeetype.EmployeeType, error) {
	types, err := s.employeeTypeRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee types: %w", err)
	}
	return types, nil
}

func (s *MasterService) UpdateEmployeeType(ctx context.Context, id, companyID, name string) (employeetype.EmployeeType, error) {
	if err := validateName(name); err != nil {
		return employeetype.EmployeeType{}, err
	}

	et, err := s.employeeTypeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, employeetype.ErrEmployeeTypeNotFound) {
			return employeetype.EmployeeType{}, employeetype.ErrEmployeeTypeNotFound
		}
		return employeetype.EmployeeType{}, fmt.Errorf("failed to get employee type: %w", err)
	}

	et.Name = name
	if err := s.employeeTypeRepo.Update(ctx, et); err != nil {
		if errors.Is(err, employeetype.ErrEmployeeTypeNameExists) {
			return employeetype.EmployeeType{}, employeetype.ErrEmployeeTypeNameExists
		}
		return employeetype.EmployeeType{}, fmt.Errorf("failed to update employee type: %w", err)
	}
	return et, nil
}

func (s *MasterService) DeleteEmployeeType(ctx context.Context, id, companyID string) error {
	if err := s.employeeTypeRepo.Delete(ctx, id, companyID); err != nil {
		if errors.Is(err, employeetype.ErrEmployeeTypeNotFound) {
			return employeetype.ErrEmployeeTypeNotFound
		}
		return fmt.Errorf("failed to delete employee type: %w", err)
	}
	return nil
}

// ===== ABSENCE TYPES =====

func (s *MasterService) CreateAbsenceType(ctx context.Context, companyID, name string) (absencetype.AbsenceType, error) {
	if err := validateName(name); err != nil {
		return absencetype.AbsenceType{}, err
	}

	created, err := s.absenceTypeRepo.Create(ctx, absencetype.AbsenceType{CompanyID: companyID, Name: name})
	if err != nil {
		if errors.Is(err, absencetype.ErrAbsenceTypeNameExists) {
			return absencetype.AbsenceType{}, absencetype.ErrAbsenceTypeNameExists
		}
		return absencetype.AbsenceType{}, fmt.Errorf("failed to create absence type: %w", err)
	}
	return created, nil
}

func (s *MasterService) ListAbsenceTypes(ctx context.Context, companyID string) ([]absencetype.AbsenceType, error) {
	types, err := s.absenceTypeRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence types: %w", err)
	}
	return types, nil
}

func (s *MasterService) UpdateAbsenceType(ctx context.Context, id, companyID, name string) (absencetype.AbsenceType, error) {
	if err := validateName(name); err != nil {
		return absencetype.AbsenceType{}, err
	}

	at, err := s.absenceTypeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, absencetype.ErrAbsenceTypeNotFound) {
			return absencetype.AbsenceType{}, absencetype.ErrAbsenceTypeNotFound
		}
		return absencetype.AbsenceType{}, fmt.Errorf("failed to get absence type: %w", err)
	}

	at.Name = name
	if err := s.absenceTypeRepo.Update(ctx, at); err != nil {
		if errors.Is(err, absencetype.ErrAbsenceTypeNameExists) {
			return absencetype.AbsenceType{}, absencetype.ErrAbsenceTypeNameExists
		}
		return absencetype.AbsenceType{}, fmt.Errorf("failed to update absence type: %w", err)
	}
	return at, nil
}

func (s *MasterService) DeleteAbsenceType(ctx context.Context, id, companyID string) error {
	if err := s.absenceTypeRepo.Delete(ctx, id, companyID); err != nil {
		if errors.Is(err, absencetype.ErrAbsenceTypeNotFound) {
			return absencetype.ErrAbsenceTypeNotFound
		}
		return fmt.Errorf("failed to delete absence type: %w", err)
	}
	return nil
}
