package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/punchly/punchly-backend-go/internal/domain/company"
	"github.com/punchly/punchly-backend-go/internal/domain/department"
	"github.com/punchly/punchly-backend-go/internal/domain/employee"
	"github.com/punchly/punchly-backend-go/internal/domain/employeetype"
)

type EmployeeServiceImpl struct {
	employeeRepo     employee.EmployeeRepository
	companyRepo      company.CompanyRepository
	departmentRepo   department.DepartmentRepository
	employeeTypeRepo employeetype.EmployeeTypeRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	departmentRepo department.DepartmentRepository,
	employeeTypeRepo employeetype.EmployeeTypeRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:     employeeRepo,
		companyRepo:      companyRepo,
		departmentRepo:   departmentRepo,
		employeeTypeRepo: employeeTypeRepo,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// References must exist inside the same company
	if _, err := s.companyRepo.GetByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return employee.EmployeeResponse{}, company.ErrCompanyNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get company: %w", err)
	}
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID, req.CompanyID); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return employee.EmployeeResponse{}, department.ErrDepartmentNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get department: %w", err)
	}
	if _, err := s.employeeTypeRepo.GetByID(ctx, req.EmployeeTypeID, req.CompanyID); err != nil {
		if errors.Is(err, employeetype.ErrEmployeeTypeNotFound) {
			return employee.EmployeeResponse{}, employeetype.ErrEmployeeTypeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee type: %w", err)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		CompanyID:      req.CompanyID,
		DepartmentID:   req.DepartmentID,
		EmployeeTypeID: req.EmployeeTypeID,
		Name:           req.Name,
		Birthdate:      req.BirthdateTime,
		Address:        req.Address,
		City:           req.City,
		MonthlySalary:  req.MonthlySalary,
		HourlySalary:   req.HourlySalary,
		MonthlyHours:   req.MonthlyHours,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string, companyID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id, companyID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, companyID string, departmentID *string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, companyID, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID, req.CompanyID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID, req.CompanyID); err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return employee.EmployeeResponse{}, department.ErrDepartmentNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to get department: %w", err)
		}
		emp.DepartmentID = *req.DepartmentID
	}
	if req.EmployeeTypeID != nil {
		if _, err := s.employeeTypeRepo.GetByID(ctx, *req.EmployeeTypeID, req.CompanyID); err != nil {
			if errors.Is(err, employeetype.ErrEmployeeTypeNotFound) {
				return employee.EmployeeResponse{}, employeetype.ErrEmployeeTypeNotFound
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee type: %w", err)
		}
		emp.EmployeeTypeID = *req.EmployeeTypeID
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.City != nil {
		emp.City = req.City
	}
	if req.MonthlySalary != nil {
		emp.MonthlySalary = req.MonthlySalary
		emp.HourlySalary = nil
	}
	if req.HourlySalary != nil {
		emp.HourlySalary = req.HourlySalary
		emp.MonthlySalary = nil
	}
	if req.MonthlyHours != nil {
		emp.MonthlyHours = req.MonthlyHours
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string, companyID string) error {
	if err := s.employeeRepo.SoftDelete(ctx, id, companyID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		CompanyID:        emp.CompanyID,
		DepartmentID:     emp.DepartmentID,
		DepartmentName:   emp.DepartmentName,
		EmployeeTypeID:   emp.EmployeeTypeID,
		EmployeeTypeName: emp.EmployeeTypeName,
		Name:             emp.Name,
		Birthdate:        emp.Birthdate.Format("2006-01-02"),
		Address:          emp.Address,
		City:             emp.City,
		CheckedIn:        emp.CheckedIn,
		MonthlySalary:    emp.MonthlySalary,
		HourlySalary:     emp.HourlySalary,
		MonthlyHours:     emp.MonthlyHours,
	}
}
