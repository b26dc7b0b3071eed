package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/punchly/punchly-backend-go/internal/domain/employee"
	"github.com/punchly/punchly-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.company_id, e.department_id, e.employee_type_id, e.name, e.birthdate,
	e.address, e.city, e.checked_in, e.monthly_salary, e.hourly_salary, e.monthly_hours,
	e.deleted_at, e.created_at, e.updated_at, d.name, et.name
`

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp.ID = uuid.NewString()
	query := `
		INSERT INTO employees (
			id, company_id, department_id, employee_type_id, name, birthdate,
			address, city, checked_in, monthly_salary, hourly_salary, monthly_hours,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		emp.ID, emp.CompanyID, emp.DepartmentID, emp.EmployeeTypeID, emp.Name, emp.Birthdate,
		emp.Address, emp.City, emp.MonthlySalary, emp.HourlySalary, emp.MonthlyHours,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		INNER JOIN departments d ON e.department_id = d.id
		INNER JOIN employee_types et ON e.employee_type_id = et.id
		WHERE e.id = $1 AND e.company_id = $2 AND e.deleted_at IS NULL
	`
	var emp employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&emp.ID, &emp.CompanyID, &emp.DepartmentID, &emp.EmployeeTypeID, &emp.Name, &emp.Birthdate,
		&emp.Address, &emp.City, &emp.CheckedIn, &emp.MonthlySalary, &emp.HourlySalary, &emp.MonthlyHours,
		&emp.DeletedAt, &emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName, &emp.EmployeeTypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, companyID string, departmentID *string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		INNER JOIN departments d ON e.department_id = d.id
		INNER JOIN employee_types et ON e.employee_type_id = et.id
		WHERE e.company_id = $1 AND e.deleted_at IS NULL
		  AND ($2::text IS NULL OR e.department_id = $2)
		ORDER BY e.name ASC
	`
	rows, err := q.Query(ctx, query, companyID, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.CompanyID, &emp.DepartmentID, &emp.EmployeeTypeID, &emp.Name, &emp.Birthdate,
			&emp.Address, &emp.City, &emp.CheckedIn, &emp.MonthlySalary, &emp.HourlySalary, &emp.MonthlyHours,
			&emp.DeletedAt, &emp.CreatedAt, &emp.UpdatedAt, &emp.DepartmentName, &emp.EmployeeTypeName,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET department_id = $2, employee_type_id = $3, name = $4, address = $5, city = $6,
		    monthly_salary = $7, hourly_salary = $8, monthly_hours = $9, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	commandTag, err := q.Exec(ctx, query,
		emp.ID, emp.DepartmentID, emp.EmployeeTypeID, emp.Name, emp.Address, emp.City,
		emp.MonthlySalary, emp.HourlySalary, emp.MonthlyHours,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetCheckedIn implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SetCheckedIn(ctx context.Context, id string, checkedIn bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET checked_in = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	commandTag, err := q.Exec(ctx, query, id, checkedIn)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`
	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
