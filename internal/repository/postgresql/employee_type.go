package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/punchly/punchly-backend-go/internal/domain/employeetype"
	"github.com/punchly/punchly-backend-go/internal/pkg/database"
)

type employeeTypeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeTypeRepository(db *database.DB) employeetype.EmployeeTypeRepository {
	return &employeeTypeRepositoryImpl{db: db}
}

// Create implements employeetype.EmployeeTypeRepository.
func (r *employeeTypeRepositoryImpl) Create(ctx context.Context, et employeetype.EmployeeType) (employeetype.EmployeeType, error) {
	q := GetQuerier(ctx, r.db)

	et.ID = uuid.NewString()
	query := `
		INSERT INTO employee_types (id, company_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, et.ID, et.CompanyID, et.Name).Scan(&et.CreatedAt, &et.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "employee_types_company_id_name_key") {
			return employeetype.EmployeeType{}, employeetype.ErrEmployeeTypeNameExists
		}
		return employeetype.EmployeeType{}, err
	}
	return et, nil
}

// GetByID implements employeetype.EmployeeTypeRepository.
func (r *employeeTypeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employeetype.EmployeeType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM employee_types
		WHERE id = $1 AND company_id = $2
	`
	var et employeetype.EmployeeType
	err := q.QueryRow(ctx, query, id, companyID).Scan(&et.ID, &et.CompanyID, &et.Name, &et.CreatedAt, &et.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employeetype.EmployeeType{}, employeetype.ErrEmployeeTypeNotFound
		}
		return employeetype.EmployeeType{}, err
	}
	return et, nil
}

// ListByCompany implements employeetype.EmployeeTypeRepository.
func (r *employeeTypeRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]employeetype.EmployeeType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM employee_types
		WHERE company_id = $1
		ORDER BY name ASC
	`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employeeTypes []employeetype.EmployeeType
	for rows.Next() {
		var et employeetype.EmployeeType
		if err := rows.Scan(&et.ID, &et.CompanyID, &et.Name, &et.CreatedAt, &et.UpdatedAt); err != nil {
			return nil, err
		}
		employeeTypes = append(employeeTypes, et)
	}
	return employeeTypes, rows.Err()
}

// Update implements employeetype.EmployeeTypeRepository.
func (r *employeeTypeRepositoryImpl) Update(ctx context.Context, et employeetype.EmployeeType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employee_types
		SET name = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`
	commandTag, err := q.Exec(ctx, query, et.ID, et.CompanyID, et.Name)
	if err != nil {
		if isUniqueViolation(err, "employee_types_company_id_name_key") {
			return employeetype.ErrEmployeeTypeNameExists
		}
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employeetype.ErrEmployeeTypeNotFound
	}
	return nil
}

// Delete implements employeetype.EmployeeTypeRepository.
func (r *employeeTypeRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employee_types WHERE id = $1 AND company_id = $2`
	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employeetype.ErrEmployeeTypeNotFound
	}
	return nil
}
