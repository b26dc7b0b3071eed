package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/punchly/punchly-backend-go/internal/domain/department"
	"github.com/punchly/punchly-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, dep department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	dep.ID = uuid.NewString()
	query := `
		INSERT INTO departments (id, company_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, dep.ID, dep.CompanyID, dep.Name).Scan(&dep.CreatedAt, &dep.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "departments_company_id_name_key") {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, err
	}
	return dep, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM departments
		WHERE id = $1 AND company_id = $2
	`
	var dep department.Department
	err := q.QueryRow(ctx, query, id, companyID).Scan(&dep.ID, &dep.CompanyID, &dep.Name, &dep.CreatedAt, &dep.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}
	return dep, nil
}

// ListByCompany implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM departments
		WHERE company_id = $1
		ORDER BY name ASC
	`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dep department.Department
		if err := rows.Scan(&dep.ID, &dep.CompanyID, &dep.Name, &dep.CreatedAt, &dep.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, dep)
	}
	return departments, rows.Err()
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, dep department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`
	commandTag, err := q.Exec(ctx, query, dep.ID, dep.CompanyID, dep.Name)
	if err != nil {
		if isUniqueViolation(err, "departments_company_id_name_key") {
			return department.ErrDepartmentNameExists
		}
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM departments WHERE id = $1 AND company_id = $2`
	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
