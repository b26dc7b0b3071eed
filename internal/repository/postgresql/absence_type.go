package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/punchly/punchly-backend-go/internal/domain/absencetype"
	"github.com/punchly/punchly-backend-go/internal/pkg/database"
)

type absenceTypeRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceTypeRepository(db *database.DB) absencetype.AbsenceTypeRepository {
	return &absenceTypeRepositoryImpl{db: db}
}

// Create implements absencetype.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) Create(ctx context.Context, at absencetype.AbsenceType) (absencetype.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	at.ID = uuid.NewString()
	query := `
		INSERT INTO absence_types (id, company_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, at.ID, at.CompanyID, at.Name).Scan(&at.CreatedAt, &at.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "absence_types_company_id_name_key") {
			return absencetype.AbsenceType{}, absencetype.ErrAbsenceTypeNameExists
		}
		return absencetype.AbsenceType{}, err
	}
	return at, nil
}

// GetByID implements absencetype.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (absencetype.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM absence_types
		WHERE id = $1 AND company_id = $2
	`
	var at absencetype.AbsenceType
	err := q.QueryRow(ctx, query, id, companyID).Scan(&at.ID, &at.CompanyID, &at.Name, &at.CreatedAt, &at.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absencetype.AbsenceType{}, absencetype.ErrAbsenceTypeNotFound
		}
		return absencetype.AbsenceType{}, err
	}
	return at, nil
}

// ListByCompany implements absencetype.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]absencetype.AbsenceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM absence_types
		WHERE company_id = $1
		ORDER BY name ASC
	`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var absenceTypes []absencetype.AbsenceType
	for rows.Next() {
		var at absencetype.AbsenceType
		if err := rows.Scan(&at.ID, &at.CompanyID, &at.Name, &at.CreatedAt, &at.UpdatedAt); err != nil {
			return nil, err
		}
		absenceTypes = append(absenceTypes, at)
	}
	return absenceTypes, rows.Err()
}

// Update implements absencetype.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) Update(ctx context.Context, at absencetype.AbsenceType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_types
		SET name = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`
	commandTag, err := q.Exec(ctx, query, at.ID, at.CompanyID, at.Name)
	if err != nil {
		if isUniqueViolation(err, "absence_types_company_id_name_key") {
			return absencetype.ErrAbsenceTypeNameExists
		}
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return absencetype.ErrAbsenceTypeNotFound
	}
	return nil
}

// Delete implements absencetype.AbsenceTypeRepository.
func (r *absenceTypeRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM absence_types WHERE id = $1 AND company_id = $2`
	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return absencetype.ErrAbsenceTypeNotFound
	}
	return nil
}
