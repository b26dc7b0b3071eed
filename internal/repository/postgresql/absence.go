package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/punchly/punchly-backend-go/internal/domain/absence"
	"github.com/punchly/punchly-backend-go/internal/pkg/database"
)

type absenceRecordRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRecordRepository(db *database.DB) absence.AbsenceRecordRepository {
	return &absenceRecordRepositoryImpl{db: db}
}

// Create implements absence.AbsenceRecordRepository. The exclusion constraint
// absence_records_no_overlap over (employee_id, daterange) catches the
// check-then-act race between two concurrent writers.
func (r *absenceRecordRepositoryImpl) Create(ctx context.Context, record absence.AbsenceRecord) (absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()
	query := `
		INSERT INTO absence_records (id, employee_id, absence_type_id, start_date, end_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.AbsenceTypeID, record.StartDate, record.EndDate,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "absence_records_no_overlap") {
			return absence.AbsenceRecord{}, absence.ErrOverlappingPeriod
		}
		return absence.AbsenceRecord{}, err
	}
	return record, nil
}

// GetByID implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) GetByID(ctx context.Context, id string) (absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ab.id, ab.employee_id, ab.absence_type_id, ab.start_date, ab.end_date, ab.created_at, ab.updated_at, at.name
		FROM absence_records ab
		INNER JOIN absence_types at ON ab.absence_type_id = at.id
		WHERE ab.id = $1
	`
	var rec absence.AbsenceRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.AbsenceTypeID, &rec.StartDate, &rec.EndDate,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.AbsenceTypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.AbsenceRecord{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceRecord{}, err
	}
	return rec, nil
}

// GetByEmployeeID implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ab.id, ab.employee_id, ab.absence_type_id, ab.start_date, ab.end_date, ab.created_at, ab.updated_at, at.name
		FROM absence_records ab
		INNER JOIN absence_types at ON ab.absence_type_id = at.id
		WHERE ab.employee_id = $1
		ORDER BY ab.start_date ASC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAbsenceRecords(rows)
}

// GetByEmployeeIDAndRange implements absence.AbsenceRecordRepository.
// Closed-interval intersection: a record overlaps [start, end] when its
// start_date <= end AND its end_date >= start.
func (r *absenceRecordRepositoryImpl) GetByEmployeeIDAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]absence.AbsenceRecord, error) {
	return r.GetOverlapping(ctx, employeeID, start, end, nil)
}

// GetOverlapping implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) GetOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) ([]absence.AbsenceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ab.id, ab.employee_id, ab.absence_type_id, ab.start_date, ab.end_date, ab.created_at, ab.updated_at, at.name
		FROM absence_records ab
		INNER JOIN absence_types at ON ab.absence_type_id = at.id
		WHERE ab.employee_id = $1
		  AND ab.start_date <= $3
		  AND ab.end_date >= $2
		  AND ($4::text IS NULL OR ab.id != $4)
		ORDER BY ab.start_date ASC
	`
	rows, err := q.Query(ctx, query, employeeID, start, end, excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAbsenceRecords(rows)
}

// Update implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) Update(ctx context.Context, record absence.AbsenceRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE absence_records
		SET absence_type_id = $2, start_date = $3, end_date = $4, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, record.ID, record.AbsenceTypeID, record.StartDate, record.EndDate)
	if err != nil {
		if isUniqueViolation(err, "absence_records_no_overlap") {
			return absence.ErrOverlappingPeriod
		}
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}

// Delete implements absence.AbsenceRecordRepository.
func (r *absenceRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM absence_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}

func scanAbsenceRecords(rows pgx.Rows) ([]absence.AbsenceRecord, error) {
	var records []absence.AbsenceRecord
	for rows.Next() {
		var rec absence.AbsenceRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.AbsenceTypeID, &rec.StartDate, &rec.EndDate,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.AbsenceTypeName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
