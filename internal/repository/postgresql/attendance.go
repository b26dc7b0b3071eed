package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/punchly/punchly-backend-go/internal/domain/attendance"
	"github.com/punchly/punchly-backend-go/internal/pkg/database"
)

type attendanceRecordRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRecordRepository(db *database.DB) attendance.AttendanceRecordRepository {
	return &attendanceRecordRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRecordRepository. The partial unique
// index attendance_records_one_open_per_employee (employee_id WHERE check_out
// IS NULL) rejects a second concurrent open record.
func (r *attendanceRecordRepositoryImpl) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()
	query := `
		INSERT INTO attendance_records (id, employee_id, check_in, check_out, auto_closed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.CheckIn, record.CheckOut, record.AutoClosed,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "attendance_records_one_open_per_employee") {
			return attendance.AttendanceRecord{}, attendance.ErrOpenRecordExists
		}
		return attendance.AttendanceRecord{}, err
	}
	return record, nil
}

// GetByID implements attendance.AttendanceRecordRepository.
func (r *attendanceRecordRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.check_in, ar.check_out, ar.auto_closed, ar.created_at, ar.updated_at, e.name
		FROM attendance_records ar
		INNER JOIN employees e ON ar.employee_id = e.id
		WHERE ar.id = $1
	`
	var rec attendance.AttendanceRecord
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.CheckIn, &rec.CheckOut, &rec.AutoClosed,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceRecord{}, err
	}
	return rec, nil
}

// GetOpenRecord implements attendance.AttendanceRecordRepository.
func (r *attendanceRecordRepositoryImpl) GetOpenRecord(ctx context.Context, employeeID string) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, check_in, check_out, auto_closed, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND check_out IS NULL
	`
	var rec attendance.AttendanceRecord
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&rec.ID, &rec.EmployeeID, &rec.CheckIn, &rec.CheckOut, &rec.AutoClosed,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// Update implements attendance.AttendanceRecordRepository.
func (r *attendanceRecordRepositoryImpl) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_in = $2, check_out = $3, auto_closed = $4, updated_at = NOW()
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, record.ID, record.CheckIn, record.CheckOut, record.AutoClosed)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// Delete implements attendance.AttendanceRecordRepository.
func (r *attendanceRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// GetByEmployeeIDAndPeriod implements attendance.AttendanceRecordRepository.
func (r *attendanceRecordRepositoryImpl) GetByEmployeeIDAndPeriod(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, check_in, check_out, auto_closed, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND check_in >= $2 AND check_in <= $3
		ORDER BY check_in ASC
	`
	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendanceRecords(rows)
}

// GetLast30 implements attendance.AttendanceRecordRepository.
func (r *attendanceRecordRepositoryImpl) GetLast30(ctx context.Context, employeeID string) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, check_in, check_out, auto_closed, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		ORDER BY check_in DESC
		LIMIT 30
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttendanceRecords(rows)
}

func scanAttendanceRecords(rows pgx.Rows) ([]attendance.AttendanceRecord, error) {
	var records []attendance.AttendanceRecord
	for rows.Next() {
		var rec attendance.AttendanceRecord
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CheckIn, &rec.CheckOut, &rec.AutoClosed,
			&rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
