package postgresql

import (
	"context"
	"time"

	"github.com/punchly/punchly-backend-go/internal/domain/report"
	"github.com/punchly/punchly-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// GetEmployeesWithAttendanceAndAbsences implements report.ReportRepository.
// Three queries instead of one joined monster: employees first, then the
// attendance and absence rows for the whole batch, stitched together in
// memory by employee id.
func (r *reportRepositoryImpl) GetEmployeesWithAttendanceAndAbsences(ctx context.Context, companyID string, start, end time.Time, departmentID *string) ([]report.ReportEmployee, error) {
	q := GetQuerier(ctx, r.db)

	employeeQuery := `
		SELECT e.id, e.name, e.birthdate, e.address, e.city,
		       d.name, et.name, e.monthly_salary, e.hourly_salary, e.monthly_hours
		FROM employees e
		INNER JOIN departments d ON e.department_id = d.id
		INNER JOIN employee_types et ON e.employee_type_id = et.id
		WHERE e.company_id = $1 AND e.deleted_at IS NULL
		  AND ($2::text IS NULL OR e.department_id = $2)
		ORDER BY et.name ASC, e.name ASC
	`
	rows, err := q.Query(ctx, employeeQuery, companyID, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []report.ReportEmployee
	index := make(map[string]int)
	for rows.Next() {
		var emp report.ReportEmployee
		err := rows.Scan(
			&emp.ID, &emp.Name, &emp.Birthdate, &emp.Address, &emp.City,
			&emp.DepartmentName, &emp.EmployeeTypeName, &emp.MonthlySalary, &emp.HourlySalary, &emp.MonthlyHours,
		)
		if err != nil {
			return nil, err
		}
		index[emp.ID] = len(employees)
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return employees, nil
	}

	attendanceQuery := `
		SELECT ar.employee_id, ar.check_in, ar.check_out, ar.auto_closed
		FROM attendance_records ar
		INNER JOIN employees e ON ar.employee_id = e.id
		WHERE e.company_id = $1 AND e.deleted_at IS NULL
		  AND ($2::text IS NULL OR e.department_id = $2)
		  AND ar.check_in BETWEEN $3 AND $4
		ORDER BY ar.check_in ASC
	`
	attRows, err := q.Query(ctx, attendanceQuery, companyID, departmentID, start, end)
	if err != nil {
		return nil, err
	}
	defer attRows.Close()

	for attRows.Next() {
		var employeeID string
		var rec report.ReportAttendanceRecord
		if err := attRows.Scan(&employeeID, &rec.CheckIn, &rec.CheckOut, &rec.AutoClosed); err != nil {
			return nil, err
		}
		if i, ok := index[employeeID]; ok {
			employees[i].Attendance = append(employees[i].Attendance, rec)
		}
	}
	if err := attRows.Err(); err != nil {
		return nil, err
	}

	absenceQuery := `
		SELECT ab.employee_id, ab.start_date, ab.end_date, at.name
		FROM absence_records ab
		INNER JOIN absence_types at ON ab.absence_type_id = at.id
		INNER JOIN employees e ON ab.employee_id = e.id
		WHERE e.company_id = $1 AND e.deleted_at IS NULL
		  AND ($2::text IS NULL OR e.department_id = $2)
		  AND ab.start_date <= $4 AND ab.end_date >= $3
		ORDER BY ab.start_date ASC
	`
	absRows, err := q.Query(ctx, absenceQuery, companyID, departmentID, start, end)
	if err != nil {
		return nil, err
	}
	defer absRows.Close()

	for absRows.Next() {
		var employeeID string
		var abs report.ReportAbsence
		if err := absRows.Scan(&employeeID, &abs.StartDate, &abs.EndDate, &abs.AbsenceTypeName); err != nil {
			return nil, err
		}
		if i, ok := index[employeeID]; ok {
			employees[i].Absences = append(employees[i].Absences, abs)
		}
	}
	return employees, absRows.Err()
}
