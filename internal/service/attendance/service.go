package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/punchly/punchly-backend-go/internal/domain/absence"
	"github.com/punchly/punchly-backend-go/internal/domain/attendance"
	"github.com/punchly/punchly-backend-go/internal/domain/employee"
	"github.com/punchly/punchly-backend-go/internal/pkg/dateutil"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
)

// AttendanceServiceImpl depends on the absence repository read-only; the
// absence engine never consults attendance in return. That asymmetry is
// intentional: absences are entered after the fact or in advance and must
// not be blocked by stray punches.
type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRecordRepository
	absenceRepo    absence.AbsenceRecordRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRecordRepository,
	absenceRepo absence.AbsenceRecordRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		absenceRepo:    absenceRepo,
		employeeRepo:   employeeRepo,
	}
}

// absentOn reports whether the employee has an absence covering the UTC
// calendar day of t.
func (s *AttendanceServiceImpl) absentOn(ctx context.Context, employeeID string, t time.Time) (bool, error) {
	dayStart, dayEnd := dateutil.DayBounds(t)
	absences, err := s.absenceRepo.GetByEmployeeIDAndRange(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return false, fmt.Errorf("failed to check absences: %w", err)
	}
	for _, a := range absences {
		if a.Covers(dayStart) {
			return true, nil
		}
	}
	return false, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, employeeID string) (attendance.AttendanceRecordResponse, error) {
	now := time.Now().UTC()

	absent, err := s.absentOn(ctx, employeeID, now)
	if err != nil {
		return attendance.AttendanceRecordResponse{}, err
	}
	if absent {
		return attendance.AttendanceRecordResponse{}, attendance.ErrAbsenceConflict
	}

	// A forgotten checkout never blocks a new check-in: the stale open
	// record is closed by the system and flagged.
	open, err := s.attendanceRepo.GetOpenRecord(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceRecordResponse{}, fmt.Errorf("failed to look up open record: %w", err)
	}
	if open != nil {
		open.CheckOut = &now
		open.AutoClosed = true
		if err := s.attendanceRepo.Update(ctx, *open); err != nil {
			return attendance.AttendanceRecordResponse{}, fmt.Errorf("failed to auto-close open record: %w", err)
		}
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: employeeID,
		CheckIn:    now,
	})
	if err != nil {
		return attendance.AttendanceRecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	if err := s.employeeRepo.SetCheckedIn(ctx, employeeID, true); err != nil {
		return attendance.AttendanceRecordResponse{}, fmt.Errorf("failed to update employee state: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, employeeID string) (attendance.AttendanceRecordResponse, error) {
	now := time.Now().UTC()

	absent, err := s.absentOn(ctx, employeeID, now)
	if err != nil {
		return attendance.AttendanceRecordResponse{}, err
	}
	if absent {
		return attendance.AttendanceRecordResponse{}, attendance.ErrAbsenceConflict
	}

	open, err := s.attendanceRepo.GetOpenRecord(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceRecordResponse{}, fmt.Errorf("failed to look up open record: %w", err)
	}
	if open == nil {
		return attendance.AttendanceRecordResponse{}, attendance.ErrNotCheckedIn
	}

	open.CheckOut = &now
	open.AutoClosed = false
	if err := s.attendanceRepo.Update(ctx, *open); err != nil {
		return attendance.AttendanceRecordResponse{}, fmt.Errorf("failed to close attendance record: %w", err)
	}

	if err := s.employeeRepo.SetCheckedIn(ctx, employeeID, false); err != nil {
		return attendance.AttendanceRecordResponse{}, fmt.Errorf("failed to update employee state: %w", err)
	}

	return mapRecordToResponse(*open), nil
}

// CreateRecord implements attendance.AttendanceService.
// Back-office path for historical corrections: both ends are required and the
// employee's live checked-in state stays untouched.
func (s *AttendanceServiceImpl) CreateRecord(ctx context.Context, req attendance.CreateAttendanceRecordRequest) (attendance.AttendanceRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceRecordResponse{}, err
	}

	absent, err := s.absentOn(ctx, req.EmployeeID, req.CheckInTime)
	if err != nil {
		return attendance.AttendanceRecordResponse{}, err
	}
	if absent {
		return attendance.AttendanceRecordResponse{}, attendance.ErrAbsenceConflict
	}

	checkOut := req.CheckOutTime
	created, err := s.attendanceRepo.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: req.EmployeeID,
		CheckIn:    req.CheckInTime,
		CheckOut:   &checkOut,
	})
	if err != nil {
		return attendance.AttendanceRecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// UpdateRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateAttendanceRecordRequest) (attendance.AttendanceRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceRecordResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.AttendanceRecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceRecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if req.EmployeeID != nil && *req.EmployeeID != existing.EmployeeID {
		return attendance.AttendanceRecordResponse{}, attendance.ErrEmployeeImmutable
	}

	if req.CheckInTime != nil {
		existing.CheckIn = *req.CheckInTime
	}
	if req.CheckOutTime != nil {
		existing.CheckOut = req.CheckOutTime
		// A manual edit confirms the checkout, clearing the system flag
		existing.AutoClosed = false
	}

	absent, err := s.absentOn(ctx, existing.EmployeeID, existing.CheckIn)
	if err != nil {
		return attendance.AttendanceRecordResponse{}, err
	}
	if !absent && !existing.Open() {
		absent, err = s.absentOn(ctx, existing.EmployeeID, *existing.CheckOut)
		if err != nil {
			return attendance.AttendanceRecordResponse{}, err
		}
	}
	if absent {
		return attendance.AttendanceRecordResponse{}, attendance.ErrAbsenceConflict
	}

	// A closed record cannot have zero or negative duration
	if !existing.Open() && !existing.CheckIn.Before(*existing.CheckOut) {
		return attendance.AttendanceRecordResponse{}, validator.ValidationErrors{{
			Field:   "check_out",
			Message: "check_out must be after check_in",
		}}
	}

	if err := s.attendanceRepo.Update(ctx, existing); err != nil {
		return attendance.AttendanceRecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapRecordToResponse(existing), nil
}

// DeleteRecord implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}

// GetLast30 implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetLast30(ctx context.Context, employeeID string) ([]attendance.AttendanceRecordResponse, error) {
	records, err := s.attendanceRepo.GetLast30(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records: %w", err)
	}
	return mapRecordsToResponses(records), nil
}

// GetByEmployeeIDAndPeriod implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByEmployeeIDAndPeriod(ctx context.Context, filter attendance.PeriodFilter) ([]attendance.AttendanceRecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.GetByEmployeeIDAndPeriod(ctx, filter.EmployeeID, filter.StartTime, filter.EndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance records: %w", err)
	}
	return mapRecordsToResponses(records), nil
}

func mapRecordToResponse(rec attendance.AttendanceRecord) attendance.AttendanceRecordResponse {
	var checkOut *string
	if !rec.Open() {
		formatted := rec.CheckOut.UTC().Format(time.RFC3339)
		checkOut = &formatted
	}

	return attendance.AttendanceRecordResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		CheckIn:       rec.CheckIn.UTC().Format(time.RFC3339),
		CheckOut:      checkOut,
		AutoClosed:    rec.AutoClosed,
		WorkedMinutes: rec.WorkedMinutes(),
	}
}

func mapRecordsToResponses(records []attendance.AttendanceRecord) []attendance.AttendanceRecordResponse {
	responses := make([]attendance.AttendanceRecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}
	return responses
}
