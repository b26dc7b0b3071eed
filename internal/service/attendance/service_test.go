package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/punchly/punchly-backend-go/internal/domain/absence"
	"github.com/punchly/punchly-backend-go/internal/domain/attendance"
	"github.com/punchly/punchly-backend-go/internal/domain/employee"
	"github.com/punchly/punchly-backend-go/internal/pkg/dateutil"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.AttendanceRecord
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.AttendanceRecord)}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	f.nextID++
	record.ID = fmt.Sprintf("rec-%d", f.nextID)
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.AttendanceRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeAttendanceRepo) GetOpenRecord(_ context.Context, employeeID string) (*attendance.AttendanceRecord, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.CheckOut == nil {
			r := rec
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, record attendance.AttendanceRecord) error {
	if _, ok := f.records[record.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeAttendanceRepo) GetByEmployeeIDAndPeriod(_ context.Context, employeeID string, start, end time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && !rec.CheckIn.Before(start) && !rec.CheckIn.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetLast30(_ context.Context, employeeID string) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeAbsenceReadRepo struct {
	absences []absence.AbsenceRecord
}

func (f *fakeAbsenceReadRepo) Create(_ context.Context, record absence.AbsenceRecord) (absence.AbsenceRecord, error) {
	f.absences = append(f.absences, record)
	return record, nil
}

func (f *fakeAbsenceReadRepo) GetByID(_ context.Context, id string) (absence.AbsenceRecord, error) {
	for _, rec := range f.absences {
		if rec.ID == id {
			return rec, nil
		}
	}
	return absence.AbsenceRecord{}, absence.ErrAbsenceNotFound
}

func (f *fakeAbsenceReadRepo) GetByEmployeeID(_ context.Context, employeeID string) ([]absence.AbsenceRecord, error) {
	var out []absence.AbsenceRecord
	for _, rec := range f.absences {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAbsenceReadRepo) GetByEmployeeIDAndRange(_ context.Context, employeeID string, start, end time.Time) ([]absence.AbsenceRecord, error) {
	return f.GetOverlapping(context.Background(), employeeID, start, end, nil)
}

func (f *fakeAbsenceReadRepo) GetOverlapping(_ context.Context, employeeID string, start, end time.Time, excludeID *string) ([]absence.AbsenceRecord, error) {
	var out []absence.AbsenceRecord
	for _, rec := range f.absences {
		if rec.EmployeeID != employeeID {
			continue
		}
		if excludeID != nil && rec.ID == *excludeID {
			continue
		}
		if dateutil.Overlaps(rec.StartDate, rec.EndDate, start, end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAbsenceReadRepo) Update(_ context.Context, record absence.AbsenceRecord) error {
	for i, rec := range f.absences {
		if rec.ID == record.ID {
			f.absences[i] = record
			return nil
		}
	}
	return absence.ErrAbsenceNotFound
}

func (f *fakeAbsenceReadRepo) Delete(_ context.Context, id string) error {
	for i, rec := range f.absences {
		if rec.ID == id {
			f.absences = append(f.absences[:i], f.absences[i+1:]...)
			return nil
		}
	}
	return absence.ErrAbsenceNotFound
}

type fakeEmployeeStateRepo struct {
	checkedIn map[string]bool
}

func newFakeEmployeeStateRepo() *fakeEmployeeStateRepo {
	return &fakeEmployeeStateRepo{checkedIn: make(map[string]bool)}
}

func (f *fakeEmployeeStateRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeStateRepo) GetByID(_ context.Context, id string, _ string) (employee.Employee, error) {
	return employee.Employee{ID: id, CheckedIn: f.checkedIn[id]}, nil
}

func (f *fakeEmployeeStateRepo) List(_ context.Context, _ string, _ *string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStateRepo) Update(_ context.Context, _ employee.Employee) error {
	return nil
}

func (f *fakeEmployeeStateRepo) SetCheckedIn(_ context.Context, id string, checkedIn bool) error {
	f.checkedIn[id] = checkedIn
	return nil
}

func (f *fakeEmployeeStateRepo) SoftDelete(_ context.Context, _ string, _ string) error {
	return nil
}

func newTestService() (attendance.AttendanceService, *fakeAttendanceRepo, *fakeAbsenceReadRepo, *fakeEmployeeStateRepo) {
	attendanceRepo := newFakeAttendanceRepo()
	absenceRepo := &fakeAbsenceReadRepo{}
	employeeRepo := newFakeEmployeeStateRepo()
	return NewAttendanceService(attendanceRepo, absenceRepo, employeeRepo), attendanceRepo, absenceRepo, employeeRepo
}

func absenceCoveringToday(employeeID string) absence.AbsenceRecord {
	today := time.Now().UTC()
	start, end := dateutil.DayBounds(today)
	return absence.AbsenceRecord{
		ID:            "abs-1",
		EmployeeID:    employeeID,
		AbsenceTypeID: "type-1",
		StartDate:     start,
		EndDate:       end,
	}
}

func TestCheckInOpensRecord(t *testing.T) {
	ctx := context.Background()
	svc, _, _, employeeRepo := newTestService()

	rec, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "emp-1", rec.EmployeeID)
	assert.Nil(t, rec.CheckOut)
	assert.False(t, rec.AutoClosed)
	assert.True(t, employeeRepo.checkedIn["emp-1"])
}

func TestCheckInAutoClosesStaleOpenRecord(t *testing.T) {
	ctx := context.Background()
	svc, attendanceRepo, _, employeeRepo := newTestService()

	first, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)

	second, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	stale, err := attendanceRepo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.NotNil(t, stale.CheckOut)
	assert.True(t, stale.AutoClosed)

	// The new session is open and the employee remains checked in
	fresh, err := attendanceRepo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Nil(t, fresh.CheckOut)
	assert.True(t, employeeRepo.checkedIn["emp-1"])
}

func TestCheckOutClosesOpenRecord(t *testing.T) {
	ctx := context.Background()
	svc, attendanceRepo, _, employeeRepo := newTestService()

	opened, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)

	closed, err := svc.CheckOut(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, opened.ID, closed.ID)
	assert.NotNil(t, closed.CheckOut)
	assert.False(t, closed.AutoClosed)
	assert.False(t, employeeRepo.checkedIn["emp-1"])

	stored, err := attendanceRepo.GetByID(ctx, opened.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.CheckOut)
}

func TestCheckOutWithoutOpenRecord(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService()

	_, err := svc.CheckOut(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckInRejectedOnAbsenceDay(t *testing.T) {
	ctx := context.Background()
	svc, _, absenceRepo, _ := newTestService()
	absenceRepo.absences = append(absenceRepo.absences, absenceCoveringToday("emp-1"))

	_, err := svc.CheckIn(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAbsenceConflict)
}

func TestCheckOutRejectedOnAbsenceDay(t *testing.T) {
	ctx := context.Background()
	svc, _, absenceRepo, _ := newTestService()

	_, err := svc.CheckIn(ctx, "emp-1")
	require.NoError(t, err)

	absenceRepo.absences = append(absenceRepo.absences, absenceCoveringToday("emp-1"))

	_, err = svc.CheckOut(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrAbsenceConflict)
}

func TestCreateRecordDoesNotTouchLiveState(t *testing.T) {
	ctx := context.Background()
	svc, _, _, employeeRepo := newTestService()

	rec, err := svc.CreateRecord(ctx, attendance.CreateAttendanceRecordRequest{
		EmployeeID: "emp-1",
		CheckIn:    "2025-03-10T08:00:00Z",
		CheckOut:   "2025-03-10T16:30:00Z",
	})
	require.NoError(t, err)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, "2025-03-10T08:00:00Z", rec.CheckIn)
	assert.Equal(t, "2025-03-10T16:30:00Z", *rec.CheckOut)
	assert.Equal(t, 510, rec.WorkedMinutes)
	assert.False(t, rec.AutoClosed)
	assert.False(t, employeeRepo.checkedIn["emp-1"])
}

func TestCreateRecordRequiresBothEnds(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService()

	_, err := svc.CreateRecord(ctx, attendance.CreateAttendanceRecordRequest{
		EmployeeID: "emp-1",
		CheckIn:    "2025-03-10T08:00:00Z",
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "check_out")
}

func TestCreateRecordRejectsReversedInterval(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService()

	_, err := svc.CreateRecord(ctx, attendance.CreateAttendanceRecordRequest{
		EmployeeID: "emp-1",
		CheckIn:    "2025-03-10T16:00:00Z",
		CheckOut:   "2025-03-10T08:00:00Z",
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "check_out")
}

func TestCreateRecordRejectedOnAbsenceDay(t *testing.T) {
	ctx := context.Background()
	svc, _, absenceRepo, _ := newTestService()
	absenceRepo.absences = append(absenceRepo.absences, absence.AbsenceRecord{
		ID:         "abs-1",
		EmployeeID: "emp-1",
		StartDate:  time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	})

	_, err := svc.CreateRecord(ctx, attendance.CreateAttendanceRecordRequest{
		EmployeeID: "emp-1",
		CheckIn:    "2025-03-11T08:00:00Z",
		CheckOut:   "2025-03-11T16:00:00Z",
	})
	assert.ErrorIs(t, err, attendance.ErrAbsenceConflict)
}

func TestUpdateRecordClearsAutoClosedFlag(t *testing.T) {
	ctx := context.Background()
	svc, attendanceRepo, _, _ := newTestService()

	checkIn := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	created, err := attendanceRepo.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: "emp-1",
		CheckIn:    checkIn,
		CheckOut:   &checkOut,
		AutoClosed: true,
	})
	require.NoError(t, err)

	corrected := "2025-03-10T16:00:00Z"
	updated, err := svc.UpdateRecord(ctx, attendance.UpdateAttendanceRecordRequest{
		ID:       created.ID,
		CheckOut: &corrected,
	})
	require.NoError(t, err)
	assert.False(t, updated.AutoClosed)
	require.NotNil(t, updated.CheckOut)
	assert.Equal(t, corrected, *updated.CheckOut)
}

func TestUpdateRecordRejectsEmployeeChange(t *testing.T) {
	ctx := context.Background()
	svc, attendanceRepo, _, _ := newTestService()

	created, err := attendanceRepo.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: "emp-1",
		CheckIn:    time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	other := "emp-2"
	_, err = svc.UpdateRecord(ctx, attendance.UpdateAttendanceRecordRequest{
		ID:         created.ID,
		EmployeeID: &other,
	})
	assert.ErrorIs(t, err, attendance.ErrEmployeeImmutable)
}

func TestUpdateRecordRejectsNonPositiveDuration(t *testing.T) {
	ctx := context.Background()
	svc, attendanceRepo, _, _ := newTestService()

	checkIn := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)
	created, err := attendanceRepo.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: "emp-1",
		CheckIn:    checkIn,
		CheckOut:   &checkOut,
	})
	require.NoError(t, err)

	// Equal timestamps are rejected on update, unlike creation
	equal := "2025-03-10T08:00:00Z"
	_, err = svc.UpdateRecord(ctx, attendance.UpdateAttendanceRecordRequest{
		ID:       created.ID,
		CheckOut: &equal,
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "check_out")
}

func TestUpdateRecordNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newTestService()

	_, err := svc.UpdateRecord(ctx, attendance.UpdateAttendanceRecordRequest{ID: "missing"})
	assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
}

func TestDeleteRecord(t *testing.T) {
	ctx := context.Background()
	svc, attendanceRepo, _, _ := newTestService()

	created, err := attendanceRepo.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: "emp-1",
		CheckIn:    time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecord(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteRecord(ctx, created.ID), attendance.ErrRecordNotFound)
}

func TestGetByEmployeeIDAndPeriod(t *testing.T) {
	ctx := context.Background()
	svc, attendanceRepo, _, _ := newTestService()

	inRange := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	inRangeOut := inRange.Add(8 * time.Hour)
	outOfRange := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

	_, err := attendanceRepo.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: "emp-1",
		CheckIn:    inRange,
		CheckOut:   &inRangeOut,
	})
	require.NoError(t, err)
	_, err = attendanceRepo.Create(ctx, attendance.AttendanceRecord{
		EmployeeID: "emp-1",
		CheckIn:    outOfRange,
	})
	require.NoError(t, err)

	records, err := svc.GetByEmployeeIDAndPeriod(ctx, attendance.PeriodFilter{
		EmployeeID: "emp-1",
		Start:      "2025-03-01T00:00:00Z",
		End:        "2025-03-31T23:59:59Z",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-03-10T08:00:00Z", records[0].CheckIn)
}
