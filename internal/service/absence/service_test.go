package absence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/punchly/punchly-backend-go/internal/domain/absence"
	"github.com/punchly/punchly-backend-go/internal/pkg/dateutil"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAbsenceRepo struct {
	records map[string]absence.AbsenceRecord
	nextID  int
}

func newFakeAbsenceRepo() *fakeAbsenceRepo {
	return &fakeAbsenceRepo{records: make(map[string]absence.AbsenceRecord)}
}

func (f *fakeAbsenceRepo) Create(_ context.Context, record absence.AbsenceRecord) (absence.AbsenceRecord, error) {
	f.nextID++
	record.ID = fmt.Sprintf("abs-%d", f.nextID)
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeAbsenceRepo) GetByID(_ context.Context, id string) (absence.AbsenceRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return absence.AbsenceRecord{}, absence.ErrAbsenceNotFound
	}
	return rec, nil
}

func (f *fakeAbsenceRepo) GetByEmployeeID(_ context.Context, employeeID string) ([]absence.AbsenceRecord, error) {
	var out []absence.AbsenceRecord
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAbsenceRepo) GetByEmployeeIDAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]absence.AbsenceRecord, error) {
	return f.GetOverlapping(ctx, employeeID, start, end, nil)
}

func (f *fakeAbsenceRepo) GetOverlapping(_ context.Context, employeeID string, start, end time.Time, excludeID *string) ([]absence.AbsenceRecord, error) {
	var out []absence.AbsenceRecord
	for _, rec := range f.records {
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

func (f *fakeAbsenceRepo) Update(_ context.Context, record absence.AbsenceRecord) error {
	if _, ok := f.records[record.ID]; !ok {
		return absence.ErrAbsenceNotFound
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakeAbsenceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return absence.ErrAbsenceNotFound
	}
	delete(f.records, id)
	return nil
}

func createRequest(employeeID, start, end string) absence.CreateAbsenceRequest {
	return absence.CreateAbsenceRequest{
		EmployeeID:    employeeID,
		AbsenceTypeID: "type-1",
		StartDate:     start,
		EndDate:       end,
	}
}

func TestCreateAbsence(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	rec, err := svc.Create(ctx, createRequest("emp-1", "2025-03-10", "2025-03-12"))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-10", rec.StartDate)
	assert.Equal(t, "2025-03-12", rec.EndDate)
}

func TestCreateSameDayAbsence(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	rec, err := svc.Create(ctx, createRequest("emp-1", "2025-03-10", "2025-03-10"))
	require.NoError(t, err)
	assert.Equal(t, rec.StartDate, rec.EndDate)
}

func TestCreateRejectsReversedRange(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	_, err := svc.Create(ctx, createRequest("emp-1", "2025-03-12", "2025-03-10"))
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "end_date")
}

func TestCreateRejectsOverlap(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	_, err := svc.Create(ctx, createRequest("emp-1", "2025-03-10", "2025-03-14"))
	require.NoError(t, err)

	// Sharing a single boundary day already counts as an overlap
	_, err = svc.Create(ctx, createRequest("emp-1", "2025-03-14", "2025-03-20"))
	assert.ErrorIs(t, err, absence.ErrOverlappingPeriod)
}

func TestCreateAllowsAdjacentDays(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	_, err := svc.Create(ctx, createRequest("emp-1", "2025-03-10", "2025-03-14"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createRequest("emp-1", "2025-03-15", "2025-03-20"))
	assert.NoError(t, err)
}

func TestCreateIgnoresOtherEmployees(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	_, err := svc.Create(ctx, createRequest("emp-1", "2025-03-10", "2025-03-14"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, createRequest("emp-2", "2025-03-10", "2025-03-14"))
	assert.NoError(t, err)
}

func TestUpdateExcludesSelfFromOverlapCheck(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	created, err := svc.Create(ctx, createRequest("emp-1", "2025-03-10", "2025-03-14"))
	require.NoError(t, err)

	// Shrinking inside its own persisted range must not self-conflict
	newEnd := "2025-03-12"
	updated, err := svc.Update(ctx, absence.UpdateAbsenceRequest{
		ID:      created.ID,
		EndDate: &newEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-12", updated.EndDate)
}

func TestUpdateRejectsOverlapWithOtherRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	_, err := svc.Create(ctx, createRequest("emp-1", "2025-03-10", "2025-03-12"))
	require.NoError(t, err)
	second, err := svc.Create(ctx, createRequest("emp-1", "2025-03-20", "2025-03-22"))
	require.NoError(t, err)

	newStart := "2025-03-12"
	_, err = svc.Update(ctx, absence.UpdateAbsenceRequest{
		ID:        second.ID,
		StartDate: &newStart,
	})
	assert.ErrorIs(t, err, absence.ErrOverlappingPeriod)
}

func TestUpdateRejectsEmployeeChange(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	created, err := svc.Create(ctx, createRequest("emp-1", "2025-03-10", "2025-03-12"))
	require.NoError(t, err)

	other := "emp-2"
	_, err = svc.Update(ctx, absence.UpdateAbsenceRequest{
		ID:         created.ID,
		EmployeeID: &other,
	})
	assert.ErrorIs(t, err, absence.ErrEmployeeImmutable)
}

func TestUpdateRejectsReversedEffectiveRange(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	created, err := svc.Create(ctx, createRequest("emp-1", "2025-03-10", "2025-03-12"))
	require.NoError(t, err)

	// New start beyond the untouched end date
	newStart := "2025-03-15"
	_, err = svc.Update(ctx, absence.UpdateAbsenceRequest{
		ID:        created.ID,
		StartDate: &newStart,
	})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "end_date")
}

func TestUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	_, err := svc.Update(ctx, absence.UpdateAbsenceRequest{ID: "missing"})
	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
}

func TestDeleteReturnsDeletedRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	created, err := svc.Create(ctx, createRequest("emp-1", "2025-03-10", "2025-03-12"))
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
}

func TestGetByEmployeeIDAndRange(t *testing.T) {
	ctx := context.Background()
	svc := NewAbsenceService(newFakeAbsenceRepo())

	_, err := svc.Create(ctx, createRequest("emp-1", "2025-03-10", "2025-03-12"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, createRequest("emp-1", "2025-04-01", "2025-04-02"))
	require.NoError(t, err)

	records, err := svc.GetByEmployeeIDAndRange(ctx, absence.RangeFilter{
		EmployeeID: "emp-1",
		StartDate:  "2025-03-01",
		EndDate:    "2025-03-31",
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-03-10", records[0].StartDate)
}
