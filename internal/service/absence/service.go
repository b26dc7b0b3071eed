package absence

import (
	"context"
	"errors"
	"fmt"

	"github.com/punchly/punchly-backend-go/internal/domain/absence"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
)

type AbsenceServiceImpl struct {
	absenceRepo absence.AbsenceRecordRepository
}

func NewAbsenceService(absenceRepo absence.AbsenceRecordRepository) absence.AbsenceService {
	return &AbsenceServiceImpl{absenceRepo: absenceRepo}
}

// Create implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Create(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	overlapping, err := s.absenceRepo.GetOverlapping(ctx, req.EmployeeID, req.Start, req.End, nil)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to check overlapping absences: %w", err)
	}
	if len(overlapping) > 0 {
		return absence.AbsenceResponse{}, absence.ErrOverlappingPeriod
	}

	created, err := s.absenceRepo.Create(ctx, absence.AbsenceRecord{
		EmployeeID:    req.EmployeeID,
		AbsenceTypeID: req.AbsenceTypeID,
		StartDate:     req.Start,
		EndDate:       req.End,
	})
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to create absence record: %w", err)
	}

	return mapAbsenceToResponse(created), nil
}

// Update implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Update(ctx context.Context, req absence.UpdateAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	existing, err := s.absenceRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, absence.ErrAbsenceNotFound) {
			return absence.AbsenceResponse{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceResponse{}, fmt.Errorf("failed to get absence record: %w", err)
	}

	// An absence stays pinned to the employee it was created for
	if req.EmployeeID != nil && *req.EmployeeID != existing.EmployeeID {
		return absence.AbsenceResponse{}, absence.ErrEmployeeImmutable
	}

	effectiveStart := existing.StartDate
	if req.Start != nil {
		effectiveStart = *req.Start
	}
	effectiveEnd := existing.EndDate
	if req.End != nil {
		effectiveEnd = *req.End
	}
	if effectiveEnd.Before(effectiveStart) {
		return absence.AbsenceResponse{}, invalidRangeError()
	}

	// The persisted record itself would always intersect the effective
	// range, so it is excluded from the overlap check.
	overlapping, err := s.absenceRepo.GetOverlapping(ctx, existing.EmployeeID, effectiveStart, effectiveEnd, &existing.ID)
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to check overlapping absences: %w", err)
	}
	if len(overlapping) > 0 {
		return absence.AbsenceResponse{}, absence.ErrOverlappingPeriod
	}

	existing.StartDate = effectiveStart
	existing.EndDate = effectiveEnd
	if req.AbsenceTypeID != nil {
		existing.AbsenceTypeID = *req.AbsenceTypeID
	}

	if err := s.absenceRepo.Update(ctx, existing); err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to update absence record: %w", err)
	}

	return mapAbsenceToResponse(existing), nil
}

// Delete implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Delete(ctx context.Context, id string) (absence.AbsenceResponse, error) {
	existing, err := s.absenceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, absence.ErrAbsenceNotFound) {
			return absence.AbsenceResponse{}, absence.ErrAbsenceNotFound
		}
		return absence.AbsenceResponse{}, fmt.Errorf("failed to get absence record: %w", err)
	}

	if err := s.absenceRepo.Delete(ctx, id); err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to delete absence record: %w", err)
	}

	return mapAbsenceToResponse(existing), nil
}

// GetByEmployeeID implements absence.AbsenceService.
func (s *AbsenceServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]absence.AbsenceResponse, error) {
	records, err := s.absenceRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get absence records: %w", err)
	}

	responses := make([]absence.AbsenceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapAbsenceToResponse(rec))
	}
	return responses, nil
}

// GetByEmployeeIDAndRange implements absence.AbsenceService.
func (s *AbsenceServiceImpl) GetByEmployeeIDAndRange(ctx context.Context, filter absence.RangeFilter) ([]absence.AbsenceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.absenceRepo.GetByEmployeeIDAndRange(ctx, filter.EmployeeID, filter.Start, filter.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get absence records: %w", err)
	}

	responses := make([]absence.AbsenceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapAbsenceToResponse(rec))
	}
	return responses, nil
}

func invalidRangeError() error {
	return validator.ValidationErrors{{
		Field:   "end_date",
		Message: "end_date must not be before start_date",
	}}
}

func mapAbsenceToResponse(rec absence.AbsenceRecord) absence.AbsenceResponse {
	return absence.AbsenceResponse{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		AbsenceTypeID:   rec.AbsenceTypeID,
		AbsenceTypeName: rec.AbsenceTypeName,
		StartDate:       rec.StartDate.Format("2006-01-02"),
		EndDate:         rec.EndDate.Format("2006-01-02"),
	}
}
