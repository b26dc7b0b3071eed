package absence

import "context"

// AbsenceService validates and persists absence periods, rejecting overlaps
// and invalid ranges.
type AbsenceService interface {
	Create(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error)

	// Update re-validates the effective range against the employee's other
	// absence records, excluding the record itself.
	Update(ctx context.Context, req UpdateAbsenceRequest) (AbsenceResponse, error)

	Delete(ctx context.Context, id string) (AbsenceResponse, error)

	GetByEmployeeID(ctx context.Context, employeeID string) ([]AbsenceResponse, error)

	GetByEmployeeIDAndRange(ctx context.Context, filter RangeFilter) ([]AbsenceResponse, error)
}
