package absence

import "errors"

// Absence domain errors
var (
	ErrOverlappingPeriod = errors.New("absence overlaps an existing period for this employee")
	ErrAbsenceNotFound   = errors.New("absence record not found")
	ErrEmployeeImmutable = errors.New("employee of an absence record cannot be changed")
)
