package response

import (
	"errors"
	"net/http"

	"github.com/punchly/punchly-backend-go/internal/domain/absence"
	"github.com/punchly/punchly-backend-go/internal/domain/absencetype"
	"github.com/punchly/punchly-backend-go/internal/domain/attendance"
	"github.com/punchly/punchly-backend-go/internal/domain/auth"
	"github.com/punchly/punchly-backend-go/internal/domain/company"
	"github.com/punchly/punchly-backend-go/internal/domain/department"
	"github.com/punchly/punchly-backend-go/internal/domain/employee"
	"github.com/punchly/punchly-backend-go/internal/domain/employeetype"
	"github.com/punchly/punchly-backend-go/internal/domain/user"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNotCheckedIn):
		NotFound(w, "No open attendance record for this employee")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAbsenceConflict):
		Conflict(w, "Employee is absent on this day")
	case errors.Is(err, attendance.ErrOpenRecordExists):
		Conflict(w, "Employee already has an open attendance record")
	case errors.Is(err, attendance.ErrEmployeeImmutable):
		BadRequest(w, "Attendance record cannot be moved to another employee", nil)

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence record not found")
	case errors.Is(err, absence.ErrOverlappingPeriod):
		Conflict(w, "Absence period overlaps an existing absence")
	case errors.Is(err, absence.ErrEmployeeImmutable):
		BadRequest(w, "Absence record cannot be moved to another employee", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists in this company")
	case errors.Is(err, employeetype.ErrEmployeeTypeNotFound):
		NotFound(w, "Employee type not found")
	case errors.Is(err, employeetype.ErrEmployeeTypeNameExists):
		Conflict(w, "Employee type name already exists in this company")
	case errors.Is(err, absencetype.ErrAbsenceTypeNotFound):
		NotFound(w, "Absence type not found")
	case errors.Is(err, absencetype.ErrAbsenceTypeNameExists):
		Conflict(w, "Absence type name already exists in this company")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyNameExists):
		Conflict(w, "Company name already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
