package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/punchly/punchly-backend-go/internal/domain/attendance"
	"github.com/punchly/punchly-backend-go/internal/handler/http/response"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	CreateRecord(w http.ResponseWriter, r *http.Request)
	UpdateRecord(w http.ResponseWriter, r *http.Request)
	DeleteRecord(w http.ResponseWriter, r *http.Request)
	GetLast30(w http.ResponseWriter, r *http.Request)
	GetByPeriod(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "employeeID must be a valid UUID", nil)
		return
	}

	record, err := h.attendanceService.CheckIn(r.Context(), employeeID)
	if err != nil {
		slog.Error("Check-in service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in", record)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "employeeID must be a valid UUID", nil)
		return
	}

	record, err := h.attendanceService.CheckOut(r.Context(), employeeID)
	if err != nil {
		slog.Error("Check-out service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", record)
}

// CreateRecord implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CreateRecord(w http.ResponseWriter, r *http.Request) {
	var createReq attendance.CreateAttendanceRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create attendance record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.CreateRecord(r.Context(), createReq)
	if err != nil {
		slog.Error("Create attendance record service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance record created", record)
}

// UpdateRecord implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	var updateReq attendance.UpdateAttendanceRecordRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update attendance record decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.attendanceService.UpdateRecord(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update attendance record service error", "error", err, "id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated", record)
}

// DeleteRecord implements AttendanceHandler.
func (h *AttendanceHandlerImpl) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	if err := h.attendanceService.DeleteRecord(r.Context(), id); err != nil {
		slog.Error("Delete attendance record service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record deleted", nil)
}

// GetLast30 implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetLast30(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "employeeID must be a valid UUID", nil)
		return
	}

	records, err := h.attendanceService.GetLast30(r.Context(), employeeID)
	if err != nil {
		slog.Error("Get last attendance records service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetByPeriod implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetByPeriod(w http.ResponseWriter, r *http.Request) {
	filter := attendance.PeriodFilter{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Start:      r.URL.Query().Get("start"),
		End:        r.URL.Query().Get("end"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.GetByEmployeeIDAndPeriod(r.Context(), filter)
	if err != nil {
		slog.Error("Get attendance by period service error", "error", err, "employee_id", filter.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
