package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/punchly/punchly-backend-go/internal/domain/absence"
	"github.com/punchly/punchly-backend-go/internal/handler/http/response"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
)

type AbsenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	GetByEmployeeID(w http.ResponseWriter, r *http.Request)
	GetByRange(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// Create implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq absence.CreateAbsenceRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.absenceService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create absence service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence created", record)
}

// Update implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq absence.UpdateAbsenceRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.absenceService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update absence service error", "error", err, "id", updateReq.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence updated", record)
}

// Delete implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	record, err := h.absenceService.Delete(r.Context(), id)
	if err != nil {
		slog.Error("Delete absence service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence deleted", record)
}

// GetByEmployeeID implements AbsenceHandler.
func (h *AbsenceHandlerImpl) GetByEmployeeID(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "employeeID must be a valid UUID", nil)
		return
	}

	records, err := h.absenceService.GetByEmployeeID(r.Context(), employeeID)
	if err != nil {
		slog.Error("Get absences service error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetByRange implements AbsenceHandler.
func (h *AbsenceHandlerImpl) GetByRange(w http.ResponseWriter, r *http.Request) {
	filter := absence.RangeFilter{
		EmployeeID: chi.URLParam(r, "employeeID"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.absenceService.GetByEmployeeIDAndRange(r.Context(), filter)
	if err != nil {
		slog.Error("Get absences by range service error", "error", err, "employee_id", filter.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
