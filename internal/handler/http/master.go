package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/punchly/punchly-backend-go/internal/domain/absencetype"
	"github.com/punchly/punchly-backend-go/internal/domain/department"
	"github.com/punchly/punchly-backend-go/internal/domain/employeetype"
	"github.com/punchly/punchly-backend-go/internal/handler/http/response"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
	masterservice "github.com/punchly/punchly-backend-go/internal/service/master"
)

// MasterHandler exposes the per-company master data: departments, employee
// types and absence types. All three share the same name-only shape.
type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreateEmployeeType(w http.ResponseWriter, r *http.Request)
	ListEmployeeTypes(w http.ResponseWriter, r *http.Request)
	UpdateEmployeeType(w http.ResponseWriter, r *http.Request)
	DeleteEmployeeType(w http.ResponseWriter, r *http.Request)

	CreateAbsenceType(w http.ResponseWriter, r *http.Request)
	ListAbsenceTypes(w http.ResponseWriter, r *http.Request)
	UpdateAbsenceType(w http.ResponseWriter, r *http.Request)
	DeleteAbsenceType(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService *masterservice.MasterService
}

func NewMasterHandler(masterService *masterservice.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

type nameRequest struct {
	Name string `json:"name"`
}

type masterItemResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func mapDepartment(d department.Department) masterItemResponse {
	return masterItemResponse{ID: d.ID, Name: d.Name}
}

func mapEmployeeType(et employeetype.EmployeeType) masterItemResponse {
	return masterItemResponse{ID: et.ID, Name: et.Name}
}

func mapAbsenceType(at absencetype.AbsenceType) masterItemResponse {
	return masterItemResponse{ID: at.ID, Name: at.Name}
}

// decodeNameRequest reads the shared {name} payload and the tenant id.
func decodeNameRequest(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Master data decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return "", "", false
	}

	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return "", "", false
	}
	return companyID, req.Name, true
}

func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	companyID, name, ok := decodeNameRequest(w, r)
	if !ok {
		return
	}

	dep, err := h.masterService.CreateDepartment(r.Context(), companyID, name)
	if err != nil {
		slog.Error("Create department service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created successfully", mapDepartment(dep))
}

func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	departments, err := h.masterService.ListDepartments(r.Context(), companyID)
	if err != nil {
		slog.Error("List departments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]masterItemResponse, 0, len(departments))
	for _, d := range departments {
		items = append(items, mapDepartment(d))
	}
	response.Success(w, items)
}

func (h *MasterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	companyID, name, ok := decodeNameRequest(w, r)
	if !ok {
		return
	}

	dep, err := h.masterService.UpdateDepartment(r.Context(), id, companyID, name)
	if err != nil {
		slog.Error("Update department service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department updated successfully", mapDepartment(dep))
}

func (h *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.masterService.DeleteDepartment(r.Context(), id, companyID); err != nil {
		slog.Error("Delete department service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

func (h *MasterHandlerImpl) CreateEmployeeType(w http.ResponseWriter, r *http.Request) {
	companyID, name, ok := decodeNameRequest(w, r)
	if !ok {
		return
	}

	et, err := h.masterService.CreateEmployeeType(r.Context(), companyID, name)
	if err != nil {
		slog.Error("Create employee type service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee type created successfully", mapEmployeeType(et))
}

func (h *MasterHandlerImpl) ListEmployeeTypes(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeTypes, err := h.masterService.ListEmployeeTypes(r.Context(), companyID)
	if err != nil {
		slog.Error("List employee types service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]masterItemResponse, 0, len(employeeTypes))
	for _, et := range employeeTypes {
		items = append(items, mapEmployeeType(et))
	}
	response.Success(w, items)
}

func (h *MasterHandlerImpl) UpdateEmployeeType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	companyID, name, ok := decodeNameRequest(w, r)
	if !ok {
		return
	}

	et, err := h.masterService.UpdateEmployeeType(r.Context(), id, companyID, name)
	if err != nil {
		slog.Error("Update employee type service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee type updated successfully", mapEmployeeType(et))
}

func (h *MasterHandlerImpl) DeleteEmployeeType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.masterService.DeleteEmployeeType(r.Context(), id, companyID); err != nil {
		slog.Error("Delete employee type service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee type deleted successfully", nil)
}

func (h *MasterHandlerImpl) CreateAbsenceType(w http.ResponseWriter, r *http.Request) {
	companyID, name, ok := decodeNameRequest(w, r)
	if !ok {
		return
	}

	at, err := h.masterService.CreateAbsenceType(r.Context(), companyID, name)
	if err != nil {
		slog.Error("Create absence type service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Absence type created successfully", mapAbsenceType(at))
}

func (h *MasterHandlerImpl) ListAbsenceTypes(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	absenceTypes, err := h.masterService.ListAbsenceTypes(r.Context(), companyID)
	if err != nil {
		slog.Error("List absence types service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]masterItemResponse, 0, len(absenceTypes))
	for _, at := range absenceTypes {
		items = append(items, mapAbsenceType(at))
	}
	response.Success(w, items)
}

func (h *MasterHandlerImpl) UpdateAbsenceType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	companyID, name, ok := decodeNameRequest(w, r)
	if !ok {
		return
	}

	at, err := h.masterService.UpdateAbsenceType(r.Context(), id, companyID, name)
	if err != nil {
		slog.Error("Update absence type service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Absence type updated successfully", mapAbsenceType(at))
}

func (h *MasterHandlerImpl) DeleteAbsenceType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.masterService.DeleteAbsenceType(r.Context(), id, companyID); err != nil {
		slog.Error("Delete absence type service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Absence type deleted successfully", nil)
}
