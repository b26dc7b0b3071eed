package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/punchly/punchly-backend-go/internal/domain/company"
	"github.com/punchly/punchly-backend-go/internal/handler/http/response"
	"github.com/punchly/punchly-backend-go/internal/pkg/validator"
	companyservice "github.com/punchly/punchly-backend-go/internal/service/company"
)

type CompanyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetMy(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService *companyservice.CompanyServiceImpl
}

func NewCompanyHandler(companyService *companyservice.CompanyServiceImpl) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

type companyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func mapCompany(c company.Company) companyResponse {
	return companyResponse{ID: c.ID, Name: c.Name}
}

// Create implements CompanyHandler.
func (h *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	c, err := h.companyService.Create(r.Context(), req.Name)
	if err != nil {
		slog.Error("Create company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Company created successfully", mapCompany(c))
}

// List implements CompanyHandler.
func (h *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companyService.List(r.Context())
	if err != nil {
		slog.Error("List companies service error", "error", err)
		response.HandleError(w, err)
		return
	}

	items := make([]companyResponse, 0, len(companies))
	for _, c := range companies {
		items = append(items, mapCompany(c))
	}
	response.Success(w, items)
}

// GetMy implements CompanyHandler.
func (h *CompanyHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	c, err := h.companyService.GetByID(r.Context(), companyID)
	if err != nil {
		slog.Error("Get company service error", "error", err, "id", companyID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, mapCompany(c))
}

// Update implements CompanyHandler.
func (h *CompanyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update company decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	c, err := h.companyService.Update(r.Context(), id, req.Name)
	if err != nil {
		slog.Error("Update company service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated successfully", mapCompany(c))
}

// Delete implements CompanyHandler.
func (h *CompanyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "id must be a valid UUID", nil)
		return
	}

	if err := h.companyService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete company service error", "error", err, "id", id)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company deleted successfully", nil)
}
