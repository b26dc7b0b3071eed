package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/punchly/punchly-backend-go/internal/domain/report"
	"github.com/punchly/punchly-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GenerateAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// GenerateAttendanceReport implements ReportHandler. The workbook is
// streamed back as a file download, not wrapped in the JSON envelope.
func (h *ReportHandlerImpl) GenerateAttendanceReport(w http.ResponseWriter, r *http.Request) {
	var reportReq report.AttendanceReportRequest

	if err := json.NewDecoder(r.Body).Decode(&reportReq); err != nil {
		slog.Error("Generate report decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	companyID, err := companyIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	reportReq.CompanyID = companyID

	file, err := h.reportService.GenerateAttendanceReport(r.Context(), reportReq)
	if err != nil {
		slog.Error("Generate report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(file.Content)))
	if _, err := w.Write(file.Content); err != nil {
		slog.Error("Failed to write report file", "error", err)
	}
}
