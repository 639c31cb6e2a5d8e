package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/credlytics/credit_report_service/internal/apperrors"
	portssvc "github.com/credlytics/credit_report_service/internal/core/ports/services"
	"github.com/credlytics/credit_report_service/internal/dto"
	"github.com/credlytics/credit_report_service/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uploadFormField is the multipart form field carrying the XML file.
const uploadFormField = "file"

// reportHandler handles HTTP requests related to credit reports.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
	uploadDir     string
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportSvcFacade, uploadDir string) *reportHandler {
	return &reportHandler{
		reportService: rs,
		uploadDir:     uploadDir,
	}
}

// registerReportRoutes registers routes related to credit reports.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade, uploadDir string, uploadMiddleware ...gin.HandlerFunc) {
	h := newReportHandler(reportService, uploadDir)

	rg.POST("/upload", append(uploadMiddleware, h.uploadReport)...)
	rg.GET("/reports", h.listReports)
	rg.GET("/reports/:id", h.getReport)
}

// uploadReport godoc
// @Summary Upload a credit report XML
// @Description Accepts an Experian XML export, extracts the report fields and stores them. Duplicate PANs are rejected.
// @Tags reports
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Experian credit report XML file"
// @Success 200 {object} dto.UploadReportResponse
// @Failure 400 {object} dto.MessageResponse "No file uploaded or malformed XML"
// @Failure 409 {object} dto.MessageResponse "Report already exists for this PAN"
// @Failure 500 {object} dto.MessageResponse "Failed to process uploaded report"
// @Router /upload [post]
func (h *reportHandler) uploadReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	file, err := c.FormFile(uploadFormField)
	if err != nil {
		logger.Warn("Upload request without file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "No file uploaded!"})
		return
	}

	// Stage the upload on disk; the service owns the file from the moment
	// ingestion starts.
	dst := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		logger.Error("Failed to store uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to store uploaded file"})
		return
	}

	logger.Info("Received report upload", slog.String("filename", file.Filename), slog.Int64("size", file.Size))

	report, err := h.reportService.IngestReportFile(c.Request.Context(), dst)
	if err != nil {
		h.cleanupLeftoverUpload(c, dst)

		var appErr *apperrors.AppError
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate report upload rejected")
			c.JSON(http.StatusConflict, dto.MessageResponse{Message: "Duplicate entry detected. Report already exists for this PAN."})
		case errors.Is(err, apperrors.ErrMalformedXML):
			logger.Warn("Malformed XML upload rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Invalid or malformed XML file!"})
		case errors.As(err, &appErr):
			logger.Error("Report ingestion failed", slog.String("error", err.Error()))
			c.JSON(appErr.Code, dto.MessageResponse{Message: appErr.Message})
		default:
			logger.Error("Report ingestion failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to process uploaded report"})
		}
		return
	}

	logger.Info("Report uploaded successfully", slog.String("report_id", report.ReportID))
	c.JSON(http.StatusOK, dto.UploadReportResponse{
		Message: "XML uploaded and data saved successfully!",
		Data:    dto.ToReportResponse(report),
	})
}

// listReports godoc
// @Summary List stored credit reports
// @Description Retrieves all stored reports, newest first
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.ListReportsResponse
// @Failure 500 {object} dto.MessageResponse "Failed to fetch reports"
// @Router /reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reports, err := h.reportService.ListReports(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list reports from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to fetch reports"})
		return
	}

	logger.Info("Reports listed successfully", slog.Int("count", len(reports)))
	c.JSON(http.StatusOK, dto.ListReportsResponse{
		Message: "Reports fetched successfully!",
		Data:    dto.ToListReportResponse(reports),
	})
}

// getReport godoc
// @Summary Get a credit report by ID
// @Description Retrieves a single stored report by its identifier
// @Tags reports
// @Produce  json
// @Param   id path string true "Report ID"
// @Success 200 {object} dto.GetReportResponse
// @Failure 404 {object} dto.MessageResponse "Report not found"
// @Failure 500 {object} dto.MessageResponse "Failed to fetch report"
// @Router /reports/{id} [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportID := c.Param("id")

	report, err := h.reportService.GetReportByID(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Report not found", slog.String("report_id", reportID))
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Report not found!"})
		} else {
			logger.Error("Failed to get report from service", slog.String("error", err.Error()), slog.String("report_id", reportID))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Failed to fetch report"})
		}
		return
	}

	logger.Info("Report retrieved successfully", slog.String("report_id", reportID))
	c.JSON(http.StatusOK, dto.GetReportResponse{
		Message: "Report fetched successfully!",
		Data:    dto.ToReportResponse(report),
	})
}

// cleanupLeftoverUpload is the boundary safety net: the service removes the
// upload on its own terminal paths, so this only fires if the file somehow
// survived the pipeline.
func (h *reportHandler) cleanupLeftoverUpload(c *gin.Context, path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := os.Remove(path); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to remove leftover upload", slog.String("path", path), slog.String("error", err.Error()))
	}
}
