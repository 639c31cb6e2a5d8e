package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/credlytics/credit_report_service/internal/apperrors"
	"github.com/credlytics/credit_report_service/internal/core/domain"
	portsrepo "github.com/credlytics/credit_report_service/internal/core/ports/repositories"
	portssvc "github.com/credlytics/credit_report_service/internal/core/ports/services"
	"github.com/credlytics/credit_report_service/internal/ingestion"
	"github.com/credlytics/credit_report_service/internal/middleware"
	"github.com/google/uuid"
)

// ReportService orchestrates the ingestion pipeline (extract, duplicate
// check, persist, cleanup) and serves stored reports to the read API.
type ReportService struct {
	ReportRepository portsrepo.ReportRepositoryFacade
}

// Ensure ReportService implements portssvc.ReportSvcFacade
var _ portssvc.ReportSvcFacade = (*ReportService)(nil)

func NewReportService(repo portsrepo.ReportRepositoryFacade) *ReportService {
	return &ReportService{ReportRepository: repo}
}

// IngestReportFile runs the ingestion pipeline for the uploaded XML file at
// filePath. The service owns the transient file from here on: it is removed
// exactly once on every terminal path, including extraction failure.
func (s *ReportService) IngestReportFile(ctx context.Context, filePath string) (*domain.CreditReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	defer s.removeUpload(ctx, filePath)

	raw, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("path", filePath), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	rec, err := ingestion.ExtractReport(raw)
	if err != nil {
		logger.Warn("Failed to extract report from uploaded XML", slog.String("error", err.Error()))
		return nil, err
	}

	// Fast-path duplicate rejection. The unique index on PAN closes the
	// remaining race window for concurrent uploads of the same PAN.
	existing, err := s.ReportRepository.FindReportByPAN(ctx, rec.BasicDetails.PAN)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check for duplicate PAN in repository", slog.String("error", err.Error()))
		return nil, err
	}
	if existing != nil {
		logger.Warn("Duplicate report rejected", slog.String("pan", rec.BasicDetails.PAN))
		return nil, fmt.Errorf("%w: report already exists for this PAN", apperrors.ErrDuplicate)
	}

	report := domain.CreditReport{
		ReportID:       uuid.NewString(),
		BasicDetails:   rec.BasicDetails,
		ReportSummary:  rec.ReportSummary,
		CreditAccounts: rec.CreditAccounts,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.ReportRepository.SaveReport(ctx, report); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save report in repository", slog.String("error", err.Error()), slog.String("report_id", report.ReportID))
		}
		return nil, err
	}

	logger.Info("Report ingested successfully", slog.String("report_id", report.ReportID), slog.String("pan", report.BasicDetails.PAN))
	return &report, nil
}

// ListReports retrieves all stored reports sorted newest first.
func (s *ReportService) ListReports(ctx context.Context) ([]domain.CreditReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	reports, err := s.ReportRepository.ListReports(ctx)
	if err != nil {
		logger.Error("Failed to list reports from repository", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	if reports == nil {
		return []domain.CreditReport{}, nil // Return empty slice if repo returns nil
	}

	logger.Debug("Reports listed successfully from service", slog.Int("count", len(reports)))
	return reports, nil
}

// GetReportByID retrieves a single stored report.
func (s *ReportService) GetReportByID(ctx context.Context, reportID string) (*domain.CreditReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	report, err := s.ReportRepository.FindReportByID(ctx, reportID)
	if err != nil {
		// Note: Don't log if error is ErrNotFound, as it's an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find report by ID in repository", slog.String("error", err.Error()), slog.String("report_id", reportID))
		}
		return nil, err
	}
	logger.Debug("Report retrieved successfully from service", slog.String("report_id", report.ReportID))
	return report, nil
}

// removeUpload deletes the transient uploaded file. A file that is already
// gone is not an error; anything else is logged and swallowed so cleanup
// never masks the pipeline outcome.
func (s *ReportService) removeUpload(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to remove uploaded file", slog.String("path", filePath), slog.String("error", err.Error()))
	}
}
