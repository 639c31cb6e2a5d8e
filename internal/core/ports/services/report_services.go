package services

import (
	"context"

	"github.com/credlytics/credit_report_service/internal/core/domain"
)

// ReportReaderSvc defines read operations for stored credit reports
type ReportReaderSvc interface {
	// ListReports retrieves all stored reports, newest first.
	ListReports(ctx context.Context) ([]domain.CreditReport, error)

	// GetReportByID retrieves a single report by its identifier.
	GetReportByID(ctx context.Context, reportID string) (*domain.CreditReport, error)
}

// ReportIngestorSvc defines the ingestion pipeline entry point
type ReportIngestorSvc interface {
	// IngestReportFile extracts the uploaded XML file at filePath, rejects
	// duplicates by PAN, persists the normalized report and removes the
	// transient file on every terminal path.
	IngestReportFile(ctx context.Context, filePath string) (*domain.CreditReport, error)
}

// ReportSvcFacade combines all report-related service interfaces
type ReportSvcFacade interface {
	ReportReaderSvc
	ReportIngestorSvc
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Report ReportSvcFacade
}
