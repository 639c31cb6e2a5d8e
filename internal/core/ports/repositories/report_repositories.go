package repositories

import (
	"context"

	"github.com/credlytics/credit_report_service/internal/core/domain"
)

// ReportReader defines read operations for stored credit reports
type ReportReader interface {
	// FindReportByID retrieves a specific report by its identifier.
	FindReportByID(ctx context.Context, reportID string) (*domain.CreditReport, error)

	// FindReportByPAN retrieves the report stored for the given PAN, used by
	// the duplicate check. Returns apperrors.ErrNotFound when none exists.
	FindReportByPAN(ctx context.Context, pan string) (*domain.CreditReport, error)

	// ListReports retrieves all stored reports sorted by creation time descending.
	ListReports(ctx context.Context) ([]domain.CreditReport, error)
}

// ReportWriter defines write operations for stored credit reports
type ReportWriter interface {
	// SaveReport persists a new report atomically with its accounts.
	// Returns apperrors.ErrDuplicate when a report with the same PAN already
	// exists (enforced by the store's unique constraint).
	SaveReport(ctx context.Context, report domain.CreditReport) error
}

// ReportRepositoryFacade combines all report repository interfaces
type ReportRepositoryFacade interface {
	ReportReader
	ReportWriter
}
