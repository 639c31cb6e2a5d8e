package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/credlytics/credit_report_service/internal/apperrors"
	"github.com/credlytics/credit_report_service/internal/core/domain"
	portsrepo "github.com/credlytics/credit_report_service/internal/core/ports/repositories"
	"github.com/credlytics/credit_report_service/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolationCode is the postgres error code for unique constraint violations.
const uniqueViolationCode = "23505"

type PgxReportRepository struct {
	BaseRepository
}

// NewReportRepository creates a new repository for credit report data.
func NewReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepositoryFacade {
	return &PgxReportRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportRepository implements portsrepo.ReportRepositoryFacade
var _ portsrepo.ReportRepositoryFacade = (*PgxReportRepository)(nil)

// Helper to convert domain.CreditReport to models for DB storage
func toModelReport(d domain.CreditReport) (models.CreditReport, []models.CreditAccount) {
	report := models.CreditReport{
		ReportID:                 d.ReportID,
		Name:                     d.BasicDetails.Name,
		MobilePhone:              d.BasicDetails.MobilePhone,
		PAN:                      d.BasicDetails.PAN,
		CreditScore:              d.BasicDetails.CreditScore,
		TotalAccounts:            d.ReportSummary.TotalAccounts,
		ActiveAccounts:           d.ReportSummary.ActiveAccounts,
		ClosedAccounts:           d.ReportSummary.ClosedAccounts,
		CurrentBalanceAmount:     d.ReportSummary.CurrentBalanceAmount,
		SecuredAccountsAmount:    d.ReportSummary.SecuredAccountsAmount,
		UnsecuredAccountsAmount:  d.ReportSummary.UnsecuredAccountsAmount,
		Last7DaysCreditEnquiries: d.ReportSummary.Last7DaysCreditEnquiries,
		CreatedAt:                d.CreatedAt,
	}

	accounts := make([]models.CreditAccount, len(d.CreditAccounts))
	for i, acc := range d.CreditAccounts {
		accounts[i] = models.CreditAccount{
			ReportID:       d.ReportID,
			Position:       i,
			BankName:       acc.BankName,
			AccountNumber:  acc.AccountNumber,
			AccountType:    acc.AccountType,
			CurrentBalance: acc.CurrentBalance,
			AmountOverdue:  acc.AmountOverdue,
			Address:        acc.Address,
		}
	}
	return report, accounts
}

// Helper to convert models from DB to domain.CreditReport
func toDomainReport(m models.CreditReport, accounts []models.CreditAccount) domain.CreditReport {
	domainAccounts := make([]domain.CreditAccount, len(accounts))
	for i, acc := range accounts {
		domainAccounts[i] = domain.CreditAccount{
			BankName:       acc.BankName,
			AccountNumber:  acc.AccountNumber,
			AccountType:    acc.AccountType,
			CurrentBalance: acc.CurrentBalance,
			AmountOverdue:  acc.AmountOverdue,
			Address:        acc.Address,
		}
	}

	return domain.CreditReport{
		ReportID: m.ReportID,
		BasicDetails: domain.BasicDetails{
			Name:        m.Name,
			MobilePhone: m.MobilePhone,
			PAN:         m.PAN,
			CreditScore: m.CreditScore,
		},
		ReportSummary: domain.ReportSummary{
			TotalAccounts:            m.TotalAccounts,
			ActiveAccounts:           m.ActiveAccounts,
			ClosedAccounts:           m.ClosedAccounts,
			CurrentBalanceAmount:     m.CurrentBalanceAmount,
			SecuredAccountsAmount:    m.SecuredAccountsAmount,
			UnsecuredAccountsAmount:  m.UnsecuredAccountsAmount,
			Last7DaysCreditEnquiries: m.Last7DaysCreditEnquiries,
		},
		CreditAccounts: domainAccounts,
		CreatedAt:      m.CreatedAt,
	}
}

// SaveReport inserts a new report together with its account rows in one
// transaction. The unique index on pan rejects a concurrent insert for the
// same PAN, which is surfaced as apperrors.ErrDuplicate.
func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.CreditReport) error {
	modelReport, modelAccounts := toModelReport(report)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	reportQuery := `
		INSERT INTO credit_reports (
			report_id, name, mobile_phone, pan, credit_score,
			total_accounts, active_accounts, closed_accounts,
			current_balance_amount, secured_accounts_amount, unsecured_accounts_amount,
			last_7_days_credit_enquiries, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, reportQuery,
		modelReport.ReportID,
		modelReport.Name,
		modelReport.MobilePhone,
		modelReport.PAN,
		modelReport.CreditScore,
		modelReport.TotalAccounts,
		modelReport.ActiveAccounts,
		modelReport.ClosedAccounts,
		modelReport.CurrentBalanceAmount,
		modelReport.SecuredAccountsAmount,
		modelReport.UnsecuredAccountsAmount,
		modelReport.Last7DaysCreditEnquiries,
		modelReport.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: report already exists for PAN %q", apperrors.ErrDuplicate, modelReport.PAN)
		}
		return fmt.Errorf("failed to save report %s: %w", modelReport.ReportID, err)
	}

	accountQuery := `
		INSERT INTO credit_accounts (
			report_id, position, bank_name, account_number, account_type,
			current_balance, amount_overdue, address
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, acc := range modelAccounts {
		_, err = tx.Exec(ctx, accountQuery,
			acc.ReportID,
			acc.Position,
			acc.BankName,
			acc.AccountNumber,
			acc.AccountType,
			acc.CurrentBalance,
			acc.AmountOverdue,
			acc.Address,
		)
		if err != nil {
			return fmt.Errorf("failed to save account %d of report %s: %w", acc.Position, acc.ReportID, err)
		}
	}

	return r.Commit(ctx, tx)
}

const reportColumns = `
	report_id, name, mobile_phone, pan, credit_score,
	total_accounts, active_accounts, closed_accounts,
	current_balance_amount, secured_accounts_amount, unsecured_accounts_amount,
	last_7_days_credit_enquiries, created_at
`

func scanReport(row pgx.Row) (models.CreditReport, error) {
	var m models.CreditReport
	err := row.Scan(
		&m.ReportID,
		&m.Name,
		&m.MobilePhone,
		&m.PAN,
		&m.CreditScore,
		&m.TotalAccounts,
		&m.ActiveAccounts,
		&m.ClosedAccounts,
		&m.CurrentBalanceAmount,
		&m.SecuredAccountsAmount,
		&m.UnsecuredAccountsAmount,
		&m.Last7DaysCreditEnquiries,
		&m.CreatedAt,
	)
	return m, err
}

// FindReportByID retrieves a single report with its accounts.
func (r *PgxReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.CreditReport, error) {
	query := `SELECT ` + reportColumns + ` FROM credit_reports WHERE report_id = $1;`

	m, err := scanReport(r.Pool.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: report with ID %s not found", apperrors.ErrNotFound, reportID)
		}
		return nil, fmt.Errorf("failed to find report %s: %w", reportID, err)
	}

	accounts, err := r.findAccounts(ctx, m.ReportID)
	if err != nil {
		return nil, err
	}

	report := toDomainReport(m, accounts)
	return &report, nil
}

// FindReportByPAN retrieves the report stored for the given PAN, if any.
// Used by the ingestion duplicate check.
func (r *PgxReportRepository) FindReportByPAN(ctx context.Context, pan string) (*domain.CreditReport, error) {
	query := `SELECT ` + reportColumns + ` FROM credit_reports WHERE pan = $1;`

	m, err := scanReport(r.Pool.QueryRow(ctx, query, pan))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no report for PAN %q", apperrors.ErrNotFound, pan)
		}
		return nil, fmt.Errorf("failed to find report by PAN: %w", err)
	}

	accounts, err := r.findAccounts(ctx, m.ReportID)
	if err != nil {
		return nil, err
	}

	report := toDomainReport(m, accounts)
	return &report, nil
}

// ListReports retrieves all stored reports sorted by creation time descending.
func (r *PgxReportRepository) ListReports(ctx context.Context) ([]domain.CreditReport, error) {
	query := `SELECT ` + reportColumns + ` FROM credit_reports ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var modelReports []models.CreditReport
	for rows.Next() {
		m, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		modelReports = append(modelReports, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating report rows: %w", err)
	}

	reports := make([]domain.CreditReport, 0, len(modelReports))
	for _, m := range modelReports {
		accounts, err := r.findAccounts(ctx, m.ReportID)
		if err != nil {
			return nil, err
		}
		reports = append(reports, toDomainReport(m, accounts))
	}
	return reports, nil
}

// findAccounts loads the account rows of one report in source-document order.
func (r *PgxReportRepository) findAccounts(ctx context.Context, reportID string) ([]models.CreditAccount, error) {
	query := `
		SELECT report_id, position, bank_name, account_number, account_type,
		       current_balance, amount_overdue, address
		FROM credit_accounts
		WHERE report_id = $1
		ORDER BY position ASC;
	`

	rows, err := r.Pool.Query(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts of report %s: %w", reportID, err)
	}
	defer rows.Close()

	var accounts []models.CreditAccount
	for rows.Next() {
		var acc models.CreditAccount
		err := rows.Scan(
			&acc.ReportID,
			&acc.Position,
			&acc.BankName,
			&acc.AccountNumber,
			&acc.AccountType,
			&acc.CurrentBalance,
			&acc.AmountOverdue,
			&acc.Address,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row of report %s: %w", reportID, err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating account rows of report %s: %w", reportID, err)
	}
	return accounts, nil
}
