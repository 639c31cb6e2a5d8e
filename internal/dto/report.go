package dto

import (
	"time"

	"github.com/credlytics/credit_report_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BasicDetailsResponse mirrors domain.BasicDetails.
type BasicDetailsResponse struct {
	Name        string `json:"name"`
	MobilePhone string `json:"mobilePhone"`
	PAN         string `json:"pan"`
	CreditScore int    `json:"creditScore"`
}

// ReportSummaryResponse mirrors domain.ReportSummary.
type ReportSummaryResponse struct {
	TotalAccounts            int             `json:"totalAccounts"`
	ActiveAccounts           int             `json:"activeAccounts"`
	ClosedAccounts           int             `json:"closedAccounts"`
	CurrentBalanceAmount     decimal.Decimal `json:"currentBalanceAmount"`
	SecuredAccountsAmount    decimal.Decimal `json:"securedAccountsAmount"`
	UnsecuredAccountsAmount  decimal.Decimal `json:"unsecuredAccountsAmount"`
	Last7DaysCreditEnquiries int             `json:"last7DaysCreditEnquiries"`
}

// CreditAccountResponse mirrors domain.CreditAccount.
type CreditAccountResponse struct {
	BankName       string          `json:"bankName"`
	AccountNumber  string          `json:"accountNumber"`
	AccountType    string          `json:"accountType"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	AmountOverdue  decimal.Decimal `json:"amountOverdue"`
	Address        string          `json:"address"`
}

// ReportResponse defines the data returned for a stored credit report.
type ReportResponse struct {
	ID             string                  `json:"id"`
	BasicDetails   BasicDetailsResponse    `json:"basicDetails"`
	ReportSummary  ReportSummaryResponse   `json:"reportSummary"`
	CreditAccounts []CreditAccountResponse `json:"creditAccounts"`
	CreatedAt      time.Time               `json:"createdAt"`
}

// MessageResponse is the envelope used by every endpoint, error paths included.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadReportResponse is the success envelope of POST /api/upload.
type UploadReportResponse struct {
	Message string         `json:"message"`
	Data    ReportResponse `json:"data"`
}

// ListReportsResponse is the envelope of GET /api/reports.
type ListReportsResponse struct {
	Message string           `json:"message"`
	Data    []ReportResponse `json:"data"`
}

// GetReportResponse is the envelope of GET /api/reports/:id.
type GetReportResponse struct {
	Message string         `json:"message"`
	Data    ReportResponse `json:"data"`
}

// ToReportResponse converts a domain.CreditReport to ReportResponse DTO
func ToReportResponse(r *domain.CreditReport) ReportResponse {
	accounts := make([]CreditAccountResponse, len(r.CreditAccounts))
	for i, acc := range r.CreditAccounts {
		accounts[i] = CreditAccountResponse{
			BankName:       acc.BankName,
			AccountNumber:  acc.AccountNumber,
			AccountType:    acc.AccountType,
			CurrentBalance: acc.CurrentBalance,
			AmountOverdue:  acc.AmountOverdue,
			Address:        acc.Address,
		}
	}

	return ReportResponse{
		ID: r.ReportID,
		BasicDetails: BasicDetailsResponse{
			Name:        r.BasicDetails.Name,
			MobilePhone: r.BasicDetails.MobilePhone,
			PAN:         r.BasicDetails.PAN,
			CreditScore: r.BasicDetails.CreditScore,
		},
		ReportSummary: ReportSummaryResponse{
			TotalAccounts:            r.ReportSummary.TotalAccounts,
			ActiveAccounts:           r.ReportSummary.ActiveAccounts,
			ClosedAccounts:           r.ReportSummary.ClosedAccounts,
			CurrentBalanceAmount:     r.ReportSummary.CurrentBalanceAmount,
			SecuredAccountsAmount:    r.ReportSummary.SecuredAccountsAmount,
			UnsecuredAccountsAmount:  r.ReportSummary.UnsecuredAccountsAmount,
			Last7DaysCreditEnquiries: r.ReportSummary.Last7DaysCreditEnquiries,
		},
		CreditAccounts: accounts,
		CreatedAt:      r.CreatedAt,
	}
}

// ToListReportResponse converts a slice of domain.CreditReport to DTOs
func ToListReportResponse(reports []domain.CreditReport) []ReportResponse {
	res := make([]ReportResponse, len(reports))
	for i, r := range reports {
		res[i] = ToReportResponse(&r)
	}
	return res
}
