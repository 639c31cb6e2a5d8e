package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BasicDetails holds the applicant identity fields extracted from a bureau report.
// PAN is the deduplication key: at most one stored report may exist per PAN value.
type BasicDetails struct {
	Name        string `json:"name"`
	MobilePhone string `json:"mobilePhone"`
	PAN         string `json:"pan"`
	CreditScore int    `json:"creditScore"`
}

// ReportSummary holds the aggregate account and balance figures of one report.
type ReportSummary struct {
	TotalAccounts            int             `json:"totalAccounts"`
	ActiveAccounts           int             `json:"activeAccounts"`
	ClosedAccounts           int             `json:"closedAccounts"`
	CurrentBalanceAmount     decimal.Decimal `json:"currentBalanceAmount"`
	SecuredAccountsAmount    decimal.Decimal `json:"securedAccountsAmount"`
	UnsecuredAccountsAmount  decimal.Decimal `json:"unsecuredAccountsAmount"`
	Last7DaysCreditEnquiries int             `json:"last7DaysCreditEnquiries"`
}

// CreditAccount is one credit facility reported for the applicant. Accounts
// have no identity of their own; their order follows the source document.
type CreditAccount struct {
	BankName       string          `json:"bankName"`
	AccountNumber  string          `json:"accountNumber"`
	AccountType    string          `json:"accountType"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	AmountOverdue  decimal.Decimal `json:"amountOverdue"`
	Address        string          `json:"address"`
}

// CreditReport is the persisted entity produced by one successful ingestion.
// Reports are immutable after creation: there is no update or delete path.
type CreditReport struct {
	ReportID       string          `json:"reportID"`
	BasicDetails   BasicDetails    `json:"basicDetails"`
	ReportSummary  ReportSummary   `json:"reportSummary"`
	CreditAccounts []CreditAccount `json:"creditAccounts"`
	CreatedAt      time.Time       `json:"createdAt"`
}
