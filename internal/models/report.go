package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditReport is the persistence representation of one stored report row.
// Summary figures are flattened onto the report row; accounts live in a
// child table keyed by (report_id, position).
type CreditReport struct {
	ReportID                 string          `db:"report_id"`
	Name                     string          `db:"name"`
	MobilePhone              string          `db:"mobile_phone"`
	PAN                      string          `db:"pan"`
	CreditScore              int             `db:"credit_score"`
	TotalAccounts            int             `db:"total_accounts"`
	ActiveAccounts           int             `db:"active_accounts"`
	ClosedAccounts           int             `db:"closed_accounts"`
	CurrentBalanceAmount     decimal.Decimal `db:"current_balance_amount"`
	SecuredAccountsAmount    decimal.Decimal `db:"secured_accounts_amount"`
	UnsecuredAccountsAmount  decimal.Decimal `db:"unsecured_accounts_amount"`
	Last7DaysCreditEnquiries int             `db:"last_7_days_credit_enquiries"`
	CreatedAt                time.Time       `db:"created_at"`
}

// CreditAccount is one account row belonging to a stored report.
// Position preserves the source-document ordering.
type CreditAccount struct {
	ReportID       string          `db:"report_id"`
	Position       int             `db:"position"`
	BankName       string          `db:"bank_name"`
	AccountNumber  string          `db:"account_number"`
	AccountType    string          `db:"account_type"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	AmountOverdue  decimal.Decimal `db:"amount_overdue"`
	Address        string          `db:"address"`
}
