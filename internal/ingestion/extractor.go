// Package ingestion turns a raw Experian credit-report XML export into the
// normalized report representation persisted by the service. Extraction is a
// pure transform: no I/O, and the same bytes always produce the same record.
package ingestion

import (
	"fmt"
	"strings"

	"github.com/clbanning/mxj/v2"
	"github.com/credlytics/credit_report_service/internal/apperrors"
	"github.com/credlytics/credit_report_service/internal/core/domain"
	"github.com/credlytics/credit_report_service/internal/utils/xmltree"
)

// rootElement is the document root of the Experian INProfile export.
const rootElement = "INProfileResponse"

// unknownName is the fallback applicant name when the export carries neither
// a first nor a last name.
const unknownName = "Unknown"

// NormalizedReport is the outcome of extracting one XML export, before the
// store assigns an identifier and creation timestamp.
type NormalizedReport struct {
	BasicDetails   domain.BasicDetails
	ReportSummary  domain.ReportSummary
	CreditAccounts []domain.CreditAccount
}

// ExtractReport parses the raw XML text and maps it into a NormalizedReport.
// It fails with apperrors.ErrMalformedXML when the text is not well-formed
// XML or the expected root element is absent. Every field lookup is
// defensive: missing nodes resolve to the documented defaults (empty string,
// zero, or "Unknown") rather than failing.
func ExtractReport(raw []byte) (*NormalizedReport, error) {
	tree, err := mxj.NewMapXml(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedXML, err)
	}

	root, ok := xmltree.Lookup(map[string]interface{}(tree), rootElement)
	if !ok {
		return nil, fmt.Errorf("%w: missing %s root element", apperrors.ErrMalformedXML, rootElement)
	}

	accountsNode, _ := xmltree.Lookup(root, "CAIS_Account", "CAIS_Account_DETAILS")
	accounts := xmltree.ToSequence(accountsNode)

	return &NormalizedReport{
		BasicDetails:   extractBasicDetails(root, accounts),
		ReportSummary:  extractReportSummary(root),
		CreditAccounts: extractCreditAccounts(accounts),
	}, nil
}

func extractBasicDetails(root xmltree.Node, accounts []xmltree.Node) domain.BasicDetails {
	applicant, _ := xmltree.Lookup(root,
		"Current_Application", "Current_Application_Details", "Current_Applicant_Details")

	firstName := xmltree.String(applicant, "First_Name")
	lastName := xmltree.String(applicant, "Last_Name")
	name := strings.TrimSpace(firstName + " " + lastName)
	if name == "" {
		name = unknownName
	}

	// PAN resolution order: holder details of the first account entry, then
	// the applicant-level PAN, then empty.
	pan := ""
	if len(accounts) > 0 {
		pan = xmltree.String(accounts[0], "CAIS_Holder_Details", "Income_TAX_PAN")
	}
	if pan == "" {
		pan = xmltree.String(applicant, "Income_TAX_PAN")
	}

	return domain.BasicDetails{
		Name:        name,
		MobilePhone: xmltree.String(applicant, "MobilePhoneNumber"),
		PAN:         pan,
		CreditScore: xmltree.Int(root, "SCORE", "BureauScore"),
	}
}

func extractReportSummary(root xmltree.Node) domain.ReportSummary {
	summary, _ := xmltree.Lookup(root, "CAIS_Account", "CAIS_Summary")

	return domain.ReportSummary{
		TotalAccounts:            xmltree.Int(summary, "Credit_Account", "CreditAccountTotal"),
		ActiveAccounts:           xmltree.Int(summary, "Credit_Account", "CreditAccountActive"),
		ClosedAccounts:           xmltree.Int(summary, "Credit_Account", "CreditAccountClosed"),
		CurrentBalanceAmount:     xmltree.Decimal(summary, "Total_Outstanding_Balance", "Outstanding_Balance_All"),
		SecuredAccountsAmount:    xmltree.Decimal(summary, "Total_Outstanding_Balance", "Outstanding_Balance_Secured"),
		UnsecuredAccountsAmount:  xmltree.Decimal(summary, "Total_Outstanding_Balance", "Outstanding_Balance_UnSecured"),
		Last7DaysCreditEnquiries: xmltree.Int(root, "CAPS", "CAPS_Summary", "Last7DaysCreditEnquiries"),
	}
}

func extractCreditAccounts(accounts []xmltree.Node) []domain.CreditAccount {
	out := make([]domain.CreditAccount, 0, len(accounts))
	for _, acc := range accounts {
		address, _ := xmltree.Lookup(acc, "CAIS_Holder_Address_Details")

		out = append(out, domain.CreditAccount{
			BankName:       xmltree.String(acc, "Subscriber_Name"),
			AccountNumber:  xmltree.String(acc, "Account_Number"),
			AccountType:    xmltree.String(acc, "Account_Type"),
			CurrentBalance: xmltree.Decimal(acc, "Current_Balance"),
			AmountOverdue:  xmltree.Decimal(acc, "Amount_Past_Due"),
			Address:        joinAddress(address),
		})
	}
	return out
}

// joinAddress builds the display address from the optional components that
// are present and non-empty, preserving the fixed component order.
func joinAddress(address xmltree.Node) string {
	components := []string{
		xmltree.String(address, "First_Line_Of_Address_non_normalized"),
		xmltree.String(address, "Second_Line_Of_Address_non_normalized"),
		xmltree.String(address, "Third_Line_Of_Address_non_normalized"),
		xmltree.String(address, "City_non_normalized"),
		xmltree.String(address, "State_non_normalized"),
		xmltree.String(address, "ZIP_Postal_Code_non_normalized"),
		xmltree.String(address, "CountryCode_non_normalized"),
	}

	present := make([]string, 0, len(components))
	for _, c := range components {
		if c != "" {
			present = append(present, c)
		}
	}
	return strings.Join(present, ", ")
}
