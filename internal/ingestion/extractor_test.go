package ingestion_test

import (
	"testing"

	"github.com/credlytics/credit_report_service/internal/apperrors"
	"github.com/credlytics/credit_report_service/internal/ingestion"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullReportXML = `<?xml version="1.0" encoding="UTF-8"?>
<INProfileResponse>
  <Current_Application>
    <Current_Application_Details>
      <Current_Applicant_Details>
        <First_Name>Ravi</First_Name>
        <Last_Name>Kumar</Last_Name>
        <MobilePhoneNumber>9876543210</MobilePhoneNumber>
        <Income_TAX_PAN>FGHIJ5678K</Income_TAX_PAN>
      </Current_Applicant_Details>
    </Current_Application_Details>
  </Current_Application>
  <SCORE>
    <BureauScore>742</BureauScore>
  </SCORE>
  <CAIS_Account>
    <CAIS_Summary>
      <Credit_Account>
        <CreditAccountTotal>4</CreditAccountTotal>
        <CreditAccountActive>3</CreditAccountActive>
        <CreditAccountClosed>1</CreditAccountClosed>
      </Credit_Account>
      <Total_Outstanding_Balance>
        <Outstanding_Balance_All>245000</Outstanding_Balance_All>
        <Outstanding_Balance_Secured>200000</Outstanding_Balance_Secured>
        <Outstanding_Balance_UnSecured>45000</Outstanding_Balance_UnSecured>
      </Total_Outstanding_Balance>
    </CAIS_Summary>
    <CAIS_Account_DETAILS>
      <Subscriber_Name>HDFC Bank</Subscriber_Name>
      <Account_Number>XXXX1234</Account_Number>
      <Account_Type>10</Account_Type>
      <Current_Balance>200000</Current_Balance>
      <Amount_Past_Due>1500.50</Amount_Past_Due>
      <CAIS_Holder_Details>
        <Income_TAX_PAN>ABCDE1234F</Income_TAX_PAN>
      </CAIS_Holder_Details>
      <CAIS_Holder_Address_Details>
        <First_Line_Of_Address_non_normalized>12 Main St</First_Line_Of_Address_non_normalized>
        <Second_Line_Of_Address_non_normalized></Second_Line_Of_Address_non_normalized>
        <Third_Line_Of_Address_non_normalized>Springfield</Third_Line_Of_Address_non_normalized>
        <State_non_normalized>CA</State_non_normalized>
        <ZIP_Postal_Code_non_normalized>90000</ZIP_Postal_Code_non_normalized>
        <CountryCode_non_normalized>US</CountryCode_non_normalized>
      </CAIS_Holder_Address_Details>
    </CAIS_Account_DETAILS>
    <CAIS_Account_DETAILS>
      <Subscriber_Name>ICICI Bank</Subscriber_Name>
      <Account_Number>XXXX5678</Account_Number>
      <Account_Type>05</Account_Type>
      <Current_Balance>45000</Current_Balance>
    </CAIS_Account_DETAILS>
  </CAIS_Account>
  <CAPS>
    <CAPS_Summary>
      <Last7DaysCreditEnquiries>2</Last7DaysCreditEnquiries>
    </CAPS_Summary>
  </CAPS>
</INProfileResponse>`

func TestExtractReport_FullDocument(t *testing.T) {
	rec, err := ingestion.ExtractReport([]byte(fullReportXML))
	require.NoError(t, err)

	assert.Equal(t, "Ravi Kumar", rec.BasicDetails.Name)
	assert.Equal(t, "9876543210", rec.BasicDetails.MobilePhone)
	// Holder-details PAN of the first account wins over the applicant PAN.
	assert.Equal(t, "ABCDE1234F", rec.BasicDetails.PAN)
	assert.Equal(t, 742, rec.BasicDetails.CreditScore)

	assert.Equal(t, 4, rec.ReportSummary.TotalAccounts)
	assert.Equal(t, 3, rec.ReportSummary.ActiveAccounts)
	assert.Equal(t, 1, rec.ReportSummary.ClosedAccounts)
	assert.True(t, decimal.NewFromInt(245000).Equal(rec.ReportSummary.CurrentBalanceAmount))
	assert.True(t, decimal.NewFromInt(200000).Equal(rec.ReportSummary.SecuredAccountsAmount))
	assert.True(t, decimal.NewFromInt(45000).Equal(rec.ReportSummary.UnsecuredAccountsAmount))
	assert.Equal(t, 2, rec.ReportSummary.Last7DaysCreditEnquiries)

	require.Len(t, rec.CreditAccounts, 2)

	first := rec.CreditAccounts[0]
	assert.Equal(t, "HDFC Bank", first.BankName)
	assert.Equal(t, "XXXX1234", first.AccountNumber)
	assert.Equal(t, "10", first.AccountType)
	assert.True(t, decimal.NewFromInt(200000).Equal(first.CurrentBalance))
	assert.True(t, decimal.RequireFromString("1500.50").Equal(first.AmountOverdue))
	// Empty components dropped, order preserved, ", " separator.
	assert.Equal(t, "12 Main St, Springfield, CA, 90000, US", first.Address)

	second := rec.CreditAccounts[1]
	assert.Equal(t, "ICICI Bank", second.BankName)
	assert.True(t, decimal.Zero.Equal(second.AmountOverdue))
	assert.Equal(t, "", second.Address)
}

func TestExtractReport_Idempotent(t *testing.T) {
	a, err := ingestion.ExtractReport([]byte(fullReportXML))
	require.NoError(t, err)
	b, err := ingestion.ExtractReport([]byte(fullReportXML))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExtractReport_SingleAccountScalar(t *testing.T) {
	// One CAIS_Account_DETAILS element arrives as a scalar node, not a
	// sequence; it must still normalize to a one-element account list.
	xml := `<INProfileResponse>
  <CAIS_Account>
    <CAIS_Account_DETAILS>
      <Subscriber_Name>Solo Bank</Subscriber_Name>
      <Account_Number>42</Account_Number>
      <CAIS_Holder_Details>
        <Income_TAX_PAN>ABCDE1234F</Income_TAX_PAN>
      </CAIS_Holder_Details>
    </CAIS_Account_DETAILS>
  </CAIS_Account>
</INProfileResponse>`

	rec, err := ingestion.ExtractReport([]byte(xml))
	require.NoError(t, err)

	require.Len(t, rec.CreditAccounts, 1)
	assert.Equal(t, "Solo Bank", rec.CreditAccounts[0].BankName)
	assert.Equal(t, "42", rec.CreditAccounts[0].AccountNumber)
	assert.Equal(t, "ABCDE1234F", rec.BasicDetails.PAN)
}

func TestExtractReport_Defaults(t *testing.T) {
	rec, err := ingestion.ExtractReport([]byte(`<INProfileResponse></INProfileResponse>`))
	require.NoError(t, err)

	assert.Equal(t, "Unknown", rec.BasicDetails.Name)
	assert.Equal(t, "", rec.BasicDetails.MobilePhone)
	assert.Equal(t, "", rec.BasicDetails.PAN)
	assert.Equal(t, 0, rec.BasicDetails.CreditScore)
	assert.Equal(t, 0, rec.ReportSummary.TotalAccounts)
	assert.True(t, decimal.Zero.Equal(rec.ReportSummary.CurrentBalanceAmount))
	assert.Empty(t, rec.CreditAccounts)
}

func TestExtractReport_NameFallback(t *testing.T) {
	xml := `<INProfileResponse>
  <Current_Application>
    <Current_Application_Details>
      <Current_Applicant_Details>
        <First_Name></First_Name>
        <Last_Name></Last_Name>
      </Current_Applicant_Details>
    </Current_Application_Details>
  </Current_Application>
</INProfileResponse>`

	rec, err := ingestion.ExtractReport([]byte(xml))
	require.NoError(t, err)
	assert.Equal(t, "Unknown", rec.BasicDetails.Name)
}

func TestExtractReport_ApplicantPANFallback(t *testing.T) {
	xml := `<INProfileResponse>
  <Current_Application>
    <Current_Application_Details>
      <Current_Applicant_Details>
        <First_Name>Ravi</First_Name>
        <Income_TAX_PAN>FGHIJ5678K</Income_TAX_PAN>
      </Current_Applicant_Details>
    </Current_Application_Details>
  </Current_Application>
</INProfileResponse>`

	rec, err := ingestion.ExtractReport([]byte(xml))
	require.NoError(t, err)
	assert.Equal(t, "FGHIJ5678K", rec.BasicDetails.PAN)
}

func TestExtractReport_NonNumericScore(t *testing.T) {
	xml := `<INProfileResponse>
  <SCORE><BureauScore>N/A</BureauScore></SCORE>
</INProfileResponse>`

	rec, err := ingestion.ExtractReport([]byte(xml))
	require.NoError(t, err)
	assert.Equal(t, 0, rec.BasicDetails.CreditScore)
}

func TestExtractReport_MalformedXML(t *testing.T) {
	_, err := ingestion.ExtractReport([]byte(`<INProfileResponse><unclosed>`))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedXML)
}

func TestExtractReport_MissingRoot(t *testing.T) {
	_, err := ingestion.ExtractReport([]byte(`<SomeOtherDocument></SomeOtherDocument>`))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrMalformedXML)
}
