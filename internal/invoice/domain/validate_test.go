package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDemoDocumentPasses(t *testing.T) {
	doc := DemoDocument(time.Now())
	assert.NoError(t, doc.Validate())
}

func TestValidateRequiredFields(t *testing.T) {
	doc := DemoDocument(time.Now())
	doc.Seller.Name = "  "
	doc.Buyer.Name = ""
	doc.Invoice.No = ""
	doc.Invoice.Date = ""
	doc.Items[1].Particulars = ""

	err := doc.Validate()
	require.Error(t, err)

	var verr *ValidationErrors
	require.True(t, errors.As(err, &verr))

	fields := make(map[string]string)
	for _, fe := range verr.Errors {
		fields[fe.Field] = fe.Code
	}
	assert.Equal(t, "required", fields["seller.name"])
	assert.Equal(t, "required", fields["buyer.name"])
	assert.Equal(t, "required", fields["invoice.no"])
	assert.Equal(t, "required", fields["invoice.date"])
	assert.Equal(t, "required", fields["items.1.particulars"])
}

func TestValidateEmailAndLogoURL(t *testing.T) {
	doc := DemoDocument(time.Now())
	doc.Seller.Email = "not-an-email"
	doc.Seller.LogoURL = "::nope"

	err := doc.Validate()
	require.Error(t, err)

	var verr *ValidationErrors
	require.True(t, errors.As(err, &verr))

	codes := make(map[string]string)
	for _, fe := range verr.Errors {
		codes[fe.Field] = fe.Code
	}
	assert.Equal(t, "invalid_email", codes["seller.email"])
	assert.Equal(t, "invalid_url", codes["seller.logoUrl"])
}

func TestValidateOptionalFieldsMayBeEmpty(t *testing.T) {
	doc := DemoDocument(time.Now())
	doc.Seller.Email = ""
	doc.Seller.LogoURL = ""
	doc.Bank = BankDetails{}
	doc.Remarks = ""
	assert.NoError(t, doc.Validate())
}
