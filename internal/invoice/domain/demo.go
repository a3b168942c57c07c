package domain

import "time"

const demoDateFormat = "02-Jan-06"

// DemoDocument builds the demo template the editing session falls back to
// when no draft exists or the stored draft is unreadable. Dates are derived
// from the supplied time so tests can pin them.
func DemoDocument(now time.Time) InvoiceDocument {
	return InvoiceDocument{
		Seller: Seller{
			Name:      "Tech Innovations Pvt. Ltd.",
			NameShort: "Tech Innovations",
			Addr1:     "123, Silicon Avenue, Hitech City",
			Addr2:     "Hyderabad, Telangana, 500081",
			GSTIN:     "36AAAAA0000A1Z5",
			StateName: "Telangana",
			StateCode: "36",
			Email:     "contact@techinnovations.co.in",
			PAN:       "AAAAA0000A",
		},
		Buyer: Buyer{
			Name:      "Creative Solutions LLP",
			Address:   "456, Bannerghatta Road, Bangalore, Karnataka, 560076",
			GSTIN:     "29BBBBB1111B2Z6",
			StateName: "Karnataka",
			StateCode: "29",
		},
		Invoice: InvoiceMeta{
			No:              "TI-2024-001",
			Date:            now.Format(demoDateFormat),
			PaymentTerms:    "Due upon receipt",
			DeliveryTerms:   "F.O.R. Destination",
			OrderNo:         "CS-PO-1024",
			OrderDate:       now.AddDate(0, 0, -5).Format(demoDateFormat),
			DispatchThrough: "Express Courier",
			Destination:     "Bangalore",
		},
		Items: []LineItem{
			{Particulars: "Custom Software Development (Phase 1)", HSN: "998314", Qty: NumericFromInt(1), Rate: NumericFromInt(80000), Amount: NumericFromInt(80000)},
			{Particulars: "Cloud Hosting & Setup (Annual)", HSN: "998315", Qty: NumericFromInt(1), Rate: NumericFromInt(15000), Amount: NumericFromInt(15000)},
			{Particulars: "Technical Support Retainer (6 months)", HSN: "998319", Qty: NumericFromInt(6), Rate: NumericFromInt(2500), Amount: NumericFromInt(15000)},
		},
		TaxRows: []TaxRow{
			{HSN: "998314", Taxable: NumericFromInt(80000), CGSTRate: NumericFromInt(9), CGSTAmt: NumericFromInt(7200), SGSTRate: NumericFromInt(9), SGSTAmt: NumericFromInt(7200)},
			{HSN: "998315", Taxable: NumericFromInt(15000), CGSTRate: NumericFromInt(9), CGSTAmt: NumericFromInt(1350), SGSTRate: NumericFromInt(9), SGSTAmt: NumericFromInt(1350)},
			{HSN: "998319", Taxable: NumericFromInt(15000), CGSTRate: NumericFromInt(9), CGSTAmt: NumericFromInt(1350), SGSTRate: NumericFromInt(9), SGSTAmt: NumericFromInt(1350)},
		},
		Totals: Totals{
			Subtotal:     NumericFromInt(110000),
			TaxableTotal: NumericFromInt(110000),
			CGSTTotal:    NumericFromInt(9900),
			SGSTTotal:    NumericFromInt(9900),
			TaxTotal:     NumericFromInt(19800),
			GrandTotal:   NumericFromInt(129800),
		},
		AmountInWords:    "One Lakh Twenty-Nine Thousand Eight Hundred Rupees Only",
		TaxAmountInWords: "Nineteen Thousand Eight Hundred Rupees Only",
		Remarks:          "This is a computer generated invoice and does not require a signature.",
		Bank: BankDetails{
			Name:       "Global Commercial Bank",
			AcNo:       "01234567890",
			BranchIFSC: "GCBL0001234, Hitech City Branch",
		},
	}
}
