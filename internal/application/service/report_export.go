package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Sheet1"

// ExportSalesExcel renders a sales report as an Excel workbook.
func ExportSalesExcel(report *SalesReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue(reportSheet, "A1", "Date")
	f.SetCellValue(reportSheet, "B1", "Type")
	f.SetCellValue(reportSheet, "C1", "Invoices")
	f.SetCellValue(reportSheet, "D1", "Subtotal")
	f.SetCellValue(reportSheet, "E1", "Tax")
	f.SetCellValue(reportSheet, "F1", "Total")

	row := 2
	for _, r := range report.Rows {
		f.SetCellValue(reportSheet, "A"+fmt.Sprint(row), r.Date.Format("2006-01-02"))
		f.SetCellValue(reportSheet, "B"+fmt.Sprint(row), string(r.Type))
		f.SetCellValue(reportSheet, "C"+fmt.Sprint(row), r.InvoiceCount)
		f.SetCellValue(reportSheet, "D"+fmt.Sprint(row), r.Subtotal.InexactFloat64())
		f.SetCellValue(reportSheet, "E"+fmt.Sprint(row), r.TaxAmount.InexactFloat64())
		f.SetCellValue(reportSheet, "F"+fmt.Sprint(row), r.TotalAmount.InexactFloat64())
		row++
	}

	row++
	f.SetCellValue(reportSheet, "A"+fmt.Sprint(row), "Grand Total")
	f.SetCellValue(reportSheet, "C"+fmt.Sprint(row), report.Totals.InvoiceCount)
	f.SetCellValue(reportSheet, "D"+fmt.Sprint(row), report.Totals.Subtotal.InexactFloat64())
	f.SetCellValue(reportSheet, "E"+fmt.Sprint(row), report.Totals.TaxAmount.InexactFloat64())
	f.SetCellValue(reportSheet, "F"+fmt.Sprint(row), report.Totals.TotalAmount.InexactFloat64())

	return f.WriteToBuffer()
}

// ExportGSTExcel renders a GST report as an Excel workbook.
func ExportGSTExcel(report *GSTReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue(reportSheet, "A1", "Invoice Type")
	f.SetCellValue(reportSheet, "B1", "Invoices")
	f.SetCellValue(reportSheet, "C1", "Taxable Amount")
	f.SetCellValue(reportSheet, "D1", "GST Amount")
	f.SetCellValue(reportSheet, "E1", "Total")

	row := 2
	for _, r := range report.Rows {
		f.SetCellValue(reportSheet, "A"+fmt.Sprint(row), string(r.Type))
		f.SetCellValue(reportSheet, "B"+fmt.Sprint(row), r.InvoiceCount)
		f.SetCellValue(reportSheet, "C"+fmt.Sprint(row), r.TaxableAmount.InexactFloat64())
		f.SetCellValue(reportSheet, "D"+fmt.Sprint(row), r.GSTAmount.InexactFloat64())
		f.SetCellValue(reportSheet, "E"+fmt.Sprint(row), r.TotalAmount.InexactFloat64())
		row++
	}

	return f.WriteToBuffer()
}

// ExportRegisterExcel renders an invoice register as an Excel workbook, one
// row per invoice.
func ExportRegisterExcel(register *InvoiceRegister) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue(reportSheet, "A1", "Invoice No")
	f.SetCellValue(reportSheet, "B1", "Date")
	f.SetCellValue(reportSheet, "C1", "Type")
	f.SetCellValue(reportSheet, "D1", "Guest")
	f.SetCellValue(reportSheet, "E1", "Room")
	f.SetCellValue(reportSheet, "F1", "Subtotal")
	f.SetCellValue(reportSheet, "G1", "Tax")
	f.SetCellValue(reportSheet, "H1", "Total")
	f.SetCellValue(reportSheet, "I1", "Payment Status")
	f.SetCellValue(reportSheet, "J1", "Payment Method")

	row := 2
	for _, inv := range register.Invoices {
		f.SetCellValue(reportSheet, "A"+fmt.Sprint(row), inv.InvoiceNumber)
		f.SetCellValue(reportSheet, "B"+fmt.Sprint(row), inv.InvoiceDate.Format("2006-01-02"))
		f.SetCellValue(reportSheet, "C"+fmt.Sprint(row), string(inv.Type))
		f.SetCellValue(reportSheet, "D"+fmt.Sprint(row), inv.GuestName)
		f.SetCellValue(reportSheet, "E"+fmt.Sprint(row), inv.RoomNumber)
		f.SetCellValue(reportSheet, "F"+fmt.Sprint(row), inv.Subtotal.InexactFloat64())
		f.SetCellValue(reportSheet, "G"+fmt.Sprint(row), inv.TaxAmount.InexactFloat64())
		f.SetCellValue(reportSheet, "H"+fmt.Sprint(row), inv.TotalAmount.InexactFloat64())
		f.SetCellValue(reportSheet, "I"+fmt.Sprint(row), string(inv.PaymentStatus))
		f.SetCellValue(reportSheet, "J"+fmt.Sprint(row), string(inv.PaymentMethod))
		row++
	}

	row++
	f.SetCellValue(reportSheet, "A"+fmt.Sprint(row), "Totals")
	f.SetCellValue(reportSheet, "F"+fmt.Sprint(row), register.Totals.Subtotal.InexactFloat64())
	f.SetCellValue(reportSheet, "G"+fmt.Sprint(row), register.Totals.TaxAmount.InexactFloat64())
	f.SetCellValue(reportSheet, "H"+fmt.Sprint(row), register.Totals.TotalAmount.InexactFloat64())

	return f.WriteToBuffer()
}
