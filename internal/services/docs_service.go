package services

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"dispatchledger/internal/domain"
	"dispatchledger/internal/payroll"

	"github.com/phpdave11/gofpdf"
)

// wdLabels maps stored work-day codes to the labels printed on reports.
var wdLabels = map[string]string{
	domain.WDNormal:           "Normal working day",
	domain.WDRegularHoliday:   "Regular holiday",
	domain.WDNonWorkSpHoliday: "Non-working special holiday",
	domain.WDWorkSpHoliday:    "Working special holiday",
	domain.WDRestDay:          "Rest day",
	domain.WDUnknown:          "Unknown",
}

func wdLabel(code string) string {
	if l, ok := wdLabels[code]; ok {
		return l
	}
	return code
}

// BuildSummaryPDF renders the payroll pivot as a landscape table:
// one row per work-day code, driver columns then courier columns,
// zero-filled cells.
func BuildSummaryPDF(sum payroll.Summary, start, end string) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Dispatch Payroll Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Dispatch Payroll Summary")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	period := "all records"
	if start != "" || end != "" {
		period = fmt.Sprintf("%s to %s", orDash(start), orDash(end))
	}
	pdf.Cell(0, 6, "Period: "+period)
	pdf.Ln(5)
	pdf.Cell(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	if sum.Empty() {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.Cell(0, 8, "No dispatch records in this period.")
	} else {
		renderSummaryTable(pdf, sum)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("PAYROLL_SUMMARY_%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func renderSummaryTable(pdf *gofpdf.Fpdf, sum payroll.Summary) {
	const rowLabelW = 60.0
	const cellW = 24.0
	const cellH = 7.0

	// header: drivers then couriers, same concatenation the payroll
	// screen shows
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(rowLabelW, cellH, "WD code", "1", 0, "L", false, 0, "")
	for _, d := range sum.Drivers {
		pdf.CellFormat(cellW, cellH, d+" (D)", "1", 0, "C", false, 0, "")
	}
	for _, c := range sum.Couriers {
		pdf.CellFormat(cellW, cellH, c+" (C)", "1", 0, "C", false, 0, "")
	}
	pdf.Ln(cellH)

	pdf.SetFont("Helvetica", "", 9)
	for _, wd := range sum.Rows {
		pdf.CellFormat(rowLabelW, cellH, wdLabel(wd), "1", 0, "L", false, 0, "")
		for _, d := range sum.Drivers {
			pdf.CellFormat(cellW, cellH, strconv.Itoa(sum.DriverCell(wd, d)), "1", 0, "C", false, 0, "")
		}
		for _, c := range sum.Couriers {
			pdf.CellFormat(cellW, cellH, strconv.Itoa(sum.CourierCell(wd, c)), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(cellH)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
