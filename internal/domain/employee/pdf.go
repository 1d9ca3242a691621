package employee

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RecordSheetPDF renders the aggregate as a one-page A4 record sheet.
func RecordSheetPDF(emp *Employee) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Employee Record")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Name: %s", emp.Name))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Date of birth: %s", emp.DOB.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Address: %s", emp.Address))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Contact: %s", emp.Contact))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Qualifications")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if len(emp.Qualifications) == 0 {
		pdf.Cell(0, 7, "none on record")
	}
	for _, qual := range emp.Qualifications {
		pdf.Cell(0, 7, fmt.Sprintf("%s - passed %d, %.2f%%", qual.Course, qual.YearPassed, qual.MarksPercentage))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
