package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/smarthospital/cleantrack/models"
)

// GenerateWeeklyReportPDF merender daftar record Approved menjadi PDF tabel.
func GenerateWeeklyReportPDF(records []models.CleaningRecord, generatedAt time.Time) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Weekly Cleaning Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	headers := []string{"Room", "Cleaner", "AI Status", "Remarks", "Approval", "Cleaned At"}
	widths := []float64{25, 30, 30, 95, 30, 45}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, rec := range records {
		remarks := rec.AIRemarks
		if len(remarks) > 80 {
			remarks = remarks[:77] + "..."
		}
		row := []string{
			rec.RoomID,
			rec.CleanerID,
			rec.CleanlinessStatus,
			remarks,
			rec.ManagerApprovalStatus,
			rec.CreatedAt.Format("2006-01-02 15:04"),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(records) == 0 {
		pdf.Ln(4)
		pdf.Cell(0, 8, "No approved cleaning records in the last 7 days.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
