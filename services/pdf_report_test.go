package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smarthospital/cleantrack/models"
)

func TestGenerateWeeklyReportPDF(t *testing.T) {
	records := []models.CleaningRecord{
		{
			RoomID:                "101",
			CleanerID:             "C1",
			CleanlinessStatus:     "Clean",
			AIRemarks:             "ok",
			ManagerApprovalStatus: models.ApprovalApproved,
			CreatedAt:             time.Now(),
		},
		{
			RoomID:                "204",
			CleanerID:             "C2",
			CleanlinessStatus:     "NotClean",
			AIRemarks:             "stains found near the window sill, recommend a second pass with disinfectant solution",
			ManagerApprovalStatus: models.ApprovalApproved,
			CreatedAt:             time.Now().Add(-48 * time.Hour),
		},
	}

	pdfBytes, err := GenerateWeeklyReportPDF(records, time.Now())
	assert.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestGenerateWeeklyReportPDFEmpty(t *testing.T) {
	pdfBytes, err := GenerateWeeklyReportPDF(nil, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}
