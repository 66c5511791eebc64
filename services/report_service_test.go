package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smarthospital/cleantrack/models"
)

func seedRecordAt(t *testing.T, svc *ReportService, status string, createdAt time.Time) models.CleaningRecord {
	t.Helper()
	record := models.CleaningRecord{
		RoomID:                "101",
		CleanerID:             "C1",
		BeforePhotoURL:        "/uploads/before_placeholder.jpg",
		AfterPhotoURL:         "/uploads/after.jpg",
		CleanlinessStatus:     "Clean",
		AIRemarks:             "ok",
		ManagerApprovalStatus: status,
		CreatedAt:             createdAt,
	}
	if err := svc.DB.Create(&record).Error; err != nil {
		t.Fatalf("failed to seed record: %v", err)
	}
	return record
}

func TestWeeklyApprovedWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	now := time.Now()

	inWindow := seedRecordAt(t, svc, models.ApprovalApproved, now.Add(-6*24*time.Hour))
	seedRecordAt(t, svc, models.ApprovalApproved, now.Add(-8*24*time.Hour)) // terlalu lama
	seedRecordAt(t, svc, models.ApprovalPending, now.Add(-2*24*time.Hour))  // belum disetujui
	seedRecordAt(t, svc, models.ApprovalRework, now.Add(-1*24*time.Hour))   // ditolak

	records, err := svc.WeeklyApproved(now)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, inWindow.ID, records[0].ID)
}

func TestWeeklyApprovedLowerBoundInclusive(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)
	now := time.Now()

	boundary := seedRecordAt(t, svc, models.ApprovalApproved, now.Add(-7*24*time.Hour))

	records, err := svc.WeeklyApproved(now)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, boundary.ID, records[0].ID)
}

func TestWeeklyApprovedEmptyIsNotError(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	records, err := svc.WeeklyApproved(time.Now())
	assert.NoError(t, err)
	assert.Empty(t, records)
}
