package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/smarthospital/cleantrack/models"
	"github.com/smarthospital/cleantrack/utils"
)

// ReportService membaca record yang sudah disetujui dalam jendela waktu berjalan.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// WeeklyApproved mengembalikan semua record Approved dengan
// created_at >= now - 7 hari (batas bawah inklusif). Urutan ditentukan store;
// caller tidak boleh mengandalkan urutan tertentu.
func (rs *ReportService) WeeklyApproved(now time.Time) ([]models.CleaningRecord, error) {
	sevenDaysAgo := now.Add(-7 * 24 * time.Hour)

	var records []models.CleaningRecord
	err := rs.DB.
		Where("manager_approval_status = ?", models.ApprovalApproved).
		Where("created_at >= ?", sevenDaysAgo).
		Find(&records).Error
	if err != nil {
		return nil, utils.NewStoreError("failed to fetch weekly approved records", err)
	}

	utils.InfoLogger.Printf("Weekly report: %d approved records", len(records))
	return records, nil
}
