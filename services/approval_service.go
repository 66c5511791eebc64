package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/smarthospital/cleantrack/models"
	"github.com/smarthospital/cleantrack/utils"
)

// ApprovalService menerapkan keputusan manager pada cleaning record.
type ApprovalService struct {
	DB *gorm.DB
}

func NewApprovalService(db *gorm.DB) *ApprovalService {
	return &ApprovalService{DB: db}
}

// Decide menetapkan manager_approval_status sebuah record ke "Approved" atau
// "Rework". Tidak ada guard transisi: keputusan ulang menimpa status sebelumnya
// (manager boleh mengoreksi keputusan).
func (as *ApprovalService) Decide(recordID uint, decision string) (*models.CleaningRecord, error) {
	if decision != models.ApprovalApproved && decision != models.ApprovalRework {
		return nil, utils.NewValidationError("invalid decision %q: must be %q or %q",
			decision, models.ApprovalApproved, models.ApprovalRework)
	}

	var record models.CleaningRecord
	if err := as.DB.First(&record, recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewNotFoundError("cleaning record %d not found", recordID)
		}
		return nil, utils.NewStoreError("failed to load cleaning record", err)
	}

	record.ManagerApprovalStatus = decision
	if err := as.DB.Save(&record).Error; err != nil {
		return nil, utils.NewStoreError("failed to update cleaning record", err)
	}

	utils.InfoLogger.Printf("Cleaning record %d decided: %s", record.ID, decision)
	return &record, nil
}

// ListPending mengembalikan semua record yang masih menunggu keputusan manager.
func (as *ApprovalService) ListPending() ([]models.CleaningRecord, error) {
	var records []models.CleaningRecord
	if err := as.DB.Where("manager_approval_status = ?", models.ApprovalPending).Find(&records).Error; err != nil {
		return nil, utils.NewStoreError("failed to list pending records", err)
	}
	return records, nil
}
