package models

import (
	"time"
)

// Approval status values for CleaningRecord.ManagerApprovalStatus.
const (
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRework   = "Rework"
)

// CleaningRecord adalah hasil satu kali verifikasi AI untuk sebuah ruangan.
type CleaningRecord struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	RoomID                string    `gorm:"type:varchar(50);not null;index" json:"room_id"`
	CleanerID             string    `gorm:"type:varchar(50);not null;index" json:"cleaner_id"`
	BeforePhotoURL        string    `gorm:"type:varchar(512);not null" json:"before_photo_url"`
	AfterPhotoURL         string    `gorm:"type:varchar(512);not null" json:"after_photo_url"`
	CleanlinessStatus     string    `gorm:"type:varchar(50);not null" json:"cleanliness_status"`
	AIRemarks             string    `gorm:"type:text" json:"ai_remarks"`
	ManagerApprovalStatus string    `gorm:"type:varchar(15);not null;default:'Pending';index" json:"manager_approval_status"`
	CreatedAt             time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt             time.Time `gorm:"not null" json:"updated_at"`
}
