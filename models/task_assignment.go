package models

import (
	"time"
)

// Status nilai awal selalu "Pending"; lifecycle setelah pembuatan
// tidak diubah oleh backend ini.
type TaskAssignment struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	RoomID         string    `gorm:"type:varchar(50);not null;index" json:"room_id"`
	CleanerID      string    `gorm:"type:varchar(50);not null;index" json:"cleaner_id"`
	AssignedByID   string    `gorm:"type:varchar(50);not null" json:"assigned_by_id"`
	AssignmentDate string    `gorm:"type:varchar(20);not null" json:"assignment_date"`
	Notes          string    `gorm:"type:text" json:"notes"`
	Status         string    `gorm:"type:varchar(15);not null;default:'Pending'" json:"status"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}
