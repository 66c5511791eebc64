package services

import (
	"gorm.io/gorm"

	"github.com/smarthospital/cleantrack/models"
	"github.com/smarthospital/cleantrack/utils"
)

// TaskService membuat dan membaca penugasan pembersihan ruangan.
type TaskService struct {
	DB *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{DB: db}
}

// CreateAssignment membuat penugasan baru dengan status selalu "Pending".
// Tidak ada pengecekan duplikat: beberapa penugasan untuk room/date yang sama
// diperbolehkan.
func (ts *TaskService) CreateAssignment(roomID, cleanerID, assignedByID, assignmentDate, notes string) (*models.TaskAssignment, error) {
	if roomID == "" || cleanerID == "" || assignedByID == "" || assignmentDate == "" {
		return nil, utils.NewValidationError("room_id, cleaner_id, assigned_by_id and assignment_date are required")
	}

	task := models.TaskAssignment{
		RoomID:         roomID,
		CleanerID:      cleanerID,
		AssignedByID:   assignedByID,
		AssignmentDate: assignmentDate,
		Notes:          notes,
		Status:         "Pending",
	}

	if err := ts.DB.Create(&task).Error; err != nil {
		return nil, utils.NewStoreError("failed to create task assignment", err)
	}

	utils.InfoLogger.Printf("Task assigned: room=%s cleaner=%s by=%s", roomID, cleanerID, assignedByID)
	return &task, nil
}

// ListForCleaner mengembalikan semua penugasan untuk satu cleaner, tanpa urutan tertentu.
func (ts *TaskService) ListForCleaner(cleanerID string) ([]models.TaskAssignment, error) {
	if cleanerID == "" {
		return nil, utils.NewValidationError("cleaner_id is required")
	}

	var tasks []models.TaskAssignment
	if err := ts.DB.Where("cleaner_id = ?", cleanerID).Find(&tasks).Error; err != nil {
		return nil, utils.NewStoreError("failed to list task assignments", err)
	}

	return tasks, nil
}
