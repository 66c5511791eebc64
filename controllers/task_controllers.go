package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smarthospital/cleantrack/services"
	"github.com/smarthospital/cleantrack/utils"
)

type TaskController struct {
	Tasks *services.TaskService
}

func NewTaskController(tasks *services.TaskService) *TaskController {
	return &TaskController{Tasks: tasks}
}

// AssignTask membuat penugasan pembersihan baru (khusus manager).
func (tc *TaskController) AssignTask(c *gin.Context) {
	type request struct {
		RoomID         string `json:"room_id" binding:"required"`
		CleanerID      string `json:"cleaner_id" binding:"required"`
		AssignedByID   string `json:"assigned_by_id" binding:"required"`
		AssignmentDate string `json:"assignment_date" binding:"required"`
		Notes          string `json:"notes"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	task, err := tc.Tasks.CreateAssignment(req.RoomID, req.CleanerID, req.AssignedByID, req.AssignmentDate, req.Notes)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Task assigned", task)
}

// GetCleanerTasks mengembalikan semua penugasan milik satu cleaner.
func (tc *TaskController) GetCleanerTasks(c *gin.Context) {
	cleanerID := c.Param("cleaner_id")

	tasks, err := tc.Tasks.ListForCleaner(cleanerID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cleaner tasks", tasks)
}
