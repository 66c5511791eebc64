package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smarthospital/cleantrack/services"
	"github.com/smarthospital/cleantrack/utils"
)

type ApprovalController struct {
	Approvals *services.ApprovalService
}

func NewApprovalController(approvals *services.ApprovalService) *ApprovalController {
	return &ApprovalController{Approvals: approvals}
}

// GetDashboard mengembalikan semua record yang menunggu keputusan manager.
func (ac *ApprovalController) GetDashboard(c *gin.Context) {
	records, err := ac.Approvals.ListPending()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pending cleaning records", records)
}

// Approve menerapkan keputusan manager (Approved/Rework) pada satu record.
func (ac *ApprovalController) Approve(c *gin.Context) {
	type request struct {
		RecordID  uint   `json:"record_id" binding:"required"`
		NewStatus string `json:"new_status" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	record, err := ac.Approvals.Decide(req.RecordID, req.NewStatus)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Approval status updated", record)
}
