package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smarthospital/cleantrack/services"
	"github.com/smarthospital/cleantrack/utils"
)

type ReportController struct {
	Reports *services.ReportService
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// WeeklyReport menghasilkan PDF berisi record Approved 7 hari terakhir.
func (rc *ReportController) WeeklyReport(c *gin.Context) {
	now := time.Now()

	records, err := rc.Reports.WeeklyApproved(now)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	pdfBytes, err := services.GenerateWeeklyReportPDF(records, now)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filename := fmt.Sprintf("Weekly_Report_%s.pdf", now.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment;filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// WeeklyReportData mengembalikan data report dalam bentuk JSON.
func (rc *ReportController) WeeklyReportData(c *gin.Context) {
	records, err := rc.Reports.WeeklyApproved(time.Now())
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Weekly approved records", records)
}
